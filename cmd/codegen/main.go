package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/glamour"
	"github.com/goaux/headline"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/OCharnyshevich/entity-palette/cmd/codegen/internal/config"
	"github.com/OCharnyshevich/entity-palette/cmd/codegen/internal/generator"
	"github.com/OCharnyshevich/entity-palette/cmd/codegen/internal/render"
)

//go:embed usage.md
var usage string

type runFunc func(ctx context.Context, cfg config.Config, log *slog.Logger) (generator.Result, error)

// reportedError has already been logged by the command.
type reportedError struct{ err error }

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand(generator.Run).ExecuteContext(ctx); err != nil {
		var reported reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		cancel()
		os.Exit(1)
	}
}

func newRootCommand(run runFunc) *cobra.Command {
	cfg := config.DefaultConfig()
	var configFile string

	cmd := &cobra.Command{
		Use:   "codegen --path DIR --mcversion VERSION",
		Short: headline.Get(usage),
		Long:  renderUsage(usage),
		Args:  cobra.NoArgs,

		SilenceErrors: true,

		RunE: func(cmd *cobra.Command, _ []string) error {
			// Flags parsed fine; from here on failures are not usage errors.
			cmd.SilenceUsage = true

			final := cfg
			if configFile != "" {
				fromFile, err := config.Load(configFile)
				if err != nil {
					return err
				}
				config.Merge(&final, fromFile, explicitFlags(cmd.Flags()))
			}
			final = final.Normalize()
			if err := final.Validate(); err != nil {
				return err
			}

			lvl, _ := final.Level()
			log := slog.New(slog.NewTextHandler(cmd.OutOrStdout(), &slog.HandlerOptions{Level: lvl}))

			if _, err := run(cmd.Context(), final, log); err != nil {
				log.Error("codegen failed", "error", err)
				return reportedError{err}
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.SortFlags = false
	fl.SetNormalizeFunc(normalizeAliases)
	fl.StringVarP(&cfg.Path, "path", "p", "", "output `directory` for the generated file")
	fl.StringVar(&cfg.Version, "mcversion", "", "Minecraft `version`, e.g. 1.18.1 (alias --mcv)")
	fl.StringVarP(&configFile, "config", "c", "", "YAML config `file`")
	fl.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "minecraft-data `url` holding <version>/entities.json")
	fl.StringVar(&cfg.Language, "lang", cfg.Language, "output language: "+strings.Join(render.Languages(), ", "))
	fl.StringVar(&cfg.Namespace, "namespace", cfg.Namespace, "C# `namespace` of the generated class")
	fl.StringVar(&cfg.Package, "package", cfg.Package, "Go `package` of the generated file")
	fl.BoolVar(&cfg.Probe, "probe", cfg.Probe, "check that the version exists before downloading")
	fl.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "per-request timeout (0 disables)")
	fl.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")

	cmd.MarkFlagRequired("path")
	cmd.MarkFlagRequired("mcversion")
	cmd.MarkFlagDirname("path")
	cmd.MarkFlagFilename("config", "yaml", "yml")
	cmd.RegisterFlagCompletionFunc("lang", func(*cobra.Command, []string, string) ([]cobra.Completion, cobra.ShellCompDirective) {
		return render.Languages(), cobra.ShellCompDirectiveNoFileComp
	})
	cmd.CompletionOptions.HiddenDefaultCmd = true

	return cmd
}

// normalizeAliases maps multi-letter aliases onto their flag.
func normalizeAliases(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	switch name {
	case "mcv":
		name = "mcversion"
	}
	return pflag.NormalizedName(name)
}

func explicitFlags(fl *pflag.FlagSet) map[string]bool {
	explicit := make(map[string]bool)
	fl.Visit(func(f *pflag.Flag) {
		explicit[f.Name] = true
	})
	return explicit
}

func renderUsage(text string) string {
	if isTTY(os.Stdout) {
		r, err := glamour.NewTermRenderer(
			glamour.WithEnvironmentConfig(),
			glamour.WithWordWrap(100),
		)
		if err == nil {
			if s, err := r.Render(text); err == nil {
				return s
			}
		}
	}
	return text
}

func isTTY(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd())
	}
	return false
}
