package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/goaux/stacktrace/v2"
	"gopkg.in/yaml.v3"

	"github.com/OCharnyshevich/entity-palette/cmd/codegen/internal/fetch"
	"github.com/OCharnyshevich/entity-palette/cmd/codegen/internal/render"
)

// Config holds one generator run. It is built once in main and passed by
// value from there on.
type Config struct {
	Path      string        `yaml:"path"`      // output directory
	Version   string        `yaml:"mcversion"` // e.g. "1.18.1"
	BaseURL   string        `yaml:"base_url"`
	Language  string        `yaml:"language"`  // "csharp" or "go"
	Namespace string        `yaml:"namespace"` // C# namespace
	Package   string        `yaml:"package"`   // Go package name
	Probe     bool          `yaml:"probe"`     // HEAD the URL before downloading
	Timeout   time.Duration `yaml:"timeout"`   // per request, 0 = none
	LogLevel  string        `yaml:"log_level"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Path:      ".",
		BaseURL:   fetch.DefaultBaseURL,
		Language:  render.LangCSharp,
		Namespace: "MinecraftClient.Mapping.EntityPalettes",
		Package:   "entitypalette",
		Probe:     true,
		Timeout:   30 * time.Second,
		LogLevel:  "info",
	}
}

// Load reads a YAML config file on top of DefaultConfig. Unknown keys are
// an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	f, err := stacktrace.Trace2(os.Open(path))
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile Config, explicitFlags map[string]bool) {
	if !explicitFlags["path"] {
		cfg.Path = fromFile.Path
	}
	if !explicitFlags["mcversion"] {
		cfg.Version = fromFile.Version
	}
	if !explicitFlags["base-url"] {
		cfg.BaseURL = fromFile.BaseURL
	}
	if !explicitFlags["lang"] {
		cfg.Language = fromFile.Language
	}
	if !explicitFlags["namespace"] {
		cfg.Namespace = fromFile.Namespace
	}
	if !explicitFlags["package"] {
		cfg.Package = fromFile.Package
	}
	if !explicitFlags["probe"] {
		cfg.Probe = fromFile.Probe
	}
	if !explicitFlags["timeout"] {
		cfg.Timeout = fromFile.Timeout
	}
	if !explicitFlags["log-level"] {
		cfg.LogLevel = fromFile.LogLevel
	}
}

var rePackage = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Normalize returns a copy with the version coerced to trimmed text.
func (c Config) Normalize() Config {
	c.Version = strings.TrimSpace(c.Version)
	c.Path = strings.TrimSpace(c.Path)
	return c
}

// Validate reports the first problem with c.
func (c Config) Validate() error {
	if c.Path == "" {
		return errors.New("path is required")
	}
	if strings.TrimSpace(c.Version) == "" {
		return errors.New("mcversion is required")
	}
	if !slices.Contains(render.Languages(), c.Language) {
		return fmt.Errorf("unknown language %q (want one of %s)", c.Language, strings.Join(render.Languages(), ", "))
	}
	if c.Language == render.LangGo && !rePackage.MatchString(c.Package) {
		return fmt.Errorf("invalid Go package name %q", c.Package)
	}
	if c.Language == render.LangCSharp && c.Namespace == "" {
		return errors.New("namespace is required for csharp output")
	}
	if c.BaseURL == "" {
		return errors.New("base url is required")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// DocumentNamespace is the namespace or package the renderer should emit.
func (c Config) DocumentNamespace() string {
	if c.Language == render.LangGo {
		return c.Package
	}
	return c.Namespace
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return lvl, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
