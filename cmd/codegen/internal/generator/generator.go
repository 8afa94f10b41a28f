package generator

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/OCharnyshevich/entity-palette/cmd/codegen/internal/config"
	"github.com/OCharnyshevich/entity-palette/cmd/codegen/internal/fetch"
	"github.com/OCharnyshevich/entity-palette/cmd/codegen/internal/naming"
	"github.com/OCharnyshevich/entity-palette/cmd/codegen/internal/render"
)

// Result describes a finished run.
type Result struct {
	ClassName string
	Path      string
	Entities  int
	Elapsed   time.Duration
}

// OutputPath joins the configured directory with the renderer's file name
// for the version's palette class.
func OutputPath(cfg config.Config, r render.Renderer) string {
	doc := render.Document{Version: cfg.Version, ClassName: naming.FormatClassName(cfg.Version)}
	return filepath.Join(cfg.Path, r.FileName(doc))
}

// Run probes, downloads, renders and writes one entity palette. Nothing is
// written unless every earlier step succeeded.
func Run(ctx context.Context, cfg config.Config, log *slog.Logger) (Result, error) {
	start := time.Now()

	r, err := render.For(cfg.Language)
	if err != nil {
		return Result{}, err
	}
	path := OutputPath(cfg, r)

	f := fetch.New(cfg.BaseURL, log, fetch.WithTimeout(cfg.Timeout))
	if cfg.Probe {
		if err := f.Probe(ctx, cfg.Version); err != nil {
			return Result{}, err
		}
	}

	log.Info("obtaining entity data", "version", cfg.Version, "url", f.URL(cfg.Version))
	entities, err := f.Fetch(ctx, cfg.Version)
	if err != nil {
		return Result{}, err
	}

	doc, err := render.NewDocument(cfg.Version, cfg.DocumentNamespace(), entities)
	if err != nil {
		return Result{}, fmt.Errorf("build palette: %w", err)
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, doc); err != nil {
		return Result{}, fmt.Errorf("render %s: %w", doc.ClassName, err)
	}

	if err := replaceFile(path, buf.Bytes(), log); err != nil {
		return Result{}, err
	}

	res := Result{
		ClassName: doc.ClassName,
		Path:      path,
		Entities:  len(doc.Mappings),
		Elapsed:   time.Since(start),
	}
	log.Info("generated palette",
		"class", res.ClassName,
		"path", res.Path,
		"entities", res.Entities,
		"elapsed", res.Elapsed,
	)
	return res, nil
}
