// Package fetch downloads minecraft-data entity tables.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goaux/stacktrace/v2"
	"github.com/hashicorp/go-cleanhttp"
	getter "github.com/hashicorp/go-getter"

	"github.com/OCharnyshevich/entity-palette/cmd/codegen/internal/schema"
)

// DefaultBaseURL is the raw PrismarineJS minecraft-data tree for the PC edition.
const DefaultBaseURL = "https://raw.githubusercontent.com/PrismarineJS/minecraft-data/master/data/pc"

var (
	ErrUnreachable     = errors.New("could not contact URL")
	ErrVersionNotFound = errors.New("no data found")
	ErrEmptyPayload    = errors.New("no data to obtain")
)

// Fetcher resolves and downloads entities.json for a version.
type Fetcher struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
	log     *slog.Logger
}

// Option configures a Fetcher.
type Option func(f *Fetcher)

// WithHTTPClient replaces the HTTP client used for both the probe and the download.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// WithTimeout bounds every request. Zero keeps the client's own timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

func New(baseURL string, log *slog.Logger, opts ...Option) *Fetcher {
	f := &Fetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  cleanhttp.DefaultClient(),
		log:     log,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.timeout > 0 {
		c := *f.client
		c.Timeout = f.timeout
		f.client = &c
	}
	return f
}

// URL returns <base>/<version>/entities.json.
func (f *Fetcher) URL(version string) string {
	return fmt.Sprintf("%s/%s/entities.json", f.baseURL, version)
}

// Probe checks that the version's entities.json exists before anything is
// downloaded.
func (f *Fetcher) Probe(ctx context.Context, version string) error {
	url := f.URL(version)

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrUnreachable, url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrUnreachable, url, err)
	}
	resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%w for Minecraft version %s (%s)", ErrVersionNotFound, version, resp.Status)
	}

	f.log.Debug("probe ok", "url", url, "status", resp.StatusCode)
	return nil
}

// Fetch downloads and decodes the entity table for version. Records come
// back in source order.
func (f *Fetcher) Fetch(ctx context.Context, version string) ([]schema.Entity, error) {
	src := f.URL(version)

	dir, err := stacktrace.Trace2(os.MkdirTemp("", "entity-palette-"))
	if err != nil {
		return nil, fmt.Errorf("create download directory: %w", err)
	}
	defer os.RemoveAll(dir)

	dst := filepath.Join(dir, "entities.json")
	httpGetter := &getter.HttpGetter{Client: f.client}
	client := &getter.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  dst,
		Mode: getter.ClientModeFile,
		Getters: map[string]getter.Getter{
			"http":  httpGetter,
			"https": httpGetter,
		},
	}
	if err := client.Get(); err != nil {
		return nil, fmt.Errorf("download %s: %w", src, err)
	}

	raw, err := stacktrace.Trace2(os.ReadFile(dst))
	if err != nil {
		return nil, fmt.Errorf("read downloaded entities: %w", err)
	}

	entities, err := schema.LoadEntities(raw)
	if errors.Is(err, schema.ErrNoRecords) {
		return nil, fmt.Errorf("%w for Minecraft version %s", ErrEmptyPayload, version)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", src, err)
	}

	f.log.Debug("downloaded entity data", "url", src, "bytes", len(raw), "entities", len(entities))
	return entities, nil
}
