// Package articles turns a folder tree of Markdown entries into a JSON
// content API: one entry.json per folder, one list.json per collection, and
// a manifest with a cross-corpus anchor-link report.
package articles

import (
	"context"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-articles/content"
	"github.com/goliatone/go-articles/internal/generator"
	"github.com/goliatone/go-articles/internal/links"
	"github.com/goliatone/go-articles/internal/logging/gologger"
	"github.com/goliatone/go-articles/pkg/interfaces"
)

// Entry exports the compiled entry type for consumers of the module.
type Entry = content.Entry

// EntryMeta exports the normalized metadata written to entry.json.
type EntryMeta = content.EntryMeta

// Collection exports the corpus identifier.
type Collection = content.Collection

const (
	CollectionBlog     = content.CollectionBlog
	CollectionMaterial = content.CollectionMaterial
)

// BuildResult exports the per-build summary.
type BuildResult = generator.Result

// LinkReport exports the anchor-link validation outcome.
type LinkReport = links.Report

// BrokenLink exports one unresolved anchor link with its suggestions.
type BrokenLink = links.BrokenLink

// FormatReport renders a link report for console output.
func FormatReport(report LinkReport) string {
	return generator.FormatReport(report)
}

// Module is the top-level build facade.
type Module struct {
	service *generator.Service
}

type moduleOptions struct {
	provider interfaces.LoggerProvider
	prober   interfaces.ImageProber
}

// Option customises module construction.
type Option func(*moduleOptions)

// WithLoggerProvider replaces the embedded go-logger provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(o *moduleOptions) { o.provider = provider }
}

// WithImageProber replaces the filesystem image prober.
func WithImageProber(prober interfaces.ImageProber) Option {
	return func(o *moduleOptions) { o.prober = prober }
}

// New validates the configuration and wires the build service.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "invalid configuration").
			WithTextCode("articles.config_invalid")
	}

	options := moduleOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	if options.provider == nil {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
		})
		if err != nil {
			return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "invalid logging configuration").
				WithTextCode("articles.config_invalid")
		}
		options.provider = provider
	}

	generatorOpts := []generator.Option{}
	if options.prober != nil {
		generatorOpts = append(generatorOpts, generator.WithImageProber(options.prober))
	}

	service := generator.New(generator.Config{
		SourceDir:    cfg.SourceDir,
		OutputDir:    cfg.OutputDir,
		ImageBaseURL: cfg.ImageBaseURL,
		Collections:  cfg.Collections,
	}, options.provider, generatorOpts...)

	return &Module{service: service}, nil
}

// Build runs one full pipeline pass and returns its summary.
func (m *Module) Build(ctx context.Context) (*BuildResult, error) {
	return m.service.Build(ctx)
}
