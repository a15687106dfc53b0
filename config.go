package articles

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-articles/content"
	"github.com/goliatone/go-articles/internal/markdown"
)

// LoggingConfig selects the output of the embedded go-logger provider. It is
// ignored when the caller supplies their own provider through
// WithLoggerProvider.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error, fatal.
	Level string
	// Format is one of json, console, pretty.
	Format string
	// AddSource annotates entries with the emitting call site.
	AddSource bool
}

// Config drives one build pipeline instance.
type Config struct {
	// SourceDir is the content repository root, holding one folder per
	// collection.
	SourceDir string
	// OutputDir receives the generated JSON tree. Existing files are
	// overwritten in place.
	OutputDir string
	// ImageBaseURL prefixes every generated image URL. Leave empty to emit
	// the deferred placeholder token so a downstream consumer can
	// substitute its own origin.
	ImageBaseURL string
	// Collections restricts the build to the named corpora. Empty means
	// both blog and material.
	Collections []content.Collection
	Logging     LoggingConfig
}

// DefaultConfig returns the baseline configuration. Source and output
// directories have no sensible defaults and must be set by the caller.
func DefaultConfig() Config {
	return Config{
		ImageBaseURL: markdown.ImagePlaceholder,
		Collections:  []content.Collection{content.CollectionBlog, content.CollectionMaterial},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Validate enforces the minimum viable configuration.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.SourceDir, validation.Required),
		validation.Field(&c.OutputDir, validation.Required),
	)
}
