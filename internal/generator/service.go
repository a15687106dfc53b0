// Package generator orchestrates one build: it discovers entry folders,
// drives the compilation pipeline, registers anchors and links with the
// validator, and writes the JSON output tree.
package generator

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/enescakir/emoji"
	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"

	"github.com/goliatone/go-articles/content"
	"github.com/goliatone/go-articles/internal/frontmatter"
	"github.com/goliatone/go-articles/internal/imaging"
	"github.com/goliatone/go-articles/internal/links"
	"github.com/goliatone/go-articles/internal/logging"
	"github.com/goliatone/go-articles/internal/markdown"
	"github.com/goliatone/go-articles/pkg/interfaces"
)

const entryFileName = "README.md"

const (
	codeEntryRead          = "articles.generator.entry_read"
	codeFrontmatterInvalid = "articles.generator.frontmatter_invalid"
	codeCompileFailed      = "articles.generator.compile_failed"
	codeHeaderImage        = "articles.generator.header_image"
	codeOutputWrite        = "articles.generator.output_write"
)

// Config captures runtime behaviour for one build.
type Config struct {
	// SourceDir is the repository root containing one folder per
	// collection.
	SourceDir string
	// OutputDir receives the generated JSON tree and copied assets.
	OutputDir string
	// ImageBaseURL is the origin prefix for generated image URLs. It
	// defaults to the deferred placeholder token.
	ImageBaseURL string
	// Collections lists the corpora to build, in order.
	Collections []content.Collection
}

func (c Config) withDefaults() Config {
	if c.ImageBaseURL == "" {
		c.ImageBaseURL = markdown.ImagePlaceholder
	}
	if len(c.Collections) == 0 {
		c.Collections = []content.Collection{content.CollectionBlog, content.CollectionMaterial}
	}
	return c
}

// Result reports one completed build.
type Result struct {
	BuildID     string
	StartedAt   time.Time
	Duration    time.Duration
	Collections map[content.Collection][]content.Entry
	Report      links.Report
}

// Service runs builds. Entries are processed strictly sequentially and
// fail fast: a partially built corpus with silently skipped entries is
// worse than a hard failure.
type Service struct {
	cfg       Config
	logger    interfaces.Logger
	compiler  *markdown.Compiler
	validator *links.Validator
	prober    interfaces.ImageProber
}

// Option customises Service construction.
type Option func(*Service)

// WithImageProber overrides the filesystem prober, mainly for tests.
func WithImageProber(p interfaces.ImageProber) Option {
	return func(s *Service) { s.prober = p }
}

// New constructs a build service. The validator is owned by the service and
// reset at the start of every build.
func New(cfg Config, provider interfaces.LoggerProvider, opts ...Option) *Service {
	s := &Service{
		cfg:       cfg.withDefaults(),
		logger:    logging.GeneratorLogger(provider),
		compiler:  markdown.New(logging.MarkdownLogger(provider)),
		validator: links.New(logging.LinksLogger(provider)),
		prober:    imaging.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Build compiles every collection, validates anchor links across the whole
// corpus, and writes the output tree. The returned Result is complete even
// when the link report is invalid; broken links are diagnostics, not
// failures.
func (s *Service) Build(ctx context.Context) (*Result, error) {
	started := time.Now()
	s.validator.Reset()

	result := &Result{
		BuildID:     uuid.NewString(),
		StartedAt:   started,
		Collections: map[content.Collection][]content.Entry{},
	}

	s.logger.Info("build started", "build_id", result.BuildID, "source", s.cfg.SourceDir)

	for _, collection := range s.cfg.Collections {
		entries, err := s.buildCollection(ctx, collection)
		if err != nil {
			return nil, err
		}

		content.SortEntries(entries)
		if err := s.writeList(collection, entries); err != nil {
			return nil, err
		}
		result.Collections[collection] = entries

		s.logger.Info("collection built", "collection", collection, "entries", len(entries))
	}

	result.Report = s.validator.Validate()
	result.Duration = time.Since(started)

	if err := s.writeManifest(result); err != nil {
		return nil, err
	}

	s.logger.Info("build finished",
		"build_id", result.BuildID,
		"duration", result.Duration.String(),
		"links_valid", result.Report.Valid,
	)

	return result, nil
}

// buildCollection compiles every entry folder under the collection root, in
// directory order.
func (s *Service) buildCollection(ctx context.Context, collection content.Collection) ([]content.Entry, error) {
	root := filepath.Join(s.cfg.SourceDir, string(collection))

	slugs, err := listEntryDirs(root)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryCommand, "list collection folders").
			WithTextCode(codeEntryRead)
	}

	entries := make([]content.Entry, 0, len(slugs))
	for _, slug := range slugs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		entry, err := s.buildEntry(collection, slug)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// buildEntry runs the full pipeline for one folder: read, separate front
// matter, compile, register with the validator, probe the header image,
// then write the entry and copy its assets.
func (s *Service) buildEntry(collection content.Collection, slug string) (content.Entry, error) {
	dir := filepath.Join(s.cfg.SourceDir, string(collection), slug)
	basePath := collection.BasePath() + "/" + slug

	if !content.IsValidSlug(slug) {
		s.logger.Warn("entry folder name is not a clean slug",
			"path", basePath,
			"suggestion", content.SuggestSlug(slug),
		)
	}

	raw, err := os.ReadFile(filepath.Join(dir, entryFileName))
	if err != nil {
		return content.Entry{}, goerrors.Wrap(err, goerrors.CategoryValidation, "read entry source").
			WithTextCode(codeEntryRead)
	}

	meta, body, err := frontmatter.Parse(string(raw))
	if err != nil {
		return content.Entry{}, goerrors.Wrap(err, goerrors.CategoryValidation, "parse front matter for "+basePath).
			WithTextCode(codeFrontmatterInvalid)
	}

	imageBase := s.cfg.ImageBaseURL + basePath + "/"
	compiled, err := s.compiler.Compile(body, markdown.Options{
		ImageBaseURL: imageBase,
		LinkBasePath: basePath,
	})
	if err != nil {
		return content.Entry{}, goerrors.Wrap(err, goerrors.CategoryCommand, "compile "+basePath).
			WithTextCode(codeCompileFailed)
	}

	ids := make([]string, 0, len(compiled.Headings))
	for _, h := range compiled.Headings {
		ids = append(ids, h.ID)
	}
	s.validator.RegisterAnchors(basePath, ids)
	s.validator.RegisterLinks(basePath, compiled.HTML)

	entryMeta := content.NewMeta(meta)
	if meta.Header != "" {
		header, err := s.probeHeader(dir, imageBase, meta.Header)
		if err != nil {
			return content.Entry{}, err
		}
		entryMeta.Header = header
	}

	entry := content.Entry{
		Slug: slug,
		HTML: emoji.Parse(compiled.HTML),
		Meta: entryMeta,
	}

	if err := s.writeEntry(collection, entry); err != nil {
		return content.Entry{}, err
	}
	if err := s.copyAssets(dir, filepath.Join(s.cfg.OutputDir, string(collection), slug)); err != nil {
		return content.Entry{}, err
	}

	s.logger.Debug("entry built", "path", basePath, "headings", len(ids))
	return entry, nil
}

// probeHeader resolves the declared header image. Failure is fatal: a
// YAML-declared header is a hard content contract, never silently omitted.
func (s *Service) probeHeader(dir, imageBase, header string) (*content.HeaderImage, error) {
	relative := markdown.NormalizeRelativePath(header)

	dims, err := s.prober.Probe(filepath.Join(dir, relative))
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryCommand, "probe header image").
			WithTextCode(codeHeaderImage)
	}

	return &content.HeaderImage{
		URL:    imageBase + relative,
		Width:  dims.Width,
		Height: dims.Height,
	}, nil
}

// listEntryDirs returns the immediate subdirectory names of root, skipping
// draft folders whose name starts with an underscore. An absent root reads
// as an empty collection.
func listEntryDirs(root string) ([]string, error) {
	dirents, err := os.ReadDir(root)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var slugs []string
	for _, d := range dirents {
		if !d.IsDir() {
			continue
		}
		if strings.HasPrefix(d.Name(), "_") {
			continue
		}
		slugs = append(slugs, d.Name())
	}
	return slugs, nil
}
