// Package markdown renders entry bodies to HTML. It owns the per-document
// heading state (an explicit collector, never package-level), the TOC marker
// expansion, and the image/link URL rewrite policies.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	highlighting "github.com/yuin/goldmark-highlighting/v2"

	"github.com/goliatone/go-articles/internal/headings"
	"github.com/goliatone/go-articles/internal/logging"
	"github.com/goliatone/go-articles/pkg/interfaces"
)

// Marker is the reserved token authors place in a body to request a
// generated table of contents.
const Marker = "[[toc]]"

// Options configure one compilation pass.
type Options struct {
	// ImageBaseURL is prepended to every non-absolute image reference. It
	// may be (and during builds is) the literal placeholder token plus the
	// entry's asset path; consumers substitute the real origin later.
	ImageBaseURL string
	// LinkBasePath is the document's own canonical absolute path
	// (e.g. /blog/my-slug); relative links resolve against it.
	LinkBasePath string
}

// Result carries the rendered HTML and the authoritative heading list
// collected during the final render pass.
type Result struct {
	HTML     string
	Headings []headings.Heading
}

// Compiler turns Markdown bodies into URL-rewritten HTML. The compiler
// itself is stateless; all per-document state lives in the collector created
// inside each Compile call, so documents can be compiled in any order
// without cross-contamination.
type Compiler struct {
	logger interfaces.Logger
}

// New constructs a Compiler. A nil logger falls back to the no-op
// implementation.
func New(logger interfaces.Logger) *Compiler {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Compiler{logger: logger}
}

// Compile renders the body. When the TOC marker is present, a side-effect
// free pre-pass over the content after the first marker collects the heading
// list, and every marker occurrence is replaced with the generated list
// before the real render.
func (c *Compiler) Compile(source string, opts Options) (Result, error) {
	if strings.Contains(source, Marker) {
		idx := strings.Index(source, Marker)
		pre, err := c.collectHeadings(source[idx+len(Marker):], opts)
		if err != nil {
			return Result{}, err
		}
		toc := BuildTOC(pre)
		c.logger.Debug("toc marker expanded", "headings", len(pre))
		source = strings.ReplaceAll(source, Marker, toc)
	}

	rendered, collected, err := c.render(source, opts)
	if err != nil {
		return Result{}, err
	}

	rendered = RewriteImageSources(rendered, opts.ImageBaseURL)
	rendered = RewriteLinkHrefs(rendered, opts.LinkBasePath)

	return Result{HTML: rendered, Headings: collected}, nil
}

// render performs one full parse/render pass with a fresh heading collector.
func (c *Compiler) render(source string, opts Options) (string, []headings.Heading, error) {
	engine := newEngine(opts)
	collector := headings.NewCollector()
	src := []byte(source)

	doc := engine.Parser().Parse(text.NewReader(src))
	if err := assignHeadingIDs(engine, doc, src, collector); err != nil {
		return "", nil, fmt.Errorf("markdown headings: %w", err)
	}

	var buf bytes.Buffer
	if err := engine.Renderer().Render(&buf, src, doc); err != nil {
		return "", nil, fmt.Errorf("markdown render: %w", err)
	}

	return buf.String(), collector.Headings(), nil
}

// collectHeadings parses the given portion without contributing to the final
// output; the resulting ids match what the real pass will assign because
// both start from an empty collector.
func (c *Compiler) collectHeadings(source string, opts Options) ([]headings.Heading, error) {
	engine := newEngine(opts)
	collector := headings.NewCollector()
	src := []byte(source)

	doc := engine.Parser().Parse(text.NewReader(src))
	if err := assignHeadingIDs(engine, doc, src, collector); err != nil {
		return nil, fmt.Errorf("markdown toc pre-pass: %w", err)
	}
	return collector.Headings(), nil
}

// assignHeadingIDs walks the parsed document, records every heading with its
// rendered inline HTML, and stamps the generated id onto the node so the
// HTML renderer emits it.
func assignHeadingIDs(engine goldmark.Markdown, doc ast.Node, source []byte, collector *headings.Collector) error {
	return ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		var buf bytes.Buffer
		for child := h.FirstChild(); child != nil; child = child.NextSibling() {
			if err := engine.Renderer().Render(&buf, source, child); err != nil {
				return ast.WalkStop, err
			}
		}

		record := collector.Add(h.Level, buf.String())
		h.SetAttribute([]byte("id"), []byte(record.ID))
		return ast.WalkSkipChildren, nil
	})
}

// newEngine builds a goldmark.Markdown for a single pass. Instantiating per
// call keeps the image renderer's base URL out of shared state; entry counts
// are small enough that the allocation cost is irrelevant.
func newEngine(opts Options) goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("monokai"),
				highlighting.WithGuessLanguage(true),
			),
		),
		goldmark.WithRendererOptions(
			// Content is trusted, raw HTML passes through.
			html.WithUnsafe(),
			renderer.WithNodeRenderers(
				util.Prioritized(newImageRenderer(opts.ImageBaseURL), 200),
			),
		),
	)
}

// BuildTOC turns collected headings into a nested Markdown list. Only level
// 2 and 3 headings participate; level 3 entries nest under their preceding
// level-2 sibling. Returns the empty string when no heading qualifies.
func BuildTOC(heads []headings.Heading) string {
	var b strings.Builder
	for _, h := range heads {
		switch h.Level {
		case 2:
			b.WriteString("- [" + h.Raw + "](#" + h.ID + ")\n")
		case 3:
			b.WriteString("    - [" + h.Raw + "](#" + h.ID + ")\n")
		}
	}
	return b.String()
}
