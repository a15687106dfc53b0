package generator

import (
	"context"
	"encoding/json"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-articles/content"
	"github.com/goliatone/go-articles/internal/links"
)

func writeEntrySource(t *testing.T, sourceDir string, collection content.Collection, slug, doc string) string {
	t.Helper()
	dir := filepath.Join(sourceDir, string(collection), slug)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte(doc), 0o644); err != nil {
		t.Fatalf("write README: %v", err)
	}
	return dir
}

func writePNG(t *testing.T, path string, width, height int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, width, height))); err != nil {
		t.Fatalf("encode: %v", err)
	}
}

func newTestService(t *testing.T, sourceDir, outputDir string) *Service {
	t.Helper()
	return New(Config{SourceDir: sourceDir, OutputDir: outputDir}, nil)
}

const minimalDoc = `---
title: Example Post
published: 2024-01-02
---

# Setup

This is the body.
`

func TestBuildWritesEntryListAndManifest(t *testing.T) {
	source := t.TempDir()
	output := t.TempDir()
	writeEntrySource(t, source, content.CollectionBlog, "example", minimalDoc)
	writeEntrySource(t, source, content.CollectionMaterial, "sheet", minimalDoc)

	result, err := newTestService(t, source, output).Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if result.BuildID == "" {
		t.Fatal("expected a build id")
	}

	var entry content.Entry
	data, err := os.ReadFile(filepath.Join(output, "blog", "example", "entry.json"))
	if err != nil {
		t.Fatalf("read entry.json: %v", err)
	}
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("decode entry.json: %v", err)
	}
	if entry.Slug != "example" || entry.Meta.Title != "Example Post" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if entry.Meta.Published != "2024-01-02T00:00:00Z" {
		t.Fatalf("date not normalized: %q", entry.Meta.Published)
	}
	if !strings.Contains(entry.HTML, `<h1 id="setup">`) {
		t.Fatalf("heading id missing: %q", entry.HTML)
	}

	for _, path := range []string{
		filepath.Join(output, "blog", "list.json"),
		filepath.Join(output, "material", "list.json"),
		filepath.Join(output, "material", "sheet", "entry.json"),
	} {
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("missing output %s: %v", path, err)
		}
	}

	var m manifest
	data, err = os.ReadFile(filepath.Join(output, "manifest.json"))
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("decode manifest: %v", err)
	}
	if m.Collections["blog"] != 1 || m.Collections["material"] != 1 {
		t.Fatalf("unexpected manifest counts: %+v", m.Collections)
	}
	if !m.Links.Valid {
		t.Fatalf("expected valid links: %+v", m.Links)
	}
}

func TestBuildSkipsDraftFolders(t *testing.T) {
	source := t.TempDir()
	writeEntrySource(t, source, content.CollectionBlog, "live", minimalDoc)
	writeEntrySource(t, source, content.CollectionBlog, "_draft", "not even valid front matter")

	result, err := newTestService(t, source, t.TempDir()).Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	entries := result.Collections[content.CollectionBlog]
	if len(entries) != 1 || entries[0].Slug != "live" {
		t.Fatalf("draft folder must be skipped: %+v", entries)
	}
}

func TestBuildSortsStickyFirstThenByDate(t *testing.T) {
	source := t.TempDir()
	writeEntrySource(t, source, content.CollectionBlog, "old", "---\ntitle: Old\npublished: 2020-01-01\n---\n\nbody\n")
	writeEntrySource(t, source, content.CollectionBlog, "new", "---\ntitle: New\npublished: 2024-01-01\n---\n\nbody\n")
	writeEntrySource(t, source, content.CollectionBlog, "pinned", "---\ntitle: Pinned\npublished: 2019-01-01\nsticky: true\n---\n\nbody\n")

	result, err := New(Config{
		SourceDir:   source,
		OutputDir:   t.TempDir(),
		Collections: []content.Collection{content.CollectionBlog},
	}, nil).Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var slugs []string
	for _, e := range result.Collections[content.CollectionBlog] {
		slugs = append(slugs, e.Slug)
	}
	want := []string{"pinned", "new", "old"}
	for i := range want {
		if slugs[i] != want[i] {
			t.Fatalf("unexpected order: got %v, want %v", slugs, want)
		}
	}
}

func TestBuildProbesHeaderImage(t *testing.T) {
	source := t.TempDir()
	dir := writeEntrySource(t, source, content.CollectionBlog, "post", `---
title: With Header
published: 2024-01-02
header: ./header.png
---

body
`)
	writePNG(t, filepath.Join(dir, "header.png"), 800, 600)

	result, err := newTestService(t, source, t.TempDir()).Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	header := result.Collections[content.CollectionBlog][0].Meta.Header
	if header == nil {
		t.Fatal("expected header image")
	}
	if header.URL != "%%IMAGE_BASE%%/blog/post/header.png" {
		t.Fatalf("unexpected header URL: %q", header.URL)
	}
	if header.Width != 800 || header.Height != 600 {
		t.Fatalf("unexpected dimensions: %+v", header)
	}
}

func TestBuildFailsOnMissingHeaderImage(t *testing.T) {
	source := t.TempDir()
	writeEntrySource(t, source, content.CollectionBlog, "post", `---
title: With Header
published: 2024-01-02
header: ./absent.png
---

body
`)

	if _, err := newTestService(t, source, t.TempDir()).Build(context.Background()); err == nil {
		t.Fatal("expected build failure for missing header image")
	}
}

func TestBuildFailsWithoutFrontmatter(t *testing.T) {
	source := t.TempDir()
	writeEntrySource(t, source, content.CollectionBlog, "bad", "# Just Markdown\n\nno front matter\n")

	if _, err := newTestService(t, source, t.TempDir()).Build(context.Background()); err == nil {
		t.Fatal("expected build failure for missing front matter")
	}
}

func TestBuildRewritesImageSources(t *testing.T) {
	source := t.TempDir()
	writeEntrySource(t, source, content.CollectionBlog, "post", `---
title: Images
published: 2024-01-02
---

![diagram](./diagram.png)
`)

	result, err := newTestService(t, source, t.TempDir()).Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	html := result.Collections[content.CollectionBlog][0].HTML
	if !strings.Contains(html, `src="%%IMAGE_BASE%%/blog/post/diagram.png"`) {
		t.Fatalf("image source not rewritten: %q", html)
	}
}

func TestBuildReportsBrokenAnchorLinks(t *testing.T) {
	source := t.TempDir()
	writeEntrySource(t, source, content.CollectionBlog, "post", `---
title: Links
published: 2024-01-02
---

# Setup

See [the setup](#setup-1).
`)

	result, err := newTestService(t, source, t.TempDir()).Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	report := result.Report
	if report.Valid || len(report.BrokenLinks) != 1 {
		t.Fatalf("expected one broken link: %+v", report)
	}
	broken := report.BrokenLinks[0]
	if broken.TargetMissing {
		t.Fatalf("target path exists, only the anchor is wrong: %+v", broken)
	}
	if len(broken.Suggestions) == 0 || broken.Suggestions[0] != "setup" {
		t.Fatalf("expected suggestion \"setup\": %+v", broken.Suggestions)
	}
}

func TestBuildValidatesLinksAcrossCollections(t *testing.T) {
	source := t.TempDir()
	writeEntrySource(t, source, content.CollectionBlog, "post", `---
title: Cross
published: 2024-01-02
---

See [the sheet](/material/sheet#details).
`)
	writeEntrySource(t, source, content.CollectionMaterial, "sheet", `---
title: Sheet
published: 2024-01-02
---

# Details

content
`)

	result, err := newTestService(t, source, t.TempDir()).Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !result.Report.Valid {
		t.Fatalf("cross-collection link must resolve: %+v", result.Report)
	}
}

func TestBuildCopiesAssets(t *testing.T) {
	source := t.TempDir()
	output := t.TempDir()
	dir := writeEntrySource(t, source, content.CollectionBlog, "post", minimalDoc)
	if err := os.WriteFile(filepath.Join(dir, "data.txt"), []byte("payload"), 0o644); err != nil {
		t.Fatalf("write asset: %v", err)
	}

	if _, err := newTestService(t, source, output).Build(context.Background()); err != nil {
		t.Fatalf("Build: %v", err)
	}

	copied, err := os.ReadFile(filepath.Join(output, "blog", "post", "data.txt"))
	if err != nil {
		t.Fatalf("asset not copied: %v", err)
	}
	if string(copied) != "payload" {
		t.Fatalf("asset content mismatch: %q", copied)
	}
	if _, err := os.Stat(filepath.Join(output, "blog", "post", "README.md")); !os.IsNotExist(err) {
		t.Fatalf("markdown source must not be copied: %v", err)
	}
}

func TestBuildParsesEmojiShortcodes(t *testing.T) {
	source := t.TempDir()
	writeEntrySource(t, source, content.CollectionBlog, "post", `---
title: Emoji
published: 2024-01-02
---

Cheers :beer:
`)

	result, err := newTestService(t, source, t.TempDir()).Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if strings.Contains(result.Collections[content.CollectionBlog][0].HTML, ":beer:") {
		t.Fatal("emoji shortcode must be replaced")
	}
}

func TestBuildHonorsCancelledContext(t *testing.T) {
	source := t.TempDir()
	writeEntrySource(t, source, content.CollectionBlog, "post", minimalDoc)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := newTestService(t, source, t.TempDir()).Build(ctx); err == nil {
		t.Fatal("expected context cancellation error")
	}
}

func TestFormatReportValid(t *testing.T) {
	got := FormatReport(links.Report{Valid: true, TotalLinks: 7})
	if !strings.Contains(got, "7") || !strings.Contains(got, "valid") {
		t.Fatalf("unexpected report: %q", got)
	}
}

func TestFormatReportBroken(t *testing.T) {
	report := links.Report{
		TotalLinks: 2,
		BrokenLinks: []links.BrokenLink{
			{
				AnchorLink: links.AnchorLink{
					FromPath: "/blog/a",
					ToPath:   "/blog/b",
					Anchor:   "setup-1",
					FullLink: "/blog/b#setup-1",
				},
				Suggestions: []string{"setup"},
			},
			{
				AnchorLink: links.AnchorLink{
					FromPath: "/blog/a",
					ToPath:   "/blog/gone",
					Anchor:   "x",
					FullLink: "/blog/gone#x",
				},
				TargetMissing: true,
			},
		},
	}

	got := FormatReport(report)
	if !strings.Contains(got, "/blog/b#setup-1") || !strings.Contains(got, "did you mean setup") {
		t.Fatalf("suggestion missing: %q", got)
	}
	if !strings.Contains(got, "no entry at /blog/gone") {
		t.Fatalf("missing-target line wrong: %q", got)
	}
}
