package generator

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-articles/content"
	"github.com/goliatone/go-articles/internal/links"
)

const (
	entryOutputName    = "entry.json"
	listOutputName     = "list.json"
	manifestOutputName = "manifest.json"
)

// writeEntry serialises one compiled entry into its output folder.
func (s *Service) writeEntry(collection content.Collection, entry content.Entry) error {
	dir := filepath.Join(s.cfg.OutputDir, string(collection), entry.Slug)
	return s.writeJSON(filepath.Join(dir, entryOutputName), entry)
}

// writeList serialises the abbreviated collection list. The blog and
// material collections carry different metadata projections.
func (s *Service) writeList(collection content.Collection, entries []content.Entry) error {
	path := filepath.Join(s.cfg.OutputDir, string(collection), listOutputName)

	var list any
	switch collection {
	case content.CollectionBlog:
		list = content.MakeLightBlogList(entries)
	default:
		list = content.MakeLightList(entries)
	}
	return s.writeJSON(path, list)
}

// manifest is the machine-readable summary written at the output root.
type manifest struct {
	BuildID     string         `json:"buildId"`
	GeneratedAt string         `json:"generatedAt"`
	Duration    string         `json:"duration"`
	Collections map[string]int `json:"collections"`
	Links       manifestLinks  `json:"links"`
}

type manifestLinks struct {
	Valid  bool               `json:"valid"`
	Total  int                `json:"total"`
	Broken []links.BrokenLink `json:"broken,omitempty"`
}

func (s *Service) writeManifest(result *Result) error {
	counts := make(map[string]int, len(result.Collections))
	for collection, entries := range result.Collections {
		counts[string(collection)] = len(entries)
	}

	m := manifest{
		BuildID:     result.BuildID,
		GeneratedAt: result.StartedAt.UTC().Format(time.RFC3339),
		Duration:    result.Duration.String(),
		Collections: counts,
		Links: manifestLinks{
			Valid:  result.Report.Valid,
			Total:  result.Report.TotalLinks,
			Broken: result.Report.BrokenLinks,
		},
	}
	return s.writeJSON(filepath.Join(s.cfg.OutputDir, manifestOutputName), m)
}

func (s *Service) writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryCommand, "create output folder").
			WithTextCode(codeOutputWrite)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryCommand, "encode "+filepath.Base(path)).
			WithTextCode(codeOutputWrite)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryCommand, "write "+filepath.Base(path)).
			WithTextCode(codeOutputWrite)
	}
	return nil
}

// copyAssets mirrors every non-Markdown file from the entry folder into the
// output folder, preserving subdirectories. Images and downloads referenced
// by relative paths stay resolvable next to entry.json.
func (s *Service) copyAssets(sourceDir, outputDir string) error {
	err := filepath.WalkDir(sourceDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(d.Name()), ".md") {
			return nil
		}

		rel, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return err
		}
		return copyFile(path, filepath.Join(outputDir, rel))
	})
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryCommand, "copy entry assets").
			WithTextCode(codeOutputWrite)
	}
	return nil
}

func copyFile(source, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	in, err := os.Open(source)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(target)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
