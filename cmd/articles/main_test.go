package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunBuildsAndReports(t *testing.T) {
	source := t.TempDir()
	output := t.TempDir()

	dir := filepath.Join(source, "blog", "post")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	doc := "---\ntitle: CLI Post\npublished: 2024-01-02\n---\n\n# Intro\n\nSee [intro](#intro).\n"
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	var out strings.Builder
	err := run([]string{
		"-source", source,
		"-output", output,
		"-collections", "blog",
		"-log-level", "error",
	}, &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if !strings.Contains(out.String(), "built 1 entries") {
		t.Fatalf("unexpected output: %q", out.String())
	}
	if !strings.Contains(out.String(), "valid") {
		t.Fatalf("expected link summary: %q", out.String())
	}
	if _, err := os.Stat(filepath.Join(output, "blog", "post", "entry.json")); err != nil {
		t.Fatalf("entry.json missing: %v", err)
	}
}

func TestRunSurfacesBuildFailure(t *testing.T) {
	source := t.TempDir()
	dir := filepath.Join(source, "blog", "bad")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("no front matter\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	var out strings.Builder
	err := run([]string{
		"-source", source,
		"-output", t.TempDir(),
		"-collections", "blog",
		"-log-level", "error",
	}, &out)
	if err == nil {
		t.Fatal("expected failure for entry without front matter")
	}
}
