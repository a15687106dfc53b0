package imaging

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, dir string, width, height int) string {
	t.Helper()
	path := filepath.Join(dir, "test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return path
}

func TestProbePNG(t *testing.T) {
	path := writeTestPNG(t, t.TempDir(), 640, 480)

	dims, err := New().Probe(path)
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if dims.Width != 640 || dims.Height != 480 {
		t.Fatalf("dimensions mismatch: %+v", dims)
	}
}

func TestProbeMissingFile(t *testing.T) {
	if _, err := New().Probe(filepath.Join(t.TempDir(), "absent.png")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestProbeGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := New().Probe(path)
	if !errors.Is(err, ErrIndeterminate) {
		t.Fatalf("expected ErrIndeterminate, got %v", err)
	}
}
