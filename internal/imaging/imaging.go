// Package imaging resolves pixel dimensions for header images. Only the
// image header is decoded; the pixel data never loads.
package imaging

import (
	"errors"
	"fmt"
	"image"
	"os"

	// Registered decoders for the formats entry folders actually contain.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/goliatone/go-articles/pkg/interfaces"
)

// ErrIndeterminate reports an image whose dimensions could not be resolved.
var ErrIndeterminate = errors.New("imaging: image dimensions indeterminate")

// Prober implements interfaces.ImageProber against the local filesystem.
type Prober struct{}

var _ interfaces.ImageProber = Prober{}

// New returns a filesystem-backed prober.
func New() Prober {
	return Prober{}
}

// Probe returns the pixel dimensions of the image at path. A missing file,
// an unknown format, or a zero dimension is an error; callers treat header
// images as a hard content contract.
func (Prober) Probe(path string) (interfaces.ImageDimensions, error) {
	f, err := os.Open(path)
	if err != nil {
		return interfaces.ImageDimensions{}, fmt.Errorf("imaging: open %s: %w", path, err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return interfaces.ImageDimensions{}, fmt.Errorf("imaging: probe %s: %w: %v", path, ErrIndeterminate, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return interfaces.ImageDimensions{}, fmt.Errorf("imaging: probe %s (%s): %w", path, format, ErrIndeterminate)
	}

	return interfaces.ImageDimensions{Width: cfg.Width, Height: cfg.Height}, nil
}
