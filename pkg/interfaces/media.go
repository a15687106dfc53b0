package interfaces

// ImageDimensions carries the pixel size reported by an image probe.
type ImageDimensions struct {
	Width  int
	Height int
}

// ImageProber resolves the pixel dimensions of an image on disk. A probe that
// cannot determine both dimensions must return an error; callers treat a
// declared header image as a hard content contract.
type ImageProber interface {
	Probe(path string) (ImageDimensions, error)
}
