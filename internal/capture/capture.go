// Package capture supplies the raster image the operator measures against.
// The engine never touches pixels; a Source hands a decoded image to the
// canvas and that is the extent of the contract.
package capture

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/tiff"
)

// Source provides the captured raster image.
type Source interface {
	// Capture returns the image to measure against.
	Capture() (image.Image, error)
}

// FileSource loads a stored screenshot from disk.
type FileSource struct {
	Path string
}

// NewFileSource creates a source reading the given file.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Capture decodes the file. PNG, JPEG, and TIFF are supported.
func (s *FileSource) Capture() (image.Image, error) {
	file, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.Path, err)
	}
	return img, nil
}
