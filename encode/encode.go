// Package encode persists a rendered grayscale image to disk using the
// standard codecs. The renderer itself never touches the filesystem; this is
// the one place pixels meet paths.
package encode

import (
	"fmt"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/AhiyaHiya/MandelbrotSet/mandelbrot"
)

// WriteImage encodes img to path, picking the codec from the file extension.
// Supported extensions are .png, .jpg and .jpeg.
func WriteImage(path string, img *mandelbrot.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create image file %s - %s", path, err)
	}

	gray := img.Gray()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = png.Encode(file, gray)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(file, gray, nil)
	default:
		err = fmt.Errorf("unsupported image extension %q", filepath.Ext(path))
	}
	if err != nil {
		file.Close()
		return fmt.Errorf("unable to encode image %s - %s", path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("unable to close image file %s - %s", path, err)
	}
	return nil
}
