package mandelbrot

import "image"

// Image is a square single-channel raster: one byte per pixel, rows stored
// top to bottom in one contiguous buffer.
type Image struct {
	Pix  []uint8
	Side int
}

func NewImage(side int) *Image {
	return &Image{
		Pix:  make([]uint8, side*side),
		Side: side,
	}
}

// Offset converts an (column, row) coordinate to its position in the 1d buffer.
func (img *Image) Offset(column int, row int) int {
	return row*img.Side + column
}

func (img *Image) Set(column int, row int, gray uint8) {
	img.Pix[img.Offset(column, row)] = gray
}

func (img *Image) At(column int, row int) uint8 {
	return img.Pix[img.Offset(column, row)]
}

// Gray copies the buffer into a stdlib image.Gray so the standard codecs can
// encode it. image.Gray uses the same row-major layout so this is a straight
// copy.
func (img *Image) Gray() *image.Gray {
	gray := image.NewGray(image.Rect(0, 0, img.Side, img.Side))
	copy(gray.Pix, img.Pix)
	return gray
}
