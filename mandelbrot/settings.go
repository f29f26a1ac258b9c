package mandelbrot

import (
	"fmt"
	"math"
)

type Settings struct {
	CenterX       float64
	CenterY       float64
	MaxIterations int
	PixelsWide    int
	Size          float64
	Workers       int
}

// Verify rejects degenerate render parameters before any pixel is computed.
func (s *Settings) Verify() error {
	if s.Size <= 0 {
		return fmt.Errorf("size must be greater than zero, got %f", s.Size)
	}
	if s.PixelsWide <= 0 {
		return fmt.Errorf("pixelsWide must be greater than zero, got %d", s.PixelsWide)
	}
	if s.MaxIterations <= 0 {
		return fmt.Errorf("maxIterations must be greater than zero, got %d", s.MaxIterations)
	}
	// Every gray value is maxIterations - iterations stored in one byte, so
	// anything above 255 would wrap when narrowed
	if s.MaxIterations > math.MaxUint8 {
		return fmt.Errorf("maxIterations must be at most %d, got %d", math.MaxUint8, s.MaxIterations)
	}
	if s.Workers < 1 {
		s.Workers = 1
	}
	return nil
}

func (s *Settings) String() string {
	output := "{Settings "
	output += fmt.Sprintf("CenterX: %f ", s.CenterX)
	output += fmt.Sprintf("CenterY: %f ", s.CenterY)
	output += fmt.Sprintf("Max Iterations: %d ", s.MaxIterations)
	output += fmt.Sprintf("Pixels Wide: %d ", s.PixelsWide)
	output += fmt.Sprintf("Size: %f ", s.Size)
	output += fmt.Sprintf("Workers: %d}", s.Workers)
	return output
}
