package mandelbrot

import "fmt"

// Point is a location on the complex plane. X is the real component and Y the
// imaginary component.
type Point struct {
	X float64
	Y float64
}

func (p *Point) String() string {
	output := "{Point "
	output += fmt.Sprintf("X: %f ", p.X)
	output += fmt.Sprintf("Y: %f}", p.Y)
	return output
}
