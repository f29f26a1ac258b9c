package mandelbrot

import "sync"

type Mandelbrot struct {
	settings Settings
}

func NewMandelbrot(settings Settings) Mandelbrot {
	return Mandelbrot{
		settings: settings,
	}
}

// ScaledCoordinate converts a pixel index on one axis to the matching
// coordinate on the complex plane.
//
//   - The sampled region is a Size x Size box around (CenterX, CenterY), so the
//     axis starts at center - Size/2
//   - Pixel indexes run [0, PixelsWide) from the top left, so each pixel steps
//     the coordinate forward by Size/PixelsWide
//
// The same formula serves both axes since the image is always a square region
// sampled onto a square grid.
func (m *Mandelbrot) ScaledCoordinate(center float64, pixel int) float64 {
	return center - m.settings.Size/2 + (m.settings.Size*float64(pixel))/float64(m.settings.PixelsWide)
}

// PointAt maps an (column, row) pixel coordinate to its point on the complex
// plane using the configured view window.
func (m *Mandelbrot) PointAt(column int, row int) Point {
	return Point{
		X: m.ScaledCoordinate(m.settings.CenterX, column),
		Y: m.ScaledCoordinate(m.settings.CenterY, row),
	}
}

// EscapeTime returns how many steps of z = z*z + c run before |z| exceeds the
// window size, or MaxIterations when the point never escapes.
//
// The recurrence starts at the sample point itself rather than at zero, so the
// first boundary check tests |c| before any squaring step. Magnitudes are
// compared squared to avoid the square root.
// https://en.wikipedia.org/wiki/Plotting_algorithms_for_the_Mandelbrot_set#Unoptimized_na%C3%AFve_escape_time_algorithm
func (m *Mandelbrot) EscapeTime(p Point) int {
	x, y := p.X, p.Y
	boundary := m.settings.Size * m.settings.Size
	for i := 0; i < m.settings.MaxIterations; i++ {
		if x*x+y*y > boundary {
			return i
		}
		x, y = x*x-y*y+p.X, 2*x*y+p.Y
	}
	return m.settings.MaxIterations
}

// Gray is the intensity stored for a point: points that escape quickly are
// dark and points that stay bounded for all of MaxIterations are brightest.
func (m *Mandelbrot) Gray(p Point) uint8 {
	return uint8(m.settings.MaxIterations - m.EscapeTime(p))
}

// Render walks the full pixel grid and fills in a grayscale image. With
// Workers above 1 the rows are fanned out across that many goroutines; every
// pixel writes to its own offset so the output is identical either way.
func (m *Mandelbrot) Render() *Image {
	img := NewImage(m.settings.PixelsWide)

	if m.settings.Workers <= 1 {
		for row := 0; row < m.settings.PixelsWide; row++ {
			m.renderRow(img, row)
		}
		return img
	}

	var wg sync.WaitGroup
	rows := make(chan int)
	for i := 0; i < m.settings.Workers; i++ {
		wg.Add(1)
		go func() {
			for row := range rows {
				m.renderRow(img, row)
			}
			wg.Done()
		}()
	}
	for row := 0; row < m.settings.PixelsWide; row++ {
		rows <- row
	}
	close(rows)
	wg.Wait()

	return img
}

func (m *Mandelbrot) renderRow(img *Image, row int) {
	for column := 0; column < m.settings.PixelsWide; column++ {
		img.Set(column, row, m.Gray(m.PointAt(column, row)))
	}
}
