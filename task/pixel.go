package task

import "fmt"

// Pixel is one evaluated coordinate: the gray intensity to store at
// (Column, Row).
type Pixel struct {
	Column int
	Gray   uint8
	Row    int
}

func (p *Pixel) String() string {
	output := "{Pixel "
	output += fmt.Sprintf("Column: %d ", p.Column)
	output += fmt.Sprintf("Gray: %d ", p.Gray)
	output += fmt.Sprintf("Row: %d}", p.Row)
	return output
}
