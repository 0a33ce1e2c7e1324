// Package canvas defines the 2D drawing surface the chart renders onto and
// provides three implementations: a call recorder, an RGBA raster and a
// terminal cell grid.
package canvas

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Align is the horizontal anchoring of text relative to its origin.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Font selects text weight. Size is advisory; backends with fixed-size
// glyphs ignore it.
type Font struct {
	Size float64
	Bold bool
}

// Point is a position in surface pixels.
type Point struct {
	X, Y float64
}

// Surface is the minimal drawing capability the renderer needs. Style and
// transform calls affect later drawing until the matching Restore.
type Surface interface {
	Size() (width, height float64)
	Clear(c colorful.Color)

	Save()
	Restore()
	Translate(x, y float64)
	Rotate(radians float64)

	SetFill(c colorful.Color)
	SetStroke(c colorful.Color)
	SetLineWidth(w float64)
	SetLineDash(pattern []float64)
	SetFont(f Font)
	SetTextAlign(a Align)

	FillRect(x, y, w, h float64)
	StrokeRect(x, y, w, h float64)
	Line(x1, y1, x2, y2 float64)
	FillPolygon(points []Point)
	FillText(text string, x, y float64)
	TextWidth(text string) float64
}

// Hex parses a #rrggbb color, falling back to gray on malformed input.
func Hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{R: 0.6, G: 0.6, B: 0.6}
	}
	return c
}

// apply maps a local point through m.
func apply(m drawing.Matrix, p Point) Point {
	x, y := m.TransformPoint(p.X, p.Y)
	return Point{X: x, Y: y}
}

// rectPoints returns the corners of a local rectangle in drawing order.
func rectPoints(x, y, w, h float64) []Point {
	return []Point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
}
