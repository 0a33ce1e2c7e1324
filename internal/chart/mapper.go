package chart

import "math"

// Mapper converts between frequencies and horizontal pixel positions for one
// window drawn between Margin and Width-Margin.
type Mapper struct {
	Window Window
	Width  float64
	Margin float64
}

// NewMapper builds a mapper for a window drawn across width pixels with
// margin on each side.
func NewMapper(w Window, width, margin float64) Mapper {
	return Mapper{Window: w, Width: width, Margin: margin}
}

func (m Mapper) plotWidth() float64 {
	return math.Max(m.Width-2*m.Margin, 1)
}

func (m Mapper) span() float64 {
	return math.Max(m.Window.Span(), MinVisibleRange)
}

// FreqToX returns the x coordinate of f.
func (m Mapper) FreqToX(f float64) float64 {
	return m.Margin + (f-m.Window.Start)*m.plotWidth()/m.span()
}

// XToFreq returns the frequency at x.
func (m Mapper) XToFreq(x float64) float64 {
	return m.Window.Start + (x-m.Margin)*m.span()/m.plotWidth()
}
