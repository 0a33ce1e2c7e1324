package chart

import "github.com/schollz/freqchart/internal/types"

// Hit is the allocation under a pointer.
type Hit struct {
	Index      int
	Allocation types.Allocation
	Frequency  float64
}

// HitTest resolves a pointer position to the first allocation containing the
// frequency under it. Positions off the strip, or frequencies outside the
// visible window, hit nothing.
func HitTest(band types.Band, view types.ViewState, g Geometry, x, y float64) (Hit, bool) {
	freq, ok := FrequencyAt(band, view, g, x, y)
	if !ok {
		return Hit{}, false
	}
	for i, a := range band.Allocations {
		if a.Contains(freq) {
			return Hit{Index: i, Allocation: a, Frequency: freq}, true
		}
	}
	return Hit{}, false
}

// FrequencyAt returns the frequency under x when the pointer is on the strip.
func FrequencyAt(band types.Band, view types.ViewState, g Geometry, x, y float64) (float64, bool) {
	if !g.InChart(y) {
		return 0, false
	}
	w := ResolveWindow(band, view)
	freq := g.Mapper(w).XToFreq(x)
	return freq, w.Contains(freq)
}
