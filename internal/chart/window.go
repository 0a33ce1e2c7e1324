// Package chart turns a band and a view state into pixels and back: window
// resolution, the frequency/pixel mapping, rendering and hit testing.
package chart

import (
	"math"

	"github.com/schollz/freqchart/internal/types"
)

// MinVisibleRange is the narrowest window span in MHz.
const MinVisibleRange = 1e-6

// Window is the frequency interval currently on screen.
type Window struct {
	Start, End float64
}

// Span returns End - Start.
func (w Window) Span() float64 {
	return w.End - w.Start
}

// Contains reports whether f lies in [Start, End].
func (w Window) Contains(f float64) bool {
	return f >= w.Start && f <= w.End
}

// ResolveWindow computes the visible window for a band and view. The window
// is centered on tuned+pan and shifted back inside the band, low edge first.
// When the window is wider than the band both shifts apply and it ends up
// anchored at MaxFreq.
func ResolveWindow(band types.Band, view types.ViewState) Window {
	zoom := view.ZoomLevel
	if zoom <= 0 || math.IsNaN(zoom) {
		zoom = 1
	}
	visible := math.Max(band.Span()/zoom, MinVisibleRange)

	center := view.TunedFrequency + view.PanOffset
	start := center - visible/2
	end := center + visible/2

	if start < band.MinFreq {
		start = band.MinFreq
		end = start + visible
	}
	if end > band.MaxFreq {
		end = band.MaxFreq
		start = end - visible
	}
	return Window{Start: start, End: end}
}
