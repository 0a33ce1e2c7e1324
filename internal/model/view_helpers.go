package model

import (
	"fmt"

	"github.com/schollz/freqchart/internal/chart"
)

// View manipulation helper functions. Every mutation re-resolves hover so
// the highlight follows the allocation now under the pointer.

// SelectBand switches band by id and retunes to its midpoint. Unknown ids
// are ignored.
func (m *Model) SelectBand(id string) bool {
	b, ok := m.Catalog.Band(id)
	if !ok {
		return false
	}
	m.View.SelectBand(b)
	m.Details = nil
	m.refreshPointer()
	return true
}

// CycleBand selects the next (dir > 0) or previous band, wrapping around.
func (m *Model) CycleBand(dir int) {
	m.SelectBand(m.Catalog.Next(m.View.SelectedBandID, dir).ID)
}

func (m *Model) SetTunedFrequency(f float64) bool {
	if !m.View.SetTunedFrequency(f) {
		return false
	}
	m.refreshPointer()
	return true
}

// SetTunedFrequencyText applies typed input; malformed text is ignored.
func (m *Model) SetTunedFrequencyText(s string) bool {
	if !m.View.SetTunedFrequencyText(s) {
		return false
	}
	m.refreshPointer()
	return true
}

func (m *Model) StepTune(delta float64) {
	m.View.StepTune(delta)
	m.refreshPointer()
}

func (m *Model) ZoomIn() {
	m.View.ZoomIn()
	m.refreshPointer()
}

func (m *Model) ZoomOut() {
	m.View.ZoomOut()
	m.refreshPointer()
}

func (m *Model) ResetView() {
	m.View.ResetView()
	m.refreshPointer()
}

// PanView moves the view left (direction < 0) or right by 5% of the visible
// range, or 25% when fast.
func (m *Model) PanView(direction float64, fast bool) {
	stepPercent := 0.05
	if fast {
		stepPercent = 0.25
	}
	m.View.Pan(m.Window().Span() * stepPercent * direction)
	m.refreshPointer()
}

// CenterOnTuned drops the pan offset so the window centers on the tuned
// frequency again.
func (m *Model) CenterOnTuned() {
	m.View.PanOffset = 0
	m.refreshPointer()
}

// PointerMove updates hover and cursor frequency for a pointer at chart
// pixel x, y.
func (m *Model) PointerMove(x, y float64) {
	m.pointerX, m.pointerY, m.pointerOnChart = x, y, true
	m.refreshPointer()
}

// PointerLeave clears hover when the pointer leaves the chart.
func (m *Model) PointerLeave() {
	m.pointerOnChart = false
	m.refreshPointer()
}

// PointerClick shows the details of the allocation at x, y. A click on
// empty space leaves the current details in place.
func (m *Model) PointerClick(x, y float64) bool {
	m.PointerMove(x, y)
	hit, ok := chart.HitTest(m.Band(), m.View, m.Geometry(), x, y)
	if !ok {
		return false
	}
	d := chart.DetailsFor(hit.Allocation)
	m.Details = &d
	return true
}

func (m *Model) ClearDetails() {
	m.Details = nil
}

func (m *Model) refreshPointer() {
	m.Hover = -1
	m.CursorValid = false
	if !m.pointerOnChart {
		return
	}
	band, g := m.Band(), m.Geometry()
	if f, ok := chart.FrequencyAt(band, m.View, g, m.pointerX, m.pointerY); ok {
		m.CursorFrequency, m.CursorValid = f, true
	}
	if hit, ok := chart.HitTest(band, m.View, g, m.pointerX, m.pointerY); ok {
		m.Hover = hit.Index
	}
}

// ViewSummary is a one-line description of the view for the status line.
func (m *Model) ViewSummary() string {
	w := m.Window()
	return fmt.Sprintf("%s  zoom %.2fx  window %s",
		chart.FormatTunedFrequency(m.View.TunedFrequency), m.View.ZoomLevel, chart.FormatRange(w.Start, w.End))
}
