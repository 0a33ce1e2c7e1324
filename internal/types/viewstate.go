package types

import (
	"math"
	"strconv"
	"strings"
)

// View limits.
const (
	MinZoom           = 0.5
	MaxZoom           = 10.0
	ZoomStep          = 1.5
	MinTunedFrequency = 0.001
)

// ViewState is the user-controlled view of a band: which band is shown, the
// tuned frequency marker, the zoom factor and the pan offset from the tuned
// frequency. Frequencies are in MHz.
type ViewState struct {
	SelectedBandID string  `json:"selected_band"`
	TunedFrequency float64 `json:"tuned_frequency"`
	ZoomLevel      float64 `json:"zoom_level"`
	PanOffset      float64 `json:"pan_offset"`
}

// NewViewState returns the initial view of a band, tuned to its midpoint.
func NewViewState(b Band) ViewState {
	return ViewState{
		SelectedBandID: b.ID,
		TunedFrequency: b.Midpoint(),
		ZoomLevel:      1,
	}
}

// SelectBand switches to b and retunes to its midpoint. Zoom and pan are
// left as they are.
func (v *ViewState) SelectBand(b Band) {
	v.SelectedBandID = b.ID
	v.TunedFrequency = b.Midpoint()
}

// SetTunedFrequency accepts any finite positive frequency and reports
// whether it was applied.
func (v *ViewState) SetTunedFrequency(f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return false
	}
	v.TunedFrequency = f
	return true
}

// SetTunedFrequencyText parses s as MHz. Unparseable input is ignored.
func (v *ViewState) SetTunedFrequencyText(s string) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return false
	}
	return v.SetTunedFrequency(f)
}

// StepTune moves the tuned frequency by delta MHz, never below
// MinTunedFrequency.
func (v *ViewState) StepTune(delta float64) {
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return
	}
	v.TunedFrequency = math.Max(MinTunedFrequency, v.TunedFrequency+delta)
}

func (v *ViewState) ZoomIn() {
	v.ZoomLevel = ClampZoom(v.ZoomLevel * ZoomStep)
}

func (v *ViewState) ZoomOut() {
	v.ZoomLevel = ClampZoom(v.ZoomLevel / ZoomStep)
}

// ResetView restores zoom 1 and no pan. The tuned frequency is kept.
func (v *ViewState) ResetView() {
	v.ZoomLevel = 1
	v.PanOffset = 0
}

// Pan shifts the view center by delta MHz.
func (v *ViewState) Pan(delta float64) {
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return
	}
	v.PanOffset += delta
}

// Normalize repairs values that did not come through the mutators, such as
// state decoded from disk.
func (v *ViewState) Normalize() {
	v.ZoomLevel = ClampZoom(v.ZoomLevel)
	if math.IsNaN(v.TunedFrequency) || math.IsInf(v.TunedFrequency, 0) || v.TunedFrequency < MinTunedFrequency {
		v.TunedFrequency = MinTunedFrequency
	}
	if math.IsNaN(v.PanOffset) || math.IsInf(v.PanOffset, 0) {
		v.PanOffset = 0
	}
}

// ClampZoom limits z to [MinZoom, MaxZoom]. NaN becomes 1.
func ClampZoom(z float64) float64 {
	if math.IsNaN(z) {
		return 1
	}
	return math.Max(MinZoom, math.Min(MaxZoom, z))
}
