package types

// ServiceCategory names the radio service an allocation is assigned to.
type ServiceCategory string

const (
	ServiceAmateur         ServiceCategory = "Amateur"
	ServiceBroadcasting    ServiceCategory = "Broadcasting"
	ServiceAeronautical    ServiceCategory = "Aeronautical"
	ServiceMaritime        ServiceCategory = "Maritime"
	ServiceMobile          ServiceCategory = "Mobile"
	ServiceFixed           ServiceCategory = "Fixed"
	ServiceSatellite       ServiceCategory = "Satellite"
	ServiceRadionavigation ServiceCategory = "Radionavigation"
	ServiceRadioAstronomy  ServiceCategory = "Radio Astronomy"
	ServiceISM             ServiceCategory = "ISM"
	ServiceGovernment      ServiceCategory = "Government"
	ServiceTimeSignal      ServiceCategory = "Time Signal"
)

// Allocation is a labeled frequency range inside a band. Frequencies are in MHz.
type Allocation struct {
	Start   float64         `json:"start"`
	End     float64         `json:"end"`
	Name    string          `json:"name"`
	Service ServiceCategory `json:"service"`
	Color   string          `json:"color"`
}

// Contains reports whether freq lies in [Start, End], both ends inclusive.
func (a Allocation) Contains(freq float64) bool {
	return freq >= a.Start && freq <= a.End
}

// Bandwidth returns End - Start in MHz.
func (a Allocation) Bandwidth() float64 {
	return a.End - a.Start
}

// Band is a named frequency interval with its allocations in ascending
// start order.
type Band struct {
	ID              string       `json:"id"`
	DisplayName     string       `json:"display_name"`
	RangeLabel      string       `json:"range_label"`
	MinFreq         float64      `json:"min_freq"`
	MaxFreq         float64      `json:"max_freq"`
	UsesDescription string       `json:"uses"`
	Allocations     []Allocation `json:"allocations"`
}

// Span returns MaxFreq - MinFreq.
func (b Band) Span() float64 {
	return b.MaxFreq - b.MinFreq
}

// Midpoint returns the center frequency of the band.
func (b Band) Midpoint() float64 {
	return (b.MinFreq + b.MaxFreq) / 2
}

// Details is the payload shown when an allocation is clicked.
type Details struct {
	Name                string
	Service             string
	FrequencyRangeLabel string
	BandwidthLabel      string
}
