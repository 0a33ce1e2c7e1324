package catalog

import "github.com/schollz/freqchart/internal/types"

// LegendEntry pairs a service category with its swatch color.
type LegendEntry struct {
	Category types.ServiceCategory
	Color    string
}

// fallbackColor is used for categories missing from the legend.
const fallbackColor = "#9E9E9E"

var legend = []LegendEntry{
	{types.ServiceAmateur, "#4CAF50"},
	{types.ServiceBroadcasting, "#FF9800"},
	{types.ServiceAeronautical, "#2196F3"},
	{types.ServiceMaritime, "#00BCD4"},
	{types.ServiceMobile, "#9C27B0"},
	{types.ServiceFixed, "#8D6E63"},
	{types.ServiceSatellite, "#3F51B5"},
	{types.ServiceRadionavigation, "#009688"},
	{types.ServiceRadioAstronomy, "#E91E63"},
	{types.ServiceISM, "#FFC107"},
	{types.ServiceGovernment, "#607D8B"},
	{types.ServiceTimeSignal, "#CDDC39"},
}

// Legend returns the fixed category palette in display order.
func Legend() []LegendEntry {
	out := make([]LegendEntry, len(legend))
	copy(out, legend)
	return out
}

// CategoryColor returns the legend color of a category.
func CategoryColor(c types.ServiceCategory) string {
	for _, e := range legend {
		if e.Category == c {
			return e.Color
		}
	}
	return fallbackColor
}
