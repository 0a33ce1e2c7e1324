package chart

import (
	"fmt"

	"github.com/schollz/freqchart/internal/types"
)

// FormatAxisFrequency labels an axis tick: one decimal, GHz from 1000 MHz.
func FormatAxisFrequency(mhz float64) string {
	if mhz >= 1000 {
		return fmt.Sprintf("%.1f GHz", mhz/1000)
	}
	return fmt.Sprintf("%.1f MHz", mhz)
}

// FormatTunedFrequency labels the tuned marker with three decimals.
func FormatTunedFrequency(mhz float64) string {
	if mhz >= 1000 {
		return fmt.Sprintf("%.3f GHz", mhz/1000)
	}
	return fmt.Sprintf("%.3f MHz", mhz)
}

func FormatRange(start, end float64) string {
	if start >= 1000 {
		return fmt.Sprintf("%.3f - %.3f GHz", start/1000, end/1000)
	}
	return fmt.Sprintf("%.3f - %.3f MHz", start, end)
}

func FormatBandwidth(mhz float64) string {
	if mhz >= 1000 {
		return fmt.Sprintf("%.1f GHz", mhz/1000)
	}
	return fmt.Sprintf("%.2f MHz", mhz)
}

// DetailsFor builds the details payload shown for a clicked allocation.
func DetailsFor(a types.Allocation) types.Details {
	return types.Details{
		Name:                a.Name,
		Service:             string(a.Service),
		FrequencyRangeLabel: FormatRange(a.Start, a.End),
		BandwidthLabel:      FormatBandwidth(a.Bandwidth()),
	}
}
