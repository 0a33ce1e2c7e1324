package chart

import "math"

// Layout holds the fixed pixel metrics of a chart. The chart height is what
// remains of the surface after the title area, axis and legend.
type Layout struct {
	Margin            float64
	TitleY            float64
	ChartTop          float64
	AxisHeight        float64
	TickLength        float64
	TickLabelOffset   float64
	NumMarkers        int
	MinMarkerSpacing  float64
	LabelMinWidth     float64
	LegendMargin      float64
	LegendItemWidth   float64
	LegendRowHeight   float64
	LegendSwatch      float64
	LegendSwatchGap   float64
	LegendTextOffset  float64
	MarkerLabelOffset float64
	IndicatorSize     float64
	MinChartHeight    float64
	TitleFont         float64
	LabelFont         float64
}

// DefaultLayout is tuned for pixel surfaces such as PNG export.
func DefaultLayout() Layout {
	return Layout{
		Margin:            40,
		TitleY:            30,
		ChartTop:          80,
		AxisHeight:        50,
		TickLength:        6,
		TickLabelOffset:   20,
		NumMarkers:        10,
		LabelMinWidth:     60,
		LegendMargin:      20,
		LegendItemWidth:   160,
		LegendRowHeight:   22,
		LegendSwatch:      14,
		LegendSwatchGap:   6,
		LegendTextOffset:  11,
		MarkerLabelOffset: 22,
		IndicatorSize:     8,
		MinChartHeight:    40,
		TitleFont:         18,
		LabelFont:         12,
	}
}

// TerminalLayout snaps every metric to the 8x16 cell grid of canvas.Cells.
func TerminalLayout() Layout {
	return Layout{
		Margin:            16,
		TitleY:            12,
		ChartTop:          48,
		AxisHeight:        32,
		TickLength:        6,
		TickLabelOffset:   24,
		NumMarkers:        10,
		MinMarkerSpacing:  88,
		LabelMinWidth:     16,
		LegendMargin:      16,
		LegendItemWidth:   144,
		LegendRowHeight:   16,
		LegendSwatch:      8,
		LegendSwatchGap:   8,
		LegendTextOffset:  12,
		MarkerLabelOffset: 20,
		IndicatorSize:     8,
		MinChartHeight:    16,
		TitleFont:         12,
		LabelFont:         12,
	}
}

// Geometry is a Layout resolved against a surface size.
type Geometry struct {
	Width, Height float64
	Margin        float64
	ChartTop      float64
	ChartHeight   float64
	AxisY         float64
	LegendTop     float64
	LegendColumns int
	LegendRows    int
	Markers       int
}

// Geometry places the chart, axis and a legend of legendItems entries on a
// width x height surface.
func (l Layout) Geometry(width, height float64, legendItems int) Geometry {
	g := Geometry{
		Width:    width,
		Height:   height,
		Margin:   l.Margin,
		ChartTop: l.ChartTop,
		Markers:  max(l.NumMarkers, 1),
	}

	g.LegendColumns = 1
	if l.LegendItemWidth > 0 {
		g.LegendColumns = max(int(math.Floor((width-2*l.LegendMargin)/l.LegendItemWidth)), 1)
	}
	if legendItems > 0 {
		g.LegendRows = (legendItems + g.LegendColumns - 1) / g.LegendColumns
	}

	g.ChartHeight = height - l.ChartTop - l.AxisHeight - l.LegendMargin - float64(g.LegendRows)*l.LegendRowHeight
	g.ChartHeight = math.Max(g.ChartHeight, l.MinChartHeight)
	g.AxisY = g.ChartTop + g.ChartHeight
	g.LegendTop = g.AxisY + l.AxisHeight

	if l.MinMarkerSpacing > 0 {
		plot := width - 2*l.Margin
		g.Markers = max(min(g.Markers, int(plot/l.MinMarkerSpacing)), 1)
	}
	return g
}

// Mapper returns the frequency/pixel mapping for w on this geometry.
func (g Geometry) Mapper(w Window) Mapper {
	return NewMapper(w, g.Width, g.Margin)
}

// InChart reports whether y lies on the allocation strip. NaN is outside.
func (g Geometry) InChart(y float64) bool {
	return y >= g.ChartTop && y <= g.ChartTop+g.ChartHeight
}
