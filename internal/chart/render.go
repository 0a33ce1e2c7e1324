package chart

import (
	"math"

	"github.com/schollz/freqchart/internal/canvas"
	"github.com/schollz/freqchart/internal/catalog"
	"github.com/schollz/freqchart/internal/types"
)

const (
	// labelBaseline shifts rotated block labels so the glyphs straddle the
	// block center.
	labelBaseline = 4
	labelPadding  = 4
	ellipsis      = "…"
)

// Scene is everything one render pass draws. Hover is the index of the
// hovered allocation, or -1.
type Scene struct {
	Band  types.Band
	View  types.ViewState
	Hover int
}

// Renderer draws scenes with a fixed layout and theme.
type Renderer struct {
	Layout Layout
	Theme  Theme
}

// NewRenderer returns a renderer with the default theme.
func NewRenderer(l Layout) *Renderer {
	return &Renderer{Layout: l, Theme: DefaultTheme()}
}

// Geometry resolves the renderer's layout for a surface of the given size.
func (r *Renderer) Geometry(width, height float64) Geometry {
	return r.Layout.Geometry(width, height, len(catalog.Legend()))
}

// Render draws one full frame and returns the geometry it used, so pointer
// positions can be hit tested against exactly what was drawn.
func (r *Renderer) Render(s canvas.Surface, scene Scene) Geometry {
	width, height := s.Size()
	g := r.Geometry(width, height)
	w := ResolveWindow(scene.Band, scene.View)
	m := g.Mapper(w)

	s.Save()
	s.Clear(r.Theme.Background)
	s.Restore()

	r.drawTitle(s, g, scene.Band)
	for i, a := range scene.Band.Allocations {
		r.drawBlock(s, g, m, a, i == scene.Hover)
	}
	r.drawAxis(s, g, m)
	r.drawTunedMarker(s, g, m, scene.View.TunedFrequency)
	r.drawLegend(s, g)
	return g
}

func (r *Renderer) drawTitle(s canvas.Surface, g Geometry, b types.Band) {
	s.Save()
	defer s.Restore()
	s.SetFill(r.Theme.Foreground)
	s.SetFont(canvas.Font{Size: r.Layout.TitleFont, Bold: true})
	s.SetTextAlign(canvas.AlignCenter)
	title := b.DisplayName
	if b.RangeLabel != "" {
		title += " (" + b.RangeLabel + ")"
	}
	s.FillText(title, g.Width/2, r.Layout.TitleY)
}

// blockSpan returns the clipped x extent of a, or false when a is outside the
// window or narrower than a pixel.
func blockSpan(m Mapper, a types.Allocation) (float64, float64, bool) {
	w := m.Window
	if a.End < w.Start || a.Start > w.End {
		return 0, 0, false
	}
	x1 := m.FreqToX(math.Max(a.Start, w.Start))
	x2 := m.FreqToX(math.Min(a.End, w.End))
	if x2-x1 < 1 {
		return 0, 0, false
	}
	return x1, x2, true
}

func (r *Renderer) drawBlock(s canvas.Surface, g Geometry, m Mapper, a types.Allocation, hovered bool) {
	x1, x2, ok := blockSpan(m, a)
	if !ok {
		return
	}
	s.Save()
	defer s.Restore()

	s.SetFill(r.Theme.blockColor(a.Color, hovered))
	s.FillRect(x1, g.ChartTop, x2-x1, g.ChartHeight)
	s.SetStroke(r.Theme.BlockBorder)
	s.SetLineWidth(1)
	s.StrokeRect(x1, g.ChartTop, x2-x1, g.ChartHeight)

	if x2-x1 <= r.Layout.LabelMinWidth {
		return
	}
	s.Translate((x1+x2)/2, g.ChartTop+g.ChartHeight/2)
	s.Rotate(-math.Pi / 2)
	s.SetFill(r.Theme.Foreground)
	s.SetFont(canvas.Font{Size: r.Layout.LabelFont})
	s.SetTextAlign(canvas.AlignCenter)
	label := truncate(s, a.Name, g.ChartHeight-2*labelPadding)
	if label != "" {
		s.FillText(label, 0, labelBaseline)
	}
}

// truncate shortens text with an ellipsis until it measures at most avail
// under the surface's current transform.
func truncate(s canvas.Surface, text string, avail float64) string {
	if s.TextWidth(text) <= avail {
		return text
	}
	runes := []rune(text)
	for n := len(runes) - 1; n > 0; n-- {
		t := string(runes[:n]) + ellipsis
		if s.TextWidth(t) <= avail {
			return t
		}
	}
	return ""
}

func (r *Renderer) drawAxis(s canvas.Surface, g Geometry, m Mapper) {
	s.Save()
	defer s.Restore()
	s.SetStroke(r.Theme.Axis)
	s.SetFill(r.Theme.Foreground)
	s.SetLineWidth(1)
	s.SetFont(canvas.Font{Size: r.Layout.LabelFont})
	s.SetTextAlign(canvas.AlignCenter)

	s.Line(g.Margin, g.AxisY, g.Width-g.Margin, g.AxisY)
	w := m.Window
	for i := 0; i <= g.Markers; i++ {
		f := w.Start + w.Span()*float64(i)/float64(g.Markers)
		x := m.FreqToX(f)
		s.Line(x, g.AxisY, x, g.AxisY+r.Layout.TickLength)
		s.FillText(FormatAxisFrequency(f), x, g.AxisY+r.Layout.TickLabelOffset)
	}
}

func (r *Renderer) drawTunedMarker(s canvas.Surface, g Geometry, m Mapper, tuned float64) {
	if !m.Window.Contains(tuned) {
		return
	}
	x := m.FreqToX(tuned)
	size := r.Layout.IndicatorSize

	s.Save()
	defer s.Restore()
	s.SetStroke(r.Theme.Marker)
	s.SetFill(r.Theme.Marker)
	s.SetLineWidth(2)
	s.SetLineDash([]float64{6, 4})
	s.Line(x, g.ChartTop, x, g.AxisY)

	s.SetLineDash(nil)
	s.FillPolygon([]canvas.Point{
		{X: x - size, Y: g.ChartTop - size},
		{X: x + size, Y: g.ChartTop - size},
		{X: x, Y: g.ChartTop},
	})

	s.SetFont(canvas.Font{Size: r.Layout.LabelFont, Bold: true})
	s.SetTextAlign(canvas.AlignCenter)
	s.FillText(FormatTunedFrequency(tuned), x, g.ChartTop-r.Layout.MarkerLabelOffset)
}

func (r *Renderer) drawLegend(s canvas.Surface, g Geometry) {
	l := r.Layout
	for i, entry := range catalog.Legend() {
		col, row := i%g.LegendColumns, i/g.LegendColumns
		x := l.LegendMargin + float64(col)*l.LegendItemWidth
		y := g.LegendTop + float64(row)*l.LegendRowHeight

		s.Save()
		s.SetFill(canvas.Hex(entry.Color))
		s.FillRect(x, y, l.LegendSwatch, l.LegendSwatch)
		s.SetFill(r.Theme.Foreground)
		s.SetFont(canvas.Font{Size: l.LabelFont})
		s.SetTextAlign(canvas.AlignLeft)
		s.FillText(string(entry.Category), x+l.LegendSwatch+l.LegendSwatchGap, y+l.LegendTextOffset)
		s.Restore()
	}
}
