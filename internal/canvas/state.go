package canvas

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// State is the drawing state scoped by Save and Restore.
type State struct {
	Transform drawing.Matrix
	Fill      colorful.Color
	Stroke    colorful.Color
	LineWidth float64
	LineDash  []float64
	Font      Font
	Align     Align
}

// DefaultState is the state of a fresh surface.
func DefaultState() State {
	return State{
		Transform: drawing.NewIdentityMatrix(),
		Fill:      colorful.Color{},
		Stroke:    colorful.Color{},
		LineWidth: 1,
		Font:      Font{Size: 12},
		Align:     AlignLeft,
	}
}

// stateStack implements the state half of Surface for the concrete backends.
type stateStack struct {
	cur   State
	saved []State
}

func newStateStack() stateStack {
	return stateStack{cur: DefaultState()}
}

func (s *stateStack) Save() {
	snap := s.cur
	snap.LineDash = append([]float64(nil), s.cur.LineDash...)
	s.saved = append(s.saved, snap)
}

// Restore pops the last saved state. An unbalanced Restore is a no-op.
func (s *stateStack) Restore() {
	if len(s.saved) == 0 {
		return
	}
	s.cur = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

// Translate and Rotate compose in local space, like a 2D canvas context.
func (s *stateStack) Translate(x, y float64) {
	s.cur.Transform.Translate(x, y)
}

func (s *stateStack) Rotate(rad float64) {
	s.cur.Transform.Rotate(rad)
}

func (s *stateStack) SetFill(c colorful.Color)   { s.cur.Fill = c }
func (s *stateStack) SetStroke(c colorful.Color) { s.cur.Stroke = c }
func (s *stateStack) SetFont(f Font)             { s.cur.Font = f }
func (s *stateStack) SetTextAlign(a Align)       { s.cur.Align = a }

func (s *stateStack) SetLineWidth(w float64) {
	if w > 0 {
		s.cur.LineWidth = w
	}
}

func (s *stateStack) SetLineDash(pattern []float64) {
	s.cur.LineDash = append([]float64(nil), pattern...)
}

// Depth is the number of unrestored Save calls.
func (s *stateStack) Depth() int {
	return len(s.saved)
}

// Current returns a copy of the active drawing state.
func (s *stateStack) Current() State {
	c := s.cur
	c.LineDash = append([]float64(nil), s.cur.LineDash...)
	return c
}

// alignOffset is the distance to shift text start left for the alignment.
func alignOffset(a Align, width float64) float64 {
	switch a {
	case AlignCenter:
		return width / 2
	case AlignRight:
		return width
	default:
		return 0
	}
}
