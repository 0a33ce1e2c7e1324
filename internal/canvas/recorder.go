package canvas

import "github.com/lucasb-eyer/go-colorful"

// OpKind identifies a recorded drawing call.
type OpKind string

const (
	OpClear       OpKind = "clear"
	OpSave        OpKind = "save"
	OpRestore     OpKind = "restore"
	OpFillRect    OpKind = "fillRect"
	OpStrokeRect  OpKind = "strokeRect"
	OpLine        OpKind = "line"
	OpFillPolygon OpKind = "fillPolygon"
	OpFillText    OpKind = "fillText"
)

// Op is one recorded call. Args holds the numeric arguments in call order;
// State is the drawing state in effect when the call was made.
type Op struct {
	Kind   OpKind
	Args   []float64
	Points []Point
	Text   string
	Color  colorful.Color
	State  State
	Depth  int
}

// Recorder is a Surface that keeps a log of drawing calls instead of
// producing pixels. Text is measured as a fixed CharWidth per rune.
type Recorder struct {
	stateStack
	Width, Height float64
	CharWidth     float64
	Ops           []Op
}

// NewRecorder creates a recorder with the given pixel size.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{
		stateStack: newStateStack(),
		Width:      width,
		Height:     height,
		CharWidth:  7,
	}
}

func (r *Recorder) record(op Op) {
	op.State = r.Current()
	op.Depth = r.Depth()
	r.Ops = append(r.Ops, op)
}

func (r *Recorder) Size() (float64, float64) { return r.Width, r.Height }

func (r *Recorder) Clear(c colorful.Color) {
	r.record(Op{Kind: OpClear, Color: c, Args: []float64{0, 0, r.Width, r.Height}})
}

func (r *Recorder) Save() {
	r.record(Op{Kind: OpSave})
	r.stateStack.Save()
}

func (r *Recorder) Restore() {
	r.stateStack.Restore()
	r.record(Op{Kind: OpRestore})
}

func (r *Recorder) FillRect(x, y, w, h float64) {
	r.record(Op{Kind: OpFillRect, Args: []float64{x, y, w, h}, Color: r.cur.Fill})
}

func (r *Recorder) StrokeRect(x, y, w, h float64) {
	r.record(Op{Kind: OpStrokeRect, Args: []float64{x, y, w, h}, Color: r.cur.Stroke})
}

func (r *Recorder) Line(x1, y1, x2, y2 float64) {
	r.record(Op{Kind: OpLine, Args: []float64{x1, y1, x2, y2}, Color: r.cur.Stroke})
}

func (r *Recorder) FillPolygon(points []Point) {
	r.record(Op{Kind: OpFillPolygon, Points: append([]Point(nil), points...), Color: r.cur.Fill})
}

func (r *Recorder) FillText(text string, x, y float64) {
	r.record(Op{Kind: OpFillText, Args: []float64{x, y}, Text: text, Color: r.cur.Fill})
}

func (r *Recorder) TextWidth(text string) float64 {
	return float64(len([]rune(text))) * r.CharWidth
}

// Filter returns the recorded ops of the given kind.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Texts returns the text of every FillText call in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Filter(OpFillText) {
		out = append(out, op.Text)
	}
	return out
}

// Reset drops recorded ops and restores the default state.
func (r *Recorder) Reset() {
	r.Ops = nil
	r.stateStack = newStateStack()
}
