package canvas

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	red   = colorful.Color{R: 1}
	green = colorful.Color{G: 1}
	black = colorful.Color{}
)

func TestStateTransform(t *testing.T) {
	t.Run("translate then rotate", func(t *testing.T) {
		s := newStateStack()
		s.Translate(100, 50)
		s.Rotate(-math.Pi / 2)
		p := apply(s.cur.Transform, Point{10, 0})
		assert.InDelta(t, 100, p.X, 1e-9)
		assert.InDelta(t, 40, p.Y, 1e-9, "positive local x points up after -90 degrees")
	})

	t.Run("restore drops the transform", func(t *testing.T) {
		s := newStateStack()
		s.Save()
		s.Translate(12, -7)
		s.Rotate(0.7)
		s.Restore()
		assert.Equal(t, drawing.NewIdentityMatrix(), s.cur.Transform)
	})
}

func TestHexFallback(t *testing.T) {
	assert.Equal(t, "#ff0000", Hex("#FF0000").Hex())
	assert.Equal(t, colorful.Color{R: 0.6, G: 0.6, B: 0.6}, Hex("not a color"))
}

func TestRecorderScopesState(t *testing.T) {
	r := NewRecorder(200, 100)
	r.Save()
	r.SetFill(red)
	r.SetLineDash([]float64{4, 4})
	r.Translate(10, 10)
	r.FillRect(0, 0, 5, 5)
	r.Restore()
	r.FillRect(0, 0, 5, 5)

	rects := r.Filter(OpFillRect)
	require.Len(t, rects, 2)
	assert.Equal(t, red, rects[0].Color)
	assert.Equal(t, 1, rects[0].Depth)
	assert.Equal(t, 10.0, rects[0].State.Transform[4])
	assert.Equal(t, []float64{4, 4}, rects[0].State.LineDash)

	assert.Equal(t, black, rects[1].Color)
	assert.Equal(t, 0, rects[1].Depth)
	assert.Equal(t, drawing.NewIdentityMatrix(), rects[1].State.Transform)
	assert.Empty(t, rects[1].State.LineDash)

	// unbalanced restore is harmless
	r.Restore()
	assert.Equal(t, 0, r.Depth())

	r.Reset()
	assert.Empty(t, r.Ops)
}

func TestRecorderTextWidth(t *testing.T) {
	r := NewRecorder(10, 10)
	assert.Equal(t, 21.0, r.TextWidth("abc"))
	assert.Equal(t, 14.0, r.TextWidth("µs"))
}

func newRaster(t *testing.T, w, h int) *Raster {
	t.Helper()
	r, err := NewRaster(w, h)
	require.NoError(t, err)
	return r
}

func TestRasterFillAndStroke(t *testing.T) {
	r := newRaster(t, 40, 30)
	r.Clear(black)
	r.SetFill(red)
	r.FillRect(10, 10, 10, 10)

	img := r.Image()
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(15, 15))
	assert.Equal(t, color.RGBA{A: 255}, img.RGBAAt(5, 5))

	r.SetStroke(green)
	r.SetLineWidth(2)
	r.Line(0, 25, 39, 25)
	assert.Equal(t, uint8(255), img.RGBAAt(20, 25).G)
	assert.Equal(t, uint8(0), img.RGBAAt(20, 20).G)

	w, h := r.Size()
	assert.Equal(t, 40.0, w)
	assert.Equal(t, 30.0, h)
}

func TestRasterDashedLine(t *testing.T) {
	r := newRaster(t, 10, 40)
	r.Clear(black)
	r.SetStroke(green)
	r.SetLineWidth(2)
	r.SetLineDash([]float64{10, 10})
	r.Line(5, 0, 5, 40)

	img := r.Image()
	assert.Equal(t, uint8(255), img.RGBAAt(5, 5).G, "inside the first dash")
	assert.Equal(t, uint8(0), img.RGBAAt(5, 15).G, "inside the first gap")
}

func TestRasterRotatedFill(t *testing.T) {
	r := newRaster(t, 40, 40)
	r.Clear(black)
	r.SetFill(red)
	r.Translate(20, 20)
	r.Rotate(math.Pi / 2)
	// local (0..10, 0..4) rotates onto device x in [16, 20], y in [20, 30]
	r.FillRect(0, 0, 10, 4)

	img := r.Image()
	assert.Equal(t, uint8(255), img.RGBAAt(18, 25).R)
	assert.Equal(t, uint8(0), img.RGBAAt(25, 18).R)
}

func litPixels(img *image.RGBA, rect image.Rectangle) int {
	lit := 0
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if img.RGBAAt(x, y).R > 0 {
				lit++
			}
		}
	}
	return lit
}

func TestRasterTextAndPNG(t *testing.T) {
	r := newRaster(t, 120, 60)
	r.Clear(black)
	r.SetFill(colorful.Color{R: 1, G: 1, B: 1})
	r.FillText("VHF", 5, 20)

	w := r.TextWidth("VHF")
	assert.Greater(t, w, 10.0)
	assert.Less(t, w, 40.0)
	assert.Greater(t, r.TextWidth("VHF band"), w)

	img := r.Image()
	assert.Greater(t, litPixels(img, image.Rect(0, 0, 60, 30)), 0)

	// rotated text stays in a narrow column above its origin
	r.Save()
	r.Translate(100, 55)
	r.Rotate(-math.Pi / 2)
	r.FillText("up", 0, 0)
	r.Restore()
	assert.Greater(t, litPixels(img, image.Rect(85, 30, 101, 56)), 0)

	var buf bytes.Buffer
	require.NoError(t, r.WritePNG(&buf))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 120, decoded.Bounds().Dx())
}

func TestCellsFillAndText(t *testing.T) {
	c := NewCells(10, 3, termenv.Ascii)
	c.Clear(black)
	c.SetFill(red)
	c.FillRect(16, 0, 24, 48) // columns 2..4, all rows

	assert.True(t, c.At(2, 1).HasBg)
	assert.Equal(t, red, c.At(4, 2).Bg)
	assert.Equal(t, black, c.At(5, 0).Bg)

	c.SetFill(green)
	c.FillText("hi", 0, 28) // row 1
	assert.Equal(t, 'h', c.At(0, 1).Rune)
	assert.Equal(t, 'i', c.At(1, 1).Rune)

	lines := strings.Split(c.Plain(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "hi        ", lines[1])
	assert.Equal(t, c.Plain(), c.String(), "ascii profile renders without escapes")
}

func TestCellsVerticalText(t *testing.T) {
	c := NewCells(5, 6, termenv.Ascii)
	c.SetTextAlign(AlignCenter)
	c.Save()
	c.Translate(20, 48)
	c.Rotate(-math.Pi / 2)
	assert.Equal(t, 3*float64(CellHeight), c.TextWidth("abc"))
	c.FillText("abc", 0, 4)
	c.Restore()

	// reads bottom to top in column 2
	assert.Equal(t, 'a', c.At(2, 4).Rune)
	assert.Equal(t, 'b', c.At(2, 3).Rune)
	assert.Equal(t, 'c', c.At(2, 2).Rune)
	assert.Equal(t, float64(CellWidth), c.TextWidth("a"), "transform restored")
}

func TestCellsLines(t *testing.T) {
	c := NewCells(6, 4, termenv.Ascii)
	c.Line(0, 40, 47, 40)
	c.Line(20, 0, 20, 63)
	assert.Equal(t, '─', c.At(0, 2).Rune)
	assert.Equal(t, '│', c.At(2, 0).Rune)
	assert.Equal(t, '┼', c.At(2, 2).Rune)

	c.SetLineDash([]float64{4, 4})
	c.Line(36, 0, 36, 63)
	assert.Equal(t, '┊', c.At(4, 1).Rune)
}

func TestCellsTinyFill(t *testing.T) {
	c := NewCells(4, 2, termenv.Ascii)
	c.SetFill(red)
	c.FillRect(9, 2, 2, 3) // smaller than a cell, misses every center
	assert.True(t, c.At(1, 0).HasBg)
}

func TestCellsColorOutput(t *testing.T) {
	c := NewCells(3, 1, termenv.TrueColor)
	c.Clear(black)
	c.SetFill(red)
	c.FillText("x", 0, 12)
	out := c.String()
	assert.Contains(t, out, "x")
	assert.Contains(t, out, "\x1b[")
}
