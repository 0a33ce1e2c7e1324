package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/golang/freetype/truetype"
	"github.com/lucasb-eyer/go-colorful"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
)

// rasterDPI makes font sizes read as pixels.
const rasterDPI = 72

// Raster is a Surface backed by an RGBA image and a go-chart raster
// graphic context. Shapes are anti-aliased; text uses the go-chart default
// TrueType face and bold is drawn as a double strike.
type Raster struct {
	stateStack
	img   *image.RGBA
	gc    *drawing.RasterGraphicContext
	font  *truetype.Font
	faces map[float64]font.Face
}

// NewRaster creates a width x height raster surface.
func NewRaster(width, height int) (*Raster, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	gc, err := drawing.NewRasterGraphicContext(img)
	if err != nil {
		return nil, fmt.Errorf("failed to create graphic context: %w", err)
	}
	f, err := gochart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	gc.SetDPI(rasterDPI)
	gc.SetFont(f)

	return &Raster{
		stateStack: newStateStack(),
		img:        img,
		gc:         gc,
		font:       f,
		faces:      make(map[float64]font.Face),
	}, nil
}

// Image returns the backing image.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// WritePNG encodes the current frame as PNG.
func (r *Raster) WritePNG(w io.Writer) error {
	if err := png.Encode(w, r.img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

func (r *Raster) Size() (float64, float64) {
	b := r.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func toRGBA(c colorful.Color) color.RGBA {
	cr, cg, cb := c.Clamped().RGB255()
	return color.RGBA{R: cr, G: cg, B: cb, A: 255}
}

// sync pushes the surface state into the graphic context and starts a new
// path.
func (r *Raster) sync() {
	r.gc.SetMatrixTransform(r.cur.Transform)
	r.gc.SetFillColor(toRGBA(r.cur.Fill))
	r.gc.SetStrokeColor(toRGBA(r.cur.Stroke))
	r.gc.SetLineWidth(r.cur.LineWidth)
	r.gc.SetLineDash(r.cur.LineDash, 0)
	r.gc.SetFontSize(r.cur.Font.Size)
	r.gc.BeginPath()
}

func (r *Raster) path(points []Point, closed bool) {
	r.sync()
	r.gc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		r.gc.LineTo(p.X, p.Y)
	}
	if closed {
		r.gc.Close()
	}
}

func (r *Raster) Clear(c colorful.Color) {
	r.gc.SetMatrixTransform(drawing.NewIdentityMatrix())
	r.gc.SetFillColor(toRGBA(c))
	r.gc.Clear()
}

func (r *Raster) FillRect(x, y, w, h float64) {
	r.path(rectPoints(x, y, w, h), true)
	r.gc.Fill()
}

func (r *Raster) StrokeRect(x, y, w, h float64) {
	r.path(rectPoints(x, y, w, h), true)
	r.gc.Stroke()
}

func (r *Raster) Line(x1, y1, x2, y2 float64) {
	r.path([]Point{{x1, y1}, {x2, y2}}, false)
	r.gc.Stroke()
}

func (r *Raster) FillPolygon(points []Point) {
	if len(points) < 3 {
		return
	}
	r.path(points, true)
	r.gc.Fill()
}

// face returns the measuring face for a font size.
func (r *Raster) face(size float64) font.Face {
	if f, ok := r.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(r.font, &truetype.Options{Size: size, DPI: rasterDPI})
	r.faces[size] = f
	return f
}

func (r *Raster) TextWidth(text string) float64 {
	return float64(font.MeasureString(r.face(r.cur.Font.Size), text)) / 64
}

// FillText draws text on the current transform, so rotated labels come out
// rotated.
func (r *Raster) FillText(text string, x, y float64) {
	if text == "" {
		return
	}
	x -= alignOffset(r.cur.Align, r.TextWidth(text))
	r.sync()
	r.gc.FillStringAt(text, x, y)
	if r.cur.Font.Bold {
		r.gc.BeginPath()
		r.gc.FillStringAt(text, x+1, y)
	}
}
