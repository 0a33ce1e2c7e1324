package canvas

import (
	"image"
	"image/draw"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	"golang.org/x/image/vector"
)

// A terminal cell covers CellWidth x CellHeight surface pixels.
const (
	CellWidth  = 8
	CellHeight = 16
)

// Cell is one character position of a Cells surface.
type Cell struct {
	Rune  rune
	Fg    colorful.Color
	Bg    colorful.Color
	HasFg bool
	HasBg bool
	Bold  bool
}

// Cells is a Surface that rasterizes onto a grid of terminal cells. Fills
// paint the backgrounds of the cells they mostly cover, lines become box-drawing runes and text advances
// one cell per rune along its transformed baseline.
type Cells struct {
	stateStack
	cols, rows int
	grid       [][]Cell
	profile    termenv.Profile
}

// NewCells creates a cols x rows grid rendered for the given color profile.
func NewCells(cols, rows int, profile termenv.Profile) *Cells {
	cols, rows = max(cols, 1), max(rows, 1)
	c := &Cells{
		stateStack: newStateStack(),
		cols:       cols,
		rows:       rows,
		profile:    profile,
	}
	c.grid = make([][]Cell, rows)
	for i := range c.grid {
		c.grid[i] = make([]Cell, cols)
		for j := range c.grid[i] {
			c.grid[i][j].Rune = ' '
		}
	}
	return c
}

// Dimensions returns the grid size in cells.
func (c *Cells) Dimensions() (cols, rows int) {
	return c.cols, c.rows
}

// At returns the cell at col, row. Out of range positions return a blank cell.
func (c *Cells) At(col, row int) Cell {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return Cell{Rune: ' '}
	}
	return c.grid[row][col]
}

func (c *Cells) Size() (float64, float64) {
	return float64(c.cols * CellWidth), float64(c.rows * CellHeight)
}

func (c *Cells) Clear(col colorful.Color) {
	for r := range c.grid {
		for i := range c.grid[r] {
			c.grid[r][i] = Cell{Rune: ' ', Bg: col, HasBg: true}
		}
	}
}

// cellOf returns the cell containing a device pixel.
func (c *Cells) cellOf(p Point) (int, int, bool) {
	col := int(math.Floor(p.X / CellWidth))
	row := int(math.Floor(p.Y / CellHeight))
	ok := col >= 0 && row >= 0 && col < c.cols && row < c.rows
	return col, row, ok
}

func (c *Cells) FillRect(x, y, w, h float64) {
	c.FillPolygon(rectPoints(x, y, w, h))
}

func (c *Cells) FillPolygon(points []Point) {
	if len(points) < 3 {
		return
	}
	pts := make([]Point, len(points))
	for i, p := range points {
		pts[i] = apply(c.cur.Transform, p)
	}
	c.fillDevicePolygon(pts)
}

// fillDevicePolygon rasterizes pts at cell resolution and paints every cell
// at least half covered. Shapes too small to half cover any cell still paint
// the cell holding their centroid.
func (c *Cells) fillDevicePolygon(pts []Point) {
	z := vector.NewRasterizer(c.cols, c.rows)
	z.DrawOp = draw.Src
	for i, p := range pts {
		// vertices are pinned to the grid, which is exact for rectangles
		x := float32(math.Min(math.Max(p.X/CellWidth, 0), float64(c.cols)))
		y := float32(math.Min(math.Max(p.Y/CellHeight, 0), float64(c.rows)))
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
	coverage := image.NewAlpha(image.Rect(0, 0, c.cols, c.rows))
	z.Draw(coverage, coverage.Bounds(), image.Opaque, image.Point{})

	painted := false
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			if coverage.AlphaAt(col, row).A >= 128 {
				c.paint(col, row)
				painted = true
			}
		}
	}
	if !painted {
		var centroid Point
		for _, p := range pts {
			centroid.X += p.X / float64(len(pts))
			centroid.Y += p.Y / float64(len(pts))
		}
		if col, row, ok := c.cellOf(centroid); ok {
			c.paint(col, row)
		}
	}
}

func (c *Cells) paint(col, row int) {
	c.grid[row][col] = Cell{Rune: ' ', Bg: c.cur.Fill, HasBg: true}
}

func (c *Cells) StrokeRect(x, y, w, h float64) {
	pts := rectPoints(x, y, w, h)
	for i := range pts {
		pts[i] = apply(c.cur.Transform, pts[i])
	}
	for i := range pts {
		c.strokeDevice(pts[i], pts[(i+1)%len(pts)])
	}
}

func (c *Cells) Line(x1, y1, x2, y2 float64) {
	m := c.cur.Transform
	c.strokeDevice(apply(m, Point{x1, y1}), apply(m, Point{x2, y2}))
}

// strokeDevice marks the cells a segment passes through. Dash gaps are
// finer than a cell, so dashed lines use dotted runes instead.
func (c *Cells) strokeDevice(p, q Point) {
	dashed := len(c.cur.LineDash) > 0
	vertical := math.Abs(q.Y-p.Y) > math.Abs(q.X-p.X)
	var r rune
	switch {
	case vertical && dashed:
		r = '┊'
	case vertical:
		r = '│'
	case dashed:
		r = '┄'
	default:
		r = '─'
	}

	length := math.Hypot(q.X-p.X, q.Y-p.Y)
	steps := int(math.Ceil(length/(CellWidth/2))) + 1
	lastCol, lastRow := -1, -1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		col, row, ok := c.cellOf(Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t})
		if !ok || (col == lastCol && row == lastRow) {
			continue
		}
		lastCol, lastRow = col, row
		cell := &c.grid[row][col]
		cell.Rune = mergeLine(cell.Rune, r)
		cell.Fg = c.cur.Stroke
		cell.HasFg = true
		cell.Bold = false
	}
}

func mergeLine(existing, r rune) rune {
	switch {
	case existing == '│' && r == '─', existing == '─' && r == '│':
		return '┼'
	}
	return r
}

// advance is the pixel distance one rune occupies along the current baseline.
func (c *Cells) advance() float64 {
	o := apply(c.cur.Transform, Point{})
	d := apply(c.cur.Transform, Point{1, 0})
	if math.Abs(d.Y-o.Y) > math.Abs(d.X-o.X) {
		return CellHeight
	}
	return CellWidth
}

func (c *Cells) TextWidth(text string) float64 {
	return float64(len([]rune(text))) * c.advance()
}

// FillText places each rune in the cell under the middle of its advance,
// sampled a few pixels above the baseline.
func (c *Cells) FillText(text string, x, y float64) {
	runes := []rune(text)
	adv := c.advance()
	start := x - alignOffset(c.cur.Align, float64(len(runes))*adv)
	m := c.cur.Transform
	for i, r := range runes {
		p := apply(m, Point{start + float64(i)*adv + adv/2, y - 4})
		col, row, ok := c.cellOf(p)
		if !ok {
			continue
		}
		cell := &c.grid[row][col]
		cell.Rune = r
		cell.Fg = c.cur.Fill
		cell.HasFg = true
		cell.Bold = c.cur.Font.Bold
	}
}

// Plain returns the grid as text without styling.
func (c *Cells) Plain() string {
	lines := make([]string, c.rows)
	for r, row := range c.grid {
		var sb strings.Builder
		for _, cell := range row {
			sb.WriteRune(cell.Rune)
		}
		lines[r] = sb.String()
	}
	return strings.Join(lines, "\n")
}

func sameStyle(a, b Cell) bool {
	return a.HasFg == b.HasFg && a.HasBg == b.HasBg && a.Bold == b.Bold &&
		(!a.HasFg || a.Fg == b.Fg) && (!a.HasBg || a.Bg == b.Bg)
}

func (c *Cells) styled(text string, cell Cell) string {
	s := c.profile.String(text)
	if cell.HasFg {
		s = s.Foreground(c.profile.Color(cell.Fg.Clamped().Hex()))
	}
	if cell.HasBg {
		s = s.Background(c.profile.Color(cell.Bg.Clamped().Hex()))
	}
	if cell.Bold {
		s = s.Bold()
	}
	return s.String()
}

// String renders the grid with colors for the surface's profile. Adjacent
// cells sharing a style are emitted as one run.
func (c *Cells) String() string {
	if c.profile == termenv.Ascii {
		return c.Plain()
	}
	lines := make([]string, c.rows)
	for r, row := range c.grid {
		var sb, run strings.Builder
		runStyle := row[0]
		for _, cell := range row {
			if !sameStyle(runStyle, cell) {
				sb.WriteString(c.styled(run.String(), runStyle))
				run.Reset()
				runStyle = cell
			}
			run.WriteRune(cell.Rune)
		}
		sb.WriteString(c.styled(run.String(), runStyle))
		lines[r] = sb.String()
	}
	return strings.Join(lines, "\n")
}
