package model

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/schollz/freqchart/internal/canvas"
	"github.com/schollz/freqchart/internal/catalog"
	"github.com/schollz/freqchart/internal/chart"
	"github.com/schollz/freqchart/internal/types"
)

// Rows of chrome around the chart: band tabs and uses line above; details,
// summary, status, entry box and help below. On short terminals the help
// rows go first, then the chart shrinks below MinChartRows.
const (
	HeaderRows    = 3
	FooterRows    = 9
	HelpRows      = 4
	MinChartRows  = 12
	MinChartCols  = 20
	DefaultWidth  = 100
	DefaultHeight = 40
)

type Model struct {
	Catalog *catalog.Catalog
	View    types.ViewState

	TermWidth  int
	TermHeight int

	// Hover is the index of the allocation under the pointer, or -1.
	Hover int
	// CursorFrequency is the frequency under the pointer when CursorValid.
	CursorFrequency float64
	CursorValid     bool
	pointerX        float64
	pointerY        float64
	pointerOnChart  bool

	// Details is the payload of the last clicked allocation.
	Details *types.Details

	// Entry is what the text box is collecting; EntryNone when it is closed.
	Entry         EntryKind
	EntryInput    textinput.Model
	Help          help.Model
	StatusMessage string
	// StatusSeq increments on every SetStatus so stale clears can be dropped.
	StatusSeq int

	// ThemeName is the active chart theme, one of chart.ThemeNames.
	ThemeName string

	StateDir string
	NoSave   bool
	Profile  termenv.Profile

	renderer *chart.Renderer
}

// EntryKind selects what the text box is for.
type EntryKind int

const (
	EntryNone EntryKind = iota
	EntryFrequency
	EntrySavePreset
	EntryLoadPreset
)

var entryPrompts = map[EntryKind]struct{ prompt, placeholder string }{
	EntryFrequency:  {"MHz> ", "frequency in MHz"},
	EntrySavePreset: {"save preset> ", "preset name"},
	EntryLoadPreset: {"load preset> ", "preset name"},
}

// NewModel creates a model showing the first band of cat.
func NewModel(cat *catalog.Catalog, stateDir string) *Model {
	ti := textinput.New()
	ti.CharLimit = 32
	ti.Width = 24

	return &Model{
		Catalog:    cat,
		View:       types.NewViewState(cat.First()),
		TermWidth:  DefaultWidth,
		TermHeight: DefaultHeight,
		Hover:      -1,
		EntryInput: ti,
		Help:       help.New(),
		ThemeName:  chart.DefaultThemeName,
		StateDir:   stateDir,
		Profile:    termenv.Ascii,
		renderer:   chart.NewRenderer(chart.TerminalLayout()),
	}
}

// Editing reports whether the text box has focus.
func (m *Model) Editing() bool {
	return m.Entry != EntryNone
}

// BeginEntry opens an empty text box for kind.
func (m *Model) BeginEntry(kind EntryKind) tea.Cmd {
	p := entryPrompts[kind]
	m.Entry = kind
	m.EntryInput.Prompt = p.prompt
	m.EntryInput.Placeholder = p.placeholder
	m.EntryInput.SetValue("")
	return m.EntryInput.Focus()
}

// EndEntry closes the text box and returns what was typed.
func (m *Model) EndEntry() string {
	text := m.EntryInput.Value()
	m.Entry = EntryNone
	m.EntryInput.Blur()
	return text
}

// SetTheme switches the chart theme. Unknown names are ignored.
func (m *Model) SetTheme(name string) bool {
	t, ok := chart.ThemeByName(name)
	if !ok {
		return false
	}
	m.ThemeName = name
	m.renderer.Theme = t
	return true
}

// CycleTheme moves to the next built-in theme and returns its name.
func (m *Model) CycleTheme() string {
	m.SetTheme(chart.NextTheme(m.ThemeName))
	return m.ThemeName
}

// Band returns the selected band. A stale id falls back to the first band.
func (m *Model) Band() types.Band {
	if b, ok := m.Catalog.Band(m.View.SelectedBandID); ok {
		return b
	}
	return m.Catalog.First()
}

// Renderer is the terminal chart renderer.
func (m *Model) Renderer() *chart.Renderer {
	return m.renderer
}

// Scene is the current frame to draw.
func (m *Model) Scene() chart.Scene {
	return chart.Scene{Band: m.Band(), View: m.View, Hover: m.Hover}
}

// Window is the visible frequency window.
func (m *Model) Window() chart.Window {
	return chart.ResolveWindow(m.Band(), m.View)
}

// ChartArea returns the terminal cell rectangle the chart occupies.
func (m *Model) ChartArea() (col, row, cols, rows int) {
	cols = max(m.TermWidth, MinChartCols)
	rows = m.TermHeight - HeaderRows - FooterRows
	if rows < MinChartRows {
		rows = min(MinChartRows, m.TermHeight-HeaderRows-(FooterRows-HelpRows))
	}
	return 0, HeaderRows, cols, max(rows, 1)
}

// ShownHelpRows is how many of the HelpRows fit under the chart.
func (m *Model) ShownHelpRows() int {
	_, _, _, rows := m.ChartArea()
	free := m.TermHeight - HeaderRows - rows - (FooterRows - HelpRows)
	return min(max(free, 0), HelpRows)
}

// Geometry is the chart geometry for the current terminal size, in chart
// pixels.
func (m *Model) Geometry() chart.Geometry {
	_, _, cols, rows := m.ChartArea()
	return m.renderer.Geometry(float64(cols*canvas.CellWidth), float64(rows*canvas.CellHeight))
}

// RenderChart draws the current frame onto a fresh cell grid.
func (m *Model) RenderChart() *canvas.Cells {
	_, _, cols, rows := m.ChartArea()
	c := canvas.NewCells(cols, rows, m.Profile)
	m.renderer.Render(c, m.Scene())
	return c
}

// CellToChart converts a terminal cell to the chart pixel at its center.
// ok is false when the cell is outside the chart area.
func (m *Model) CellToChart(col, row int) (x, y float64, ok bool) {
	c0, r0, cols, rows := m.ChartArea()
	if col < c0 || row < r0 || col >= c0+cols || row >= r0+rows {
		return 0, 0, false
	}
	x = float64((col-c0)*canvas.CellWidth) + canvas.CellWidth/2
	y = float64((row-r0)*canvas.CellHeight) + canvas.CellHeight/2
	return x, y, true
}

// SetStatus replaces the status line message.
func (m *Model) SetStatus(msg string) {
	m.StatusMessage = msg
	m.StatusSeq++
}
