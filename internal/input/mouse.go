package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/schollz/freqchart/internal/model"
	"github.com/schollz/freqchart/internal/storage"
)

// HandleMouseInput maps terminal mouse events onto chart pointer events:
// motion hovers, left press shows details, the wheel zooms.
func HandleMouseInput(m *model.Model, msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.ZoomIn()
		storage.AutoSave(m)
		return nil
	case tea.MouseButtonWheelDown:
		m.ZoomOut()
		storage.AutoSave(m)
		return nil
	}

	x, y, ok := m.CellToChart(msg.X, msg.Y)
	if !ok {
		m.PointerLeave()
		return nil
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.PointerClick(x, y)
		return nil
	}
	m.PointerMove(x, y)
	return nil
}
