package input

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/schollz/freqchart/internal/chart"
	"github.com/schollz/freqchart/internal/model"
)

// ExportDoneMsg reports the result of a PNG export.
type ExportDoneMsg struct {
	Path string
	Err  error
}

// exportPath names an export file after the band and the current time.
func exportPath(m *model.Model, now time.Time) string {
	dir := m.StateDir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, fmt.Sprintf("freqchart-%s-%s.png", m.Band().ID, now.Format("20060102-150405")))
}

// exportCmd renders the current frame to PNG off the event loop.
func exportCmd(m *model.Model) tea.Cmd {
	scene := m.Scene()
	theme := m.Renderer().Theme
	path := exportPath(m, time.Now())
	return func() tea.Msg {
		err := chart.ExportPNG(path, scene, theme, chart.DefaultExportWidth, chart.DefaultExportHeight)
		return ExportDoneMsg{Path: path, Err: err}
	}
}

func HandleExportDone(m *model.Model, msg ExportDoneMsg) tea.Cmd {
	if msg.Err != nil {
		log.Printf("Error exporting chart: %v", msg.Err)
		return flashStatus(m, "export failed: "+msg.Err.Error())
	}
	log.Printf("Exported chart to %s", msg.Path)
	return flashStatus(m, "exported "+msg.Path)
}
