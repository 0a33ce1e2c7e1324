package input

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/schollz/freqchart/internal/chart"
	"github.com/schollz/freqchart/internal/model"
	"github.com/schollz/freqchart/internal/storage"
)

// RemoteMsg is a view command arriving from outside the terminal, such as
// the OSC control surface. Apply reports whether the view changed.
type RemoteMsg interface {
	Apply(m *model.Model) bool
	String() string
}

type TuneMsg struct{ Frequency float64 }

type StepMsg struct{ Delta float64 }

type BandMsg struct{ ID string }

type ZoomMsg struct{ In bool }

type ResetMsg struct{}

// PanMsg pans by Direction steps of the normal pan size.
type PanMsg struct{ Direction float64 }

// ThemeMsg switches to the named theme; an empty Name cycles.
type ThemeMsg struct{ Name string }

func (t TuneMsg) Apply(m *model.Model) bool { return m.SetTunedFrequency(t.Frequency) }
func (t TuneMsg) String() string            { return "tune " + chart.FormatTunedFrequency(t.Frequency) }

func (s StepMsg) Apply(m *model.Model) bool {
	before := m.View.TunedFrequency
	m.StepTune(s.Delta)
	return m.View.TunedFrequency != before
}
func (s StepMsg) String() string { return fmt.Sprintf("step %+.3f MHz", s.Delta) }

func (b BandMsg) Apply(m *model.Model) bool { return m.SelectBand(b.ID) }
func (b BandMsg) String() string            { return "band " + b.ID }

func (z ZoomMsg) Apply(m *model.Model) bool {
	before := m.View.ZoomLevel
	if z.In {
		m.ZoomIn()
	} else {
		m.ZoomOut()
	}
	return m.View.ZoomLevel != before
}

func (z ZoomMsg) String() string {
	if z.In {
		return "zoom in"
	}
	return "zoom out"
}

func (ResetMsg) Apply(m *model.Model) bool {
	m.ResetView()
	return true
}
func (ResetMsg) String() string { return "reset view" }

func (p PanMsg) Apply(m *model.Model) bool {
	if p.Direction == 0 {
		return false
	}
	m.PanView(p.Direction, false)
	return true
}
func (p PanMsg) String() string { return fmt.Sprintf("pan %+g", p.Direction) }

func (t ThemeMsg) Apply(m *model.Model) bool {
	if t.Name == "" {
		m.CycleTheme()
		return true
	}
	return m.SetTheme(t.Name)
}

func (t ThemeMsg) String() string {
	if t.Name == "" {
		return "next theme"
	}
	return "theme " + t.Name
}

// HandleRemoteMsg applies a remote command on the event loop.
func HandleRemoteMsg(m *model.Model, msg RemoteMsg) tea.Cmd {
	if !msg.Apply(m) {
		return flashStatus(m, "remote: ignored "+msg.String())
	}
	storage.AutoSave(m)
	return flashStatus(m, "remote: "+msg.String())
}
