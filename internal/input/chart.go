package input

import (
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/schollz/freqchart/internal/chart"
	"github.com/schollz/freqchart/internal/model"
	"github.com/schollz/freqchart/internal/storage"
)

// Tuning steps in MHz.
const (
	TuneStep     = 0.1
	TuneStepFast = 1.0
)

// HandleKeyInput handles a key press on the chart screen
func HandleKeyInput(m *model.Model, msg tea.KeyMsg) tea.Cmd {
	if m.Editing() {
		return handleEntry(m, msg)
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		storage.DoSave(m)
		return tea.Quit

	case key.Matches(msg, Keys.NextBand):
		m.CycleBand(1)
	case key.Matches(msg, Keys.PrevBand):
		m.CycleBand(-1)

	case key.Matches(msg, Keys.TuneDown):
		m.StepTune(-TuneStep)
	case key.Matches(msg, Keys.TuneUp):
		m.StepTune(TuneStep)
	case key.Matches(msg, Keys.TuneDownFast):
		m.StepTune(-TuneStepFast)
	case key.Matches(msg, Keys.TuneUpFast):
		m.StepTune(TuneStepFast)

	case key.Matches(msg, Keys.ZoomIn):
		m.ZoomIn()
	case key.Matches(msg, Keys.ZoomOut):
		m.ZoomOut()

	case key.Matches(msg, Keys.PanLeft):
		m.PanView(-1, false)
	case key.Matches(msg, Keys.PanRight):
		m.PanView(1, false)
	case key.Matches(msg, Keys.PanLeftFast):
		m.PanView(-1, true)
	case key.Matches(msg, Keys.PanRightFast):
		m.PanView(1, true)

	case key.Matches(msg, Keys.Center):
		m.CenterOnTuned()
	case key.Matches(msg, Keys.Reset):
		m.ResetView()

	case key.Matches(msg, Keys.EnterFreq):
		return m.BeginEntry(model.EntryFrequency)
	case key.Matches(msg, Keys.SavePreset):
		return m.BeginEntry(model.EntrySavePreset)
	case key.Matches(msg, Keys.LoadPreset):
		return m.BeginEntry(model.EntryLoadPreset)

	case key.Matches(msg, Keys.Theme):
		name := m.CycleTheme()
		storage.AutoSave(m)
		return flashStatus(m, "theme "+name)

	case key.Matches(msg, Keys.ClearDetails):
		m.ClearDetails()
		return nil

	case key.Matches(msg, Keys.Export):
		return exportCmd(m)

	case key.Matches(msg, Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		return nil

	default:
		return nil
	}

	storage.AutoSave(m)
	return nil
}

// handleEntry routes keys to the text box until it is submitted or
// cancelled.
func handleEntry(m *model.Model, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		kind := m.Entry
		text := strings.TrimSpace(m.EndEntry())
		return submitEntry(m, kind, text)

	case "esc", "ctrl+c":
		m.EndEntry()
		return nil
	}

	var cmd tea.Cmd
	m.EntryInput, cmd = m.EntryInput.Update(msg)
	return cmd
}

func submitEntry(m *model.Model, kind model.EntryKind, text string) tea.Cmd {
	switch kind {
	case model.EntryFrequency:
		if !m.SetTunedFrequencyText(text) {
			log.Printf("Ignoring invalid frequency %q", text)
			return flashStatus(m, "invalid frequency: "+text)
		}
		storage.AutoSave(m)
		return flashStatus(m, "tuned to "+chart.FormatTunedFrequency(m.View.TunedFrequency))

	case model.EntrySavePreset:
		if err := storage.SavePreset(m, text); err != nil {
			log.Printf("Error saving preset: %v", err)
			return flashStatus(m, "save preset failed: "+err.Error())
		}
		return flashStatus(m, "saved preset "+text)

	case model.EntryLoadPreset:
		if err := storage.LoadPreset(m, text); err != nil {
			log.Printf("Error loading preset: %v", err)
			return flashStatus(m, "load preset failed: "+err.Error())
		}
		storage.AutoSave(m)
		return flashStatus(m, "loaded preset "+text)
	}
	return nil
}
