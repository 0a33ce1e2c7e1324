package input

import (
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schollz/freqchart/internal/catalog"
	"github.com/schollz/freqchart/internal/chart"
	"github.com/schollz/freqchart/internal/model"
	"github.com/schollz/freqchart/internal/types"
)

func newTestModel() *model.Model {
	m := model.NewModel(catalog.Default(), "")
	m.TermWidth = 100
	m.TermHeight = 40
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m *model.Model, s string) {
	for _, r := range s {
		HandleKeyInput(m, runes(string(r)))
	}
}

func TestBandKeys(t *testing.T) {
	m := newTestModel()
	HandleKeyInput(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "vhf", m.View.SelectedBandID)
	assert.Equal(t, 165.0, m.View.TunedFrequency)
	HandleKeyInput(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "hf", m.View.SelectedBandID)
}

func TestViewKeys(t *testing.T) {
	m := newTestModel()

	t.Run("tune", func(t *testing.T) {
		HandleKeyInput(m, tea.KeyMsg{Type: tea.KeyRight})
		assert.InDelta(t, 16.6, m.View.TunedFrequency, 1e-9)
		HandleKeyInput(m, tea.KeyMsg{Type: tea.KeyShiftRight})
		assert.InDelta(t, 17.6, m.View.TunedFrequency, 1e-9)
		HandleKeyInput(m, tea.KeyMsg{Type: tea.KeyShiftLeft})
		HandleKeyInput(m, tea.KeyMsg{Type: tea.KeyLeft})
		assert.InDelta(t, 16.5, m.View.TunedFrequency, 1e-9)
	})

	t.Run("zoom", func(t *testing.T) {
		HandleKeyInput(m, tea.KeyMsg{Type: tea.KeyUp})
		assert.Equal(t, 1.5, m.View.ZoomLevel)
		HandleKeyInput(m, runes("-"))
		assert.Equal(t, 1.0, m.View.ZoomLevel)
		HandleKeyInput(m, runes("+"))
		HandleKeyInput(m, tea.KeyMsg{Type: tea.KeyDown})
		assert.Equal(t, 1.0, m.View.ZoomLevel)
	})

	t.Run("pan, center and reset", func(t *testing.T) {
		HandleKeyInput(m, runes("l"))
		assert.InDelta(t, 1.35, m.View.PanOffset, 1e-9)
		HandleKeyInput(m, runes("c"))
		assert.Equal(t, 0.0, m.View.PanOffset)

		HandleKeyInput(m, runes("H"))
		HandleKeyInput(m, tea.KeyMsg{Type: tea.KeyUp})
		HandleKeyInput(m, runes("0"))
		assert.Equal(t, 1.0, m.View.ZoomLevel)
		assert.Equal(t, 0.0, m.View.PanOffset)
	})

	t.Run("help and quit", func(t *testing.T) {
		HandleKeyInput(m, runes("?"))
		assert.True(t, m.Help.ShowAll)
		HandleKeyInput(m, runes("?"))
		assert.False(t, m.Help.ShowAll)

		cmd := HandleKeyInput(m, runes("q"))
		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
	})
}

func TestFrequencyEntry(t *testing.T) {
	m := newTestModel()

	t.Run("valid", func(t *testing.T) {
		HandleKeyInput(m, runes("f"))
		require.Equal(t, model.EntryFrequency, m.Entry)
		typeText(m, "146.52")
		assert.Equal(t, 16.5, m.View.TunedFrequency, "nothing applied while typing")

		cmd := HandleKeyInput(m, tea.KeyMsg{Type: tea.KeyEnter})
		assert.NotNil(t, cmd)
		assert.False(t, m.Editing())
		assert.Equal(t, 146.52, m.View.TunedFrequency)
		assert.Equal(t, "tuned to 146.520 MHz", m.StatusMessage)
	})

	t.Run("invalid ignored", func(t *testing.T) {
		HandleKeyInput(m, runes("/"))
		typeText(m, "abc")
		HandleKeyInput(m, tea.KeyMsg{Type: tea.KeyEnter})
		assert.Equal(t, 146.52, m.View.TunedFrequency)
		assert.Contains(t, m.StatusMessage, "invalid frequency")
	})

	t.Run("escape cancels", func(t *testing.T) {
		HandleKeyInput(m, runes("f"))
		typeText(m, "7")
		HandleKeyInput(m, tea.KeyMsg{Type: tea.KeyEsc})
		assert.False(t, m.Editing())
		assert.Equal(t, 146.52, m.View.TunedFrequency)
	})

	t.Run("keys go to the box while editing", func(t *testing.T) {
		HandleKeyInput(m, runes("f"))
		HandleKeyInput(m, runes("q"))
		assert.True(t, m.Editing())
		assert.Equal(t, "q", m.EntryInput.Value())
		HandleKeyInput(m, tea.KeyMsg{Type: tea.KeyEsc})
	})
}

func TestThemeKey(t *testing.T) {
	m := newTestModel()
	require.Equal(t, chart.DefaultThemeName, m.ThemeName)

	seen := []string{m.ThemeName}
	for range chart.ThemeNames() {
		cmd := HandleKeyInput(m, runes("t"))
		assert.NotNil(t, cmd)
		assert.Equal(t, "theme "+m.ThemeName, m.StatusMessage)
		assert.Equal(t, m.ThemeName, m.Renderer().Theme.Name)
		seen = append(seen, m.ThemeName)
	}
	assert.Equal(t, seen[0], seen[len(seen)-1], "cycling wraps around")
	assert.ElementsMatch(t, chart.ThemeNames(), seen[:len(seen)-1])
}

func TestPresetEntry(t *testing.T) {
	m := newTestModel()
	m.StateDir = t.TempDir()
	m.NoSave = true
	m.SelectBand("vhf")
	m.SetTunedFrequency(146.52)

	HandleKeyInput(m, runes("s"))
	require.Equal(t, model.EntrySavePreset, m.Entry)
	assert.Equal(t, "save preset> ", m.EntryInput.Prompt)
	typeText(m, "repeater")
	HandleKeyInput(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.Editing())
	assert.Equal(t, "saved preset repeater", m.StatusMessage)

	m.SelectBand("uhf")
	HandleKeyInput(m, runes("p"))
	require.Equal(t, model.EntryLoadPreset, m.Entry)
	typeText(m, "repeater")
	HandleKeyInput(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "loaded preset repeater", m.StatusMessage)
	assert.Equal(t, "vhf", m.View.SelectedBandID)
	assert.Equal(t, 146.52, m.View.TunedFrequency)

	HandleKeyInput(m, runes("p"))
	typeText(m, "missing")
	HandleKeyInput(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.StatusMessage, "load preset failed")
	assert.Equal(t, "vhf", m.View.SelectedBandID)

	HandleKeyInput(m, runes("s"))
	typeText(m, "bad name")
	HandleKeyInput(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.StatusMessage, "save preset failed")
}

func TestMouse(t *testing.T) {
	m := newTestModel()
	m.SelectBand("vhf")

	// column 43 is 146.7 MHz on a 100 column terminal
	move := tea.MouseMsg{X: 43, Y: model.HeaderRows + 10, Action: tea.MouseActionMotion}
	HandleMouseInput(m, move)
	assert.Equal(t, 10, m.Hover)
	assert.True(t, m.CursorValid)
	assert.Nil(t, m.Details)

	press := move
	press.Action = tea.MouseActionPress
	press.Button = tea.MouseButtonLeft
	HandleMouseInput(m, press)
	require.NotNil(t, m.Details)
	assert.Equal(t, "2m Amateur Band", m.Details.Name)

	HandleMouseInput(m, tea.MouseMsg{X: 43, Y: 0, Action: tea.MouseActionMotion})
	assert.Equal(t, -1, m.Hover)
	assert.False(t, m.CursorValid)

	HandleMouseInput(m, tea.MouseMsg{X: 43, Y: 20, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	assert.Equal(t, 1.5, m.View.ZoomLevel)
	HandleMouseInput(m, tea.MouseMsg{X: 43, Y: 20, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	assert.Equal(t, 1.0, m.View.ZoomLevel)

	HandleKeyInput(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.Details)
}

func TestRemote(t *testing.T) {
	m := newTestModel()

	HandleRemoteMsg(m, TuneMsg{Frequency: 7.2})
	assert.Equal(t, 7.2, m.View.TunedFrequency)
	assert.Equal(t, "remote: tune 7.200 MHz", m.StatusMessage)

	HandleRemoteMsg(m, TuneMsg{Frequency: -1})
	assert.Equal(t, 7.2, m.View.TunedFrequency)
	assert.Contains(t, m.StatusMessage, "ignored")

	HandleRemoteMsg(m, StepMsg{Delta: -100})
	assert.Equal(t, types.MinTunedFrequency, m.View.TunedFrequency)

	HandleRemoteMsg(m, BandMsg{ID: "uhf"})
	assert.Equal(t, "uhf", m.View.SelectedBandID)
	HandleRemoteMsg(m, BandMsg{ID: "nope"})
	assert.Equal(t, "uhf", m.View.SelectedBandID)

	for i := 0; i < 10; i++ {
		HandleRemoteMsg(m, ZoomMsg{In: true})
	}
	assert.Equal(t, types.MaxZoom, m.View.ZoomLevel)
	assert.Contains(t, m.StatusMessage, "ignored", "already at max zoom")

	HandleRemoteMsg(m, PanMsg{Direction: 1})
	assert.Greater(t, m.View.PanOffset, 0.0)

	HandleRemoteMsg(m, ResetMsg{})
	assert.Equal(t, 1.0, m.View.ZoomLevel)
	assert.Equal(t, 0.0, m.View.PanOffset)

	HandleRemoteMsg(m, ThemeMsg{Name: "high_contrast"})
	assert.Equal(t, "high_contrast", m.ThemeName)
	HandleRemoteMsg(m, ThemeMsg{Name: "sepia"})
	assert.Equal(t, "high_contrast", m.ThemeName)
	assert.Equal(t, "remote: ignored theme sepia", m.StatusMessage)
	HandleRemoteMsg(m, ThemeMsg{})
	assert.Equal(t, chart.NextTheme("high_contrast"), m.ThemeName)
}

func TestStatusClear(t *testing.T) {
	m := newTestModel()
	flashStatus(m, "first")
	stale := ClearStatusMsg{Seq: m.StatusSeq}
	flashStatus(m, "second")

	HandleClearStatus(m, stale)
	assert.Equal(t, "second", m.StatusMessage)
	HandleClearStatus(m, ClearStatusMsg{Seq: m.StatusSeq})
	assert.Empty(t, m.StatusMessage)
}

func TestExport(t *testing.T) {
	m := newTestModel()
	m.StateDir = t.TempDir()
	m.NoSave = true

	cmd := HandleKeyInput(m, runes("e"))
	require.NotNil(t, cmd)
	done, ok := cmd().(ExportDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.Err)

	info, err := os.Stat(done.Path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	HandleExportDone(m, done)
	assert.Contains(t, m.StatusMessage, "exported")
}
