package input

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/schollz/freqchart/internal/model"
)

// StatusTimeout is how long a status message stays on screen.
const StatusTimeout = 4 * time.Second

// ClearStatusMsg clears the status line if no newer message replaced it.
type ClearStatusMsg struct {
	Seq int
}

// flashStatus shows text and schedules its removal.
func flashStatus(m *model.Model, text string) tea.Cmd {
	m.SetStatus(text)
	seq := m.StatusSeq
	return tea.Tick(StatusTimeout, func(time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}

func HandleClearStatus(m *model.Model, msg ClearStatusMsg) {
	if msg.Seq == m.StatusSeq {
		m.StatusMessage = ""
	}
}
