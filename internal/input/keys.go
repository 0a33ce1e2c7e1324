package input

import "github.com/charmbracelet/bubbles/key"

// KeyMap is the chart's key bindings. It implements help.KeyMap.
type KeyMap struct {
	NextBand     key.Binding
	PrevBand     key.Binding
	TuneDown     key.Binding
	TuneUp       key.Binding
	TuneDownFast key.Binding
	TuneUpFast   key.Binding
	ZoomIn       key.Binding
	ZoomOut      key.Binding
	PanLeft      key.Binding
	PanRight     key.Binding
	PanLeftFast  key.Binding
	PanRightFast key.Binding
	Center       key.Binding
	Reset        key.Binding
	EnterFreq    key.Binding
	ClearDetails key.Binding
	Export       key.Binding
	Theme        key.Binding
	SavePreset   key.Binding
	LoadPreset   key.Binding
	Help         key.Binding
	Quit         key.Binding
}

var Keys = KeyMap{
	NextBand:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next band")),
	PrevBand:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev band")),
	TuneDown:     key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "tune -0.1")),
	TuneUp:       key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "tune +0.1")),
	TuneDownFast: key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "tune -1")),
	TuneUpFast:   key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "tune +1")),
	ZoomIn:       key.NewBinding(key.WithKeys("up", "+", "="), key.WithHelp("↑/+", "zoom in")),
	ZoomOut:      key.NewBinding(key.WithKeys("down", "-"), key.WithHelp("↓/-", "zoom out")),
	PanLeft:      key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "pan left")),
	PanRight:     key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "pan right")),
	PanLeftFast:  key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "pan left fast")),
	PanRightFast: key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "pan right fast")),
	Center:       key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "center")),
	Reset:        key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "reset view")),
	EnterFreq:    key.NewBinding(key.WithKeys("f", "/"), key.WithHelp("f", "enter frequency")),
	ClearDetails: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear details")),
	Export:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export png")),
	Theme:        key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "cycle theme")),
	SavePreset:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save preset")),
	LoadPreset:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "load preset")),
	Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextBand, k.TuneUp, k.ZoomIn, k.EnterFreq, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextBand, k.PrevBand, k.EnterFreq, k.Export},
		{k.TuneDown, k.TuneUp, k.TuneDownFast, k.TuneUpFast},
		{k.ZoomIn, k.ZoomOut, k.Reset, k.Center},
		{k.PanLeft, k.PanRight, k.PanLeftFast, k.PanRightFast},
		{k.Theme, k.SavePreset, k.LoadPreset, k.ClearDetails},
		{k.Help, k.Quit},
	}
}
