package chart

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/schollz/freqchart/internal/canvas"
)

// DefaultThemeName is used when no theme is configured or a saved name is
// unknown.
const DefaultThemeName = "dark"

// Theme is the chart color scheme.
type Theme struct {
	Name        string
	Background  colorful.Color
	Foreground  colorful.Color
	Axis        colorful.Color
	BlockBorder colorful.Color
	Marker      colorful.Color
	Highlight   colorful.Color
	// HoverBlend is how far a hovered block moves toward Highlight.
	HoverBlend float64
}

var themes = []Theme{
	{
		Name:        "dark",
		Background:  canvas.Hex("#1E1E1E"),
		Foreground:  canvas.Hex("#E0E0E0"),
		Axis:        canvas.Hex("#9E9E9E"),
		BlockBorder: canvas.Hex("#121212"),
		Marker:      canvas.Hex("#FF5252"),
		Highlight:   canvas.Hex("#FFFFFF"),
		HoverBlend:  0.35,
	},
	{
		Name:        "light",
		Background:  canvas.Hex("#FFFFFF"),
		Foreground:  canvas.Hex("#000000"),
		Axis:        canvas.Hex("#666666"),
		BlockBorder: canvas.Hex("#CCCCCC"),
		Marker:      canvas.Hex("#C42B1C"),
		Highlight:   canvas.Hex("#000000"),
		HoverBlend:  0.25,
	},
	{
		Name:        "high_contrast",
		Background:  canvas.Hex("#000000"),
		Foreground:  canvas.Hex("#FFFFFF"),
		Axis:        canvas.Hex("#FFFF00"),
		BlockBorder: canvas.Hex("#FFFFFF"),
		Marker:      canvas.Hex("#FFFF00"),
		Highlight:   canvas.Hex("#FFFFFF"),
		HoverBlend:  0.5,
	},
}

func DefaultTheme() Theme {
	return themes[0]
}

// ThemeNames lists the built-in themes in cycling order.
func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

// ThemeByName looks up a built-in theme.
func ThemeByName(name string) (Theme, bool) {
	for _, t := range themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// NextTheme returns the name of the theme after name, wrapping around. An
// unknown name yields the first theme.
func NextTheme(name string) string {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)].Name
		}
	}
	return themes[0].Name
}

// blockColor is the fill of an allocation block.
func (t Theme) blockColor(hex string, hovered bool) colorful.Color {
	c := canvas.Hex(hex)
	if hovered {
		c = c.BlendLab(t.Highlight, t.HoverBlend).Clamped()
	}
	return c
}
