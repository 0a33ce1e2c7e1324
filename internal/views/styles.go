package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Common styles used across the chart screen
type ViewStyles struct {
	Tab         lipgloss.Style
	ActiveTab   lipgloss.Style
	Normal      lipgloss.Style
	Label       lipgloss.Style
	DetailTitle lipgloss.Style
	Cursor      lipgloss.Style
	Status      lipgloss.Style
	Rule        lipgloss.Style
}

// getCommonStyles returns the standard style definitions used across views
func getCommonStyles() *ViewStyles {
	return &ViewStyles{
		Tab:         lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Padding(0, 1),
		ActiveTab:   lipgloss.NewStyle().Background(lipgloss.Color("7")).Foreground(lipgloss.Color("0")).Bold(true).Padding(0, 1),
		Normal:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		Label:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		DetailTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Cursor:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Rule:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// fit truncates every line of s to width cells.
func fit(s string, width int) string {
	return lipgloss.NewStyle().MaxWidth(max(width, 1)).Render(s)
}

// spread places left and right on one line of the given width.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if right == "" || gap < 1 {
		return fit(left, width)
	}
	return left + strings.Repeat(" ", gap) + right
}
