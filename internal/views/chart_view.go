package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/schollz/freqchart/internal/chart"
	"github.com/schollz/freqchart/internal/input"
	"github.com/schollz/freqchart/internal/model"
)

// RenderChartView renders the whole screen: band tabs, the chart and the
// footer. The result is exactly m.TermHeight lines with the chart starting
// at model.HeaderRows, which is what mouse input assumes; on terminals too
// short for everything the bottom of the footer is cut.
func RenderChartView(m *model.Model) string {
	styles := getCommonStyles()
	width := max(m.TermWidth, model.MinChartCols)

	var content strings.Builder
	content.WriteString(renderHeader(m, styles, width))
	content.WriteString(m.RenderChart().String())
	content.WriteString("\n")
	content.WriteString(renderFooter(m, styles, width))

	lines := strings.Split(content.String(), "\n")
	if m.TermHeight > 0 && len(lines) > m.TermHeight {
		lines = lines[:m.TermHeight]
	}
	return strings.Join(lines, "\n")
}

// renderHeader renders model.HeaderRows lines, each ending in a newline.
func renderHeader(m *model.Model, styles *ViewStyles, width int) string {
	band := m.Band()

	var tabs []string
	for _, b := range m.Catalog.Bands() {
		if b.ID == band.ID {
			tabs = append(tabs, styles.ActiveTab.Render(b.DisplayName))
		} else {
			tabs = append(tabs, styles.Tab.Render(b.DisplayName))
		}
	}
	left := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	right := styles.Label.Render(band.RangeLabel)

	lines := []string{
		spread(left, right, width),
		fit(styles.Normal.Render(band.UsesDescription), width),
		styles.Rule.Render(strings.Repeat("─", width)),
	}
	return strings.Join(lines, "\n") + "\n"
}

// renderFooter renders the footer with no trailing newline: model.FooterRows
// lines, less any help rows the terminal has no room for.
func renderFooter(m *model.Model, styles *ViewStyles, width int) string {
	var detail1, detail2 string
	if d := m.Details; d != nil {
		detail1 = styles.DetailTitle.Render(d.Name) + styles.Label.Render(" · ") + styles.Normal.Render(d.Service)
		detail2 = styles.Normal.Render(d.FrequencyRangeLabel) + styles.Label.Render(" · bandwidth ") + styles.Normal.Render(d.BandwidthLabel)
	} else {
		detail1 = styles.Label.Render("click an allocation for details")
	}

	var cursor string
	if m.CursorValid {
		cursor = styles.Cursor.Render("cursor " + chart.FormatTunedFrequency(m.CursorFrequency))
		if m.Hover >= 0 && m.Hover < len(m.Band().Allocations) {
			cursor += styles.Label.Render(" · " + m.Band().Allocations[m.Hover].Name)
		}
	}
	summary := spread(cursor, styles.Label.Render(m.ViewSummary()), width)

	var entry string
	if m.Editing() {
		entry = m.EntryInput.View()
	}

	lines := []string{
		fit(detail1, width),
		fit(detail2, width),
		summary,
		fit(styles.Status.Render(m.StatusMessage), width),
		fit(entry, width),
	}
	if n := m.ShownHelpRows(); n > 0 {
		h := m.Help
		h.Width = width
		lines = append(lines, lipgloss.NewStyle().Height(n).MaxHeight(n).Render(h.View(input.Keys)))
	}
	return strings.Join(lines, "\n")
}
