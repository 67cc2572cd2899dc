package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jhakala/fishcast/internal/models"
)

const bestHours = 5

// renderBestPane renders the best fishing hours pane
func (m Model) renderBestPane(width int) string {
	var content strings.Builder

	content.WriteString(titleStyle.Render("Best Hours"))
	content.WriteString("\n\n")

	if len(m.records) == 0 {
		content.WriteString(mutedStyle.Render("No forecast data available"))
		return m.paneFor(PaneBest).Width(width).Render(content.String())
	}

	for _, rec := range m.best {
		content.WriteString(renderRecordLine(rec))
		content.WriteString("\n")
	}

	return m.paneFor(PaneBest).Width(width).Render(content.String())
}

// renderRecordLine formats one scored hour as a single line
func renderRecordLine(rec models.ScoredRecord) string {
	line := fmt.Sprintf("%s  %s  %s",
		valueStyle.Render(rec.Time.Format("Mon 15:04")),
		indexStyle(rec.FishingIndex).Render(fmt.Sprintf("Index %3.0f", rec.FishingIndex)),
		mutedStyle.Render(fmt.Sprintf("%.1f hPa (%+.1f), wind %.0f° %.1f m/s",
			rec.Pressure, rec.PressureDiff, rec.WindDirection, rec.WindSpeed)),
	)
	if rec.SeaLevelDiff != nil && rec.SeaLevel != nil {
		line += mutedStyle.Render(fmt.Sprintf(", sea %.1f cm (%+.1f)", *rec.SeaLevel, *rec.SeaLevelDiff))
	}
	return line
}

// renderMoonPane renders the moon phase pane
func (m Model) renderMoonPane(width int) string {
	var content strings.Builder

	content.WriteString(titleStyle.Render("Moon Phases"))
	content.WriteString("\n\n")

	rows := []struct {
		label string
		value string
	}{
		{"Previous full moon", m.phases.PrevFull.Format("2006-01-02 15:04")},
		{"Previous new moon", m.phases.PrevNew.Format("2006-01-02 15:04")},
		{"Next full moon", m.phases.NextFull.Format("2006-01-02 15:04")},
		{"Next new moon", m.phases.NextNew.Format("2006-01-02 15:04")},
	}
	for _, row := range rows {
		content.WriteString(fmt.Sprintf("%s  %s\n",
			labelStyle.Width(20).Render(row.label),
			valueStyle.Render(row.value)))
	}

	return m.paneFor(PaneMoon).Width(width).Render(content.String())
}

// paneFor returns the pane style, highlighted when the pane is active
func (m Model) paneFor(pane ActivePane) lipgloss.Style {
	if m.activePane == pane {
		return activePaneStyle
	}
	return paneStyle
}
