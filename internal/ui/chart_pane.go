package ui

import (
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"

	"github.com/jhakala/fishcast/internal/models"
)

// newIndexChart builds a time series chart of the fishing index. The Y
// range is widened beyond [0,100] when sea level points push the index
// outside it.
func newIndexChart(width, height int, records []models.ScoredRecord) timeserieslinechart.Model {
	minY, maxY := 0.0, 100.0
	for _, rec := range records {
		if rec.FishingIndex > maxY {
			maxY = rec.FishingIndex
		}
		if rec.FishingIndex < minY {
			minY = rec.FishingIndex
		}
	}

	opts := []timeserieslinechart.Option{
		timeserieslinechart.WithYRange(minY, maxY),
		timeserieslinechart.WithAxesStyles(chartAxisStyle, chartLabelStyle),
	}
	if len(records) > 1 {
		opts = append(opts, timeserieslinechart.WithTimeRange(records[0].Time, records[len(records)-1].Time))
	}

	chart := timeserieslinechart.New(width, height, opts...)
	for _, rec := range records {
		chart.Push(timeserieslinechart.TimePoint{Time: rec.Time, Value: rec.FishingIndex})
	}
	chart.DrawBraille()
	return chart
}

// newSignalChart builds a time series chart of one forecast signal with
// the Y range fitted to the data. value reports false to skip a record.
func newSignalChart(width, height int, records []models.ScoredRecord, value func(models.ScoredRecord) (float64, bool)) timeserieslinechart.Model {
	type point struct {
		t time.Time
		v float64
	}
	var pts []point
	for _, rec := range records {
		if v, ok := value(rec); ok {
			pts = append(pts, point{rec.Time, v})
		}
	}
	if len(pts) == 0 {
		return timeserieslinechart.New(width, height)
	}

	minY, maxY := pts[0].v, pts[0].v
	for _, p := range pts {
		if p.v > maxY {
			maxY = p.v
		}
		if p.v < minY {
			minY = p.v
		}
	}
	if maxY-minY < 1 {
		minY, maxY = minY-1, maxY+1
	}

	opts := []timeserieslinechart.Option{
		timeserieslinechart.WithYRange(minY, maxY),
		timeserieslinechart.WithAxesStyles(chartAxisStyle, chartLabelStyle),
	}
	if len(pts) > 1 {
		opts = append(opts, timeserieslinechart.WithTimeRange(pts[0].t, pts[len(pts)-1].t))
	}

	chart := timeserieslinechart.New(width, height, opts...)
	for _, p := range pts {
		chart.Push(timeserieslinechart.TimePoint{Time: p.t, Value: p.v})
	}
	chart.DrawBraille()
	return chart
}

// renderChartPane renders the fishing index chart pane
func (m Model) renderChartPane(width int) string {
	var content strings.Builder

	content.WriteString(titleStyle.Render("Fishing Index"))
	content.WriteString("\n\n")

	if len(m.records) == 0 {
		content.WriteString(mutedStyle.Render("No forecast data available"))
	} else {
		content.WriteString(m.chart.View())
	}

	style := paneStyle
	if m.activePane == PaneChart {
		style = activePaneStyle
	}
	return style.Width(width).Render(content.String())
}

// renderSignalsPane renders the pressure, wind and sea level charts
func (m Model) renderSignalsPane(width int) string {
	var content strings.Builder

	if len(m.records) == 0 {
		content.WriteString(mutedStyle.Render("No forecast data available"))
		return m.paneFor(PaneSignals).Width(width).Render(content.String())
	}

	pressure := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Pressure (hPa)"), m.pressureChart.View())
	wind := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Wind speed (m/s)"), m.windChart.View())
	content.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, pressure, "    ", wind))

	if m.hasSeaSeries {
		content.WriteString("\n\n")
		content.WriteString(titleStyle.Render("Sea level (cm)"))
		content.WriteString("\n")
		content.WriteString(m.seaChart.View())
	}

	return m.paneFor(PaneSignals).Width(width).Render(content.String())
}
