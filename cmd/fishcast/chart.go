package main

import (
	"fmt"
	"strings"

	"github.com/jhakala/fishcast/internal/models"
)

const (
	chartWidth = 80  // bar area width in cells
	chartMax   = 100 // index value at full width
)

// renderIndexChart draws one horizontal bar per scored hour, scaled so a
// 100 index fills the full bar area. Values above 100 are clamped.
func renderIndexChart(records []models.ScoredRecord) string {
	if len(records) == 0 {
		return ""
	}

	var b strings.Builder
	rule := strings.Repeat("─", 17) + "┼" + strings.Repeat("─", chartWidth)

	b.WriteString("\n")
	b.WriteString("Date/Time        │Fishing Index\n")
	b.WriteString(rule + "\n")

	for _, rec := range records {
		barLen := int(rec.FishingIndex / chartMax * chartWidth)
		if barLen > chartWidth {
			barLen = chartWidth
		}
		if barLen < 0 {
			barLen = 0
		}
		label := rec.Time.Format("Mon Jan-02 15:04")
		fmt.Fprintf(&b, "%-16s │%s\n", label, strings.Repeat("█", barLen))
	}

	b.WriteString(rule + "\n")
	b.WriteString(strings.Repeat(" ", 17) + chartScale() + "\n")
	b.WriteString(strings.Repeat(" ", 17) + chartTicks() + "\n")

	return b.String()
}

// chartScale labels the axis at 20% intervals.
func chartScale() string {
	step := chartWidth / 5
	var b strings.Builder
	for i := 0; i < 5; i++ {
		b.WriteString(fmt.Sprintf("%-*d", step, chartMax*i/5))
	}
	b.WriteString(fmt.Sprintf("%d", chartMax))
	return b.String()
}

// chartTicks draws tick marks under the scale labels.
func chartTicks() string {
	ticks := make([]rune, chartWidth+1)
	for i := range ticks {
		if i%(chartWidth/5) == 0 {
			ticks[i] = '┴'
		} else {
			ticks[i] = '─'
		}
	}
	return string(ticks)
}
