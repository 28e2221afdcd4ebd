package components

import (
	"fmt"

	"cardwise/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForPct returns green/yellow/orange/red based on utilization level.
func ColorForPct(pct float64) string {
	t := theme.Active
	switch {
	case pct >= 0.9:
		return string(t.Red)
	case pct >= 0.7:
		return string(t.Orange)
	case pct >= 0.5:
		return string(t.Yellow)
	default:
		return string(t.Green)
	}
}

// UtilizationGauge renders a usage-vs-limit bar colored by utilization level.
// Over-limit usage pins the bar at full.
func UtilizationGauge(usage, limit int64, width int) string {
	t := theme.Active

	var pct float64
	if limit > 0 {
		pct = float64(usage) / float64(limit)
	}
	if pct < 0 {
		pct = 0
	}
	display := pct
	if display > 1 {
		display = 1
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForPct(pct)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	return bar.ViewAs(display)
}

// LabeledGauge renders a labeled utilization bar with a percentage readout.
func LabeledGauge(label string, usage, limit int64, labelW, barWidth int) string {
	t := theme.Active

	var pct float64
	if limit > 0 {
		pct = float64(usage) / float64(limit)
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForPct(pct))).Bold(true)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) + " " +
		UtilizationGauge(usage, limit, barWidth) + " " +
		pctStyle.Render(fmt.Sprintf("%5.1f%%", pct*100))
}
