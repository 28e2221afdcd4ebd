package components

import (
	"fmt"
	"strings"

	"cardwise/internal/cli"
	"cardwise/internal/model"
	"cardwise/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// UsageChart renders a horizontal usage-vs-limit bar chart, one row pair per
// card: a colored usage bar over a dimmed limit bar, scaled to the highest
// limit in the wallet.
func UsageChart(series []model.CardSeries, currency string, width int) string {
	if len(series) == 0 {
		return ""
	}
	t := theme.Active

	labelW := 0
	var peak int64
	for _, s := range series {
		if len(s.Label) > labelW {
			labelW = len(s.Label)
		}
		if s.Limit > peak {
			peak = s.Limit
		}
		if s.Usage > peak {
			peak = s.Usage
		}
	}
	if peak <= 0 {
		peak = 1
	}

	barW := width - labelW - 14
	if barW < 10 {
		barW = 10
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	usageStyle := lipgloss.NewStyle().Foreground(t.Accent)
	limitStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	amountStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var b strings.Builder
	for i, s := range series {
		if i > 0 {
			b.WriteString("\n")
		}

		usageLen := scaleBar(s.Usage, peak, barW)
		limitLen := scaleBar(s.Limit, peak, barW)

		b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", labelW, s.Label)))
		b.WriteString(" ")
		b.WriteString(usageStyle.Render(strings.Repeat("█", usageLen)))
		b.WriteString(" ")
		b.WriteString(amountStyle.Render(cli.FormatMoney(currency, s.Usage)))
		b.WriteString("\n")
		b.WriteString(strings.Repeat(" ", labelW))
		b.WriteString(" ")
		b.WriteString(limitStyle.Render(strings.Repeat("█", limitLen)))
		b.WriteString(" ")
		b.WriteString(limitStyle.Render(cli.FormatMoney(currency, s.Limit)))
	}

	return b.String()
}

// CategoryChart renders per-category spend as horizontal bars sorted by the
// caller (largest first by convention).
func CategoryChart(stats []model.CategoryStats, currency string, width int) string {
	if len(stats) == 0 {
		return ""
	}
	t := theme.Active

	labelW := 0
	var peak int64
	for _, s := range stats {
		if len(s.Category) > labelW {
			labelW = len(string(s.Category))
		}
		if s.Amount > peak {
			peak = s.Amount
		}
	}
	if peak <= 0 {
		peak = 1
	}

	barW := width - labelW - 14
	if barW < 10 {
		barW = 10
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	barStyle := lipgloss.NewStyle().Foreground(t.Purple)
	amountStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var b strings.Builder
	for i, s := range stats {
		if i > 0 {
			b.WriteString("\n")
		}
		barLen := scaleBar(s.Amount, peak, barW)
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", labelW, string(s.Category))))
		b.WriteString(" ")
		b.WriteString(barStyle.Render(strings.Repeat("█", barLen)))
		b.WriteString(" ")
		b.WriteString(amountStyle.Render(cli.FormatMoney(currency, s.Amount)))
	}

	return b.String()
}

// scaleBar maps value onto [1, width] so nonzero values always show a mark.
func scaleBar(value, peak int64, width int) int {
	if value <= 0 || peak <= 0 {
		return 0
	}
	n := int(float64(value) / float64(peak) * float64(width))
	if n < 1 {
		n = 1
	}
	if n > width {
		n = width
	}
	return n
}
