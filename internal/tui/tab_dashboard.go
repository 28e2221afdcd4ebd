package tui

import (
	"fmt"
	"strings"

	"cardwise/internal/cli"
	"cardwise/internal/tui/components"
	"cardwise/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderDashboardTab(cw int) string {
	t := theme.Active

	if len(a.snapshot.Cards) == 0 {
		emptyStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		return "\n" + emptyStyle.Render("  No cards yet. Press [a] to add your first card.")
	}

	var b strings.Builder

	// Summary metrics
	metrics := []struct{ Label, Value, Delta string }{
		{"Total Usage", cli.FormatMoney(a.currency, a.stats.TotalUsage), ""},
		{"Total Limit", cli.FormatMoney(a.currency, a.stats.TotalLimit), ""},
		{"Utilization", cli.FormatPercent(a.stats.UtilizationPct), ""},
	}
	widths := components.LayoutRow(cw, len(metrics))
	var metricCards []string
	for i, m := range metrics {
		metricCards = append(metricCards, components.MetricCard(m.Label, m.Value, m.Delta, widths[i]))
	}
	b.WriteString(components.CardRow(metricCards))
	b.WriteString("\n")

	// Recommendation panel: which card buys the longest interest-free float
	// for a purchase made today.
	b.WriteString(components.ContentCard("Best Card For Today", a.renderRecommendation(components.CardInnerWidth(cw)), cw))
	b.WriteString("\n")

	// Wallet cards
	perRow := len(a.snapshot.Cards)
	if perRow > 3 {
		perRow = 3
	}
	cardWidths := components.LayoutRow(cw, perRow)

	var row []string
	for i, c := range a.snapshot.Cards {
		best := a.best != nil && a.best.Card.ID == c.ID
		row = append(row, components.CreditCard(c, a.currency, i == a.cursor, best, cardWidths[len(row)]))
		if len(row) == perRow {
			b.WriteString(components.CardRow(row))
			b.WriteString("\n")
			row = nil
		}
	}
	if len(row) > 0 {
		b.WriteString(components.CardRow(row))
		b.WriteString("\n")
	}

	return b.String()
}

func (a App) renderRecommendation(innerW int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	bestStyle := lipgloss.NewStyle().Foreground(t.Green).Bold(true)

	if a.best == nil {
		return labelStyle.Render("Add a card to get a recommendation.")
	}

	var b strings.Builder
	b.WriteString(bestStyle.Render(fmt.Sprintf("★ %s %s", a.best.Card.BankName, a.best.Card.CardName)))
	b.WriteString(valueStyle.Render(fmt.Sprintf("  pay by %s (%s of float)",
		cli.FormatDate(a.best.PaymentDueDate), cli.FormatDays(a.best.DaysUntilDue))))
	b.WriteString("\n")

	for _, r := range a.recs {
		if r.Card.ID == a.best.Card.ID {
			continue
		}
		name := truncStr(r.Card.BankName+" "+r.Card.CardName, innerW-30)
		b.WriteString(labelStyle.Render(fmt.Sprintf("  %-*s due %s · %s",
			innerW-30, name, cli.FormatDate(r.PaymentDueDate), cli.FormatDays(r.DaysUntilDue))))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
