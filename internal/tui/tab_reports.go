package tui

import (
	"fmt"
	"strings"

	"cardwise/internal/cli"
	"cardwise/internal/tui/components"
	"cardwise/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const maxRecentRows = 15

func (a App) renderReportsTab(cw int) string {
	t := theme.Active

	if len(a.snapshot.Cards) == 0 && len(a.snapshot.Transactions) == 0 {
		emptyStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		return "\n" + emptyStyle.Render("  Nothing to report yet.")
	}

	innerW := components.CardInnerWidth(cw)

	var b strings.Builder

	if len(a.series) > 0 {
		b.WriteString(components.ContentCard("Usage vs Limit",
			components.UsageChart(a.series, a.currency, innerW), cw))
		b.WriteString("\n")
	}

	if len(a.categories) > 0 {
		b.WriteString(components.ContentCard("Spend by Category",
			components.CategoryChart(a.categories, a.currency, innerW), cw))
		b.WriteString("\n")
	}

	if len(a.snapshot.Cards) > 0 {
		b.WriteString(components.ContentCard("Card Utilization", a.renderUtilization(innerW), cw))
		b.WriteString("\n")
	}

	b.WriteString(components.ContentCard("Recent Transactions", a.renderLedger(innerW), cw))

	return b.String()
}

// renderUtilization shows a labeled gauge per card.
func (a App) renderUtilization(innerW int) string {
	labelW := 0
	for _, c := range a.snapshot.Cards {
		if n := len(c.BankName + " " + c.CardName); n > labelW {
			labelW = n
		}
	}
	if labelW > innerW/2 {
		labelW = innerW / 2
	}
	barW := innerW - labelW - 10
	if barW < 10 {
		barW = 10
	}

	var b strings.Builder
	for i, c := range a.snapshot.Cards {
		if i > 0 {
			b.WriteString("\n")
		}
		label := truncStr(c.BankName+" "+c.CardName, labelW)
		b.WriteString(components.LabeledGauge(label, c.CurrentUsage, c.CreditLimit, labelW, barW))
	}
	return b.String()
}

// renderLedger lists recent transactions newest first. Entries whose card was
// deleted stay in the ledger and show N/A for the card column.
func (a App) renderLedger(innerW int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	if len(a.recent) == 0 {
		return labelStyle.Render("No transactions logged.")
	}

	cardW := innerW / 3
	if cardW < 12 {
		cardW = 12
	}

	var b strings.Builder
	for i, tx := range a.recent {
		if i >= maxRecentRows {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  … %d more", len(a.recent)-maxRecentRows)))
			break
		}

		cardName := "N/A"
		if c, ok := a.snapshot.CardByID(tx.CardID); ok {
			cardName = c.BankName + " " + c.CardName
		}

		b.WriteString(labelStyle.Render(tx.Date.Format("Jan 02")))
		b.WriteString("  ")
		b.WriteString(valueStyle.Render(fmt.Sprintf("%-*s", cardW, truncStr(cardName, cardW))))
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-14s", string(tx.Category))))
		b.WriteString(valueStyle.Render(cli.FormatMoney(a.currency, tx.Amount)))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
