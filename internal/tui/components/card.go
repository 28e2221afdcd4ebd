// Package components provides reusable TUI widgets for the cardwise dashboard.
package components

import (
	"cardwise/internal/cli"
	"cardwise/internal/model"
	"cardwise/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// LayoutRow distributes totalWidth into n widths that sum to exactly totalWidth.
// First items absorb the remainder from integer division.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	base := totalWidth / n
	remainder := totalWidth % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < remainder {
			widths[i]++
		}
	}
	return widths
}

// MetricCard renders a small metric card with label, value, and hint.
// outerWidth is the total rendered width including border.
func MetricCard(label, value, hint string, outerWidth int) string {
	t := theme.Active

	contentWidth := outerWidth - 2 // subtract border
	if contentWidth < 10 {
		contentWidth = 10
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(contentWidth).
		Padding(0, 1)

	labelStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	valueStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Bold(true)

	hintStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	content := labelStyle.Render(label) + "\n" +
		valueStyle.Render(value)
	if hint != "" {
		content += "\n" + hintStyle.Render(hint)
	}

	return cardStyle.Render(content)
}

// CreditCard renders a single wallet card as a bordered widget. The selected
// card gets an accent border; the best recommendation carries a badge.
func CreditCard(c model.Card, currency string, selected, best bool, outerWidth int) string {
	t := theme.Active

	contentWidth := outerWidth - 2
	if contentWidth < 24 {
		contentWidth = 24
	}

	borderColor := t.BorderBright
	if selected {
		borderColor = t.BorderAccent
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(contentWidth).
		Padding(0, 1)

	bankStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Bold(true)

	nameStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	panStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	usageStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary)

	limitStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	badgeStyle := lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Green).
		Bold(true).
		Padding(0, 1)

	dateStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	header := bankStyle.Render(c.BankName)
	if best {
		header += " " + badgeStyle.Render("BEST CHOICE")
	}

	barWidth := contentWidth - 4
	if barWidth < 10 {
		barWidth = 10
	}

	body := header + "\n" +
		nameStyle.Render(c.CardName) + "\n" +
		panStyle.Render(cli.MaskCardNumber(c.LastFourDigits)) + "\n" +
		usageStyle.Render(cli.FormatMoney(currency, c.CurrentUsage)) +
		limitStyle.Render(" / "+cli.FormatMoney(currency, c.CreditLimit)) + "\n" +
		UtilizationGauge(c.CurrentUsage, c.CreditLimit, barWidth) + "\n" +
		dateStyle.Render("stmt "+cli.OrdinalDay(c.StatementDate)+" · due "+cli.OrdinalDay(c.DueDate))

	return cardStyle.Render(body)
}

// ContentCard renders a bordered content card with an optional title.
// outerWidth controls the total rendered width including border.
func ContentCard(title, body string, outerWidth int) string {
	t := theme.Active

	contentWidth := outerWidth - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(contentWidth).
		Padding(0, 1)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Bold(true)

	content := ""
	if title != "" {
		content = titleStyle.Render(title) + "\n"
	}
	content += body

	return cardStyle.Render(content)
}

// CardRow joins pre-rendered card strings horizontally.
func CardRow(cards []string) string {
	if len(cards) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// CardInnerWidth returns the usable text width inside a ContentCard
// given its outer width (subtracts border + padding).
func CardInnerWidth(outerWidth int) int {
	w := outerWidth - 4 // 2 border + 2 padding
	if w < 10 {
		w = 10
	}
	return w
}
