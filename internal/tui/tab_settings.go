package tui

import (
	"fmt"
	"strings"

	"cardwise/internal/billing"
	"cardwise/internal/config"
	"cardwise/internal/tui/components"
	"cardwise/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldTheme = iota
	settingsFieldCurrency
	settingsFieldDayOverflow
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message briefly
	saveErr error // non-nil if last save failed
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 40
	return ti
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	a.settings.editing = true
	a.settings.saved = false

	ti := newSettingsInput()

	switch a.settings.cursor {
	case settingsFieldTheme:
		names := make([]string, len(theme.All))
		for i, t := range theme.All {
			names[i] = t.Name
		}
		ti.Placeholder = strings.Join(names, ", ")
		ti.SetValue(a.cfg.Appearance.Theme)
	case settingsFieldCurrency:
		ti.Placeholder = "₹, $, €, ..."
		ti.SetValue(a.cfg.General.Currency)
	case settingsFieldDayOverflow:
		ti.Placeholder = "rollover or clamp"
		ti.SetValue(a.cfg.Billing.DayOverflow)
	}

	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "enter":
		a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

func (a *App) settingsSave() {
	val := strings.TrimSpace(a.settings.input.Value())

	switch a.settings.cursor {
	case settingsFieldTheme:
		for _, t := range theme.All {
			if t.Name == val {
				a.cfg.Appearance.Theme = val
				theme.SetActive(val)
				break
			}
		}
	case settingsFieldCurrency:
		if val != "" {
			a.cfg.General.Currency = val
			a.currency = val
		}
	case settingsFieldDayOverflow:
		if val == "rollover" || val == "clamp" {
			a.cfg.Billing.DayOverflow = val
			a.overflow = billing.ParseOverflow(val)
			a.recompute()
		}
	}

	a.settings.saveErr = config.Save(a.cfg)
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright)
	greenStyle := lipgloss.NewStyle().Foreground(t.Green)

	type field struct {
		label string
		value string
	}

	fields := []field{
		{"Theme", a.cfg.Appearance.Theme},
		{"Currency", a.cfg.General.Currency},
		{"Day Overflow", a.cfg.Billing.DayOverflow},
	}

	var formBody strings.Builder
	for i, f := range fields {
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(selectedLabelStyle.Render(fmt.Sprintf("%-14s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(selectedLabelStyle.Render(fmt.Sprintf("%-14s ", f.label+":")))
		} else {
			formBody.WriteString("  ")
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-14s ", f.label+":")))
		}
		formBody.WriteString(valueStyle.Render(f.value))
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Config file:  ") + valueStyle.Render(config.ConfigPath()) + "\n")
	infoBody.WriteString(labelStyle.Render("Data dir:     ") + valueStyle.Render(config.DataDir(a.cfg)) + "\n")
	infoBody.WriteString(labelStyle.Render("Cards:        ") + valueStyle.Render(fmt.Sprintf("%d", len(a.snapshot.Cards))))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("General", infoBody.String(), cw))

	return b.String()
}
