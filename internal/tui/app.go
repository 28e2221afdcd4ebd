// Package tui provides the interactive Bubble Tea dashboard for cardwise.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cardwise/internal/billing"
	"cardwise/internal/config"
	"cardwise/internal/model"
	"cardwise/internal/store"
	"cardwise/internal/tui/components"
	"cardwise/internal/tui/theme"
	"cardwise/internal/wallet"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	minTerminalWidth = 70
	maxContentWidth  = 160
	minContentHeight = 5
)

// App is the root Bubble Tea model.
type App struct {
	st       *store.Store
	cfg      config.Config
	overflow billing.DayOverflow
	currency string

	// Wallet state
	snapshot wallet.Snapshot

	// Pre-computed views of the wallet
	stats      model.WalletStats
	recs       []model.Recommendation
	best       *model.Recommendation
	categories []model.CategoryStats
	series     []model.CardSeries
	recent     []model.Transaction

	// UI state
	width     int
	height    int
	activeTab int
	cursor    int // selected card on the dashboard
	showHelp  bool
	errMsg    string

	// Modal forms
	cardForm *huh.Form
	cardVals cardFormValues
	txForm   *huh.Form
	txVals   txFormValues

	settings settingsState
}

// NewApp creates the TUI app model from a loaded wallet.
func NewApp(st *store.Store, cfg config.Config) (App, error) {
	snap, err := st.LoadSnapshot()
	if err != nil {
		return App{}, fmt.Errorf("loading wallet: %w", err)
	}

	theme.SetActive(cfg.Appearance.Theme)

	a := App{
		st:       st,
		cfg:      cfg,
		overflow: billing.ParseOverflow(cfg.Billing.DayOverflow),
		currency: cfg.General.Currency,
		snapshot: snap,
	}
	a.recompute()
	return a, nil
}

// Run starts the dashboard and blocks until it exits.
func Run(st *store.Store, cfg config.Config) error {
	app, err := NewApp(st, cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

func (a *App) recompute() {
	now := time.Now()

	a.stats = wallet.Aggregate(a.snapshot.Cards)
	a.recs = billing.Recommend(a.snapshot.Cards, now, a.overflow)
	a.best = billing.SelectBest(a.snapshot.Cards, now, a.overflow)
	a.categories = wallet.AggregateCategories(a.snapshot.Transactions)
	a.series = wallet.UsageSeries(a.snapshot.Cards)
	a.recent = wallet.RecentFirst(a.snapshot.Transactions)

	if a.cursor >= len(a.snapshot.Cards) {
		a.cursor = len(a.snapshot.Cards) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.cardForm != nil {
			a.cardForm = a.cardForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		if a.txForm != nil {
			a.txForm = a.txForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// Modal forms intercept all keys
		if a.cardForm != nil {
			return a.updateCardForm(msg)
		}
		if a.txForm != nil {
			return a.updateTxForm(msg)
		}

		// Settings editing intercepts keys
		if a.activeTab == 2 && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		// Settings tab navigation
		if a.activeTab == 2 {
			switch key {
			case "j", "down":
				if a.settings.cursor < settingsFieldCount-1 {
					a.settings.cursor++
				}
				return a, nil
			case "k", "up":
				if a.settings.cursor > 0 {
					a.settings.cursor--
				}
				return a, nil
			case "enter":
				return a.settingsStartEdit()
			}
		}

		// Dashboard card selection and actions
		if a.activeTab == 0 {
			switch key {
			case "j", "down", "right":
				if a.cursor < len(a.snapshot.Cards)-1 {
					a.cursor++
				}
				return a, nil
			case "k", "up", "left":
				if a.cursor > 0 {
					a.cursor--
				}
				return a, nil
			case "x":
				return a.deleteSelectedCard()
			}
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "a":
			a.errMsg = ""
			a.cardVals = cardFormValues{}
			a.cardForm = newCardForm(&a.cardVals)
			if a.width > 0 {
				a.cardForm = a.cardForm.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.cardForm.Init()
		case "l":
			if len(a.snapshot.Cards) == 0 {
				a.errMsg = "add a card before logging transactions"
				return a, nil
			}
			a.errMsg = ""
			a.txVals = txFormValues{}
			a.txForm = newTxForm(a.snapshot.Cards, &a.txVals)
			if a.width > 0 {
				a.txForm = a.txForm.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.txForm.Init()
		case "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		case "shift+tab":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		default:
			if len(key) == 1 {
				if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
					a.activeTab = idx
				}
			}
		}
		return a, nil
	}

	// Forward unhandled messages to active forms (cursor blinks, etc.)
	if a.cardForm != nil {
		return a.updateCardForm(msg)
	}
	if a.txForm != nil {
		return a.updateTxForm(msg)
	}

	return a, nil
}

func (a App) updateCardForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.cardForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.cardForm = f
	}

	if a.cardForm.State == huh.StateCompleted {
		a.submitCardForm()
		a.cardForm = nil
		return a, nil
	}
	if a.cardForm.State == huh.StateAborted {
		a.cardForm = nil
		return a, nil
	}

	return a, cmd
}

func (a *App) submitCardForm() {
	limit, _ := strconv.ParseInt(strings.TrimSpace(a.cardVals.CreditLimit), 10, 64)
	stmtDay, _ := strconv.Atoi(strings.TrimSpace(a.cardVals.StatementDate))
	dueDay, _ := strconv.Atoi(strings.TrimSpace(a.cardVals.DueDate))

	card := model.Card{
		BankName:       strings.TrimSpace(a.cardVals.BankName),
		CardName:       strings.TrimSpace(a.cardVals.CardName),
		LastFourDigits: strings.TrimSpace(a.cardVals.LastFour),
		CreditLimit:    limit,
		StatementDate:  stmtDay,
		DueDate:        dueDay,
	}

	next, err := a.snapshot.AddCard(card)
	if err != nil {
		a.errMsg = err.Error()
		return
	}

	added := next.Cards[len(next.Cards)-1]
	if err := a.st.SaveCard(added); err != nil {
		a.errMsg = err.Error()
		return
	}

	a.snapshot = next
	a.cursor = len(a.snapshot.Cards) - 1
	a.recompute()
}

func (a App) updateTxForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.txForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.txForm = f
	}

	if a.txForm.State == huh.StateCompleted {
		a.submitTxForm()
		a.txForm = nil
		return a, nil
	}
	if a.txForm.State == huh.StateAborted {
		a.txForm = nil
		return a, nil
	}

	return a, cmd
}

func (a *App) submitTxForm() {
	amount, _ := strconv.ParseInt(strings.TrimSpace(a.txVals.Amount), 10, 64)

	next, tx, err := a.snapshot.Apply(a.txVals.CardID, amount, model.Category(a.txVals.Category), time.Now())
	if err != nil {
		a.errMsg = err.Error()
		return
	}
	if err := a.st.ApplyTransaction(tx); err != nil {
		a.errMsg = err.Error()
		return
	}

	a.snapshot = next
	a.recompute()
}

func (a App) deleteSelectedCard() (tea.Model, tea.Cmd) {
	if a.cursor >= len(a.snapshot.Cards) {
		return a, nil
	}
	card := a.snapshot.Cards[a.cursor]

	next, err := a.snapshot.DeleteCard(card.ID)
	if err != nil {
		a.errMsg = err.Error()
		return a, nil
	}
	if err := a.st.DeleteCard(card.ID); err != nil {
		a.errMsg = err.Error()
		return a, nil
	}

	a.snapshot = next
	a.recompute()
	return a, nil
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.cardForm != nil {
		return a.cardForm.View()
	}
	if a.txForm != nil {
		return a.txForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  cardwise needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"d r s", "Jump to tab"},
		{"tab", "Next tab"},
		{"j k", "Select card"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"a", "Add card"},
		{"l", "Log transaction"},
		{"x", "Delete selected card"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w) + "\n"

	statusBar := components.RenderStatusBar(w, len(a.snapshot.Cards), len(a.snapshot.Transactions))

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case 0:
		content = a.renderDashboardTab(cw)
	case 1:
		content = a.renderReportsTab(cw)
	case 2:
		content = a.renderSettingsTab(cw)
	}

	if a.errMsg != "" {
		errStyle := lipgloss.NewStyle().Foreground(t.Red)
		content = errStyle.Render(" "+a.errMsg) + "\n" + content
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
