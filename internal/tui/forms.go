package tui

import (
	"errors"
	"strconv"
	"strings"

	"cardwise/internal/model"

	"github.com/charmbracelet/huh"
)

// cardFormValues collects the Add Card form inputs as strings; parsing
// happens on submit.
type cardFormValues struct {
	BankName      string
	CardName      string
	LastFour      string
	CreditLimit   string
	StatementDate string
	DueDate       string
}

// txFormValues collects the Log Transaction form inputs.
type txFormValues struct {
	CardID   string
	Amount   string
	Category string
}

func newCardForm(vals *cardFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Bank name").
				Placeholder("Apex Financial").
				Value(&vals.BankName).
				Validate(requireNonEmpty("bank name")),
			huh.NewInput().
				Title("Card name").
				Placeholder("Obsidian Tier").
				Value(&vals.CardName).
				Validate(requireNonEmpty("card name")),
			huh.NewInput().
				Title("Last 4 digits").
				Placeholder("4412").
				CharLimit(4).
				Value(&vals.LastFour),
			huh.NewInput().
				Title("Credit limit").
				Placeholder("80000").
				Value(&vals.CreditLimit).
				Validate(requirePositiveInt("credit limit")),
			huh.NewInput().
				Title("Statement day (1-31)").
				Placeholder("20").
				Value(&vals.StatementDate).
				Validate(requireDayOfMonth),
			huh.NewInput().
				Title("Payment due day (1-31)").
				Placeholder("10").
				Value(&vals.DueDate).
				Validate(requireDayOfMonth),
		).Title("Add Card"),
	)
}

func newTxForm(cards []model.Card, vals *txFormValues) *huh.Form {
	cardOpts := make([]huh.Option[string], 0, len(cards))
	for _, c := range cards {
		cardOpts = append(cardOpts, huh.NewOption(c.BankName+" "+c.CardName, c.ID))
	}

	catOpts := make([]huh.Option[string], 0, len(model.Categories))
	for _, cat := range model.Categories {
		catOpts = append(catOpts, huh.NewOption(string(cat), string(cat)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Card").
				Options(cardOpts...).
				Value(&vals.CardID),
			huh.NewInput().
				Title("Amount").
				Placeholder("1500").
				Value(&vals.Amount).
				Validate(requirePositiveInt("amount")),
			huh.NewSelect[string]().
				Title("Category").
				Options(catOpts...).
				Value(&vals.Category),
		).Title("Log Transaction"),
	)
}

func requireNonEmpty(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(name + " is required")
		}
		return nil
	}
}

func requirePositiveInt(name string) func(string) error {
	return func(s string) error {
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil || n <= 0 {
			return errors.New(name + " must be a positive number")
		}
		return nil
	}
}

func requireDayOfMonth(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 31 {
		return errors.New("enter a day between 1 and 31")
	}
	return nil
}
