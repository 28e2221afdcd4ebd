// Package billing projects card billing cycles and recommends the card with
// the longest interest-free float for a purchase date.
package billing

import (
	"errors"
	"fmt"
	"math"
	"time"

	"cardwise/internal/model"
)

// DayOverflow selects how a statement or due day that exceeds the resolved
// month's length is handled.
type DayOverflow int

const (
	// OverflowRollover lets the date normalize forward: day 31 of a 30-day
	// month becomes day 1 of the following month. Default.
	OverflowRollover DayOverflow = iota
	// OverflowClamp pins the date to the last day of the month instead.
	OverflowClamp
)

// ParseOverflow maps a config string to a DayOverflow policy.
func ParseOverflow(s string) DayOverflow {
	if s == "clamp" {
		return OverflowClamp
	}
	return OverflowRollover
}

// Cycle is the projected next statement and payment due date for a card.
type Cycle struct {
	StatementDate  time.Time
	PaymentDueDate time.Time
}

// ErrInvalidCardConfig reports a card whose billing fields are out of range.
var ErrInvalidCardConfig = errors.New("invalid card configuration")

// Validate checks the billing-relevant card fields. It is meant to run at the
// card-creation boundary; projection assumes it has already passed.
func Validate(c model.Card) error {
	if c.StatementDate < 1 || c.StatementDate > 31 {
		return fmt.Errorf("%w: statement date %d outside 1-31", ErrInvalidCardConfig, c.StatementDate)
	}
	if c.DueDate < 1 || c.DueDate > 31 {
		return fmt.Errorf("%w: due date %d outside 1-31", ErrInvalidCardConfig, c.DueDate)
	}
	if c.CreditLimit <= 0 {
		return fmt.Errorf("%w: credit limit must be positive", ErrInvalidCardConfig)
	}
	return nil
}

// ProjectCycle projects the next statement and due date for a card from an
// anchor date.
//
// The statement falls in the anchor's month unless the anchor day is already
// past the statement day, in which case it rolls to the next month. The due
// date shares the statement's month unless the due day precedes the statement
// day, which models a payment owed in the month after the statement closes.
func ProjectCycle(card model.Card, anchor time.Time, overflow DayOverflow) Cycle {
	stmtYear, stmtMonth := anchor.Year(), anchor.Month()
	if anchor.Day() > card.StatementDate {
		stmtMonth++
	}

	dueYear, dueMonth := stmtYear, stmtMonth
	if card.DueDate < card.StatementDate {
		dueMonth++
	}

	return Cycle{
		StatementDate:  composeDate(stmtYear, stmtMonth, card.StatementDate, anchor.Location(), overflow),
		PaymentDueDate: composeDate(dueYear, dueMonth, card.DueDate, anchor.Location(), overflow),
	}
}

// composeDate builds a date from year/month/day, applying the overflow policy
// when day exceeds the month's length. time.Date already normalizes both
// out-of-range months (January+12) and overflowing days, so the rollover
// policy is a direct construction.
func composeDate(year int, month time.Month, day int, loc *time.Location, overflow DayOverflow) time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, loc)
	if overflow == OverflowClamp && d.Day() != day {
		// Normalization moved us into the next month; back up to its last day.
		d = d.AddDate(0, 0, -d.Day())
	}
	return d
}

// DaysUntilDue returns the number of calendar days from purchase to due,
// rounding fractional days up. Negative when due precedes purchase.
func DaysUntilDue(due, purchase time.Time) int {
	return int(math.Ceil(due.Sub(purchase).Hours() / 24))
}
