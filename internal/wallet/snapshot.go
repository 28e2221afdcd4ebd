// Package wallet aggregates card usage and applies transactions against an
// immutable wallet snapshot.
package wallet

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"cardwise/internal/billing"
	"cardwise/internal/model"
)

// Snapshot is one versioned view of the wallet state. Operations never mutate
// a snapshot in place; they return a new one and leave the input valid.
type Snapshot struct {
	Cards        []model.Card
	Transactions []model.Transaction
}

var (
	// ErrCardNotFound reports a card ID that is not present in the snapshot.
	ErrCardNotFound = errors.New("card not found")
	// ErrInvalidAmount reports a non-positive transaction amount.
	ErrInvalidAmount = errors.New("transaction amount must be positive")
	// ErrInvalidCategory reports an unknown transaction category.
	ErrInvalidCategory = errors.New("unknown transaction category")
)

// CardByID returns the card with the given ID, or false when absent.
func (s Snapshot) CardByID(id string) (model.Card, bool) {
	for _, c := range s.Cards {
		if c.ID == id {
			return c, true
		}
	}
	return model.Card{}, false
}

// AddCard validates the card, assigns it a fresh ID, and returns a new
// snapshot with the card appended.
func (s Snapshot) AddCard(card model.Card) (Snapshot, error) {
	if err := billing.Validate(card); err != nil {
		return s, err
	}
	if card.CurrentUsage < 0 {
		return s, fmt.Errorf("%w: current usage must not be negative", billing.ErrInvalidCardConfig)
	}

	card.ID = uuid.NewString()

	next := s
	next.Cards = append(append([]model.Card(nil), s.Cards...), card)
	return next, nil
}

// DeleteCard returns a new snapshot without the named card. Transactions that
// reference the card are retained; readers render their card as "N/A".
func (s Snapshot) DeleteCard(id string) (Snapshot, error) {
	if _, ok := s.CardByID(id); !ok {
		return s, fmt.Errorf("%w: %s", ErrCardNotFound, id)
	}

	next := s
	next.Cards = make([]model.Card, 0, len(s.Cards)-1)
	for _, c := range s.Cards {
		if c.ID != id {
			next.Cards = append(next.Cards, c)
		}
	}
	return next, nil
}

// Apply validates and applies a transaction: the ledger gains one entry with
// a fresh ID and timestamp, and the matching card's usage grows by the
// amount. Both happen together or not at all; on error the input snapshot is
// returned untouched.
func (s Snapshot) Apply(cardID string, amount int64, category model.Category, now time.Time) (Snapshot, model.Transaction, error) {
	if amount <= 0 {
		return s, model.Transaction{}, ErrInvalidAmount
	}
	if !model.ValidCategory(category) {
		return s, model.Transaction{}, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}

	idx := -1
	for i, c := range s.Cards {
		if c.ID == cardID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s, model.Transaction{}, fmt.Errorf("%w: %s", ErrCardNotFound, cardID)
	}

	tx := model.Transaction{
		ID:       uuid.NewString(),
		CardID:   cardID,
		Amount:   amount,
		Category: category,
		Date:     now,
	}

	next := s
	next.Cards = append([]model.Card(nil), s.Cards...)
	next.Cards[idx].CurrentUsage += amount
	next.Transactions = append(append([]model.Transaction(nil), s.Transactions...), tx)

	return next, tx, nil
}
