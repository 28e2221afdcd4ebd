package wallet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardwise/internal/billing"
	"cardwise/internal/model"
)

func testSnapshot() Snapshot {
	return Snapshot{
		Cards: []model.Card{
			{ID: "c1", BankName: "Apex Financial", CurrentUsage: 22000, CreditLimit: 80000, StatementDate: 20, DueDate: 10},
			{ID: "c2", BankName: "Meridian Trust", CurrentUsage: 61000, CreditLimit: 150000, StatementDate: 5, DueDate: 25},
		},
	}
}

func TestApply_IncrementsOnlyTargetCard(t *testing.T) {
	snap := testSnapshot()
	now := time.Date(2025, time.August, 21, 10, 0, 0, 0, time.UTC)

	next, tx, err := snap.Apply("c1", 1500, model.CategoryDining, now)
	require.NoError(t, err)

	assert.Equal(t, int64(23500), next.Cards[0].CurrentUsage)
	assert.Equal(t, snap.Cards[1], next.Cards[1])
	require.Len(t, next.Transactions, 1)
	assert.Equal(t, tx, next.Transactions[0])
	assert.NotEmpty(t, tx.ID)
	assert.Equal(t, now, tx.Date)
	assert.Equal(t, "c1", tx.CardID)

	// The prior snapshot stays valid.
	assert.Equal(t, int64(22000), snap.Cards[0].CurrentUsage)
	assert.Empty(t, snap.Transactions)
}

func TestApply_OrphanCardFailsAtomically(t *testing.T) {
	snap := testSnapshot()

	next, _, err := snap.Apply("missing", 100, model.CategoryOther, time.Now())
	require.ErrorIs(t, err, ErrCardNotFound)

	// Both collections must be the untouched inputs.
	assert.Equal(t, snap.Cards, next.Cards)
	assert.Equal(t, snap.Transactions, next.Transactions)
	assert.Equal(t, int64(22000), next.Cards[0].CurrentUsage)
}

func TestApply_RejectsNonPositiveAmount(t *testing.T) {
	snap := testSnapshot()

	_, _, err := snap.Apply("c1", 0, model.CategoryDining, time.Now())
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, _, err = snap.Apply("c1", -50, model.CategoryDining, time.Now())
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestApply_RejectsUnknownCategory(t *testing.T) {
	snap := testSnapshot()

	_, _, err := snap.Apply("c1", 100, model.Category("Gambling"), time.Now())
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestApply_AssignsUniqueIDs(t *testing.T) {
	snap := testSnapshot()
	now := time.Now()

	next, first, err := snap.Apply("c1", 100, model.CategoryOther, now)
	require.NoError(t, err)
	_, second, err := next.Apply("c1", 100, model.CategoryOther, now)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestAddCard_ValidatesAndAssignsID(t *testing.T) {
	snap := testSnapshot()

	next, err := snap.AddCard(model.Card{
		BankName:      "Nexus Bank",
		CardName:      "Quantum",
		StatementDate: 15,
		DueDate:       5,
		CreditLimit:   200000,
	})
	require.NoError(t, err)
	require.Len(t, next.Cards, 3)
	assert.NotEmpty(t, next.Cards[2].ID)
	assert.Len(t, snap.Cards, 2)
}

func TestAddCard_RejectsInvalidConfig(t *testing.T) {
	snap := testSnapshot()

	_, err := snap.AddCard(model.Card{StatementDate: 0, DueDate: 10, CreditLimit: 1000})
	assert.ErrorIs(t, err, billing.ErrInvalidCardConfig)

	_, err = snap.AddCard(model.Card{StatementDate: 10, DueDate: 10, CreditLimit: 1000, CurrentUsage: -1})
	assert.ErrorIs(t, err, billing.ErrInvalidCardConfig)
}

func TestDeleteCard_RetainsLedger(t *testing.T) {
	snap := testSnapshot()
	snap.Transactions = []model.Transaction{
		{ID: "t1", CardID: "c1", Amount: 100, Category: model.CategoryOther, Date: time.Now()},
	}

	next, err := snap.DeleteCard("c1")
	require.NoError(t, err)
	require.Len(t, next.Cards, 1)
	assert.Equal(t, "c2", next.Cards[0].ID)

	// Dangling transactions stay; readers show the card as N/A.
	require.Len(t, next.Transactions, 1)
	_, ok := next.CardByID("c1")
	assert.False(t, ok)
}

func TestDeleteCard_Unknown(t *testing.T) {
	snap := testSnapshot()
	_, err := snap.DeleteCard("missing")
	assert.ErrorIs(t, err, ErrCardNotFound)
}
