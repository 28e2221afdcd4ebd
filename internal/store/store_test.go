package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardwise/internal/model"
	"cardwise/internal/wallet"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "wallet.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveAndListCards(t *testing.T) {
	s := openTestStore(t)

	card := model.Card{
		ID: "c1", BankName: "Apex Financial", CardName: "Obsidian Tier",
		LastFourDigits: "4412", CreditLimit: 80000, CurrentUsage: 22000,
		StatementDate: 20, DueDate: 10, Color: "#3f8af2",
	}
	require.NoError(t, s.SaveCard(card))

	cards, err := s.ListCards()
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, card, cards[0])

	// Saving again with the same id updates in place.
	card.CurrentUsage = 25000
	require.NoError(t, s.SaveCard(card))
	cards, err = s.ListCards()
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, int64(25000), cards[0].CurrentUsage)
}

func TestApplyTransaction_BumpsUsage(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.SaveCard(model.Card{
		ID: "c1", BankName: "Apex Financial", CardName: "Obsidian Tier",
		CreditLimit: 80000, CurrentUsage: 22000, StatementDate: 20, DueDate: 10,
	}))

	tx := model.Transaction{
		ID: "t1", CardID: "c1", Amount: 1500,
		Category: model.CategoryDining,
		Date:     time.Date(2025, time.August, 21, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.ApplyTransaction(tx))

	snap, err := s.LoadSnapshot()
	require.NoError(t, err)
	require.Len(t, snap.Cards, 1)
	assert.Equal(t, int64(23500), snap.Cards[0].CurrentUsage)
	require.Len(t, snap.Transactions, 1)
	assert.Equal(t, tx, snap.Transactions[0])
}

func TestApplyTransaction_UnknownCardLeavesLedgerUntouched(t *testing.T) {
	s := openTestStore(t)

	err := s.ApplyTransaction(model.Transaction{
		ID: "t1", CardID: "missing", Amount: 100,
		Category: model.CategoryOther, Date: time.Now().UTC(),
	})
	require.ErrorIs(t, err, wallet.ErrCardNotFound)

	txs, err := s.ListTransactions()
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestDeleteCard_KeepsTransactions(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.SaveCard(model.Card{
		ID: "c1", BankName: "Apex Financial", CardName: "Obsidian Tier",
		CreditLimit: 80000, StatementDate: 20, DueDate: 10,
	}))
	require.NoError(t, s.ApplyTransaction(model.Transaction{
		ID: "t1", CardID: "c1", Amount: 100,
		Category: model.CategoryOther, Date: time.Now().UTC(),
	}))

	require.NoError(t, s.DeleteCard("c1"))

	count, err := s.CardCount()
	require.NoError(t, err)
	assert.Zero(t, count)

	txs, err := s.ListTransactions()
	require.NoError(t, err)
	assert.Len(t, txs, 1)
}

func TestDeleteCard_Unknown(t *testing.T) {
	s := openTestStore(t)
	assert.ErrorIs(t, s.DeleteCard("missing"), wallet.ErrCardNotFound)
}

func TestListTransactions_MalformedDateFails(t *testing.T) {
	s := openTestStore(t)

	_, err := s.db.Exec(`INSERT INTO transactions (tx_id, card_id, amount, category, tx_date)
		VALUES ('t1', 'c1', 100, 'Other', 'not-a-date')`)
	require.NoError(t, err)

	_, err = s.ListTransactions()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tx_date")
}

func TestReplaceSnapshot(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.SaveCard(model.Card{
		ID: "old", BankName: "Old Bank", CardName: "Legacy",
		CreditLimit: 1000, StatementDate: 1, DueDate: 15,
	}))

	seeded := wallet.Snapshot{
		Cards: []model.Card{
			{ID: "c1", BankName: "Apex Financial", CardName: "Obsidian Tier", CreditLimit: 80000, CurrentUsage: 22000, StatementDate: 20, DueDate: 10},
			{ID: "c2", BankName: "Meridian Trust", CardName: "Solaris", CreditLimit: 150000, CurrentUsage: 61000, StatementDate: 5, DueDate: 25},
		},
		Transactions: []model.Transaction{
			{ID: "t1", CardID: "c1", Amount: 1500, Category: model.CategoryDining, Date: time.Date(2025, time.August, 20, 0, 0, 0, 0, time.UTC)},
		},
	}
	require.NoError(t, s.ReplaceSnapshot(seeded))

	snap, err := s.LoadSnapshot()
	require.NoError(t, err)
	require.Len(t, snap.Cards, 2)
	assert.Equal(t, "c1", snap.Cards[0].ID)
	require.Len(t, snap.Transactions, 1)
	assert.Equal(t, "t1", snap.Transactions[0].ID)
}
