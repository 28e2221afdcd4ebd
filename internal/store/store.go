// Package store persists the card wallet and transaction ledger in SQLite.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cardwise/internal/model"
	"cardwise/internal/wallet"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store provides SQLite-backed wallet persistence.
type Store struct {
	db *sql.DB
}

// Open opens or creates the wallet database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening wallet db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the wallet database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveCard inserts or updates a card.
func (s *Store) SaveCard(c model.Card) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`INSERT INTO cards
		(card_id, bank_name, card_name, last_four, credit_limit, current_usage,
		 statement_date, due_date, color, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(card_id) DO UPDATE SET
		 bank_name=excluded.bank_name, card_name=excluded.card_name,
		 last_four=excluded.last_four, credit_limit=excluded.credit_limit,
		 current_usage=excluded.current_usage, statement_date=excluded.statement_date,
		 due_date=excluded.due_date, color=excluded.color`,
		c.ID, c.BankName, c.CardName, c.LastFourDigits, c.CreditLimit, c.CurrentUsage,
		c.StatementDate, c.DueDate, c.Color, now,
	)
	return err
}

// DeleteCard removes a card. Its transactions are kept; readers resolve the
// missing card as N/A.
func (s *Store) DeleteCard(cardID string) error {
	res, err := s.db.Exec("DELETE FROM cards WHERE card_id = ?", cardID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return wallet.ErrCardNotFound
	}
	return nil
}

// ApplyTransaction records a ledger entry and bumps the card's usage in one
// database transaction. Neither change lands if the other fails.
func (s *Store) ApplyTransaction(t model.Transaction) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec("UPDATE cards SET current_usage = current_usage + ? WHERE card_id = ?",
		t.Amount, t.CardID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return wallet.ErrCardNotFound
	}

	_, err = tx.Exec(`INSERT INTO transactions (tx_id, card_id, amount, category, tx_date)
		VALUES (?, ?, ?, ?, ?)`,
		t.ID, t.CardID, t.Amount, string(t.Category), t.Date.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// LoadSnapshot reads the full wallet state from the database.
func (s *Store) LoadSnapshot() (wallet.Snapshot, error) {
	var snap wallet.Snapshot

	cards, err := s.ListCards()
	if err != nil {
		return snap, err
	}
	txs, err := s.ListTransactions()
	if err != nil {
		return snap, err
	}

	snap.Cards = cards
	snap.Transactions = txs
	return snap, nil
}

// ReplaceSnapshot wipes the database and writes the given state. Used when
// seeding demo data.
func (s *Store) ReplaceSnapshot(snap wallet.Snapshot) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM transactions"); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM cards"); err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for _, c := range snap.Cards {
		_, err := tx.Exec(`INSERT INTO cards
			(card_id, bank_name, card_name, last_four, credit_limit, current_usage,
			 statement_date, due_date, color, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.ID, c.BankName, c.CardName, c.LastFourDigits, c.CreditLimit, c.CurrentUsage,
			c.StatementDate, c.DueDate, c.Color, now,
		)
		if err != nil {
			return err
		}
	}
	for _, t := range snap.Transactions {
		_, err := tx.Exec(`INSERT INTO transactions (tx_id, card_id, amount, category, tx_date)
			VALUES (?, ?, ?, ?, ?)`,
			t.ID, t.CardID, t.Amount, string(t.Category), t.Date.UTC().Format(time.RFC3339),
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListCards returns all cards in insertion order.
func (s *Store) ListCards() ([]model.Card, error) {
	rows, err := s.db.Query(`SELECT card_id, bank_name, card_name, last_four,
		credit_limit, current_usage, statement_date, due_date, color
		FROM cards ORDER BY created_at, card_id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var cards []model.Card
	for rows.Next() {
		var c model.Card
		var lastFour, color sql.NullString
		err := rows.Scan(&c.ID, &c.BankName, &c.CardName, &lastFour,
			&c.CreditLimit, &c.CurrentUsage, &c.StatementDate, &c.DueDate, &color)
		if err != nil {
			return nil, err
		}
		if lastFour.Valid {
			c.LastFourDigits = lastFour.String
		}
		if color.Valid {
			c.Color = color.String
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

// ListTransactions returns the full ledger ordered oldest first.
func (s *Store) ListTransactions() ([]model.Transaction, error) {
	rows, err := s.db.Query(`SELECT tx_id, card_id, amount, category, tx_date
		FROM transactions ORDER BY tx_date, tx_id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var txs []model.Transaction
	for rows.Next() {
		var t model.Transaction
		var cat, dateStr string
		if err := rows.Scan(&t.ID, &t.CardID, &t.Amount, &cat, &dateStr); err != nil {
			return nil, err
		}
		t.Category = model.Category(cat)
		t.Date, err = time.Parse(time.RFC3339, dateStr)
		if err != nil {
			return nil, fmt.Errorf("parsing tx_date for %s: %w", t.ID, err)
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

// CardCount returns the number of stored cards.
func (s *Store) CardCount() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM cards").Scan(&count)
	return count, err
}
