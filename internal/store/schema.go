package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS cards (
    card_id              TEXT PRIMARY KEY,
    bank_name            TEXT NOT NULL,
    card_name            TEXT NOT NULL,
    last_four            TEXT,
    credit_limit         INTEGER NOT NULL,
    current_usage        INTEGER NOT NULL DEFAULT 0,
    statement_date       INTEGER NOT NULL,
    due_date             INTEGER NOT NULL,
    color                TEXT,
    created_at           TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS transactions (
    tx_id                TEXT PRIMARY KEY,
    card_id              TEXT NOT NULL,
    amount               INTEGER NOT NULL,
    category             TEXT NOT NULL,
    tx_date              TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_transactions_card ON transactions(card_id);
CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(tx_date);
`
