// Package db provides SQLite database management for export history.
package db

// Schema defines the SQL statements to create database tables.
const Schema = `
-- Export history table
-- Tracks which QIF files were emitted, for which account key, and when
CREATE TABLE IF NOT EXISTS export_history (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    account_key TEXT NOT NULL,         -- "{accountID}-{currency}"
    nickname TEXT NOT NULL,            -- configured account nickname
    qif_file TEXT NOT NULL,            -- path of the emitted QIF file
    entry_count INTEGER NOT NULL,      -- number of QIF records in the file
    exported_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    UNIQUE(account_key, qif_file)
);

CREATE INDEX IF NOT EXISTS idx_export_history_account
    ON export_history(account_key);
`

// InitializeSchema initializes the database schema.
// It creates all tables if they don't exist.
func InitializeSchema(conn *Connection) error {
	if _, err := conn.Exec(Schema); err != nil {
		return err
	}
	return nil
}
