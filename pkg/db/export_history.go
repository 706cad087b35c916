package db

import (
	"database/sql"
	"fmt"
	"time"
)

// ExportRecord represents one emitted QIF file.
type ExportRecord struct {
	ID         int64
	AccountKey string
	Nickname   string
	QIFFile    string
	EntryCount int
	ExportedAt time.Time
}

// Stats summarizes the export history.
type Stats struct {
	TotalFiles    int
	TotalEntries  int
	TotalAccounts int
	LastExport    sql.NullString
}

// ExportHistory manages export history operations.
type ExportHistory struct {
	conn *Connection
}

// NewExportHistory creates a new ExportHistory instance.
func NewExportHistory(conn *Connection) *ExportHistory {
	return &ExportHistory{conn: conn}
}

// RecordExport records one emitted QIF file. Re-exporting the same account
// key to the same file updates the existing row.
func (h *ExportHistory) RecordExport(record ExportRecord) error {
	query := `
		INSERT INTO export_history (account_key, nickname, qif_file, entry_count)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(account_key, qif_file) DO UPDATE SET
			nickname = excluded.nickname,
			entry_count = excluded.entry_count,
			exported_at = CURRENT_TIMESTAMP
	`

	_, err := h.conn.Exec(query,
		record.AccountKey,
		record.Nickname,
		record.QIFFile,
		record.EntryCount,
	)

	if err != nil {
		return fmt.Errorf("failed to record export: %w", err)
	}

	return nil
}

// GetRecords retrieves the full export history, most recent first.
func (h *ExportHistory) GetRecords() ([]ExportRecord, error) {
	query := `
		SELECT id, account_key, nickname, qif_file, entry_count, exported_at
		FROM export_history
		ORDER BY exported_at DESC, id DESC
	`

	rows, err := h.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query export history: %w", err)
	}
	defer rows.Close()

	var records []ExportRecord
	for rows.Next() {
		var record ExportRecord
		if err := rows.Scan(
			&record.ID,
			&record.AccountKey,
			&record.Nickname,
			&record.QIFFile,
			&record.EntryCount,
			&record.ExportedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan export record: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate export history: %w", err)
	}

	return records, nil
}

// GetStats retrieves summary statistics of the export history.
func (h *ExportHistory) GetStats() (*Stats, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(entry_count), 0),
			COUNT(DISTINCT account_key),
			MAX(exported_at)
		FROM export_history
	`

	var stats Stats
	err := h.conn.QueryRow(query).Scan(
		&stats.TotalFiles,
		&stats.TotalEntries,
		&stats.TotalAccounts,
		&stats.LastExport,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get export stats: %w", err)
	}

	return &stats, nil
}
