// Package statement locates and decodes WealthSimple monthly statement CSV exports.
package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
)

// Record is one decoded statement row. All values are kept verbatim as text;
// interpretation (amounts, dates) happens downstream.
type Record struct {
	Date        string
	Type        string
	Description string
	Amount      string
	Currency    string
}

// File is one statement CSV discovered in the input folder.
type File struct {
	Path      string
	AccountID string
}

// Statement exports are named monthly-statement-transactions-{ID}-{YYYY}-{MM}-{DD}.csv
// where the account ID is word characters only (no hyphens, no spaces).
var filenamePattern = regexp.MustCompile(`^monthly-statement-transactions-(\w+)-\d{4}-\d{2}-\d{2}\.csv$`)

// ExtractAccountID extracts the account ID from a statement filename.
// Returns false for any filename that deviates from the expected shape.
func ExtractAccountID(filename string) (string, bool) {
	m := filenamePattern.FindStringSubmatch(filename)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Scan lists statement CSV files in a folder. Files that don't match the
// statement naming convention are skipped with a warning.
func Scan(dir string) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input folder: %w", err)
	}

	var files []File
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		accountID, ok := ExtractAccountID(name)
		if !ok {
			if filepath.Ext(name) == ".csv" {
				slog.Warn("Skipping unrecognized CSV file", "file", name)
			}
			continue
		}
		files = append(files, File{
			Path:      filepath.Join(dir, name),
			AccountID: accountID,
		})
	}

	return files, nil
}

// required column headers, matched exactly
var requiredColumns = []string{"date", "transaction", "description", "amount", "currency"}

// ReadRecords decodes all rows of one statement CSV. Column order is
// irrelevant; columns are resolved by header name. Rows are returned in
// file order.
func ReadRecords(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open statement file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("statement file %s is empty", filepath.Base(path))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", filepath.Base(path), err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("statement file %s is missing column %q", filepath.Base(path), name)
		}
	}

	var records []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row of %s: %w", filepath.Base(path), err)
		}

		records = append(records, Record{
			Date:        row[index["date"]],
			Type:        row[index["transaction"]],
			Description: row[index["description"]],
			Amount:      row[index["amount"]],
			Currency:    row[index["currency"]],
		})
	}

	return records, nil
}
