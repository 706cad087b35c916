package statement

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExtractAccountID(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		expected string
		ok       bool
	}{
		{"standard account", "monthly-statement-transactions-HQ8KJW805CAD-2025-07-01.csv", "HQ8KJW805CAD", true},
		{"usd account", "monthly-statement-transactions-AB1234567USD-2024-12-31.csv", "AB1234567USD", true},
		{"numeric account", "monthly-statement-transactions-1234567890-2025-07-01.csv", "1234567890", true},
		{"single character", "monthly-statement-transactions-A-2025-07-01.csv", "A", true},
		{"underscores allowed", "monthly-statement-transactions-TEST_123_CAD-2025-07-01.csv", "TEST_123_CAD", true},
		{"leap day", "monthly-statement-transactions-LEAP987654-2024-02-29.csv", "LEAP987654", true},
		{"wrong prefix", "daily-statement-transactions-HQ8KJW805CAD-2025-07-01.csv", "", false},
		{"missing date", "monthly-statement-transactions-HQ8KJW805CAD.csv", "", false},
		{"wrong extension", "monthly-statement-transactions-HQ8KJW805CAD-2025-07-01.txt", "", false},
		{"two digit year", "monthly-statement-transactions-HQ8KJW805CAD-25-07-01.csv", "", false},
		{"slash separated date", "monthly-statement-transactions-HQ8KJW805CAD-2025/07/01.csv", "", false},
		{"hyphen in account id", "monthly-statement-transactions-TEST-123-CAD-2025-07-01.csv", "", false},
		{"space in account id", "monthly-statement-transactions-TEST 123 CAD-2025-07-01.csv", "", false},
		{"partial match", "monthly-statement-transactions-", "", false},
		{"unrelated file", "some-other-file.csv", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ExtractAccountID(tt.filename)
			if ok != tt.ok {
				t.Fatalf("ExtractAccountID(%q) ok = %v, expected %v", tt.filename, ok, tt.ok)
			}
			if id != tt.expected {
				t.Errorf("ExtractAccountID(%q) = %q, expected %q", tt.filename, id, tt.expected)
			}
		})
	}
}

func TestScan(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, dir, "monthly-statement-transactions-TEST123456-2025-07-01.csv", "date,transaction,description,amount,currency\n")
	writeFile(t, dir, "monthly-statement-transactions-OTHER99-2025-06-01.csv", "date,transaction,description,amount,currency\n")
	writeFile(t, dir, "notes.csv", "junk\n")
	writeFile(t, dir, "readme.txt", "junk\n")

	files, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("Scan() returned %d files, expected 2", len(files))
	}

	seen := map[string]bool{}
	for _, f := range files {
		seen[f.AccountID] = true
	}
	if !seen["TEST123456"] || !seen["OTHER99"] {
		t.Errorf("Scan() account IDs = %v", seen)
	}
}

func TestScanMissingFolder(t *testing.T) {
	if _, err := Scan(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("Scan() should fail on a missing folder")
	}
}

func TestReadRecords(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "monthly-statement-transactions-TEST123456-2025-07-01.csv",
		"date,transaction,description,amount,currency\n"+
			"2025-07-01,BUY,AAPL - 10.0 shares,-1500.00,USD\n"+
			"2025-07-02,CONT,Deposit,500.00,CAD\n")

	records, err := ReadRecords(path)
	if err != nil {
		t.Fatalf("ReadRecords() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("ReadRecords() returned %d records, expected 2", len(records))
	}

	first := Record{
		Date:        "2025-07-01",
		Type:        "BUY",
		Description: "AAPL - 10.0 shares",
		Amount:      "-1500.00",
		Currency:    "USD",
	}
	if records[0] != first {
		t.Errorf("records[0] = %+v, expected %+v", records[0], first)
	}
}

func TestReadRecordsColumnOrderIrrelevant(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "shuffled.csv",
		"currency,amount,description,transaction,date\n"+
			"USD,-1500.00,AAPL - 10.0 shares,BUY,2025-07-01\n")

	records, err := ReadRecords(path)
	if err != nil {
		t.Fatalf("ReadRecords() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("ReadRecords() returned %d records, expected 1", len(records))
	}
	if records[0].Type != "BUY" || records[0].Currency != "USD" || records[0].Date != "2025-07-01" {
		t.Errorf("records[0] = %+v", records[0])
	}
}

func TestReadRecordsMissingColumn(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.csv",
		"date,transaction,description,amount\n"+
			"2025-07-01,BUY,AAPL - 10.0 shares,-1500.00\n")

	if _, err := ReadRecords(path); err == nil {
		t.Fatal("ReadRecords() should fail when the currency column is missing")
	}
}

func TestReadRecordsEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "empty.csv", "")

	if _, err := ReadRecords(path); err == nil {
		t.Fatal("ReadRecords() should fail on an empty file")
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}
