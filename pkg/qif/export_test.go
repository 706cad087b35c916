package qif

import (
	"errors"
	"strings"
	"testing"

	"github.com/zimuliu/WealthSimpleCSV2QIF/pkg/accounts"
	"github.com/zimuliu/WealthSimpleCSV2QIF/pkg/statement"
)

func buildLedger(t *testing.T, accountID string, records []statement.Record) *Ledger {
	t.Helper()
	ledger := NewLedger(NewBuilder())
	ledger.EnsureAccount(accountID)
	for _, rec := range records {
		if err := ledger.Add(accountID, rec); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}
	return ledger
}

func TestExportInvestmentAccount(t *testing.T) {
	ledger := buildLedger(t, "TEST123456", []statement.Record{
		{Date: "2025-07-15", Type: "BUY", Description: "AAPL - 10.0 shares", Amount: "-1500.00", Currency: "USD"},
		{Date: "2025-07-30", Type: "DIV", Description: "AAPL - dividend", Amount: "2.50", Currency: "USD"},
	})

	registry := accounts.New(map[string]accounts.Account{
		"TEST123456-USD": {Nickname: "RRSP USD", Type: accounts.TypeInvestment},
	})

	docs, err := NewExporter(registry).Export(ledger)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("Export() returned %d documents, expected 1 (empty CAD bucket skipped)", len(docs))
	}

	doc := docs[0]
	if doc.Filename != "RRSP USD.qif" {
		t.Errorf("Filename = %q", doc.Filename)
	}
	if doc.EntryCount != 2 {
		t.Errorf("EntryCount = %d, expected 2", doc.EntryCount)
	}
	if !strings.HasPrefix(doc.Text, "!Type:Invst\n") {
		t.Errorf("document should start with investment header, got %q", doc.Text)
	}
	if !strings.HasSuffix(doc.Text, "^\n") {
		t.Errorf("document should end with record terminator, got %q", doc.Text)
	}
	if strings.Count(doc.Text, "^") != 2 {
		t.Errorf("document should contain 2 record terminators")
	}
}

func TestExportCheckingHeader(t *testing.T) {
	ledger := buildLedger(t, "ABC123CAD", []statement.Record{
		{Date: "2025-07-05", Type: "SPEND", Description: "Coffee", Amount: "4.50", Currency: "CAD"},
	})

	registry := accounts.New(map[string]accounts.Account{
		"ABC123CAD-CAD": {Nickname: "Chequing", Type: accounts.TypeChecking},
	})

	docs, err := NewExporter(registry).Export(ledger)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("Export() returned %d documents, expected 1", len(docs))
	}
	if !strings.HasPrefix(docs[0].Text, "!Type:Bank\n") {
		t.Errorf("checking document should start with bank header, got %q", docs[0].Text)
	}
}

func TestExportUnknownAccount(t *testing.T) {
	ledger := buildLedger(t, "TEST123456", []statement.Record{
		{Date: "2025-07-15", Type: "CONT", Description: "deposit", Amount: "100.00", Currency: "CAD"},
	})

	registry := accounts.New(map[string]accounts.Account{})

	_, err := NewExporter(registry).Export(ledger)
	var unknownErr *UnknownAccountError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("Export() error = %v, expected UnknownAccountError", err)
	}
	if unknownErr.AccountKey != "TEST123456-CAD" {
		t.Errorf("AccountKey = %q", unknownErr.AccountKey)
	}
}

func TestExportCurrencyMismatch(t *testing.T) {
	// Account ID ends in CAD but the transactions settle in USD.
	ledger := buildLedger(t, "ABC123CAD", []statement.Record{
		{Date: "2025-07-05", Type: "SPEND", Description: "Coffee", Amount: "4.50", Currency: "USD"},
	})

	registry := accounts.New(map[string]accounts.Account{
		"ABC123CAD-USD": {Nickname: "Chequing", Type: accounts.TypeChecking},
	})

	_, err := NewExporter(registry).Export(ledger)
	var mismatchErr *CurrencyMismatchError
	if !errors.As(err, &mismatchErr) {
		t.Fatalf("Export() error = %v, expected CurrencyMismatchError", err)
	}
	if mismatchErr.Actual != "USD" || mismatchErr.Expected != "CAD" {
		t.Errorf("mismatch actual = %q expected = %q", mismatchErr.Actual, mismatchErr.Expected)
	}
	if !strings.Contains(mismatchErr.Error(), "USD") || !strings.Contains(mismatchErr.Error(), "CAD") {
		t.Errorf("error message should name both currencies: %q", mismatchErr.Error())
	}
}

func TestExportCheckingWithMatchingSuffix(t *testing.T) {
	ledger := buildLedger(t, "XY987USD", []statement.Record{
		{Date: "2025-07-05", Type: "EFT", Description: "Payroll", Amount: "2000.00", Currency: "USD"},
	})

	registry := accounts.New(map[string]accounts.Account{
		"XY987USD-USD": {Nickname: "US Chequing", Type: accounts.TypeChecking},
	})

	docs, err := NewExporter(registry).Export(ledger)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("Export() returned %d documents, expected 1", len(docs))
	}
}

func TestImpliedCurrency(t *testing.T) {
	tests := []struct {
		accountID string
		expected  string
	}{
		{"ABC123CAD", "CAD"},
		{"ABC123USD", "USD"},
		{"ABC123", "CAD"}, // no recognized suffix defaults to CAD
	}

	for _, tt := range tests {
		if got := impliedCurrency(tt.accountID); got != tt.expected {
			t.Errorf("impliedCurrency(%q) = %q, expected %q", tt.accountID, got, tt.expected)
		}
	}
}
