package qif

import (
	"fmt"

	"github.com/zimuliu/WealthSimpleCSV2QIF/pkg/statement"
)

// Currencies supported for settlement. Every account seen gets one bucket
// per currency, even if it stays empty.
var supportedCurrencies = []string{"CAD", "USD"}

// Bucket is the ordered collection of QIF entries for one account in one
// settlement currency. Entry order matches source row order; the ledger
// never reorders or deduplicates.
type Bucket struct {
	Key       string
	AccountID string
	Currency  string
	Entries   []*Entry
}

// Ledger accumulates QIF entries per account key. Bucket iteration order is
// deterministic: accounts in first-seen order, currencies in fixed order.
type Ledger struct {
	builder  *Builder
	buckets  map[string]*Bucket
	accounts []string
}

// NewLedger returns an empty Ledger that classifies rows with the given
// Builder.
func NewLedger(builder *Builder) *Ledger {
	return &Ledger{
		builder: builder,
		buckets: make(map[string]*Bucket),
	}
}

// EnsureAccount creates the CAD and USD buckets for an account if they don't
// exist yet. Downstream code can rely on both being present for every account
// whose statement file was seen, even with zero matching rows.
func (l *Ledger) EnsureAccount(accountID string) {
	if _, ok := l.buckets[accountKey(accountID, supportedCurrencies[0])]; ok {
		return
	}
	l.accounts = append(l.accounts, accountID)
	for _, currency := range supportedCurrencies {
		key := accountKey(accountID, currency)
		l.buckets[key] = &Bucket{Key: key, AccountID: accountID, Currency: currency}
	}
}

// Add classifies one statement row and appends the resulting entry, if any,
// to the bucket matching the row's own currency. Rows settling in an
// unsupported currency produce no entry.
func (l *Ledger) Add(accountID string, rec statement.Record) error {
	l.EnsureAccount(accountID)

	bucket, ok := l.buckets[accountKey(accountID, rec.Currency)]
	if !ok {
		return nil
	}

	entry, err := l.builder.Build(rec, rec.Currency)
	if err != nil {
		return fmt.Errorf("account %s: %w", accountID, err)
	}
	if entry != nil {
		bucket.Entries = append(bucket.Entries, entry)
	}
	return nil
}

// Buckets returns all buckets, including empty ones, in deterministic order.
func (l *Ledger) Buckets() []*Bucket {
	out := make([]*Bucket, 0, len(l.accounts)*len(supportedCurrencies))
	for _, accountID := range l.accounts {
		for _, currency := range supportedCurrencies {
			out = append(out, l.buckets[accountKey(accountID, currency)])
		}
	}
	return out
}

func accountKey(accountID, currency string) string {
	return accountID + "-" + currency
}
