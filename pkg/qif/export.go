package qif

import (
	"strings"

	"github.com/zimuliu/WealthSimpleCSV2QIF/pkg/accounts"
)

// QIF file headers by account type.
const (
	headerBank       = "!Type:Bank"
	headerInvestment = "!Type:Invst"
)

// Document is one renderable QIF file for a non-empty bucket.
type Document struct {
	AccountKey string
	Nickname   string
	Filename   string
	Text       string
	EntryCount int
}

// Exporter resolves ledger buckets against the account configuration and
// renders them into QIF documents.
type Exporter struct {
	registry *accounts.Registry
}

// NewExporter creates an Exporter over a loaded account registry.
func NewExporter(registry *accounts.Registry) *Exporter {
	return &Exporter{registry: registry}
}

// Export validates and renders every non-empty bucket of the ledger. Empty
// buckets are skipped. A bucket without configuration is an
// UnknownAccountError; a Checking bucket whose currency disagrees with its
// account ID suffix is a CurrencyMismatchError. Documents come out in the
// ledger's deterministic bucket order.
func (x *Exporter) Export(ledger *Ledger) ([]Document, error) {
	var docs []Document
	for _, bucket := range ledger.Buckets() {
		if len(bucket.Entries) == 0 {
			continue
		}

		account, ok := x.registry.Lookup(bucket.Key)
		if !ok {
			return nil, &UnknownAccountError{AccountKey: bucket.Key}
		}

		if account.Type == accounts.TypeChecking {
			expected := impliedCurrency(bucket.AccountID)
			if expected != bucket.Currency {
				return nil, &CurrencyMismatchError{
					AccountKey: bucket.Key,
					Actual:     bucket.Currency,
					Expected:   expected,
				}
			}
		}

		docs = append(docs, Document{
			AccountKey: bucket.Key,
			Nickname:   account.Nickname,
			Filename:   account.Nickname + ".qif",
			Text:       render(account.Type, bucket.Entries),
			EntryCount: len(bucket.Entries),
		})
	}
	return docs, nil
}

// impliedCurrency derives the settlement currency a checking account ID
// commits to. IDs without a recognized suffix default to CAD.
func impliedCurrency(accountID string) string {
	switch {
	case strings.HasSuffix(accountID, "USD"):
		return "USD"
	case strings.HasSuffix(accountID, "CAD"):
		return "CAD"
	default:
		return "CAD"
	}
}

func render(accountType accounts.Type, entries []*Entry) string {
	header := headerInvestment
	if accountType == accounts.TypeChecking {
		header = headerBank
	}

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("\n")
	for _, entry := range entries {
		sb.WriteString(entry.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
