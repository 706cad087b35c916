package qif

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/zimuliu/WealthSimpleCSV2QIF/pkg/statement"
)

// Builder classifies statement rows and produces QIF entries. The transaction
// type vocabulary is closed: anything outside it is a ClassificationError,
// never a silent drop.
type Builder struct {
	// cdrTickers lists the Canadian Depositary Receipt tickers that take
	// the NEO "-QH" suffix when settled in CAD. Everything else (including
	// these tickers settled in USD) takes the "-CT" suffix.
	cdrTickers map[string]struct{}

	// ignoredTypes are transaction types intentionally dropped without an
	// entry and without an error.
	ignoredTypes map[string]struct{}
}

// NewBuilder returns a Builder with the standard CDR ticker and ignored-type
// sets. The sets are fixed for the lifetime of the Builder.
func NewBuilder() *Builder {
	return &Builder{
		cdrTickers: map[string]struct{}{
			"TSLA": {},
			"DIS":  {},
			"NVDA": {},
			"AAPL": {},
		},
		ignoredTypes: map[string]struct{}{
			"RECALL":   {},
			"LOAN":     {},
			"STKDIS":   {},
			"STKREORG": {},
		},
	}
}

// Symbol extracts the ticker from an equity description and applies the
// exchange suffix: "-QH" for CDR tickers settled in CAD, "-CT" otherwise.
// Returns false when the description has no hyphen-delimited symbol.
func (b *Builder) Symbol(description, currency string) (string, bool) {
	symbol, ok := splitSymbol(description)
	if !ok {
		return "", false
	}
	if _, cdr := b.cdrTickers[symbol]; cdr && currency == "CAD" {
		return symbol + "-QH", true
	}
	return symbol + "-CT", true
}

// Build converts one statement row into a QIF entry for the given target
// currency. It returns (nil, nil) when the row settles in a different
// currency or its type is in the ignored set. Unknown transaction types and
// descriptions missing a required value are ClassificationErrors.
func (b *Builder) Build(rec statement.Record, targetCurrency string) (*Entry, error) {
	if rec.Currency != targetCurrency {
		return nil, nil
	}
	if _, ok := b.ignoredTypes[rec.Type]; ok {
		return nil, nil
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(rec.Amount))
	if err != nil {
		return nil, &ClassificationError{
			TransactionType: rec.Type,
			Description:     rec.Description,
			Reason:          "unparsable amount " + rec.Amount,
		}
	}
	// Sign is reintroduced per transaction type below.
	total := amount.Abs()

	switch rec.Type {
	case "BUY":
		return b.tradeEntry(rec, total, "Buy")
	case "SELL":
		return b.tradeEntry(rec, total, "Sell")
	case "BUYTOOPEN":
		return b.optionEntry(rec, total, "Buy")
	case "SELLTOCLOSE":
		return b.optionEntry(rec, total, "Sell")
	case "DIV":
		return b.dividendEntry(rec, total)
	case "CONT":
		return b.cashEntry(rec, total, "XIn", "Contribution"), nil
	case "FPLINT":
		return b.cashEntry(rec, total, "XIn", "Interest"), nil
	case "NRT":
		return b.cashEntry(rec, total, "XOut", "US Non-Resident Tax Withholding"), nil
	case "TRFOUT", "SPEND", "E_TRFOUT", "EFTOUT", "AFT_OUT":
		return b.bankEntry(rec, total.Neg()), nil
	case "CASHBACK", "EFT", "INT", "TRFIN", "TRFINTF", "REFUND":
		return b.bankEntry(rec, total), nil
	default:
		return nil, &ClassificationError{
			TransactionType: rec.Type,
			Description:     rec.Description,
			Reason:          "unknown transaction type",
		}
	}
}

// tradeEntry covers BUY and SELL: a priced equity trade with zero commission.
func (b *Builder) tradeEntry(rec statement.Record, total decimal.Decimal, action string) (*Entry, error) {
	symbol, ok := b.Symbol(rec.Description, rec.Currency)
	if !ok {
		return nil, &ClassificationError{
			TransactionType: rec.Type,
			Description:     rec.Description,
			Reason:          "no symbol in description",
		}
	}

	units, ok := ExtractUnits(rec.Description)
	if !ok || units.IsZero() {
		return nil, &ClassificationError{
			TransactionType: rec.Type,
			Description:     rec.Description,
			Reason:          "missing or zero share count",
		}
	}

	e := &Entry{}
	e.add("D", rec.Date)
	e.add("N", action)
	e.add("Y", symbol)
	e.add("I", total.Div(units).String())
	e.add("Q", units.String())
	e.add("T", total.StringFixed(2))
	e.add("O", "0.00")
	return e, nil
}

// optionEntry covers BUYTOOPEN and SELLTOCLOSE. The statement total is
// fee-inclusive, so the per-contract price is computed on the net: fee is
// backed out of a buy and added back to a sell.
func (b *Builder) optionEntry(rec statement.Record, total decimal.Decimal, action string) (*Entry, error) {
	info, ok := ExtractOptionInfo(rec.Description)
	if !ok {
		return nil, &ClassificationError{
			TransactionType: rec.Type,
			Description:     rec.Description,
			Reason:          "no option contract name in description",
		}
	}
	if !info.HasContracts || info.Contracts.IsZero() {
		return nil, &ClassificationError{
			TransactionType: rec.Type,
			Description:     rec.Description,
			Reason:          "missing or zero contract count",
		}
	}

	// An absent fee means no commission, matching the QIF "0.00" default.
	fee := decimal.Zero
	if info.HasFee {
		fee = info.Fee
	}

	netTotal := total.Sub(fee)
	if action == "Sell" {
		netTotal = total.Add(fee)
	}

	e := &Entry{}
	e.add("D", rec.Date)
	e.add("N", action)
	e.add("Y", info.Name)
	e.add("I", netTotal.Div(info.Contracts).String())
	e.add("Q", info.Contracts.String())
	e.add("T", total.StringFixed(2))
	e.add("O", fee.StringFixed(2))
	return e, nil
}

func (b *Builder) dividendEntry(rec statement.Record, total decimal.Decimal) (*Entry, error) {
	symbol, ok := b.Symbol(rec.Description, rec.Currency)
	if !ok {
		return nil, &ClassificationError{
			TransactionType: rec.Type,
			Description:     rec.Description,
			Reason:          "no symbol in description",
		}
	}

	e := &Entry{}
	e.add("D", rec.Date)
	e.add("N", "Div")
	e.add("Y", symbol)
	e.add("T", total.StringFixed(2))
	e.add("C", "c")
	return e, nil
}

// cashEntry covers contributions, lending interest and tax withholding:
// an XIn/XOut cash movement with a category payee and the raw description
// as memo.
func (b *Builder) cashEntry(rec statement.Record, total decimal.Decimal, action, category string) *Entry {
	e := &Entry{}
	e.add("D", rec.Date)
	e.add("N", action)
	e.add("T", total.StringFixed(2))
	e.add("C", "c")
	e.add("P", category)
	e.add("M", rec.Description)
	return e
}

// bankEntry covers generic debits and credits: no action line, signed total,
// raw description as payee.
func (b *Builder) bankEntry(rec statement.Record, signedTotal decimal.Decimal) *Entry {
	e := &Entry{}
	e.add("D", rec.Date)
	e.add("T", signedTotal.StringFixed(2))
	e.add("C", "c")
	e.add("P", rec.Description)
	return e
}
