// Package qif converts WealthSimple statement rows into QIF ledger entries
// grouped by account and settlement currency.
package qif

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// Share counts must carry a decimal point and the lower-case plural
	// unit word. "10 shares" and "1.0 share" are deliberately rejected.
	unitsPattern = regexp.MustCompile(`(\d+\.\d+) shares`)

	contractsPattern = regexp.MustCompile(`(\d+) contract`)
	feePattern       = regexp.MustCompile(`Fee: \$(\d+(?:\.\d+)?)`)
)

// splitSymbol returns the upper-cased ticker before the first hyphen of an
// equity description, e.g. "AAPL - 10.0 shares" -> "AAPL". Returns false when
// the description has no hyphen.
func splitSymbol(description string) (string, bool) {
	idx := strings.Index(description, "-")
	if idx < 0 {
		return "", false
	}
	return strings.ToUpper(strings.TrimSpace(description[:idx])), true
}

// ExtractUnits returns the share count of an equity description.
// Returns false when no fractional share token is present.
func ExtractUnits(description string) (decimal.Decimal, bool) {
	m := unitsPattern.FindStringSubmatch(description)
	if m == nil {
		return decimal.Decimal{}, false
	}
	units, err := decimal.NewFromString(m[1])
	if err != nil {
		return decimal.Decimal{}, false
	}
	return units, true
}

// OptionInfo is the structured content of an option transaction description.
// Contracts and Fee may each be absent independently.
type OptionInfo struct {
	Name         string
	Contracts    decimal.Decimal
	HasContracts bool
	Fee          decimal.Decimal
	HasFee       bool
}

// ExtractOptionInfo parses an option description of the form
//
//	SPY 450.00 USD CALL 2025-07-25: Bought 2 contract (executed at 2025-07-23), Fee: $1.50
//
// The colon is mandatory; without it the whole parse fails. Contract count
// and fee are searched for independently after the colon, and either may be
// missing without failing the other.
func ExtractOptionInfo(description string) (OptionInfo, bool) {
	idx := strings.Index(description, ":")
	if idx < 0 {
		return OptionInfo{}, false
	}

	info := OptionInfo{Name: strings.TrimSpace(description[:idx])}
	rest := description[idx+1:]

	if m := contractsPattern.FindStringSubmatch(rest); m != nil {
		if contracts, err := decimal.NewFromString(m[1]); err == nil {
			info.Contracts = contracts
			info.HasContracts = true
		}
	}

	if m := feePattern.FindStringSubmatch(rest); m != nil {
		if fee, err := decimal.NewFromString(m[1]); err == nil {
			info.Fee = fee
			info.HasFee = true
		}
	}

	return info, true
}
