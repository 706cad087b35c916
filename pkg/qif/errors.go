package qif

import "fmt"

// ClassificationError reports a transaction that cannot be turned into a QIF
// entry: an unknown transaction type, an unparsable amount, or a description
// missing a value required for a computed field. It aborts the run.
type ClassificationError struct {
	TransactionType string
	Description     string
	Reason          string
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("cannot classify %s transaction: %s (description: %q)",
		e.TransactionType, e.Reason, e.Description)
}

// UnknownAccountError reports a non-empty bucket whose account key has no
// entry in the account configuration.
type UnknownAccountError struct {
	AccountKey string
}

func (e *UnknownAccountError) Error() string {
	return fmt.Sprintf("no account configuration found for %q", e.AccountKey)
}

// CurrencyMismatchError reports a Checking account whose bucket currency
// disagrees with the currency implied by the account ID suffix.
type CurrencyMismatchError struct {
	AccountKey string
	Actual     string
	Expected   string
}

func (e *CurrencyMismatchError) Error() string {
	return fmt.Sprintf("checking account %q has currency %s but its account ID implies %s",
		e.AccountKey, e.Actual, e.Expected)
}
