// Package accounts loads the per-account export configuration.
package accounts

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Type is the kind of account, driving the QIF file header.
type Type string

const (
	TypeInvestment Type = "Investment"
	TypeChecking   Type = "Checking"
)

// Account describes one account-currency pair: the nickname used for the
// output filename and the account type.
type Account struct {
	Nickname string `yaml:"nickname"`
	Type     Type   `yaml:"type"`
}

// Registry holds the account configuration, keyed by "{accountID}-{currency}".
// Loaded once per run and read-only afterwards.
type Registry struct {
	accounts map[string]Account
}

// New creates a Registry from an already built account map.
func New(accounts map[string]Account) *Registry {
	return &Registry{accounts: accounts}
}

// Load reads the account configuration from a YAML file.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read accounts file: %w", err)
	}

	accounts := make(map[string]Account)
	if err := yaml.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("failed to parse accounts YAML: %w", err)
	}

	return &Registry{accounts: accounts}, nil
}

// Lookup returns the account configured for an account key.
func (r *Registry) Lookup(key string) (Account, bool) {
	account, ok := r.accounts[key]
	return account, ok
}

// Len returns the number of configured account keys.
func (r *Registry) Len() int {
	return len(r.accounts)
}
