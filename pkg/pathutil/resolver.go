// Package pathutil provides centralized path management for QIF output files
// and the export history database.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PathResolver manages paths for QIF ledger files, the accounts file, and the
// export history database.
type PathResolver struct {
	outputRoot   string
	databasePath string
	accountsFile string
}

// Config represents the configuration for PathResolver.
type Config struct {
	// OutputRoot is the directory all QIF files are written to
	OutputRoot string
	// DatabasePath is the path to the SQLite export history database
	DatabasePath string
	// AccountsFile is the path to the YAML account configuration
	AccountsFile string
}

// New creates a new PathResolver with the given configuration.
// If DatabasePath is empty, it defaults to {OutputRoot}/.history/exports.db
// If AccountsFile is empty, it defaults to accounts.yaml in the working directory.
func New(config Config) *PathResolver {
	dbPath := config.DatabasePath
	if dbPath == "" {
		dbPath = filepath.Join(config.OutputRoot, ".history", "exports.db")
	}

	accountsFile := config.AccountsFile
	if accountsFile == "" {
		accountsFile = "accounts.yaml"
	}

	return &PathResolver{
		outputRoot:   config.OutputRoot,
		databasePath: dbPath,
		accountsFile: accountsFile,
	}
}

// GetOutputRoot returns the QIF output directory.
func (p *PathResolver) GetOutputRoot() string {
	return p.outputRoot
}

// GetDatabasePath returns the database file path.
func (p *PathResolver) GetDatabasePath() string {
	return p.databasePath
}

// GetAccountsFile returns the account configuration file path.
func (p *PathResolver) GetAccountsFile() string {
	return p.accountsFile
}

// GetLedgerFilePath returns the output path for a QIF filename, sanitizing
// path separators out of nickname-derived names.
func (p *PathResolver) GetLedgerFilePath(filename string) string {
	safe := strings.NewReplacer("/", "_", "\\", "_").Replace(filename)
	return filepath.Join(p.outputRoot, safe)
}

// EnsureDir creates a directory if it doesn't exist.
// It creates all parent directories as needed (like mkdir -p).
func (p *PathResolver) EnsureDir(dirPath string) error {
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dirPath, err)
	}
	return nil
}

// EnsureParentDir ensures the parent directory of a file exists.
func (p *PathResolver) EnsureParentDir(filePath string) error {
	return p.EnsureDir(filepath.Dir(filePath))
}

// FileExists checks if a file exists.
func (p *PathResolver) FileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return err == nil
}
