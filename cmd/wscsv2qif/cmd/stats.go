package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/zimuliu/WealthSimpleCSV2QIF/pkg/config"
	"github.com/zimuliu/WealthSimpleCSV2QIF/pkg/db"
	"github.com/zimuliu/WealthSimpleCSV2QIF/pkg/pathutil"
)

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Display export statistics",
	Long: `Display statistics about exported QIF files.

Shows:
- Total number of exported QIF files
- Total number of QIF entries
- Number of distinct account keys
- Last export timestamp

Example:
  wscsv2qif stats`,
	Run: runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	slog.Info("Loading configuration")

	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")

	if err := cfg.Validate("outputDir"); err != nil {
		exitOnError(err, "invalid configuration")
	}

	pathResolver := pathutil.New(pathutil.Config{
		OutputRoot:   cfg.OutputDir,
		DatabasePath: cfg.DBPath,
		AccountsFile: cfg.AccountsFile,
	})

	dbPath := pathResolver.GetDatabasePath()
	slog.Debug("Opening database", "path", dbPath)

	conn, err := db.Open(dbPath)
	exitOnError(err, "failed to open database")
	defer conn.Close()

	history := db.NewExportHistory(conn)

	stats, err := history.GetStats()
	exitOnError(err, "failed to get statistics")

	fmt.Println("\n=== Export Statistics ===")
	fmt.Printf("Total QIF files:   %d\n", stats.TotalFiles)
	fmt.Printf("Total entries:     %d\n", stats.TotalEntries)
	fmt.Printf("Distinct accounts: %d\n", stats.TotalAccounts)

	if stats.LastExport.Valid {
		fmt.Printf("Last export:       %s\n", stats.LastExport.String)
	} else {
		fmt.Printf("Last export:       (never)\n")
	}

	fmt.Println()
}
