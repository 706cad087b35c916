package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/zimuliu/WealthSimpleCSV2QIF/pkg/accounts"
	"github.com/zimuliu/WealthSimpleCSV2QIF/pkg/config"
	"github.com/zimuliu/WealthSimpleCSV2QIF/pkg/db"
	"github.com/zimuliu/WealthSimpleCSV2QIF/pkg/ledgerfile"
	"github.com/zimuliu/WealthSimpleCSV2QIF/pkg/pathutil"
	"github.com/zimuliu/WealthSimpleCSV2QIF/pkg/qif"
	"github.com/zimuliu/WealthSimpleCSV2QIF/pkg/statement"
)

var (
	inputFolder  string
	outputFolder string
	accountsFile string
	dryRun       bool
)

// convertCmd represents the convert command.
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert statement CSV files to QIF",
	Long: `Convert WealthSimple monthly statement CSV files to QIF ledger files.

This command:
1. Scans the input folder for monthly statement CSV files
2. Classifies every transaction row into a QIF entry
3. Buckets entries per account and settlement currency
4. Validates buckets against the YAML account configuration
5. Writes one QIF file per non-empty bucket and records export history

Any unknown transaction type, unknown account or currency mismatch aborts
the whole run. Files already written before the failure are not reliable.

Example:
  wscsv2qif convert --input-folder ./statements --output-folder ./qif
  wscsv2qif convert --input-folder ./statements --dry-run`,
	Run: runConvert,
}

func init() {
	// Flags
	convertCmd.Flags().StringVar(&inputFolder, "input-folder", "", "Folder containing statement CSV files (required)")
	convertCmd.Flags().StringVar(&outputFolder, "output-folder", "", "Folder to write QIF files to")
	convertCmd.Flags().StringVar(&accountsFile, "accounts", "", "YAML account configuration file")
	convertCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print QIF output instead of writing files")
}

func runConvert(cmd *cobra.Command, args []string) {
	slog.Info("Starting conversion", "input_folder", inputFolder, "dry_run", dryRun)

	// Load configuration, flags take precedence
	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")

	if inputFolder != "" {
		cfg.InputDir = inputFolder
	}
	if outputFolder != "" {
		cfg.OutputDir = outputFolder
	}
	if accountsFile != "" {
		cfg.AccountsFile = accountsFile
	}

	if err := cfg.Validate("inputDir", "outputDir", "accountsFile"); err != nil {
		exitOnError(err, "invalid configuration")
	}

	pathResolver := pathutil.New(pathutil.Config{
		OutputRoot:   cfg.OutputDir,
		DatabasePath: cfg.DBPath,
		AccountsFile: cfg.AccountsFile,
	})

	// Load account configuration
	registry, err := accounts.Load(pathResolver.GetAccountsFile())
	exitOnError(err, "failed to load account configuration")
	slog.Debug("Loaded account configuration", "accounts", registry.Len())

	// Scan for statement files
	files, err := statement.Scan(cfg.InputDir)
	exitOnError(err, "failed to scan input folder")

	if len(files) == 0 {
		fmt.Println("No statement files found")
		return
	}
	slog.Info("Found statement files", "count", len(files))

	// Aggregate all rows into per-account-per-currency buckets
	ledger := qif.NewLedger(qif.NewBuilder())
	for _, file := range files {
		records, err := statement.ReadRecords(file.Path)
		exitOnError(err, "failed to read statement file")

		// Both currency buckets exist even if the file has no matching rows
		ledger.EnsureAccount(file.AccountID)

		for _, record := range records {
			err := ledger.Add(file.AccountID, record)
			exitOnError(err, "failed to classify transaction")
		}

		slog.Info("Processed statement", "file", file.Path, "account", file.AccountID, "rows", len(records))
	}

	// Validate and render
	exporter := qif.NewExporter(registry)
	docs, err := exporter.Export(ledger)
	exitOnError(err, "failed to export ledger")

	if len(docs) == 0 {
		fmt.Println("No matching transactions to export")
		return
	}

	if dryRun {
		for _, doc := range docs {
			fmt.Printf("[DRY RUN] Would write %s (%d entries)\n", doc.Filename, doc.EntryCount)
			fmt.Println(doc.Text)
		}
		return
	}

	// Open export history database
	dbPath := pathResolver.GetDatabasePath()
	slog.Debug("Opening database", "path", dbPath)
	conn, err := db.Open(dbPath)
	exitOnError(err, "failed to open database")
	defer conn.Close()

	history := db.NewExportHistory(conn)
	repo := ledgerfile.NewFileSystemRepository(pathResolver)

	for _, doc := range docs {
		filePath, err := repo.WriteDocument(doc)
		exitOnError(err, "failed to write QIF file")

		if err := history.RecordExport(db.ExportRecord{
			AccountKey: doc.AccountKey,
			Nickname:   doc.Nickname,
			QIFFile:    filePath,
			EntryCount: doc.EntryCount,
		}); err != nil {
			slog.Error("Failed to record export", "account_key", doc.AccountKey, "error", err)
		}

		slog.Info("Wrote QIF file", "path", filePath, "account_key", doc.AccountKey, "entries", doc.EntryCount)
	}

	fmt.Printf("Exported %d QIF file(s) to %s\n", len(docs), cfg.OutputDir)
}
