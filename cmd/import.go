package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"catalog-impex/core/impex"
	"catalog-impex/core/storage"
	"catalog-impex/feature/importer"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags shared by the import commands
	dryRunImport   bool
	failFastImport bool
	jsonImport     bool
	yesImport      bool
)

// importCmd is the parent command for all import operations.
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import catalog documents",
	Long: heredoc.Doc(`
		Reconcile XML import documents with the catalog database.
		Each record is committed in its own transaction; failed records are
		reported and do not stop the document unless --fail-fast is set.`),
}

// importFileCmd imports local documents.
var importFileCmd = &cobra.Command{
	Use:   "file <path>...",
	Short: "Import one or more local documents",
	Example: heredoc.Doc(`
		# Import a document
		catalog-impex import file categories.xml

		# Check what a document would change without committing
		catalog-impex import file categories.xml --dry-run

		# Print the summaries as JSON
		catalog-impex import file a.xml b.xml --json`),
	Args: cobra.MinimumNArgs(1),
	RunE: runImportFiles,
}

// importBucketCmd imports the documents waiting in the bucket inbox.
var importBucketCmd = &cobra.Command{
	Use:   "bucket",
	Short: "Import the documents waiting in the bucket inbox",
	Long: heredoc.Doc(`
		Import every inbox document matching the descriptor, in key order.
		Imported documents are moved to the processed prefix, documents with
		failed records to the failed prefix. A dry run moves nothing.`),
	Example: heredoc.Doc(`
		# Preview the inbox
		catalog-impex import bucket --dry-run

		# Import with auto-confirm (non-interactive)
		catalog-impex import bucket --yes`),
	Args: cobra.NoArgs,
	RunE: runImportBucket,
}

func init() {
	importCmd.AddCommand(importFileCmd, importBucketCmd)

	importCmd.PersistentFlags().BoolVar(&dryRunImport, "dry-run", false, "Reconcile each document in one transaction and roll it back")
	importCmd.PersistentFlags().BoolVar(&failFastImport, "fail-fast", false, "Stop a document at its first failed record")
	importCmd.PersistentFlags().BoolVar(&jsonImport, "json", false, "Print the results as JSON")
	importBucketCmd.Flags().BoolVar(&yesImport, "yes", false, "Auto-confirm the import (non-interactive)")

	RootCmd.AddCommand(importCmd)
}

func importOptions(failFast bool) impex.Options {
	return impex.Options{
		DryRun:   dryRunImport,
		FailFast: failFastImport || failFast,
	}
}

func runImportFiles(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, l, err := bootstrap()
	if err != nil {
		return err
	}
	defer l.Sync()

	db, err := connect(cfg, l)
	if err != nil {
		return err
	}

	svc, err := newImportService(cfg, db, nil, l)
	if err != nil {
		return err
	}

	opts := importOptions(cfg.Import.FailFast)
	summaries := make(map[string]*impex.Summary, len(args))
	failed := 0
	for _, path := range args {
		summary, err := importFile(ctx, svc, path, opts)
		if err != nil {
			return err
		}
		summaries[path] = summary
		failed += summary.Failed

		if !jsonImport {
			printSummary(l, path, summary)
		}
	}

	if jsonImport {
		if err := writeJSON(cmd.OutOrStdout(), summaries); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d record(s) failed", failed)
	}
	return nil
}

func importFile(ctx context.Context, svc *importer.Service, path string, opts impex.Options) (*impex.Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	summary, err := svc.Import(ctx, f, opts)
	if err != nil {
		return summary, fmt.Errorf("failed to import %s: %w", path, err)
	}
	return summary, nil
}

func runImportBucket(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, l, err := bootstrap()
	if err != nil {
		return err
	}
	defer l.Sync()

	db, err := connect(cfg, l)
	if err != nil {
		return err
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	svc, err := newImportService(cfg, db, client, l)
	if err != nil {
		return err
	}

	if !dryRunImport && !confirmImport(cfg.Storage.Bucket, cfg.Import.InboxPrefix) {
		l.Warn("Import cancelled by user. No changes were made.")
		return nil
	}

	reports, err := svc.ImportBucket(ctx, importOptions(cfg.Import.FailFast))
	if err != nil {
		return fmt.Errorf("bucket import failed: %w", err)
	}

	if jsonImport {
		return writeJSON(cmd.OutOrStdout(), reports)
	}

	failed := 0
	for _, report := range reports {
		if report.Failed() {
			failed++
		}
		if report.Summary != nil {
			printSummary(l, report.Key, report.Summary)
		}
		if report.Error != "" {
			l.Error("Document failed", zap.String("key", report.Key), zap.String("error", report.Error))
		}
	}

	l.Info("Bucket import finished",
		zap.Int("documents", len(reports)),
		zap.Int("failed_documents", failed),
		zap.Bool("dry_run", dryRunImport),
	)
	return nil
}

// printSummary logs the counts of one document and a sample of its failures.
func printSummary(l *zap.Logger, source string, s *impex.Summary) {
	l.Info("Import summary",
		zap.String("source", source),
		zap.String("run_id", s.RunID),
		zap.Bool("dry_run", s.DryRun),
		zap.Int("total", s.Total),
		zap.Int("inserted", s.Inserted),
		zap.Int("updated", s.Updated),
		zap.Int("deleted", s.Deleted),
		zap.Int("skipped", s.Skipped),
		zap.Int("unmapped", s.Unmapped),
		zap.Int("failed", s.Failed),
		zap.Duration("duration", s.Duration),
	)

	maxShow := min(len(s.Failures), 5)
	for _, f := range s.Failures[:maxShow] {
		l.Warn("Failed record",
			zap.Int("index", f.Index),
			zap.String("element", f.Element),
			zap.String("key", f.Key),
			zap.String("kind", f.Kind),
			zap.String("error", f.Error),
		)
	}
	if len(s.Failures) > maxShow {
		l.Warn("Additional failures not shown", zap.Int("count", len(s.Failures)-maxShow))
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// confirmImport prompts the user for confirmation or uses the --yes flag.
func confirmImport(bucket, prefix string) bool {
	if yesImport {
		fmt.Println("Auto-confirmed via --yes flag")
		return true
	}

	fmt.Printf("Import and move every document under %s/%s? Type 'yes' to confirm: ", bucket, prefix)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
