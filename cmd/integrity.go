package cmd

import (
	"context"
	"fmt"

	"catalog-impex/core/storage"
	"catalog-impex/feature/integrity"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var fixFlag bool

// integrityCmd runs every integrity check.
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the bucket structure and the catalog schema",
	Long: heredoc.Doc(`
		Checks that the import prefixes exist in the storage bucket and that the
		catalog tables match the catalog models.`),
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, true)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix the import prefixes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false)
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the catalog database schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, schemaCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create missing prefixes")
}

func runIntegrityChecks(ctx context.Context, runStructure, runSchema bool) error {
	cfg, l, err := bootstrap()
	if err != nil {
		return err
	}
	defer l.Sync()

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}

	// Database is optional for the structure check
	var db *gorm.DB
	if runSchema {
		if db, err = connect(cfg, l); err != nil {
			return err
		}
	}

	svc := integrity.NewService(store, cfg.Storage.Bucket, cfg.Import, db, l)

	if runStructure {
		l.Info("Checking import prefixes...")
		report, err := svc.Structure(ctx, fixFlag)
		if err != nil {
			return fmt.Errorf("structure check failed: %w", err)
		}

		switch report.Status {
		case "ok":
			l.Info("Structure is intact.")
		case "fixed":
			l.Info("Structure fixed successfully.", zap.Strings("created", report.Missing))
		default:
			l.Warn("Missing prefixes detected", zap.Strings("missing", report.Missing))
			l.Info("Run 'integrity structure --fix' to create missing prefixes.")
		}
	}

	if runSchema {
		l.Info("Checking catalog schema...")
		report, err := svc.CheckSchema()
		if err != nil {
			return fmt.Errorf("schema check failed: %w", err)
		}

		for table, tr := range report.Tables {
			if tr.Status == "ok" {
				l.Info("Table matches", zap.String("table", table))
				continue
			}
			l.Warn("Table mismatch",
				zap.String("table", table),
				zap.String("status", tr.Status),
				zap.Strings("missing_columns", tr.MissingColumns),
				zap.Strings("type_mismatches", tr.TypeMismatches),
			)
		}
		for _, e := range report.Errors {
			l.Error("Schema inspection error", zap.String("error", e))
		}
		if !report.Matched {
			l.Info("Run 'migrate' to create or update the catalog tables.")
		}
	}

	return nil
}
