package cmd

import (
	"fmt"

	"catalog-impex/feature/catalog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCmd creates or updates the catalog tables.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the catalog tables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, l, err := bootstrap()
		if err != nil {
			return err
		}
		defer l.Sync()

		db, err := connect(cfg, l)
		if err != nil {
			return err
		}

		if err := catalog.Migrate(db); err != nil {
			return fmt.Errorf("failed to migrate catalog: %w", err)
		}
		l.Info("Catalog tables migrated", zap.Int("models", len(catalog.Models())))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
