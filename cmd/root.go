package cmd

import (
	"fmt"
	"os"

	"catalog-impex/core/logger"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "catalog-impex",
	Short: "Catalog bulk import service",
	Long: heredoc.Doc(`
		Catalog Impex reconciles XML import documents with the catalog database.
		Every record carries an import mode (DELETE, INSERT_ONLY, UPDATE_ONLY, MERGE)
		and is reconciled in its own transaction by the handler registered for its element.

		Documents can be posted to the HTTP API, imported from local files,
		or picked up from the inbox prefix of an S3 compatible bucket.`),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with debug level gives ISO8601 timestamps for CLI errors
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
