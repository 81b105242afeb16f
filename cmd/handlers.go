package cmd

import (
	"fmt"

	"catalog-impex/core/impex"
	"catalog-impex/feature/catalog"

	"github.com/spf13/cobra"
)

// handlersCmd lists the registered record handlers and the active descriptor.
var handlersCmd = &cobra.Command{
	Use:   "handlers",
	Short: "List the registered record handlers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, l, err := bootstrap()
		if err != nil {
			return err
		}
		defer l.Sync()

		// Handlers only need the database when a record is handled
		registry, err := catalog.NewRegistry(nil, cfg.Import, l)
		if err != nil {
			return err
		}

		descriptor, err := impex.LoadDescriptor(cfg.Import)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Descriptor: %s (files matching %q)\n", descriptor.Name, descriptor.FilePattern)
		fmt.Fprintln(out, "Handlers:")
		for _, id := range registry.Identities() {
			status := "mapped"
			if !descriptor.Accepts(id.Element) {
				status = "not in descriptor"
			}
			fmt.Fprintf(out, "  %-60s %s\n", id.String(), status)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(handlersCmd)
}
