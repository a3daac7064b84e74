package cli

import (
	"github.com/spf13/cobra"
)

func regionCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "region",
		Short: "Manage regions",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "add",
		Short:   "Register a region interactively",
		Example: "region-wizard region add",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.addRegion(cmd.Context())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List registered regions without contacting them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			regions, err := a.inventory.Regions()
			if err != nil {
				return err
			}
			a.printer.RegionList(regions)
			return nil
		},
	})

	return cmd
}

func statusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Authenticate against every region and show its type and host count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.showRegions(cmd.Context())
		},
	}
}
