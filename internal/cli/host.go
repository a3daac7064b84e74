package cli

import (
	"github.com/spf13/cobra"
)

func hostCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "host",
		Short: "Manage hosts",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "add",
		Short:   "Add a host to a registered region",
		Example: "region-wizard host add",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.addHost(cmd.Context())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Show the hosts of a region",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.showHosts(cmd.Context())
		},
	})

	return cmd
}
