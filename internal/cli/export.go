package cli

import (
	"github.com/spf13/cobra"

	"github.com/pf9/region-wizard/internal/export"
)

func exportCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "export",
		Short:   "Write regions and hosts to a spreadsheet",
		Example: "region-wizard export --output inventory.xlsx",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			regions, err := a.inventory.Regions()
			if err != nil {
				return err
			}
			hosts, err := a.inventory.Hosts("")
			if err != nil {
				return err
			}
			if err := export.Write(output, regions, hosts); err != nil {
				return err
			}
			a.printer.Notice("exported %d regions and %d hosts to %s", len(regions), len(hosts), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "region-wizard.xlsx", "Workbook to write")

	return cmd
}
