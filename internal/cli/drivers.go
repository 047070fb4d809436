package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"f1insights/internal/insights"
)

func newDriversCmd(svc *insights.Service) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "drivers",
		Short: "List drivers, optionally filtered by exact full name",
		RunE: func(cmd *cobra.Command, args []string) error {
			drivers, err := svc.OpenF1.Drivers(cmd.Context(), name)
			if err != nil {
				notice(cmd, "could not fetch drivers", err)
				return nil
			}
			if len(drivers) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No drivers found.")
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"#", "Name", "Country"})
			for _, d := range drivers {
				t.AppendRow(table.Row{d.DriverNumber, d.FullName, d.CountryCode})
			}
			t.SetStyle(table.StyleRounded)
			t.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "exact full name to search for")
	return cmd
}
