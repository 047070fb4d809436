package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"f1insights/internal/insights"
)

func newPerformanceCmd(svc *insights.Service) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "performance <driver full name>",
		Short: "Chart a driver's finishing positions across a season",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")

			driver, err := svc.FindDriver(cmd.Context(), name)
			if err != nil {
				notice(cmd, "could not look up the driver", err)
				return nil
			}
			if driver == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "No driver found named %q.\n", name)
				return nil
			}

			points, err := svc.Performance(cmd.Context(), driver.DriverNumber, year)
			if err != nil {
				notice(cmd, fmt.Sprintf("could not fetch results for %s", driver.FullName), err)
				return nil
			}
			if len(points) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No race results for %s in %d.\n", driver.FullName, year)
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Race", "Position", ""})
			for _, p := range points {
				t.AppendRow(table.Row{p.Label, fmt.Sprintf("P%d", p.Position), positionBar(p.Position)})
			}
			t.SetStyle(table.StyleRounded)
			t.Render()
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", time.Now().Year(), "season to chart")
	return cmd
}

// positionBar renders a finishing position as a bar: longer means a
// better result, capped at P20.
func positionBar(position int) string {
	const gridSize = 20
	width := gridSize - position + 1
	if width < 1 {
		width = 1
	}
	return strings.Repeat("█", width)
}
