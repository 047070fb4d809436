package cli

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"f1insights/internal/insights"
)

func newCalendarCmd(svc *insights.Service) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show the race calendar for a season",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := svc.Calendar(cmd.Context(), year)
			if err != nil {
				notice(cmd, fmt.Sprintf("could not fetch the %d calendar", year), err)
				return nil
			}
			if len(entries) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No races found for %d.\n", year)
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Status", "Race", "Circuit", "Date", "Time"})
			for _, e := range entries {
				status := "upcoming"
				if e.IsPast {
					status = "past"
				}
				t.AppendRow(table.Row{
					status,
					e.SessionName,
					e.Circuit(),
					e.DateStart.Format("02/01/2006"),
					e.DateStart.Format("15:04"),
				})
			}
			t.SetStyle(table.StyleRounded)
			t.Render()
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", time.Now().Year(), "season to show")
	return cmd
}
