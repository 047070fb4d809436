package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"f1insights/internal/insights"
)

// New builds the root command with every dashboard feature attached.
// Commands render data-layer failures as inline notices and exit
// cleanly: no single operation failure takes the session down.
func New(svc *insights.Service) *cobra.Command {
	root := &cobra.Command{
		Use:           "f1insights",
		Short:         "Formula 1 statistics and news insights",
		Long:          "Explore Formula 1 drivers, results and the race calendar, and run AI analysis over the latest F1 news.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newDriversCmd(svc),
		newCompareCmd(svc),
		newPerformanceCmd(svc),
		newCalendarCmd(svc),
		newNewsCmd(svc),
	)
	return root
}

// notice prints a non-fatal failure the way the dashboard surfaces
// one: inline, without aborting the session.
func notice(cmd *cobra.Command, msg string, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", msg, err)
}
