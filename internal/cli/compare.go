package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"f1insights/internal/insights"
)

func newCompareCmd(svc *insights.Service) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "compare <driver 1 full name> <driver 2 full name>",
		Short: "AI comparison of two drivers' recent performance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if svc.GatewayErr != nil {
				notice(cmd, "comparison unavailable", svc.GatewayErr)
				return nil
			}
			if args[0] == args[1] {
				fmt.Fprintln(cmd.OutOrStdout(), "Please pick two different drivers to compare.")
				return nil
			}

			driver1, err := svc.FindDriver(cmd.Context(), args[0])
			if err != nil {
				notice(cmd, "could not look up the first driver", err)
				return nil
			}
			driver2, err := svc.FindDriver(cmd.Context(), args[1])
			if err != nil {
				notice(cmd, "could not look up the second driver", err)
				return nil
			}
			if driver1 == nil || driver2 == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Could not find one or both drivers by those names.")
				return nil
			}

			analysis, err := svc.CompareDrivers(cmd.Context(), *driver1, *driver2, year)
			if err != nil {
				notice(cmd, "could not fetch results for the comparison", err)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Comparative analysis of %s and %s:\n\n%s\n",
				driver1.FullName, driver2.FullName, analysis)
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", time.Now().Year(), "season to compare")
	return cmd
}
