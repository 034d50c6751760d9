package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/drive-tools/fare-atlas/pkg/runtime/terminal/export"
	"github.com/drive-tools/fare-atlas/pkg/services/ledger"
)

func NewReportCmd(svc ledger.Service, reporter *export.Reporter) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the earnings report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			summaries, err := svc.DaySummaries(ctx)
			if err != nil {
				return err
			}
			stats, err := svc.Stats(ctx, time.Now().UTC())
			if err != nil {
				return err
			}
			breakdown, err := svc.CostBreakdown(ctx)
			if err != nil {
				return err
			}

			if days > 0 && len(summaries) > days {
				summaries = summaries[:days]
			}

			return reporter.Handle(&export.Report{
				Stats:     stats,
				Days:      summaries,
				Breakdown: breakdown,
			})
		},
	}

	cmd.Flags().IntVar(&days, "days", 14, "Number of most recent days to show (0 for all)")
	return cmd
}
