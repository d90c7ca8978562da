package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TudorHulban/stripscheduler"
)

func (c *CLI) compareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <task_file> [strip_width]",
		Short: "Pack a task file with NFDH and FFDH and compare the results",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, errSettings := c.settings(cmd)
			if errSettings != nil {
				return errSettings
			}

			n, errWidth := stripWidth(args, 1, cfg)
			if errWidth != nil {
				return errWidth
			}

			return c.runCompare(cmd, args[0], n)
		},
	}
}

func (c *CLI) runCompare(cmd *cobra.Command, taskFile string, n int) error {
	prog := newProgress(loggerFromContext(cmd.Context()))

	tasks, errLoad := stripscheduler.LoadTasks(taskFile, n)
	if errLoad != nil {
		return errLoad
	}

	comparison, errCompare := stripscheduler.Compare(cmd.Context(), tasks, n)
	if errCompare != nil {
		return errCompare
	}

	elapsed := prog.elapsed()

	reports := make([]*stripscheduler.Report, 0, 2)

	for _, schedule := range []*stripscheduler.Schedule{comparison.NFDH, comparison.FFDH} {
		report, errReport := stripscheduler.NewReport(
			&stripscheduler.ParamsNewReport{
				Schedule: schedule,
				Elapsed:  elapsed,
			},
		)
		if errReport != nil {
			return errReport
		}

		reports = append(reports, report)
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderComparison(reports[0], reports[1]))

	prog.done("comparison done", "gain", comparison.MakespanGain())

	return nil
}
