package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/TudorHulban/stripscheduler"
)

// packCommand creates the nfdh or ffdh command.
func (c *CLI) packCommand(mode stripscheduler.Mode) *cobra.Command {
	return &cobra.Command{
		Use:   strings.ToLower(mode.String()) + " <task_file> [strip_width]",
		Short: fmt.Sprintf("Pack a task file with %s and write the schedule", mode),
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

			return c.runPack(cmd, mode, args[0], n, cfg)
		},
	}
}

func (c *CLI) runPack(cmd *cobra.Command, mode stripscheduler.Mode, taskFile string, n int, cfg *stripscheduler.Config) error {
	packer, errPacker := stripscheduler.PackerFor(mode)
	if errPacker != nil {
		return errPacker
	}

	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	tasks, errLoad := stripscheduler.LoadTasks(taskFile, n)
	if errLoad != nil {
		return errLoad
	}

	logger.Debug("tasks loaded", "path", taskFile, "count", len(tasks), "n", n)

	schedule, errPack := packer.Pack(tasks, n)
	if errPack != nil {
		return errPack
	}

	elapsed := prog.elapsed()

	logger.Debug("tasks packed", "algorithm", packer.Name(), "levels", len(schedule.Levels))

	report, errReport := stripscheduler.NewReport(
		&stripscheduler.ParamsNewReport{
			Schedule: schedule,
			Elapsed:  elapsed,
		},
	)
	if errReport != nil {
		return errReport
	}

	path := schedulePath(cfg)

	if errSave := stripscheduler.SaveSchedule(path, schedule); errSave != nil {
		return errSave
	}

	out := cmd.OutOrStdout()

	fmt.Fprintln(out, renderReport(report))
	printSuccess(out, "Tasks schedule written")
	printFile(out, path)

	prog.done("schedule written", "algorithm", packer.Name(), "makespan", report.Makespan, "run", report.RunID)

	return nil
}
