package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/TudorHulban/stripscheduler"
)

func (c *CLI) generateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "generate <task_count> <max_width> <max_duration>",
		Short: "Write a random task file named tasks<task_count>.txt",
		Long: `Writes task_count lines "<width> <duration>" with width drawn from
[1, max_width) and duration drawn from [1, max_duration).`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, errSettings := c.settings(cmd)
			if errSettings != nil {
				return errSettings
			}

			values := make([]int, len(args))

			for ix, arg := range args {
				value, errConv := strconv.Atoi(arg)
				if errConv != nil {
					return &stripscheduler.ErrMalformedInput{
						Content: arg,
						Issue:   errConv,
					}
				}

				values[ix] = value
			}

			prog := newProgress(loggerFromContext(cmd.Context()))

			path, errGenerate := stripscheduler.GenerateFile(
				cfg.OutputDir,
				&stripscheduler.ParamsGenerate{
					Count:       values[0],
					MaxWidth:    values[1],
					MaxDuration: values[2],
				},
				stripscheduler.NewRand(cfg.Seed),
			)
			if errGenerate != nil {
				return errGenerate
			}

			out := cmd.OutOrStdout()

			printSuccess(out, "Generated %d tasks", values[0])
			printFile(out, path)

			prog.done("tasks generated", "path", path)

			return nil
		},
	}
}
