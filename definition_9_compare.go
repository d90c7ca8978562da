package stripscheduler

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type Comparison struct {
	NFDH *Schedule
	FFDH *Schedule
}

// MakespanGain is how much shorter the FFDH schedule is. Never negative.
func (c *Comparison) MakespanGain() int {
	return c.NFDH.Makespan() - c.FFDH.Makespan()
}

// Compare packs the same sorted tasks with both packers side by side.
// Each run owns its levels; tasks are only read.
func Compare(ctx context.Context, tasks []Task, stripWidth int) (*Comparison, error) {
	if errCtx := ctx.Err(); errCtx != nil {
		return nil,
			errCtx
	}

	var (
		result Comparison
		g      errgroup.Group
	)

	g.Go(
		func() error {
			schedule, errPack := PackNFDH(tasks, stripWidth)
			if errPack != nil {
				return errPack
			}

			result.NFDH = schedule

			return nil
		},
	)

	g.Go(
		func() error {
			schedule, errPack := PackFFDH(tasks, stripWidth)
			if errPack != nil {
				return errPack
			}

			result.FFDH = schedule

			return nil
		},
	)

	if errWait := g.Wait(); errWait != nil {
		return nil,
			errWait
	}

	return &result,
		nil
}
