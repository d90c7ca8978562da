package stripscheduler

import (
	"fmt"
	"time"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/google/uuid"
)

// Report summarizes a schedule. Timing is supplied by the caller.
type Report struct {
	RunID string

	TotalWork  float64
	Efficiency float64
	Elapsed    time.Duration

	Algorithm  Mode
	StripWidth int
	Tasks      int
	Levels     int
	Makespan   int
	IdleArea   int
}

type ParamsNewReport struct {
	Schedule *Schedule
	RunID    string // generated when empty

	Elapsed time.Duration
}

func (params *ParamsNewReport) IsValid() error {
	if params.Schedule == nil {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewReport",
			Issue: goerrors.ErrNilInput{
				InputName: "Schedule",
			},
		}
	}

	if params.Elapsed < 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewReport",
			Issue: goerrors.ErrNegativeInput{
				InputName: "Elapsed",
			},
		}
	}

	return nil
}

func NewReport(params *ParamsNewReport) (*Report, error) {
	if errValidation := params.IsValid(); errValidation != nil {
		return nil,
			errValidation
	}

	s := params.Schedule

	return &Report{
			RunID: ternary(
				len(params.RunID) == 0,

				uuid.NewString(),
				params.RunID,
			),

			TotalWork:  s.TotalWork(),
			Efficiency: s.Efficiency(),
			Elapsed:    params.Elapsed,

			Algorithm:  s.Algorithm,
			StripWidth: s.StripWidth,
			Tasks:      len(s.Tasks),
			Levels:     len(s.Levels),
			Makespan:   s.Makespan(),
			IdleArea:   s.IdleArea(),
		},
		nil
}

func (r *Report) String() string {
	return fmt.Sprintf(
		"Result\nUsing algorithm: %s\nN: %d\nTasks count: %d\nT(S): %d\nE: %g\nTime: %d ms\n",

		r.Algorithm,
		r.StripWidth,
		r.Tasks,
		r.Makespan,
		r.Efficiency,
		r.Elapsed.Milliseconds(),
	)
}
