package stripscheduler

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestErrorsReport(t *testing.T) {
	t.Run(
		"1. no schedule",
		func(t *testing.T) {
			report, errCr := NewReport(
				&ParamsNewReport{},
			)
			require.Error(t, errCr)
			require.Nil(t, report)
		},
	)

	t.Run(
		"2. negative elapsed",
		func(t *testing.T) {
			report, errCr := NewReport(
				&ParamsNewReport{
					Schedule: &Schedule{},
					Elapsed:  -time.Second,
				},
			)
			require.Error(t, errCr)
			require.Nil(t, report)
		},
	)
}

func TestNewReport(t *testing.T) {
	schedule, errPack := PackFFDH(perfectTasks(t), 3)
	require.NoError(t, errPack)

	t.Run(
		"1. given run ID",
		func(t *testing.T) {
			report, errCr := NewReport(
				&ParamsNewReport{
					Schedule: schedule,
					RunID:    "run-1",
					Elapsed:  42 * time.Millisecond,
				},
			)
			require.NoError(t, errCr)
			require.Equal(t,
				&Report{
					RunID:      "run-1",
					TotalWork:  10,
					Efficiency: 0,
					Elapsed:    42 * time.Millisecond,
					Algorithm:  ModeFFDH,
					StripWidth: 3,
					Tasks:      5,
					Levels:     3,
					Makespan:   10,
					IdleArea:   0,
				},
				report,
			)
			require.Equal(t,
				"Result\nUsing algorithm: FFDH\nN: 3\nTasks count: 5\nT(S): 10\nE: 0\nTime: 42 ms\n",
				report.String(),
			)
		},
	)

	t.Run(
		"2. generated run ID",
		func(t *testing.T) {
			report, errCr := NewReport(
				&ParamsNewReport{
					Schedule: schedule,
				},
			)
			require.NoError(t, errCr)

			_, errParse := uuid.Parse(report.RunID)
			require.NoError(t, errParse)
		},
	)
}
