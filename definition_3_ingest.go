package stripscheduler

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	goerrors "github.com/TudorHulban/go-errors"
)

// TaskRecord is one (width, duration) pair as it comes from a task source.
type TaskRecord struct {
	Width    int
	Duration int
}

func (r TaskRecord) String() string {
	return fmt.Sprintf("%d %d", r.Width, r.Duration)
}

func validateStripWidth(caller string, stripWidth int) error {
	if stripWidth < 1 {
		return goerrors.ErrInvalidInput{
			Caller:     caller,
			InputName:  "stripWidth",
			InputValue: stripWidth,
			Issue: errors.New(
				"strip width must be at least one unit",
			),
		}
	}

	return nil
}

// Ingest numbers records from 1 in input order, rejects records that are not
// two positive integers or that are wider than the strip, and returns the
// tasks sorted by non-increasing duration.
func Ingest(records []TaskRecord, stripWidth int) ([]Task, error) {
	if errValidate := validateStripWidth("Ingest", stripWidth); errValidate != nil {
		return nil,
			errValidate
	}

	tasks := make([]Task, 0, len(records))

	for ix, record := range records {
		task, errCr := NewTask(
			&ParamsNewTask{
				ID:       ix + 1,
				Width:    record.Width,
				Duration: record.Duration,
			},
		)
		if errCr != nil {
			return nil,
				&ErrMalformedInput{
					Content: record.String(),
					Issue:   errCr,
				}
		}

		if task.Width > stripWidth {
			return nil,
				&ErrOversizedTask{
					TaskID:     task.ID,
					Width:      task.Width,
					StripWidth: stripWidth,
				}
		}

		tasks = append(tasks, task)
	}

	SortByDurationDesc(tasks)

	return tasks,
		nil
}

// SortByDurationDesc sorts in place, tallest first. Equal durations keep
// their relative order.
func SortByDurationDesc(tasks []Task) {
	slices.SortStableFunc(
		tasks,
		func(a, b Task) int {
			return cmp.Compare(b.Duration, a.Duration)
		},
	)
}

// IsSortedByDurationDesc reports whether tasks are ready for packing.
func IsSortedByDurationDesc(tasks []Task) bool {
	for ix := 1; ix < len(tasks); ix++ {
		if tasks[ix].Duration > tasks[ix-1].Duration {
			return false
		}
	}

	return true
}
