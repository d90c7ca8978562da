package stripscheduler

import (
	"fmt"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
)

// Task is a rectangle to pack: Width units side by side for Duration time.
// Tasks are values, a placed task is described by a Placement.
type Task struct {
	ID       int
	Width    int
	Duration int
}

type ParamsNewTask struct {
	ID       int `valid:"required"`
	Width    int `valid:"required"`
	Duration int `valid:"required"`
}

func (params *ParamsNewTask) IsValid() error {
	if _, errValidation := govalidator.ValidateStruct(params); errValidation != nil {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewTask",
			Issue:  errValidation,
		}
	}

	if params.Width < 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewTask",
			Issue: goerrors.ErrNegativeInput{
				InputName: "Width",
			},
		}
	}

	if params.Duration < 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewTask",
			Issue: goerrors.ErrNegativeInput{
				InputName: "Duration",
			},
		}
	}

	return nil
}

func NewTask(params *ParamsNewTask) (Task, error) {
	if errValidation := params.IsValid(); errValidation != nil {
		return Task{},
			errValidation
	}

	return Task{
			ID:       params.ID,
			Width:    params.Width,
			Duration: params.Duration,
		},
		nil
}

// Work is the area of the task rectangle.
func (t Task) Work() int {
	return t.Width * t.Duration
}

func (t Task) String() string {
	return fmt.Sprintf(
		"Task{ID: %d, Width: %d, Duration: %d}",

		t.ID,
		t.Width,
		t.Duration,
	)
}
