package stripscheduler

import (
	"errors"
	"fmt"
)

// Error kinds, usable with errors.Is.
var (
	ErrKindMalformedInput = errors.New("malformed input")
	ErrKindOversizedTask  = errors.New("oversized task")
	ErrKindIOFailure      = errors.New("io failure")
)

// ErrMalformedInput is returned when a task record does not parse
// into two positive integers. Line is 1-based, 0 when not read from a file.
type ErrMalformedInput struct {
	Content string
	Issue   error

	Line int
}

func (e *ErrMalformedInput) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf(
			"%s at line %d (%q): %v",

			ErrKindMalformedInput,
			e.Line,
			e.Content,
			e.Issue,
		)
	}

	return fmt.Sprintf(
		"%s (%q): %v",

		ErrKindMalformedInput,
		e.Content,
		e.Issue,
	)
}

func (e *ErrMalformedInput) Unwrap() []error {
	return []error{ErrKindMalformedInput, e.Issue}
}

type ErrOversizedTask struct {
	TaskID     int
	Width      int
	StripWidth int
}

func (e *ErrOversizedTask) Error() string {
	return fmt.Sprintf(
		"%s: task %d needs %d units, strip has %d",

		ErrKindOversizedTask,
		e.TaskID,
		e.Width,
		e.StripWidth,
	)
}

func (e *ErrOversizedTask) Unwrap() error {
	return ErrKindOversizedTask
}

type ErrIOFailure struct {
	Operation string
	Path      string
	Issue     error
}

func (e *ErrIOFailure) Error() string {
	return fmt.Sprintf(
		"%s: %s %s: %v",

		ErrKindIOFailure,
		e.Operation,
		e.Path,
		e.Issue,
	)
}

func (e *ErrIOFailure) Unwrap() []error {
	return []error{ErrKindIOFailure, e.Issue}
}
