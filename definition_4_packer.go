package stripscheduler

import (
	"errors"
	"fmt"
	"strings"

	goerrors "github.com/TudorHulban/go-errors"
)

type Mode uint8

const (
	InvalidMode Mode = iota
	ModeNFDH
	ModeFFDH
	ModeGenerate
	ModeCompare
)

var _modeNames = map[Mode]string{
	InvalidMode:  "INVALID",
	ModeNFDH:     "NFDH",
	ModeFFDH:     "FFDH",
	ModeGenerate: "GENERATE",
	ModeCompare:  "COMPARE",
}

func (m Mode) String() string {
	if name, exists := _modeNames[m]; exists {
		return name
	}

	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// ParseMode matches mode names case-insensitively.
// Unknown names give InvalidMode, which callers treat as nothing to do.
func ParseMode(mode string) Mode {
	candidate := strings.TrimSpace(mode)

	for _, known := range []Mode{ModeNFDH, ModeFFDH, ModeGenerate, ModeCompare} {
		if strings.EqualFold(candidate, known.String()) {
			return known
		}
	}

	return InvalidMode
}

// Packer places tasks sorted by non-increasing duration onto a strip.
type Packer interface {
	Pack(tasks []Task, stripWidth int) (*Schedule, error)
	Name() string
}

func PackerFor(mode Mode) (Packer, error) {
	switch mode {
	case ModeNFDH:
		return NFDH{},
			nil

	case ModeFFDH:
		return FFDH{},
			nil
	}

	return nil,
		goerrors.ErrInvalidInput{
			Caller:     "PackerFor",
			InputName:  "mode",
			InputValue: mode.String(),
			Issue: errors.New(
				"mode has no packer",
			),
		}
}

func validatePackInput(caller string, tasks []Task, stripWidth int) error {
	if errValidate := validateStripWidth(caller, stripWidth); errValidate != nil {
		return errValidate
	}

	for ix, task := range tasks {
		if task.Width < 1 || task.Duration < 1 {
			return &ErrMalformedInput{
				Content: TaskRecord{Width: task.Width, Duration: task.Duration}.String(),
				Issue: goerrors.ErrInvalidInput{
					Caller:     caller,
					InputName:  "task",
					InputValue: task.ID,
					Issue: errors.New(
						"width and duration must be positive",
					),
				},
			}
		}

		if task.Width > stripWidth {
			return &ErrOversizedTask{
				TaskID:     task.ID,
				Width:      task.Width,
				StripWidth: stripWidth,
			}
		}

		if ix > 0 && task.Duration > tasks[ix-1].Duration {
			return goerrors.ErrInvalidInput{
				Caller:     caller,
				InputName:  "tasks",
				InputValue: task.ID,
				Issue: errors.New(
					"tasks must be sorted by non-increasing duration",
				),
			}
		}
	}

	return nil
}
