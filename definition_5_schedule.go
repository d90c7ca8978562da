package stripscheduler

import (
	"fmt"
	"strings"

	goerrors "github.com/TudorHulban/go-errors"
)

// Schedule is the result of one packer run. Levels are in creation order,
// Tasks is the sorted input the packer consumed.
type Schedule struct {
	Tasks  []Task
	Levels []*Level

	Algorithm  Mode
	StripWidth int
}

func newSchedule(algorithm Mode, stripWidth int, tasks []Task) *Schedule {
	return &Schedule{
		Algorithm:  algorithm,
		StripWidth: stripWidth,
		Tasks:      tasks,
	}
}

// Makespan is the top of the last level, equal to the sum of all level heights.
func (s *Schedule) Makespan() int {
	if len(s.Levels) == 0 {
		return 0
	}

	return s.Levels[len(s.Levels)-1].Top()
}

func (s *Schedule) work() int {
	var result int

	for _, task := range s.Tasks {
		result = result + task.Work()
	}

	return result
}

// TotalWork is the schedule length of a perfect packing with no idle units,
// a lower bound for the makespan.
func (s *Schedule) TotalWork() float64 {
	if s.StripWidth == 0 {
		return 0
	}

	return float64(s.work()) / float64(s.StripWidth)
}

// Efficiency is (Ts - W) / W. Zero means no idle capacity.
func (s *Schedule) Efficiency() float64 {
	w := s.TotalWork()
	if w == 0 {
		return 0
	}

	return (float64(s.Makespan()) - w) / w
}

// IdleArea counts unit-time cells inside the makespan not used by any task.
func (s *Schedule) IdleArea() int {
	return s.Makespan()*s.StripWidth - s.work()
}

// Placements lists every task level by level, in placement order within a level.
func (s *Schedule) Placements() []Placement {
	result := make([]Placement, 0, len(s.Tasks))

	for _, level := range s.Levels {
		result = append(result, level.Placements...)
	}

	return result
}

func (s *Schedule) PlacementOf(taskID int) (Placement, bool) {
	for _, level := range s.Levels {
		for _, placement := range level.Placements {
			if placement.TaskID == taskID {
				return placement, true
			}
		}
	}

	return Placement{}, false
}

// Verify checks the packing invariants and returns the first violation found.
func (s *Schedule) Verify() error {
	seen := make(map[int]bool, len(s.Tasks))
	base := 0

	for ix, level := range s.Levels {
		if level.Index != ix {
			return violation("level %d stored at position %d", level.Index, ix)
		}

		if level.Base != base {
			return violation("level %d starts at %d, levels below end at %d", ix, level.Base, base)
		}

		if ix > 0 && level.Height > s.Levels[ix-1].Height {
			return violation("level %d is taller than level %d", ix, ix-1)
		}

		if len(level.Placements) == 0 {
			return violation("level %d is empty", ix)
		}

		if level.Placements[0].Duration != level.Height {
			return violation("level %d height %d differs from its first task", ix, level.Height)
		}

		occupied := 0

		for _, placement := range level.Placements {
			if seen[placement.TaskID] {
				return violation("task %d placed twice", placement.TaskID)
			}

			seen[placement.TaskID] = true

			if placement.Duration > level.Height {
				return violation("task %d overflows level %d", placement.TaskID, ix)
			}

			if placement.Start != occupied {
				return violation("task %d starts at unit %d, expected %d", placement.TaskID, placement.Start, occupied)
			}

			occupied = placement.End()
		}

		if occupied != level.Occupied || occupied > s.StripWidth {
			return violation("level %d occupies %d of %d units", ix, occupied, s.StripWidth)
		}

		base = level.Top()
	}

	if len(seen) != len(s.Tasks) {
		return violation("%d of %d tasks placed", len(seen), len(s.Tasks))
	}

	return nil
}

func violation(format string, args ...any) error {
	return goerrors.ErrValidation{
		Caller: "Verify - Schedule",
		Issue:  fmt.Errorf(format, args...),
	}
}

func (s *Schedule) String() string {
	var sb strings.Builder

	sb.WriteString(
		fmt.Sprintf(
			"Schedule %s (N=%d, Ts=%d):\n",

			s.Algorithm,
			s.StripWidth,
			s.Makespan(),
		),
	)

	for _, level := range s.Levels {
		sb.WriteString(level.String())
		sb.WriteString("\n")
	}

	return sb.String()
}
