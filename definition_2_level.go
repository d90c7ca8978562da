package stripscheduler

import (
	"fmt"
	"strings"
)

// Placement records where a task landed: the level, the first unit it occupies
// and the time it starts (the bottom of its level).
type Placement struct {
	TaskID   int
	Width    int
	Duration int

	Level     int
	Start     int
	StartTime int
}

// End returns the unit offset right after the task.
func (p Placement) End() int {
	return p.Start + p.Width
}

// Level is one row of the strip. Height is fixed by the first task placed on it.
type Level struct {
	Placements []Placement

	Index    int
	Height   int
	Base     int // sum of the heights of the levels below
	Occupied int
}

// newLevel opens a level sized by task and places task as its first entry.
func newLevel(index, base int, task Task) *Level {
	level := Level{
		Index:  index,
		Height: task.Duration,
		Base:   base,
	}

	level.place(task)

	return &level
}

// Free returns the units left unused on the level.
func (l *Level) Free(stripWidth int) int {
	return stripWidth - l.Occupied
}

func (l *Level) Fits(task Task, stripWidth int) bool {
	return l.Free(stripWidth) >= task.Width
}

// Top is the time at which every task on the level has finished.
func (l *Level) Top() int {
	return l.Base + l.Height
}

// place appends task right of the tasks already on the level.
// Capacity is checked by the caller.
func (l *Level) place(task Task) Placement {
	placement := Placement{
		TaskID:   task.ID,
		Width:    task.Width,
		Duration: task.Duration,

		Level:     l.Index,
		Start:     l.Occupied,
		StartTime: l.Base,
	}

	l.Placements = append(l.Placements, placement)
	l.Occupied = l.Occupied + task.Width

	return placement
}

func (l *Level) String() string {
	var sb strings.Builder

	sb.WriteString(
		fmt.Sprintf(
			"Level %d [base %d, height %d, occupied %d]:",

			l.Index,
			l.Base,
			l.Height,
			l.Occupied,
		),
	)

	for _, placement := range l.Placements {
		sb.WriteString(
			fmt.Sprintf(
				" %d@%d-%d",

				placement.TaskID,
				placement.Start,
				placement.End(),
			),
		)
	}

	return sb.String()
}
