package stripscheduler

// FFDH is the First-Fit Decreasing-Height packer.
type FFDH struct{}

var _ Packer = FFDH{}

func (FFDH) Name() string {
	return ModeFFDH.String()
}

func (FFDH) Pack(tasks []Task, stripWidth int) (*Schedule, error) {
	return PackFFDH(tasks, stripWidth)
}

// PackFFDH tries, for every task, the levels below the current one in
// creation order, then the current level, and only then opens a new level.
// Placing on a lower level leaves the current level unchanged.
func PackFFDH(tasks []Task, stripWidth int) (*Schedule, error) {
	if errValidate := validatePackInput("PackFFDH", tasks, stripWidth); errValidate != nil {
		return nil,
			errValidate
	}

	result := newSchedule(ModeFFDH, stripWidth, tasks)

	if len(tasks) == 0 {
		return result,
			nil
	}

	levels := []*Level{
		newLevel(0, 0, tasks[0]),
	}

	for _, task := range tasks[1:] {
		current := levels[len(levels)-1]

		if closed := firstFitBelow(levels[:len(levels)-1], task, stripWidth); closed != nil {
			closed.place(task)

			continue
		}

		if current.Fits(task, stripWidth) {
			current.place(task)

			continue
		}

		levels = append(
			levels,
			newLevel(len(levels), current.Top(), task),
		)
	}

	result.Levels = levels

	return result,
		nil
}

// firstFitBelow returns the first level, in creation order, with room for task.
func firstFitBelow(levels []*Level, task Task, stripWidth int) *Level {
	for _, level := range levels {
		if level.Fits(task, stripWidth) {
			return level
		}
	}

	return nil
}
