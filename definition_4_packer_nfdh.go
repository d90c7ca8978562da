package stripscheduler

// NFDH is the Next-Fit Decreasing-Height packer.
type NFDH struct{}

var _ Packer = NFDH{}

func (NFDH) Name() string {
	return ModeNFDH.String()
}

func (NFDH) Pack(tasks []Task, stripWidth int) (*Schedule, error) {
	return PackNFDH(tasks, stripWidth)
}

// PackNFDH keeps a single open level. A task that does not fit closes it
// and opens the next one; closed levels are never looked at again.
func PackNFDH(tasks []Task, stripWidth int) (*Schedule, error) {
	if errValidate := validatePackInput("PackNFDH", tasks, stripWidth); errValidate != nil {
		return nil,
			errValidate
	}

	result := newSchedule(ModeNFDH, stripWidth, tasks)

	if len(tasks) == 0 {
		return result,
			nil
	}

	current := newLevel(0, 0, tasks[0])
	levels := []*Level{current}

	for _, task := range tasks[1:] {
		if current.Fits(task, stripWidth) {
			current.place(task)

			continue
		}

		current = newLevel(len(levels), current.Top(), task)
		levels = append(levels, current)
	}

	result.Levels = levels

	return result,
		nil
}
