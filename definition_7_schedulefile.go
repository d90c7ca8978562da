package stripscheduler

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

const DefaultScheduleFile = "schedule.txt"

// FormatPlacement renders one schedule file line.
func FormatPlacement(p Placement) string {
	return fmt.Sprintf(
		"{task №%d, StartEM: %d EMCount: %d, Time: %d, L: %d}",

		p.TaskID,
		p.Start,
		p.Width,
		p.Duration,
		p.Level,
	)
}

// WriteSchedule writes one line per task, level by level.
func WriteSchedule(w io.Writer, s *Schedule) error {
	buf := bufio.NewWriter(w)

	for _, placement := range s.Placements() {
		if _, errWrite := fmt.Fprintln(buf, FormatPlacement(placement)); errWrite != nil {
			return errWrite
		}
	}

	return buf.Flush()
}

func SaveSchedule(path string, s *Schedule) error {
	f, errCr := os.Create(path)
	if errCr != nil {
		return &ErrIOFailure{
			Operation: "create",
			Path:      path,
			Issue:     errCr,
		}
	}

	if errWrite := WriteSchedule(f, s); errWrite != nil {
		_ = f.Close()

		return &ErrIOFailure{
			Operation: "write",
			Path:      path,
			Issue:     errWrite,
		}
	}

	if errClose := f.Close(); errClose != nil {
		return &ErrIOFailure{
			Operation: "close",
			Path:      path,
			Issue:     errClose,
		}
	}

	return nil
}
