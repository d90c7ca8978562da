package stripscheduler

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	goerrors "github.com/TudorHulban/go-errors"
)

// MaxTaskLineLength bounds a single task file line in bytes.
const MaxTaskLineLength = 1 << 20

// ReadTaskRecords reads "<width> <duration>" lines. Blank lines are skipped.
func ReadTaskRecords(r io.Reader) ([]TaskRecord, error) {
	var result []TaskRecord

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxTaskLineLength)

	lineNumber := 0

	for scanner.Scan() {
		lineNumber++

		line := scanner.Text()
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}

		record, errParse := parseTaskRecord(line)
		if errParse != nil {
			return nil,
				&ErrMalformedInput{
					Line:    lineNumber,
					Content: line,
					Issue:   errParse,
				}
		}

		result = append(result, record)
	}

	if errScan := scanner.Err(); errScan != nil {
		if errors.Is(errScan, bufio.ErrTooLong) {
			return nil,
				&ErrMalformedInput{
					Line:    lineNumber + 1,
					Content: fmt.Sprintf("line longer than %d bytes", MaxTaskLineLength),
					Issue:   errScan,
				}
		}

		return nil,
			&ErrIOFailure{
				Operation: "read",
				Path:      "task records",
				Issue:     errScan,
			}
	}

	return result,
		nil
}

func parseTaskRecord(line string) (TaskRecord, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return TaskRecord{},
			goerrors.ErrInvalidInput{
				Caller:     "parseTaskRecord",
				InputName:  "line",
				InputValue: len(fields),
				Issue: errors.New(
					"expected two fields: width and duration",
				),
			}
	}

	width, errWidth := parsePositive("width", fields[0])
	if errWidth != nil {
		return TaskRecord{},
			errWidth
	}

	duration, errDuration := parsePositive("duration", fields[1])
	if errDuration != nil {
		return TaskRecord{},
			errDuration
	}

	return TaskRecord{
			Width:    width,
			Duration: duration,
		},
		nil
}

func parsePositive(name, field string) (int, error) {
	value, errConv := strconv.Atoi(field)
	if errConv != nil {
		return 0,
			goerrors.ErrInvalidInput{
				Caller:     "parseTaskRecord",
				InputName:  name,
				InputValue: field,
				Issue:      errConv,
			}
	}

	if value < 1 {
		return 0,
			goerrors.ErrInvalidInput{
				Caller:     "parseTaskRecord",
				InputName:  name,
				InputValue: value,
				Issue: goerrors.ErrNegativeInput{
					InputName: name,
				},
			}
	}

	return value,
		nil
}

// LoadTasks reads the task file at path and ingests it for a strip of stripWidth units.
func LoadTasks(path string, stripWidth int) ([]Task, error) {
	f, errOpen := os.Open(path)
	if errOpen != nil {
		return nil,
			&ErrIOFailure{
				Operation: "open",
				Path:      path,
				Issue:     errOpen,
			}
	}
	defer f.Close()

	records, errRead := ReadTaskRecords(f)
	if errRead != nil {
		var errIO *ErrIOFailure
		if errors.As(errRead, &errIO) {
			errIO.Path = path
		}

		return nil,
			errRead
	}

	return Ingest(records, stripWidth)
}

func WriteTaskRecords(w io.Writer, records []TaskRecord) error {
	buf := bufio.NewWriter(w)

	for _, record := range records {
		if _, errWrite := fmt.Fprintln(buf, record.String()); errWrite != nil {
			return errWrite
		}
	}

	return buf.Flush()
}
