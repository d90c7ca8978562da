package stripscheduler

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadTaskRecords(t *testing.T) {
	input := "2 5\n1\t5\n\n  2   3  \n1 3\n3 2\n\n"

	records, errRead := ReadTaskRecords(strings.NewReader(input))
	require.NoError(t, errRead)
	require.Equal(t,
		[]TaskRecord{
			{Width: 2, Duration: 5},
			{Width: 1, Duration: 5},
			{Width: 2, Duration: 3},
			{Width: 1, Duration: 3},
			{Width: 3, Duration: 2},
		},
		records,
	)
}

func TestReadTaskRecordsMalformed(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectedLine int
	}{
		{
			name:         "1. single field",
			input:        "2 5\n3\n",
			expectedLine: 2,
		},
		{
			name:         "2. three fields",
			input:        "2 5 1\n",
			expectedLine: 1,
		},
		{
			name:         "3. not a number",
			input:        "2 5\n\nx 4\n",
			expectedLine: 3,
		},
		{
			name:         "4. zero duration",
			input:        "2 0\n",
			expectedLine: 1,
		},
		{
			name:         "5. negative width",
			input:        "1 1\n-1 4\n",
			expectedLine: 2,
		},
		{
			name:         "6. fraction",
			input:        "1.5 4\n",
			expectedLine: 1,
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name,
			func(t *testing.T) {
				records, errRead := ReadTaskRecords(strings.NewReader(tt.input))
				require.ErrorIs(t, errRead, ErrKindMalformedInput)
				require.Nil(t, records)

				var errMalformed *ErrMalformedInput
				require.True(t, errors.As(errRead, &errMalformed))
				require.Equal(t, tt.expectedLine, errMalformed.Line)
			},
		)
	}
}

func TestReadTaskRecordsLongLines(t *testing.T) {
	t.Run(
		"1. padded record past the default scanner limit",
		func(t *testing.T) {
			input := "2 5\n1 " + strings.Repeat("0", 70000) + "5\n"

			records, errRead := ReadTaskRecords(strings.NewReader(input))
			require.NoError(t, errRead)
			require.Equal(t,
				[]TaskRecord{
					{Width: 2, Duration: 5},
					{Width: 1, Duration: 5},
				},
				records,
			)
		},
	)

	t.Run(
		"2. line over the limit",
		func(t *testing.T) {
			input := "2 5\n1 " + strings.Repeat("0", MaxTaskLineLength) + "5\n"

			records, errRead := ReadTaskRecords(strings.NewReader(input))
			require.ErrorIs(t, errRead, ErrKindMalformedInput)
			require.NotErrorIs(t, errRead, ErrKindIOFailure)
			require.Nil(t, records)

			var errMalformed *ErrMalformedInput
			require.True(t, errors.As(errRead, &errMalformed))
			require.Equal(t, 2, errMalformed.Line)
		},
	)
}

func TestLoadTasks(t *testing.T) {
	dir := t.TempDir()

	t.Run(
		"1. valid file",
		func(t *testing.T) {
			path := filepath.Join(dir, "valid.txt")
			require.NoError(t, os.WriteFile(path, []byte("1 2\n2 7\n3 4\n"), 0o644))

			tasks, errLoad := LoadTasks(path, 3)
			require.NoError(t, errLoad)
			require.Equal(t,
				[]Task{
					{ID: 2, Width: 2, Duration: 7},
					{ID: 3, Width: 3, Duration: 4},
					{ID: 1, Width: 1, Duration: 2},
				},
				tasks,
			)
		},
	)

	t.Run(
		"2. missing file",
		func(t *testing.T) {
			tasks, errLoad := LoadTasks(filepath.Join(dir, "missing.txt"), 3)
			require.ErrorIs(t, errLoad, ErrKindIOFailure)
			require.ErrorIs(t, errLoad, fs.ErrNotExist)
			require.Nil(t, tasks)
		},
	)

	t.Run(
		"3. oversized task",
		func(t *testing.T) {
			path := filepath.Join(dir, "oversized.txt")
			require.NoError(t, os.WriteFile(path, []byte("1 2\n4 7\n"), 0o644))

			_, errLoad := LoadTasks(path, 3)
			require.ErrorIs(t, errLoad, ErrKindOversizedTask)
		},
	)

	t.Run(
		"4. malformed line",
		func(t *testing.T) {
			path := filepath.Join(dir, "malformed.txt")
			require.NoError(t, os.WriteFile(path, []byte("1 2\n4;7\n"), 0o644))

			_, errLoad := LoadTasks(path, 3)
			require.ErrorIs(t, errLoad, ErrKindMalformedInput)
			require.NotErrorIs(t, errLoad, ErrKindOversizedTask)
		},
	)
}

func TestWriteTaskRecords(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t,
		WriteTaskRecords(
			&buf,
			[]TaskRecord{
				{Width: 3, Duration: 9},
				{Width: 1, Duration: 4},
			},
		),
	)
	require.Equal(t, "3 9\n1 4\n", buf.String())
}
