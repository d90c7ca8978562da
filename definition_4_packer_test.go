package stripscheduler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// perfectTasks pack without idle units on a strip of 3.
func perfectTasks(t *testing.T) []Task {
	t.Helper()

	tasks, errIngest := Ingest(
		[]TaskRecord{
			{Width: 2, Duration: 5},
			{Width: 1, Duration: 5},
			{Width: 2, Duration: 3},
			{Width: 1, Duration: 3},
			{Width: 3, Duration: 2},
		},
		3,
	)
	require.NoError(t, errIngest)

	return tasks
}

// backfillTasks leave one free unit on the first level that only FFDH reuses,
// on a strip of 4.
func backfillTasks(t *testing.T) []Task {
	t.Helper()

	tasks, errIngest := Ingest(
		[]TaskRecord{
			{Width: 3, Duration: 5},
			{Width: 2, Duration: 4},
			{Width: 2, Duration: 3},
			{Width: 1, Duration: 2},
		},
		4,
	)
	require.NoError(t, errIngest)

	return tasks
}

func TestPackPerfect(t *testing.T) {
	expected := []Placement{
		{TaskID: 1, Width: 2, Duration: 5, Level: 0, Start: 0, StartTime: 0},
		{TaskID: 2, Width: 1, Duration: 5, Level: 0, Start: 2, StartTime: 0},
		{TaskID: 3, Width: 2, Duration: 3, Level: 1, Start: 0, StartTime: 5},
		{TaskID: 4, Width: 1, Duration: 3, Level: 1, Start: 2, StartTime: 5},
		{TaskID: 5, Width: 3, Duration: 2, Level: 2, Start: 0, StartTime: 8},
	}

	for _, packer := range []Packer{NFDH{}, FFDH{}} {
		t.Run(
			packer.Name(),
			func(t *testing.T) {
				schedule, errPack := packer.Pack(perfectTasks(t), 3)
				require.NoError(t, errPack)
				require.NoError(t, schedule.Verify())

				require.Equal(t, expected, schedule.Placements())
				require.Len(t, schedule.Levels, 3)
				require.Equal(t, 5, schedule.Levels[0].Height)
				require.Equal(t, 3, schedule.Levels[1].Height)
				require.Equal(t, 2, schedule.Levels[2].Height)

				require.Equal(t, 10, schedule.Makespan())
				require.InDelta(t, 10.0, schedule.TotalWork(), 1e-9)
				require.InDelta(t, 0.0, schedule.Efficiency(), 1e-9)
				require.Zero(t, schedule.IdleArea())
			},
		)
	}
}

func TestPackBackfill(t *testing.T) {
	t.Run(
		"1. NFDH opens a level",
		func(t *testing.T) {
			schedule, errPack := PackNFDH(backfillTasks(t), 4)
			require.NoError(t, errPack)
			require.NoError(t, schedule.Verify())

			require.Len(t, schedule.Levels, 3)
			require.Equal(t, 11, schedule.Makespan())

			placement, found := schedule.PlacementOf(4)
			require.True(t, found)
			require.Equal(t, 2, placement.Level)
			require.Equal(t, 0, placement.Start)
			require.Equal(t, 9, placement.StartTime)
		},
	)

	t.Run(
		"2. FFDH reuses the first level",
		func(t *testing.T) {
			schedule, errPack := PackFFDH(backfillTasks(t), 4)
			require.NoError(t, errPack)
			require.NoError(t, schedule.Verify())

			require.Len(t, schedule.Levels, 2)
			require.Equal(t, 9, schedule.Makespan())

			placement, found := schedule.PlacementOf(4)
			require.True(t, found)
			require.Equal(t, 0, placement.Level)
			require.Equal(t, 3, placement.Start)
			require.Equal(t, 0, placement.StartTime)

			require.Equal(t,
				[]int{1, 4},
				taskIDs(schedule.Levels[0]),
			)
			require.Equal(t,
				[]int{2, 3},
				taskIDs(schedule.Levels[1]),
			)
		},
	)
}

// Closed levels are tried before the current one even when both have room.
func TestFFDHScanOrder(t *testing.T) {
	tasks, errIngest := Ingest(
		[]TaskRecord{
			{Width: 3, Duration: 9},
			{Width: 3, Duration: 8},
			{Width: 2, Duration: 7},
			{Width: 1, Duration: 6},
			{Width: 1, Duration: 5},
		},
		4,
	)
	require.NoError(t, errIngest)

	schedule, errPack := PackFFDH(tasks, 4)
	require.NoError(t, errPack)
	require.NoError(t, schedule.Verify())

	// level 0: 3 units, level 1: 3 units, task 3 (2 units) opens level 2,
	// task 4 goes back to level 0, task 5 to level 1.
	require.Len(t, schedule.Levels, 3)
	require.Equal(t, []int{1, 4}, taskIDs(schedule.Levels[0]))
	require.Equal(t, []int{2, 5}, taskIDs(schedule.Levels[1]))
	require.Equal(t, []int{3}, taskIDs(schedule.Levels[2]))
}

func TestPackProperties(t *testing.T) {
	const stripWidth = 20

	for seed := uint64(1); seed <= 25; seed++ {
		records, errGenerate := GenerateRecords(
			&ParamsGenerate{
				Count:       150,
				MaxWidth:    stripWidth + 1,
				MaxDuration: 40,
			},
			NewRand(seed),
		)
		require.NoError(t, errGenerate)

		tasks, errIngest := Ingest(records, stripWidth)
		require.NoError(t, errIngest)

		nfdh, errNFDH := PackNFDH(tasks, stripWidth)
		require.NoError(t, errNFDH)
		require.NoError(t, nfdh.Verify(), "seed %d", seed)

		ffdh, errFFDH := PackFFDH(tasks, stripWidth)
		require.NoError(t, errFFDH)
		require.NoError(t, ffdh.Verify(), "seed %d", seed)

		for _, schedule := range []*Schedule{nfdh, ffdh} {
			require.GreaterOrEqual(t, float64(schedule.Makespan()), schedule.TotalWork())
			require.GreaterOrEqual(t, schedule.Efficiency(), 0.0)

			var heights int
			for _, level := range schedule.Levels {
				heights = heights + level.Height
			}

			require.Equal(t, heights, schedule.Makespan())
		}

		require.LessOrEqual(t, ffdh.Makespan(), nfdh.Makespan(), "seed %d", seed)
		require.LessOrEqual(t, len(ffdh.Levels), len(nfdh.Levels), "seed %d", seed)
	}
}

func TestPackDeterministic(t *testing.T) {
	first, errFirst := PackFFDH(backfillTasks(t), 4)
	require.NoError(t, errFirst)

	second, errSecond := PackFFDH(backfillTasks(t), 4)
	require.NoError(t, errSecond)

	require.Equal(t, first.Placements(), second.Placements())
}

func TestPackErrors(t *testing.T) {
	for _, packer := range []Packer{NFDH{}, FFDH{}} {
		t.Run(
			packer.Name()+" 1. oversized task",
			func(t *testing.T) {
				schedule, errPack := packer.Pack(
					[]Task{
						{ID: 1, Width: 5, Duration: 2},
					},
					4,
				)
				require.ErrorIs(t, errPack, ErrKindOversizedTask)
				require.Nil(t, schedule)
			},
		)

		t.Run(
			packer.Name()+" 2. unsorted tasks",
			func(t *testing.T) {
				_, errPack := packer.Pack(
					[]Task{
						{ID: 1, Width: 1, Duration: 2},
						{ID: 2, Width: 1, Duration: 3},
					},
					4,
				)
				require.Error(t, errPack)
			},
		)

		t.Run(
			packer.Name()+" 3. zero duration",
			func(t *testing.T) {
				_, errPack := packer.Pack(
					[]Task{
						{ID: 1, Width: 1, Duration: 0},
					},
					4,
				)
				require.ErrorIs(t, errPack, ErrKindMalformedInput)
			},
		)

		t.Run(
			packer.Name()+" 4. zero strip width",
			func(t *testing.T) {
				_, errPack := packer.Pack(nil, 0)
				require.Error(t, errPack)
			},
		)

		t.Run(
			packer.Name()+" 5. no tasks",
			func(t *testing.T) {
				schedule, errPack := packer.Pack(nil, 4)
				require.NoError(t, errPack)
				require.Empty(t, schedule.Levels)
				require.Zero(t, schedule.Makespan())
				require.Zero(t, schedule.Efficiency())
				require.NoError(t, schedule.Verify())
			},
		)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input    string
		expected Mode
	}{
		{"NFDH", ModeNFDH},
		{"nfdh", ModeNFDH},
		{"FfDh", ModeFFDH},
		{"generate", ModeGenerate},
		{" compare ", ModeCompare},
		{"bfdh", InvalidMode},
		{"", InvalidMode},
	}

	for _, tt := range tests {
		t.Run(
			tt.input,
			func(t *testing.T) {
				require.Equal(t, tt.expected, ParseMode(tt.input))
			},
		)
	}
}

func TestPackerFor(t *testing.T) {
	nfdh, errNFDH := PackerFor(ModeNFDH)
	require.NoError(t, errNFDH)
	require.Equal(t, "NFDH", nfdh.Name())

	ffdh, errFFDH := PackerFor(ModeFFDH)
	require.NoError(t, errFFDH)
	require.Equal(t, "FFDH", ffdh.Name())

	for _, mode := range []Mode{InvalidMode, ModeGenerate, ModeCompare} {
		packer, errPacker := PackerFor(mode)
		require.Error(t, errPacker)
		require.Nil(t, packer)
	}
}

func taskIDs(level *Level) []int {
	result := make([]int, len(level.Placements))

	for ix, placement := range level.Placements {
		result[ix] = placement.TaskID
	}

	return result
}
