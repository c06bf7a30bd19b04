package tally_test

import (
	"github.com/myrjola/casefile/internal/models"
	"github.com/myrjola/casefile/internal/tally"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestTracker_Record(t *testing.T) {
	tracker := tally.New(0)
	for _, s := range []string{"Bruno", "Carlos", "Bruno", "Ana", "Carlos", "Ana", "Bruno"} {
		require.NoError(t, tracker.Record(s))
	}

	require.Equal(t, []models.SuspectCount{
		{Name: "Bruno", Count: 3},
		{Name: "Carlos", Count: 2},
		{Name: "Ana", Count: 2},
	}, tracker.Counts())
	require.Equal(t, 3, tracker.Len())
	require.Equal(t, 7, tracker.Total())
	require.Zero(t, tracker.Dropped())
}

func TestTracker_Capacity(t *testing.T) {
	tracker := tally.New(2)
	require.NoError(t, tracker.Record("Ana"))
	require.NoError(t, tracker.Record("Bruno"))

	err := tracker.Record("Carlos")
	require.ErrorIs(t, err, tally.ErrCapacityExceeded)

	// Known suspects are still counted when the tracker is full.
	require.NoError(t, tracker.Record("Ana"))
	require.ErrorIs(t, tracker.Record("Carlos"), tally.ErrCapacityExceeded)

	require.Equal(t, []models.SuspectCount{
		{Name: "Ana", Count: 2},
		{Name: "Bruno", Count: 1},
	}, tracker.Counts())
	require.Equal(t, 2, tracker.Dropped())
	// Recorded total equals attempted records minus dropped ones.
	require.Equal(t, 5-tracker.Dropped(), tracker.Total())
}

func TestTracker_DefaultCapacity(t *testing.T) {
	tracker := tally.New(tally.DefaultCapacity)
	for i := range tally.DefaultCapacity {
		require.NoError(t, tracker.Record(string(rune('A'+i))))
	}
	require.ErrorIs(t, tracker.Record("Z"), tally.ErrCapacityExceeded)
	require.Equal(t, tally.DefaultCapacity, tracker.Len())
}

func TestTracker_MostCited(t *testing.T) {
	tests := []struct {
		name    string
		records []string
		want    models.SuspectCount
		wantErr error
	}{
		{
			name:    "empty",
			records: nil,
			wantErr: tally.ErrNoData,
		},
		{
			name:    "single suspect",
			records: []string{"Ana"},
			want:    models.SuspectCount{Name: "Ana", Count: 1},
		},
		{
			name:    "clear winner",
			records: []string{"Bruno", "Carlos", "Bruno", "Ana", "Carlos", "Ana", "Bruno"},
			want:    models.SuspectCount{Name: "Bruno", Count: 3},
		},
		{
			name:    "tie goes to first mention",
			records: []string{"Carlos", "Ana", "Ana", "Carlos"},
			want:    models.SuspectCount{Name: "Carlos", Count: 2},
		},
		{
			name:    "later suspect overtakes",
			records: []string{"Carlos", "Ana", "Ana"},
			want:    models.SuspectCount{Name: "Ana", Count: 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tracker := tally.New(0)
			for _, r := range tt.records {
				require.NoError(t, tracker.Record(r))
			}
			got, err := tracker.MostCited()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestTracker_Reset(t *testing.T) {
	tracker := tally.New(1)
	require.NoError(t, tracker.Record("Ana"))
	require.Error(t, tracker.Record("Bruno"))

	tracker.Reset()
	require.Zero(t, tracker.Len())
	require.Zero(t, tracker.Dropped())
	_, err := tracker.MostCited()
	require.ErrorIs(t, err, tally.ErrNoData)
	require.NoError(t, tracker.Record("Bruno"))
}
