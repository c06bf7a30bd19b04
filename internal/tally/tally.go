package tally

import (
	"github.com/myrjola/casefile/internal/errors"
	"github.com/myrjola/casefile/internal/models"
	"log/slog"
)

// DefaultCapacity is the unique suspect limit of the classic casebook. Trackers created with capacity 0 are
// unbounded.
const DefaultCapacity = 10

var (
	ErrCapacityExceeded = errors.NewSentinel("unique suspect capacity exceeded")
	ErrNoData           = errors.NewSentinel("no suspects recorded")
)

// Tracker counts how many clues mention each suspect, in the order suspects were first mentioned.
type Tracker struct {
	counts   []models.SuspectCount
	capacity int
	dropped  int
}

func New(capacity int) *Tracker {
	return &Tracker{
		counts:   nil,
		capacity: capacity,
		dropped:  0,
	}
}

// Record increments the count of suspect or starts counting it from one.
//
// A new suspect arriving at a full tracker is dropped and ErrCapacityExceeded is returned. Existing counts are
// never affected by a dropped record.
func (t *Tracker) Record(suspect string) error {
	for i := range t.counts {
		if t.counts[i].Name == suspect {
			t.counts[i].Count++
			return nil
		}
	}
	if t.capacity > 0 && len(t.counts) >= t.capacity {
		t.dropped++
		return errors.Wrap(ErrCapacityExceeded, "record suspect",
			slog.String("suspect", suspect), slog.Int("capacity", t.capacity))
	}
	t.counts = append(t.counts, models.SuspectCount{Name: suspect, Count: 1})
	return nil
}

// MostCited returns the suspect with the highest count. On ties the suspect mentioned first wins.
func (t *Tracker) MostCited() (models.SuspectCount, error) {
	if len(t.counts) == 0 {
		return models.SuspectCount{}, ErrNoData
	}
	best := t.counts[0]
	for _, c := range t.counts[1:] {
		if c.Count > best.Count {
			best = c
		}
	}
	return best, nil
}

// Counts returns a copy of all counts in first-mention order.
func (t *Tracker) Counts() []models.SuspectCount {
	out := make([]models.SuspectCount, len(t.counts))
	copy(out, t.counts)
	return out
}

// Total is the sum of all counts.
func (t *Tracker) Total() int {
	total := 0
	for _, c := range t.counts {
		total += c.Count
	}
	return total
}

// Len is the number of unique suspects.
func (t *Tracker) Len() int {
	return len(t.counts)
}

// Dropped is the number of records lost because the tracker was full.
func (t *Tracker) Dropped() int {
	return t.dropped
}

func (t *Tracker) Reset() {
	t.counts = nil
	t.dropped = 0
}
