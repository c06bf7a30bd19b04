package hashtable

import (
	"github.com/myrjola/casefile/internal/errors"
	"github.com/myrjola/casefile/internal/models"
	"log/slog"
)

// DefaultBuckets is the bucket count used when nothing else is configured.
const DefaultBuckets = 10

var (
	ErrInvalidBucketCount = errors.NewSentinel("bucket count must be at least one")
	ErrAllocation         = errors.NewSentinel("could not allocate clue entry")
)

// node is one link in a bucket chain.
type node struct {
	entry models.Entry
	next  *node
}

// Table maps clues to suspects with a fixed number of buckets. Collisions are resolved with separate chaining,
// newest entry first. The table never grows or rehashes and entries cannot be deleted individually.
//
// Table is not safe for concurrent use.
type Table struct {
	buckets    []*node
	count      int
	maxEntries int
	allocated  int
	released   int
}

type Option func(*Table)

// WithMaxEntries limits the number of entries the table can hold at once. Insert fails with ErrAllocation when the
// limit is reached. Zero means no limit.
func WithMaxEntries(n int) Option {
	return func(t *Table) {
		t.maxEntries = n
	}
}

// New creates a table with the given number of empty buckets.
func New(buckets int, opts ...Option) (*Table, error) {
	if buckets < 1 {
		return nil, errors.Wrap(ErrInvalidBucketCount, "create table", slog.Int("buckets", buckets))
	}
	t := &Table{
		buckets:    make([]*node, buckets),
		count:      0,
		maxEntries: 0,
		allocated:  0,
		released:   0,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Hash sums the byte values of key and reduces the sum modulo size. The empty key hashes to 0.
func Hash(key string, size int) int {
	sum := 0
	for i := range len(key) {
		sum += int(key[i])
	}
	return sum % size
}

// Size returns the number of buckets.
func (t *Table) Size() int {
	return len(t.buckets)
}

// Len returns the number of entries currently in the table.
func (t *Table) Len() int {
	return t.count
}

// Insert prepends a new entry to the chain of the bucket clue hashes to and returns the bucket index.
//
// Clues don't have to be unique. Inserting the same clue twice results in two entries.
func (t *Table) Insert(clue, suspect string) (int, error) {
	if t.maxEntries > 0 && t.count >= t.maxEntries {
		return 0, errors.Wrap(ErrAllocation, "entry limit reached",
			slog.Int("maxEntries", t.maxEntries), slog.String("clue", clue))
	}
	idx := Hash(clue, len(t.buckets))
	t.buckets[idx] = &node{
		entry: models.Entry{Clue: clue, Suspect: suspect},
		next:  t.buckets[idx],
	}
	t.count++
	t.allocated++
	return idx, nil
}

// QueryBySuspect returns the clues of every entry pointing to suspect.
//
// The whole table is scanned from bucket 0 upwards and each chain from the newest entry. The result is empty, not
// nil, when nothing matches.
func (t *Table) QueryBySuspect(suspect string) []string {
	clues := []string{}
	t.ForEach(func(_ int, e models.Entry) bool {
		if e.Suspect == suspect {
			clues = append(clues, e.Clue)
		}
		return true
	})
	return clues
}

// ForEach calls fn for every entry in bucket order, newest first within a bucket. Iteration stops when fn returns
// false.
func (t *Table) ForEach(fn func(bucket int, e models.Entry) bool) {
	for i, head := range t.buckets {
		for n := head; n != nil; n = n.next {
			if !fn(i, n.entry) {
				return
			}
		}
	}
}

// Chain returns a copy of the entries in bucket, newest first. Out of range buckets have no entries.
func (t *Table) Chain(bucket int) []models.Entry {
	if bucket < 0 || bucket >= len(t.buckets) {
		return nil
	}
	var entries []models.Entry
	for n := t.buckets[bucket]; n != nil; n = n.next {
		entries = append(entries, n.entry)
	}
	return entries
}

// Teardown unlinks every chain and returns how many entries were released. The table stays usable and is
// indistinguishable from a new one afterwards. Calling Teardown on an empty table releases nothing.
func (t *Table) Teardown() int {
	released := 0
	for i := range t.buckets {
		n := t.buckets[i]
		t.buckets[i] = nil
		for n != nil {
			next := n.next
			n.next = nil
			released++
			n = next
		}
	}
	t.count = 0
	t.released += released
	return released
}
