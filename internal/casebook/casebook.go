package casebook

import (
	"context"
	"github.com/myrjola/casefile/internal/errors"
	"github.com/myrjola/casefile/internal/hashtable"
	"github.com/myrjola/casefile/internal/models"
	"github.com/myrjola/casefile/internal/tally"
	"log/slog"
	"unicode/utf8"
)

var ErrStringTooLong = errors.NewSentinel("text exceeds maximum length")

// Insertion describes the outcome of a successful Insert.
type Insertion struct {
	Entry  models.Entry
	Bucket int
	// Truncated is set when the clue or the suspect was shortened to fit MaxTextLength.
	Truncated bool
	// TrackerDropped is set when the entry is in the table but the suspect could not be counted because the
	// tracker was full. MostCited and Counts don't reflect such entries.
	TrackerDropped bool
}

// Casebook owns a clue table and the suspect tracker fed by it. Every insertion goes to both.
//
// Casebook is not safe for concurrent use.
type Casebook struct {
	cfg     Config
	table   *hashtable.Table
	tracker *tally.Tracker
	logger  *slog.Logger
}

// New validates cfg and creates an empty casebook. The returned casebook is ready for use.
func New(cfg Config, logger *slog.Logger) (*Casebook, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validate config")
	}
	table, err := hashtable.New(cfg.Buckets, hashtable.WithMaxEntries(cfg.MaxEntries))
	if err != nil {
		return nil, errors.Wrap(err, "create clue table")
	}
	return &Casebook{
		cfg:     cfg,
		table:   table,
		tracker: tally.New(cfg.SuspectCapacity),
		logger:  logger.With("source", "Casebook"),
	}, nil
}

// Insert associates clue with suspect.
//
// Text longer than the configured maximum fails with ErrStringTooLong or gets truncated depending on the overlong
// policy. hashtable.ErrAllocation aborts the insertion without touching the tracker. A full tracker does not fail
// the insertion, see Insertion.TrackerDropped.
func (c *Casebook) Insert(ctx context.Context, clue, suspect string) (Insertion, error) {
	var (
		ins Insertion
		err error
		cut bool
	)

	if clue, cut, err = c.fit(ctx, "clue", clue); err != nil {
		return Insertion{}, err
	}
	ins.Truncated = cut
	if suspect, cut, err = c.fit(ctx, "suspect", suspect); err != nil {
		return Insertion{}, err
	}
	ins.Truncated = ins.Truncated || cut
	ins.Entry = models.Entry{Clue: clue, Suspect: suspect}

	if ins.Bucket, err = c.table.Insert(clue, suspect); err != nil {
		err = errors.Wrap(err, "insert clue")
		c.logger.LogAttrs(ctx, slog.LevelError, "could not insert clue", errors.SlogError(err))
		return Insertion{}, err
	}

	if err = c.tracker.Record(suspect); err != nil {
		ins.TrackerDropped = true
		c.logger.LogAttrs(ctx, slog.LevelWarn, "suspect not counted", errors.SlogError(err))
	}

	c.logger.LogAttrs(ctx, slog.LevelDebug, "inserted clue",
		slog.String("clue", clue), slog.String("suspect", suspect), slog.Int("bucket", ins.Bucket))
	return ins, nil
}

// fit applies the overlong policy to text and reports whether it was truncated.
func (c *Casebook) fit(ctx context.Context, field, text string) (string, bool, error) {
	limit := c.cfg.MaxTextLength
	if len(text) <= limit {
		return text, false, nil
	}
	attrs := []slog.Attr{
		slog.String("field", field),
		slog.Int("length", len(text)),
		slog.Int("limit", limit),
	}
	if c.cfg.OverlongPolicy != OverlongTruncate {
		return "", false, errors.Wrap(ErrStringTooLong, "validate "+field, attrs...)
	}

	cut := limit
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	truncated := text[:cut]
	c.logger.LogAttrs(ctx, slog.LevelWarn, "truncated text",
		append(attrs, slog.String("original", text), slog.String("truncated", truncated))...)
	return truncated, true, nil
}

// Seed inserts entries in order. Failed insertions are collected and returned together after all entries have
// been tried.
func (c *Casebook) Seed(ctx context.Context, entries []models.Entry) error {
	var errs []error
	for _, e := range entries {
		if _, err := c.Insert(ctx, e.Clue, e.Suspect); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// QueryBySuspect returns every clue pointing to suspect, empty when there are none.
func (c *Casebook) QueryBySuspect(suspect string) []string {
	return c.table.QueryBySuspect(suspect)
}

// MostCited returns the suspect mentioned by most clues, or tally.ErrNoData when nothing has been recorded.
func (c *Casebook) MostCited() (models.SuspectCount, error) {
	return c.tracker.MostCited() //nolint:wrapcheck // callers compare against tally.ErrNoData.
}

// Counts returns the clue count of every tracked suspect in first-mention order.
func (c *Casebook) Counts() []models.SuspectCount {
	return c.tracker.Counts()
}

// Chains returns a snapshot of every bucket chain, newest entry first.
func (c *Casebook) Chains() [][]models.Entry {
	chains := make([][]models.Entry, c.table.Size())
	for i := range chains {
		chains[i] = c.table.Chain(i)
	}
	return chains
}

func (c *Casebook) Len() int {
	return c.table.Len()
}

func (c *Casebook) Stats() hashtable.Stats {
	return c.table.Stats()
}

// Dropped is the number of insertions that were not counted by the tracker.
func (c *Casebook) Dropped() int {
	return c.tracker.Dropped()
}

// Close releases every entry and clears the tracker, returning how many entries were released. The casebook can
// be used again afterwards and closing twice is harmless.
func (c *Casebook) Close(ctx context.Context) int {
	released := c.table.Teardown()
	c.tracker.Reset()
	c.logger.LogAttrs(ctx, slog.LevelDebug, "closed casebook", slog.Int("released", released))
	return released
}
