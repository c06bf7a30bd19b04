// Package report renders casebook results for the terminal.
//
// Every function assembles its output in a pooled buffer and writes it with a single Write call.
package report

import (
	"fmt"
	"github.com/myrjola/casefile/internal/casebook"
	"github.com/myrjola/casefile/internal/errors"
	"github.com/myrjola/casefile/internal/models"
	"github.com/myrjola/casefile/internal/tally"
	"github.com/valyala/bytebufferpool"
	"io"
)

const rule = "==================================="

func flush(w io.Writer, buf *bytebufferpool.ByteBuffer) error {
	if _, err := buf.WriteTo(w); err != nil {
		return errors.Wrap(err, "write report")
	}
	return nil
}

// Inserted describes one insertion including the bucket it landed in.
func Inserted(w io.Writer, ins casebook.Insertion) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = fmt.Fprintf(buf, "Inserted: clue '%s' -> suspect '%s' (bucket %d)\n",
		ins.Entry.Clue, ins.Entry.Suspect, ins.Bucket)
	if ins.Truncated {
		_, _ = buf.WriteString("  note: text was truncated to fit\n")
	}
	if ins.TrackerDropped {
		_, _ = buf.WriteString("  note: suspect limit reached, clue not counted\n")
	}
	return flush(w, buf)
}

// Clues lists the clues pointing to suspect.
func Clues(w io.Writer, suspect string, clues []string) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = fmt.Fprintf(buf, "\n--- Clues for %s ---\n", suspect)
	for _, clue := range clues {
		_, _ = fmt.Fprintf(buf, "* Clue: %s\n", clue)
	}
	if len(clues) == 0 {
		_, _ = fmt.Fprintf(buf, "No clues found for %s.\n", suspect)
	}
	_, _ = buf.WriteString("-------------------------------\n")
	return flush(w, buf)
}

// Analysis prints the clue count of every suspect and the most cited one. err is the error returned together with
// mostCited; tally.ErrNoData renders as an explicit message.
func Analysis(w io.Writer, counts []models.SuspectCount, mostCited models.SuspectCount, err error) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if errors.Is(err, tally.ErrNoData) {
		_, _ = buf.WriteString("\nNo clues stored for analysis.\n")
		return flush(w, buf)
	}
	if err != nil {
		return errors.Wrap(err, "most cited suspect")
	}

	_, _ = fmt.Fprintf(buf, "\n%s\n   FINAL EVIDENCE ANALYSIS\n%s\n", rule, rule)
	_, _ = buf.WriteString("Clues per suspect:\n")
	for _, c := range counts {
		_, _ = fmt.Fprintf(buf, "* %s: %d %s\n", c.Name, c.Count, mentions(c.Count))
	}
	_, _ = fmt.Fprintf(buf, "\n=> The MOST CITED suspect is %s with %d %s!\n%s\n",
		mostCited.Name, mostCited.Count, mentions(mostCited.Count), rule)
	return flush(w, buf)
}

func mentions(n int) string {
	if n == 1 {
		return "mention"
	}
	return "mentions"
}

// Distribution prints every bucket chain, newest entry first.
func Distribution(w io.Writer, chains [][]models.Entry) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString("\n--- Bucket distribution ---\n")
	for i, chain := range chains {
		_, _ = fmt.Fprintf(buf, "[%d]", i)
		if len(chain) == 0 {
			_, _ = buf.WriteString(" (empty)")
		}
		for j, e := range chain {
			if j > 0 {
				_, _ = buf.WriteString(" ->")
			}
			_, _ = fmt.Fprintf(buf, " %s (%s)", e.Clue, e.Suspect)
		}
		_ = buf.WriteByte('\n')
	}
	return flush(w, buf)
}
