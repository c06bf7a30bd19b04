// Package cluefile reads clue listings with one `clue<TAB>suspect` pair per line.
//
// Blank lines and lines starting with # are ignored. Surrounding whitespace is trimmed from both fields.
package cluefile

import (
	"bufio"
	"github.com/myrjola/casefile/internal/errors"
	"github.com/myrjola/casefile/internal/models"
	"io"
	"log/slog"
	"strings"
)

var ErrMalformedLine = errors.NewSentinel("line is not a tab separated clue and suspect")

// Parse reads every pair from r in order. Malformed lines are skipped and reported in the returned error list so
// that one bad line doesn't discard the rest of the file. The final error is non-nil only when reading fails.
func Parse(r io.Reader) ([]models.Entry, []error, error) {
	var (
		entries []models.Entry
		skipped []error
		lineNo  int
	)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		clue, suspect, ok := strings.Cut(line, "\t")
		clue, suspect = strings.TrimSpace(clue), strings.TrimSpace(suspect)
		if !ok || suspect == "" || strings.Contains(suspect, "\t") {
			skipped = append(skipped, errors.Wrap(ErrMalformedLine, "parse line",
				slog.Int("line", lineNo), slog.String("text", line)))
			continue
		}
		entries = append(entries, models.Entry{Clue: clue, Suspect: suspect})
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, errors.Wrap(err, "scan clue file", slog.Int("line", lineNo))
	}
	return entries, skipped, nil
}
