package demo

import (
	"fmt"
	"github.com/myrjola/casefile/cmd/cli/setup"
	"github.com/myrjola/casefile/internal/classiccase"
	"github.com/myrjola/casefile/internal/errors"
	"github.com/myrjola/casefile/internal/logging"
	"github.com/myrjola/casefile/internal/report"
	"github.com/spf13/cobra"
	"log/slog"
)

var Group = &cobra.Group{
	ID:    "case",
	Title: "Case analysis",
}

// New creates the demo command.
func New() *cobra.Command {
	return &cobra.Command{
		Use:     "demo",
		GroupID: "case",
		Short:   "Solve the classic case",
		Long: `Inserts the seven clues of the classic Detective Quest case, lists the clues of Bruno, Ana and Carlos
and names the most cited suspect.`,
		Args: cobra.NoArgs,
		RunE: run,
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cb, logger, err := setup.Casebook(cmd)
	if err != nil {
		return err
	}
	ctx := logging.WithAttrs(cmd.Context(), slog.String("command", "demo"))
	out := cmd.OutOrStdout()

	_, _ = fmt.Fprintln(out, "--- Detective Quest: Master level (hash table) ---")
	_, _ = fmt.Fprintln(out, "\n## Inserting clues and suspects")
	for _, e := range classiccase.Clues() {
		ins, insertErr := cb.Insert(ctx, e.Clue, e.Suspect)
		if insertErr != nil {
			// Already logged by the casebook, the case continues without this clue.
			continue
		}
		if err = report.Inserted(out, ins); err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(out, "\n## Questioning suspects")
	for _, suspect := range classiccase.Suspects() {
		if err = report.Clues(out, suspect, cb.QueryBySuspect(suspect)); err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(out, "\n## Final analysis")
	mostCited, err := cb.MostCited()
	if err = report.Analysis(out, cb.Counts(), mostCited, err); err != nil {
		return errors.Wrap(err, "render analysis")
	}

	released := cb.Close(ctx)
	logger.LogAttrs(ctx, slog.LevelInfo, "case closed", slog.Int("released", released))
	_, _ = fmt.Fprintln(out, "\n--- Memory released. End of simulation. ---")
	return nil
}
