package analyze

import (
	"github.com/myrjola/casefile/cmd/cli/setup"
	"github.com/myrjola/casefile/internal/cluefile"
	"github.com/myrjola/casefile/internal/errors"
	"github.com/myrjola/casefile/internal/logging"
	"github.com/myrjola/casefile/internal/report"
	"github.com/spf13/cobra"
	"io"
	"log/slog"
	"os"
)

// New creates the analyze command.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "analyze [file]",
		GroupID: "case",
		Short:   "Analyze a clue file",
		Long: `Reads clue<TAB>suspect lines from file, or from standard input when no file is given, and prints the
clues of the requested suspects followed by the most cited suspect.`,
		Args: cobra.MaximumNArgs(1),
		RunE: run,
	}
	cmd.Flags().StringArray("suspect", nil, "list the clues of this suspect, repeatable")
	cmd.Flags().Bool("distribution", false, "print the chain of every bucket")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	suspects, err := cmd.Flags().GetStringArray("suspect")
	if err != nil {
		return errors.Wrap(err, "read suspect flag")
	}
	distribution, err := cmd.Flags().GetBool("distribution")
	if err != nil {
		return errors.Wrap(err, "read distribution flag")
	}

	cb, logger, err := setup.Casebook(cmd)
	if err != nil {
		return err
	}
	ctx := logging.WithAttrs(cmd.Context(), slog.String("command", "analyze"))

	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		ctx = logging.WithAttrs(ctx, slog.String("file", args[0]))
		var f *os.File
		if f, err = os.Open(args[0]); err != nil {
			return errors.Wrap(err, "open clue file", slog.String("file", args[0]))
		}
		defer func() {
			_ = f.Close()
		}()
		in = f
	}

	entries, skipped, err := cluefile.Parse(in)
	if err != nil {
		return err
	}
	for _, s := range skipped {
		logger.LogAttrs(ctx, slog.LevelWarn, "skipped line", errors.SlogError(s))
	}
	if err = cb.Seed(ctx, entries); err != nil {
		// Failed insertions are logged by the casebook and don't stop the analysis.
		logger.LogAttrs(ctx, slog.LevelWarn, "some clues were not stored", errors.SlogError(err))
	}
	defer cb.Close(ctx)

	out := cmd.OutOrStdout()
	if distribution {
		if err = report.Distribution(out, cb.Chains()); err != nil {
			return err
		}
	}
	for _, suspect := range suspects {
		if err = report.Clues(out, suspect, cb.QueryBySuspect(suspect)); err != nil {
			return err
		}
	}
	mostCited, err := cb.MostCited()
	return report.Analysis(out, cb.Counts(), mostCited, err)
}
