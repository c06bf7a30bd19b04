// Package setup builds a casebook from the environment and the global command line flags.
package setup

import (
	"github.com/myrjola/casefile/internal/casebook"
	"github.com/myrjola/casefile/internal/errors"
	"github.com/myrjola/casefile/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"log/slog"
	"os"
)

const (
	flagBuckets         = "buckets"
	flagSuspectCapacity = "suspect-capacity"
	flagMaxTextLength   = "max-text-length"
	flagMaxEntries      = "max-entries"
	flagTruncate        = "truncate"
	flagLogLevel        = "log-level"
)

// RegisterFlags adds the casebook flags as persistent flags of root. Flags override environment variables only when
// they are set explicitly.
func RegisterFlags(root *cobra.Command) {
	flags := root.PersistentFlags()
	flags.Int(flagBuckets, casebook.DefaultConfig().Buckets, "number of hash table buckets (CASEFILE_BUCKETS)")
	flags.Int(flagSuspectCapacity, 0, "unique suspects tracked, 0 for no limit (CASEFILE_SUSPECT_CAPACITY)")
	flags.Int(flagMaxTextLength, casebook.DefaultMaxTextLength, "maximum clue and suspect length in bytes (CASEFILE_MAX_TEXT_LENGTH)")
	flags.Int(flagMaxEntries, 0, "maximum number of stored clues, 0 for no limit (CASEFILE_MAX_ENTRIES)")
	flags.Bool(flagTruncate, false, "truncate overlong text instead of rejecting it (CASEFILE_TRUNCATE)")
	flags.String(flagLogLevel, "info", "log level: debug, info, warn or error (CASEFILE_LOG_LEVEL)")
}

// Config merges the environment configuration with the explicitly set flags of cmd.
func Config(cmd *cobra.Command, lookupEnv func(string) (string, bool)) (casebook.Config, slog.Level, error) {
	env, err := casebook.LoadEnvConfig(lookupEnv)
	if err != nil {
		return casebook.Config{}, slog.LevelInfo, errors.Wrap(err, "load environment")
	}

	flags := cmd.Flags()
	var errs []error
	overrideInt(flags, flagBuckets, &env.Buckets, &errs)
	overrideInt(flags, flagSuspectCapacity, &env.SuspectCapacity, &errs)
	overrideInt(flags, flagMaxTextLength, &env.MaxTextLength, &errs)
	overrideInt(flags, flagMaxEntries, &env.MaxEntries, &errs)
	if flags.Changed(flagTruncate) {
		if env.Truncate, err = flags.GetBool(flagTruncate); err != nil {
			errs = append(errs, errors.Wrap(err, "read flag", slog.String("flag", flagTruncate)))
		}
	}
	if flags.Changed(flagLogLevel) {
		if env.LogLevel, err = flags.GetString(flagLogLevel); err != nil {
			errs = append(errs, errors.Wrap(err, "read flag", slog.String("flag", flagLogLevel)))
		}
	}
	if err = errors.Join(errs...); err != nil {
		return casebook.Config{}, slog.LevelInfo, err
	}

	level, err := logging.ParseLevel(env.LogLevel)
	if err != nil {
		return casebook.Config{}, slog.LevelInfo, errors.Wrap(err, "log level")
	}
	return env.Config(), level, nil
}

func overrideInt(flags *pflag.FlagSet, name string, target *int, errs *[]error) {
	if !flags.Changed(name) {
		return
	}
	v, err := flags.GetInt(name)
	if err != nil {
		*errs = append(*errs, errors.Wrap(err, "read flag", slog.String("flag", name)))
		return
	}
	*target = v
}

// Casebook creates the logger and the casebook for a command. Logs go to stderr so that reports on stdout stay
// clean.
func Casebook(cmd *cobra.Command) (*casebook.Casebook, *slog.Logger, error) {
	cfg, level, err := Config(cmd, os.LookupEnv)
	if err != nil {
		return nil, nil, err
	}
	logger := logging.NewLogger(cmd.ErrOrStderr(), level)
	cb, err := casebook.New(cfg, logger)
	if err != nil {
		return nil, nil, errors.Wrap(err, "create casebook")
	}
	return cb, logger, nil
}
