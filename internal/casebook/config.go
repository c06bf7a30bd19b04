package casebook

import (
	"github.com/myrjola/casefile/internal/envstruct"
	"github.com/myrjola/casefile/internal/errors"
	"github.com/myrjola/casefile/internal/hashtable"
	"log/slog"
)

// DefaultMaxTextLength matches the classic 50 byte buffers minus the terminator.
const DefaultMaxTextLength = 49

var ErrInvalidConfig = errors.NewSentinel("invalid casebook configuration")

// OverlongPolicy decides what happens to clue or suspect text longer than Config.MaxTextLength.
type OverlongPolicy string

const (
	// OverlongReject fails the insertion with ErrStringTooLong.
	OverlongReject OverlongPolicy = "reject"
	// OverlongTruncate shortens the text to the last complete UTF-8 character that fits and logs a warning.
	OverlongTruncate OverlongPolicy = "truncate"
)

type Config struct {
	Buckets int
	// SuspectCapacity limits the number of unique suspects tracked. Zero is unbounded.
	SuspectCapacity int
	// MaxTextLength is the maximum length of clues and suspects in bytes.
	MaxTextLength int
	// MaxEntries limits the number of entries in the table. Zero is unbounded.
	MaxEntries     int
	OverlongPolicy OverlongPolicy
}

func DefaultConfig() Config {
	return Config{
		Buckets:         hashtable.DefaultBuckets,
		SuspectCapacity: 0,
		MaxTextLength:   DefaultMaxTextLength,
		MaxEntries:      0,
		OverlongPolicy:  OverlongReject,
	}
}

func (c Config) Validate() error {
	var errs []error
	if c.Buckets < 1 {
		errs = append(errs, errors.Wrap(ErrInvalidConfig, "buckets must be positive", slog.Int("buckets", c.Buckets)))
	}
	if c.SuspectCapacity < 0 {
		errs = append(errs, errors.Wrap(ErrInvalidConfig, "suspect capacity must not be negative",
			slog.Int("suspectCapacity", c.SuspectCapacity)))
	}
	if c.MaxTextLength < 1 {
		errs = append(errs, errors.Wrap(ErrInvalidConfig, "max text length must be positive",
			slog.Int("maxTextLength", c.MaxTextLength)))
	}
	if c.MaxEntries < 0 {
		errs = append(errs, errors.Wrap(ErrInvalidConfig, "max entries must not be negative",
			slog.Int("maxEntries", c.MaxEntries)))
	}
	if c.OverlongPolicy != OverlongReject && c.OverlongPolicy != OverlongTruncate {
		errs = append(errs, errors.Wrap(ErrInvalidConfig, "unknown overlong policy",
			slog.String("overlongPolicy", string(c.OverlongPolicy))))
	}
	return errors.Join(errs...)
}

// EnvConfig is the environment representation of Config, populated with [envstruct.Populate].
type EnvConfig struct {
	Buckets         int    `env:"CASEFILE_BUCKETS" envDefault:"10"`
	SuspectCapacity int    `env:"CASEFILE_SUSPECT_CAPACITY" envDefault:"0"`
	MaxTextLength   int    `env:"CASEFILE_MAX_TEXT_LENGTH" envDefault:"49"`
	MaxEntries      int    `env:"CASEFILE_MAX_ENTRIES" envDefault:"0"`
	Truncate        bool   `env:"CASEFILE_TRUNCATE" envDefault:"false"`
	LogLevel        string `env:"CASEFILE_LOG_LEVEL" envDefault:"info"`
}

// LoadEnvConfig reads the casebook configuration with lookupEnv, typically [os.LookupEnv].
func LoadEnvConfig(lookupEnv func(string) (string, bool)) (EnvConfig, error) {
	var env EnvConfig
	if err := envstruct.Populate(&env, lookupEnv); err != nil {
		return EnvConfig{}, errors.Wrap(err, "populate env config")
	}
	return env, nil
}

// Config converts the environment values to a Config.
func (e EnvConfig) Config() Config {
	policy := OverlongReject
	if e.Truncate {
		policy = OverlongTruncate
	}
	return Config{
		Buckets:         e.Buckets,
		SuspectCapacity: e.SuspectCapacity,
		MaxTextLength:   e.MaxTextLength,
		MaxEntries:      e.MaxEntries,
		OverlongPolicy:  policy,
	}
}
