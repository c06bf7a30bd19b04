package setup_test

import (
	"github.com/myrjola/casefile/cmd/cli/setup"
	"github.com/myrjola/casefile/internal/casebook"
	"github.com/myrjola/casefile/internal/envstruct"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"log/slog"
	"testing"
)

func newCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test", Run: func(*cobra.Command, []string) {}}
	setup.RegisterFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func lookup(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestConfig(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		args      []string
		want      casebook.Config
		wantLevel slog.Level
		wantErr   error
	}{
		{
			name:      "defaults",
			env:       map[string]string{},
			want:      casebook.DefaultConfig(),
			wantLevel: slog.LevelInfo,
		},
		{
			name: "environment",
			env: map[string]string{
				"CASEFILE_BUCKETS":          "31",
				"CASEFILE_SUSPECT_CAPACITY": "10",
				"CASEFILE_TRUNCATE":         "true",
				"CASEFILE_LOG_LEVEL":        "debug",
			},
			want: casebook.Config{
				Buckets:         31,
				SuspectCapacity: 10,
				MaxTextLength:   casebook.DefaultMaxTextLength,
				MaxEntries:      0,
				OverlongPolicy:  casebook.OverlongTruncate,
			},
			wantLevel: slog.LevelDebug,
		},
		{
			name: "flags override environment",
			env:  map[string]string{"CASEFILE_BUCKETS": "31", "CASEFILE_TRUNCATE": "true"},
			args: []string{"--buckets", "7", "--truncate=false", "--max-entries", "3", "--log-level", "warn"},
			want: casebook.Config{
				Buckets:         7,
				SuspectCapacity: 0,
				MaxTextLength:   casebook.DefaultMaxTextLength,
				MaxEntries:      3,
				OverlongPolicy:  casebook.OverlongReject,
			},
			wantLevel: slog.LevelWarn,
		},
		{
			name:    "invalid environment value",
			env:     map[string]string{"CASEFILE_BUCKETS": "many"},
			wantErr: envstruct.ErrParseValue,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newCommand(t, tt.args...)
			got, level, err := setup.Config(cmd, lookup(tt.env))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.wantLevel, level)
		})
	}
}
