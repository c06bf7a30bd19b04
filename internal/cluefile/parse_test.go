package cluefile_test

import (
	"github.com/myrjola/casefile/internal/cluefile"
	"github.com/myrjola/casefile/internal/models"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        []models.Entry
		wantSkipped int
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "pairs in order",
			input: "Carteira roubada\tBruno\nImpressão digital\tCarlos\n",
			want: []models.Entry{
				{Clue: "Carteira roubada", Suspect: "Bruno"},
				{Clue: "Impressão digital", Suspect: "Carlos"},
			},
		},
		{
			name:  "comments, blank lines and whitespace",
			input: "# case 42\n\n  Arma do crime \t Bruno  \r\n",
			want:  []models.Entry{{Clue: "Arma do crime", Suspect: "Bruno"}},
		},
		{
			name:        "malformed lines are skipped",
			input:       "no separator\nPegadas na lama\tCarlos\nclue\t\nx\ty\tz\n",
			want:        []models.Entry{{Clue: "Pegadas na lama", Suspect: "Carlos"}},
			wantSkipped: 3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, skipped, err := cluefile.Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			require.Equal(t, tt.want, entries)
			require.Len(t, skipped, tt.wantSkipped)
			for _, s := range skipped {
				require.ErrorIs(t, s, cluefile.ErrMalformedLine)
			}
		})
	}
}
