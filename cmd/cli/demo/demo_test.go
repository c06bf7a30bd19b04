package demo_test

import (
	"bytes"
	"context"
	"github.com/myrjola/casefile/cmd/cli/demo"
	"github.com/myrjola/casefile/cmd/cli/setup"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func TestDemo(t *testing.T) {
	t.Setenv("CASEFILE_LOG_LEVEL", "error")
	root := &cobra.Command{Use: "casefile", SilenceUsage: true}
	setup.RegisterFlags(root)
	root.AddGroup(demo.Group)
	root.AddCommand(demo.New())

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"demo"})
	require.NoError(t, root.ExecuteContext(context.Background()))

	got := out.String()
	require.Contains(t, got, "Inserted: clue 'Arma do crime' -> suspect 'Bruno' (bucket 8)")
	require.Contains(t, got, "--- Clues for Bruno ---\n"+
		"* Clue: Relógio quebrado\n* Clue: Carteira roubada\n* Clue: Arma do crime\n")
	require.Contains(t, got, "The MOST CITED suspect is Bruno with 3 mentions!")
	require.Equal(t, 7, strings.Count(got, "Inserted: "))
	require.Empty(t, errOut.String())
}
