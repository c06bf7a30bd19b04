package main

import (
	"context"
	"fmt"
	"github.com/joho/godotenv"
	"github.com/myrjola/casefile/cmd/cli/analyze"
	"github.com/myrjola/casefile/cmd/cli/demo"
	"github.com/myrjola/casefile/cmd/cli/setup"
	"github.com/myrjola/casefile/internal/errors"
	"github.com/spf13/cobra"
	"io/fs"
	"os"
)

func init() {
	// The .env file is optional, the environment alone is enough.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	setup.RegisterFlags(rootCmd)
	rootCmd.AddGroup(demo.Group)
	rootCmd.AddCommand(demo.New())
	rootCmd.AddCommand(analyze.New())
}

var rootCmd = &cobra.Command{
	Use:          "casefile",
	Long:         `Indexes investigation clues by suspect and finds the most cited suspect.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
