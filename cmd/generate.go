// Package cmd — generate command.
// Runs a single query through the pipeline:
// search → fetch → parse sections → build slides → render → write.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pkamau/versedeck/batch"
	"github.com/pkamau/versedeck/core/fetch"
	"github.com/pkamau/versedeck/core/output"
)

var generateCmd = &cobra.Command{
	Use:   "generate <query>",
	Short: "Generate a slide deck for one song",
	Long: `Generate searches for a song, extracts its lyrics, splits them into
sections, and writes a presentation file (PDF by default).

Examples:
  versedeck generate "way maker sinach"
  versedeck generate "oceans hillsong" --output_dir ./decks
  versedeck generate "goodness of god" --mode lenient --text`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	query := args[0]

	renderer, err := selectRenderer()
	if err != nil {
		return err
	}
	writer, err := output.New(flagOutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	runner := &batch.Runner{
		Fetcher:  fetch.New(fetch.WithLogger(newLogger())),
		Parser:   newParser(),
		Renderer: renderer,
		Writer:   writer,
		Progress: func(e batch.Event) {
			if e.Err == nil && e.Message != "" {
				fmt.Fprintln(os.Stdout, e.Message)
			}
		},
	}

	path, err := runner.Process(context.Background(), query, 1, 1)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	return nil
}
