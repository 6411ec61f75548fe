// Package cmd — batch command.
// Processes a newline-separated list of queries from a file or stdin, or
// interactively via the --tui front end.
package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pkamau/versedeck/batch"
	"github.com/pkamau/versedeck/core/fetch"
	"github.com/pkamau/versedeck/core/output"
	"github.com/pkamau/versedeck/tui"
)

var flagTUI bool

var batchCmd = &cobra.Command{
	Use:   "batch [file]",
	Short: "Generate slide decks for a list of songs",
	Long: `Batch reads one song query per line from the given file (or stdin) and
generates a presentation file for each. Failures are reported per query and
never abort the batch.

Examples:
  versedeck batch songs.txt --output_dir ./decks
  echo "way maker sinach" | versedeck batch
  versedeck batch --tui`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().BoolVar(&flagTUI, "tui", false, "Interactive terminal front end")
}

func runBatch(cmd *cobra.Command, args []string) error {
	renderer, err := selectRenderer()
	if err != nil {
		return err
	}
	fetcher := fetch.New(fetch.WithLogger(newLogger()))

	if flagTUI {
		return tui.Run(tui.Config{
			Fetcher:   fetcher,
			Parser:    newParser(),
			Renderer:  renderer,
			OutputDir: flagOutputDir,
		})
	}

	queries, err := readQueries(args)
	if err != nil {
		return err
	}
	if len(queries) == 0 {
		return fmt.Errorf("no queries given")
	}

	writer, err := output.New(flagOutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	runner := &batch.Runner{
		Fetcher:  fetcher,
		Parser:   newParser(),
		Renderer: renderer,
		Writer:   writer,
		Progress: func(e batch.Event) {
			if e.Err != nil {
				fmt.Fprintf(os.Stderr, "[%d/%d] ✗ %v\n", e.Index, e.Total, e.Err)
				return
			}
			if e.Message != "" {
				fmt.Fprintf(os.Stdout, "[%d/%d] %s\n", e.Index, e.Total, e.Message)
			}
		},
	}

	sum := runner.Run(context.Background(), queries)
	fmt.Fprintf(os.Stdout, "\ncompleted: %d succeeded, %d failed\n", sum.Succeeded, sum.Failed)
	return nil
}

// readQueries reads one query per line from the named file, or stdin when
// no file is given.
func readQueries(args []string) ([]string, error) {
	var r io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("opening query file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var queries []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		queries = append(queries, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading queries: %w", err)
	}
	return queries, nil
}
