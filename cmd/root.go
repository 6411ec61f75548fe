// Package cmd implements the CLI commands for versedeck using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pkamau/versedeck/core"
	"github.com/pkamau/versedeck/core/render"
	"github.com/pkamau/versedeck/core/sections"
)

// Flags shared by the generate and batch commands.
var (
	flagVerbose   bool
	flagText      bool
	flagJSON      bool
	flagMode      string
	flagOutputDir string
)

var rootCmd = &cobra.Command{
	Use:   "versedeck",
	Short: "versedeck — turn song lyrics into slide decks",
	Long: `versedeck searches a lyrics aggregator for a song, splits the lyrics into
labeled sections, and renders one slide per section into a presentation file.

Usage:
  versedeck generate <query> [flags]
  versedeck batch [file] [flags]`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagText, "text", false, "Output plain text instead of a slide deck")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output structured JSON instead of a slide deck")
	rootCmd.PersistentFlags().StringVar(&flagMode, "mode", "strict", "Section parsing mode: strict or lenient")
	rootCmd.PersistentFlags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: current directory)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger builds the CLI logger; quiet unless --verbose.
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// selectRenderer picks the output renderer; the slide deck is the default.
func selectRenderer() (core.Renderer, error) {
	if flagText && flagJSON {
		return nil, fmt.Errorf("--text and --json are mutually exclusive")
	}
	switch {
	case flagText:
		return render.NewTextRenderer(), nil
	case flagJSON:
		return render.NewJSONRenderer(), nil
	default:
		return render.NewDeckRenderer(), nil
	}
}

// newParser builds the section parser from the --mode flag.
func newParser() *sections.Parser {
	return sections.NewParser(sections.ParseMode(flagMode))
}
