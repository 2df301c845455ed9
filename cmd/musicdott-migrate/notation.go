package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeroenhonig/Musicdott/pkg/types"
)

var notationCmd = &cobra.Command{
	Use:   "notation <csv-file>",
	Short: "Convert a notation export to musicdott2_lessons.json",
	Long: `Notation converts a Musicdott 1.0 notation library export into 2.0
lesson documents. Titles are assembled from category, chapter, and sequence
number; Groovescribe patterns, videos, and attachments end up in the lesson
content body.`,
	RunE: runNotation,
}

func init() {
	rootCmd.AddCommand(notationCmd)
}

func runNotation(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("provide the notation CSV export to convert")
	}

	cfg := migrationConfig(cmd)
	opts, err := convertOptions(cmd, cfg)
	if err != nil {
		return err
	}

	summary, err := migrateDataset(cfg, opts, types.DatasetNotation, args[0], convertNotation)
	if err != nil {
		return err
	}
	if summary.HasFailures() {
		return fmt.Errorf("%d row(s) failed conversion", summary.Failed)
	}
	return nil
}
