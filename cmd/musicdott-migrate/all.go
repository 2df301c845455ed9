// Copyright Musicdott B.V., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeroenhonig/Musicdott/pkg/types"
)

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Batch-convert a full Musicdott 1.0 export",
	Long: `All converts every provided export file in one run: songs, notation,
and students, in that order. Datasets share one output directory, manifest,
and ledger, so a single invocation migrates a school completely.

At least one of --songs, --notation, or --students is required.`,
	RunE: runAll,
}

func init() {
	allCmd.Flags().String("songs", "", "path to the songs CSV export")
	allCmd.Flags().String("notation", "", "path to the notation CSV export")
	allCmd.Flags().String("students", "", "path to the students CSV export")

	rootCmd.AddCommand(allCmd)
}

func runAll(cmd *cobra.Command, args []string) error {
	songsPath, _ := cmd.Flags().GetString("songs")
	notationPath, _ := cmd.Flags().GetString("notation")
	studentsPath, _ := cmd.Flags().GetString("students")
	if songsPath == "" && notationPath == "" && studentsPath == "" {
		return fmt.Errorf("nothing to convert: provide --songs, --notation, or --students")
	}

	cfg := migrationConfig(cmd)
	opts, err := convertOptions(cmd, cfg)
	if err != nil {
		return err
	}

	jobs := []struct {
		dataset types.Dataset
		path    string
		fn      convertFunc
	}{
		{types.DatasetSongs, songsPath, convertSongs},
		{types.DatasetNotation, notationPath, convertNotation},
		{types.DatasetStudents, studentsPath, convertStudents},
	}

	var total, failed int
	for _, job := range jobs {
		if job.path == "" {
			continue
		}
		summary, err := migrateDataset(cfg, opts, job.dataset, job.path, job.fn)
		if err != nil {
			return err
		}
		total += summary.Total()
		failed += summary.Failed
	}

	fmt.Printf("all: %d record(s) written to %s\n", total, cfg.Output.Dir)
	if failed > 0 {
		return fmt.Errorf("%d row(s) failed conversion", failed)
	}
	return nil
}
