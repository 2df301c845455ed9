package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeroenhonig/Musicdott/pkg/types"
)

var songsCmd = &cobra.Command{
	Use:   "songs <csv-file>",
	Short: "Convert a repertoire export to musicdott2_songs.json",
	Long: `Songs converts a Musicdott 1.0 repertoire export into the 2.0 song
catalog. Media links are normalized on the way: Groovescribe notation becomes
a canonical embed iframe, YouTube links become player embeds, and remaining
links are labeled in the content body.`,
	RunE: runSongs,
}

func init() {
	rootCmd.AddCommand(songsCmd)
}

func runSongs(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("provide the songs CSV export to convert")
	}

	cfg := migrationConfig(cmd)
	opts, err := convertOptions(cmd, cfg)
	if err != nil {
		return err
	}

	summary, err := migrateDataset(cfg, opts, types.DatasetSongs, args[0], convertSongs)
	if err != nil {
		return err
	}
	if summary.HasFailures() {
		return fmt.Errorf("%d row(s) failed conversion", summary.Failed)
	}
	return nil
}
