package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeroenhonig/Musicdott/pkg/types"
)

var studentsCmd = &cobra.Command{
	Use:   "students <csv-file>",
	Short: "Convert a student export to musicdott2_students.json and musicdott2_schedule.json",
	Long: `Students converts a Musicdott 1.0 student administration export into
2.0 student profiles plus a weekly lesson schedule. Each student row may
carry up to two lesson slots; slots with an unrecognized day or time are
skipped without dropping the student.`,
	RunE: runStudents,
}

func init() {
	rootCmd.AddCommand(studentsCmd)
}

func runStudents(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("provide the students CSV export to convert")
	}

	cfg := migrationConfig(cmd)
	opts, err := convertOptions(cmd, cfg)
	if err != nil {
		return err
	}

	summary, err := migrateDataset(cfg, opts, types.DatasetStudents, args[0], convertStudents)
	if err != nil {
		return err
	}
	if summary.HasFailures() {
		return fmt.Errorf("%d row(s) failed conversion", summary.Failed)
	}
	return nil
}
