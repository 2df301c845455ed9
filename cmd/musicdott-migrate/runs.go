package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeroenhonig/Musicdott/internal/ledger"
	"github.com/jeroenhonig/Musicdott/pkg/types"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded migration runs",
	Long: `Runs lists past migrations from the SQLite ledger, newest first.
Use --issues with a run ID to see which source rows were skipped during
that run and why.`,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().Int("limit", 20, "maximum runs to list (0 = all)")
	runsCmd.Flags().String("issues", "", "list skipped rows for a run ID")
	runsCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, args []string) error {
	cfg := migrationConfig(cmd)

	store, err := ledger.Open(cfg.Ledger.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	jsonOutput, _ := cmd.Flags().GetBool("json")

	runID, _ := cmd.Flags().GetString("issues")
	if runID != "" {
		issues, err := store.Issues(context.Background(), runID)
		if err != nil {
			return err
		}
		return formatIssuesOutput(issues, jsonOutput)
	}

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.Runs(context.Background(), limit)
	if err != nil {
		return err
	}
	return formatRunsOutput(runs, jsonOutput)
}

func formatRunsOutput(runs []types.RunRecord, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-36s  %-9s  %-19s  %7s  %6s  %6s\n",
		"Run", "Dataset", "Started", "Records", "Failed", "Rows")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 92))

	for _, r := range runs {
		fmt.Fprintf(os.Stdout, "%-36s  %-9s  %-19s  %7d  %6d  %6d\n",
			r.ID, r.Dataset, r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			r.Records+r.Extra, r.Failed, r.Rows)
	}

	fmt.Fprintf(os.Stdout, "\n%d run(s)\n", len(runs))
	return nil
}

func formatIssuesOutput(issues []types.RunIssue, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(issues)
	}

	if len(issues) == 0 {
		fmt.Println("No issues recorded.")
		return nil
	}

	for _, iss := range issues {
		fmt.Fprintf(os.Stdout, "line %d: %s\n", iss.Line, iss.Message)
	}
	fmt.Fprintf(os.Stdout, "\n%d issue(s)\n", len(issues))
	return nil
}
