package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeroenhonig/Musicdott/internal/inspect"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <directory>",
	Short: "Survey an export dump and classify its CSV files",
	Long: `Inspect scans a directory for CSV files, detects each file's encoding,
and classifies it by header as a songs, notation, or students export. Use it
on an unfamiliar dump to learn which file feeds which converter before
running a migration.`,
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringSlice("glob", nil, "doublestar patterns to match (default **/*.csv)")
	inspectCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("provide the export directory to inspect")
	}

	patterns, _ := cmd.Flags().GetStringSlice("glob")
	infos, err := inspect.Scan(args[0], patterns)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatInspectOutput(infos, jsonOutput)
}

func formatInspectOutput(infos []inspect.FileInfo, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	if len(infos) == 0 {
		fmt.Println("No CSV files found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-40s  %-10s  %-14s  %8s  %8s\n",
		"Path", "Dataset", "Encoding", "Columns", "Rows")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 88))

	for _, fi := range infos {
		path := fi.Path
		if len(path) > 40 {
			path = "..." + path[len(path)-37:]
		}
		fmt.Fprintf(os.Stdout, "%-40s  %-10s  %-14s  %8d  %8d\n",
			path, fi.Dataset, fi.Encoding, fi.Columns, fi.Rows)
	}

	fmt.Fprintf(os.Stdout, "\n%d file(s)\n", len(infos))
	return nil
}
