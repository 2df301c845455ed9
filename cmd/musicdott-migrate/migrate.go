// Copyright Musicdott B.V., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jeroenhonig/Musicdott/internal/convert"
	"github.com/jeroenhonig/Musicdott/internal/csvio"
	"github.com/jeroenhonig/Musicdott/internal/ledger"
	"github.com/jeroenhonig/Musicdott/internal/manifest"
	"github.com/jeroenhonig/Musicdott/pkg/types"
)

// migrationConfig resolves the effective configuration: viper values
// (defaults, config file, environment) with flag overrides on top.
func migrationConfig(cmd *cobra.Command) types.MigrationConfig {
	cfg := types.MigrationConfig{
		Output: types.OutputConfig{
			Dir: viper.GetString("output.dir"),
		},
		Schedule: types.ScheduleConfig{
			Timezone:             viper.GetString("schedule.timezone"),
			DefaultLessonMinutes: viper.GetInt("schedule.default_lesson_minutes"),
		},
		Embed: types.EmbedConfig{
			GrooveHost: viper.GetString("embed.groove_host"),
		},
		Ledger: types.LedgerConfig{
			Path:     viper.GetString("ledger.path"),
			Disabled: viper.GetBool("ledger.disabled"),
		},
	}

	if cmd.Flags().Changed("out-dir") {
		cfg.Output.Dir, _ = cmd.Flags().GetString("out-dir")
	}
	if cmd.Flags().Changed("no-ledger") {
		cfg.Ledger.Disabled, _ = cmd.Flags().GetBool("no-ledger")
	}
	if cfg.Ledger.Path == "" {
		cfg.Ledger.Path = filepath.Join(cfg.Output.Dir, "migration.db")
	}
	return cfg
}

// convertOptions builds converter options from cfg, loading the column
// alias override when --fieldmap is set.
func convertOptions(cmd *cobra.Command, cfg types.MigrationConfig) (convert.Options, error) {
	opts := convert.Options{
		GrooveHost:           cfg.Embed.GrooveHost,
		Timezone:             cfg.Schedule.Timezone,
		DefaultLessonMinutes: cfg.Schedule.DefaultLessonMinutes,
	}

	mapFile, _ := cmd.Flags().GetString("fieldmap")
	if mapFile != "" {
		fields, err := convert.LoadFieldMap(mapFile)
		if err != nil {
			return opts, err
		}
		opts.Fields = fields
	}
	return opts, nil
}

// convertFunc runs one converter against a parsed table, writes its JSON
// outputs under outDir, and returns the filenames it wrote.
type convertFunc func(t *csvio.Table, outDir string, opts convert.Options, w io.Writer) ([]string, convert.Summary, error)

func convertSongs(t *csvio.Table, outDir string, opts convert.Options, w io.Writer) ([]string, convert.Summary, error) {
	songs, summary := convert.Songs(t, opts, w)
	if err := convert.WriteJSON(filepath.Join(outDir, convert.SongsOutput), songs); err != nil {
		return nil, summary, err
	}
	return []string{convert.SongsOutput}, summary, nil
}

func convertNotation(t *csvio.Table, outDir string, opts convert.Options, w io.Writer) ([]string, convert.Summary, error) {
	lessons, summary := convert.Notation(t, opts, w)
	if err := convert.WriteJSON(filepath.Join(outDir, convert.LessonsOutput), lessons); err != nil {
		return nil, summary, err
	}
	return []string{convert.LessonsOutput}, summary, nil
}

func convertStudents(t *csvio.Table, outDir string, opts convert.Options, w io.Writer) ([]string, convert.Summary, error) {
	students, schedule, summary := convert.Students(t, opts, w)
	if err := convert.WriteJSON(filepath.Join(outDir, convert.StudentsOutput), students); err != nil {
		return nil, summary, err
	}
	if err := convert.WriteJSON(filepath.Join(outDir, convert.ScheduleOutput), schedule); err != nil {
		return nil, summary, err
	}
	return []string{convert.StudentsOutput, convert.ScheduleOutput}, summary, nil
}

// migrateDataset runs the pipeline for one source file: parse, convert,
// write the JSON outputs, update the manifest, and record the run in the
// ledger. Row-level failures are reflected in the summary, not the error.
func migrateDataset(cfg types.MigrationConfig, opts convert.Options, dataset types.Dataset, sourcePath string, fn convertFunc) (convert.Summary, error) {
	rec := ledger.NewRun(dataset, sourcePath)

	table, err := csvio.ReadFile(sourcePath)
	if err != nil {
		return convert.Summary{}, err
	}
	fmt.Printf("read %s (%s, %d rows)\n", sourcePath, table.Encoding, len(table.Rows))

	rec.Encoding = table.Encoding
	rec.SourceSHA256 = table.SHA256
	rec.Rows = len(table.Rows)

	outputs, summary, err := fn(table, cfg.Output.Dir, opts, os.Stdout)
	if err != nil {
		return summary, err
	}
	for _, name := range outputs {
		fmt.Printf("wrote %s\n", filepath.Join(cfg.Output.Dir, name))
	}

	rec.FinishedAt = time.Now().UTC()
	rec.Records = summary.Records
	rec.Extra = summary.Extra
	rec.Failed = summary.Failed
	rec.Outputs = outputs

	if err := updateManifest(cfg.Output.Dir, dataset, table, summary, outputs); err != nil {
		return summary, err
	}
	if err := recordRun(cfg.Ledger, rec, runIssues(table)); err != nil {
		return summary, err
	}
	return summary, nil
}

func updateManifest(outDir string, dataset types.Dataset, table *csvio.Table, summary convert.Summary, outputs []string) error {
	m, err := manifest.Load(outDir)
	if err != nil {
		return err
	}
	m.Update(dataset, manifest.Entry{
		Source:      table.Path,
		SHA256:      table.SHA256,
		Encoding:    table.Encoding,
		Rows:        len(table.Rows),
		Records:     summary.Records,
		Extra:       summary.Extra,
		Failed:      summary.Failed,
		Outputs:     outputs,
		ConvertedAt: time.Now().UTC(),
	})
	return m.Write(outDir, version)
}

func recordRun(cfg types.LedgerConfig, rec types.RunRecord, issues []types.RunIssue) error {
	if cfg.Disabled {
		return nil
	}
	store, err := ledger.Open(cfg.Path)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.RecordRun(context.Background(), rec, issues)
}

func runIssues(t *csvio.Table) []types.RunIssue {
	issues := make([]types.RunIssue, 0, len(t.Issues))
	for _, iss := range t.Issues {
		issues = append(issues, types.RunIssue{Line: iss.Line, Message: iss.Message})
	}
	return issues
}
