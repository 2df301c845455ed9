// Copyright Musicdott B.V., 2026. All rights reserved.

// Package ledger persists an audit trail of migration runs in SQLite.
// Every dataset conversion is recorded with its source checksum, counts,
// and skipped-row diagnostics, so a re-import months later can tell which
// export produced which JSON.
package ledger

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/jeroenhonig/Musicdott/pkg/types"
)

// Store manages the migration ledger database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the ledger database at path, creating the schema
// and any missing parent directory.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating ledger directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating ledger schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			dataset TEXT NOT NULL,
			source_file TEXT,
			source_sha256 TEXT,
			encoding TEXT,
			started_at TEXT,
			finished_at TEXT,
			rows INTEGER,
			records INTEGER,
			extra INTEGER,
			failed INTEGER,
			outputs TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS issues (
			run_id TEXT NOT NULL REFERENCES runs(id),
			line INTEGER,
			message TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_issues_run_id ON issues(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// NewRun starts a run record for a dataset conversion. The caller fills in
// the outcome fields and passes the record to RecordRun when done.
func NewRun(dataset types.Dataset, sourceFile string) types.RunRecord {
	return types.RunRecord{
		ID:         uuid.NewString(),
		Dataset:    dataset,
		SourceFile: sourceFile,
		StartedAt:  time.Now().UTC(),
	}
}

// RecordRun writes a completed run and its issues in one transaction.
func (s *Store) RecordRun(ctx context.Context, rec types.RunRecord, issues []types.RunIssue) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	outputsJSON, _ := json.Marshal(rec.Outputs)
	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, dataset, source_file, source_sha256, encoding,
			started_at, finished_at, rows, records, extra, failed, outputs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, string(rec.Dataset), rec.SourceFile, rec.SourceSHA256, rec.Encoding,
		rec.StartedAt.Format(time.RFC3339Nano), rec.FinishedAt.Format(time.RFC3339Nano),
		rec.Rows, rec.Records, rec.Extra, rec.Failed, string(outputsJSON),
	)
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO issues (run_id, line, message) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing issue insert: %w", err)
	}
	defer stmt.Close()

	for _, iss := range issues {
		if _, err := stmt.ExecContext(ctx, rec.ID, iss.Line, iss.Message); err != nil {
			return fmt.Errorf("inserting issue: %w", err)
		}
	}

	return tx.Commit()
}

// Runs returns the most recent runs, newest first. limit <= 0 returns all.
func (s *Store) Runs(ctx context.Context, limit int) ([]types.RunRecord, error) {
	query := `SELECT id, dataset, source_file, source_sha256, encoding,
		started_at, finished_at, rows, records, extra, failed, outputs
		FROM runs ORDER BY started_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var records []types.RunRecord
	for rows.Next() {
		var rec types.RunRecord
		var dataset, startedAt, finishedAt, outputsJSON string
		if err := rows.Scan(&rec.ID, &dataset, &rec.SourceFile, &rec.SourceSHA256, &rec.Encoding,
			&startedAt, &finishedAt, &rec.Rows, &rec.Records, &rec.Extra, &rec.Failed, &outputsJSON); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		rec.Dataset = types.Dataset(dataset)
		rec.StartedAt, _ = time.Parse(time.RFC3339Nano, startedAt)
		rec.FinishedAt, _ = time.Parse(time.RFC3339Nano, finishedAt)
		if outputsJSON != "" {
			json.Unmarshal([]byte(outputsJSON), &rec.Outputs)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Issues returns the skipped-row diagnostics recorded for a run.
func (s *Store) Issues(ctx context.Context, runID string) ([]types.RunIssue, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT line, message FROM issues WHERE run_id = ? ORDER BY line`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying issues: %w", err)
	}
	defer rows.Close()

	var issues []types.RunIssue
	for rows.Next() {
		var iss types.RunIssue
		if err := rows.Scan(&iss.Line, &iss.Message); err != nil {
			return nil, fmt.Errorf("scanning issue: %w", err)
		}
		issues = append(issues, iss)
	}
	return issues, rows.Err()
}
