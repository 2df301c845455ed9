// Copyright Musicdott B.V., 2026. All rights reserved.

package types

import "time"

// Dataset identifies one of the legacy export kinds the migrator handles.
type Dataset string

const (
	DatasetSongs    Dataset = "songs"
	DatasetNotation Dataset = "notation"
	DatasetStudents Dataset = "students"
	DatasetUnknown  Dataset = "unknown"
)

// RunRecord is the audit entry for one dataset conversion, persisted in the
// migration ledger and listed by the runs command.
type RunRecord struct {
	// ID is a random UUID assigned when the run starts.
	ID string `json:"id" yaml:"id"`

	Dataset    Dataset `json:"dataset" yaml:"dataset"`
	SourceFile string  `json:"source_file" yaml:"source_file"`

	// SourceSHA256 is the hex digest of the source file bytes.
	SourceSHA256 string `json:"source_sha256" yaml:"source_sha256"`

	// Encoding is the charset the source decoded with
	// (utf-8, windows-1252, or iso-8859-1).
	Encoding string `json:"encoding" yaml:"encoding"`

	StartedAt  time.Time `json:"started_at" yaml:"started_at"`
	FinishedAt time.Time `json:"finished_at" yaml:"finished_at"`

	// Rows counts data rows read from the source.
	Rows int `json:"rows" yaml:"rows"`

	// Records counts records written to the primary output.
	Records int `json:"records" yaml:"records"`

	// Extra counts derived records in a secondary output (schedule entries).
	Extra int `json:"extra" yaml:"extra"`

	// Failed counts rows skipped because they could not be parsed.
	Failed int `json:"failed" yaml:"failed"`

	// Outputs lists the JSON files the run wrote.
	Outputs []string `json:"outputs" yaml:"outputs"`
}

// RunIssue is one skipped-row diagnostic attached to a run.
type RunIssue struct {
	// Line is the 1-based line in the source file.
	Line int `json:"line" yaml:"line"`

	Message string `json:"message" yaml:"message"`
}
