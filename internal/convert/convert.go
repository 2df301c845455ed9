// Copyright Musicdott B.V., 2026. All rights reserved.

// Package convert builds Musicdott 2.0 JSON documents from parsed legacy
// export tables. Each dataset (songs, notation, students) has one
// converter with the same contract: every readable row yields a record,
// rows that could not be parsed are warned about and skipped, and progress
// goes to an injected writer so the converters stay testable.
package convert

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/jeroenhonig/Musicdott/internal/csvio"
	"github.com/jeroenhonig/Musicdott/pkg/types"
)

// Output filenames, fixed by the 2.0 importer.
const (
	SongsOutput    = "musicdott2_songs.json"
	LessonsOutput  = "musicdott2_lessons.json"
	StudentsOutput = "musicdott2_students.json"
	ScheduleOutput = "musicdott2_schedule.json"
)

// Options tunes a conversion. The zero value converts with production
// defaults.
type Options struct {
	// GrooveHost overrides the Groovescribe embed endpoint notation is
	// rewritten to. Empty means the canonical host.
	GrooveHost string

	// Timezone is the IANA zone schedule entries are local to
	// (default "Europe/Amsterdam").
	Timezone string

	// DefaultLessonMinutes fills slots without a parseable duration
	// (default 30).
	DefaultLessonMinutes int

	// Clock supplies "now" for first-occurrence computation; nil means
	// time.Now.
	Clock func() time.Time

	// Fields overrides the column alias tables; nil means the legacy
	// export defaults.
	Fields *FieldMap
}

func (o Options) withDefaults() Options {
	if o.Timezone == "" {
		o.Timezone = "Europe/Amsterdam"
	}
	if o.DefaultLessonMinutes <= 0 {
		o.DefaultLessonMinutes = 30
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}
	if o.Fields == nil {
		o.Fields = DefaultFieldMap()
	}
	return o
}

// Summary holds the outcome of one dataset conversion.
type Summary struct {
	Dataset types.Dataset

	// Rows is the number of data rows read from the source.
	Rows int

	// Records is the number of records converted for the primary output.
	Records int

	// Extra counts derived records for a secondary output (schedule
	// entries, for the students dataset).
	Extra int

	// Failed counts rows skipped because they could not be parsed.
	Failed int
}

// Total returns the number of records emitted across all outputs.
func (s Summary) Total() int {
	return s.Records + s.Extra
}

// HasFailures reports whether any rows were skipped.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// reportIssues prints the table's parse issues to w and returns the count.
func reportIssues(t *csvio.Table, w io.Writer) int {
	for _, iss := range t.Issues {
		if iss.Line > 0 {
			fmt.Fprintf(w, "warning: line %d skipped: %s\n", iss.Line, iss.Message)
		} else {
			fmt.Fprintf(w, "warning: row skipped: %s\n", iss.Message)
		}
	}
	return len(t.Issues)
}

// WriteJSON writes records to path as two-space indented JSON, creating
// the directory if needed. HTML escaping is disabled: content fields carry
// iframe markup that must reach the importer byte-for-byte.
func WriteJSON(path string, records any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
