// Copyright Musicdott B.V., 2026. All rights reserved.

package convert

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jeroenhonig/Musicdott/internal/csvio"
	"github.com/jeroenhonig/Musicdott/internal/schedule"
	"github.com/jeroenhonig/Musicdott/pkg/types"
)

// Students converts a parsed student export to 2.0 roster records plus
// weekly schedule entries. Each row yields one student and up to two
// schedule entries; a slot with a missing or unparseable day or time is
// skipped without touching the student record.
func Students(t *csvio.Table, opts Options, w io.Writer) ([]types.Student, []types.ScheduleEntry, Summary) {
	opts = opts.withDefaults()
	fields := opts.Fields.Students

	sum := Summary{Dataset: types.DatasetStudents, Rows: len(t.Rows)}
	sum.Failed = reportIssues(t, w)

	loc, err := time.LoadLocation(opts.Timezone)
	if err != nil {
		fmt.Fprintf(w, "warning: unknown timezone %q, using system local time\n", opts.Timezone)
		loc = time.Local
	}
	now := opts.Clock().In(loc)

	students := make([]types.Student, 0, len(t.Rows))
	var entries []types.ScheduleEntry

	for i, row := range t.Rows {
		student := studentFromRow(row, i+1, fields)
		students = append(students, student)
		sum.Records++

		for slot := 1; slot <= 2; slot++ {
			entry, ok := slotEntry(row, student, slot, opts, now)
			if !ok {
				continue
			}
			entries = append(entries, entry)
			sum.Extra++
		}
	}

	fmt.Fprintf(w, "students: %d rows, %d converted, %d schedule entries, %d failed\n",
		sum.Rows, sum.Records, sum.Extra, sum.Failed)
	return students, entries, sum
}

func studentFromRow(row csvio.Row, n int, fields map[string][]string) types.Student {
	get := func(field string) string {
		return row.Get(fields[field]...)
	}

	id := get("id")
	if id == "" {
		id = strconv.Itoa(n)
	}
	first := get("first_name")
	last := get("last_name")

	return types.Student{
		ID:         id,
		FirstName:  first,
		LastName:   last,
		FullName:   strings.TrimSpace(first + " " + last),
		Email:      nullable(get("email")),
		Phone:      nullable(get("phone")),
		City:       nullable(get("city")),
		Notes:      nullable(get("notes")),
		Instrument: "drums",
	}
}

// slotEntry builds the schedule entry for one lesson slot (1 or 2) of a
// student row. ok is false when the slot is empty or unusable.
func slotEntry(row csvio.Row, student types.Student, slot int, opts Options, now time.Time) (types.ScheduleEntry, bool) {
	get := func(field string) string {
		return row.Get(opts.Fields.Students[fmt.Sprintf("%s%d", field, slot)]...)
	}

	dayRaw := get("day")
	timeRaw := get("time")
	if dayRaw == "" || timeRaw == "" {
		return types.ScheduleEntry{}, false
	}

	dayCode, ok := schedule.ParseDay(dayRaw)
	if !ok {
		return types.ScheduleEntry{}, false
	}
	hour, minute, ok := schedule.ParseClock(timeRaw)
	if !ok {
		return types.ScheduleEntry{}, false
	}

	duration := opts.DefaultLessonMinutes
	if v, err := strconv.Atoi(get("duration")); err == nil {
		duration = v
	}

	next := schedule.NextOccurrence(now, dayCode)

	return types.ScheduleEntry{
		StudentID:   student.ID,
		StudentName: student.FullName,
		Email:       stringOrEmpty(student.Email),
		DayOfWeek:   dayCode,
		StartTime:   fmt.Sprintf("%02d:%02d", hour, minute),
		DurationMin: duration,
		Timezone:    opts.Timezone,
		Frequency:   "WEEKLY",
		ICal: types.CalendarRule{
			DTStart: schedule.DTStart(next, hour, minute),
			TZID:    opts.Timezone,
			RRule:   schedule.RRule(dayCode, hour, minute),
		},
		Notes: student.Notes,
	}, true
}

// nullable returns nil for empty strings so absent contact fields
// serialize as JSON null.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
