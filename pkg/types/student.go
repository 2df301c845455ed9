// Copyright Musicdott B.V., 2026. All rights reserved.

package types

// Student is the Musicdott 2.0 roster record produced from one row of the
// legacy student export. Optional contact fields are pointers so absent
// values serialize as JSON null, which the importer distinguishes from "".
type Student struct {
	// ID is the legacy student id, or the 1-based row number when missing.
	ID string `json:"id" yaml:"id"`

	FirstName string `json:"firstName" yaml:"first_name"`
	LastName  string `json:"lastName" yaml:"last_name"`

	// FullName is "FirstName LastName" with outer whitespace trimmed.
	FullName string `json:"fullName" yaml:"full_name"`

	Email *string `json:"email" yaml:"email"`
	Phone *string `json:"phone" yaml:"phone"`
	City  *string `json:"city" yaml:"city"`
	Notes *string `json:"notes" yaml:"notes"`

	// Instrument is always "drums".
	Instrument string `json:"instrument" yaml:"instrument"`
}

// ScheduleEntry is one weekly lesson slot for a student. A student row can
// produce up to two entries (slot columns stLesdag1/2, stLestijd1/2,
// stLesduur1/2).
type ScheduleEntry struct {
	StudentID   string `json:"studentId" yaml:"student_id"`
	StudentName string `json:"studentName" yaml:"student_name"`

	// Email is the student's address, empty (not null) when unknown.
	Email string `json:"email" yaml:"email"`

	// DayOfWeek is the two-letter RFC 5545 code (MO..SU).
	DayOfWeek string `json:"dayOfWeek" yaml:"day_of_week"`

	// StartTime is the zero-padded 24h start, e.g. "15:30".
	StartTime string `json:"startTime" yaml:"start_time"`

	// DurationMin is the lesson length in minutes.
	DurationMin int `json:"durationMin" yaml:"duration_min"`

	// Timezone is the IANA zone the times are expressed in.
	Timezone string `json:"timezone" yaml:"timezone"`

	// Frequency is always "WEEKLY".
	Frequency string `json:"frequency" yaml:"frequency"`

	ICal CalendarRule `json:"ical" yaml:"ical"`

	Notes *string `json:"notes" yaml:"notes"`
}

// CalendarRule holds the iCalendar recurrence fields for a lesson slot.
type CalendarRule struct {
	// DTStart is the first occurrence in compact local form,
	// e.g. "20260831T153000".
	DTStart string `json:"DTSTART" yaml:"dtstart"`

	// TZID names the zone DTStart is local to.
	TZID string `json:"TZID" yaml:"tzid"`

	// RRule is the weekly recurrence, e.g.
	// "FREQ=WEEKLY;BYDAY=MO;BYHOUR=15;BYMINUTE=30;BYSECOND=0".
	RRule string `json:"RRULE" yaml:"rrule"`
}
