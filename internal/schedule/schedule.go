// Copyright Musicdott B.V., 2026. All rights reserved.

// Package schedule turns the legacy roster's free-form lesson-slot columns
// (day name, clock time, duration) into RFC 5545 recurrence fields. Day
// names appear in Dutch and English, full and abbreviated; times use ":"
// or "." as separator.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// dayCodes maps the day spellings seen in exports to iCal BYDAY codes.
var dayCodes = map[string]string{
	"ma": "MO", "maandag": "MO", "monday": "MO",
	"di": "TU", "dinsdag": "TU", "tuesday": "TU",
	"wo": "WE", "woensdag": "WE", "wednesday": "WE",
	"do": "TH", "donderdag": "TH", "thursday": "TH",
	"vr": "FR", "vrijdag": "FR", "friday": "FR",
	"za": "SA", "zaterdag": "SA", "saturday": "SA",
	"zo": "SU", "zondag": "SU", "sunday": "SU",
}

// dayIndex gives each BYDAY code its weekday number, Monday = 0.
var dayIndex = map[string]int{
	"MO": 0, "TU": 1, "WE": 2, "TH": 3, "FR": 4, "SA": 5, "SU": 6,
}

// ParseDay resolves a day-of-week cell to its BYDAY code. Matching is
// case-insensitive; unknown names report ok = false.
func ParseDay(raw string) (string, bool) {
	code, ok := dayCodes[strings.ToLower(strings.TrimSpace(raw))]
	return code, ok
}

// ParseClock parses a lesson start time like "15:30" or "15.30". The value
// must have exactly two numeric parts and describe a real clock time;
// entries like "15:30:00", "half vier", or "25:00" report ok = false.
func ParseClock(raw string) (hour, minute int, ok bool) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ".", ":")
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, false
	}

	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

// NextOccurrence returns the first date strictly after now that falls on
// the weekday named by the BYDAY code. A lesson on today's weekday starts
// next week, so a rule generated on Monday for Monday begins in seven days.
func NextOccurrence(now time.Time, dayCode string) time.Time {
	target := dayIndex[dayCode]
	current := (int(now.Weekday()) + 6) % 7
	ahead := (target - current + 7) % 7
	if ahead == 0 {
		ahead = 7
	}
	return now.AddDate(0, 0, ahead)
}

// DTStart formats the first occurrence in compact local iCal form,
// e.g. "20260831T153000".
func DTStart(next time.Time, hour, minute int) string {
	return fmt.Sprintf("%sT%02d%02d00", next.Format("20060102"), hour, minute)
}

// RRule builds the weekly recurrence value for a slot. Hour and minute are
// unpadded, matching what the 2.0 calendar importer expects.
func RRule(dayCode string, hour, minute int) string {
	return fmt.Sprintf("FREQ=WEEKLY;BYDAY=%s;BYHOUR=%d;BYMINUTE=%d;BYSECOND=0", dayCode, hour, minute)
}
