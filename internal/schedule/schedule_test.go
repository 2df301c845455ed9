// Copyright Musicdott B.V., 2026. All rights reserved.

package schedule

import (
	"testing"
	"time"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		// Dutch abbreviations, the most common form in the export.
		{"ma", "ma", "MO", true},
		{"di", "di", "TU", true},
		{"wo", "wo", "WE", true},
		{"do", "do", "TH", true},
		{"vr", "vr", "FR", true},
		{"za", "za", "SA", true},
		{"zo", "zo", "SU", true},

		// Full Dutch and English names.
		{"maandag", "maandag", "MO", true},
		{"donderdag", "donderdag", "TH", true},
		{"wednesday", "wednesday", "WE", true},
		{"sunday", "sunday", "SU", true},

		// Case and whitespace.
		{"uppercase", "MAANDAG", "MO", true},
		{"mixed case", "Dinsdag", "TU", true},
		{"padded", "  vr  ", "FR", true},

		// Unknowns.
		{"empty", "", "", false},
		{"typo", "woensdg", "", false},
		{"number", "1", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDay(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseDay(%q) = %q, %v, want %q, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantHour   int
		wantMinute int
		wantOK     bool
	}{
		{"colon separator", "15:30", 15, 30, true},
		{"dot separator", "15.30", 15, 30, true},
		{"morning", "9:00", 9, 0, true},
		{"zero-padded", "09:05", 9, 5, true},
		{"midnight", "0:00", 0, 0, true},
		{"padded input", " 16:45 ", 16, 45, true},

		{"empty", "", 0, 0, false},
		{"no separator", "1530", 0, 0, false},
		{"three parts", "15:30:00", 0, 0, false},
		{"words", "half vier", 0, 0, false},
		{"hour out of range", "25:00", 0, 0, false},
		{"minute out of range", "15:75", 0, 0, false},
		{"negative hour", "-1:30", 0, 0, false},
		{"non-numeric minute", "15:3o", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hour, minute, ok := ParseClock(tt.input)
			if hour != tt.wantHour || minute != tt.wantMinute || ok != tt.wantOK {
				t.Errorf("ParseClock(%q) = %d, %d, %v, want %d, %d, %v",
					tt.input, hour, minute, ok, tt.wantHour, tt.wantMinute, tt.wantOK)
			}
		})
	}
}

func TestNextOccurrence(t *testing.T) {
	// A fixed Wednesday.
	wednesday := time.Date(2026, 8, 19, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		dayCode string
		want    time.Time
	}{
		{"later this week", "FR", time.Date(2026, 8, 21, 10, 0, 0, 0, time.UTC)},
		{"tomorrow", "TH", time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)},
		{"earlier weekday rolls to next week", "MO", time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)},
		{"same weekday means next week", "WE", time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)},
		{"weekend", "SU", time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextOccurrence(wednesday, tt.dayCode)
			if !got.Equal(tt.want) {
				t.Errorf("NextOccurrence(wednesday, %s) = %v, want %v", tt.dayCode, got, tt.want)
			}
		})
	}
}

func TestDTStart(t *testing.T) {
	next := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	got := DTStart(next, 15, 30)
	want := "20260824T153000"
	if got != want {
		t.Errorf("DTStart = %q, want %q", got, want)
	}

	got = DTStart(next, 9, 5)
	want = "20260824T090500"
	if got != want {
		t.Errorf("DTStart = %q, want %q", got, want)
	}
}

func TestRRule(t *testing.T) {
	got := RRule("MO", 15, 30)
	want := "FREQ=WEEKLY;BYDAY=MO;BYHOUR=15;BYMINUTE=30;BYSECOND=0"
	if got != want {
		t.Errorf("RRule = %q, want %q", got, want)
	}

	// Hour and minute stay unpadded.
	got = RRule("SU", 9, 5)
	want = "FREQ=WEEKLY;BYDAY=SU;BYHOUR=9;BYMINUTE=5;BYSECOND=0"
	if got != want {
		t.Errorf("RRule = %q, want %q", got, want)
	}
}
