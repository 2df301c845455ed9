// Copyright Musicdott B.V., 2026. All rights reserved.

package media

import "testing"

func TestGroovescribe(t *testing.T) {
	canonical := func(query string) string {
		return `<iframe width="100%" height="240" src="` + DefaultGrooveHost + `?` + query + `" frameborder="0"></iframe>`
	}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		// Pasted iframe markup.
		{
			"iframe with query",
			`<iframe width="50%" src="https://www.mikeslessons.com/groove/?TimeSig=4/4&Div=16&Tempo=80" frameborder="0"></iframe>`,
			canonical("TimeSig=4/4&Div=16&Tempo=80"),
		},
		{
			"iframe with single-quoted src",
			`<iframe src='https://teacher.musicdott.com/groovescribe/GrooveEmbed.html?TimeSig=3/4&Tempo=60'></iframe>`,
			canonical("TimeSig=3/4&Tempo=60"),
		},
		{
			"iframe src lost its question mark",
			`<iframe src="https://www.mikeslessons.com/grooveTimeSig=4/4&Measures=2"></iframe>`,
			canonical("TimeSig=4/4&Measures=2"),
		},
		{
			"iframe src without groove parameters stays as-is",
			`<iframe src="https://example.com/video"></iframe>`,
			`<iframe src="https://example.com/video"></iframe>`,
		},
		{
			"iframe without src stays as-is",
			`<iframe width="100%"></iframe>`,
			`<iframe width="100%"></iframe>`,
		},

		// Full share URLs.
		{
			"url with query",
			"https://www.mikeslessons.com/groove/?TimeSig=4/4&Div=8&Tempo=100",
			canonical("TimeSig=4/4&Div=8&Tempo=100"),
		},
		{
			"url missing question mark",
			"http://teacher.musicdott.com/groovescribeTimeSig=6/8&Div=12",
			canonical("TimeSig=6/8&Div=12"),
		},
		{
			"url with no groove parameters stays as-is",
			"https://example.com/lesson.pdf",
			"https://example.com/lesson.pdf",
		},

		// Bare querystrings.
		{
			"query with leading question mark",
			"?TimeSig=4/4&Div=16&Tempo=120&Measures=1&H=%7C----%7C",
			canonical("TimeSig=4/4&Div=16&Tempo=120&Measures=1&H=%7C----%7C"),
		},
		{
			"query without question mark",
			"TimeSig=4/4&Div=16",
			canonical("TimeSig=4/4&Div=16"),
		},

		// Everything else passes through.
		{"empty", "", ""},
		{"literal nan", "nan", ""},
		{"uppercase NaN", "NaN", ""},
		{"free text", "zie map 2, pagina 14", "zie map 2, pagina 14"},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Groovescribe(tt.input, "")
			if got != tt.want {
				t.Errorf("Groovescribe(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestGroovescribeCustomHost(t *testing.T) {
	got := Groovescribe("TimeSig=4/4", "https://staging.musicdott.com/gs/GrooveEmbed.html")
	want := `<iframe width="100%" height="240" src="https://staging.musicdott.com/gs/GrooveEmbed.html?TimeSig=4/4" frameborder="0"></iframe>`
	if got != want {
		t.Errorf("Groovescribe with custom host = %q, want %q", got, want)
	}
}

func TestGroovescribeTrimsInput(t *testing.T) {
	got := Groovescribe("  ?TimeSig=4/4  ", "")
	want := `<iframe width="100%" height="240" src="` + DefaultGrooveHost + `?TimeSig=4/4" frameborder="0"></iframe>`
	if got != want {
		t.Errorf("Groovescribe with padded input = %q, want %q", got, want)
	}
}
