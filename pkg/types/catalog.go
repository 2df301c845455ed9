// Copyright Musicdott B.V., 2026. All rights reserved.

package types

// Song is the Musicdott 2.0 library record produced from one row of the
// legacy songs export (POS_Songs.csv).
type Song struct {
	// Title is the song title, or "Song #N" when the export row has none.
	Title string `json:"title" yaml:"title"`

	// Artist is the performing artist, or "Unknown Artist".
	Artist string `json:"artist" yaml:"artist"`

	// Instrument is always "drums"; the legacy platform was drums-only.
	Instrument string `json:"instrument" yaml:"instrument"`

	// Level is always "all"; the legacy export carries no level data.
	Level string `json:"level" yaml:"level"`

	// Description summarizes genre, BPM, and length, pipe-separated
	// (e.g. "Genre: Funk | BPM: 104 | Lengte: 3:45").
	Description string `json:"description" yaml:"description"`

	// Content holds the assembled body: embed iframes, streaming links,
	// lyrics, and normalized notation blocks separated by blank lines.
	Content string `json:"content" yaml:"content"`
}

// Lesson is the Musicdott 2.0 lesson record produced from one row of the
// legacy notation export (POS_Notatie.csv).
type Lesson struct {
	// Title combines category, chapter, and sequence number
	// (e.g. "Rudiments – Paradiddles – #3"), or "Pattern #N".
	Title string `json:"title" yaml:"title"`

	// Description carries the teacher's remarks for the pattern.
	Description string `json:"description" yaml:"description"`

	// ContentType is always "notation".
	ContentType string `json:"contentType" yaml:"content_type"`

	// Instrument is always "drums".
	Instrument string `json:"instrument" yaml:"instrument"`

	// Level is always "all".
	Level string `json:"level" yaml:"level"`

	// Content holds the normalized notation embed plus linked resources
	// (video, MuseScore, MusicXML, PDF, MP3) separated by blank lines.
	Content string `json:"content" yaml:"content"`
}
