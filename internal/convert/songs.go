// Copyright Musicdott B.V., 2026. All rights reserved.

package convert

import (
	"fmt"
	"io"
	"strings"

	"github.com/jeroenhonig/Musicdott/internal/csvio"
	"github.com/jeroenhonig/Musicdott/internal/media"
	"github.com/jeroenhonig/Musicdott/pkg/types"
)

// Songs converts a parsed POS_Songs export to 2.0 song records. Every
// parsed row yields a song; defaults fill in missing titles and artists.
func Songs(t *csvio.Table, opts Options, w io.Writer) ([]types.Song, Summary) {
	opts = opts.withDefaults()
	fields := opts.Fields.Songs

	sum := Summary{Dataset: types.DatasetSongs, Rows: len(t.Rows)}
	sum.Failed = reportIssues(t, w)

	songs := make([]types.Song, 0, len(t.Rows))
	for i, row := range t.Rows {
		songs = append(songs, songFromRow(row, i+1, fields, opts.GrooveHost))
		sum.Records++
	}

	fmt.Fprintf(w, "songs: %d rows, %d converted, %d failed\n", sum.Rows, sum.Records, sum.Failed)
	return songs, sum
}

func songFromRow(row csvio.Row, n int, fields map[string][]string, grooveHost string) types.Song {
	get := func(field string) string {
		return row.Get(fields[field]...)
	}

	title := get("title")
	if title == "" {
		title = fmt.Sprintf("Song #%d", n)
	}
	artist := get("artist")
	if artist == "" {
		artist = "Unknown Artist"
	}

	// Genre, BPM, and length become the description. The legacy database
	// stored 0 for unset numeric columns; those are as empty as "".
	var desc []string
	if genre := get("genre"); genre != "" && genre != "0" {
		desc = append(desc, "Genre: "+genre)
	}
	if bpm := get("bpm"); bpm != "" && bpm != "0" {
		desc = append(desc, "BPM: "+bpm)
	}
	if length := get("length"); length != "" && length != "0" {
		desc = append(desc, "Lengte: "+length)
	}

	var parts []string
	if youtube := get("youtube"); youtube != "" {
		if iframe := media.YouTubeEmbed(youtube); iframe != "" {
			parts = append(parts, iframe)
		}
	}
	if spotify := get("spotify"); spotify != "" {
		parts = append(parts, "Spotify: "+spotify)
	}
	if apple := get("apple_music"); apple != "" {
		parts = append(parts, "Apple Music: "+apple)
	}
	if lyrics := get("lyrics"); lyrics != "" {
		parts = append(parts, "Lyrics: "+lyrics)
	}

	// Up to three notation blocks, each with its own remark column.
	for i := 1; i <= 3; i++ {
		notation := get(fmt.Sprintf("notation%d", i))
		if notation == "" {
			continue
		}
		groove := media.Groovescribe(notation, grooveHost)
		if groove == "" {
			continue
		}
		parts = append(parts, groove)
		if note := get(fmt.Sprintf("note%d", i)); note != "" {
			parts = append(parts, "Note: "+note)
		}
	}

	return types.Song{
		Title:       title,
		Artist:      artist,
		Instrument:  "drums",
		Level:       "all",
		Description: strings.Join(desc, " | "),
		Content:     strings.Join(parts, "\n\n"),
	}
}
