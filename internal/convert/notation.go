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

// Notation converts a parsed POS_Notatie export to 2.0 lesson records.
func Notation(t *csvio.Table, opts Options, w io.Writer) ([]types.Lesson, Summary) {
	opts = opts.withDefaults()
	fields := opts.Fields.Notation

	sum := Summary{Dataset: types.DatasetNotation, Rows: len(t.Rows)}
	sum.Failed = reportIssues(t, w)

	lessons := make([]types.Lesson, 0, len(t.Rows))
	for i, row := range t.Rows {
		lessons = append(lessons, lessonFromRow(row, i+1, fields, opts.GrooveHost))
		sum.Records++
	}

	fmt.Fprintf(w, "notation: %d rows, %d converted, %d failed\n", sum.Rows, sum.Records, sum.Failed)
	return lessons, sum
}

func lessonFromRow(row csvio.Row, n int, fields map[string][]string, grooveHost string) types.Lesson {
	get := func(field string) string {
		return row.Get(fields[field]...)
	}

	// Title from the method hierarchy: category, chapter, sequence number.
	// Patterns filed outside a chapter drop the middle part.
	category := get("category")
	chapter := get("chapter")
	sequence := get("sequence")

	var title string
	switch {
	case category != "" && chapter != "" && sequence != "":
		title = fmt.Sprintf("%s – %s – #%s", category, chapter, sequence)
	case category != "" && sequence != "":
		title = fmt.Sprintf("%s – #%s", category, sequence)
	default:
		title = fmt.Sprintf("Pattern #%d", n)
	}

	var parts []string
	if notation := get("notation"); notation != "" {
		if groove := media.Groovescribe(notation, grooveHost); groove != "" {
			parts = append(parts, groove)
		}
	}
	if video := get("video"); video != "" {
		if iframe := media.YouTubeEmbed(video); iframe != "" {
			parts = append(parts, "Video: "+iframe)
		}
	}
	if musescore := get("musescore"); musescore != "" {
		parts = append(parts, "MuseScore: "+musescore)
	}
	if musicxml := get("musicxml"); musicxml != "" {
		parts = append(parts, "MusicXML: "+musicxml)
	}
	if pdf := get("pdf"); pdf != "" {
		parts = append(parts, "PDF: "+pdf)
	}
	if mp3 := get("mp3"); mp3 != "" {
		parts = append(parts, "MP3: "+mp3)
	}

	return types.Lesson{
		Title:       title,
		Description: get("remarks"),
		ContentType: "notation",
		Instrument:  "drums",
		Level:       "all",
		Content:     strings.Join(parts, "\n\n"),
	}
}
