// Copyright Musicdott B.V., 2026. All rights reserved.

package convert

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeroenhonig/Musicdott/pkg/types"
)

func TestWriteJSONKeepsMarkup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", SongsOutput)
	songs := []types.Song{{
		Title:      "Groove Test",
		Artist:     "Unknown Artist",
		Instrument: "drums",
		Level:      "all",
		Content:    `<iframe width="100%" height="240" src="https://teacher.musicdott.com/groovescribe/GrooveEmbed.html?TimeSig=4/4&Div=16" frameborder="0"></iframe>`,
	}}

	require.NoError(t, WriteJSON(path, songs))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	// Markup must survive byte-for-byte: with HTML escaping on, the
	// encoder would rewrite "<" and "&" as u003c/u0026 sequences and
	// break the embeds.
	assert.Contains(t, string(raw), "<iframe")
	assert.Contains(t, string(raw), "TimeSig=4/4&Div=16")
	assert.NotContains(t, string(raw), "u003c")
	assert.NotContains(t, string(raw), "u0026")

	var back []types.Song
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, songs, back)
}

func TestWriteJSONIndentation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lessons.json")
	require.NoError(t, WriteJSON(path, []types.Lesson{{Title: "Pattern #1"}}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "[\n  {\n    "), "expected two-space indent, got %q", string(raw))
}

func TestStudentNullFields(t *testing.T) {
	data, err := json.Marshal(types.Student{ID: "7", FirstName: "Jan", Instrument: "drums"})
	require.NoError(t, err)

	// Absent contact fields serialize as null, not "" and not omitted.
	for _, key := range []string{`"email":null`, `"phone":null`, `"city":null`, `"notes":null`} {
		assert.Contains(t, string(data), key)
	}
}

func TestSummary(t *testing.T) {
	s := Summary{Dataset: types.DatasetStudents, Rows: 10, Records: 9, Extra: 12, Failed: 1}
	assert.Equal(t, 21, s.Total())
	assert.True(t, s.HasFailures())

	assert.False(t, Summary{Records: 5}.HasFailures())
}
