// Copyright Musicdott B.V., 2026. All rights reserved.

package convert

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeroenhonig/Musicdott/internal/csvio"
)

func TestDefaultFieldMap(t *testing.T) {
	m := DefaultFieldMap()

	assert.Equal(t, []string{"soTitel", "titel"}, m.Songs["title"])
	assert.Equal(t, []string{"noVolgnummer", "volgnummer"}, m.Notation["sequence"])
	assert.Equal(t, []string{"stTelefoonmobiel", "stTelefoonvast"}, m.Students["phone"])
	assert.Equal(t, []string{"musicxml"}, m.Notation["musicxml"])
}

func TestLoadFieldMapMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fieldmap.yaml")
	override := `songs:
  title: ["songTitle", "name"]
students:
  email: ["emailAddress"]
`
	require.NoError(t, os.WriteFile(path, []byte(override), 0o644))

	m, err := LoadFieldMap(path)
	require.NoError(t, err)

	// Overridden fields.
	assert.Equal(t, []string{"songTitle", "name"}, m.Songs["title"])
	assert.Equal(t, []string{"emailAddress"}, m.Students["email"])

	// Everything else keeps the defaults.
	assert.Equal(t, []string{"soArtiest", "artiest"}, m.Songs["artist"])
	assert.Equal(t, []string{"noNotatie", "notatie"}, m.Notation["notation"])
}

func TestLoadFieldMapErrors(t *testing.T) {
	_, err := LoadFieldMap(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("songs: [not: a: map"), 0o644))
	_, err = LoadFieldMap(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing field map")
}

func TestFieldMapDrivesConversion(t *testing.T) {
	// A re-export with renamed headers converts once the map points at them.
	table := &csvio.Table{Rows: []csvio.Row{{
		"songTitle": "Take Five",
		"artiest":   "The Dave Brubeck Quartet",
	}}}

	m := DefaultFieldMap()
	m.Songs["title"] = []string{"songTitle"}

	songs, _ := Songs(table, Options{Fields: m}, io.Discard)
	assert.Equal(t, "Take Five", songs[0].Title)
	assert.Equal(t, "The Dave Brubeck Quartet", songs[0].Artist)
}
