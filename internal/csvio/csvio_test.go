// Copyright Musicdott B.V., 2026. All rights reserved.

package csvio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBytes(t *testing.T) {
	tests := []struct {
		name         string
		data         []byte
		want         string
		wantEncoding string
	}{
		{
			name:         "plain ascii is utf-8",
			data:         []byte("soTitel,soArtiest\n"),
			want:         "soTitel,soArtiest\n",
			wantEncoding: EncodingUTF8,
		},
		{
			name:         "valid utf-8 multibyte",
			data:         []byte("Beyoncé"),
			want:         "Beyoncé",
			wantEncoding: EncodingUTF8,
		},
		{
			name:         "utf-8 BOM is stripped",
			data:         append([]byte{0xef, 0xbb, 0xbf}, []byte("stid,stNaam")...),
			want:         "stid,stNaam",
			wantEncoding: EncodingUTF8,
		},
		{
			name:         "windows-1252 smart quotes",
			data:         []byte{0x93, 'r', 'o', 'c', 'k', 0x94},
			want:         "“rock”",
			wantEncoding: EncodingWindows1252,
		},
		{
			name:         "windows-1252 accented vowel",
			data:         []byte{'C', 0xe9, 'l', 'i', 'n', 'e'},
			want:         "Céline",
			wantEncoding: EncodingWindows1252,
		},
		{
			name:         "bytes unmapped in windows-1252 fall through to iso-8859-1",
			data:         []byte{'a', 0x81, 'b'},
			want:         "a\u0081b",
			wantEncoding: EncodingISO8859_1,
		},
		{
			name:         "empty input",
			data:         nil,
			want:         "",
			wantEncoding: EncodingUTF8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, encoding := DecodeBytes(tt.data)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantEncoding, encoding)
		})
	}
}

func TestRowGet(t *testing.T) {
	row := Row{
		"soTitel":   "  Superstition  ",
		"titel":     "ignored",
		"soArtiest": "nan",
		"artiest":   "Stevie Wonder",
		"soGenre":   "NaN",
		"soBPM":     "",
	}

	tests := []struct {
		name string
		keys []string
		want string
	}{
		{"first alias wins when set", []string{"soTitel", "titel"}, "Superstition"},
		{"nan falls through to next alias", []string{"soArtiest", "artiest"}, "Stevie Wonder"},
		{"nan is case-insensitive", []string{"soGenre", "genre"}, ""},
		{"empty value falls through", []string{"soBPM", "bpm"}, ""},
		{"missing key reads empty", []string{"noSuchColumn"}, ""},
		{"no keys", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, row.Get(tt.keys...))
		})
	}
}

func TestReadFile(t *testing.T) {
	path := writeTemp(t, "songs.csv",
		"soTitel,soArtiest,soBPM\n"+
			"Superstition,Stevie Wonder,100\n"+
			"Short Row,Only Artist\n"+
			"\"Comma, Title\",Quoted,120\n")

	table, err := ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, path, table.Path)
	assert.Equal(t, EncodingUTF8, table.Encoding)
	assert.Len(t, table.SHA256, 64)
	assert.Equal(t, []string{"soTitel", "soArtiest", "soBPM"}, table.Header)
	require.Len(t, table.Rows, 3)

	assert.Equal(t, "Superstition", table.Rows[0].Get("soTitel"))
	assert.Equal(t, "100", table.Rows[0].Get("soBPM"))

	// Ragged row: the missing column reads as empty.
	assert.Equal(t, "Short Row", table.Rows[1].Get("soTitel"))
	assert.Equal(t, "", table.Rows[1].Get("soBPM"))

	assert.Equal(t, "Comma, Title", table.Rows[2].Get("soTitel"))
	assert.Empty(t, table.Issues)
}

func TestReadFileWindows1252(t *testing.T) {
	// "Crème" with 0xE8 (è) as exported by the old Windows build, plus a BOM-free header.
	data := append([]byte("soTitel,soArtiest\nCr"), 0xe8)
	data = append(data, []byte("me,Ren")...)
	data = append(data, 0xe9)
	data = append(data, '\n')

	path := filepath.Join(t.TempDir(), "legacy.csv")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	table, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, EncodingWindows1252, table.Encoding)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Crème", table.Rows[0].Get("soTitel"))
	assert.Equal(t, "René", table.Rows[0].Get("soArtiest"))
}

func TestReadFileBOMHeader(t *testing.T) {
	path := writeTemp(t, "bom.csv", "\xef\xbb\xbfstid,stNaam\n7,Jansen\n")

	table, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"stid", "stNaam"}, table.Header)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "7", table.Rows[0].Get("stid"))
}

func TestReadFileEmpty(t *testing.T) {
	path := writeTemp(t, "empty.csv", "")

	table, err := ReadFile(path)
	require.NoError(t, err)
	assert.Nil(t, table.Header)
	assert.Empty(t, table.Rows)
}

func TestReadFileDuplicateHeader(t *testing.T) {
	// The legacy export sometimes repeats a column; the last one wins,
	// matching how the 1.0 exporter's own tooling read these files.
	path := writeTemp(t, "dup.csv", "titel,titel\nfirst,second\n")

	table, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "second", table.Rows[0].Get("titel"))
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
