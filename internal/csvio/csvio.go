// Copyright Musicdott B.V., 2026. All rights reserved.

// Package csvio reads legacy Musicdott 1.0 CSV exports. The exports come
// from a mix of Windows and Mac installs, so files arrive in UTF-8,
// Windows-1252, or ISO-8859-1, with ragged rows and stray quoting. Reading
// is tolerant: a row that fails to parse is recorded as an issue and
// skipped, never fatal.
package csvio

import (
	"bytes"
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Encoding names reported by DecodeBytes.
const (
	EncodingUTF8        = "utf-8"
	EncodingWindows1252 = "windows-1252"
	EncodingISO8859_1   = "iso-8859-1"
)

// utf8BOM is the byte order mark some Windows exports prepend.
var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// Row is one data row keyed by header name. Missing columns read as "".
type Row map[string]string

// Get returns the first usable value among the alias keys: trimmed, with
// the literal "nan" (a pandas export artifact) treated as empty.
func (r Row) Get(keys ...string) string {
	for _, k := range keys {
		v := strings.TrimSpace(r[k])
		if v == "" || strings.EqualFold(v, "nan") {
			continue
		}
		return v
	}
	return ""
}

// RowIssue records a source row that could not be parsed.
type RowIssue struct {
	// Line is the 1-based line in the source file, 0 when unknown.
	Line int

	Message string
}

// Table is a fully parsed export file.
type Table struct {
	Path     string
	Encoding string

	// SHA256 is the hex digest of the raw file bytes.
	SHA256 string

	Header []string
	Rows   []Row

	// Issues lists rows skipped during parsing.
	Issues []RowIssue
}

// ReadFile reads and parses a legacy export. The file is decoded with the
// fallback chain in DecodeBytes; the first row is the header. Unparseable
// rows land in Table.Issues.
func ReadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	text, encoding := DecodeBytes(data)
	sum := sha256.Sum256(data)

	t := &Table{
		Path:     path,
		Encoding: encoding,
		SHA256:   hex.EncodeToString(sum[:]),
	}
	if err := t.parse(text); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return t, nil
}

func (t *Table) parse(text string) error {
	r := csv.NewReader(strings.NewReader(text))
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading header: %w", err)
	}
	t.Header = header

	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			line := 0
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				line = pe.Line
			}
			t.Issues = append(t.Issues, RowIssue{Line: line, Message: err.Error()})
			continue
		}

		row := make(Row, len(header))
		for i, name := range header {
			if i < len(rec) {
				row[name] = rec[i]
			}
		}
		t.Rows = append(t.Rows, row)
	}
}

// DecodeBytes converts raw export bytes to a string, trying UTF-8 first,
// then Windows-1252, then ISO-8859-1. Windows-1252 is rejected when the
// decode produces replacement runes (bytes 0x81, 0x8D, 0x8F, 0x90, 0x9D are
// unmapped there); ISO-8859-1 maps every byte, so the chain always yields
// text. Returns the decoded string and the encoding name used.
func DecodeBytes(data []byte) (string, string) {
	data = bytes.TrimPrefix(data, utf8BOM)

	if utf8.Valid(data) {
		return string(data), EncodingUTF8
	}

	if s, err := charmap.Windows1252.NewDecoder().Bytes(data); err == nil {
		if !bytes.ContainsRune(s, utf8.RuneError) {
			return string(s), EncodingWindows1252
		}
	}

	s, _ := charmap.ISO8859_1.NewDecoder().Bytes(data)
	return string(s), EncodingISO8859_1
}
