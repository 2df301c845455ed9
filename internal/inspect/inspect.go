// Copyright Musicdott B.V., 2026. All rights reserved.

// Package inspect surveys an export dump before migration. Schools hand in
// directories with years of exports in arbitrary layouts; Scan finds the
// CSV files and classifies each one by its header so the operator knows
// which file feeds which converter.
package inspect

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/jeroenhonig/Musicdott/internal/csvio"
	"github.com/jeroenhonig/Musicdott/pkg/types"
)

// DefaultPattern matches every CSV in the dump tree.
const DefaultPattern = "**/*.csv"

// FileInfo describes one export file found in a dump.
type FileInfo struct {
	// Path is relative to the scanned directory, slash-separated.
	Path string `json:"path"`

	Dataset  types.Dataset `json:"dataset"`
	Encoding string        `json:"encoding"`
	Columns  int           `json:"columns"`
	Rows     int           `json:"rows"`
}

// Scan walks dir with doublestar glob patterns (DefaultPattern when none
// are given) and classifies every matching file.
func Scan(dir string, patterns []string) ([]FileInfo, error) {
	if len(patterns) == 0 {
		patterns = []string{DefaultPattern}
	}
	fsys := os.DirFS(dir)

	seen := map[string]bool{}
	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}
	sort.Strings(paths)

	infos := make([]FileInfo, 0, len(paths))
	for _, p := range paths {
		full := filepath.Join(dir, filepath.FromSlash(p))
		st, err := os.Stat(full)
		if err != nil || st.IsDir() {
			continue
		}

		table, err := csvio.ReadFile(full)
		if err != nil {
			return nil, err
		}
		infos = append(infos, FileInfo{
			Path:     p,
			Dataset:  Classify(table.Header),
			Encoding: table.Encoding,
			Columns:  len(table.Header),
			Rows:     len(table.Rows),
		})
	}
	return infos, nil
}

// Classify determines which converter a file belongs to from its header.
// Column matching is case-insensitive; both the prefixed 1.0 names and the
// bare re-export names are recognized.
func Classify(header []string) types.Dataset {
	cols := make(map[string]bool, len(header))
	for _, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = true
	}

	switch {
	case cols["sotitel"] || cols["soartiest"] || (cols["titel"] && cols["artiest"]):
		return types.DatasetSongs
	case cols["nonotatie"] || cols["nocategorie"] || (cols["notatie"] && cols["volgnummer"]):
		return types.DatasetNotation
	case cols["stid"] || cols["stvoornaam"] || cols["stnaam"]:
		return types.DatasetStudents
	default:
		return types.DatasetUnknown
	}
}
