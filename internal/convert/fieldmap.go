// Copyright Musicdott B.V., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// FieldMap lists, per dataset, the header aliases for each canonical
// field in priority order. The defaults cover the legacy export's dual
// naming: prefixed columns from the 1.0 database (soTitel, noNotatie,
// stVoornaam) and the bare names some re-exports used (titel, notatie).
type FieldMap struct {
	Songs    map[string][]string `yaml:"songs"`
	Notation map[string][]string `yaml:"notation"`
	Students map[string][]string `yaml:"students"`
}

// DefaultFieldMap returns the alias tables for the standard 1.0 exports.
func DefaultFieldMap() *FieldMap {
	return &FieldMap{
		Songs: map[string][]string{
			"title":       {"soTitel", "titel"},
			"artist":      {"soArtiest", "artiest"},
			"genre":       {"soGenre", "genre"},
			"bpm":         {"soBPM", "bpm"},
			"length":      {"soLengte", "lengte"},
			"youtube":     {"soYouTube", "youtube"},
			"spotify":     {"soSpotify", "spotify"},
			"apple_music": {"soAppleMusic", "apple_music"},
			"lyrics":      {"soLyrics", "lyrics"},
			"notation1":   {"soNotatie01", "notatie01"},
			"notation2":   {"soNotatie02", "notatie02"},
			"notation3":   {"soNotatie03", "notatie03"},
			"note1":       {"soOpmerkingen01", "opmerkingen01"},
			"note2":       {"soOpmerkingen02", "opmerkingen02"},
			"note3":       {"soOpmerkingen03", "opmerkingen03"},
		},
		Notation: map[string][]string{
			"category":  {"noCategorie", "categorie"},
			"chapter":   {"noHoofdstuk", "hoofdstuk"},
			"sequence":  {"noVolgnummer", "volgnummer"},
			"remarks":   {"noOpmerkingen", "opmerkingen"},
			"notation":  {"noNotatie", "notatie"},
			"video":     {"noVideo", "video"},
			"musescore": {"noMusescore", "musescore"},
			"musicxml":  {"musicxml"},
			"pdf":       {"noPDFlesson", "pdf_lesson"},
			"mp3":       {"noMP3", "mp3"},
		},
		Students: map[string][]string{
			"id":         {"stid"},
			"first_name": {"stVoornaam"},
			"last_name":  {"stNaam"},
			"email":      {"stEmail"},
			"phone":      {"stTelefoonmobiel", "stTelefoonvast"},
			"city":       {"stWoonplaats"},
			"notes":      {"stOpmerkingen"},
			"day1":       {"stLesdag1"},
			"time1":      {"stLestijd1"},
			"duration1":  {"stLesduur1"},
			"day2":       {"stLesdag2"},
			"time2":      {"stLestijd2"},
			"duration2":  {"stLesduur2"},
		},
	}
}

// LoadFieldMap reads a YAML override file and merges it over the defaults.
// Only the fields present in the file are replaced, so an override for a
// re-export with one renamed column stays one line long.
func LoadFieldMap(path string) (*FieldMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading field map: %w", err)
	}

	var override FieldMap
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("parsing field map %s: %w", path, err)
	}

	m := DefaultFieldMap()
	merge(m.Songs, override.Songs)
	merge(m.Notation, override.Notation)
	merge(m.Students, override.Students)
	return m, nil
}

func merge(dst, src map[string][]string) {
	for field, aliases := range src {
		dst[field] = aliases
	}
}
