//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// sampleDir is where Sample writes its miniature export.
const sampleDir = "testdata/sample"

// sampleFiles holds a miniature 1.0 export covering all three datasets,
// small enough to eyeball the generated JSON by hand.
var sampleFiles = map[string]string{
	"songs.csv": "soTitel,soArtiest,soGenre,soBPM,soYouTube,soNotatie01,soOpmerkingen01\n" +
		"Spain,Chick Corea,Fusion,100,https://www.youtube.com/watch?v=abc123xyz00,?TimeSig=4/4&Div=16&Tempo=100,Watch the unison break\n" +
		"Rosanna,Toto,Pop,84,https://youtu.be/qrs456tuv78,,\n",
	"notation.csv": "noCategorie,noHoofdstuk,noVolgnummer,noNotatie,noOpmerkingen\n" +
		"Rudiments,Paradiddles,3,?TimeSig=4/4&Div=16&Tempo=80,Lead with the left hand too\n" +
		"Fills,,12,?TimeSig=4/4&Div=16&Tempo=95,\n",
	"students.csv": "stid,stVoornaam,stNaam,stEmail,stWoonplaats,stLesdag1,stLestijd1,stLesduur1\n" +
		"7,Anna,de Vries,anna@example.com,Utrecht,ma,15.30,45\n" +
		"12,Boris,Jansen,,,do,9:05,\n",
}

// Sample writes a miniature legacy export under testdata/sample/ for
// exercising the full pipeline by hand:
//
//	mage sample
//	bin/musicdott-migrate all --songs testdata/sample/songs.csv \
//	    --notation testdata/sample/notation.csv \
//	    --students testdata/sample/students.csv
func Sample() error {
	if err := os.MkdirAll(sampleDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", sampleDir, err)
	}
	for name, content := range sampleFiles {
		path := filepath.Join(sampleDir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Println("  ", path)
	}
	fmt.Printf("Sample export written to %s.\n", sampleDir)
	return nil
}
