// Copyright Musicdott B.V., 2026. All rights reserved.

// Package manifest maintains the YAML summary written next to the JSON
// outputs. The 2.0 import team reads it to verify which export files, at
// which checksums, produced the documents they are loading.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/jeroenhonig/Musicdott/pkg/types"
)

// FileName is the manifest's name inside the output directory.
const FileName = "musicdott2_manifest.yaml"

// Manifest is the on-disk summary of all converted datasets. Converting
// one dataset replaces only its own entry, so a full dump can be migrated
// in separate invocations.
type Manifest struct {
	Tool        string    `yaml:"tool"`
	Version     string    `yaml:"version"`
	GeneratedAt time.Time `yaml:"generated_at"`

	// Datasets is keyed by dataset name (songs, notation, students).
	Datasets map[string]Entry `yaml:"datasets"`
}

// Entry records one dataset conversion.
type Entry struct {
	Source   string `yaml:"source"`
	SHA256   string `yaml:"sha256"`
	Encoding string `yaml:"encoding"`

	Rows    int `yaml:"rows"`
	Records int `yaml:"records"`
	Extra   int `yaml:"extra,omitempty"`
	Failed  int `yaml:"failed"`

	Outputs     []string  `yaml:"outputs"`
	ConvertedAt time.Time `yaml:"converted_at"`
}

// Load reads the manifest from dir. A missing file yields a fresh,
// empty manifest.
func Load(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if os.IsNotExist(err) {
		return &Manifest{Datasets: map[string]Entry{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if m.Datasets == nil {
		m.Datasets = map[string]Entry{}
	}
	return &m, nil
}

// Update replaces the entry for one dataset.
func (m *Manifest) Update(dataset types.Dataset, e Entry) {
	m.Datasets[string(dataset)] = e
}

// Write saves the manifest to dir, stamping tool name, version, and time.
func (m *Manifest) Write(dir, version string) error {
	m.Tool = "musicdott-migrate"
	m.Version = version
	m.GeneratedAt = time.Now().UTC()

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	return os.WriteFile(filepath.Join(dir, FileName), data, 0o644)
}
