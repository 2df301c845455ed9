package types

// OutputConfig holds settings for JSON emission.
type OutputConfig struct {
	// Dir is the directory the JSON files are written to (default "export").
	Dir string `json:"dir" yaml:"dir"`
}

// ScheduleConfig holds settings for lesson schedule generation.
type ScheduleConfig struct {
	// Timezone is the IANA zone lesson times are local to
	// (default "Europe/Amsterdam").
	Timezone string `json:"timezone" yaml:"timezone"`

	// DefaultLessonMinutes is used when a slot has no parseable duration
	// (default 30).
	DefaultLessonMinutes int `json:"default_lesson_minutes" yaml:"default_lesson_minutes"`
}

// EmbedConfig holds settings for media embed normalization.
type EmbedConfig struct {
	// GrooveHost is the canonical Groovescribe embed endpoint every
	// notation variant is rewritten to.
	GrooveHost string `json:"groove_host" yaml:"groove_host"`
}

// LedgerConfig holds settings for the migration run ledger.
type LedgerConfig struct {
	// Path is the SQLite database file (default "<output dir>/migration.db").
	Path string `json:"path" yaml:"path"`

	// Disabled turns off run recording entirely.
	Disabled bool `json:"disabled" yaml:"disabled"`
}

// MigrationConfig groups all tool configuration.
type MigrationConfig struct {
	Output   OutputConfig   `json:"output" yaml:"output"`
	Schedule ScheduleConfig `json:"schedule" yaml:"schedule"`
	Embed    EmbedConfig    `json:"embed" yaml:"embed"`
	Ledger   LedgerConfig   `json:"ledger" yaml:"ledger"`
}
