package domain

// Config mirrors ~/.typecmd/config.yaml.
type Config struct {
	ConfigFormatVersion string          `yaml:"config_format_version"`
	History             HistorySettings `yaml:"history"`
	Display             DisplaySettings `yaml:"display"`
}

// HistorySettings controls the persisted command log.
type HistorySettings struct {
	Backend string `yaml:"backend"`
	File    string `yaml:"file"`
	MaxSize int    `yaml:"max_size"`
}

// DisplaySettings controls console output.
type DisplaySettings struct {
	Color        bool `yaml:"color"`
	PromptCounts bool `yaml:"prompt_counts"`
}

// History backends.
const (
	HistoryBackendFile   = "file"
	HistoryBackendSQLite = "sqlite"
)
