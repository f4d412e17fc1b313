package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// FilePermissions is the permission for the history and config files (rw-r--r--)
	FilePermissions = 0o644
)

// History constants
const (
	// DefaultMaxHistorySize is the number of entries kept before the oldest is evicted
	DefaultMaxHistorySize = 1000
	// DefaultHistoryFile is the history file name under the home directory
	DefaultHistoryFile = ".typecmd_history"
	// DefaultHistoryDatabase is the sqlite database name under the home directory
	DefaultHistoryDatabase = ".typecmd_history.db"
	// MaxSearchResults caps the entries shown by history search
	MaxSearchResults = 20
)

// Product constants
const (
	ProductName = "TypeCmd"
	License     = "MIT license"
)

// Time formats
const (
	// TimestampFormat is the persisted timestamp format. Fractional seconds
	// are written when present and optional when reading.
	TimestampFormat = time.RFC3339Nano
	// ClockFormat is used when listing history entries
	ClockFormat = "15:04:05"
)
