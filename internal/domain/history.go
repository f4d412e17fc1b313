package domain

import (
	"strings"
	"time"
)

// HistoryEntry is one recorded command line.
type HistoryEntry struct {
	ID        uint64    `json:"id"`
	Command   string    `json:"command"`
	Timestamp time.Time `json:"timestamp"`
}

// Recordable reports whether a trimmed input line belongs in the history log
// by its raw text. Lines starting with "history" or "!" are skipped; the
// match is case-sensitive. Quoted or escaped spellings of history commands
// are caught after resolution with IsHistoryMeta.
func Recordable(line string) bool {
	if line == "" {
		return false
	}
	return !strings.HasPrefix(line, "history") && !strings.HasPrefix(line, "!")
}
