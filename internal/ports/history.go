package ports

import "github.com/doeshing/typecmd/internal/domain"

// HistoryLog is the bounded, ordered command log a session replays from.
type HistoryLog interface {
	Add(command string) (domain.HistoryEntry, bool, error)
	Entries(limit int) []domain.HistoryEntry
	ByID(id uint64) (domain.HistoryEntry, bool)
	Last() (domain.HistoryEntry, bool)
	FromEnd(offset int) (domain.HistoryEntry, bool)
	Search(keyword string) []domain.HistoryEntry
	Clear() error
	Count() int
	Path() string
}
