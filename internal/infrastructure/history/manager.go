// Package history keeps the bounded command log and its durable backends.
package history

import (
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/doeshing/typecmd/internal/domain"
	"github.com/doeshing/typecmd/internal/ports"
)

// Manager is the in-memory history log. Entries are kept in insertion
// order, ids grow monotonically and are never reused, and the oldest entry
// is evicted once the log exceeds its maximum size.
type Manager struct {
	entries []domain.HistoryEntry
	nextID  uint64
	maxSize int
	repo    ports.HistoryRepository
	now     func() time.Time
	fold    cases.Caser
}

// NewManager loads the log from repo (which may be nil for a purely
// in-memory log). A load failure is returned to the caller.
func NewManager(repo ports.HistoryRepository, maxSize int) (*Manager, error) {
	if maxSize <= 0 {
		maxSize = domain.DefaultMaxHistorySize
	}
	m := &Manager{
		nextID:  1,
		maxSize: maxSize,
		repo:    repo,
		now:     time.Now,
		fold:    cases.Fold(),
	}
	if repo == nil {
		return m, nil
	}

	loaded, err := repo.Load()
	if err != nil {
		return nil, domain.NewIOError("load history", err)
	}
	for _, e := range loaded {
		m.entries = append(m.entries, e)
		if e.ID >= m.nextID {
			m.nextID = e.ID + 1
		}
	}
	m.evict()
	return m, nil
}

// Add records command when it qualifies for the log and persists the whole
// log. The in-memory append stands even when persisting fails; the returned
// error is then an I/O error the caller may treat as a warning.
func (m *Manager) Add(command string) (domain.HistoryEntry, bool, error) {
	command = strings.TrimSpace(command)
	if !domain.Recordable(command) {
		return domain.HistoryEntry{}, false, nil
	}

	entry := domain.HistoryEntry{
		ID:        m.nextID,
		Command:   command,
		Timestamp: m.now(),
	}
	m.entries = append(m.entries, entry)
	m.nextID++
	m.evict()

	if err := m.persist(); err != nil {
		return entry, true, err
	}
	return entry, true, nil
}

func (m *Manager) evict() {
	if over := len(m.entries) - m.maxSize; over > 0 {
		m.entries = append([]domain.HistoryEntry(nil), m.entries[over:]...)
	}
}

func (m *Manager) persist() error {
	if m.repo == nil {
		return nil
	}
	if err := m.repo.Save(m.entries); err != nil {
		return domain.NewIOError("save history", err)
	}
	return nil
}

// Entries returns the most recent limit entries in chronological order, or
// all of them for domain.NoLimit.
func (m *Manager) Entries(limit int) []domain.HistoryEntry {
	start := 0
	if limit != domain.NoLimit && limit < len(m.entries) {
		start = len(m.entries) - limit
	}
	out := make([]domain.HistoryEntry, len(m.entries)-start)
	copy(out, m.entries[start:])
	return out
}

// ByID looks an entry up by id.
func (m *Manager) ByID(id uint64) (domain.HistoryEntry, bool) {
	for _, e := range m.entries {
		if e.ID == id {
			return e, true
		}
	}
	return domain.HistoryEntry{}, false
}

// Last returns the most recent entry.
func (m *Manager) Last() (domain.HistoryEntry, bool) {
	return m.FromEnd(1)
}

// FromEnd returns the offset-th most recent entry; 1 is the most recent.
func (m *Manager) FromEnd(offset int) (domain.HistoryEntry, bool) {
	if offset < 1 || offset > len(m.entries) {
		return domain.HistoryEntry{}, false
	}
	return m.entries[len(m.entries)-offset], true
}

// Search returns entries whose command contains keyword, ignoring case.
func (m *Manager) Search(keyword string) []domain.HistoryEntry {
	needle := m.fold.String(keyword)
	var out []domain.HistoryEntry
	for _, e := range m.entries {
		if strings.Contains(m.fold.String(e.Command), needle) {
			out = append(out, e)
		}
	}
	return out
}

// Clear drops every entry, resets the id counter and removes the backing
// store.
func (m *Manager) Clear() error {
	m.entries = nil
	m.nextID = 1
	if m.repo == nil {
		return nil
	}
	if err := m.repo.Clear(); err != nil {
		return domain.NewIOError("clear history", err)
	}
	return nil
}

// Count returns the number of entries.
func (m *Manager) Count() int {
	return len(m.entries)
}

// NextID returns the id the next recorded entry will get.
func (m *Manager) NextID() uint64 {
	return m.nextID
}

// Path returns the backing store location, or "" for an in-memory log.
func (m *Manager) Path() string {
	if m.repo == nil {
		return ""
	}
	return m.repo.Path()
}

var _ ports.HistoryLog = (*Manager)(nil)
