package history

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/typecmd/internal/domain"
)

type memoryRepo struct {
	saved   []domain.HistoryEntry
	loaded  []domain.HistoryEntry
	saveErr error
	loadErr error
	cleared int
	saves   int
}

func (r *memoryRepo) Load() ([]domain.HistoryEntry, error) { return r.loaded, r.loadErr }

func (r *memoryRepo) Save(entries []domain.HistoryEntry) error {
	r.saves++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = append([]domain.HistoryEntry(nil), entries...)
	return nil
}

func (r *memoryRepo) Clear() error { r.cleared++; return nil }
func (r *memoryRepo) Path() string { return "memory" }

func TestManagerAssignsIncreasingIDs(t *testing.T) {
	m, err := NewManager(nil, 10)
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		entry, recorded, err := m.Add(fmt.Sprintf("set v%d x", i))
		require.NoError(t, err)
		require.True(t, recorded)
		assert.Equal(t, uint64(i), entry.ID)
	}
	assert.Equal(t, 3, m.Count())
}

func TestManagerSkipsMetaCommands(t *testing.T) {
	m, err := NewManager(nil, 10)
	require.NoError(t, err)

	for _, line := range []string{"history", "history search x", "historyfoo", "!!", "! 3", "!-1", "", "   "} {
		_, recorded, err := m.Add(line)
		require.NoError(t, err)
		assert.False(t, recorded, "line %q must not be recorded", line)
	}
	assert.Equal(t, 0, m.Count())
	assert.Equal(t, uint64(1), m.NextID())
}

func TestManagerEvictsOldestWithoutResettingIDs(t *testing.T) {
	const capacity = 3
	m, err := NewManager(nil, capacity)
	require.NoError(t, err)

	for i := 1; i <= capacity+1; i++ {
		_, _, err := m.Add(fmt.Sprintf("string %d", i))
		require.NoError(t, err)
	}

	entries := m.Entries(domain.NoLimit)
	require.Len(t, entries, capacity)
	assert.Equal(t, uint64(2), entries[0].ID)
	assert.Equal(t, "string 4", entries[capacity-1].Command)
	_, ok := m.ByID(1)
	assert.False(t, ok)

	next, _, err := m.Add("string 5")
	require.NoError(t, err)
	assert.Equal(t, uint64(capacity+2), next.ID)
}

func TestManagerLookups(t *testing.T) {
	m, err := NewManager(nil, 10)
	require.NoError(t, err)
	for _, c := range []string{"set a 1", "get a", "SET b Hello"} {
		_, _, err := m.Add(c)
		require.NoError(t, err)
	}

	last, ok := m.Last()
	require.True(t, ok)
	assert.Equal(t, "SET b Hello", last.Command)

	first, ok := m.FromEnd(3)
	require.True(t, ok)
	assert.Equal(t, "set a 1", first.Command)

	_, ok = m.FromEnd(0)
	assert.False(t, ok)
	_, ok = m.FromEnd(4)
	assert.False(t, ok)

	byID, ok := m.ByID(2)
	require.True(t, ok)
	assert.Equal(t, "get a", byID.Command)

	recent := m.Entries(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "get a", recent[0].Command)
	assert.Empty(t, m.Entries(0))

	found := m.Search("set")
	require.Len(t, found, 2)
	assert.Equal(t, uint64(3), found[1].ID)
}

func TestManagerClearResetsCounter(t *testing.T) {
	repo := &memoryRepo{}
	m, err := NewManager(repo, 10)
	require.NoError(t, err)
	_, _, err = m.Add("set a 1")
	require.NoError(t, err)

	require.NoError(t, m.Clear())
	require.NoError(t, m.Clear())
	assert.Equal(t, 0, m.Count())
	assert.Equal(t, 2, repo.cleared)

	entry, _, err := m.Add("set a 2")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), entry.ID)
}

func TestManagerPersistsEveryAppend(t *testing.T) {
	repo := &memoryRepo{}
	m, err := NewManager(repo, 10)
	require.NoError(t, err)

	_, _, err = m.Add("set a 1")
	require.NoError(t, err)
	_, _, err = m.Add("history")
	require.NoError(t, err)
	_, _, err = m.Add("get a")
	require.NoError(t, err)

	assert.Equal(t, 2, repo.saves)
	require.Len(t, repo.saved, 2)
	assert.Equal(t, "get a", repo.saved[1].Command)
}

func TestManagerKeepsEntryWhenSaveFails(t *testing.T) {
	repo := &memoryRepo{saveErr: errors.New("disk full")}
	m, err := NewManager(repo, 10)
	require.NoError(t, err)

	entry, recorded, err := m.Add("set a 1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIO)
	assert.True(t, recorded)
	assert.Equal(t, uint64(1), entry.ID)
	assert.Equal(t, 1, m.Count())
}

func TestManagerLoadContinuesCounter(t *testing.T) {
	repo := &memoryRepo{loaded: []domain.HistoryEntry{
		{ID: 4, Command: "set a 1"},
		{ID: 9, Command: "get a"},
	}}
	m, err := NewManager(repo, 10)
	require.NoError(t, err)

	entry, _, err := m.Add("ls")
	require.NoError(t, err)
	assert.Equal(t, uint64(10), entry.ID)
}

func TestManagerLoadTrimsToCapacity(t *testing.T) {
	repo := &memoryRepo{}
	for i := 1; i <= 5; i++ {
		repo.loaded = append(repo.loaded, domain.HistoryEntry{ID: uint64(i), Command: "ls"})
	}
	m, err := NewManager(repo, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Count())
	first, _ := m.FromEnd(2)
	assert.Equal(t, uint64(4), first.ID)
	assert.Equal(t, uint64(6), m.NextID())
}

func TestManagerLoadFailureIsSurfaced(t *testing.T) {
	_, err := NewManager(&memoryRepo{loadErr: errors.New("permission denied")}, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIO)
}
