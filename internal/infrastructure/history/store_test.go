package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/typecmd/internal/domain"
	"github.com/doeshing/typecmd/internal/ports"
)

func sampleEntries() []domain.HistoryEntry {
	base := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	return []domain.HistoryEntry{
		{ID: 1, Command: "set a hello", Timestamp: base},
		{ID: 2, Command: `set pipe "a|b|c"`, Timestamp: base.Add(time.Minute)},
		{ID: 7, Command: "iset n 42", Timestamp: base.Add(2 * time.Minute)},
	}
}

func assertSameEntries(t *testing.T, want, got []domain.HistoryEntry) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Command, got[i].Command)
		assert.True(t, want[i].Timestamp.Equal(got[i].Timestamp), "timestamp %d", i)
	}
}

func TestRepositoriesRoundTrip(t *testing.T) {
	dir := t.TempDir()
	sqliteStore, err := NewSQLiteStore(filepath.Join(dir, "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqliteStore.Close() })

	repos := map[string]ports.HistoryRepository{
		"file":   NewFileStore(filepath.Join(dir, "nested", "history")),
		"sqlite": sqliteStore,
	}

	for name, repo := range repos {
		t.Run(name, func(t *testing.T) {
			empty, err := repo.Load()
			require.NoError(t, err)
			assert.Empty(t, empty)

			require.NoError(t, repo.Save(sampleEntries()))
			got, err := repo.Load()
			require.NoError(t, err)
			assertSameEntries(t, sampleEntries(), got)

			require.NoError(t, repo.Save(sampleEntries()[:1]))
			got, err = repo.Load()
			require.NoError(t, err)
			assertSameEntries(t, sampleEntries()[:1], got)

			require.NoError(t, repo.Clear())
			require.NoError(t, repo.Clear())
			got, err = repo.Load()
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestFileStoreSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	content := "1|2024-03-01T12:30:00Z|set a 1\n" +
		"\n" +
		"garbage line\n" +
		"x|2024-03-01T12:30:00Z|bad id\n" +
		"3|yesterday|bad timestamp\n" +
		"4|2024-03-01T12:31:00+02:00|echo a|b\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := NewFileStore(path).Load()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint64(1), got[0].ID)
	assert.Equal(t, "set a 1", got[0].Command)
	assert.Equal(t, uint64(4), got[1].ID)
	assert.Equal(t, "echo a|b", got[1].Command)
}

func TestFileStoreClearRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	store := NewFileStore(path)
	require.NoError(t, store.Save(sampleEntries()))

	require.NoError(t, store.Clear())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFileStoreDefaultsToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store := NewFileStore("")
	assert.Equal(t, filepath.Join(home, domain.DefaultHistoryFile), store.Path())
}

func TestManagerReloadsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")

	m, err := NewManager(NewFileStore(path), 10)
	require.NoError(t, err)
	for _, c := range []string{"set a 1", "history", "get a", "! 1", "ls"} {
		_, _, err := m.Add(c)
		require.NoError(t, err)
	}

	reloaded, err := NewManager(NewFileStore(path), 10)
	require.NoError(t, err)
	assertSameEntries(t, m.Entries(domain.NoLimit), reloaded.Entries(domain.NoLimit))
	assert.Equal(t, m.NextID(), reloaded.NextID())
}
