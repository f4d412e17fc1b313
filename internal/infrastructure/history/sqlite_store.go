package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/doeshing/typecmd/internal/domain"
	"github.com/doeshing/typecmd/internal/pkg/filesystem"
	"github.com/doeshing/typecmd/internal/ports"
)

// SQLiteStore persists history in a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (or creates) the database at path, or at
// ~/.typecmd_history.db when path is empty.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path == "" {
		path = filesystem.InHome(domain.DefaultHistoryDatabase)
	}
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history database %s: %w", path, err)
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init history database %s: %w", path, err)
	}
	return store, nil
}

func (s *SQLiteStore) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS history (
		id INTEGER PRIMARY KEY,
		timestamp TEXT NOT NULL,
		command TEXT NOT NULL
	);`)
	return err
}

// Load returns all rows ordered by id. Rows with an unparsable timestamp are
// skipped, matching the file store.
func (s *SQLiteStore) Load() ([]domain.HistoryEntry, error) {
	rows, err := s.db.Query("SELECT id, timestamp, command FROM history ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.HistoryEntry
	for rows.Next() {
		var (
			e  domain.HistoryEntry
			ts string
		)
		if err := rows.Scan(&e.ID, &ts, &e.Command); err != nil {
			return nil, err
		}
		t, err := time.Parse(domain.TimestampFormat, ts)
		if err != nil {
			continue
		}
		e.Timestamp = t.Local()
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Save replaces the table contents with entries in one transaction.
func (s *SQLiteStore) Save(entries []domain.HistoryEntry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM history"); err != nil {
		return err
	}
	stmt, err := tx.Prepare("INSERT INTO history (id, timestamp, command) VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, e := range entries {
		if _, err := stmt.Exec(e.ID, e.Timestamp.Format(domain.TimestampFormat), e.Command); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Clear deletes all history rows.
func (s *SQLiteStore) Clear() error {
	_, err := s.db.Exec("DELETE FROM history")
	return err
}

// Path returns the sqlite database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var _ ports.HistoryRepository = (*SQLiteStore)(nil)
