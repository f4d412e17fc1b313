package history

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/doeshing/typecmd/internal/domain"
	"github.com/doeshing/typecmd/internal/pkg/filesystem"
	"github.com/doeshing/typecmd/internal/ports"
)

// FileStore keeps history in a text file, one `id|timestamp|command` record
// per line.
type FileStore struct {
	path string
}

// NewFileStore creates a store at path, or at ~/.typecmd_history when path
// is empty.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = filesystem.InHome(domain.DefaultHistoryFile)
	}
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads every well-formed record. Lines that do not split into three
// fields or whose id or timestamp do not parse are skipped.
func (f *FileStore) Load() ([]domain.HistoryEntry, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read history file %s: %w", f.path, err)
	}

	var entries []domain.HistoryEntry
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	for scanner.Scan() {
		entry, ok := parseRecord(scanner.Text())
		if ok {
			entries = append(entries, entry)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan history file %s: %w", f.path, err)
	}
	return entries, nil
}

// Save rewrites the file with entries.
func (f *FileStore) Save(entries []domain.HistoryEntry) error {
	if err := os.MkdirAll(filepath.Dir(f.path), domain.DirectoryPermissions); err != nil {
		return err
	}
	var buf bytes.Buffer
	for _, e := range entries {
		buf.WriteString(formatRecord(e))
		buf.WriteByte('\n')
	}
	return os.WriteFile(f.path, buf.Bytes(), domain.FilePermissions)
}

// Clear removes the history file.
func (f *FileStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func formatRecord(e domain.HistoryEntry) string {
	return fmt.Sprintf("%d|%s|%s", e.ID, e.Timestamp.Format(domain.TimestampFormat), e.Command)
}

func parseRecord(line string) (domain.HistoryEntry, bool) {
	line = strings.TrimRight(line, "\r")
	if strings.TrimSpace(line) == "" {
		return domain.HistoryEntry{}, false
	}
	parts := strings.SplitN(line, "|", 3)
	if len(parts) != 3 {
		return domain.HistoryEntry{}, false
	}
	id, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return domain.HistoryEntry{}, false
	}
	ts, err := time.Parse(domain.TimestampFormat, parts[1])
	if err != nil {
		return domain.HistoryEntry{}, false
	}
	return domain.HistoryEntry{ID: id, Command: parts[2], Timestamp: ts.Local()}, true
}

var _ ports.HistoryRepository = (*FileStore)(nil)
