// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// The command pipeline in the application layer depends only on these
// interfaces. Concrete adapters (history files, the sqlite database, the
// colored terminal, readline) live in the infrastructure layer and are wired
// together in internal/app.
//
// Key architectural concepts:
//   - Ports: Interfaces defined here (e.g., HistoryRepository, Console)
//   - Adapters: Concrete implementations in the infrastructure layer
//   - Dependency inversion: Application depends on abstractions, not implementations
package ports

import (
	"context"

	"github.com/doeshing/typecmd/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.typecmd/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// HistoryRepository is the durable backing of the history log. Save always
// receives the complete in-memory log and replaces what was stored before.
type HistoryRepository interface {
	Load() ([]domain.HistoryEntry, error)
	Save(entries []domain.HistoryEntry) error
	Clear() error
	Path() string
}

// Console renders a message in a semantic category. Implementations decide
// on styling; callers never depend on it being applied.
type Console interface {
	Print(kind domain.MessageKind, msg string)
}

// LineReader reads one line of user input at a time.
// It returns io.EOF when the input is exhausted.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
