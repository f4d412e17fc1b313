package doctor

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/typecmd/internal/domain"
	"github.com/doeshing/typecmd/internal/ports"
)

type staticConfig struct {
	cfg domain.Config
	err error
}

func (s staticConfig) Load(context.Context) (domain.Config, error) {
	return s.cfg, s.err
}

type memoryRepo struct {
	path    string
	entries []domain.HistoryEntry
	loadErr error
}

func (m *memoryRepo) Load() ([]domain.HistoryEntry, error)  { return m.entries, m.loadErr }
func (m *memoryRepo) Save(entries []domain.HistoryEntry) error { m.entries = entries; return nil }
func (m *memoryRepo) Clear() error                          { m.entries = nil; return nil }
func (m *memoryRepo) Path() string                          { return m.path }

func testConfig(t *testing.T, maxSize int) domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		History: domain.HistorySettings{
			Backend: domain.HistoryBackendFile,
			File:    filepath.Join(t.TempDir(), "history"),
			MaxSize: maxSize,
		},
		Display: domain.DisplaySettings{Color: true, PromptCounts: true},
	}
}

func entries(n int) []domain.HistoryEntry {
	out := make([]domain.HistoryEntry, n)
	for i := range out {
		out[i] = domain.HistoryEntry{ID: uint64(i + 1), Timestamp: time.Unix(0, 0), Command: "ls"}
	}
	return out
}

func statuses(report domain.HealthReport) map[string]domain.HealthStatus {
	out := make(map[string]domain.HealthStatus, len(report.Checks))
	for _, check := range report.Checks {
		out[check.Name] = check.Status
	}
	return out
}

func TestRunHealthy(t *testing.T) {
	cfg := testConfig(t, 10)
	repo := &memoryRepo{path: cfg.History.File, entries: entries(3)}
	svc := &Service{
		ConfigProvider: staticConfig{cfg: cfg},
		OpenHistory: func(domain.HistorySettings) (ports.HistoryRepository, error) {
			return repo, nil
		},
		Terminal: func() bool { return true },
	}

	report, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.False(t, report.Failed())
	assert.Equal(t, map[string]domain.HealthStatus{
		"Config file":       domain.HealthOK,
		"Config values":     domain.HealthOK,
		"History store":     domain.HealthOK,
		"History directory": domain.HealthOK,
		"Terminal":          domain.HealthOK,
	}, statuses(report))
	assert.Contains(t, report.Checks[2].Details, "3 entries")
}

func TestRunConfigLoadFailure(t *testing.T) {
	svc := &Service{ConfigProvider: staticConfig{err: errors.New("bad yaml")}}

	report, err := svc.Run(context.Background())
	require.Error(t, err)
	require.Len(t, report.Checks, 1)
	assert.Equal(t, domain.HealthError, report.Checks[0].Status)
	assert.Contains(t, report.Checks[0].Details, "bad yaml")
}

func TestRunReportsProblems(t *testing.T) {
	cfg := testConfig(t, 0)
	svc := &Service{
		ConfigProvider: staticConfig{cfg: cfg},
		OpenHistory: func(domain.HistorySettings) (ports.HistoryRepository, error) {
			return &memoryRepo{path: cfg.History.File, loadErr: errors.New("corrupt")}, nil
		},
		Terminal: func() bool { return false },
	}

	report, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, report.Failed())
	got := statuses(report)
	assert.Equal(t, domain.HealthError, got["Config values"])
	assert.Equal(t, domain.HealthError, got["History store"])
	assert.Equal(t, domain.HealthWarn, got["Terminal"])
}

func TestRunWarnsWhenHistoryOverCapacity(t *testing.T) {
	cfg := testConfig(t, 2)
	svc := &Service{
		ConfigProvider: staticConfig{cfg: cfg},
		OpenHistory: func(domain.HistorySettings) (ports.HistoryRepository, error) {
			return &memoryRepo{path: cfg.History.File, entries: entries(5)}, nil
		},
	}

	report, err := svc.Run(context.Background())
	require.NoError(t, err)
	got := statuses(report)
	assert.Equal(t, domain.HealthWarn, got["History store"])
	assert.NotContains(t, got, "Terminal")
}

func TestRunOpenFailure(t *testing.T) {
	cfg := testConfig(t, 10)
	svc := &Service{
		ConfigProvider: staticConfig{cfg: cfg},
		OpenHistory: func(domain.HistorySettings) (ports.HistoryRepository, error) {
			return nil, errors.New("locked")
		},
	}

	report, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.HealthError, statuses(report)["History store"])
}
