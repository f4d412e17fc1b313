package doctor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	appconfig "github.com/doeshing/typecmd/internal/application/config"
	"github.com/doeshing/typecmd/internal/domain"
	"github.com/doeshing/typecmd/internal/ports"
)

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider ports.ConfigProvider
	// OpenHistory opens the configured history backend for inspection.
	OpenHistory func(domain.HistorySettings) (ports.HistoryRepository, error)
	// Terminal reports whether stdin is interactive.
	Terminal func() bool
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", fmt.Sprintf("loaded format %s", cfg.ConfigFormatVersion)))

	if err := appconfig.Validate(cfg); err != nil {
		checks = append(checks, fail("Config values", err.Error()))
	} else {
		checks = append(checks, ok("Config values", "valid"))
	}

	checks = append(checks, s.historyCheck(cfg.History))
	checks = append(checks, writableCheck(cfg.History.File))

	if s.Terminal != nil {
		if s.Terminal() {
			checks = append(checks, ok("Terminal", "interactive line editing available"))
		} else {
			checks = append(checks, warn("Terminal", "stdin is not a terminal, line editing disabled"))
		}
	}

	return domain.HealthReport{Checks: checks}, nil
}

func (s *Service) historyCheck(settings domain.HistorySettings) domain.HealthCheck {
	const name = "History store"
	if s.OpenHistory == nil {
		return warn(name, "history backend not configured")
	}
	store, err := s.OpenHistory(settings)
	if err != nil {
		return fail(name, fmt.Sprintf("open %s: %v", settings.File, err))
	}
	if closer, isCloser := store.(io.Closer); isCloser {
		defer closer.Close()
	}

	entries, err := store.Load()
	if err != nil {
		return fail(name, fmt.Sprintf("load %s: %v", store.Path(), err))
	}
	if extra := settings.Overflow(len(entries)); extra > 0 {
		return warn(name, fmt.Sprintf("%d entries in %s, %d over max_size", len(entries), store.Path(), extra))
	}
	return ok(name, fmt.Sprintf("%d entries in %s (%s)", len(entries), store.Path(), settings.Backend))
}

func writableCheck(path string) domain.HealthCheck {
	const name = "History directory"
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirectoryPermissions); err != nil {
		return fail(name, err.Error())
	}
	tmp, err := os.CreateTemp(dir, ".typecmd-doctor-*")
	if err != nil {
		return fail(name, fmt.Sprintf("%s is not writable: %v", dir, err))
	}
	tmp.Close()
	os.Remove(tmp.Name())
	return ok(name, fmt.Sprintf("%s is writable", dir))
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
