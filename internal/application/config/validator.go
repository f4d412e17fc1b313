package config

import (
	"fmt"
	"strings"

	"github.com/doeshing/typecmd/internal/domain"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if err := validateHistory(cfg.History); err != nil {
		return err
	}
	return nil
}

func validateHistory(history domain.HistorySettings) error {
	switch strings.ToLower(history.Backend) {
	case "", domain.HistoryBackendFile, domain.HistoryBackendSQLite:
	default:
		return fmt.Errorf("history.backend must be %s|%s, got %s",
			domain.HistoryBackendFile, domain.HistoryBackendSQLite, history.Backend)
	}
	if history.MaxSize <= 0 {
		return fmt.Errorf("history.max_size must be > 0")
	}
	return nil
}
