package commands

import (
	"github.com/spf13/cobra"

	"github.com/doeshing/typecmd/internal/app"
	"github.com/doeshing/typecmd/internal/application/doctor"
	"github.com/doeshing/typecmd/internal/infrastructure/config"
)

// ContainerBuilder builds the container once flags are parsed.
type ContainerBuilder func(cmd *cobra.Command) (*app.Container, error)

// LoaderFactory returns the config loader selected by flags.
type LoaderFactory func() *config.FileLoader

// DoctorFactory returns the diagnostics service selected by flags.
type DoctorFactory func(cmd *cobra.Command) *doctor.Service

// CLI-specific constants
const (
	// DefaultEditorCommand is the default editor command
	DefaultEditorCommand = "vi"
	// DefaultHistoryLimit is the number of entries `history list` shows
	DefaultHistoryLimit = 20
	// ListTimestampFormat is used by `history list` and `history search`
	ListTimestampFormat = "2006-01-02 15:04:05"
)

// Success messages
const (
	MsgConfigurationValid       = "Configuration valid"
	MsgNoDifferencesFromDefault = "No differences from default configuration."
	MsgNoHistoryRecorded        = "No history recorded yet."
	MsgHistoryCleared           = "History cleared."
	MsgCancelled                = "Cancelled."
)
