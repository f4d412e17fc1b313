package logger

import (
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/doeshing/typecmd/internal/ports"
)

// Logger is a zerolog backed implementation of ports.Logger.
// A non-verbose Logger discards everything; the console is the user facing
// channel and log output is a debugging aid.
type Logger struct {
	zl zerolog.Logger
}

// New creates a Logger writing to out (stderr when nil). Every line carries
// a session id so one REPL session can be followed in a shared log.
func New(verbose bool, out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}
	level := zerolog.DebugLevel
	if !verbose {
		level = zerolog.Disabled
	}
	zl := zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Str("session", uuid.NewString()).
		Logger()
	return &Logger{zl: zl}
}

// Nop returns a Logger that drops everything.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.zl.Debug().Fields(fields).Msg(msg)
}

func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.zl.Info().Fields(fields).Msg(msg)
}

func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.zl.Warn().Fields(fields).Msg(msg)
}

func (l *Logger) Error(msg string, err error, fields map[string]interface{}) {
	l.zl.Error().Err(err).Fields(fields).Msg(msg)
}

var _ ports.Logger = (*Logger)(nil)
