package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/doeshing/typecmd/internal/application/session"
	"github.com/doeshing/typecmd/internal/domain"
	"github.com/doeshing/typecmd/internal/ports"
)

// PromptMarker is the input marker on the second prompt line.
const PromptMarker = "$ "

// REPL reads lines, submits them to the session and renders the outcome.
// Errors are rendered and the loop continues; it ends on EOF, on context
// cancellation or through the session's exit command.
type REPL struct {
	Session      *session.Session
	Reader       ports.LineReader
	Console      ports.Console
	Logger       ports.Logger
	Out          io.Writer
	PromptCounts bool
}

// Run executes the loop until input is exhausted.
func (r *REPL) Run(ctx context.Context) error {
	r.Console.Print(domain.MessageInfo, fmt.Sprintf("%s %s - type 'show help' for help",
		domain.ProductName, r.Session.Version()))

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		fmt.Fprintln(r.Out, r.header())

		line, err := r.Reader.ReadLine(PromptMarker)
		if errors.Is(err, io.EOF) {
			r.Console.Print(domain.MessageSuccess, "Goodbye!")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		res, err := r.Session.Submit(ctx, line)
		if err != nil {
			r.Logger.Debug("command failed", map[string]interface{}{"line": line, "error": err.Error()})
			r.Console.Print(domain.MessageError, err.Error())
			continue
		}
		if res.Message != "" {
			r.Console.Print(res.Kind, res.Message)
		}
	}
}

func (r *REPL) header() string {
	return Header(r.Session.Version(), r.Session.VariableCount(), r.Session.HistoryCount(), r.PromptCounts)
}

// Header renders the first prompt line. Each count is shown only when it is
// non-zero.
func Header(version string, vars, hist int, counts bool) string {
	header := fmt.Sprintf("%s@%s", domain.ProductName, version)
	if !counts {
		return header
	}
	if vars > 0 {
		header += fmt.Sprintf(" [%d vars]", vars)
	}
	if hist > 0 {
		header += fmt.Sprintf(" [%d hist]", hist)
	}
	return header
}
