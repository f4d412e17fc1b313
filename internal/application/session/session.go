// Package session executes commands against the state of one interactive
// session: the string and integer variable stores and the history log.
package session

import (
	"context"
	"os"
	"strings"

	"github.com/doeshing/typecmd/internal/application/parser"
	"github.com/doeshing/typecmd/internal/domain"
	"github.com/doeshing/typecmd/internal/infrastructure/variables"
	"github.com/doeshing/typecmd/internal/ports"
)

// Options configures a Session. Zero values fall back to defaults.
type Options struct {
	Version string
	Console ports.Console
	Logger  ports.Logger
	// Exit terminates the process. Defaults to os.Exit.
	Exit func(code int)
}

// Session is the command executor. It is not safe for concurrent use; one
// line is fully executed before the next is accepted.
type Session struct {
	vars     *variables.Store[string]
	ints     *variables.Store[int64]
	history  ports.HistoryLog
	resolver *parser.Resolver
	console  ports.Console
	logger   ports.Logger
	exit     func(int)
	version  string
}

// New creates a session over the given history log.
func New(history ports.HistoryLog, opts Options) *Session {
	if opts.Console == nil {
		opts.Console = discardConsole{}
	}
	if opts.Logger == nil {
		opts.Logger = nopLogger{}
	}
	if opts.Exit == nil {
		opts.Exit = os.Exit
	}
	return &Session{
		vars:     variables.NewStore[string](),
		ints:     variables.NewStore[int64](),
		history:  history,
		resolver: parser.NewResolver(opts.Logger, opts.Console),
		console:  opts.Console,
		logger:   opts.Logger,
		exit:     opts.Exit,
		version:  opts.Version,
	}
}

// Submit records a line typed by the user in the history log and executes
// it. Lines that fail to parse are still recorded; history commands and
// replays are not. A failure to persist the history is reported as a
// warning only.
func (s *Session) Submit(ctx context.Context, line string) (domain.Result, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return domain.Result{}, nil
	}
	cmd, parseErr := s.parse(line)
	if domain.Recordable(line) && (parseErr != nil || !domain.IsHistoryMeta(cmd)) {
		if _, _, err := s.history.Add(line); err != nil {
			s.logger.Warn("history not saved", map[string]interface{}{"error": err.Error()})
			s.console.Print(domain.MessageWarning, "could not save history: "+err.Error())
		}
	}
	if parseErr != nil {
		return domain.Result{}, parseErr
	}
	return s.dispatchChecked(ctx, cmd)
}

// Execute runs a line through the tokenizer, resolver and dispatcher without
// recording it.
func (s *Session) Execute(ctx context.Context, line string) (domain.Result, error) {
	if err := ctx.Err(); err != nil {
		return domain.Result{}, err
	}
	cmd, err := s.parse(line)
	if err != nil {
		return domain.Result{}, err
	}
	return s.dispatchChecked(ctx, cmd)
}

func (s *Session) parse(line string) (domain.Command, error) {
	tokens, err := parser.Tokenize(line)
	if err != nil {
		return nil, err
	}
	return s.resolver.Resolve(tokens)
}

func (s *Session) dispatchChecked(ctx context.Context, cmd domain.Command) (domain.Result, error) {
	if err := ctx.Err(); err != nil {
		return domain.Result{}, err
	}
	s.logger.Debug("dispatch", map[string]interface{}{"command": cmd.Name()})
	return s.Dispatch(ctx, cmd)
}

// Dispatch executes an already resolved command.
func (s *Session) Dispatch(ctx context.Context, cmd domain.Command) (domain.Result, error) {
	switch c := cmd.(type) {
	case domain.ShowCommand:
		return s.show(c)
	case domain.ExitCommand:
		return s.exitWith(c.Code)
	case domain.SetCommand:
		return s.set(c)
	case domain.GetCommand:
		return s.get(c)
	case domain.CopyCommand:
		return s.copyVar(c)
	case domain.IntSetCommand:
		return s.intSet(c)
	case domain.IntGetCommand:
		return s.intGet(c)
	case domain.IntAddCommand:
		return s.intAdd(c)
	case domain.PrintCommand:
		return domain.Info(c.Text), nil
	case domain.PrintIntCommand:
		return domain.Info(formatInt(int64(c.Value))), nil
	case domain.ListCommand:
		return s.listVariables(), nil
	case domain.DeleteCommand:
		return s.remove(c)
	case domain.ClearCommand:
		return s.clear(c)
	case domain.HistoryCommand:
		return s.historyOp(c)
	case domain.ReplayLastCommand:
		return s.replayLast(ctx)
	case domain.ReplayCommand:
		return s.replay(ctx, c.Ref)
	default:
		return domain.Result{}, domain.NewCommandNotFoundError(cmd.Name())
	}
}

// VariableCount returns the number of defined variables across both stores.
func (s *Session) VariableCount() int {
	return s.vars.Len() + s.ints.Len()
}

// HistoryCount returns the number of history entries.
func (s *Session) HistoryCount() int {
	return s.history.Count()
}

// Version returns the version shown by `show ver`.
func (s *Session) Version() string {
	return s.version
}

func (s *Session) exitWith(code int) (domain.Result, error) {
	s.logger.Info("exit", map[string]interface{}{"code": code})
	s.console.Print(domain.MessageSuccess, "Goodbye! (exit code "+formatInt(int64(code))+")")
	s.exit(code)
	return domain.Result{}, nil
}

type discardConsole struct{}

func (discardConsole) Print(domain.MessageKind, string) {}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{})        {}
func (nopLogger) Info(string, map[string]interface{})         {}
func (nopLogger) Warn(string, map[string]interface{})         {}
func (nopLogger) Error(string, error, map[string]interface{}) {}
