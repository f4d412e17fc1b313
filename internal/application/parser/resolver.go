package parser

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/doeshing/typecmd/internal/domain"
	"github.com/doeshing/typecmd/internal/ports"
)

type resolveFunc func(r *Resolver, args []string) (domain.Command, error)

// aliases maps every accepted spelling of a command to its resolver.
var aliases = map[string]resolveFunc{}

func register(fn resolveFunc, names ...string) {
	for _, name := range names {
		aliases[name] = fn
	}
}

func init() {
	register((*Resolver).show, "show")
	register((*Resolver).exit, "exit", "quit", "q")
	register((*Resolver).set, "to", "var", "let", "set")
	register((*Resolver).intSet, "ito", "ivar", "ilet", "iset")
	register((*Resolver).get, "get", "which", "echo")
	register((*Resolver).intGet, "iget", "iwhich", "iecho")
	register((*Resolver).intAdd, "add", "iadd")
	register((*Resolver).print, "string", "str", "sprint")
	register((*Resolver).printInt, "int", "num")
	register((*Resolver).list, "ls", "list")
	register((*Resolver).remove, "rm", "del", "unset")
	register((*Resolver).clear, "clear", "cls")
	register((*Resolver).history, "history", "hist")
	register((*Resolver).copy, "copy", "cpvar")
	register((*Resolver).version, "ver", "version")
	register((*Resolver).replayLast, "!!")
	register((*Resolver).replay, "!")
}

// Resolver maps token sequences onto domain commands.
type Resolver struct {
	logger  ports.Logger
	console ports.Console
	fold    cases.Caser
}

// NewResolver builds a Resolver. Non-fatal warnings go to logger and, when
// console is not nil, are shown to the user.
func NewResolver(logger ports.Logger, console ports.Console) *Resolver {
	return &Resolver{logger: logger, console: console, fold: cases.Fold()}
}

// Resolve validates tokens and returns the command they describe.
func (r *Resolver) Resolve(tokens []string) (domain.Command, error) {
	if len(tokens) == 0 {
		return nil, domain.ErrEmptyCommand
	}
	name := r.lower(tokens[0])
	fn, ok := aliases[name]
	if !ok {
		return nil, domain.NewCommandNotFoundError(name)
	}
	return fn(r, tokens[1:])
}

// Commands returns every accepted command spelling.
func Commands() []string {
	names := make([]string, 0, len(aliases))
	for name := range aliases {
		names = append(names, name)
	}
	return names
}

func (r *Resolver) lower(s string) string {
	return r.fold.String(s)
}

func (r *Resolver) show(args []string) (domain.Command, error) {
	if len(args) == 0 {
		return domain.ShowCommand{Topic: domain.ShowHelp}, nil
	}
	switch r.lower(args[0]) {
	case "help":
		return domain.ShowCommand{Topic: domain.ShowHelp}, nil
	case "ver", "version":
		return domain.ShowCommand{Topic: domain.ShowVersion}, nil
	case "vars":
		return domain.ShowCommand{Topic: domain.ShowVariables}, nil
	case "history":
		limit := domain.NoLimit
		if len(args) > 1 {
			n, err := parseLimit(args[1])
			if err != nil {
				return nil, domain.NewParseError("invalid history limit: %s", args[1])
			}
			limit = n
		}
		return domain.ShowCommand{Topic: domain.ShowHistory, Limit: limit}, nil
	case "lic", "license":
		return domain.ShowCommand{Topic: domain.ShowLicense}, nil
	default:
		return nil, domain.NewParseError("unknown show subcommand: %s", args[0])
	}
}

func (r *Resolver) version([]string) (domain.Command, error) {
	return domain.ShowCommand{Topic: domain.ShowVersion}, nil
}

func (r *Resolver) exit(args []string) (domain.Command, error) {
	if len(args) == 0 {
		return domain.ExitCommand{}, nil
	}
	code, err := strconv.ParseInt(args[0], 10, 32)
	if err != nil {
		return nil, domain.NewParseError("invalid exit code: %s", args[0])
	}
	return domain.ExitCommand{Code: int(code)}, nil
}

func (r *Resolver) set(args []string) (domain.Command, error) {
	if len(args) < 2 {
		return nil, domain.NewInsufficientArgsError("set needs a name and a value")
	}
	return domain.SetCommand{Variable: args[0], Value: strings.Join(args[1:], " ")}, nil
}

func (r *Resolver) intSet(args []string) (domain.Command, error) {
	if len(args) < 2 {
		return nil, domain.NewInsufficientArgsError("iset needs a name and a value")
	}
	value, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return nil, domain.NewParseError("invalid integer: %s", args[1])
	}
	return domain.IntSetCommand{Variable: args[0], Value: value}, nil
}

func (r *Resolver) get(args []string) (domain.Command, error) {
	if len(args) == 0 {
		return nil, domain.NewInsufficientArgsError("get needs a variable name")
	}
	return domain.GetCommand{Variable: args[0]}, nil
}

func (r *Resolver) intGet(args []string) (domain.Command, error) {
	if len(args) == 0 {
		return nil, domain.NewInsufficientArgsError("iget needs a variable name")
	}
	return domain.IntGetCommand{Variable: args[0]}, nil
}

func (r *Resolver) intAdd(args []string) (domain.Command, error) {
	if len(args) < 2 {
		return nil, domain.NewInsufficientArgsError("iadd needs a name and a value")
	}
	delta, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return nil, domain.NewParseError("invalid integer: %s", args[1])
	}
	return domain.IntAddCommand{Variable: args[0], Delta: delta}, nil
}

func (r *Resolver) copy(args []string) (domain.Command, error) {
	if len(args) < 2 {
		return nil, domain.NewInsufficientArgsError("copy needs a destination and a source")
	}
	if len(args) > 2 {
		r.warn("copy takes two arguments, ignoring the rest", args[2:])
	}
	return domain.CopyCommand{Destination: args[0], Source: args[1]}, nil
}

func (r *Resolver) print(args []string) (domain.Command, error) {
	return domain.PrintCommand{Text: strings.Join(args, " ")}, nil
}

func (r *Resolver) printInt(args []string) (domain.Command, error) {
	if len(args) == 0 {
		return domain.PrintIntCommand{}, nil
	}
	n, err := strconv.ParseInt(args[0], 10, 32)
	if err != nil {
		return nil, domain.NewParseError("invalid integer: %s", args[0])
	}
	return domain.PrintIntCommand{Value: int(n)}, nil
}

func (r *Resolver) list([]string) (domain.Command, error) {
	return domain.ListCommand{}, nil
}

func (r *Resolver) remove(args []string) (domain.Command, error) {
	if len(args) == 0 {
		return nil, domain.NewInsufficientArgsError("rm needs a variable name")
	}
	return domain.DeleteCommand{Variable: args[0]}, nil
}

func (r *Resolver) clear(args []string) (domain.Command, error) {
	if len(args) == 0 {
		return domain.ClearCommand{Target: domain.ClearVariables}, nil
	}
	switch r.lower(args[0]) {
	case "vars":
		return domain.ClearCommand{Target: domain.ClearVariables}, nil
	case "history":
		return domain.ClearCommand{Target: domain.ClearHistory}, nil
	default:
		return nil, domain.NewParseError("clear expects vars or history, got %s", args[0])
	}
}

func (r *Resolver) history(args []string) (domain.Command, error) {
	if len(args) == 0 {
		return domain.HistoryCommand{Op: domain.HistoryList, Limit: domain.NoLimit}, nil
	}
	switch r.lower(args[0]) {
	case "clear":
		return domain.HistoryCommand{Op: domain.HistoryClear}, nil
	case "search":
		if len(args) < 2 {
			return nil, domain.NewInsufficientArgsError("history search needs a keyword")
		}
		return domain.HistoryCommand{Op: domain.HistorySearch, Keyword: args[1]}, nil
	default:
		limit, err := parseLimit(args[0])
		if err != nil {
			return nil, domain.NewParseError("invalid history argument: %s", args[0])
		}
		return domain.HistoryCommand{Op: domain.HistoryList, Limit: limit}, nil
	}
}

func (r *Resolver) replayLast([]string) (domain.Command, error) {
	return domain.ReplayLastCommand{}, nil
}

func (r *Resolver) replay(args []string) (domain.Command, error) {
	if len(args) == 0 {
		return nil, domain.NewInsufficientArgsError("! needs a history id or -offset")
	}
	return domain.ReplayCommand{Ref: args[0]}, nil
}

func (r *Resolver) warn(msg string, ignored []string) {
	r.logger.Warn(msg, map[string]interface{}{"ignored": ignored})
	if r.console != nil {
		r.console.Print(domain.MessageWarning, msg)
	}
}

// parseLimit accepts non-negative decimal integers. Values beyond the
// platform int range are clamped to it.
func parseLimit(s string) (int, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return math.MaxInt, nil
		}
		return 0, err
	}
	if n > math.MaxInt {
		return math.MaxInt, nil
	}
	return int(n), nil
}
