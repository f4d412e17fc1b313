package parser

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/typecmd/internal/domain"
)

type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Debug(string, map[string]interface{}) {}
func (l *recordingLogger) Info(string, map[string]interface{})  {}
func (l *recordingLogger) Warn(msg string, _ map[string]interface{}) {
	l.warnings = append(l.warnings, msg)
}
func (l *recordingLogger) Error(string, error, map[string]interface{}) {}

type recordingConsole struct {
	warnings []string
}

func (c *recordingConsole) Print(kind domain.MessageKind, msg string) {
	if kind == domain.MessageWarning {
		c.warnings = append(c.warnings, msg)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   domain.Command
	}{
		{"show defaults to help", []string{"show"}, domain.ShowCommand{Topic: domain.ShowHelp}},
		{"show help", []string{"show", "HELP"}, domain.ShowCommand{Topic: domain.ShowHelp}},
		{"show ver", []string{"show", "ver"}, domain.ShowCommand{Topic: domain.ShowVersion}},
		{"show version", []string{"show", "version"}, domain.ShowCommand{Topic: domain.ShowVersion}},
		{"show vars", []string{"show", "vars"}, domain.ShowCommand{Topic: domain.ShowVariables}},
		{"show history", []string{"show", "history"}, domain.ShowCommand{Topic: domain.ShowHistory, Limit: domain.NoLimit}},
		{"show history limit", []string{"show", "history", "5"}, domain.ShowCommand{Topic: domain.ShowHistory, Limit: 5}},
		{"show license", []string{"show", "license"}, domain.ShowCommand{Topic: domain.ShowLicense}},
		{"show lic", []string{"show", "lic"}, domain.ShowCommand{Topic: domain.ShowLicense}},
		{"version alias", []string{"VER"}, domain.ShowCommand{Topic: domain.ShowVersion}},
		{"exit default", []string{"exit"}, domain.ExitCommand{}},
		{"quit with code", []string{"quit", "3"}, domain.ExitCommand{Code: 3}},
		{"q negative code", []string{"Q", "-2147483648"}, domain.ExitCommand{Code: -2147483648}},
		{"set joins value", []string{"set", "a", "hello", "world"}, domain.SetCommand{Variable: "a", Value: "hello world"}},
		{"let alias", []string{"let", "a", "1"}, domain.SetCommand{Variable: "a", Value: "1"}},
		{"to alias", []string{"To", "a", "b"}, domain.SetCommand{Variable: "a", Value: "b"}},
		{"var alias", []string{"var", "a", "b"}, domain.SetCommand{Variable: "a", Value: "b"}},
		{"get", []string{"get", "x"}, domain.GetCommand{Variable: "x"}},
		{"which", []string{"which", "x"}, domain.GetCommand{Variable: "x"}},
		{"echo", []string{"ECHO", "x"}, domain.GetCommand{Variable: "x"}},
		{"copy", []string{"copy", "dst", "src"}, domain.CopyCommand{Destination: "dst", Source: "src"}},
		{"cpvar", []string{"cpvar", "dst", "src"}, domain.CopyCommand{Destination: "dst", Source: "src"}},
		{"iset", []string{"iset", "n", "9223372036854775807"}, domain.IntSetCommand{Variable: "n", Value: 9223372036854775807}},
		{"ilet", []string{"ilet", "n", "-4"}, domain.IntSetCommand{Variable: "n", Value: -4}},
		{"iget", []string{"iget", "n"}, domain.IntGetCommand{Variable: "n"}},
		{"iadd", []string{"iadd", "n", "2"}, domain.IntAddCommand{Variable: "n", Delta: 2}},
		{"add", []string{"add", "n", "-2"}, domain.IntAddCommand{Variable: "n", Delta: -2}},
		{"string joins", []string{"string", "a", "b"}, domain.PrintCommand{Text: "a b"}},
		{"str empty", []string{"str"}, domain.PrintCommand{Text: ""}},
		{"int default", []string{"int"}, domain.PrintIntCommand{}},
		{"num", []string{"num", "17"}, domain.PrintIntCommand{Value: 17}},
		{"ls", []string{"ls"}, domain.ListCommand{}},
		{"list ignores args", []string{"list", "x"}, domain.ListCommand{}},
		{"rm", []string{"rm", "x"}, domain.DeleteCommand{Variable: "x"}},
		{"unset", []string{"unset", "x"}, domain.DeleteCommand{Variable: "x"}},
		{"clear default", []string{"clear"}, domain.ClearCommand{Target: domain.ClearVariables}},
		{"cls vars", []string{"cls", "VARS"}, domain.ClearCommand{Target: domain.ClearVariables}},
		{"clear history", []string{"clear", "history"}, domain.ClearCommand{Target: domain.ClearHistory}},
		{"history list", []string{"history"}, domain.HistoryCommand{Op: domain.HistoryList, Limit: domain.NoLimit}},
		{"hist limit", []string{"hist", "10"}, domain.HistoryCommand{Op: domain.HistoryList, Limit: 10}},
		{"history limit beyond 32 bits", []string{"history", "3000000000"}, domain.HistoryCommand{Op: domain.HistoryList, Limit: 3000000000}},
		{"history limit clamped", []string{"history", "99999999999999999999999"}, domain.HistoryCommand{Op: domain.HistoryList, Limit: math.MaxInt}},
		{"history clear", []string{"history", "clear"}, domain.HistoryCommand{Op: domain.HistoryClear}},
		{"history search", []string{"history", "Search", "set"}, domain.HistoryCommand{Op: domain.HistorySearch, Keyword: "set"}},
		{"replay last", []string{"!!"}, domain.ReplayLastCommand{}},
		{"replay last ignores args", []string{"!!", "x"}, domain.ReplayLastCommand{}},
		{"replay id", []string{"!", "3"}, domain.ReplayCommand{Ref: "3"}},
		{"replay offset", []string{"!", "-1"}, domain.ReplayCommand{Ref: "-1"}},
	}

	r := NewResolver(&recordingLogger{}, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.tokens)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		kind   error
	}{
		{"empty", []string{}, domain.ErrParse},
		{"unknown command", []string{"frobnicate"}, domain.ErrCommandNotFound},
		{"bang prefix is not replay", []string{"!3"}, domain.ErrCommandNotFound},
		{"get without name", []string{"get"}, domain.ErrInsufficientArgs},
		{"iget without name", []string{"iget"}, domain.ErrInsufficientArgs},
		{"rm without name", []string{"rm"}, domain.ErrInsufficientArgs},
		{"set without value", []string{"set", "a"}, domain.ErrInsufficientArgs},
		{"iset without value", []string{"iset", "a"}, domain.ErrInsufficientArgs},
		{"iadd without value", []string{"iadd", "a"}, domain.ErrInsufficientArgs},
		{"copy with one arg", []string{"copy", "a"}, domain.ErrInsufficientArgs},
		{"history search without keyword", []string{"history", "search"}, domain.ErrInsufficientArgs},
		{"bang without ref", []string{"!"}, domain.ErrInsufficientArgs},
		{"iset bad literal", []string{"iset", "a", "1.5"}, domain.ErrParse},
		{"iset overflow", []string{"iset", "a", "9223372036854775808"}, domain.ErrParse},
		{"iadd bad literal", []string{"iadd", "a", "x"}, domain.ErrParse},
		{"exit bad code", []string{"exit", "abc"}, domain.ErrParse},
		{"exit code beyond 32 bits", []string{"exit", "2147483648"}, domain.ErrParse},
		{"int beyond 32 bits", []string{"int", "99999999999"}, domain.ErrParse},
		{"show unknown subcommand", []string{"show", "bogus"}, domain.ErrParse},
		{"show history bad limit", []string{"show", "history", "many"}, domain.ErrParse},
		{"clear unknown target", []string{"clear", "all"}, domain.ErrParse},
		{"history bad argument", []string{"history", "abc"}, domain.ErrParse},
		{"history negative limit", []string{"history", "-1"}, domain.ErrParse},
	}

	r := NewResolver(&recordingLogger{}, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.tokens)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestResolveEmptyIsEmptyCommand(t *testing.T) {
	_, err := NewResolver(&recordingLogger{}, nil).Resolve(nil)
	assert.ErrorIs(t, err, domain.ErrEmptyCommand)
}

func TestResolveUnknownCommandNamesToken(t *testing.T) {
	_, err := NewResolver(&recordingLogger{}, nil).Resolve([]string{"Nope", "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}

func TestResolveCopyWarnsOnExtraArgs(t *testing.T) {
	log := &recordingLogger{}
	con := &recordingConsole{}
	got, err := NewResolver(log, con).Resolve([]string{"copy", "a", "b", "c", "d"})
	require.NoError(t, err)
	assert.Equal(t, domain.CopyCommand{Destination: "a", Source: "b"}, got)
	assert.Len(t, log.warnings, 1)
	assert.Equal(t, []string{"copy takes two arguments, ignoring the rest"}, con.warnings)
}

func TestCommandsListsEveryAlias(t *testing.T) {
	names := Commands()
	for _, alias := range []string{"exit", "quit", "q", "to", "var", "let", "set", "get", "which", "echo", "rm", "del", "unset", "clear", "cls", "history", "hist", "copy", "cpvar", "ls", "list", "!!", "!"} {
		assert.Contains(t, names, alias)
	}
}
