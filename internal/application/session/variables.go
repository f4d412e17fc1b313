package session

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/doeshing/typecmd/internal/domain"
)

func (s *Session) set(c domain.SetCommand) (domain.Result, error) {
	s.vars.Set(c.Variable, c.Value)
	return domain.Success(fmt.Sprintf("variable %q set to %q", c.Variable, c.Value)), nil
}

// get returns the bare value so callers can use it directly.
func (s *Session) get(c domain.GetCommand) (domain.Result, error) {
	value, ok := s.vars.Get(c.Variable)
	if !ok {
		return domain.Result{}, domain.NewUndefinedVariableError(c.Variable)
	}
	return domain.Info(value), nil
}

// copyVar reads the source before touching the destination, so a missing
// source leaves the store unchanged.
func (s *Session) copyVar(c domain.CopyCommand) (domain.Result, error) {
	value, ok := s.vars.Get(c.Source)
	if !ok {
		return domain.Result{}, domain.NewUndefinedVariableError(c.Source)
	}
	s.vars.Set(c.Destination, value)
	return domain.Success(fmt.Sprintf("variable %q set to the value of %q: %q", c.Destination, c.Source, value)), nil
}

func (s *Session) intSet(c domain.IntSetCommand) (domain.Result, error) {
	s.ints.Set(c.Variable, c.Value)
	return domain.Success(fmt.Sprintf("integer variable %q set to %d", c.Variable, c.Value)), nil
}

func (s *Session) intGet(c domain.IntGetCommand) (domain.Result, error) {
	value, ok := s.ints.Get(c.Variable)
	if !ok {
		return domain.Result{}, domain.NewUndefinedVariableError(c.Variable)
	}
	return domain.Info(formatInt(value)), nil
}

func (s *Session) intAdd(c domain.IntAddCommand) (domain.Result, error) {
	value, ok := s.ints.Get(c.Variable)
	if !ok {
		return domain.Result{}, domain.NewUndefinedVariableError(c.Variable)
	}
	if (c.Delta > 0 && value > math.MaxInt64-c.Delta) || (c.Delta < 0 && value < math.MinInt64-c.Delta) {
		return domain.Result{}, domain.NewParseError("integer overflow: %d + %d", value, c.Delta)
	}
	sum := value + c.Delta
	s.ints.Set(c.Variable, sum)
	return domain.Success(fmt.Sprintf("integer variable %q = %d", c.Variable, sum)), nil
}

// remove deletes the name from whichever store defines it.
func (s *Session) remove(c domain.DeleteCommand) (domain.Result, error) {
	deletedString := s.vars.Delete(c.Variable)
	deletedInt := s.ints.Delete(c.Variable)
	if !deletedString && !deletedInt {
		return domain.Result{}, domain.NewUndefinedVariableError(c.Variable)
	}
	return domain.Success("deleted variable: " + c.Variable), nil
}

func (s *Session) clearVariables() domain.Result {
	n := s.vars.Clear() + s.ints.Clear()
	return domain.Success(fmt.Sprintf("cleared all variables (%d)", n))
}

func (s *Session) listVariables() domain.Result {
	if s.vars.Len() == 0 && s.ints.Len() == 0 {
		return domain.Info("no variables defined")
	}

	var b strings.Builder
	if s.vars.Len() > 0 {
		fmt.Fprintf(&b, "defined variables (%d):\n", s.vars.Len())
		for _, e := range s.vars.All() {
			fmt.Fprintf(&b, "  %-15s = %q\n", e.Name, e.Value)
		}
	}
	if s.ints.Len() > 0 {
		fmt.Fprintf(&b, "integer variables (%d):\n", s.ints.Len())
		for _, e := range s.ints.All() {
			fmt.Fprintf(&b, "  %-15s = %d\n", e.Name, e.Value)
		}
	}
	return domain.Info(strings.TrimRight(b.String(), "\n"))
}

func formatInt(n int64) string {
	return strconv.FormatInt(n, 10)
}
