package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the command pipeline matches exactly
// one of these through errors.Is.
var (
	ErrIO                = errors.New("I/O error")
	ErrParse             = errors.New("parse error")
	ErrCommandNotFound   = errors.New("command not found")
	ErrInsufficientArgs  = errors.New("insufficient arguments")
	ErrUndefinedVariable = errors.New("undefined variable")
	ErrInvalidHistory    = errors.New("invalid history command")
)

// CommandError carries an error kind together with a user facing detail and
// an optional underlying cause.
type CommandError struct {
	Kind   error
	Detail string
	Err    error
}

func (e *CommandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %s: %v", e.Kind, e.Detail, e.Err)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Detail)
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *CommandError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// Tokenizer and resolver failures that callers may want to match exactly.
var (
	ErrUnterminatedQuote = &CommandError{Kind: ErrParse, Detail: "unterminated quote"}
	ErrEmptyCommand      = &CommandError{Kind: ErrParse, Detail: "empty command"}
)

// NewParseError builds a parse-kind error.
func NewParseError(format string, args ...interface{}) error {
	return &CommandError{Kind: ErrParse, Detail: fmt.Sprintf(format, args...)}
}

// NewCommandNotFoundError reports an unknown leading token.
func NewCommandNotFoundError(name string) error {
	return &CommandError{Kind: ErrCommandNotFound, Detail: name}
}

// NewInsufficientArgsError reports an arity violation.
func NewInsufficientArgsError(format string, args ...interface{}) error {
	return &CommandError{Kind: ErrInsufficientArgs, Detail: fmt.Sprintf(format, args...)}
}

// NewUndefinedVariableError reports a missing variable.
func NewUndefinedVariableError(name string) error {
	return &CommandError{Kind: ErrUndefinedVariable, Detail: name}
}

// NewInvalidHistoryError reports a replay that cannot be resolved.
func NewInvalidHistoryError(format string, args ...interface{}) error {
	return &CommandError{Kind: ErrInvalidHistory, Detail: fmt.Sprintf(format, args...)}
}

// NewIOError wraps a persistence failure.
func NewIOError(detail string, err error) error {
	return &CommandError{Kind: ErrIO, Detail: detail, Err: err}
}
