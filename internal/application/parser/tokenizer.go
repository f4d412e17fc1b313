// Package parser turns raw input lines into domain commands.
package parser

import (
	"strings"

	"github.com/doeshing/typecmd/internal/domain"
)

type tokenBuffer struct {
	builder strings.Builder
}

func (b *tokenBuffer) appendRune(r rune) {
	b.builder.WriteRune(r)
}

func (b *tokenBuffer) flushIfNotEmpty(tokens []string) []string {
	if b.builder.Len() == 0 {
		return tokens
	}
	tokens = append(tokens, b.builder.String())
	b.builder.Reset()
	return tokens
}

// Tokenize splits a line into tokens.
//
// Double and single quotes group text; a quote of the other kind inside a
// quoted section is literal. A backslash copies the next rune verbatim, in
// or out of quotes, and a trailing backslash is dropped. Only an unquoted
// space separates tokens. Empty or all-space input yields no tokens.
func Tokenize(line string) ([]string, error) {
	var (
		buf      tokenBuffer
		inDouble bool
		inSingle bool
		escaping bool
	)
	tokens := []string{}

	for _, ch := range line {
		if escaping {
			buf.appendRune(ch)
			escaping = false
			continue
		}

		switch {
		case ch == '\\':
			escaping = true
		case ch == '"' && !inSingle:
			inDouble = !inDouble
		case ch == '\'' && !inDouble:
			inSingle = !inSingle
		case ch == ' ' && !inDouble && !inSingle:
			tokens = buf.flushIfNotEmpty(tokens)
		default:
			buf.appendRune(ch)
		}
	}

	if inDouble || inSingle {
		return nil, domain.ErrUnterminatedQuote
	}

	return buf.flushIfNotEmpty(tokens), nil
}
