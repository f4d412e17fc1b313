package console

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/doeshing/typecmd/internal/domain"
)

func TestPlainConsoleLabelsKinds(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, false)

	c.Print(domain.MessageSuccess, "done")
	c.Print(domain.MessageWarning, "careful")
	c.Error(errors.New("boom"))

	assert.Equal(t, "done\nWarning: careful\nError: boom\n", buf.String())
}

func TestColorConsoleWrapsInEscapes(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, true)

	c.Print(domain.MessageError, "bad")

	assert.Equal(t, "\x1b[31mError: bad\x1b[0m\n", buf.String())
}
