// Package console renders session messages on a terminal.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/doeshing/typecmd/internal/domain"
	"github.com/doeshing/typecmd/internal/ports"
)

// ColorConsole writes one line per message, styled by its kind.
type ColorConsole struct {
	out    io.Writer
	styles map[domain.MessageKind]*color.Color
	labels map[domain.MessageKind]string
}

// New builds a console on out (stdout when nil). Styling is applied only
// when enabled is true, independent of whether out is a terminal.
func New(out io.Writer, enabled bool) *ColorConsole {
	if out == nil {
		out = os.Stdout
	}
	styles := map[domain.MessageKind]*color.Color{
		domain.MessageError:   color.New(color.FgRed),
		domain.MessageSuccess: color.New(color.FgGreen),
		domain.MessageInfo:    color.New(color.FgBlue),
		domain.MessageWarning: color.New(color.FgYellow),
		domain.MessageNeutral: color.New(color.FgHiBlack),
	}
	for _, style := range styles {
		if enabled {
			style.EnableColor()
		} else {
			style.DisableColor()
		}
	}
	return &ColorConsole{
		out:    out,
		styles: styles,
		labels: map[domain.MessageKind]string{
			domain.MessageError:   "Error: ",
			domain.MessageWarning: "Warning: ",
		},
	}
}

// Print implements ports.Console.
func (c *ColorConsole) Print(kind domain.MessageKind, msg string) {
	text := c.labels[kind] + msg
	if style, ok := c.styles[kind]; ok {
		text = style.Sprint(text)
	}
	fmt.Fprintln(c.out, text)
}

// Error renders err as an error message.
func (c *ColorConsole) Error(err error) {
	c.Print(domain.MessageError, err.Error())
}

var _ ports.Console = (*ColorConsole)(nil)
