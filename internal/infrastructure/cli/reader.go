package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/doeshing/typecmd/internal/domain"
	"github.com/doeshing/typecmd/internal/ports"
)

// ReadlineReader reads lines with editing and arrow-key recall. Recall is
// in memory only; the session's history log is the durable one.
type ReadlineReader struct {
	rl *readline.Instance
}

// NewReadlineReader opens a terminal reader whose recall buffer starts with
// the given commands, oldest first.
func NewReadlineReader(recall []string) (*ReadlineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            PromptMarker,
		HistoryLimit:      domain.DefaultMaxHistorySize,
		HistorySearchFold: true,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("init readline: %w", err)
	}
	for _, line := range recall {
		_ = rl.SaveHistory(line)
	}
	return &ReadlineReader{rl: rl}, nil
}

// ReadLine implements ports.LineReader. Ctrl+C discards the current line.
func (r *ReadlineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", nil
	}
	return line, err
}

// Close restores the terminal.
func (r *ReadlineReader) Close() error {
	return r.rl.Close()
}

// PipeReader reads lines from a non-interactive source such as a pipe.
// Lines have no length limit.
type PipeReader struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPipeReader reads from in and echoes prompts to out (discarded when nil).
func NewPipeReader(in io.Reader, out io.Writer) *PipeReader {
	if out == nil {
		out = io.Discard
	}
	return &PipeReader{in: bufio.NewReader(in), out: out}
}

// ReadLine implements ports.LineReader. A final line without a trailing
// newline is still returned before io.EOF.
func (r *PipeReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	line, err := r.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Close implements ports.LineReader.
func (r *PipeReader) Close() error {
	return nil
}

// NewLineReader picks readline when in is an interactive terminal and a
// PipeReader otherwise, falling back to the PipeReader when readline cannot
// start.
func NewLineReader(in io.Reader, recall []string, out io.Writer) ports.LineReader {
	if IsTerminal(in) {
		if r, err := NewReadlineReader(recall); err == nil {
			return r
		}
	}
	return NewPipeReader(in, out)
}

// IsTerminal reports whether in is an interactive terminal.
func IsTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && readline.IsTerminal(int(f.Fd()))
}

var (
	_ ports.LineReader = (*ReadlineReader)(nil)
	_ ports.LineReader = (*PipeReader)(nil)
)
