package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/typecmd/internal/app"
	"github.com/doeshing/typecmd/internal/domain"
)

// NewExecCommand creates the exec command. Every argument is one input line,
// recorded and executed exactly as if typed at the prompt.
func NewExecCommand(build ContainerBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "exec <line>...",
		Short: "Run command lines without the interactive prompt",
		Example: `  typecmd exec 'set name "Ada Lovelace"' 'get name'
  typecmd exec '! -1'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := build(cmd)
			if err != nil {
				return err
			}
			defer container.Close()
			return executeLines(cmd, container, args)
		},
	}
}

// executeLines renders each outcome and keeps going after a failure; the
// command fails if any line did.
func executeLines(cmd *cobra.Command, container *app.Container, lines []string) error {
	failed := 0
	for _, line := range lines {
		res, err := container.Session.Submit(cmd.Context(), line)
		if err != nil {
			container.Console.Print(domain.MessageError, err.Error())
			failed++
			continue
		}
		if res.Message != "" {
			container.Console.Print(res.Kind, res.Message)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d command lines failed", failed, len(lines))
	}
	return nil
}
