package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/doeshing/typecmd/internal/app"
	"github.com/doeshing/typecmd/internal/domain"
)

// NewHistoryCommand creates the history command with all subcommands
func NewHistoryCommand(build ContainerBuilder) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect the persisted command history",
	}

	historyCmd.AddCommand(
		newHistoryListCommand(build),
		newHistorySearchCommand(build),
		newHistoryClearCommand(build),
		newHistoryPathCommand(build),
	)

	return historyCmd
}

// withContainer builds the container for a single subcommand run.
func withContainer(build ContainerBuilder, fn func(cmd *cobra.Command, args []string, container *app.Container) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		container, err := build(cmd)
		if err != nil {
			return err
		}
		defer container.Close()
		return fn(cmd, args, container)
	}
}

// newHistoryListCommand creates the 'history list' subcommand
func newHistoryListCommand(build ContainerBuilder) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent history entries, oldest first",
		RunE: withContainer(build, func(cmd *cobra.Command, args []string, container *app.Container) error {
			if limit < 0 {
				limit = domain.NoLimit
			}
			return writeEntries(cmd.OutOrStdout(), container.History.Entries(limit))
		}),
	}

	cmd.Flags().IntVar(&limit, "limit", DefaultHistoryLimit, "Max entries to show (negative for all)")
	return cmd
}

// newHistorySearchCommand creates the 'history search' subcommand
func newHistorySearchCommand(build ContainerBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search history for a keyword, ignoring case",
		Args:  cobra.ExactArgs(1),
		RunE: withContainer(build, func(cmd *cobra.Command, args []string, container *app.Container) error {
			found := container.History.Search(args[0])
			if len(found) > domain.MaxSearchResults {
				found = found[:domain.MaxSearchResults]
			}
			return writeEntries(cmd.OutOrStdout(), found)
		}),
	}
}

// newHistoryClearCommand creates the 'history clear' subcommand
func newHistoryClearCommand(build ContainerBuilder) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear history and remove its backing store",
		RunE: withContainer(build, func(cmd *cobra.Command, args []string, container *app.Container) error {
			question := fmt.Sprintf("Delete %d history entries from %s?", container.History.Count(), container.History.Path())
			if !yes && !confirm(cmd, question) {
				fmt.Fprintln(cmd.OutOrStdout(), MsgCancelled)
				return nil
			}
			if err := container.History.Clear(); err != nil {
				return fmt.Errorf("failed to clear history: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), MsgHistoryCleared)
			return nil
		}),
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

// newHistoryPathCommand creates the 'history path' subcommand
func newHistoryPathCommand(build ContainerBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the history store location",
		RunE: withContainer(build, func(cmd *cobra.Command, args []string, container *app.Container) error {
			fmt.Fprintln(cmd.OutOrStdout(), container.History.Path())
			return nil
		}),
	}
}

func writeEntries(out io.Writer, entries []domain.HistoryEntry) error {
	if len(entries) == 0 {
		fmt.Fprintln(out, MsgNoHistoryRecorded)
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(out, "%4d | %s | %s\n", e.ID, e.Timestamp.Format(ListTimestampFormat), e.Command)
	}
	return nil
}
