package cli

import (
	"github.com/spf13/cobra"

	"github.com/doeshing/typecmd/internal/app"
	"github.com/doeshing/typecmd/internal/application/doctor"
	"github.com/doeshing/typecmd/internal/domain"
	"github.com/doeshing/typecmd/internal/infrastructure/cli/commands"
	"github.com/doeshing/typecmd/internal/infrastructure/config"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
	// Exit terminates the process on the exit command. Defaults to os.Exit.
	Exit func(code int)
}

// NewRootCmd wires the cobra root command. Without a subcommand it starts
// the interactive prompt.
func NewRootCmd(opts Options) *cobra.Command {
	var flags app.Options

	build := func(cmd *cobra.Command) (*app.Container, error) {
		containerOpts := flags
		containerOpts.Verbose = flags.Verbose || opts.Verbose
		containerOpts.Exit = opts.Exit
		containerOpts.Out = cmd.OutOrStdout()
		containerOpts.LogOut = cmd.ErrOrStderr()
		return app.BuildContainer(cmd.Context(), containerOpts)
	}
	loader := func() *config.FileLoader {
		return config.NewFileLoader(flags.ConfigPath)
	}

	diagnose := func(cmd *cobra.Command) *doctor.Service {
		return app.NewDoctorService(flags, func() bool { return IsTerminal(cmd.InOrStdin()) })
	}

	root := &cobra.Command{
		Use:   "typecmd",
		Short: "TypeCmd - interactive command line simulator",
		Long: "TypeCmd keeps named string and integer variables, records every command\n" +
			"in a persisted history and replays past commands with !! and ! <id>.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := build(cmd)
			if err != nil {
				return err
			}
			defer container.Close()
			return runInteractive(cmd, container)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.ConfigPath, "config", "", "Config file (default ~/.typecmd/config.yaml, or $"+config.EnvConfigPath+")")
	pf.StringVar(&flags.HistoryFile, "history-file", "", "History store location (overrides history.file)")
	pf.IntVar(&flags.MaxHistory, "max-history", 0, "Maximum history entries kept (overrides history.max_size)")
	pf.BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")
	pf.BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging on stderr")

	root.AddCommand(commands.NewExecCommand(build))
	root.AddCommand(commands.NewHistoryCommand(build))
	root.AddCommand(commands.NewConfigCommand(loader))
	root.AddCommand(commands.NewDoctorCommand(diagnose))
	root.AddCommand(commands.NewVersionCommand())
	return root
}

func runInteractive(cmd *cobra.Command, container *app.Container) error {
	var recall []string
	for _, e := range container.History.Entries(domain.NoLimit) {
		recall = append(recall, e.Command)
	}
	reader := NewLineReader(cmd.InOrStdin(), recall, cmd.OutOrStdout())
	defer reader.Close()

	repl := &REPL{
		Session:      container.Session,
		Reader:       reader,
		Console:      container.Console,
		Logger:       container.Logger,
		Out:          cmd.OutOrStdout(),
		PromptCounts: container.Config.Display.PromptCounts,
	}
	return repl.Run(cmd.Context())
}
