package cli

import (
	"io"
	"os"

	"github.com/alexanderramin/pomodoro/internal/app"
	"github.com/alexanderramin/pomodoro/internal/config"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds what the commands need from the process: settings, the runtime
// factory and terminal detection.
type App struct {
	Settings config.Settings
	// SettingsPath is where `config init` writes.
	SettingsPath string
	// Open builds the runtime for one invocation.
	Open func(settings config.Settings, mode app.Mode, stderr io.Writer) (*app.Runtime, error)
	// IsInteractive reports whether stdin and stdout are terminals.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	if a.IsInteractive == nil {
		return terminalStdio()
	}
	return a.IsInteractive()
}

func terminalStdio() bool {
	for _, f := range []*os.File{os.Stdin, os.Stdout} {
		if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
			return false
		}
	}
	return true
}

func (a *App) open(settings config.Settings, mode app.Mode, stderr io.Writer) (*app.Runtime, error) {
	if a.Open == nil {
		return app.Open(settings, mode, stderr)
	}
	return a.Open(settings, mode, stderr)
}

// globalFlags are shared by the root command and its subcommands.
type globalFlags struct {
	historyPath string
	noJournal   bool
}

func (f *globalFlags) bind(fs *pflag.FlagSet) {
	fs.StringVar(&f.historyPath, "history", "", "history file path (default: record_file.txt next to the binary)")
	fs.BoolVar(&f.noJournal, "no-journal", false, "do not use the session journal database")
}

// apply returns settings with the flags layered on top.
func (f *globalFlags) apply(settings config.Settings) config.Settings {
	if f.historyPath != "" {
		settings.HistoryPath = f.historyPath
	}
	if f.noJournal {
		settings.JournalEnabled = false
	}
	return settings
}

// NewRootCmd creates the top-level "pomodoro" command. Without a subcommand
// it runs a session.
func NewRootCmd(a *App) *cobra.Command {
	globals := &globalFlags{}
	run := &runFlags{}

	root := &cobra.Command{
		Use:   "pomodoro [work short-pause long-pause shifts-per-cycle]",
		Short: "Pomodoro timer with session history",
		Long: "Alternates work shifts and pauses until stopped. Every Nth pause is long.\n" +
			"Sessions with at least an hour of work are recorded in the history file.",
		Args:          validateSessionArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, a, globals.apply(a.Settings), run, args)
		},
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UsageError{Msg: "invalid flags", Err: err}
	})

	globals.bind(root.PersistentFlags())
	run.bind(root.Flags())

	root.AddCommand(
		newHistoryCmd(a, globals),
		newStatsCmd(a, globals),
		newShowCmd(a, globals),
		newForgetCmd(a, globals),
		newConfigCmd(a),
	)
	return root
}

// validateSessionArgs accepts no arguments (prompt) or exactly four.
func validateSessionArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 0 && len(args) != 4 {
		return &UsageError{Msg: "expected 0 or 4 arguments: " + cmd.Use}
	}
	return nil
}
