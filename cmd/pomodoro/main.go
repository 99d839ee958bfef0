package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/pomodoro/internal/app"
	"github.com/alexanderramin/pomodoro/internal/cli"
	"github.com/alexanderramin/pomodoro/internal/config"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}

func run() error {
	// Settings problems are reported but never block a session.
	settingsPath, _ := config.ResolvePath()
	settings, err := config.Load(settingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	a := &cli.App{
		Settings:     settings,
		SettingsPath: settingsPath,
		Open:         app.Open,
		IsInteractive: func() bool {
			return isTerminal(os.Stdin) && isTerminal(os.Stdout)
		},
	}

	return cli.NewRootCmd(a).Execute()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
