package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/pomodoro/internal/app"
	"github.com/alexanderramin/pomodoro/internal/cli/formatter"
	"github.com/alexanderramin/pomodoro/internal/history"
	"github.com/spf13/cobra"
)

func newHistoryCmd(a *App, globals *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show sessions recorded in the history file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := globals.apply(a.Settings)
			settings.JournalEnabled = false
			rt, err := a.open(settings, app.ModePlain, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer rt.Close()

			st, err := rt.Sessions.History(cmd.Context())
			if err != nil {
				var loadErr *history.LoadError
				if !errors.As(err, &loadErr) {
					return err
				}
				fmt.Fprintln(cmd.ErrOrStderr(), formatter.StyleYellow.Render("warning: "+loadErr.Error()))
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(st))
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim(settings.HistoryPath))
			return nil
		},
	}
}
