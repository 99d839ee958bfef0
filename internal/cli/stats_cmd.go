package cli

import (
	"fmt"

	"github.com/alexanderramin/pomodoro/internal/app"
	"github.com/alexanderramin/pomodoro/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatsCmd(a *App, globals *globalFlags) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize journaled sessions per day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if days <= 0 {
				return &UsageError{Msg: fmt.Sprintf("--days must be positive, got %d", days)}
			}
			rt, err := a.open(globals.apply(a.Settings), app.ModePlain, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer rt.Close()

			stats, err := rt.Sessions.Stats(cmd.Context(), days)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStats(stats))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "number of recent days to include")
	return cmd
}

func newShowCmd(a *App, globals *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one journaled session with its phases",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := a.open(globals.apply(a.Settings), app.ModePlain, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer rt.Close()

			rec, err := rt.Sessions.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSession(rec))
			return nil
		},
	}
}

func newForgetCmd(a *App, globals *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "forget ID",
		Short: "Remove one session from the journal",
		Long:  "Remove one session and its phases from the journal. The history file is not changed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := a.open(globals.apply(a.Settings), app.ModePlain, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer rt.Close()

			if err := rt.Sessions.Forget(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Removed session "+args[0]+" from the journal."))
			return nil
		},
	}
}
