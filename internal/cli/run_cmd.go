package cli

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/pomodoro/internal/app"
	"github.com/alexanderramin/pomodoro/internal/cli/formatter"
	"github.com/alexanderramin/pomodoro/internal/config"
	"github.com/alexanderramin/pomodoro/internal/domain"
	"github.com/alexanderramin/pomodoro/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// runFlags only apply to running a session.
type runFlags struct {
	plain    bool
	noNotify bool
}

func (f *runFlags) bind(fs *pflag.FlagSet) {
	fs.BoolVar(&f.plain, "plain", false, "line output instead of the full-screen display")
	fs.BoolVar(&f.noNotify, "no-notify", false, "do not send desktop notifications")
}

func runSession(cmd *cobra.Command, a *App, settings config.Settings, flags *runFlags, args []string) error {
	if flags.noNotify {
		settings.NotifyEnabled = false
	}
	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()
	interactive := a.interactive()

	// Parameter answers and plain-mode controls share one scanner so that
	// piped input is read line by line in order.
	lines := bufio.NewScanner(in)

	var cfg domain.Config
	var err error
	switch {
	case len(args) == 4:
		cfg, err = parseParams([4]string(args), settings.Defaults)
	case interactive:
		cfg, err = promptParams(in, out, settings.Defaults)
	default:
		cfg, err = readParams(lines, out, settings.Defaults)
	}
	if err != nil {
		return err
	}

	mode := app.ModeTUI
	if flags.plain || !interactive {
		mode = app.ModePlain
	}
	rt, err := a.open(settings, mode, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer rt.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var outcome *service.Outcome
	if mode == app.ModePlain {
		outcome, err = runPlain(ctx, rt.Sessions, cfg, lines, out)
	} else {
		outcome, err = runTUI(ctx, rt.Sessions, cfg, in, out)
	}
	if outcome != nil {
		fmt.Fprintln(out, formatter.FormatSummary(outcome.Summary, outcome.Recorded, outcome.Key, outcome.RecordErr, settings.RecordThreshold))
	}
	return err
}
