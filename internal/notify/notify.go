// Package notify sends best-effort desktop notifications through an external
// command such as zenity or notify-send.
package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// MessagePlaceholder is replaced by the notification text in command args.
const MessagePlaceholder = "{message}"

// DefaultTimeout bounds how long a notification process may live.
const DefaultTimeout = 30 * time.Second

// ErrNoCommand is returned when a CommandNotifier has an empty argv.
var ErrNoCommand = errors.New("no notification command configured")

// DefaultCommand returns the zenity info dialog argv.
func DefaultCommand() []string {
	return []string{"zenity", "--info", "--text=" + MessagePlaceholder}
}

// Error reports a notification that could not be delivered.
type Error struct {
	Command string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("notification via %s: %v", e.Command, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Nop discards notifications.
type Nop struct{}

func (Nop) Notify(context.Context, string) error { return nil }

// CommandNotifier starts an external program per notification. Notify only
// waits for the process to start; the process is reaped in the background and
// killed once Timeout elapses.
type CommandNotifier struct {
	Command []string
	Timeout time.Duration
	Logger  *slog.Logger
}

// NewCommandNotifier returns a notifier for argv. An empty argv falls back to
// DefaultCommand.
func NewCommandNotifier(argv []string, timeout time.Duration, logger *slog.Logger) *CommandNotifier {
	if len(argv) == 0 {
		argv = DefaultCommand()
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CommandNotifier{Command: argv, Timeout: timeout, Logger: logger}
}

func (n *CommandNotifier) Notify(ctx context.Context, message string) error {
	if len(n.Command) == 0 {
		return &Error{Err: ErrNoCommand}
	}
	args := expandArgs(n.Command, message)

	// The process outlives ctx cancellation; only Timeout kills it.
	procCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.Timeout)
	cmd := exec.CommandContext(procCtx, args[0], args[1:]...)
	if err := cmd.Start(); err != nil {
		cancel()
		return &Error{Command: args[0], Err: err}
	}

	go func() {
		defer cancel()
		if err := cmd.Wait(); err != nil && procCtx.Err() == nil {
			n.Logger.Warn("notification command exited", "command", args[0], "error", err.Error())
		}
	}()
	return nil
}

func expandArgs(argv []string, message string) []string {
	out := make([]string, len(argv))
	for i, a := range argv {
		out[i] = strings.ReplaceAll(a, MessagePlaceholder, message)
	}
	return out
}
