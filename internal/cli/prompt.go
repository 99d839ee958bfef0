package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alexanderramin/pomodoro/internal/cli/formatter"
	"github.com/alexanderramin/pomodoro/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// pomodoroHuhTheme returns a huh theme matching the formatter palette.
func pomodoroHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validatePositiveInt accepts empty (keep the default) or a positive integer.
func validatePositiveInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// paramsForm asks for the four session parameters. Each input shows its
// default as placeholder; blank answers keep it.
func paramsForm(values *[4]string, defaults domain.Config) *huh.Form {
	fallback := defaultValues(defaults)

	fields := make([]huh.Field, 0, len(paramTitles))
	for i, title := range paramTitles {
		fields = append(fields, huh.NewInput().
			Title(title).
			Description(fmt.Sprintf("blank keeps %d", fallback[i])).
			Placeholder(strconv.Itoa(fallback[i])).
			Value(&values[i]).
			Validate(validatePositiveInt))
	}
	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(pomodoroHuhTheme()).WithShowHelp(false)
}

// promptParams runs the parameter form on a terminal.
func promptParams(in io.Reader, out io.Writer, defaults domain.Config) (domain.Config, error) {
	var values [4]string
	form := paramsForm(&values, defaults).
		WithInput(in).
		WithOutput(out)
	if err := form.Run(); err != nil {
		return domain.Config{}, fmt.Errorf("reading session parameters: %w", err)
	}
	return parseParams(values, defaults)
}

// readParams asks for the four session parameters one line at a time when
// stdin is not a terminal. It consumes exactly one line per accepted answer,
// so lines after the answers stay in lines for the session controls. Input
// that ends early keeps the remaining defaults.
func readParams(lines *bufio.Scanner, out io.Writer, defaults domain.Config) (domain.Config, error) {
	fallback := defaultValues(defaults)
	var values [4]string
	for i, title := range paramTitles {
		for {
			fmt.Fprintf(out, "%s [%d]: ", title, fallback[i])
			if !lines.Scan() {
				fmt.Fprintln(out)
				if err := lines.Err(); err != nil {
					return domain.Config{}, fmt.Errorf("reading session parameters: %w", err)
				}
				return parseParams(values, defaults)
			}
			answer := strings.TrimSpace(lines.Text())
			if err := validatePositiveInt(answer); err != nil {
				fmt.Fprintln(out, formatter.Dim(err.Error()))
				continue
			}
			values[i] = answer
			break
		}
	}
	return parseParams(values, defaults)
}
