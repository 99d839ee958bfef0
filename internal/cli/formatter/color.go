package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pomodoro/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PhaseStyle returns the accent style for a phase: red while working,
// green for short pauses, blue for long ones.
func PhaseStyle(phase domain.Phase, kind domain.PauseKind) lipgloss.Style {
	if phase == domain.PhaseWork {
		return StyleRed
	}
	if kind == domain.PauseLong {
		return StyleBlue
	}
	return StyleGreen
}

// PhaseName returns the short label used in phase lines: "shift" or "pause".
func PhaseName(phase domain.Phase) string {
	if phase == domain.PhaseWork {
		return "shift"
	}
	return "pause"
}

// PhaseTitle returns a display title such as "SHIFT #3" or "LONG PAUSE #4".
func PhaseTitle(phase domain.Phase, kind domain.PauseKind, number int) string {
	if phase == domain.PhaseWork {
		return fmt.Sprintf("SHIFT #%d", number)
	}
	return fmt.Sprintf("%s PAUSE #%d", strings.ToUpper(string(kind)), number)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
