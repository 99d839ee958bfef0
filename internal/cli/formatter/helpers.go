package formatter

import (
	"strings"
	"time"

	"github.com/alexanderramin/pomodoro/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// Clock renders d as "HH:MM:SS h", the unit suffix used on every console line.
func Clock(d time.Duration) string {
	return domain.FormatHMS(d) + " h"
}

// HumanDate returns "Today", "Yesterday" or a date like "Mon Feb 9, 2026".
func HumanDate(t time.Time) string {
	return HumanDateFrom(t, time.Now())
}

// HumanDateFrom is HumanDate relative to now.
func HumanDateFrom(t, now time.Time) string {
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	y3, m3, d3 := now.AddDate(0, 0, -1).Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Mon Jan 2, 2006")
}

// EndReasonLabel describes how a phase ended.
func EndReasonLabel(reason domain.EndReason) string {
	switch reason {
	case domain.EndOverride:
		return StyleYellow.Render("ended early")
	case domain.EndTimeout:
		return StyleDim.Render("time up")
	default:
		return StyleDim.Render("-")
	}
}
