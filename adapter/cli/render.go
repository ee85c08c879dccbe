package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
)

// Color palette
var (
	ColorPrimary = lipgloss.Color("#7aa2f7")
	ColorSuccess = lipgloss.Color("#9ece6a")
	ColorWarning = lipgloss.Color("#e0af68")
	ColorError   = lipgloss.Color("#f7768e")
	ColorMuted   = lipgloss.Color("#565f89")
)

// Text styles shared by every command.
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	BadgeStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)
)

// Minutes renders a minute count as "1h 05m" or "40m".
func Minutes(m int) string {
	if m < 60 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %02dm", m/60, m%60)
}

// Percent renders a 0..100 value with one decimal.
func Percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// Bar draws a horizontal bar for a 0..100 value.
func Bar(pct float64, width int) string {
	filled := int(pct / 100 * float64(width))
	filled = min(width, max(0, filled))
	return strings.Repeat("█", filled) + LabelStyle.Render(strings.Repeat("░", width-filled))
}

// Ago renders t relative to now, such as "3 hours ago".
func Ago(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return humanize.Time(t)
}

// Plural renders "1 day" or "3 days".
func Plural(n int, singular, plural string) string {
	return english.Plural(n, singular, plural)
}

// Ordinal renders 1 as "1st", 2 as "2nd" and so on.
func Ordinal(n int) string {
	return humanize.Ordinal(n)
}
