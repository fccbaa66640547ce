// Package tui implements the full-screen interactive console built on
// bubbletea. It walks the user from the operation menu through an option
// form, streams the live spotdl output, and ends on the run summary.
package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the color scheme the console styles are built from. Two
// variants exist, picked by DetectTheme from the terminal background.
type Theme struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

// LightTheme renders headings in Spotify black with the green accent
func LightTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#191414"), // Spotify black
		Primary:    lipgloss.Color("#191414"),
		Accent:     lipgloss.Color("#1DB954"), // Spotify green
		Muted:      lipgloss.Color("#8c8c8c"),
		Border:     lipgloss.Color("#d9d9d9"),
	}
}

// DarkTheme flips the headings to green and brightens the accent so it
// stays readable on dark terminals
func DarkTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#f2f2f2"),
		Primary:    lipgloss.Color("#1DB954"),
		Accent:     lipgloss.Color("#1ED760"),
		Muted:      lipgloss.Color("#7a7a7a"),
		Border:     lipgloss.Color("#333333"),
		IsDark:     true,
	}
}

// Status colors shared by both themes
var (
	errorRed  = lipgloss.Color("#e53935")
	warnAmber = lipgloss.Color("#FFC107")
	infoBlue  = lipgloss.Color("#2196F3")
	okGreen   = lipgloss.Color("#1DB954")
)

// DetectTheme picks the theme variant. An explicit SPOT_CONSOLE_DARK_MODE=1
// wins, otherwise the COLORFGBG hint some terminals export decides.
func DetectTheme() Theme {
	if os.Getenv("SPOT_CONSOLE_DARK_MODE") == "1" {
		return DarkTheme()
	}
	if darkBackground(os.Getenv("COLORFGBG")) {
		return DarkTheme()
	}
	return LightTheme()
}

// darkBackground reads the "foreground;background" pair, treating the ANSI
// indexes 0-6 and 8 (dark grey) as dark backgrounds
func darkBackground(fgbg string) bool {
	parts := strings.Split(fgbg, ";")
	if len(parts) != 2 {
		return false
	}
	bg, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}
	return (bg >= 0 && bg <= 6) || bg == 8
}

// Styles carries one pre-built lipgloss style per console element
type Styles struct {
	Theme Theme

	Header  lipgloss.Style
	Footer  lipgloss.Style
	Content lipgloss.Style

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	Prompt   lipgloss.Style
	Selected lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	Spinner lipgloss.Style
	Badge   lipgloss.Style
	Divider lipgloss.Style
	Output  lipgloss.Style
}

// NewStyles pre-builds every style for the given theme
func NewStyles(t Theme) Styles {
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	white := lipgloss.Color("#ffffff")

	return Styles{
		Theme: t,

		Header:  lipgloss.NewStyle().Background(t.Primary).Foreground(white).Padding(0, 2).Bold(true),
		Footer:  fg(t.Muted).Padding(0, 2),
		Content: lipgloss.NewStyle().Padding(1, 2),

		Title:    fg(t.Primary).Bold(true).MarginBottom(1),
		Subtitle: fg(t.Muted).Italic(true),
		Body:     fg(t.Foreground),
		Muted:    fg(t.Muted),
		Bold:     fg(t.Foreground).Bold(true),

		Prompt:   fg(t.Accent).Bold(true),
		Selected: fg(t.Accent).Bold(true),

		Success: fg(okGreen).Bold(true),
		Error:   fg(errorRed).Bold(true),
		Warning: fg(warnAmber).Bold(true),
		Info:    fg(infoBlue),

		Spinner: fg(t.Accent),
		Badge:   lipgloss.NewStyle().Background(t.Accent).Foreground(white).Padding(0, 1).Bold(true),
		Divider: fg(t.Border),
		Output: fg(t.Foreground).
			PaddingLeft(2).
			BorderLeft(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(t.Accent),
	}
}

// DefaultStyles builds the styles for the auto-detected theme
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// RenderDivider draws a horizontal rule across the given width
func (s Styles) RenderDivider(width int) string {
	if width <= 0 {
		width = 1
	}
	return s.Divider.Render(strings.Repeat("─", width))
}
