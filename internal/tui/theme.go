package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TermTheme holds all color values for a terminal theme.
type TermTheme struct {
	Name string

	Accent lipgloss.Color

	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Dim       lipgloss.Color

	Border lipgloss.Color
}

// DarkTheme is the default dark terminal theme.
var DarkTheme = TermTheme{
	Name:      "dark",
	Accent:    lipgloss.Color("#38bdf8"),
	Success:   lipgloss.Color("#22c55e"),
	Warning:   lipgloss.Color("#eab308"),
	Error:     lipgloss.Color("#ef4444"),
	Primary:   lipgloss.Color("#e0e0e8"),
	Secondary: lipgloss.Color("#888888"),
	Dim:       lipgloss.Color("#5a5a70"),
	Border:    lipgloss.Color("#2a2a3a"),
}

// LightTheme is the light terminal theme.
var LightTheme = TermTheme{
	Name:      "light",
	Accent:    lipgloss.Color("#0369a1"),
	Success:   lipgloss.Color("#15803d"),
	Warning:   lipgloss.Color("#a16207"),
	Error:     lipgloss.Color("#b91c1c"),
	Primary:   lipgloss.Color("#0f172a"),
	Secondary: lipgloss.Color("#374151"),
	Dim:       lipgloss.Color("#4b5563"),
	Border:    lipgloss.Color("#d1d5db"),
}

// DetectTheme returns the appropriate theme based on flag, env, or detection.
func DetectTheme(flagVal string) TermTheme {
	// 1. --theme flag
	switch strings.ToLower(flagVal) {
	case "dark":
		return DarkTheme
	case "light":
		return LightTheme
	}

	// 2. SHIPLINE_THEME env
	if env := os.Getenv("SHIPLINE_THEME"); env != "" {
		switch strings.ToLower(env) {
		case "dark":
			return DarkTheme
		case "light":
			return LightTheme
		}
	}

	// 3. COLORFGBG heuristic (format: "fg;bg"; bg 7 or 15 means light)
	if colorfgbg := os.Getenv("COLORFGBG"); colorfgbg != "" {
		parts := strings.Split(colorfgbg, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			if bg == "15" || bg == "7" {
				return LightTheme
			}
		}
	}

	// 4. Default to dark
	return DarkTheme
}

// StyleSet contains pre-computed lipgloss styles derived from a theme.
type StyleSet struct {
	Theme TermTheme

	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	AccentTxt  lipgloss.Style
	DimTxt     lipgloss.Style
	SuccessTxt lipgloss.Style
	ErrorTxt   lipgloss.Style
	PrimaryTxt lipgloss.Style

	SummaryKey   lipgloss.Style
	SummaryValue lipgloss.Style

	Banner lipgloss.Style
}

// NewStyleSet creates a StyleSet from a theme.
func NewStyleSet(theme TermTheme) *StyleSet {
	return &StyleSet{
		Theme: theme,

		Title:      lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
		Subtitle:   lipgloss.NewStyle().Foreground(theme.Secondary),
		AccentTxt:  lipgloss.NewStyle().Foreground(theme.Accent),
		DimTxt:     lipgloss.NewStyle().Foreground(theme.Dim),
		SuccessTxt: lipgloss.NewStyle().Foreground(theme.Success),
		ErrorTxt:   lipgloss.NewStyle().Foreground(theme.Error),
		PrimaryTxt: lipgloss.NewStyle().Foreground(theme.Primary),

		SummaryKey: lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Width(16),
		SummaryValue: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Banner: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),
	}
}
