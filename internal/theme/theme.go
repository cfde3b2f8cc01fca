package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Title                 *lipgloss.Style
	Subtitle              *lipgloss.Style
	Item                  *lipgloss.Style
	ItemIndicator         *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	SelectedItem          *lipgloss.Style
	LockedItem            *lipgloss.Style
	ChapterHeader         *lipgloss.Style
	Percent               *lipgloss.Style
	GlyphLocked           *lipgloss.Style
	GlyphComplete         *lipgloss.Style
	GlyphPartial          *lipgloss.Style
	GlyphEmpty            *lipgloss.Style
	ProgressFilled        *lipgloss.Style
	ProgressEmpty         *lipgloss.Style
	DetailLabel           *lipgloss.Style
	DetailBody            *lipgloss.Style
	Positive              *lipgloss.Style
	Negative              *lipgloss.Style
	Neutral               *lipgloss.Style
	Answer                *lipgloss.Style
	Error                 *lipgloss.Style
	Info                  *lipgloss.Style
	Footer                *lipgloss.Style
	Popup                 *lipgloss.Style
	PopupTitle            *lipgloss.Style
}

var defaultStyles = Styles{
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	Subtitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	SelectedItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("238")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	LockedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	ChapterHeader: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	),
	Percent: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	GlyphLocked: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	GlyphComplete: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	GlyphPartial: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	),
	GlyphEmpty: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ProgressFilled: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	),
	ProgressEmpty: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	DetailLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	DetailBody: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Positive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Negative: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Neutral: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	),
	Answer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Popup: ptr(
		lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(1, 2),
	),
	PopupTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
