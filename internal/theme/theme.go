package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared by the list renderer and
// the status bar.
type Styles struct {
	Item          *lipgloss.Style
	ItemAlt       *lipgloss.Style
	Marked        *lipgloss.Style
	Header        *lipgloss.Style
	HeaderOverlay *lipgloss.Style
	HeaderAside   *lipgloss.Style
	Status        *lipgloss.Style
	Error         *lipgloss.Style
	Info          *lipgloss.Style
	Prompt        *lipgloss.Style
	Placeholder   *lipgloss.Style
	Cursor        *lipgloss.Style
}

var defaultStyles = Styles{
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ItemAlt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Marked: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("24")).Bold(true),
	),
	HeaderOverlay: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")).Bold(true),
	),
	HeaderAside: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	Status: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Prompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Placeholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Plain returns styles that render text unchanged, for dumps and tests.
func Plain() *Styles {
	s := lipgloss.NewStyle()
	return &Styles{
		Item: &s, ItemAlt: &s, Marked: &s, Header: &s, HeaderOverlay: &s, HeaderAside: &s,
		Status: &s, Error: &s, Info: &s, Prompt: &s, Placeholder: &s, Cursor: &s,
	}
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
