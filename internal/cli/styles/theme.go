// Package styles renders shade's command-line output with lipgloss.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme bundles the colors and styles of the CLI output. Widget trees use
// Branch, WidgetName, ClassName, Placeholder, PropKey and PropValue.
type Theme struct {
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Accent  lipgloss.Color
	Border  lipgloss.Color
	Surface lipgloss.Color
	Warning lipgloss.Color

	Title        lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	SuccessStyle lipgloss.Style
	WarningStyle lipgloss.Style

	Branch      lipgloss.Style
	WidgetName  lipgloss.Style
	ClassName   lipgloss.Style
	Placeholder lipgloss.Style
	PropKey     lipgloss.Style
	PropValue   lipgloss.Style

	BadgeMuted lipgloss.Style
	Box        lipgloss.Style
}

// NewTheme returns the dark theme. Colors degrade to what the terminal supports.
func NewTheme() *Theme {
	t := &Theme{
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#909090"),
		Accent:  lipgloss.Color("#4ade80"),
		Border:  lipgloss.Color("#333333"),
		Surface: lipgloss.Color("#2d2d2d"),
		Warning: lipgloss.Color("#f59e0b"),
	}

	plain := lipgloss.NewStyle()
	t.Title = plain.Foreground(t.Text).Bold(true)
	t.Normal = plain.Foreground(t.Text)
	t.Subtle = plain.Foreground(t.Muted)
	t.Highlight = plain.Foreground(t.Accent).Bold(true)
	t.SuccessStyle = plain.Foreground(t.Accent)
	t.WarningStyle = plain.Foreground(t.Warning)

	t.Branch = plain.Foreground(t.Border)
	t.WidgetName = t.Title
	t.ClassName = plain.Foreground(t.Accent)
	t.Placeholder = plain.Foreground(t.Muted).Italic(true)
	t.PropKey = t.Subtle
	t.PropValue = t.Normal

	t.BadgeMuted = plain.Foreground(t.Text).Background(t.Surface).Padding(0, 1)
	t.Box = plain.
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)
	return t
}

// MutedBadge renders text as a low-key inline tag.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}
