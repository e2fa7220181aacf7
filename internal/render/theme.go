package render

import "github.com/charmbracelet/lipgloss"

// Theme defines the styles used for terminal summaries.
type Theme struct {
	Name    string
	Title   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Axis    lipgloss.Style
	Muted   lipgloss.Style
	Missing lipgloss.Style
	Bullet  string
}

// DefaultTheme returns a colored theme.
func DefaultTheme() Theme {
	return Theme{
		Name:    "default",
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")), // blue
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Value:   lipgloss.NewStyle(),
		Axis:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // orange
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		Missing: lipgloss.NewStyle().Foreground(lipgloss.Color("196")), // red
		Bullet:  "·",
	}
}

// MonoTheme returns a theme without colors or non-ASCII glyphs.
func MonoTheme() Theme {
	return Theme{
		Name:    "mono",
		Title:   lipgloss.NewStyle().Bold(true),
		Label:   lipgloss.NewStyle(),
		Value:   lipgloss.NewStyle(),
		Axis:    lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle(),
		Missing: lipgloss.NewStyle(),
		Bullet:  "-",
	}
}

// ThemeFor picks MonoTheme when color is disabled.
func ThemeFor(noColor bool) Theme {
	if noColor {
		return MonoTheme()
	}
	return DefaultTheme()
}
