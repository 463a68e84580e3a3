package render

import "github.com/charmbracelet/lipgloss"

// Theme defines the colors used for tape symbols and panel text.
type Theme struct {
	Name      string
	Mark      lipgloss.Color
	Separator lipgloss.Color
	Delimiter lipgloss.Color
	Scratch   lipgloss.Color
	Head      lipgloss.Color
	Label     lipgloss.Color
	Value     lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Error     lipgloss.Color
}

var (
	ThemeClassic = Theme{
		Name:      "classic",
		Mark:      lipgloss.Color("#00ffff"),
		Separator: lipgloss.Color("#ffff00"),
		Delimiter: lipgloss.Color("#ff00ff"),
		Scratch:   lipgloss.Color("#ff8800"),
		Head:      lipgloss.Color("#444466"),
		Label:     lipgloss.Color("#888899"),
		Value:     lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666688"),
		Success:   lipgloss.Color("#00ff88"),
		Error:     lipgloss.Color("#ff4444"),
	}

	ThemeRetro = Theme{
		Name:      "retro",
		Mark:      lipgloss.Color("#00ff00"),
		Separator: lipgloss.Color("#88ff88"),
		Delimiter: lipgloss.Color("#ffff00"),
		Scratch:   lipgloss.Color("#00cc00"),
		Head:      lipgloss.Color("#003300"),
		Label:     lipgloss.Color("#00cc00"),
		Value:     lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Success:   lipgloss.Color("#88ff88"),
		Error:     lipgloss.Color("#ff0000"),
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Mark:      lipgloss.Color("#ffffff"),
		Separator: lipgloss.Color("#cccccc"),
		Delimiter: lipgloss.Color("#0088ff"),
		Scratch:   lipgloss.Color("#888888"),
		Head:      lipgloss.Color("#333333"),
		Label:     lipgloss.Color("#888888"),
		Value:     lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#555555"),
		Success:   lipgloss.Color("#00ff00"),
		Error:     lipgloss.Color("#ff0000"),
	}

	Themes = []Theme{
		ThemeClassic,
		ThemeRetro,
		ThemeMinimal,
	}
)

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// SetTheme switches r to the named theme.
func (r *Renderer) SetTheme(name string) {
	r.Theme = GetTheme(name)
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeClassic
}
