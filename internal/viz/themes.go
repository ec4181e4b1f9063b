package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for terminal previews.
type Theme struct {
	Name   string
	Alive  lipgloss.Color
	Dead   lipgloss.Color
	Accent lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
}

var (
	ThemeGitHub = Theme{
		Name:   "github",
		Alive:  lipgloss.Color("#26a641"),
		Dead:   lipgloss.Color("#161b22"),
		Accent: lipgloss.Color("#39d353"),
		Text:   lipgloss.Color("#c9d1d9"),
		Muted:  lipgloss.Color("#8b949e"),
	}

	ThemeRetroGreen = Theme{
		Name:   "retro",
		Alive:  lipgloss.Color("#00ff00"), // Green phosphor
		Dead:   lipgloss.Color("#002200"),
		Accent: lipgloss.Color("#88ff88"),
		Text:   lipgloss.Color("#00ff00"),
		Muted:  lipgloss.Color("#005500"),
	}

	ThemeMinimal = Theme{
		Name:   "minimal",
		Alive:  lipgloss.Color("#ffffff"),
		Dead:   lipgloss.Color("#333333"),
		Accent: lipgloss.Color("#0088ff"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#888888"),
	}

	ThemeSunset = Theme{
		Name:   "sunset",
		Alive:  lipgloss.Color("#ff6b6b"), // Coral
		Dead:   lipgloss.Color("#2d1b2e"),
		Accent: lipgloss.Color("#feca57"),
		Text:   lipgloss.Color("#fff5f5"),
		Muted:  lipgloss.Color("#8b6b8c"),
	}

	Themes = []Theme{
		ThemeGitHub,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to github.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeGitHub
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// next returns the theme after t in Themes, wrapping around.
func next(t Theme) Theme {
	for i, c := range Themes {
		if c.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}
