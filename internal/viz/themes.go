package viz

import "github.com/charmbracelet/lipgloss"

// Theme is the terminal color scheme. Canvas is the foreground of lit dots.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Canvas    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Warning   lipgloss.Color
}

var (
	ThemeDefault = Theme{
		Name:      "default",
		Primary:   lipgloss.Color("#ffd700"), // gold
		Secondary: lipgloss.Color("#8b4513"), // saddle brown
		Accent:    lipgloss.Color("#fdf900"),
		Canvas:    lipgloss.Color("#f5f5f0"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#777766"),
		Warning:   lipgloss.Color("#ff8800"),
	}

	ThemeEarth = Theme{
		Name:      "earth",
		Primary:   lipgloss.Color("#c08040"),
		Secondary: lipgloss.Color("#8b5a2b"),
		Accent:    lipgloss.Color("#e0c090"),
		Canvas:    lipgloss.Color("#d2a679"),
		Text:      lipgloss.Color("#f0e6d8"),
		Muted:     lipgloss.Color("#6b5a48"),
		Warning:   lipgloss.Color("#ff7744"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Primary:   lipgloss.Color("#0077be"),
		Secondary: lipgloss.Color("#00a8cc"),
		Accent:    lipgloss.Color("#ffd700"),
		Canvas:    lipgloss.Color("#7fd4ff"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Warning:   lipgloss.Color("#ffcc00"),
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Primary:   lipgloss.Color("#ff6b6b"),
		Secondary: lipgloss.Color("#feca57"),
		Accent:    lipgloss.Color("#ff9ff3"),
		Canvas:    lipgloss.Color("#ffb48a"),
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Warning:   lipgloss.Color("#ffc048"),
	}

	ThemeMono = Theme{
		Name:      "mono",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Accent:    lipgloss.Color("#aaaaaa"),
		Canvas:    lipgloss.Color("#ffffff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#777777"),
		Warning:   lipgloss.Color("#ffffff"),
	}

	Themes = []Theme{ThemeDefault, ThemeEarth, ThemeOcean, ThemeSunset, ThemeMono}
)

// GetTheme returns the theme called name, or ThemeDefault.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDefault
}

// NextTheme returns the theme after cur in Themes, wrapping around.
func NextTheme(cur Theme) Theme {
	for i, t := range Themes {
		if t.Name == cur.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeDefault
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
