package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the overlay palette.
type Theme struct {
	Name string

	Background string // Panel behind the lyric
	Border     string // Rounded frame
	Lyric      string // Lyric text
	Glow       string // Note glyphs and frame highlight
	Muted      string // Status line
	Danger     string // Disconnected placeholder
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Panel: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(1, 3),

		Lyric: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)).
			Foreground(lipgloss.Color(t.Lyric)),

		Note: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)).
			Foreground(lipgloss.Color(t.Glow)).
			Bold(true),

		Placeholder: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)).
			Foreground(lipgloss.Color(t.Danger)).
			Italic(true),

		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Faint(true),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Panel       lipgloss.Style
	Lyric       lipgloss.Style
	Note        lipgloss.Style
	Placeholder lipgloss.Style
	Status      lipgloss.Style
}

// Theme definitions

var themes = map[string]Theme{
	"Teal":     tealTheme(),
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Teal", "Nightfox", "Kanagawa", "Slate"}

// GetTheme returns a theme by name, falling back to Teal.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return tealTheme()
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func tealTheme() Theme {
	// Cyan glow on a near-black panel, tuned for compositor blur.
	return Theme{
		Name:       "Teal",
		Background: "#11111b",
		Border:     "#1e3a3a",
		Lyric:      "#50e8cc",
		Glow:       "#8ff5e2",
		Muted:      "#6c7086",
		Danger:     "#f38ba8",
	}
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name:       "Nightfox",
		Background: "#131a24", // bg0
		Border:     "#39506d", // bg4
		Lyric:      "#cdcecf", // fg1
		Glow:       "#63cdcf", // cyan
		Muted:      "#738091", // comment
		Danger:     "#c94f6d", // red
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name:       "Kanagawa",
		Background: "#16161D", // sumiInk0
		Border:     "#54546D", // sumiInk6
		Lyric:      "#DCD7BA", // fujiWhite
		Glow:       "#7E9CD8", // crystalBlue
		Muted:      "#727169", // fujiGray
		Danger:     "#E82424", // samuraiRed
	}
}

func slateTheme() Theme {
	return Theme{
		Name:       "Slate",
		Background: "#020617", // slate-950
		Border:     "#334155", // slate-700
		Lyric:      "#f1f5f9", // slate-100
		Glow:       "#38bdf8", // sky-400
		Muted:      "#64748b", // slate-500
		Danger:     "#f87171", // red-400
	}
}
