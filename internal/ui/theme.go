package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color scheme and styles for the dashboard
type Theme struct {
	Name string

	// Core colors
	Primary    lipgloss.AdaptiveColor
	Secondary  lipgloss.AdaptiveColor
	Accent     lipgloss.AdaptiveColor
	Foreground lipgloss.AdaptiveColor
	Muted      lipgloss.AdaptiveColor
	Error      lipgloss.AdaptiveColor
	Success    lipgloss.AdaptiveColor
	Warning    lipgloss.AdaptiveColor

	// UI element colors
	Border     lipgloss.AdaptiveColor // Separator lines, borders
	Dimmed     lipgloss.AdaptiveColor // Very subtle text (shortcuts)
	Subtle     lipgloss.AdaptiveColor // Subtle UI elements
	Background lipgloss.AdaptiveColor // Background for overlays

	// Component styles
	Table     TableStyles
	AppTitle  lipgloss.Style // App title with background
	Header    lipgloss.Style
	StatusBar lipgloss.Style
}

// TableStyles defines styles for table components
type TableStyles struct {
	Header        lipgloss.Style
	Cell          lipgloss.Style
	SelectedRow   lipgloss.Style
	StatusRunning lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
}

// ToTableStyles converts Theme.Table to bubbles table.Styles
func (t *Theme) ToTableStyles() table.Styles {
	return table.Styles{
		Header:   t.Table.Header,
		Cell:     t.Table.Cell,
		Selected: t.Table.SelectedRow,
	}
}

// palette holds the raw colors a theme is assembled from. Styles shared by
// all themes are derived in build.
type palette struct {
	name string

	primary    lipgloss.AdaptiveColor
	secondary  lipgloss.AdaptiveColor
	accent     lipgloss.AdaptiveColor
	foreground lipgloss.AdaptiveColor
	muted      lipgloss.AdaptiveColor
	errColor   lipgloss.AdaptiveColor
	success    lipgloss.AdaptiveColor
	warning    lipgloss.AdaptiveColor

	border     lipgloss.AdaptiveColor
	dimmed     lipgloss.AdaptiveColor
	subtle     lipgloss.AdaptiveColor
	background lipgloss.AdaptiveColor

	selectionFg lipgloss.Color
	selectionBg lipgloss.Color
	titleBg     lipgloss.Color

	// plainHeader leaves table headers unbolded and uncolored (charm)
	plainHeader bool
}

func (p palette) build() *Theme {
	t := &Theme{
		Name:       p.name,
		Primary:    p.primary,
		Secondary:  p.secondary,
		Accent:     p.accent,
		Foreground: p.foreground,
		Muted:      p.muted,
		Error:      p.errColor,
		Success:    p.success,
		Warning:    p.warning,
		Border:     p.border,
		Dimmed:     p.dimmed,
		Subtle:     p.subtle,
		Background: p.background,
	}

	header := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		BorderBottom(true).
		PaddingLeft(1).
		PaddingRight(1)
	if p.plainHeader {
		header = header.Bold(false)
	} else {
		header = header.Foreground(t.Primary).Bold(true)
	}
	t.Table.Header = header

	t.Table.Cell = lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)

	t.Table.SelectedRow = lipgloss.NewStyle().
		Foreground(p.selectionFg).
		Background(p.selectionBg).
		Bold(false)

	t.Table.StatusRunning = lipgloss.NewStyle().Foreground(t.Success)
	t.Table.StatusError = lipgloss.NewStyle().Foreground(t.Error)
	t.Table.StatusWarning = lipgloss.NewStyle().Foreground(t.Warning)

	t.AppTitle = lipgloss.NewStyle().
		Foreground(t.Primary).
		Background(p.titleBg).
		Bold(true)

	t.Header = lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)

	t.StatusBar = lipgloss.NewStyle().
		Foreground(t.Muted)

	return t
}

// ThemeCharm returns the default Charm theme
func ThemeCharm() *Theme {
	return palette{
		name:       "charm",
		primary:    lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"},
		secondary:  lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"},
		accent:     lipgloss.AdaptiveColor{Light: "#F780E2", Dark: "#F780E2"},
		foreground: lipgloss.AdaptiveColor{Light: "235", Dark: "252"},
		muted:      lipgloss.AdaptiveColor{Light: "243", Dark: "243"},
		errColor:   lipgloss.AdaptiveColor{Light: "#FF4672", Dark: "#ED567A"},
		success:    lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"},
		warning:    lipgloss.AdaptiveColor{Light: "#FFAA00", Dark: "#FFAA00"},

		border:     lipgloss.AdaptiveColor{Light: "240", Dark: "240"},
		dimmed:     lipgloss.AdaptiveColor{Light: "243", Dark: "243"},
		subtle:     lipgloss.AdaptiveColor{Light: "241", Dark: "241"},
		background: lipgloss.AdaptiveColor{Light: "254", Dark: "235"},

		selectionFg: lipgloss.Color("229"),
		selectionBg: lipgloss.Color("57"),
		titleBg:     lipgloss.Color("235"),
		plainHeader: true,
	}.build()
}

// ThemeDracula returns a Dracula-inspired theme
func ThemeDracula() *Theme {
	return palette{
		name:       "dracula",
		primary:    lipgloss.AdaptiveColor{Light: "#bd93f9", Dark: "#bd93f9"},
		secondary:  lipgloss.AdaptiveColor{Light: "#8be9fd", Dark: "#8be9fd"},
		accent:     lipgloss.AdaptiveColor{Light: "#ff79c6", Dark: "#ff79c6"},
		foreground: lipgloss.AdaptiveColor{Light: "#282a36", Dark: "#f8f8f2"},
		muted:      lipgloss.AdaptiveColor{Light: "#6272a4", Dark: "#6272a4"},
		errColor:   lipgloss.AdaptiveColor{Light: "#ff5555", Dark: "#ff5555"},
		success:    lipgloss.AdaptiveColor{Light: "#50fa7b", Dark: "#50fa7b"},
		warning:    lipgloss.AdaptiveColor{Light: "#f1fa8c", Dark: "#f1fa8c"},

		border:     lipgloss.AdaptiveColor{Light: "61", Dark: "61"},
		dimmed:     lipgloss.AdaptiveColor{Light: "#6272a4", Dark: "#6272a4"},
		subtle:     lipgloss.AdaptiveColor{Light: "#44475a", Dark: "#44475a"},
		background: lipgloss.AdaptiveColor{Light: "#f8f8f2", Dark: "#282a36"},

		selectionFg: lipgloss.Color("#282a36"),
		selectionBg: lipgloss.Color("#bd93f9"),
		titleBg:     lipgloss.Color("#44475a"),
	}.build()
}

// ThemeCatppuccin returns a Catppuccin-inspired theme (Mocha variant)
func ThemeCatppuccin() *Theme {
	return palette{
		name:       "catppuccin",
		primary:    lipgloss.AdaptiveColor{Light: "#8839ef", Dark: "#cba6f7"},
		secondary:  lipgloss.AdaptiveColor{Light: "#179299", Dark: "#89dceb"},
		accent:     lipgloss.AdaptiveColor{Light: "#ea76cb", Dark: "#f5c2e7"},
		foreground: lipgloss.AdaptiveColor{Light: "#4c4f69", Dark: "#cdd6f4"},
		muted:      lipgloss.AdaptiveColor{Light: "#9ca0b0", Dark: "#7f849c"},
		errColor:   lipgloss.AdaptiveColor{Light: "#d20f39", Dark: "#f38ba8"},
		success:    lipgloss.AdaptiveColor{Light: "#40a02b", Dark: "#a6e3a1"},
		warning:    lipgloss.AdaptiveColor{Light: "#df8e1d", Dark: "#f9e2af"},

		border:     lipgloss.AdaptiveColor{Light: "#9ca0b0", Dark: "#45475a"},
		dimmed:     lipgloss.AdaptiveColor{Light: "#9ca0b0", Dark: "#7f849c"},
		subtle:     lipgloss.AdaptiveColor{Light: "#7c7f93", Dark: "#585b70"},
		background: lipgloss.AdaptiveColor{Light: "#eff1f5", Dark: "#1e1e2e"},

		selectionFg: lipgloss.Color("#1e1e2e"),
		selectionBg: lipgloss.Color("#cba6f7"),
		titleBg:     lipgloss.Color("#313244"),
	}.build()
}

// ThemeNord returns a Nord-inspired theme
func ThemeNord() *Theme {
	return palette{
		name:       "nord",
		primary:    lipgloss.AdaptiveColor{Light: "#5e81ac", Dark: "#88c0d0"},
		secondary:  lipgloss.AdaptiveColor{Light: "#81a1c1", Dark: "#81a1c1"},
		accent:     lipgloss.AdaptiveColor{Light: "#b48ead", Dark: "#b48ead"},
		foreground: lipgloss.AdaptiveColor{Light: "#2e3440", Dark: "#eceff4"},
		muted:      lipgloss.AdaptiveColor{Light: "#4c566a", Dark: "#4c566a"},
		errColor:   lipgloss.AdaptiveColor{Light: "#bf616a", Dark: "#bf616a"},
		success:    lipgloss.AdaptiveColor{Light: "#a3be8c", Dark: "#a3be8c"},
		warning:    lipgloss.AdaptiveColor{Light: "#ebcb8b", Dark: "#ebcb8b"},

		border:     lipgloss.AdaptiveColor{Light: "#d8dee9", Dark: "#3b4252"},
		dimmed:     lipgloss.AdaptiveColor{Light: "#4c566a", Dark: "#4c566a"},
		subtle:     lipgloss.AdaptiveColor{Light: "#434c5e", Dark: "#434c5e"},
		background: lipgloss.AdaptiveColor{Light: "#eceff4", Dark: "#2e3440"},

		selectionFg: lipgloss.Color("#2e3440"),
		selectionBg: lipgloss.Color("#88c0d0"),
		titleBg:     lipgloss.Color("#3b4252"),
	}.build()
}

// ThemeGruvbox returns a Gruvbox-inspired theme
func ThemeGruvbox() *Theme {
	return palette{
		name:       "gruvbox",
		primary:    lipgloss.AdaptiveColor{Light: "#af3a03", Dark: "#fe8019"},
		secondary:  lipgloss.AdaptiveColor{Light: "#79740e", Dark: "#b8bb26"},
		accent:     lipgloss.AdaptiveColor{Light: "#b16286", Dark: "#d3869b"},
		foreground: lipgloss.AdaptiveColor{Light: "#3c3836", Dark: "#ebdbb2"},
		muted:      lipgloss.AdaptiveColor{Light: "#7c6f64", Dark: "#928374"},
		errColor:   lipgloss.AdaptiveColor{Light: "#9d0006", Dark: "#fb4934"},
		success:    lipgloss.AdaptiveColor{Light: "#79740e", Dark: "#b8bb26"},
		warning:    lipgloss.AdaptiveColor{Light: "#b57614", Dark: "#fabd2f"},

		border:     lipgloss.AdaptiveColor{Light: "#d5c4a1", Dark: "#504945"},
		dimmed:     lipgloss.AdaptiveColor{Light: "#7c6f64", Dark: "#928374"},
		subtle:     lipgloss.AdaptiveColor{Light: "#665c54", Dark: "#665c54"},
		background: lipgloss.AdaptiveColor{Light: "#fbf1c7", Dark: "#282828"},

		selectionFg: lipgloss.Color("#282828"),
		selectionBg: lipgloss.Color("#fe8019"),
		titleBg:     lipgloss.Color("#3c3836"),
	}.build()
}

// ThemeTokyoNight returns a Tokyo Night-inspired theme
func ThemeTokyoNight() *Theme {
	return palette{
		name:       "tokyo-night",
		primary:    lipgloss.AdaptiveColor{Light: "#7aa2f7", Dark: "#7aa2f7"},
		secondary:  lipgloss.AdaptiveColor{Light: "#2ac3de", Dark: "#2ac3de"},
		accent:     lipgloss.AdaptiveColor{Light: "#bb9af7", Dark: "#bb9af7"},
		foreground: lipgloss.AdaptiveColor{Light: "#1a1b26", Dark: "#c0caf5"},
		muted:      lipgloss.AdaptiveColor{Light: "#565f89", Dark: "#565f89"},
		errColor:   lipgloss.AdaptiveColor{Light: "#f7768e", Dark: "#f7768e"},
		success:    lipgloss.AdaptiveColor{Light: "#9ece6a", Dark: "#9ece6a"},
		warning:    lipgloss.AdaptiveColor{Light: "#e0af68", Dark: "#e0af68"},

		border:     lipgloss.AdaptiveColor{Light: "#a9b1d6", Dark: "#292e42"},
		dimmed:     lipgloss.AdaptiveColor{Light: "#565f89", Dark: "#565f89"},
		subtle:     lipgloss.AdaptiveColor{Light: "#414868", Dark: "#414868"},
		background: lipgloss.AdaptiveColor{Light: "#d5d6db", Dark: "#1a1b26"},

		selectionFg: lipgloss.Color("#1a1b26"),
		selectionBg: lipgloss.Color("#7aa2f7"),
		titleBg:     lipgloss.Color("#24283b"),
	}.build()
}

// ThemeSolarized returns a Solarized Dark theme
func ThemeSolarized() *Theme {
	return palette{
		name:       "solarized",
		primary:    lipgloss.AdaptiveColor{Light: "#268bd2", Dark: "#268bd2"},
		secondary:  lipgloss.AdaptiveColor{Light: "#2aa198", Dark: "#2aa198"},
		accent:     lipgloss.AdaptiveColor{Light: "#6c71c4", Dark: "#6c71c4"},
		foreground: lipgloss.AdaptiveColor{Light: "#002b36", Dark: "#839496"},
		muted:      lipgloss.AdaptiveColor{Light: "#586e75", Dark: "#586e75"},
		errColor:   lipgloss.AdaptiveColor{Light: "#dc322f", Dark: "#dc322f"},
		success:    lipgloss.AdaptiveColor{Light: "#859900", Dark: "#859900"},
		warning:    lipgloss.AdaptiveColor{Light: "#cb4b16", Dark: "#cb4b16"},

		border:     lipgloss.AdaptiveColor{Light: "#93a1a1", Dark: "#073642"},
		dimmed:     lipgloss.AdaptiveColor{Light: "#586e75", Dark: "#586e75"},
		subtle:     lipgloss.AdaptiveColor{Light: "#657b83", Dark: "#657b83"},
		background: lipgloss.AdaptiveColor{Light: "#fdf6e3", Dark: "#002b36"},

		selectionFg: lipgloss.Color("#002b36"),
		selectionBg: lipgloss.Color("#268bd2"),
		titleBg:     lipgloss.Color("#073642"),
	}.build()
}

// ThemeMonokai returns a Monokai-inspired theme
func ThemeMonokai() *Theme {
	return palette{
		name:       "monokai",
		primary:    lipgloss.AdaptiveColor{Light: "#66d9ef", Dark: "#66d9ef"},
		secondary:  lipgloss.AdaptiveColor{Light: "#a6e22e", Dark: "#a6e22e"},
		accent:     lipgloss.AdaptiveColor{Light: "#ae81ff", Dark: "#ae81ff"},
		foreground: lipgloss.AdaptiveColor{Light: "#272822", Dark: "#f8f8f2"},
		muted:      lipgloss.AdaptiveColor{Light: "#75715e", Dark: "#75715e"},
		errColor:   lipgloss.AdaptiveColor{Light: "#f92672", Dark: "#f92672"},
		success:    lipgloss.AdaptiveColor{Light: "#a6e22e", Dark: "#a6e22e"},
		warning:    lipgloss.AdaptiveColor{Light: "#e6db74", Dark: "#e6db74"},

		border:     lipgloss.AdaptiveColor{Light: "#464741", Dark: "#464741"},
		dimmed:     lipgloss.AdaptiveColor{Light: "#75715e", Dark: "#75715e"},
		subtle:     lipgloss.AdaptiveColor{Light: "#49483e", Dark: "#49483e"},
		background: lipgloss.AdaptiveColor{Light: "#f8f8f2", Dark: "#272822"},

		selectionFg: lipgloss.Color("#272822"),
		selectionBg: lipgloss.Color("#66d9ef"),
		titleBg:     lipgloss.Color("#3e3d32"),
	}.build()
}

// GetTheme returns a theme by name, defaulting to Charm
func GetTheme(name string) *Theme {
	switch name {
	case "dracula":
		return ThemeDracula()
	case "catppuccin":
		return ThemeCatppuccin()
	case "nord":
		return ThemeNord()
	case "gruvbox":
		return ThemeGruvbox()
	case "tokyo-night":
		return ThemeTokyoNight()
	case "solarized":
		return ThemeSolarized()
	case "monokai":
		return ThemeMonokai()
	default:
		return ThemeCharm()
	}
}

// AvailableThemes returns a list of available theme names
func AvailableThemes() []string {
	return []string{"charm", "dracula", "catppuccin", "nord", "gruvbox", "tokyo-night", "solarized", "monokai"}
}
