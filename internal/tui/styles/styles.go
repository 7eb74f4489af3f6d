package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/okatsune/mania/internal/domain"
)

// Palette is the color set for one theme.
type Palette struct {
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Subtext   lipgloss.Color
	Dim       lipgloss.Color
	Highlight lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
}

// DarkPalette is the default theme.
func DarkPalette() Palette {
	return Palette{
		Accent:    lipgloss.Color("#E5A00D"),
		Text:      lipgloss.Color("#F9FAFB"),
		Subtext:   lipgloss.Color("#9CA3AF"),
		Dim:       lipgloss.Color("#6B7280"),
		Highlight: lipgloss.Color("#1F2937"),
		Error:     lipgloss.Color("#EF4444"),
		Success:   lipgloss.Color("#10B981"),
	}
}

// LightPalette is the alternate theme.
func LightPalette() Palette {
	return Palette{
		Accent:    lipgloss.Color("#B45309"),
		Text:      lipgloss.Color("#111827"),
		Subtext:   lipgloss.Color("#4B5563"),
		Dim:       lipgloss.Color("#9CA3AF"),
		Highlight: lipgloss.Color("#E5E7EB"),
		Error:     lipgloss.Color("#B91C1C"),
		Success:   lipgloss.Color("#047857"),
	}
}

// Styles holds the rendered lipgloss styles for one palette.
type Styles struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Dim       lipgloss.Style
	Accent    lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Selected  lipgloss.Style
	Section   lipgloss.Style
	Panel     lipgloss.Style
	StatusBar lipgloss.Style
	Badge     lipgloss.Style
}

// ForTheme builds the style set for a theme.
func ForTheme(theme domain.Theme) Styles {
	p := DarkPalette()
	if theme == domain.ThemeLight {
		p = LightPalette()
	}
	return Styles{
		Title:    lipgloss.NewStyle().Foreground(p.Text).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(p.Subtext),
		Dim:      lipgloss.NewStyle().Foreground(p.Dim),
		Accent:   lipgloss.NewStyle().Foreground(p.Accent),
		Error:    lipgloss.NewStyle().Foreground(p.Error),
		Success:  lipgloss.NewStyle().Foreground(p.Success),
		Selected: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Highlight).
			Bold(true),
		Section: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true).
			MarginTop(1),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Dim).
			Padding(0, 1),
		StatusBar: lipgloss.NewStyle().Foreground(p.Subtext),
		Badge: lipgloss.NewStyle().
			Foreground(p.Highlight).
			Background(p.Accent).
			Padding(0, 1),
	}
}

// Marker characters for list membership indicators.
const (
	FavoriteChar  = "♥"
	WatchlistChar = "◌"
)
