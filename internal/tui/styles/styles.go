// Package styles defines the lipgloss styles used by showroom's views.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors - all colors meet WCAG AA contrast (4.5:1) on dark backgrounds
	PrimaryColor   = lipgloss.Color("#A78BFA") // Purple
	SecondaryColor = lipgloss.Color("#10B981") // Green
	MutedColor     = lipgloss.Color("#9CA3AF") // Gray
	TextColor      = lipgloss.Color("#F9FAFB") // Light text
	BorderColor    = lipgloss.Color("#6B7280") // Gray

	RedColor    = lipgloss.Color("#F87171")
	GreenColor  = lipgloss.Color("#10B981")
	BlueColor   = lipgloss.Color("#60A5FA")
	YellowColor = lipgloss.Color("#FBBF24")
	OrangeColor = lipgloss.Color("#FB923C")
	PinkColor   = lipgloss.Color("#F472B6")
)

// swatches maps well-known category names to a display color.
var swatches = map[string]lipgloss.Color{
	"red":    RedColor,
	"green":  GreenColor,
	"blue":   BlueColor,
	"yellow": YellowColor,
	"orange": OrangeColor,
	"pink":   PinkColor,
	"purple": PrimaryColor,
	"white":  TextColor,
	"grey":   MutedColor,
	"gray":   MutedColor,
}

// Swatch returns the display color for a category, falling back to the text
// color for names it does not know.
func Swatch(category string) lipgloss.Color {
	if c, ok := swatches[strings.ToLower(category)]; ok {
		return c
	}
	return TextColor
}

// Theme is the set of styles a view renders with.
type Theme struct {
	Name string

	Title    lipgloss.Style // Fieldset legend
	Muted    lipgloss.Style
	Box      lipgloss.Style // Fieldset border
	Option   lipgloss.Style // Unselected picker option
	Selected lipgloss.Style // Selected picker option
	ItemName lipgloss.Style
	HelpKey  lipgloss.Style

	colored bool
}

// NewTheme returns the theme with the given name. "mono" drops all colors;
// anything else yields the default theme.
func NewTheme(name string) *Theme {
	if name == "mono" {
		return &Theme{
			Name:     "mono",
			Title:    lipgloss.NewStyle().Bold(true),
			Muted:    lipgloss.NewStyle(),
			Box:      lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
			Option:   lipgloss.NewStyle().Padding(0, 1),
			Selected: lipgloss.NewStyle().Reverse(true).Padding(0, 1),
			ItemName: lipgloss.NewStyle(),
			HelpKey:  lipgloss.NewStyle().Bold(true),
		}
	}

	return &Theme{
		Name: "default",
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor),
		Muted: lipgloss.NewStyle().Foreground(MutedColor),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1),
		Option: lipgloss.NewStyle().
			Foreground(MutedColor).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(PrimaryColor).
			Padding(0, 1),
		ItemName: lipgloss.NewStyle().Bold(true).Foreground(TextColor),
		HelpKey:  lipgloss.NewStyle().Bold(true).Foreground(SecondaryColor),
		colored:  true,
	}
}

// Category renders a category label, tinted with its swatch when the theme
// has colors.
func (t *Theme) Category(category string) string {
	if !t.colored {
		return category
	}
	return lipgloss.NewStyle().Foreground(Swatch(category)).Render(category)
}
