// Package theme holds the palette and shared styles of the terminal UI.
// Apply swaps every style at once when the learner switches between dark
// and light mode.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette is one full set of UI colours.
type Palette struct {
	Name      string
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	Bg        color.Color
	BgCard    color.Color
	Border    color.Color
}

// Dark is the default palette, close to the web course's dark mode.
var Dark = Palette{
	Name:      "dark",
	Primary:   lipgloss.Color("#A78BFA"), // Violet
	Secondary: lipgloss.Color("#22D3EE"), // Cyan
	Accent:    lipgloss.Color("#F472B6"), // Pink
	Success:   lipgloss.Color("#4ADE80"),
	Error:     lipgloss.Color("#F87171"),
	Text:      lipgloss.Color("#F1F5F9"),
	TextDim:   lipgloss.Color("#94A3B8"),
	Bg:        lipgloss.Color("#0A0F1A"),
	BgCard:    lipgloss.Color("#151C2C"),
	Border:    lipgloss.Color("#334155"),
}

// Light keeps the same hues with enough contrast on a pale background.
var Light = Palette{
	Name:      "light",
	Primary:   lipgloss.Color("#6D28D9"),
	Secondary: lipgloss.Color("#0E7490"),
	Accent:    lipgloss.Color("#BE185D"),
	Success:   lipgloss.Color("#15803D"),
	Error:     lipgloss.Color("#B91C1C"),
	Text:      lipgloss.Color("#0F172A"),
	TextDim:   lipgloss.Color("#475569"),
	Bg:        lipgloss.Color("#F8FAFC"),
	BgCard:    lipgloss.Color("#E2E8F0"),
	Border:    lipgloss.Color("#CBD5E1"),
}

// Colours of the active palette.
var (
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	Bg        color.Color
	BgCard    color.Color
	Border    color.Color
)

// Typography
var (
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style
	Heading  lipgloss.Style
	Code     lipgloss.Style
)

// Layout
var (
	Header lipgloss.Style
	Footer lipgloss.Style
	Card   lipgloss.Style
	Badge  lipgloss.Style
)

// States
var (
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Correct    lipgloss.Style
	Incorrect  lipgloss.Style
)

// Components
var (
	ProgressFilled lipgloss.Style
	ProgressEmpty  lipgloss.Style
	ButtonActive   lipgloss.Style
	ButtonInactive lipgloss.Style
)

var current Palette

func init() {
	Use(Dark)
}

// Apply switches to the palette named mode. Anything other than "light"
// selects the dark palette.
func Apply(mode string) {
	if mode == Light.Name {
		Use(Light)
		return
	}
	Use(Dark)
}

// Current returns the active palette.
func Current() Palette {
	return current
}

// Use installs p and rebuilds every style from it.
func Use(p Palette) {
	current = p

	Primary, Secondary, Accent = p.Primary, p.Secondary, p.Accent
	Success, Error = p.Success, p.Error
	Text, TextDim = p.Text, p.TextDim
	Bg, BgCard, Border = p.Bg, p.BgCard, p.Border

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
		Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Heading = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	Code = lipgloss.NewStyle().
		Foreground(Accent)

	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	Badge = lipgloss.NewStyle().
		Foreground(Bg).
		Background(Secondary).
		Padding(0, 1)

	Selected = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Unselected = lipgloss.NewStyle().
		Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	ProgressFilled = lipgloss.NewStyle().
		Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
		Background(Border)

	ButtonActive = lipgloss.NewStyle().
		Background(Primary).
		Foreground(Bg).
		Bold(true).
		Padding(0, 1)

	ButtonInactive = lipgloss.NewStyle().
		Foreground(Text).
		Background(BgCard).
		Padding(0, 1)
}
