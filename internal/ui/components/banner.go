package components

import (
	"charm.land/lipgloss/v2"

	"github.com/tsotne01/css-animation-mastery/internal/ui/theme"
)

// Banner renders a one-message status box, green for success and red
// otherwise.
func Banner(ok bool, message string, width int) string {
	icon, fg := "✗", theme.Error
	if ok {
		icon, fg = "✓", theme.Success
	}
	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(fg).
		Foreground(fg).
		Padding(0, 1).
		Render(icon + " " + message)
}
