package visualizer

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/tsotne01/css-animation-mastery/internal/ui/theme"
)

func (s *EasingScreen) View(width, height int) string {
	menuWidth := 22
	plotWidth := max(width-menuWidth-6, 20)
	plotHeight := max(height-10, 6)

	menu := lipgloss.NewStyle().Width(menuWidth).Render(
		theme.Heading.Render("Presets") + "\n\n" + s.menu.View())

	var b strings.Builder
	for _, line := range s.curve.Plot(plotWidth, plotHeight) {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Render(line))
		b.WriteString("\n")
	}

	track := []rune(strings.Repeat("─", plotWidth))
	track[s.curve.Track(plotWidth, s.Progress())] = '■'
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render(string(track)))
	b.WriteString("\n\n")

	name := s.presets[s.menu.Selected].Name
	if s.custom {
		name = "custom"
	}
	b.WriteString(theme.Heading.Render(name) + "  " + theme.Code.Render(s.curve.String()))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(s.curve.Declaration()))
	b.WriteString("\n")
	b.WriteString(s.renderPoints())
	if s.copied {
		b.WriteString("\n" + theme.Correct.Render("✓ "+s.env.T("playground.copied")))
	} else if s.copyErr != nil {
		b.WriteString("\n" + theme.Incorrect.Render("clipboard: "+s.copyErr.Error()))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, menu, "  ", b.String())
}

func (s *EasingScreen) renderPoints() string {
	p1 := "P1 " + fmtPoint(s.curve.P1.X, s.curve.P1.Y)
	p2 := "P2 " + fmtPoint(s.curve.P2.X, s.curve.P2.Y)
	if s.point == 1 {
		p1 = theme.Selected.Render("▸ " + p1)
		p2 = theme.Unselected.Render("  " + p2)
	} else {
		p1 = theme.Unselected.Render("  " + p1)
		p2 = theme.Selected.Render("▸ " + p2)
	}
	return p1 + "   " + p2
}

func fmtPoint(x, y float64) string {
	return "(" + strconv.FormatFloat(x, 'f', 2, 64) + ", " + strconv.FormatFloat(y, 'f', 2, 64) + ")"
}
