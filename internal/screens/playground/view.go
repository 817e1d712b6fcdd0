package playground

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/tsotne01/css-animation-mastery/internal/challenge"
	"github.com/tsotne01/css-animation-mastery/internal/tutor"
	"github.com/tsotne01/css-animation-mastery/internal/ui/components"
	"github.com/tsotne01/css-animation-mastery/internal/ui/layout"
	"github.com/tsotne01/css-animation-mastery/internal/ui/theme"
)

func (s *PlaygroundScreen) View(width, height int) string {
	toolbar := s.renderToolbar()
	banner := s.renderBanner(width)

	used := lipgloss.Height(toolbar) + 1
	if banner != "" {
		used += lipgloss.Height(banner)
	}
	bodyHeight := max(height-used, 3)

	var body string
	if s.pg.Fullscreen() {
		body = s.renderEditor(width, bodyHeight)
	} else {
		editorWidth := width * 11 / 20
		side := s.renderSide(width-editorWidth-1, bodyHeight)
		body = lipgloss.JoinHorizontal(lipgloss.Top, s.renderEditor(editorWidth, bodyHeight), " ", side)
	}

	parts := []string{toolbar, body}
	if banner != "" {
		parts = append(parts, banner)
	}
	return strings.Join(parts, "\n")
}

func (s *PlaygroundScreen) renderToolbar() string {
	copyLabel := s.env.T("playground.copy")
	if s.copied {
		copyLabel = "✓ " + s.env.T("playground.copied")
	}
	bar := components.Toolbar(
		components.NewButton("F5", "▶ "+s.env.T("playground.run"), s.pg.Dirty()),
		components.NewButton("F6", s.env.T("playground.reset"), false),
		components.NewButton("F7", copyLabel, s.copied),
		components.NewButton("F8", s.env.T("playground.fullscreen"), s.pg.Fullscreen()),
	)
	if s.pg.Dirty() {
		bar += "  " + theme.Hint.Render("● unsaved changes, F5 to run")
	}
	if s.copyErr != nil {
		bar += "  " + lipgloss.NewStyle().Foreground(theme.Error).Render("clipboard: "+s.copyErr.Error())
	}
	return bar
}

func (s *PlaygroundScreen) renderEditor(width, height int) string {
	title := theme.Heading.Render("/* " + s.env.T("playground.css") + " */")
	s.editor.SetSize(width-2, height-3)
	return theme.Card.
		Width(width).
		Height(height).
		Render(title + "\n" + s.editor.View())
}

// renderSide shows where the preview lives, the outline of the committed
// stylesheet and the tutor's answer.
func (s *PlaygroundScreen) renderSide(width, height int) string {
	var b strings.Builder
	inner := max(width-4, 10)
	wrap := lipgloss.NewStyle().Width(inner)

	b.WriteString(theme.Heading.Render("👁 " + s.env.T("playground.preview")))
	b.WriteString("\n")
	if s.env.PreviewURL != "" {
		b.WriteString(wrap.Foreground(theme.Secondary).Render(s.env.PreviewURL))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(s.env.T("playground.hover_tip")))
	} else {
		b.WriteString(theme.Hint.Render("preview server disabled"))
	}
	b.WriteString("\n\n")

	b.WriteString(theme.Heading.Render("☰ " + s.env.T("playground.outline")))
	b.WriteString("\n")
	lines := s.outline.Lines()
	if len(lines) == 0 {
		b.WriteString(theme.Hint.Render("(empty)"))
		b.WriteString("\n")
	}
	for _, l := range lines {
		b.WriteString(wrap.Foreground(theme.Text).Render(l))
		b.WriteString("\n")
	}
	if trans, anims := s.outline.Animated(); len(trans)+len(anims) > 0 {
		var moving []string
		moving = append(moving, trans...)
		moving = append(moving, anims...)
		b.WriteString(theme.Hint.Render("animates: " + strings.Join(moving, ", ")))
		b.WriteString("\n")
	}

	if s.tutorAvailable() {
		b.WriteString("\n")
		b.WriteString(theme.Heading.Render("✦ " + s.env.T("playground.ask_tutor")))
		b.WriteString("\n")
		b.WriteString(s.renderHint(wrap))
	}

	text, _ := layout.Clip(b.String(), 0, max(height-2, 1))
	return theme.Card.Width(width).Height(height).Render(text)
}

func (s *PlaygroundScreen) renderHint(wrap lipgloss.Style) string {
	switch {
	case s.hintErr != nil:
		return wrap.Foreground(theme.Error).Render(tutor.Describe(s.hintErr, s.env.Lang()))
	case s.hint != nil:
		out := wrap.Foreground(theme.Text).Render(s.hint.Text)
		if s.hint.Snippet != "" {
			out += "\n" + theme.Code.Render(s.hint.Snippet)
		}
		return out
	case s.hintAsked && s.env.Tutor.Busy():
		return theme.Hint.Render("thinking…")
	default:
		return theme.Hint.Render("F9")
	}
}

// renderBanner shows the verdict of the last run, if the lesson has a
// validator and it has run. A pass is worded in the current language.
func (s *PlaygroundScreen) renderBanner(width int) string {
	res, ok := s.pg.Result()
	if !ok {
		return ""
	}
	msg := res.Message
	if res.Valid {
		msg = challenge.SuccessFor(s.lesson.ID, s.env.Lang())
	}
	label := s.env.T("lesson.challenge")
	return components.Banner(res.Valid, label+": "+msg, width)
}
