package lesson

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/tsotne01/css-animation-mastery/internal/content"
	"github.com/tsotne01/css-animation-mastery/internal/ui/layout"
	"github.com/tsotne01/css-animation-mastery/internal/ui/theme"
)

func (s *LessonScreen) resolved() content.Resolved {
	return content.Resolve(s.env.Lang(), s.lesson)
}

func (s *LessonScreen) View(width, height int) string {
	width = min(width, 100)
	header := s.renderHeader(width)
	nav := s.renderNav(width)

	bodyHeight := max(height-lipgloss.Height(header)-lipgloss.Height(nav)-2, 1)
	body, offset := layout.Clip(s.renderBody(width-2), s.scroll, bodyHeight)
	s.scroll = offset

	return header + "\n\n" + body + "\n" + nav
}

func (s *LessonScreen) renderHeader(width int) string {
	r := s.resolved()
	badge := theme.Badge.Render(s.module.Icon + " " + s.module.Title)
	if s.env.Progress.IsComplete(s.lesson.ID) {
		badge += "  " + theme.Correct.Render("✓ "+s.env.T("lesson.completed"))
	}
	title := theme.Title.Render(s.lesson.Icon + "  " + r.Title)
	subtitle := theme.Subtitle.Width(width).Render(r.Subtitle)
	return badge + "\n" + title + "\n" + subtitle
}

// renderBody lays out every content block the lesson has. Missing
// sections are skipped.
func (s *LessonScreen) renderBody(width int) string {
	r := s.resolved()
	b := r.Block
	text := theme.Body.Width(width)
	var out []string

	heading := func(icon, key string) {
		out = append(out, "", theme.Heading.Render(icon+" "+s.env.T(key)))
	}
	bullets := func(items []string, mark string) {
		for _, it := range items {
			out = append(out, text.Render(mark+" "+it))
		}
	}

	if !b.HasBody() {
		heading("📚", "lesson.content")
		out = append(out, text.Render(s.env.T("lesson.no_content", r.Title)))
	}
	if b.Intro != "" {
		out = append(out, text.Render(b.Intro))
	}
	for _, sec := range b.Sections {
		if sec.Heading != "" {
			out = append(out, "", theme.Heading.Render(sec.Heading))
		}
		if sec.Text != "" {
			out = append(out, text.Render(sec.Text))
		}
		bullets(sec.Items, "•")
		for _, p := range sec.Pairs {
			line := theme.Code.Render(p.Term) + "  " + p.Desc
			if p.Extra != "" {
				line += "  " + theme.Hint.Render(p.Extra)
			}
			out = append(out, text.Render(line))
		}
		if sec.Code != "" {
			out = append(out, renderCode(sec.Code, width))
		}
	}
	if b.Tip != "" {
		out = append(out, "", lipgloss.NewStyle().Foreground(theme.Primary).Render("💡 "+s.env.T("lesson.tip")+": ")+b.Tip)
	}
	if len(b.KeyPoints) > 0 {
		heading("🔑", "lesson.key_points")
		bullets(b.KeyPoints, "✓")
	}
	if len(b.CommonMistakes) > 0 {
		heading("⚠️", "lesson.common_mistakes")
		bullets(b.CommonMistakes, "✗")
	}
	if len(b.Requirements) > 0 {
		heading("🎯", "lesson.requirements")
		bullets(b.Requirements, "□")
	}
	if len(b.Hints) > 0 {
		heading("💭", "lesson.hints")
		bullets(b.Hints, "›")
	}
	if b.StarterCode != "" {
		heading("📝", "lesson.starter_code")
		out = append(out, renderCode(b.StarterCode, width))
	}
	if s.hasActivity() {
		out = append(out, "", theme.Hint.Render("⏎ "+s.env.T("lesson.try_it")))
	}
	return strings.Join(out, "\n")
}

func renderCode(code string, width int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(theme.Border).
		PaddingLeft(1).
		Width(width).
		Render(strings.TrimRight(code, "\n"))
}

// renderNav shows the neighbours, or the course finish on the last lesson.
func (s *LessonScreen) renderNav(width int) string {
	lang := s.env.Lang()
	left := ""
	if p := s.adjacent.Prev; p != nil {
		left = theme.Unselected.Render("← " + content.Resolve(lang, *p).Title)
	}

	var right string
	switch {
	case s.adjacent.Next != nil:
		right = theme.Selected.Render(content.Resolve(lang, *s.adjacent.Next).Title + " →")
	case s.finished:
		right = theme.Correct.Render("🎉 " + s.env.T("lesson.completed"))
	default:
		right = theme.Correct.Render("🎉 " + s.env.T("nav.complete_course"))
	}

	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}
