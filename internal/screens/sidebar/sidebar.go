// Package sidebar is the course outline: every module with its lessons,
// completion ticks and overall progress.
package sidebar

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tsotne01/css-animation-mastery/internal/content"
	"github.com/tsotne01/css-animation-mastery/internal/curriculum"
	"github.com/tsotne01/css-animation-mastery/internal/router"
	"github.com/tsotne01/css-animation-mastery/internal/screen"
	"github.com/tsotne01/css-animation-mastery/internal/screens/lesson"
	"github.com/tsotne01/css-animation-mastery/internal/ui/components"
	"github.com/tsotne01/css-animation-mastery/internal/ui/layout"
	"github.com/tsotne01/css-animation-mastery/internal/ui/theme"
)

type rowKind int

const (
	rowModuleHeader rowKind = iota
	rowLesson
)

type row struct {
	kind   rowKind
	module curriculum.Module
	lesson *curriculum.Lesson
}

// SidebarScreen lists the course grouped by module.
type SidebarScreen struct {
	env          *screen.Env
	rows         []row
	cursor       int
	scrollOffset int
	// synced is the current lesson the cursor last followed.
	synced string
}

var _ screen.Screen = (*SidebarScreen)(nil)
var _ screen.KeyHintProvider = (*SidebarScreen)(nil)

// New creates the sidebar with the cursor on the current lesson, or on
// the first lesson when there is none.
func New(env *screen.Env) *SidebarScreen {
	var rows []row
	for _, m := range curriculum.Modules() {
		rows = append(rows, row{kind: rowModuleHeader, module: m})
		for i := range m.Lessons {
			rows = append(rows, row{kind: rowLesson, module: m, lesson: &m.Lessons[i]})
		}
	}

	s := &SidebarScreen{env: env, rows: rows}
	s.moveCursor(1)
	s.followCurrent()
	return s
}

func (s *SidebarScreen) Init() tea.Cmd {
	return nil
}

func (s *SidebarScreen) Title() string {
	return s.env.T("header.subtitle")
}

func (s *SidebarScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Module"},
		{Key: "Enter", Description: "Open"},
		{Key: "Space", Description: s.env.T("lesson.mark_complete")},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *SidebarScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "tab":
			s.nextModule()
		case "shift+tab":
			s.prevModule()
		case "space":
			if l := s.Selected(); l != nil {
				s.env.Progress.Toggle(l.ID)
			}
		case "enter":
			return s, s.open()
		}
	}
	return s, nil
}

// Selected returns the lesson under the cursor.
func (s *SidebarScreen) Selected() *curriculum.Lesson {
	if s.cursor < 0 || s.cursor >= len(s.rows) {
		return nil
	}
	return s.rows[s.cursor].lesson
}

// moveCursor moves the cursor by delta, skipping module headers.
func (s *SidebarScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowLesson {
			s.cursor = next
			return
		}
		next += delta
	}
}

// nextModule jumps the cursor to the first lesson of the next module.
func (s *SidebarScreen) nextModule() {
	current := s.rows[s.cursor].module.ID
	for i := s.cursor + 1; i < len(s.rows); i++ {
		if s.rows[i].kind == rowLesson && s.rows[i].module.ID != current {
			s.cursor = i
			return
		}
	}
}

// prevModule jumps the cursor to the first lesson of the previous module.
func (s *SidebarScreen) prevModule() {
	current := s.rows[s.cursor].module.ID
	for i := s.cursor - 1; i >= 0; i-- {
		r := s.rows[i]
		if r.kind == rowModuleHeader && r.module.ID != current {
			s.cursor = i
			s.moveCursor(1)
			return
		}
	}
}

// followCurrent puts the cursor on the current lesson whenever it changed
// since the last call, so returning from a lesson lands on it.
func (s *SidebarScreen) followCurrent() {
	id, ok := s.env.Progress.CurrentLessonID()
	if !ok || id == s.synced {
		return
	}
	s.synced = id
	for i, r := range s.rows {
		if r.kind == rowLesson && r.lesson.ID == id {
			s.cursor = i
			return
		}
	}
}

func (s *SidebarScreen) open() tea.Cmd {
	l := s.Selected()
	if l == nil {
		return nil
	}
	next := lesson.New(s.env, *l)
	s.synced = l.ID
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (s *SidebarScreen) View(width, height int) string {
	s.followCurrent()

	width = min(width, 72)
	progress := s.renderProgress(width)
	listHeight := max(height-lipgloss.Height(progress)-1, 1)
	s.adjustScroll(listHeight)

	var lines []string
	for i := s.scrollOffset; i < len(s.rows) && len(lines) < listHeight; i++ {
		r := s.rows[i]
		switch r.kind {
		case rowModuleHeader:
			lines = append(lines, s.renderModuleHeader(r.module, width))
		case rowLesson:
			lines = append(lines, s.renderLessonRow(r, i == s.cursor, width))
		}
	}
	return progress + "\n" + strings.Join(lines, "\n")
}

func (s *SidebarScreen) renderProgress(width int) string {
	p := s.env.Progress
	bar := components.NewProgressBar(s.env.T("nav.progress"), p.ProgressPercent(), true, width-2)
	count := theme.Hint.Render(s.env.T("nav.lessons_done", p.CompletedCount(), p.TotalCount()))
	return " " + bar.View() + "\n " + count
}

// adjustScroll ensures the cursor is visible within the viewport.
func (s *SidebarScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	headerRow := s.cursor
	for headerRow > 0 && s.rows[headerRow-1].kind == rowModuleHeader {
		headerRow--
	}
	if headerRow < s.scrollOffset {
		s.scrollOffset = headerRow
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

func (s *SidebarScreen) renderModuleHeader(m curriculum.Module, width int) string {
	done, total := curriculum.ModuleProgress(m.ID, s.env.Progress.IsComplete)
	title := strings.ToUpper(m.Title)
	count := fmt.Sprintf("%d/%d", done, total)
	gap := max(width-lipgloss.Width(m.Icon+" "+title)-len(count)-2, 1)
	return lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(" "+m.Icon+" "+title) +
		strings.Repeat(" ", gap) +
		theme.Hint.Render(count)
}

func (s *SidebarScreen) renderLessonRow(r row, selected bool, width int) string {
	l := r.lesson
	title := content.Resolve(s.env.Lang(), *l).Title

	tick := "○"
	tickStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if s.env.Progress.IsComplete(l.ID) {
		tick = "✓"
		tickStyle = lipgloss.NewStyle().Foreground(theme.Success)
	}

	current, _ := s.env.Progress.CurrentLessonID()
	marker := "  "
	style := theme.Unselected
	switch {
	case selected:
		marker = "▸ "
		style = theme.Selected
	case l.ID == current:
		marker = "• "
		style = lipgloss.NewStyle().Foreground(theme.Primary)
	}

	label := l.Icon + " " + title
	if l.IsChallenge() {
		label += " " + lipgloss.NewStyle().Foreground(theme.Accent).Render("★")
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(
		"  " + style.Render(marker) + tickStyle.Render(tick) + " " + style.Render(label))
}
