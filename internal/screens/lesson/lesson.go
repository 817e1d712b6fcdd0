// Package lesson presents one lesson: its header, translated content and
// the navigation to its neighbours.
package lesson

import (
	tea "charm.land/bubbletea/v2"

	"github.com/tsotne01/css-animation-mastery/internal/curriculum"
	"github.com/tsotne01/css-animation-mastery/internal/router"
	"github.com/tsotne01/css-animation-mastery/internal/screen"
	"github.com/tsotne01/css-animation-mastery/internal/screens/playground"
	"github.com/tsotne01/css-animation-mastery/internal/screens/visualizer"
	"github.com/tsotne01/css-animation-mastery/internal/ui/layout"
)

// LessonScreen shows a single lesson.
type LessonScreen struct {
	env      *screen.Env
	lesson   curriculum.Lesson
	module   curriculum.Module
	adjacent curriculum.Adjacent

	scroll int
	// finished is set once the learner completes the course from the last
	// lesson.
	finished bool
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// New opens lesson and records it as the current lesson.
func New(env *screen.Env, l curriculum.Lesson) *LessonScreen {
	env.Progress.SetCurrentLesson(l.ID)
	m, _ := curriculum.GetModule(l.Module)
	return &LessonScreen{
		env:      env,
		lesson:   l,
		module:   m,
		adjacent: curriculum.AdjacentLessons(l.ID),
	}
}

func (s *LessonScreen) Init() tea.Cmd {
	return nil
}

func (s *LessonScreen) Title() string {
	return s.resolved().Title
}

// Lesson returns the lesson on screen.
func (s *LessonScreen) Lesson() curriculum.Lesson {
	return s.lesson
}

func (s *LessonScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "↑↓", Description: "Scroll"}}
	if s.adjacent.Prev != nil {
		hints = append(hints, layout.KeyHint{Key: "←", Description: s.env.T("nav.previous")})
	}
	if s.adjacent.Next != nil {
		hints = append(hints, layout.KeyHint{Key: "→", Description: s.env.T("nav.next")})
	} else {
		hints = append(hints, layout.KeyHint{Key: "→", Description: s.env.T("nav.complete_course")})
	}
	if s.hasActivity() {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: s.env.T("lesson.try_it")})
	}
	completeLabel := s.env.T("lesson.mark_complete")
	if s.env.Progress.IsComplete(s.lesson.ID) {
		completeLabel = s.env.T("lesson.mark_incomplete")
	}
	return append(hints,
		layout.KeyHint{Key: "c", Description: completeLabel},
		layout.KeyHint{Key: "Esc", Description: "Lessons"},
	)
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "up", "k":
		s.scroll = max(s.scroll-1, 0)
	case "down", "j":
		s.scroll++
	case "pgup":
		s.scroll = max(s.scroll-10, 0)
	case "pgdown", "space":
		s.scroll += 10
	case "home", "g":
		s.scroll = 0
	case "left", "h", "p":
		return s, s.goTo(s.adjacent.Prev)
	case "right", "l", "n":
		if s.adjacent.Next == nil {
			s.completeCourse()
			return s, nil
		}
		return s, s.goTo(s.adjacent.Next)
	case "c":
		s.env.Progress.Toggle(s.lesson.ID)
	case "enter":
		return s, s.openActivity()
	}
	return s, nil
}

// goTo replaces this screen with the lesson l.
func (s *LessonScreen) goTo(l *curriculum.Lesson) tea.Cmd {
	if l == nil {
		return nil
	}
	next := New(s.env, *l)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

// completeCourse marks the last lesson done.
func (s *LessonScreen) completeCourse() {
	s.env.Progress.MarkComplete(s.lesson.ID)
	s.finished = true
}

func (s *LessonScreen) hasActivity() bool {
	return s.lesson.HasPlayground() || s.lesson.ID == visualizer.LessonID
}

// openActivity pushes the playground, or the visualizer for the easing
// lesson.
func (s *LessonScreen) openActivity() tea.Cmd {
	var next screen.Screen
	switch {
	case s.lesson.ID == visualizer.LessonID:
		next = visualizer.New(s.env)
	case s.lesson.HasPlayground():
		next = playground.New(s.env, s.lesson)
	default:
		return nil
	}
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}
