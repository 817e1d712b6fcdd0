package sidebar

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsotne01/css-animation-mastery/internal/curriculum"
	"github.com/tsotne01/css-animation-mastery/internal/router"
	"github.com/tsotne01/css-animation-mastery/internal/screen/screentest"
	"github.com/tsotne01/css-animation-mastery/internal/screens/lesson"
)

func TestNew_StartsAtFirstLesson(t *testing.T) {
	env, _ := screentest.Env(t)
	s := New(env)
	require.NotNil(t, s.Selected())
	assert.Equal(t, curriculum.First().ID, s.Selected().ID)
}

func TestNew_ResumesCurrentLesson(t *testing.T) {
	env, _ := screentest.Env(t)
	want := curriculum.AllLessons()[10].ID
	env.Progress.SetCurrentLesson(want)

	s := New(env)
	assert.Equal(t, want, s.Selected().ID)
}

func TestCursor_SkipsHeaders(t *testing.T) {
	env, _ := screentest.Env(t)
	s := New(env)
	first := curriculum.Modules()[0]

	for range len(first.Lessons) {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	second := curriculum.Modules()[1]
	assert.Equal(t, second.Lessons[0].ID, s.Selected().ID)

	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, first.Lessons[len(first.Lessons)-1].ID, s.Selected().ID)

	for range 5 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	}
	assert.Equal(t, first.Lessons[0].ID, s.Selected().ID, "stops at the first lesson")
}

func TestModuleJumps(t *testing.T) {
	env, _ := screentest.Env(t)
	s := New(env)
	mods := curriculum.Modules()

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Equal(t, mods[1].Lessons[0].ID, s.Selected().ID)
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Equal(t, mods[2].Lessons[0].ID, s.Selected().ID)

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	assert.Equal(t, mods[1].Lessons[0].ID, s.Selected().ID)
}

func TestOpen_PushesLesson(t *testing.T) {
	env, _ := screentest.Env(t)
	s := New(env)
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	want := s.Selected().ID

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.Equal(t, want, push.Screen.(*lesson.LessonScreen).Lesson().ID)

	id, _ := env.Progress.CurrentLessonID()
	assert.Equal(t, want, id)
}

func TestFollowsLessonNavigation(t *testing.T) {
	env, _ := screentest.Env(t)
	s := New(env)

	last := curriculum.AllLessons()[curriculum.TotalLessons()-1]
	env.Progress.SetCurrentLesson(last.ID)
	s.View(80, 30)
	assert.Equal(t, last.ID, s.Selected().ID)
}

func TestToggleAndProgress(t *testing.T) {
	env, _ := screentest.Env(t)
	s := New(env)
	id := s.Selected().ID

	s.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	assert.True(t, env.Progress.IsComplete(id))

	v := s.View(80, 30)
	assert.Contains(t, v, "1 of 50 lessons")
	assert.Contains(t, v, "✓")
	assert.Contains(t, v, "1/")
}

func TestView_ScrollsToCursor(t *testing.T) {
	env, _ := screentest.Env(t)
	s := New(env)
	for range 40 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	s.View(80, 20)
	assert.Positive(t, s.scrollOffset)
	assert.LessOrEqual(t, s.scrollOffset, s.cursor)
}
