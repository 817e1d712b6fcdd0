package lesson

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsotne01/css-animation-mastery/internal/curriculum"
	"github.com/tsotne01/css-animation-mastery/internal/prefs"
	"github.com/tsotne01/css-animation-mastery/internal/router"
	"github.com/tsotne01/css-animation-mastery/internal/screen/screentest"
	"github.com/tsotne01/css-animation-mastery/internal/screens/playground"
	"github.com/tsotne01/css-animation-mastery/internal/screens/visualizer"
)

func get(t *testing.T, id string) curriculum.Lesson {
	t.Helper()
	l, err := curriculum.GetLesson(id)
	require.NoError(t, err)
	return l
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestNew_SetsCurrentLesson(t *testing.T) {
	env, _ := screentest.Env(t)
	New(env, get(t, "transition-delay"))

	id, ok := env.Progress.CurrentLessonID()
	require.True(t, ok)
	assert.Equal(t, "transition-delay", id)
}

func TestView_Content(t *testing.T) {
	env, _ := screentest.Env(t)
	s := New(env, get(t, "intro-motion"))

	v := s.View(100, 200)
	assert.Contains(t, v, "Introduction to Motion")
	assert.Contains(t, v, "Why animation matters")
	assert.Contains(t, v, "Welcome to CSS Animation Mastery!")
	assert.Contains(t, v, "Transitions", "module badge")
	assert.Contains(t, v, "transition-property & duration →")
	assert.NotContains(t, v, "←", "first lesson has no previous")
}

func TestView_FallsBackToPlaceholder(t *testing.T) {
	env, _ := screentest.Env(t)
	s := New(env, get(t, "spring-physics"))

	v := s.View(100, 60)
	assert.Contains(t, v, "This lesson will teach you about Spring Physics in CSS.")
	assert.Contains(t, v, "Complete Course!")
}

func TestView_Georgian(t *testing.T) {
	env, _ := screentest.Env(t)
	env.Prefs.SetLanguage(prefs.LanguageKA)
	s := New(env, get(t, "transition-delay"))

	// No Georgian body for this lesson: the English body is shown under
	// Georgian UI strings.
	v := s.View(100, 200)
	assert.Contains(t, v, "transition-delay")
}

func TestNavigate(t *testing.T) {
	env, _ := screentest.Env(t)
	s := New(env, get(t, "transition-property"))

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	next := msg.Screen.(*LessonScreen)
	assert.Equal(t, "timing-function", next.Lesson().ID)

	id, _ := env.Progress.CurrentLessonID()
	assert.Equal(t, "timing-function", id)

	_, cmd = next.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	require.NotNil(t, cmd)
	prev := cmd().(router.ReplaceScreenMsg).Screen.(*LessonScreen)
	assert.Equal(t, "transition-property", prev.Lesson().ID)
}

func TestNavigate_FirstLessonHasNoPrevious(t *testing.T) {
	env, _ := screentest.Env(t)
	s := New(env, curriculum.First())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	assert.Nil(t, cmd)
}

func TestCompleteCourse(t *testing.T) {
	env, _ := screentest.Env(t)
	s := New(env, get(t, "spring-physics"))

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	assert.Nil(t, cmd)
	assert.True(t, env.Progress.IsComplete("spring-physics"))
	assert.Contains(t, s.View(100, 60), "Completed")
}

func TestToggleComplete(t *testing.T) {
	env, _ := screentest.Env(t)
	s := New(env, get(t, "translate"))

	s.Update(keyPress('c'))
	assert.True(t, env.Progress.IsComplete("translate"))
	assert.Contains(t, s.View(100, 40), "✓ Completed")

	s.Update(keyPress('c'))
	assert.False(t, env.Progress.IsComplete("translate"))
}

func TestOpenActivity(t *testing.T) {
	env, _ := screentest.Env(t)
	tests := []struct {
		id   string
		want any
	}{
		{"translate", &playground.PlaygroundScreen{}},
		{visualizer.LessonID, &visualizer.EasingScreen{}},
	}
	for _, tt := range tests {
		s := New(env, get(t, tt.id))
		_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
		require.NotNil(t, cmd, tt.id)
		push, ok := cmd().(router.PushScreenMsg)
		require.True(t, ok, tt.id)
		assert.IsType(t, tt.want, push.Screen, tt.id)
	}
}

func TestOpenActivity_NoPlayground(t *testing.T) {
	env, _ := screentest.Env(t)
	var plain curriculum.Lesson
	for _, l := range curriculum.AllLessons() {
		if !l.HasPlayground() && l.ID != visualizer.LessonID {
			plain = l
			break
		}
	}
	require.NotEmpty(t, plain.ID)

	s := New(env, plain)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestScrollIsClamped(t *testing.T) {
	env, _ := screentest.Env(t)
	s := New(env, get(t, "intro-motion"))
	for range 500 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	s.View(100, 20)
	assert.Less(t, s.scroll, 500)

	s.Update(keyPress('g'))
	assert.Equal(t, 0, s.scroll)
}
