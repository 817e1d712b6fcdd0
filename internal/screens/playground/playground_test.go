package playground

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsotne01/css-animation-mastery/internal/curriculum"
	"github.com/tsotne01/css-animation-mastery/internal/llm"
	"github.com/tsotne01/css-animation-mastery/internal/prefs"
	"github.com/tsotne01/css-animation-mastery/internal/preview"
	"github.com/tsotne01/css-animation-mastery/internal/screen/screentest"
	"github.com/tsotne01/css-animation-mastery/internal/tutor"
)

func lesson(t *testing.T, id string) curriculum.Lesson {
	t.Helper()
	l, err := curriculum.GetLesson(id)
	require.NoError(t, err)
	return l
}

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func typeText(s *PlaygroundScreen, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestInit_RunsDefault(t *testing.T) {
	env, surface := screentest.Env(t)
	l := lesson(t, "transition-property")
	s := New(env, l)
	s.Init()

	assert.Equal(t, 1, surface.Renders())
	doc, ok := surface.Last()
	require.True(t, ok)
	assert.Equal(t, l.DefaultCSS, doc.CSS)
	assert.False(t, s.Playground().Dirty())
	assert.NotEmpty(t, s.outline.Lines())
}

func TestTyping_DoesNotRender(t *testing.T) {
	env, surface := screentest.Env(t)
	s := New(env, lesson(t, "transition-property"))
	s.Init()

	typeText(s, "/*x*/")
	assert.Equal(t, 1, surface.Renders())
	assert.True(t, s.Playground().Dirty())
	assert.Contains(t, s.Playground().Draft(), "/*x*/")
}

func TestRun_RendersAndValidates(t *testing.T) {
	env, surface := screentest.Env(t)
	s := New(env, lesson(t, "challenge-hover-card"))
	s.Init()

	_, ok := s.Playground().Result()
	assert.True(t, ok, "activation runs the default code")

	s.editor.SetValue(".card{transition:transform .3s}.card:hover{transform:translateY(-8px)}")
	s.Update(key(tea.KeyF5))

	assert.Equal(t, 2, surface.Renders())
	res, ok := s.Playground().Result()
	require.True(t, ok)
	assert.True(t, res.Valid)
	assert.Contains(t, s.View(120, 40), res.Message)
}

func TestReset_RestoresEditor(t *testing.T) {
	env, _ := screentest.Env(t)
	l := lesson(t, "challenge-hover-card")
	s := New(env, l)
	s.Init()

	s.editor.SetValue("broken")
	s.Update(key(tea.KeyF5))
	s.Update(key(tea.KeyF6))

	assert.Equal(t, l.DefaultCSS, s.editor.Value())
	assert.Equal(t, l.DefaultCSS, s.Playground().Committed())
	_, ok := s.Playground().Result()
	assert.False(t, ok)
}

func TestCopy_Flash(t *testing.T) {
	env, _ := screentest.Env(t)
	var copied string
	s := New(env, lesson(t, "translate"), preview.WithClipboard(func(v string) error {
		copied = v
		return nil
	}))
	s.Init()
	typeText(s, "/*c*/")

	_, cmd := s.Update(key(tea.KeyF7))
	assert.NotNil(t, cmd)
	assert.True(t, s.copied)
	assert.Contains(t, copied, "/*c*/")
	assert.Contains(t, s.renderToolbar(), "Copied!")

	s.Update(copyFlashDoneMsg{})
	assert.False(t, s.copied)
}

func TestCopy_Error(t *testing.T) {
	env, _ := screentest.Env(t)
	s := New(env, lesson(t, "translate"), preview.WithClipboard(func(string) error {
		return errors.New("no clipboard")
	}))
	s.Init()

	_, cmd := s.Update(key(tea.KeyF7))
	assert.Nil(t, cmd)
	assert.False(t, s.copied)
	assert.Contains(t, s.renderToolbar(), "no clipboard")
}

func TestFullscreen(t *testing.T) {
	env, _ := screentest.Env(t)
	s := New(env, lesson(t, "translate"))
	s.Init()

	assert.Contains(t, s.View(120, 40), env.PreviewURL)
	s.Update(key(tea.KeyF8))
	assert.True(t, s.Playground().Fullscreen())
	assert.NotContains(t, s.View(120, 40), env.PreviewURL)
}

func TestTutor_HiddenWithoutProvider(t *testing.T) {
	env, _ := screentest.Env(t)
	s := New(env, lesson(t, "challenge-hover-card"))
	s.Init()

	_, cmd := s.Update(key(tea.KeyF9))
	assert.Nil(t, cmd)
	for _, h := range s.KeyHints() {
		assert.NotEqual(t, "F9", h.Key)
	}
}

func TestTutor_Hint(t *testing.T) {
	env, _ := screentest.Env(t)
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"hint":"Add a :hover rule.","focus":["selector"],"snippet":".card:hover { }"}`),
	})
	env.Tutor = tutor.NewService(mock, tutor.DefaultConfig(), env.Log)

	s := New(env, lesson(t, "challenge-hover-card"))
	s.Init()

	_, cmd := s.Update(key(tea.KeyF9))
	require.NotNil(t, cmd)
	assert.True(t, s.hintAsked)

	require.Eventually(t, func() bool {
		s.Update(hintPollMsg{})
		return s.hint != nil
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "Add a :hover rule.", s.hint.Text)
	assert.Contains(t, s.View(120, 40), "Add a :hover rule.")
}

func TestLeave_DropsPendingHint(t *testing.T) {
	env, _ := screentest.Env(t)
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"hint":"Stale hint.","focus":[],"snippet":""}`),
	})
	env.Tutor = tutor.NewService(mock, tutor.DefaultConfig(), env.Log)

	s := New(env, lesson(t, "challenge-hover-card"))
	s.Init()
	s.Update(key(tea.KeyF9))
	s.Leave()

	assert.Never(t, func() bool {
		_, ok := env.Tutor.ConsumeHint()
		return ok
	}, 200*time.Millisecond, 20*time.Millisecond)
}

func TestVerdict_FollowsLanguage(t *testing.T) {
	env, _ := screentest.Env(t)
	s := New(env, lesson(t, "challenge-hover-card"))
	s.Init()

	env.Prefs.SetLanguage(prefs.LanguageKA)
	s.editor.SetValue(".card{transition:transform .3s}.card:hover{transform:translateY(-8px)}")
	s.run()

	res, ok := s.pg.Result()
	require.True(t, ok)
	require.True(t, res.Valid)
	assert.Contains(t, res.Message, "შესანიშნავია")
	assert.Contains(t, s.renderBanner(200), "შესანიშნავია")

	// Switching back after the run rewords the banner without a rerun.
	env.Prefs.SetLanguage(prefs.LanguageEN)
	assert.Contains(t, s.renderBanner(200), "Great job! Your card has a beautiful hover effect!")
}

func TestTutor_ErrorWordedForLearner(t *testing.T) {
	env, _ := screentest.Env(t)
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.Error{Kind: llm.KindRateLimited, Provider: llm.ProviderMock, RetryAfter: 20 * time.Second, Err: errors.New("429 Too Many Requests")},
	})
	env.Tutor = tutor.NewService(mock, tutor.DefaultConfig(), env.Log)

	s := New(env, lesson(t, "challenge-hover-card"))
	s.Init()
	s.Update(key(tea.KeyF9))

	require.Eventually(t, func() bool {
		s.Update(hintPollMsg{})
		return s.hintErr != nil
	}, 2*time.Second, 10*time.Millisecond)
	hint := s.renderHint(lipgloss.NewStyle())
	assert.Contains(t, hint, "Try again in 20 seconds.")
	assert.NotContains(t, hint, "429")
}
