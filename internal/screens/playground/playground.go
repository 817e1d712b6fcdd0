// Package playground is the code editing screen: the learner edits CSS,
// runs it into the preview and gets a verdict on challenge lessons.
package playground

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/tsotne01/css-animation-mastery/internal/challenge"
	"github.com/tsotne01/css-animation-mastery/internal/cssinfo"
	"github.com/tsotne01/css-animation-mastery/internal/curriculum"
	"github.com/tsotne01/css-animation-mastery/internal/preview"
	"github.com/tsotne01/css-animation-mastery/internal/screen"
	"github.com/tsotne01/css-animation-mastery/internal/tutor"
	"github.com/tsotne01/css-animation-mastery/internal/ui/components"
	"github.com/tsotne01/css-animation-mastery/internal/ui/layout"
)

// PlaygroundScreen edits and runs one lesson's CSS. The playground state
// lives only as long as the screen.
type PlaygroundScreen struct {
	env    *screen.Env
	lesson curriculum.Lesson
	pg     *preview.Playground
	editor components.Editor

	outline cssinfo.Outline
	copied  bool
	copyErr error

	hint      *tutor.Hint
	hintErr   error
	hintAsked bool
}

var _ screen.Screen = (*PlaygroundScreen)(nil)
var _ screen.KeyHintProvider = (*PlaygroundScreen)(nil)

// New creates the playground for lesson. opts are passed to the
// underlying preview.Playground.
func New(env *screen.Env, lesson curriculum.Lesson, opts ...preview.Option) *PlaygroundScreen {
	if v, ok := challenge.Localized(lesson.ID, env.Lang); ok {
		opts = append([]preview.Option{preview.WithValidator(v)}, opts...)
	}
	return &PlaygroundScreen{
		env:    env,
		lesson: lesson,
		pg:     preview.NewPlayground(lesson, env.Surface, env.Logger(), opts...),
		editor: components.NewEditor(lesson.DefaultCSS),
	}
}

// Init runs the default code once so the preview is never empty.
func (s *PlaygroundScreen) Init() tea.Cmd {
	s.pg.Activate(context.Background())
	s.refreshOutline()
	return s.editor.Init()
}

func (s *PlaygroundScreen) Title() string {
	return s.env.T("playground.title")
}

func (s *PlaygroundScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "F5", Description: s.env.T("playground.run")},
		{Key: "F6", Description: s.env.T("playground.reset")},
		{Key: "F7", Description: s.env.T("playground.copy")},
		{Key: "F8", Description: s.env.T("playground.fullscreen")},
	}
	if s.tutorAvailable() {
		hints = append(hints, layout.KeyHint{Key: "F9", Description: s.env.T("playground.ask_tutor")})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *PlaygroundScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case copyFlashDoneMsg:
		s.copied = false
		return s, nil

	case hintPollMsg:
		return s, s.pollHint()

	case tea.KeyMsg:
		switch msg.String() {
		case "f5", "ctrl+s":
			s.run()
			return s, nil
		case "f6":
			s.reset()
			return s, nil
		case "f7":
			return s, s.copy()
		case "f8":
			s.pg.ToggleFullscreen()
			return s, nil
		case "f9":
			return s, s.askTutor()
		}
	}

	var cmd tea.Cmd
	s.editor, cmd = s.editor.Update(msg)
	s.pg.Edit(s.editor.Value())
	return s, cmd
}

// run commits the editor text to the preview and validates it.
func (s *PlaygroundScreen) run() {
	s.pg.Edit(s.editor.Value())
	s.pg.Apply(context.Background())
	s.refreshOutline()
	if res, ok := s.pg.Result(); ok {
		s.env.Logger().Debug("challenge checked",
			zap.String("lesson", s.lesson.ID),
			zap.Bool("valid", res.Valid))
	}
}

func (s *PlaygroundScreen) reset() {
	s.pg.Reset(context.Background())
	s.editor.SetValue(s.pg.Draft())
	s.refreshOutline()
	s.hint, s.hintErr, s.hintAsked = nil, nil, false
	if s.env.Tutor != nil {
		s.env.Tutor.Cancel()
	}
}

func (s *PlaygroundScreen) copy() tea.Cmd {
	s.pg.Edit(s.editor.Value())
	s.copyErr = s.pg.Copy()
	if s.copyErr != nil {
		s.env.Logger().Debug("copy to clipboard failed", zap.Error(s.copyErr))
		return nil
	}
	s.copied = true
	return copyFlashCmd()
}

func (s *PlaygroundScreen) refreshOutline() {
	s.outline = cssinfo.Parse(s.pg.Committed(), s.env.Logger())
}

func (s *PlaygroundScreen) tutorAvailable() bool {
	return s.env.Tutor != nil && s.pg.HasValidator()
}

// askTutor sends the current draft to the tutor and starts polling.
func (s *PlaygroundScreen) askTutor() tea.Cmd {
	if !s.tutorAvailable() {
		return nil
	}
	in := tutor.InputFor(s.lesson, s.env.Lang(), s.editor.Value())
	s.env.Tutor.RequestHint(context.Background(), in)
	s.hint, s.hintErr, s.hintAsked = nil, nil, true
	return hintPollCmd()
}

func (s *PlaygroundScreen) pollHint() tea.Cmd {
	if s.env.Tutor == nil {
		return nil
	}
	if out, ok := s.env.Tutor.ConsumeHint(); ok {
		s.hint, s.hintErr = out.Hint, out.Err
		if out.Err != nil {
			s.env.Logger().Debug("hint request failed", zap.String("lesson", s.lesson.ID), zap.Error(out.Err))
		}
		return nil
	}
	if s.env.Tutor.Busy() {
		return hintPollCmd()
	}
	return nil
}

// Leave drops a pending tutor request so its hint is not picked up by
// the next playground.
func (s *PlaygroundScreen) Leave() {
	if s.hintAsked && s.env.Tutor != nil {
		s.env.Tutor.Cancel()
	}
}

// Playground exposes the editing state.
func (s *PlaygroundScreen) Playground() *preview.Playground {
	return s.pg
}
