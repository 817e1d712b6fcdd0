// Package app is the root of the terminal UI: it owns the screen stack,
// the header with the theme and language toggles, and the footer.
package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/tsotne01/css-animation-mastery/internal/curriculum"
	"github.com/tsotne01/css-animation-mastery/internal/prefs"
	"github.com/tsotne01/css-animation-mastery/internal/router"
	"github.com/tsotne01/css-animation-mastery/internal/screen"
	"github.com/tsotne01/css-animation-mastery/internal/screens/lesson"
	"github.com/tsotne01/css-animation-mastery/internal/screens/sidebar"
	"github.com/tsotne01/css-animation-mastery/internal/ui/layout"
	"github.com/tsotne01/css-animation-mastery/internal/ui/theme"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	env    *screen.Env
	router *router.Router
	width  int
	height int
}

// newAppModel builds the screen stack: the course outline at the bottom
// and, when a lesson was open last time, that lesson on top.
func newAppModel(env *screen.Env) AppModel {
	env.Prefs.OnThemeChange(func(t prefs.Theme) {
		theme.Apply(string(t))
	})

	m := AppModel{
		env:    env,
		router: router.New(sidebar.New(env)),
	}
	if id, ok := env.Progress.CurrentLessonID(); ok {
		if l, err := curriculum.GetLesson(id); err == nil {
			m.router.Push(lesson.New(env, l))
		} else {
			env.Logger().Debug("current lesson no longer exists", zap.String("lesson", id))
		}
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		case "f2":
			m.env.Prefs.ToggleTheme()
			return m, nil
		case "f3":
			m.env.Prefs.ToggleLanguage()
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.render())
	return v
}

// render draws the whole frame, empty until the terminal size is known.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(m.env.T("header.title"), title, m.toggles(), m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	} else {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// toggles is the right side of the header: the active theme and language
// with the keys that switch them.
func (m AppModel) toggles() string {
	themeLabel := "☾ " + m.env.T("theme.dark")
	if m.env.Prefs.Theme() == prefs.ThemeLight {
		themeLabel = "☀ " + m.env.T("theme.light")
	}
	langLabel := m.env.T("language." + m.env.Lang())
	return fmt.Sprintf("F2 %s  F3 %s", themeLabel, langLabel)
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, env *screen.Env) error {
	p := tea.NewProgram(newAppModel(env), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal UI: %w", err)
	}
	return nil
}
