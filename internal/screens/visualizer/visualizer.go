// Package visualizer is the interactive timing function explorer: pick a
// preset or drag the control points, watch the curve and replay the
// motion.
package visualizer

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/tsotne01/css-animation-mastery/internal/curriculum"
	"github.com/tsotne01/css-animation-mastery/internal/easing"
	"github.com/tsotne01/css-animation-mastery/internal/preview"
	"github.com/tsotne01/css-animation-mastery/internal/screen"
	"github.com/tsotne01/css-animation-mastery/internal/ui/components"
	"github.com/tsotne01/css-animation-mastery/internal/ui/layout"
)

// LessonID is the lesson that opens this screen instead of a playground.
const LessonID = "easing-visualizer"

const (
	// step is how far one key press moves a control point.
	step = 0.05

	replayDelay       = 50 * time.Millisecond
	frameInterval     = 50 * time.Millisecond
	replayFrames      = 24
	copyFlashDuration = 2 * time.Second
)

type (
	replayStartMsg struct{ seq int }
	frameMsg       struct{ seq int }
	copyFlashDone  struct{}
)

// EasingScreen shows one curve at a time.
type EasingScreen struct {
	env      *screen.Env
	menu     components.Menu
	presets  []easing.Preset
	curve    easing.Curve
	point    int // control point moved by the keys, 1 or 2
	custom   bool
	renderer *preview.Renderer

	// replay state: seq invalidates frames of an older replay.
	seq     int
	frame   int
	playing bool

	copied  bool
	copyErr error
	copyFn  func(string) error
}

var _ screen.Screen = (*EasingScreen)(nil)
var _ screen.KeyHintProvider = (*EasingScreen)(nil)

// New creates the visualizer starting at the "ease" preset.
func New(env *screen.Env) *EasingScreen {
	presets := easing.Presets()
	items := make([]components.MenuItem, len(presets))
	for i, p := range presets {
		items[i] = components.MenuItem{Label: p.Name}
	}
	return &EasingScreen{
		env:      env,
		menu:     components.NewMenu(items),
		presets:  presets,
		curve:    presets[0].Curve,
		point:    1,
		renderer: preview.NewRenderer(env.Surface, curriculum.FragmentBox, env.Logger()),
		copyFn:   clipboard.WriteAll,
	}
}

// WithClipboard replaces the clipboard writer.
func (s *EasingScreen) WithClipboard(fn func(string) error) *EasingScreen {
	s.copyFn = fn
	return s
}

func (s *EasingScreen) Init() tea.Cmd {
	s.render()
	return s.replay()
}

func (s *EasingScreen) Title() string {
	return "Easing Visualizer"
}

func (s *EasingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Preset"},
		{Key: "1/2", Description: "Point"},
		{Key: "wasd", Description: "Move"},
		{Key: "r", Description: "Replay"},
		{Key: "c", Description: s.env.T("playground.copy")},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *EasingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replayStartMsg:
		if msg.seq != s.seq {
			return s, nil
		}
		s.playing, s.frame = true, 0
		return s, s.nextFrame()

	case frameMsg:
		if msg.seq != s.seq || !s.playing {
			return s, nil
		}
		s.frame++
		if s.frame >= replayFrames {
			s.playing = false
			return s, nil
		}
		return s, s.nextFrame()

	case copyFlashDone:
		s.copied = false
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "1":
			s.point = 1
		case "2":
			s.point = 2
		case "w":
			return s, s.move(0, step)
		case "s":
			return s, s.move(0, -step)
		case "a":
			return s, s.move(-step, 0)
		case "d":
			return s, s.move(step, 0)
		case "r":
			return s, s.replay()
		case "c":
			return s, s.copy()
		default:
			var changed bool
			s.menu, changed = s.menu.Update(msg)
			if changed {
				s.curve = s.presets[s.menu.Selected].Curve
				s.custom = false
				s.render()
				return s, s.replay()
			}
		}
	}
	return s, nil
}

func (s *EasingScreen) move(dx, dy float64) tea.Cmd {
	s.curve = s.curve.Move(s.point, dx, dy)
	s.custom = true
	s.render()
	return s.replay()
}

// replay restarts the motion after a short delay, like remounting the
// animated element.
func (s *EasingScreen) replay() tea.Cmd {
	s.seq++
	s.playing, s.frame = false, 0
	seq := s.seq
	return tea.Tick(replayDelay, func(time.Time) tea.Msg { return replayStartMsg{seq: seq} })
}

// Leave stops the replay; frames still in flight are ignored.
func (s *EasingScreen) Leave() {
	s.seq++
	s.playing = false
}

func (s *EasingScreen) nextFrame() tea.Cmd {
	seq := s.seq
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{seq: seq} })
}

func (s *EasingScreen) copy() tea.Cmd {
	s.copyErr = s.copyFn(s.curve.String())
	if s.copyErr != nil {
		s.env.Logger().Debug("copy to clipboard failed", zap.Error(s.copyErr))
		return nil
	}
	s.copied = true
	return tea.Tick(copyFlashDuration, func(time.Time) tea.Msg { return copyFlashDone{} })
}

// render shows a box sliding with the current curve in the preview.
func (s *EasingScreen) render() {
	s.renderer.Apply(context.Background(), DemoCSS(s.curve))
}

// DemoCSS is the stylesheet that slides the demo box with c.
func DemoCSS(c easing.Curve) string {
	return fmt.Sprintf(`@keyframes slide {
  from { transform: translateX(0); }
  to { transform: translateX(240px); }
}

.box {
  animation: slide 1.2s %s infinite alternate;
}
`, c)
}

// Curve returns the curve on screen.
func (s *EasingScreen) Curve() easing.Curve {
	return s.curve
}

// Progress returns the replay time fraction, 1 when idle.
func (s *EasingScreen) Progress() float64 {
	if !s.playing {
		return 1
	}
	return float64(s.frame) / float64(replayFrames-1)
}
