package screen

import (
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/tsotne01/css-animation-mastery/internal/content"
	"github.com/tsotne01/css-animation-mastery/internal/prefs"
	"github.com/tsotne01/css-animation-mastery/internal/preview"
	"github.com/tsotne01/css-animation-mastery/internal/progress"
	"github.com/tsotne01/css-animation-mastery/internal/tutor"
	"github.com/tsotne01/css-animation-mastery/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Leaver is implemented by screens with background work (timers, tutor
// requests) that must stop once they are popped or replaced.
type Leaver interface {
	Leave()
}

// Env is what every screen shares: the stores, the preview surface and
// the optional tutor.
type Env struct {
	Progress *progress.Store
	Prefs    *prefs.Store

	// Surface receives every rendered playground document.
	Surface preview.Surface
	// PreviewURL is where the learner opens the preview, empty when the
	// preview server is off.
	PreviewURL string

	// Tutor is nil when no LLM provider is configured.
	Tutor *tutor.Service

	Log *zap.Logger
}

// Lang returns the current UI language code.
func (e *Env) Lang() string {
	return string(e.Prefs.Language())
}

// T formats a UI string in the current language.
func (e *Env) T(key string, args ...any) string {
	return content.T(e.Lang(), key, args...)
}

// Logger returns the logger, never nil.
func (e *Env) Logger() *zap.Logger {
	if e.Log == nil {
		return zap.NewNop()
	}
	return e.Log
}
