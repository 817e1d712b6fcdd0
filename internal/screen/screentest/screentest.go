// Package screentest builds screen environments for tests: in-memory
// stores and a recording preview surface.
package screentest

import (
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/tsotne01/css-animation-mastery/internal/curriculum"
	"github.com/tsotne01/css-animation-mastery/internal/prefs"
	"github.com/tsotne01/css-animation-mastery/internal/preview"
	"github.com/tsotne01/css-animation-mastery/internal/progress"
	"github.com/tsotne01/css-animation-mastery/internal/screen"
	"github.com/tsotne01/css-animation-mastery/internal/store"
)

// Env returns an environment backed by memory. The recording surface
// sees every rendered document.
func Env(t testing.TB) (*screen.Env, *preview.RecordingSurface) {
	t.Helper()
	log := zaptest.NewLogger(t)
	backend := store.NewMemory()
	surface := &preview.RecordingSurface{}
	return &screen.Env{
		Progress:   progress.Load(backend, curriculum.TotalLessons(), log),
		Prefs:      prefs.Load(backend, log),
		Surface:    surface,
		PreviewURL: "http://127.0.0.1:4567/?token=test",
		Log:        log,
	}, surface
}
