package preview

import (
	"context"
	"sync"
)

// Surface is an isolated place a Document can be shown. Render replaces
// whatever was shown before.
type Surface interface {
	Render(ctx context.Context, doc Document) error
}

// RecordingSurface keeps the last rendered document instead of showing it.
// It backs headless runs and tests.
type RecordingSurface struct {
	mu      sync.Mutex
	last    Document
	renders int
}

func (r *RecordingSurface) Render(_ context.Context, doc Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last = doc
	r.renders++
	return nil
}

// Last returns the most recent document, and false if nothing was rendered.
func (r *RecordingSurface) Last() (Document, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last, r.renders > 0
}

// Renders returns how many times Render was called.
func (r *RecordingSurface) Renders() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.renders
}

// Fanout renders to every surface in order and returns the first error.
type Fanout []Surface

func (f Fanout) Render(ctx context.Context, doc Document) error {
	var first error
	for _, s := range f {
		if err := s.Render(ctx, doc); err != nil && first == nil {
			first = err
		}
	}
	return first
}
