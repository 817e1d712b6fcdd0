// Package watch reports changes to a single file, debounced.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDelay groups the bursts of events editors produce on save.
const DefaultDelay = 100 * time.Millisecond

// FileWatcher calls a handler after the watched file changes. Editors
// often save by writing a new file and renaming it over the old one, so
// the parent directory is watched and events are filtered by name.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	delay   time.Duration
	log     *zap.Logger

	mu    sync.Mutex
	timer *time.Timer
}

// New watches path. Nothing is reported until Run.
func New(path string, delay time.Duration, log *zap.Logger) (*FileWatcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	return &FileWatcher{watcher: w, path: abs, delay: delay, log: log}, nil
}

// Run calls onChange once per burst of changes until ctx is done. It
// closes the watcher before returning.
func (fw *FileWatcher) Run(ctx context.Context, onChange func()) error {
	defer fw.stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != fw.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			fw.schedule(onChange)
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			fw.log.Warn("file watcher error", zap.Error(err))
		}
	}
}

func (fw *FileWatcher) schedule(onChange func()) {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.timer = time.AfterFunc(fw.delay, onChange)
}

func (fw *FileWatcher) stop() {
	fw.mu.Lock()
	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.mu.Unlock()
	_ = fw.watcher.Close()
}
