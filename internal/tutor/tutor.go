// Package tutor asks a language model for a nudge when a learner is stuck
// on a playground exercise.
package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tsotne01/css-animation-mastery/internal/llm"
)

// Config holds hint generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// DefaultConfig returns the settings used by the app.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   400,
		Temperature: 0.4,
		Timeout:     30 * time.Second,
	}
}

// Input is what the tutor knows about the learner's attempt.
type Input struct {
	LessonID string
	Title    string
	Subtitle string
	// Lang is the language the answer should be written in.
	Lang         string
	Requirements []string
	Code         string
	// Failing lists the hints of checks the code does not pass yet.
	Failing []string
}

// Hint is one answer from the tutor.
type Hint struct {
	LessonID string
	Text     string
	Focus    []string
	Snippet  string
}

// Service generates hints in the background. One request is in flight at
// a time: a newer request or Cancel aborts the one before it, and a result
// that still arrives late is dropped.
type Service struct {
	provider llm.Provider
	cfg      Config
	log      *zap.Logger

	mu      sync.Mutex
	gen     uint64
	cancel  context.CancelFunc
	busy    bool
	pending *Hint
	err     error
	ready   bool
}

// NewService returns a service using provider. A mock provider with no
// answers queued falls back to the offline hint built from the request.
func NewService(provider llm.Provider, cfg Config, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if m, ok := provider.(*llm.MockProvider); ok && m.Fallback == nil {
		m.Fallback = offlineResponse
	}
	return &Service{provider: provider, cfg: cfg, log: log.Named("tutor")}
}

// RequestHint starts generating a hint for in, aborting any request
// still running.
func (s *Service) RequestHint(ctx context.Context, in Input) {
	ctx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	s.abortLocked()
	gen := s.gen
	s.cancel = cancel
	s.busy = true
	s.mu.Unlock()

	go func() {
		defer cancel()
		hint, err := s.generate(ctx, in)

		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.gen {
			s.log.Debug("dropping stale hint", zap.String("lesson", in.LessonID), zap.Error(err))
			return
		}
		s.cancel = nil
		s.pending, s.err = hint, err
		s.ready = true
		s.busy = false
	}()
}

// abortLocked cancels the request in flight and clears any result.
func (s *Service) abortLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.gen++
	s.busy, s.ready = false, false
	s.pending, s.err = nil, nil
}

// Outcome is a finished request: a hint or the error that replaced it.
type Outcome struct {
	Hint *Hint
	Err  error
}

// ConsumeHint returns the finished request, and false while nothing is
// ready. A consumed outcome is cleared.
func (s *Service) ConsumeHint() (Outcome, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return Outcome{}, false
	}
	out := Outcome{Hint: s.pending, Err: s.err}
	s.pending, s.err, s.ready = nil, nil, false
	return out, true
}

// Busy reports whether a request is still running.
func (s *Service) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Cancel aborts the request in flight. Its result, if any, is dropped.
func (s *Service) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.abortLocked()
}

type hintOutput struct {
	Hint    string   `json:"hint"`
	Focus   []string `json:"focus"`
	Snippet string   `json:"snippet"`
}

func (s *Service) generate(ctx context.Context, in Input) (*Hint, error) {
	ctx = llm.WithLesson(ctx, in.LessonID)
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildUserMessage(in)}},
		Schema:      HintSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("hint generation: %w", err)
	}

	var out hintOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse hint response: %w", err)
	}
	return &Hint{
		LessonID: in.LessonID,
		Text:     out.Hint,
		Focus:    out.Focus,
		Snippet:  out.Snippet,
	}, nil
}
