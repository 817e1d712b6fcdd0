package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsotne01/css-animation-mastery/internal/curriculum"
	"github.com/tsotne01/css-animation-mastery/internal/llm"
)

func waitOutcome(t *testing.T, s *Service) Outcome {
	t.Helper()
	var out Outcome
	require.Eventually(t, func() bool {
		var ok bool
		out, ok = s.ConsumeHint()
		return ok
	}, 2*time.Second, 5*time.Millisecond)
	return out
}

func hoverInput(t *testing.T, code string) Input {
	t.Helper()
	l, err := curriculum.GetLesson("challenge-hover-card")
	require.NoError(t, err)
	return InputFor(l, "en", code)
}

func TestRequestHint(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"hint":"Lift the card with translateY.","focus":["transform"],"snippet":"transform: translateY(-8px);"}`),
	})
	s := NewService(mock, DefaultConfig(), nil)

	_, ok := s.ConsumeHint()
	assert.False(t, ok)

	s.RequestHint(context.Background(), hoverInput(t, ".card{transition:all .3s}"))
	out := waitOutcome(t, s)
	require.NoError(t, out.Err)
	assert.Equal(t, "challenge-hover-card", out.Hint.LessonID)
	assert.Equal(t, "Lift the card with translateY.", out.Hint.Text)
	assert.Equal(t, []string{"transform"}, out.Hint.Focus)
	assert.False(t, s.Busy())

	_, ok = s.ConsumeHint()
	assert.False(t, ok, "outcome is consumed once")

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.Equal(t, HintSchema, req.Schema)
	assert.Contains(t, req.Messages[0].Content, ".card{transition:all .3s}")
	assert.Contains(t, req.Messages[0].Content, "Answer in English.")
}

func TestRequestHint_Error(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.Error{Kind: llm.KindUnavailable, Provider: llm.ProviderMock}})
	s := NewService(mock, DefaultConfig(), nil)

	s.RequestHint(context.Background(), hoverInput(t, ""))
	out := waitOutcome(t, s)
	assert.ErrorIs(t, out.Err, llm.ErrUnavailable)
	assert.Nil(t, out.Hint)
}

func TestRequestHint_OfflineFallback(t *testing.T) {
	s := NewService(llm.NewMockProvider(), DefaultConfig(), nil)

	s.RequestHint(context.Background(), hoverInput(t, ".card{transition:all .3s}"))
	out := waitOutcome(t, s)
	require.NoError(t, out.Err)
	assert.Contains(t, out.Hint.Text, ":hover", "first failing check is the hover state")
}

// blockingProvider holds each call until released or cancelled, so the
// test controls which request finishes first.
type blockingProvider struct {
	mu        sync.Mutex
	release   map[string]chan struct{}
	cancelled []string
}

func (b *blockingProvider) wasCancelled(code string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Contains(b.cancelled, code)
}

func (b *blockingProvider) gate(code string) chan struct{} {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.release == nil {
		b.release = map[string]chan struct{}{}
	}
	if _, ok := b.release[code]; !ok {
		b.release[code] = make(chan struct{})
	}
	return b.release[code]
}

func (b *blockingProvider) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	msg := req.Messages[0].Content
	code := "old"
	if strings.Contains(msg, "/* new */") {
		code = "new"
	}
	select {
	case <-b.gate(code):
	case <-ctx.Done():
		b.mu.Lock()
		b.cancelled = append(b.cancelled, code)
		b.mu.Unlock()
		return nil, ctx.Err()
	}
	out, _ := json.Marshal(hintOutput{Hint: code, Focus: []string{}})
	return &llm.Response{Content: out}, nil
}

func (b *blockingProvider) ModelID() string { return "blocking" }

func TestRequestHint_NewerReplacesOlder(t *testing.T) {
	p := &blockingProvider{}
	s := NewService(p, DefaultConfig(), nil)

	s.RequestHint(context.Background(), hoverInput(t, "/* old */"))
	s.RequestHint(context.Background(), hoverInput(t, "/* new */"))
	assert.True(t, s.Busy())

	require.Eventually(t, func() bool { return p.wasCancelled("old") }, time.Second, 5*time.Millisecond)
	assert.False(t, p.wasCancelled("new"))

	close(p.gate("new"))
	out := waitOutcome(t, s)
	assert.Equal(t, "new", out.Hint.Text)

	close(p.gate("old"))
	time.Sleep(20 * time.Millisecond)
	_, ok := s.ConsumeHint()
	assert.False(t, ok)
}

func TestCancel(t *testing.T) {
	p := &blockingProvider{}
	s := NewService(p, DefaultConfig(), nil)
	s.RequestHint(context.Background(), hoverInput(t, "/* old */"))
	s.Cancel()
	assert.False(t, s.Busy())
	require.Eventually(t, func() bool { return p.wasCancelled("old") }, time.Second, 5*time.Millisecond,
		"the provider call sees its context cancelled")

	close(p.gate("old"))
	time.Sleep(20 * time.Millisecond)
	_, ok := s.ConsumeHint()
	assert.False(t, ok)
}

func TestInputFor(t *testing.T) {
	in := hoverInput(t, ".card{transition:all .3s} .card:hover{}")
	assert.Equal(t, "challenge-hover-card", in.LessonID)
	assert.NotEmpty(t, in.Title)
	assert.NotEmpty(t, in.Requirements)
	require.Len(t, in.Failing, 2)
	assert.Contains(t, in.Failing[0], "transform")

	l, err := curriculum.GetLesson("intro-motion")
	require.NoError(t, err)
	assert.Empty(t, InputFor(l, "en", "").Failing)
}

func TestBuildUserMessage(t *testing.T) {
	msg := buildUserMessage(Input{
		Title:   "Smooth Hover Card",
		Lang:    "ka",
		Code:    ".card{}",
		Failing: []string{"Add a transition."},
	})
	assert.Contains(t, msg, "Exercise: Smooth Hover Card")
	assert.Contains(t, msg, "- Add a transition.")
	assert.Contains(t, msg, "Answer in Georgian.")

	first, ok := firstFailing(msg)
	require.True(t, ok)
	assert.Equal(t, "Add a transition.", first)

	_, ok = firstFailing(buildUserMessage(Input{Title: "x"}))
	assert.False(t, ok, "\"None\" is not a failing check")
}

func TestLanguageName(t *testing.T) {
	assert.Equal(t, "English", languageName("en"))
	assert.Equal(t, "Georgian", languageName("ka"))
	assert.Equal(t, "English", languageName("!!"))
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		err  error
		lang string
		want string
	}{
		{"unavailable", &llm.Error{Kind: llm.KindUnavailable}, "en", "The tutor could not be reached. Try again in a moment."},
		{"rate limited with wait", fmt.Errorf("hint generation: %w", &llm.Error{Kind: llm.KindRateLimited, RetryAfter: 1500 * time.Millisecond}), "en", "The tutor is busy. Try again in 2 seconds."},
		{"rate limited", &llm.Error{Kind: llm.KindRateLimited}, "en", "The tutor is busy. Try again shortly."},
		{"timeout", fmt.Errorf("hint generation: %w", context.DeadlineExceeded), "en", "The tutor took too long to answer. Ask again."},
		{"invalid", &llm.Error{Kind: llm.KindInvalid, Schema: HintSchema.Name}, "en", "The tutor's answer could not be read. Ask again."},
		{"truncated in Georgian", &llm.Error{Kind: llm.KindTruncated}, "ka", "მენტორის პასუხი შეწყდა. იკითხეთ თავიდან."},
		{"unknown error", errors.New("boom"), "en", "The tutor could not be reached. Try again in a moment."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.err, tt.lang))
		})
	}
}

func TestRequestHint_TagsLesson(t *testing.T) {
	var got string
	p := providerFunc(func(ctx context.Context, req llm.Request) (*llm.Response, error) {
		got = llm.LessonFrom(ctx)
		return &llm.Response{Content: json.RawMessage(`{"hint":"x","focus":[],"snippet":""}`)}, nil
	})
	s := NewService(p, DefaultConfig(), nil)
	s.RequestHint(context.Background(), hoverInput(t, ""))
	waitOutcome(t, s)
	assert.Equal(t, "challenge-hover-card", got)
}

type providerFunc func(ctx context.Context, req llm.Request) (*llm.Response, error)

func (f providerFunc) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	return f(ctx, req)
}

func (providerFunc) ModelID() string { return "func" }
