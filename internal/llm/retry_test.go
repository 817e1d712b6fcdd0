package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

var okHint = MockResponse{Content: json.RawMessage(`{"hint":"ok"}`)}

func fail(err error) MockResponse { return MockResponse{Err: err} }

func TestRetry(t *testing.T) {
	down := &Error{Kind: KindUnavailable, Err: errors.New("down")}
	invalid := &Error{Kind: KindInvalid, Content: json.RawMessage(`bad`), Err: errors.New("bad")}
	boom := errors.New("boom")

	tests := []struct {
		name      string
		responses []MockResponse
		wantErr   error
		wantCalls int
	}{
		{"first attempt", []MockResponse{okHint}, nil, 1},
		{"transient then success", []MockResponse{fail(down), okHint}, nil, 2},
		{"all attempts fail", []MockResponse{fail(down), fail(down), fail(down), okHint}, ErrUnavailable, 3},
		{"truncation not retried", []MockResponse{fail(&Error{Kind: KindTruncated}), okHint}, ErrTruncated, 1},
		{"invalid retried once", []MockResponse{fail(invalid), fail(invalid), okHint}, ErrInvalid, 2},
		{"invalid then success", []MockResponse{fail(invalid), okHint}, nil, 2},
		{"rate limit honours retry-after", []MockResponse{fail(&Error{Kind: KindRateLimited, RetryAfter: time.Millisecond}), okHint}, nil, 2},
		{"cancellation not retried", []MockResponse{fail(context.Canceled), okHint}, context.Canceled, 1},
		{"unclassified error not retried", []MockResponse{fail(boom), okHint}, boom, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.responses...)
			_, err := WithRetry(mock, retryConfig()).Generate(context.Background(), Request{})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantCalls, mock.CallCount())
		})
	}
}

func TestRetry_ContextCancelledWhileWaiting(t *testing.T) {
	mock := NewMockProvider(fail(&Error{Kind: KindUnavailable}), okHint)
	cfg := retryConfig()
	cfg.InitialWait = time.Hour
	cfg.MaxWait = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	_, err := WithRetry(mock, cfg).Generate(ctx, Request{})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, mock.CallCount())
}

func TestRetry_GivesUpBeforeDeadline(t *testing.T) {
	limited := &Error{Kind: KindRateLimited, RetryAfter: time.Minute}
	mock := NewMockProvider(fail(limited), okHint)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	start := time.Now()
	_, err := WithRetry(mock, retryConfig()).Generate(ctx, Request{})
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, 1, mock.CallCount())
}

func TestBackoff(t *testing.T) {
	r := &RetryProvider{config: RetryConfig{InitialWait: 100 * time.Millisecond, MaxWait: 300 * time.Millisecond, Multiplier: 2}}
	other := &Error{Kind: KindUnavailable}

	for attempt, base := range []time.Duration{100, 200, 300, 300} {
		base *= time.Millisecond
		got := r.backoff(attempt, other)
		assert.GreaterOrEqual(t, got, base*8/10, "attempt %d", attempt)
		assert.LessOrEqual(t, got, base*12/10, "attempt %d", attempt)
	}

	assert.Equal(t, 5*time.Second, r.backoff(0, &Error{Kind: KindRateLimited, RetryAfter: 5 * time.Second}))
}

func TestRetry_ModelIDDelegates(t *testing.T) {
	assert.Equal(t, "mock", WithRetry(NewMockProvider(), retryConfig()).ModelID())
}
