package utils

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastRetryConfig(maxRetries int) RetryConfig {
	return RetryConfig{
		MaxRetries:   maxRetries,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}
}

func TestRetryer_SucceedsAfterRetries(t *testing.T) {
	r := NewRetryer(fastRetryConfig(3))

	attempts := 0
	err := r.Do(context.Background(), func() error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	})

	if err != nil {
		t.Fatalf("Do() returned error: %v", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestRetryer_ExhaustsRetries(t *testing.T) {
	r := NewRetryer(fastRetryConfig(2))

	wantErr := errors.New("persistent")
	attempts := 0
	err := r.Do(context.Background(), func() error {
		attempts++
		return wantErr
	})

	if !errors.Is(err, wantErr) {
		t.Errorf("Do() error = %v, want %v", err, wantErr)
	}
	if attempts != 3 { // initial + 2 retries
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestRetryer_RespectsRetryIf(t *testing.T) {
	cfg := fastRetryConfig(5)
	cfg.RetryIf = func(err error) bool { return false }
	r := NewRetryer(cfg)

	attempts := 0
	_ = r.Do(context.Background(), func() error {
		attempts++
		return errors.New("not retryable")
	})

	if attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}
}

func TestRetryer_ContextCanceled(t *testing.T) {
	cfg := fastRetryConfig(5)
	cfg.InitialDelay = time.Hour // would block without cancellation
	r := NewRetryer(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := r.Do(ctx, func() error {
		return errors.New("fail")
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("Do() error = %v, want context.Canceled", err)
	}
}

func TestRetryer_OnRetryCallback(t *testing.T) {
	cfg := fastRetryConfig(2)
	var calls []int
	cfg.OnRetry = func(attempt int, err error, delay time.Duration) {
		calls = append(calls, attempt)
	}
	r := NewRetryer(cfg)

	_ = r.Do(context.Background(), func() error {
		return errors.New("fail")
	})

	if len(calls) != 2 || calls[0] != 1 || calls[1] != 2 {
		t.Errorf("OnRetry calls = %v, want [1 2]", calls)
	}
}
