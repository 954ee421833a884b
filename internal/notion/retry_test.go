package notion

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingPolicy returns a policy whose sleeps are recorded instead of
// waited out.
func recordingPolicy(opts RetryOptions, sleeps *[]time.Duration) retryPolicy {
	return retryPolicy{
		opts:      opts,
		retryable: IsRetryable,
		sleep: func(ctx context.Context, d time.Duration) error {
			*sleeps = append(*sleeps, d)
			return ctx.Err()
		},
		log: discardLogger(),
	}
}

// failingOp fails with a 502 for the first failures calls.
func failingOp(failures int, calls *int) func(context.Context) (string, error) {
	return func(context.Context) (string, error) {
		*calls++
		if *calls <= failures {
			return "", &APIError{StatusCode: 502, Code: "bad_gateway", Message: "upstream"}
		}
		return "ok", nil
	}
}

func TestRetry_SucceedsAfterTransientFailures(t *testing.T) {
	opts := RetryOptions{Attempts: 3, Delay: 5 * time.Second}
	for k := 0; k < opts.Attempts; k++ {
		var sleeps []time.Duration
		calls := 0
		got, err := retry(context.Background(), recordingPolicy(opts, &sleeps), "test", failingOp(k, &calls))
		if err != nil {
			t.Fatalf("k=%d: unexpected error: %v", k, err)
		}
		if got != "ok" {
			t.Errorf("k=%d: expected %q, got %q", k, "ok", got)
		}
		if calls != k+1 {
			t.Errorf("k=%d: expected %d attempts, got %d", k, k+1, calls)
		}
		if len(sleeps) != k {
			t.Fatalf("k=%d: expected %d delays, got %d", k, k, len(sleeps))
		}
		for _, d := range sleeps {
			if d != opts.Delay {
				t.Errorf("k=%d: expected delay %v, got %v", k, opts.Delay, d)
			}
		}
	}
}

func TestRetry_ExhaustsBudget(t *testing.T) {
	opts := RetryOptions{Attempts: 3, Delay: time.Second}
	for _, k := range []int{3, 4, 10} {
		var sleeps []time.Duration
		calls := 0
		_, err := retry(context.Background(), recordingPolicy(opts, &sleeps), "test", failingOp(k, &calls))
		var apiErr *APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != 502 {
			t.Fatalf("k=%d: expected final 502 APIError, got %v", k, err)
		}
		if calls != opts.Attempts {
			t.Errorf("k=%d: expected %d attempts, got %d", k, opts.Attempts, calls)
		}
		if len(sleeps) != opts.Attempts-1 {
			t.Errorf("k=%d: expected %d delays, got %d", k, opts.Attempts-1, len(sleeps))
		}
	}
}

func TestRetry_NonRetryablePropagatesImmediately(t *testing.T) {
	var sleeps []time.Duration
	calls := 0
	notFound := &APIError{StatusCode: 404, Code: "object_not_found", Message: "missing"}
	_, err := retry(context.Background(), recordingPolicy(RetryOptions{Attempts: 5}, &sleeps), "test",
		func(context.Context) (int, error) {
			calls++
			return 0, notFound
		})
	if !errors.Is(err, notFound) {
		t.Fatalf("expected the 404 error unchanged, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 attempt, got %d", calls)
	}
	if len(sleeps) != 0 {
		t.Errorf("expected no delays, got %d", len(sleeps))
	}
}

func TestRetry_ZeroAttemptsStillCallsOnce(t *testing.T) {
	var sleeps []time.Duration
	calls := 0
	_, err := retry(context.Background(), recordingPolicy(RetryOptions{}, &sleeps), "test", failingOp(1, &calls))
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Errorf("expected 1 attempt, got %d", calls)
	}
}

func TestRetry_CustomClassifier(t *testing.T) {
	flaky := errors.New("flaky")
	var sleeps []time.Duration
	p := recordingPolicy(RetryOptions{Attempts: 4}, &sleeps)
	p.retryable = func(err error) bool { return errors.Is(err, flaky) }

	calls := 0
	got, err := retry(context.Background(), p, "test", func(context.Context) (int, error) {
		calls++
		if calls < 3 {
			return 0, flaky
		}
		return 42, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 42 || calls != 3 {
		t.Errorf("expected 42 after 3 calls, got %d after %d", got, calls)
	}
}

func TestRetry_CanceledDuringDelay(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := retryPolicy{
		opts:      RetryOptions{Attempts: 3, Delay: time.Hour},
		retryable: IsRetryable,
		sleep:     sleepContext,
		log:       discardLogger(),
	}
	calls := 0
	_, err := retry(ctx, p, "test", failingOp(5, &calls))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 attempt before cancellation, got %d", calls)
	}
}

func TestAPIError_Retryable(t *testing.T) {
	tests := []struct {
		err  *APIError
		want bool
	}{
		{&APIError{StatusCode: 500}, true},
		{&APIError{StatusCode: 502}, true},
		{&APIError{StatusCode: 503}, true},
		{&APIError{StatusCode: 504}, true},
		{&APIError{StatusCode: 400, Code: "internal_server_error"}, true},
		{&APIError{StatusCode: 401, Code: "unauthorized"}, false},
		{&APIError{StatusCode: 404, Code: "object_not_found"}, false},
		{&APIError{StatusCode: 429, Code: "rate_limited"}, false},
	}
	for _, tt := range tests {
		if got := tt.err.Retryable(); got != tt.want {
			t.Errorf("status=%d code=%q: expected %v, got %v", tt.err.StatusCode, tt.err.Code, tt.want, got)
		}
	}
	if IsRetryable(errors.New("plain")) {
		t.Error("expected plain error to be non-retryable")
	}
}
