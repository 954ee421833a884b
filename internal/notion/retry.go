package notion

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// RetryOptions is the retry budget of one logical call. Every recursive
// fetch receives its own copy.
type RetryOptions struct {
	Attempts int
	Delay    time.Duration
}

// DefaultRetryOptions returns 3 attempts with a 5 second delay.
func DefaultRetryOptions() RetryOptions {
	return RetryOptions{
		Attempts: 3,
		Delay:    5 * time.Second,
	}
}

// retryPolicy pairs a budget with the classifier deciding which failures
// spend it.
type retryPolicy struct {
	opts      RetryOptions
	retryable func(error) bool
	sleep     func(context.Context, time.Duration) error
	log       *slog.Logger
}

func (c *Client) policy(opts RetryOptions) retryPolicy {
	return retryPolicy{
		opts:      opts,
		retryable: IsRetryable,
		sleep:     c.sleep,
		log:       c.log,
	}
}

// retry runs fn until it succeeds, fails with an error the policy does not
// classify as retryable, or the attempts are used up. The last error is
// returned unchanged.
func retry[T any](ctx context.Context, p retryPolicy, op string, fn func(context.Context) (T, error)) (T, error) {
	attemptsLeft := max(p.opts.Attempts, 1)
	for {
		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		attemptsLeft--
		if attemptsLeft <= 0 || !p.retryable(err) {
			return v, err
		}
		p.log.Warn("retryable notion error",
			"op", op,
			"attempts_left", attemptsLeft,
			"delay", p.opts.Delay,
			"error", err,
		)
		if serr := p.sleep(ctx, p.opts.Delay); serr != nil {
			var zero T
			return zero, fmt.Errorf("%s: %w (last error: %v)", op, serr, err)
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
