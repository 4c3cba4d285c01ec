package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// retrier re-sends failed requests with exponential backoff. Rate
// limits and outages are retried up to MaxAttempts; a reply that
// fails the schema check is retried exactly once, since a second
// identical failure means the model cannot satisfy the schema.
type retrier struct {
	next Provider
	cfg  RetryConfig
}

// WithRetry wraps a Provider with backoff on transient failures.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retrier{next: p, cfg: cfg}
}

func (r *retrier) ModelID() string { return r.next.ModelID() }

func (r *retrier) Generate(ctx context.Context, req Request) (*Response, error) {
	badReplies := 0

	for attempt := 0; ; attempt++ {
		resp, err := r.next.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		if attempt+1 >= r.cfg.MaxAttempts {
			return nil, err
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}

		var bad *BadReplyError
		if errors.As(err, &bad) {
			badReplies++
			if badReplies > 1 {
				return nil, err
			}
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.wait(attempt, err)):
		}
	}
}

// wait computes the pause before the next attempt. A provider-supplied
// retry-after wins; otherwise exponential backoff with up to 20%
// random spread so concurrent retries do not herd.
func (r *retrier) wait(attempt int, err error) time.Duration {
	var limited *RateLimitError
	if errors.As(err, &limited) && limited.RetryAfter > 0 {
		return limited.RetryAfter
	}

	d := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	if d > float64(r.cfg.MaxWait) {
		d = float64(r.cfg.MaxWait)
	}
	return time.Duration(d * (0.8 + 0.4*rand.Float64()))
}
