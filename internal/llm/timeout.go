package llm

import (
	"context"
	"time"
)

// TimeoutProvider is a decorator that bounds every blocking call with a
// deadline so a stalled backend cannot hang the session indefinitely.
type TimeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

var _ Streamer = (*TimeoutProvider)(nil)

// WithTimeout wraps a Provider with a per-call timeout.
// A non-positive timeout disables the bound.
func WithTimeout(p Provider, timeout time.Duration) *TimeoutProvider {
	return &TimeoutProvider{inner: p, timeout: timeout}
}

func (t *TimeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}
	return t.inner.Generate(ctx, req)
}

// GenerateStream bounds the whole stream lifetime, not just its
// establishment. The cancel fires when the deadline passes, which
// terminates the inner stream through its context.
func (t *TimeoutProvider) GenerateStream(ctx context.Context, req Request) (<-chan Chunk, error) {
	inner, ok := t.inner.(Streamer)
	if !ok {
		return fallbackStream(ctx, t, req)
	}

	if t.timeout <= 0 {
		return inner.GenerateStream(ctx, req)
	}

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	ch, err := inner.GenerateStream(ctx, req)
	if err != nil {
		cancel()
		return nil, err
	}

	out := make(chan Chunk)
	go func() {
		defer close(out)
		defer cancel()
		for chunk := range ch {
			select {
			case out <- chunk:
			case <-ctx.Done():
				select {
				case out <- Chunk{Err: ctx.Err()}:
				default:
				}
				return
			}
		}
	}()

	return out, nil
}

func (t *TimeoutProvider) ModelID() string {
	return t.inner.ModelID()
}
