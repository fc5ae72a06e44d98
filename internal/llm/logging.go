package llm

import (
	"context"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/rsharan/talentscout/internal/store"
)

// maxLogPreview bounds prompt/response text recorded in log fields.
const maxLogPreview = 200

// LoggingProvider is a decorator that records every model request as a
// structured log line and an event in the request-event log.
type LoggingProvider struct {
	inner  Provider
	logger *zap.Logger
	events store.EventRepo
}

var _ Streamer = (*LoggingProvider)(nil)

// WithLogging wraps a Provider with request logging.
func WithLogging(p Provider, logger *zap.Logger, events store.EventRepo) *LoggingProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	if events == nil {
		events = store.NopEventRepo{}
	}
	return &LoggingProvider{inner: p, logger: logger, events: events}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	l.logger.Debug("model request",
		zap.String("purpose", purpose),
		zap.String("model", l.inner.ModelID()),
		zap.Int("prompt_length", promptLength(req)),
	)

	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		Purpose:   purpose,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
	}

	if err != nil {
		data.ErrorMessage = err.Error()
		l.logger.Warn("model request failed",
			zap.String("purpose", purpose),
			zap.Int64("latency_ms", data.LatencyMs),
			zap.Error(err),
		)
	} else {
		l.logger.Debug("model response",
			zap.String("purpose", purpose),
			zap.Int64("latency_ms", data.LatencyMs),
			zap.Int("output_tokens", data.OutputTokens),
			zap.String("response_preview", truncateForLog(string(resp.Content), maxLogPreview)),
		)
	}

	// Log the event but don't fail the request if logging fails.
	if logErr := l.events.AppendLLMRequest(ctx, data); logErr != nil {
		l.logger.Warn("failed to log model request event", zap.Error(logErr))
	}

	return resp, err
}

// GenerateStream forwards to the inner stream and records one event
// when the stream completes.
func (l *LoggingProvider) GenerateStream(ctx context.Context, req Request) (<-chan Chunk, error) {
	inner, ok := l.inner.(Streamer)
	if !ok {
		return fallbackStream(ctx, l, req)
	}

	start := time.Now()
	purpose := PurposeFrom(ctx)

	ch, err := inner.GenerateStream(ctx, req)
	if err != nil {
		data := store.LLMRequestEventData{
			Provider:     l.inner.ModelID(),
			Model:        l.inner.ModelID(),
			Purpose:      purpose,
			LatencyMs:    time.Since(start).Milliseconds(),
			Success:      false,
			ErrorMessage: err.Error(),
		}
		if logErr := l.events.AppendLLMRequest(ctx, data); logErr != nil {
			l.logger.Warn("failed to log model request event", zap.Error(logErr))
		}
		return nil, err
	}

	out := make(chan Chunk)
	go func() {
		defer close(out)
		var streamErr error
		chunks := 0
		for chunk := range ch {
			if chunk.Err != nil {
				streamErr = chunk.Err
			}
			chunks++
			select {
			case out <- chunk:
			case <-ctx.Done():
				streamErr = ctx.Err()
				l.finishStreamEvent(ctx, purpose, start, chunks, streamErr)
				return
			}
		}
		l.finishStreamEvent(ctx, purpose, start, chunks, streamErr)
	}()

	return out, nil
}

func (l *LoggingProvider) finishStreamEvent(ctx context.Context, purpose string, start time.Time, chunks int, streamErr error) {
	data := store.LLMRequestEventData{
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		Purpose:   purpose,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   streamErr == nil,
	}
	if streamErr != nil {
		data.ErrorMessage = streamErr.Error()
	}

	l.logger.Debug("model stream finished",
		zap.String("purpose", purpose),
		zap.Int("chunks", chunks),
		zap.Int64("latency_ms", data.LatencyMs),
		zap.Bool("success", streamErr == nil),
	)

	if logErr := l.events.AppendLLMRequest(ctx, data); logErr != nil {
		l.logger.Warn("failed to log model request event", zap.Error(logErr))
	}
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

func promptLength(req Request) int {
	n := utf8.RuneCountInString(req.System)
	for _, m := range req.Messages {
		n += utf8.RuneCountInString(m.Content)
	}
	return n
}

func truncateForLog(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max]) + "…"
}
