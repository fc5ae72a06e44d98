package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// LLMRequestEventData captures the data for a single model request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEvent is a stored request event, as read back from the log.
type LLMRequestEvent struct {
	ID        int64
	CreatedAt time.Time
	LLMRequestEventData
}

// EventRepo provides append and query access to the request-event log.
type EventRepo interface {
	// AppendLLMRequest records a model API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentLLMRequests returns up to limit events, newest first.
	RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequestEvent, error)
}

type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	const q = `
INSERT INTO llm_request_events
	(provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, q,
		data.Provider,
		data.Model,
		data.Purpose,
		data.InputTokens,
		data.OutputTokens,
		data.LatencyMs,
		data.Success,
		data.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequestEvent, error) {
	if limit <= 0 {
		limit = 20
	}

	const q = `
SELECT id, created_at, provider, model, purpose,
	input_tokens, output_tokens, latency_ms, success, error_message
FROM llm_request_events
ORDER BY id DESC
LIMIT ?`

	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}
	defer rows.Close()

	var events []LLMRequestEvent
	for rows.Next() {
		var ev LLMRequestEvent
		if err := rows.Scan(
			&ev.ID,
			&ev.CreatedAt,
			&ev.Provider,
			&ev.Model,
			&ev.Purpose,
			&ev.InputTokens,
			&ev.OutputTokens,
			&ev.LatencyMs,
			&ev.Success,
			&ev.ErrorMessage,
		); err != nil {
			return nil, fmt.Errorf("scan LLM request event: %w", err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

// NopEventRepo discards events. Used when the event database is
// unavailable so logging never blocks the session.
type NopEventRepo struct{}

func (NopEventRepo) AppendLLMRequest(context.Context, LLMRequestEventData) error {
	return nil
}

func (NopEventRepo) RecentLLMRequests(context.Context, int) ([]LLMRequestEvent, error) {
	return nil, nil
}
