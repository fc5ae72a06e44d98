package interview

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rsharan/talentscout/internal/llm"
)

func TestChatService_Respond(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`A goroutine is a lightweight thread managed by the Go runtime.`),
	})
	svc := NewChatService(mock, DefaultConfig())

	answer, err := svc.Respond(context.Background(), "What is a goroutine?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(answer, "goroutine") {
		t.Errorf("unexpected answer: %q", answer)
	}

	// Free-text chat must not request structured output.
	req := mock.Calls[0]
	if req.Schema != nil {
		t.Error("chat request must not carry a schema")
	}
	if !strings.Contains(req.Messages[0].Content, "What is a goroutine?") {
		t.Errorf("prompt missing user question:\n%s", req.Messages[0].Content)
	}
}

func TestChatService_Stream(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`streamed answer`),
	})
	svc := NewChatService(mock, DefaultConfig())

	ch, err := svc.Stream(context.Background(), "hello")
	if err != nil {
		t.Fatal(err)
	}

	text, err := llm.Collect(ch)
	if err != nil {
		t.Fatal(err)
	}
	if text != "streamed answer" {
		t.Errorf("got %q", text)
	}
}

func TestChatService_BackendErrorPassesThrough(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	svc := NewChatService(mock, DefaultConfig())

	answer, err := svc.Respond(context.Background(), "anything")
	if answer != "" {
		t.Errorf("expected no partial text, got %q", answer)
	}

	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected provider-unavailable error, got %v", err)
	}
}
