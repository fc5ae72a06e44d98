package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestOpenStream_FallbackSingleChunk(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`hello world`)},
	)

	ch, err := OpenStream(context.Background(), mock, Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var chunks []Chunk
	for c := range ch {
		chunks = append(chunks, c)
	}
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].Text != "hello world" {
		t.Fatalf("unexpected chunk text: %q", chunks[0].Text)
	}
}

func TestOpenStream_GenerateErrorBecomesChunkError(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)

	ch, err := OpenStream(context.Background(), mock, Request{})
	if err != nil {
		t.Fatalf("unexpected error establishing stream: %v", err)
	}

	_, err = Collect(ch)
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %v", err)
	}
}

func TestCollect_ReturnsPartialTextOnError(t *testing.T) {
	ch := make(chan Chunk, 3)
	ch <- Chunk{Text: "partial "}
	ch <- Chunk{Text: "text"}
	ch <- Chunk{Err: errors.New("mid-stream failure")}
	close(ch)

	text, err := Collect(ch)
	if err == nil {
		t.Fatal("expected error")
	}
	if text != "partial text" {
		t.Fatalf("expected accumulated text, got %q", text)
	}
}

func TestCollect_JoinsChunks(t *testing.T) {
	ch := make(chan Chunk, 3)
	ch <- Chunk{Text: "a"}
	ch <- Chunk{Text: "b"}
	ch <- Chunk{Text: "c"}
	close(ch)

	text, err := Collect(ch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "abc" {
		t.Fatalf("expected 'abc', got %q", text)
	}
}
