package interview

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rsharan/talentscout/internal/llm"
	"github.com/rsharan/talentscout/internal/parse"
)

func validQuestionsJSON() json.RawMessage {
	return json.RawMessage(`{
		"Python": ["Q1", "Q2", "Q3"],
		"Django": ["Q1", "Q2", "Q3"]
	}`)
}

func TestQuestionService_Generate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionsJSON()})
	svc := NewQuestionService(mock, DefaultConfig())

	qs, err := svc.Generate(context.Background(), "Python, Django")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(qs) != 2 {
		t.Fatalf("expected 2 technologies, got %d", len(qs))
	}
	for _, tech := range []string{"Python", "Django"} {
		if len(qs[tech]) != 3 {
			t.Errorf("expected 3 questions for %s, got %d", tech, len(qs[tech]))
		}
	}

	// The prompt must name both technologies verbatim.
	req := mock.Calls[0]
	prompt := req.Messages[0].Content
	for _, tech := range []string{"Python", "Django"} {
		if !strings.Contains(prompt, tech) {
			t.Errorf("prompt missing technology %q:\n%s", tech, prompt)
		}
	}
}

func TestQuestionService_MemoizesByTechStack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionsJSON()})
	svc := NewQuestionService(mock, DefaultConfig())

	first, err := svc.Generate(context.Background(), "Python, Django")
	if err != nil {
		t.Fatal(err)
	}

	// Second render with the same stack: no backend call.
	second, err := svc.Generate(context.Background(), "Python, Django")
	if err != nil {
		t.Fatal(err)
	}

	if mock.CallCount() != 1 {
		t.Errorf("expected 1 backend call, got %d", mock.CallCount())
	}
	if len(first) != len(second) {
		t.Error("memoized result differs")
	}
}

func TestQuestionService_EmptyStackIsPrecondition(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewQuestionService(mock, DefaultConfig())

	for _, stack := range []string{"", "   ", ", ,"} {
		_, err := svc.Generate(context.Background(), stack)
		if !errors.Is(err, ErrPreconditionNotMet) {
			t.Errorf("stack %q: expected precondition error, got %v", stack, err)
		}
	}

	if mock.CallCount() != 0 {
		t.Errorf("expected no backend calls, got %d", mock.CallCount())
	}
}

func TestQuestionService_BackendFailureIsNotParsed(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	svc := NewQuestionService(mock, DefaultConfig())

	_, err := svc.Generate(context.Background(), "Python")

	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected provider-unavailable error, got %v", err)
	}

	var malformed *parse.MalformedOutputError
	if errors.As(err, &malformed) {
		t.Error("backend failure must not become a parse failure")
	}
}

func TestQuestionService_WrongQuestionCountIsMalformed(t *testing.T) {
	raw := `{"Python": ["only one question"]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(raw)})
	svc := NewQuestionService(mock, DefaultConfig())

	_, err := svc.Generate(context.Background(), "Python")

	var malformed *parse.MalformedOutputError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected malformed-output error, got %v", err)
	}
	if malformed.Raw != raw {
		t.Errorf("raw payload not preserved: %q", malformed.Raw)
	}
}

func TestQuestionService_FencedOutputRecovered(t *testing.T) {
	fenced := "Here you go:\n```json\n" + string(validQuestionsJSON()) + "\n```"
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(fenced)})
	svc := NewQuestionService(mock, DefaultConfig())

	qs, err := svc.Generate(context.Background(), "Python, Django")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs["Python"]) != 3 {
		t.Errorf("expected recovered questions, got %+v", qs)
	}
}

func TestQuestionService_Invalidate(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validQuestionsJSON()},
		llm.MockResponse{Content: validQuestionsJSON()},
	)
	svc := NewQuestionService(mock, DefaultConfig())

	if _, err := svc.Generate(context.Background(), "Python, Django"); err != nil {
		t.Fatal(err)
	}
	svc.Invalidate("Python, Django")
	if _, err := svc.Generate(context.Background(), "Python, Django"); err != nil {
		t.Fatal(err)
	}

	if mock.CallCount() != 2 {
		t.Errorf("expected 2 backend calls after invalidation, got %d", mock.CallCount())
	}
}
