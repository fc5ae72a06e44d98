package interview

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rsharan/talentscout/internal/llm"
	"github.com/rsharan/talentscout/internal/parse"
)

// QuestionService generates interview question sets from a declared
// tech stack. Results are memoized keyed on the tech-stack string so
// repeated renders never re-invoke the backend for the same stack.
type QuestionService struct {
	provider llm.Provider
	config   Config

	mu    sync.Mutex
	cache map[string]QuestionSet
}

// NewQuestionService creates a QuestionService with the given provider
// and config.
func NewQuestionService(provider llm.Provider, cfg Config) *QuestionService {
	return &QuestionService{
		provider: provider,
		config:   cfg,
		cache:    make(map[string]QuestionSet),
	}
}

// Generate produces exactly 3 questions per technology in techStack.
// An empty tech stack is a precondition failure: questions are derived
// from the stack alone, so without it nothing may be computed.
func (s *QuestionService) Generate(ctx context.Context, techStack string) (QuestionSet, error) {
	if len(SplitTechStack(techStack)) == 0 {
		return nil, fmt.Errorf("%w: no tech stack declared", ErrPreconditionNotMet)
	}

	s.mu.Lock()
	if cached, ok := s.cache[techStack]; ok {
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: questionsSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: BuildQuestionsPrompt(techStack)},
		},
		Schema:      QuestionSetSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, normalizeGenerateError(err)
	}

	raw := string(resp.Content)

	var qs QuestionSet
	if err := parse.Decode(raw, &qs); err != nil {
		return nil, err
	}

	if err := qs.Validate(); err != nil {
		return nil, &parse.MalformedOutputError{Raw: raw, Err: err}
	}

	s.mu.Lock()
	s.cache[techStack] = qs
	s.mu.Unlock()

	return qs, nil
}

// Invalidate drops the cached question set for the given stack, e.g.
// after the candidate profile is resubmitted.
func (s *QuestionService) Invalidate(techStack string) {
	s.mu.Lock()
	delete(s.cache, techStack)
	s.mu.Unlock()
}

// normalizeGenerateError folds a backend-side schema rejection into the
// malformed-output taxonomy, preserving whatever content came back.
// Everything else (unavailable, rate limit, context errors) passes
// through untouched.
func normalizeGenerateError(err error) error {
	var invalid *llm.ErrInvalidResponse
	if errors.As(err, &invalid) {
		return &parse.MalformedOutputError{Raw: string(invalid.Content), Err: invalid}
	}
	return err
}
