package interview

import (
	"context"
	"fmt"
	"strings"

	"github.com/rsharan/talentscout/internal/llm"
	"github.com/rsharan/talentscout/internal/parse"
)

// QA is one question/answer pair extracted from the transcript for
// skill estimation: the assistant's question and the candidate's reply
// that followed it. Question may be empty when the candidate spoke
// without being asked.
type QA struct {
	Question string
	Answer   string
}

// Estimator grades candidate answers into coarse skill labels.
type Estimator struct {
	provider llm.Provider
	config   Config
}

// NewEstimator creates an Estimator with the given provider and config.
func NewEstimator(provider llm.Provider, cfg Config) *Estimator {
	return &Estimator{provider: provider, config: cfg}
}

// Estimate grades the answers against the declared tech stack.
// Preconditions: a non-empty tech stack and at least one Q&A pair.
// Either failing returns ErrPreconditionNotMet and nothing is mutated
// or sent to the backend.
func (e *Estimator) Estimate(ctx context.Context, techStack string, answers []QA) (SkillEstimate, error) {
	if len(SplitTechStack(techStack)) == 0 {
		return nil, fmt.Errorf("%w: no tech stack declared", ErrPreconditionNotMet)
	}
	if len(answers) == 0 {
		return nil, fmt.Errorf("%w: transcript is empty", ErrPreconditionNotMet)
	}

	ctx = llm.WithPurpose(ctx, "skill-estimate")

	req := llm.Request{
		System: skillSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: BuildSkillPrompt(techStack, FormatAnswers(answers))},
		},
		Schema:      SkillEstimateSchema,
		MaxTokens:   e.config.MaxTokens,
		Temperature: e.config.Temperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return nil, normalizeGenerateError(err)
	}

	raw := string(resp.Content)

	var est SkillEstimate
	if err := parse.Decode(raw, &est); err != nil {
		return nil, err
	}

	if err := est.Validate(); err != nil {
		return nil, &parse.MalformedOutputError{Raw: raw, Err: err}
	}

	return est, nil
}

// FormatAnswers renders Q&A pairs as the prompt's answer block.
func FormatAnswers(answers []QA) string {
	var b strings.Builder
	for i, qa := range answers {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Q: %s\nA: %s\n", qa.Question, qa.Answer)
	}
	return strings.TrimRight(b.String(), "\n")
}
