package interview

import (
	"context"

	"github.com/rsharan/talentscout/internal/llm"
)

// ChatService produces free-text assistant answers for the Q&A phase.
// Answers are never parsed as JSON; they go straight to the transcript.
type ChatService struct {
	provider llm.Provider
	config   Config
}

// NewChatService creates a ChatService with the given provider and config.
func NewChatService(provider llm.Provider, cfg Config) *ChatService {
	return &ChatService{provider: provider, config: cfg}
}

// Stream starts an incremental answer to userMessage. The returned
// channel yields text chunks as the backend produces them and closes
// when the answer is complete.
func (s *ChatService) Stream(ctx context.Context, userMessage string) (<-chan llm.Chunk, error) {
	ctx = llm.WithPurpose(ctx, "chat-answer")
	return llm.OpenStream(ctx, s.provider, s.chatRequest(userMessage))
}

// Respond answers userMessage, blocking until the full text is
// available. Partial text accumulated before a mid-stream failure is
// discarded; the caller gets the error.
func (s *ChatService) Respond(ctx context.Context, userMessage string) (string, error) {
	ch, err := s.Stream(ctx, userMessage)
	if err != nil {
		return "", err
	}

	text, err := llm.Collect(ch)
	if err != nil {
		return "", err
	}
	return text, nil
}

func (s *ChatService) chatRequest(userMessage string) llm.Request {
	return llm.Request{
		System: chatSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: BuildChatPrompt(userMessage)},
		},
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}
}
