package llm

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction for model backend interaction.
// It is the only component in the system allowed to perform network I/O.
type Provider interface {
	// Generate sends a prompt to the backend and blocks until the full
	// response is available. The request's Schema field, when set,
	// instructs the provider to return JSON conforming to that schema.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Streamer is an optional interface for backends that can deliver the
// response incrementally. The returned channel yields a finite sequence
// of chunks and is closed when the backend signals completion. A stream
// is single-consumer and not restartable.
type Streamer interface {
	GenerateStream(ctx context.Context, req Request) (<-chan Chunk, error)
}

// Chunk is one increment of a streamed response. Err, when non-nil, is
// the terminal event of the stream; no further chunks follow it.
type Chunk struct {
	Text string
	Err  error
}

// Request describes what to send to the model backend.
type Request struct {
	// System is the system prompt. Sets the model's role and constraints.
	System string

	// Messages is the conversation history. For single-turn generation
	// (question sets, skill estimates) this contains one user message.
	Messages []Message

	// Schema is the JSON Schema the response must conform to.
	// When set, the provider uses its native structured output mechanism.
	// When nil, the response Content is raw text as json.RawMessage.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies this schema (used as schema name for OpenAI,
	// resource name for validation). Kebab-case, e.g. "question-set".
	Name string

	// Description is a human-readable description of what this schema
	// represents. Sent to the model to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output. When a Schema was provided in the
	// request, this is the validated JSON object. When no Schema was
	// provided, this is the raw text response.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
