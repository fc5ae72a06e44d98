package interview

import (
	itv "github.com/rsharan/talentscout/internal/interview"
	"github.com/rsharan/talentscout/internal/llm"
)

// questionsReadyMsg is sent when the question set has been generated.
type questionsReadyMsg struct {
	Questions itv.QuestionSet
}

// questionsFailedMsg is sent when question generation fails. Raw holds
// the model output verbatim when the failure was a parse failure.
type questionsFailedMsg struct {
	Err error
	Raw string
}

// streamStartedMsg is sent when an assistant answer stream has opened.
type streamStartedMsg struct {
	Chunks <-chan llm.Chunk
	Err    error
}

// streamChunkMsg carries one chunk of a streaming assistant answer.
// Done marks the end of the stream.
type streamChunkMsg struct {
	Text string
	Err  error
	Done bool
}

// estimateReadyMsg is sent when skill estimation completes.
type estimateReadyMsg struct {
	Estimate itv.SkillEstimate
	Err      error
	Raw      string
}
