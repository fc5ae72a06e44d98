// Package session owns the per-session conversation state: the ordered
// transcript, the candidate profile, and the last computed skill
// estimate. All other components read and write this state through a
// Session, which is created at session start, passed explicitly, and
// discarded at session end. There are no package-level mutable globals.
package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/rsharan/talentscout/internal/candidate"
	"github.com/rsharan/talentscout/internal/interview"
)

// Speaker tags who produced a turn.
type Speaker string

const (
	SpeakerCandidate Speaker = "Candidate"
	SpeakerAssistant Speaker = "Assistant"
)

// Turn is one message in the conversation.
type Turn struct {
	Speaker Speaker
	Text    string
}

// Session is the conversation state manager for a single candidate.
// Mutations are appends or total overwrites, never partial updates.
// All methods are safe for concurrent use; a single TUI session has
// one logical caller, but async model completions land from goroutines.
type Session struct {
	mu         sync.Mutex
	id         string
	transcript []Turn
	profile    *candidate.Profile
	estimate   interview.SkillEstimate
}

// New creates an empty Session with a fresh ID.
func New() *Session {
	return &Session{id: uuid.NewString()}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// AppendTurn appends one turn to the transcript. Turns are never
// mutated or reordered afterwards.
func (s *Session) AppendTurn(speaker Speaker, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = append(s.transcript, Turn{Speaker: speaker, Text: text})
}

// Transcript returns the ordered turns as a copy; callers cannot
// mutate session state through it.
func (s *Session) Transcript() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Turn, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// TranscriptLen reports the number of turns.
func (s *Session) TranscriptLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.transcript)
}

// Clear resets the transcript and the skill estimate. The candidate
// profile is left untouched: a candidate may restart the Q&A phase
// without re-submitting personal details.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = nil
	s.estimate = nil
}

// SetProfile stores the submitted profile. The profile is set once per
// submission and treated as immutable afterwards.
func (s *Session) SetProfile(p candidate.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = &p
}

// Profile returns the stored profile, or false if none was submitted.
func (s *Session) Profile() (candidate.Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return candidate.Profile{}, false
	}
	return *s.profile, true
}

// TechStack returns the declared tech stack, or "" before submission.
func (s *Session) TechStack() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return ""
	}
	return s.profile.TechStack
}

// SetSkillEstimate overwrites the skill estimate wholesale.
func (s *Session) SetSkillEstimate(est interview.SkillEstimate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.estimate = est
}

// SkillEstimate returns the last computed estimate, or nil.
func (s *Session) SkillEstimate() interview.SkillEstimate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.estimate
}

// QAPairs extracts question/answer pairs for skill estimation: each
// assistant turn is the question for the candidate turn that follows
// it. A candidate turn with no preceding question becomes an answer
// with an empty question, so candidate-authored text is never dropped.
func (s *Session) QAPairs() []interview.QA {
	turns := s.Transcript()

	var pairs []interview.QA
	pendingQuestion := ""

	for _, t := range turns {
		switch t.Speaker {
		case SpeakerAssistant:
			pendingQuestion = t.Text
		case SpeakerCandidate:
			pairs = append(pairs, interview.QA{Question: pendingQuestion, Answer: t.Text})
			pendingQuestion = ""
		}
	}

	return pairs
}
