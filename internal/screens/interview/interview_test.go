package interview

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	itv "github.com/rsharan/talentscout/internal/interview"
	"github.com/rsharan/talentscout/internal/llm"
	"github.com/rsharan/talentscout/internal/session"
)

func newTestScreen(mock *llm.MockProvider, sess *session.Session) *InterviewScreen {
	cfg := itv.DefaultConfig()
	return New(
		itv.NewQuestionService(mock, cfg),
		itv.NewChatService(mock, cfg),
		itv.NewEstimator(mock, cfg),
		sess,
	)
}

func TestExitKeywordShortCircuits(t *testing.T) {
	mock := llm.NewMockProvider()
	sess := session.New()
	s := newTestScreen(mock, sess)
	s.phase = phaseChat

	s.input.Model.SetValue("  QUIT ")
	s.submitMessage()

	if s.phase != phaseEnded {
		t.Fatalf("expected ended phase, got %d", s.phase)
	}
	if mock.CallCount() != 0 {
		t.Errorf("exit must not reach the backend, got %d calls", mock.CallCount())
	}

	turns := sess.Transcript()
	if len(turns) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(turns))
	}
	if turns[0].Speaker != session.SpeakerCandidate || turns[0].Text != "QUIT" {
		t.Errorf("unexpected candidate turn: %+v", turns[0])
	}
	if turns[1].Speaker != session.SpeakerAssistant || turns[1].Text != session.Farewell {
		t.Errorf("unexpected assistant turn: %+v", turns[1])
	}
}

func TestEmptyInputIgnored(t *testing.T) {
	mock := llm.NewMockProvider()
	sess := session.New()
	s := newTestScreen(mock, sess)
	s.phase = phaseChat

	s.input.Model.SetValue("   ")
	s.submitMessage()

	if s.phase != phaseChat {
		t.Fatalf("expected chat phase, got %d", s.phase)
	}
	if sess.TranscriptLen() != 0 {
		t.Errorf("expected empty transcript, got %d turns", sess.TranscriptLen())
	}
}

func TestQuestionsReady(t *testing.T) {
	mock := llm.NewMockProvider()
	s := newTestScreen(mock, session.New())

	qs := itv.QuestionSet{"Python": {"Q1", "Q2", "Q3"}}
	updated, _ := s.Update(questionsReadyMsg{Questions: qs})
	s = updated.(*InterviewScreen)

	if s.phase != phaseChat {
		t.Fatalf("expected chat phase, got %d", s.phase)
	}

	view := s.View(100, 40)
	for _, want := range []string{"Python", "Q1", "Q2", "Q3"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestQuestionsFailedShowsRawOutput(t *testing.T) {
	mock := llm.NewMockProvider()
	s := newTestScreen(mock, session.New())

	raw := "the model rambled instead of returning JSON"
	updated, _ := s.Update(questionsFailedMsg{Raw: raw})
	s = updated.(*InterviewScreen)

	if s.phase != phaseChat {
		t.Fatalf("expected chat phase, got %d", s.phase)
	}

	view := s.View(120, 40)
	if !strings.Contains(view, "Could not parse questions") {
		t.Error("view missing parse failure notice")
	}
	if !strings.Contains(view, "rambled") {
		t.Error("view missing raw model output")
	}
}

func TestEstimateWithoutAnswersWarns(t *testing.T) {
	mock := llm.NewMockProvider()
	sess := session.New()
	s := newTestScreen(mock, sess)
	s.phase = phaseChat

	_, cmd := s.startEstimate()
	if cmd != nil {
		t.Fatal("expected no command on precondition failure")
	}
	if s.warnMsg == "" {
		t.Fatal("expected a warning message")
	}
	if mock.CallCount() != 0 {
		t.Errorf("precondition failure must not reach the backend, got %d calls", mock.CallCount())
	}
	if len(sess.SkillEstimate()) != 0 {
		t.Error("expected no estimate recorded")
	}
}

func TestEstimateReadyRecordsResult(t *testing.T) {
	mock := llm.NewMockProvider()
	sess := session.New()
	s := newTestScreen(mock, sess)
	s.phase = phaseEstimating

	var est itv.SkillEstimate
	if err := json.Unmarshal([]byte(`{"Python":"Expert"}`), &est); err != nil {
		t.Fatal(err)
	}

	updated, _ := s.Update(estimateReadyMsg{Estimate: est})
	s = updated.(*InterviewScreen)

	if s.phase != phaseChat {
		t.Fatalf("expected chat phase, got %d", s.phase)
	}
	if sess.SkillEstimate()["Python"] != itv.Expert {
		t.Errorf("estimate not recorded: %+v", sess.SkillEstimate())
	}

	view := s.View(100, 40)
	if !strings.Contains(view, "Expert") {
		t.Error("view missing estimate")
	}
}

func TestStreamChunksAccumulateThenCommit(t *testing.T) {
	mock := llm.NewMockProvider()
	sess := session.New()
	s := newTestScreen(mock, sess)
	s.phase = phaseStreaming

	s.handleStreamChunk(streamChunkMsg{Text: "A goroutine "})
	s.handleStreamChunk(streamChunkMsg{Text: "is lightweight."})

	if s.partial != "A goroutine is lightweight." {
		t.Fatalf("unexpected partial: %q", s.partial)
	}
	if sess.TranscriptLen() != 0 {
		t.Fatal("partial answer must not be committed yet")
	}

	s.handleStreamChunk(streamChunkMsg{Done: true})

	if s.phase != phaseChat {
		t.Fatalf("expected chat phase, got %d", s.phase)
	}
	turns := sess.Transcript()
	if len(turns) != 1 || turns[0].Text != "A goroutine is lightweight." {
		t.Fatalf("unexpected transcript: %+v", turns)
	}
}

func TestStreamErrorDropsPartial(t *testing.T) {
	mock := llm.NewMockProvider()
	sess := session.New()
	s := newTestScreen(mock, sess)
	s.phase = phaseStreaming
	s.partial = "half an ans"

	s.handleStreamChunk(streamChunkMsg{Err: errors.New("connection reset")})

	if s.phase != phaseChat {
		t.Fatalf("expected chat phase, got %d", s.phase)
	}
	if s.partial != "" {
		t.Errorf("partial not dropped: %q", s.partial)
	}
	if sess.TranscriptLen() != 0 {
		t.Errorf("partial must not reach the transcript, got %d turns", sess.TranscriptLen())
	}
}
