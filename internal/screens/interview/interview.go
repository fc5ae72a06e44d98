package interview

import (
	"context"
	"errors"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	itv "github.com/rsharan/talentscout/internal/interview"
	"github.com/rsharan/talentscout/internal/llm"
	"github.com/rsharan/talentscout/internal/parse"
	"github.com/rsharan/talentscout/internal/screen"
	"github.com/rsharan/talentscout/internal/session"
	"github.com/rsharan/talentscout/internal/ui/components"
	"github.com/rsharan/talentscout/internal/ui/layout"
	"github.com/rsharan/talentscout/internal/ui/theme"
)

// phase tracks what the interview screen is currently doing.
type phase int

const (
	phaseGenerating phase = iota // waiting for the question set
	phaseChat                    // questions shown, Q&A active
	phaseStreaming               // assistant answer in flight
	phaseEstimating              // skill estimation in flight
	phaseEnded                   // exit keyword received
)

// InterviewScreen runs the technical interview: question display,
// free-text Q&A and on-demand skill estimation.
type InterviewScreen struct {
	questions *itv.QuestionService
	chat      *itv.ChatService
	estimator *itv.Estimator
	session   *session.Session

	phase       phase
	questionSet itv.QuestionSet
	stream      <-chan llm.Chunk
	partial     string
	pendingUser string
	rawOutput   string
	errMsg      string
	warnMsg     string

	input components.TextInput
	spin  spinner.Model
}

var _ screen.Screen = (*InterviewScreen)(nil)
var _ screen.KeyHintProvider = (*InterviewScreen)(nil)

// New creates an InterviewScreen with injected services.
func New(questions *itv.QuestionService, chat *itv.ChatService, estimator *itv.Estimator, sess *session.Session) *InterviewScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Hint

	return &InterviewScreen{
		questions: questions,
		chat:      chat,
		estimator: estimator,
		session:   sess,
		phase:     phaseGenerating,
		input:     components.NewTextInput("Your message...", false, 500),
		spin:      sp,
	}
}

func (s *InterviewScreen) Title() string {
	return "Technical Interview"
}

func (s *InterviewScreen) Init() tea.Cmd {
	return tea.Batch(
		s.generateQuestions(),
		s.input.Init(),
		s.spin.Tick,
	)
}

func (s *InterviewScreen) KeyHints() []layout.KeyHint {
	if s.phase == phaseEnded {
		return []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Ctrl+E", Description: "Estimate skills"},
		{Key: "Ctrl+L", Description: "Clear conversation"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *InterviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsReadyMsg:
		s.phase = phaseChat
		s.questionSet = msg.Questions
		s.errMsg = ""
		s.rawOutput = ""
		return s, nil

	case questionsFailedMsg:
		s.phase = phaseChat
		s.errMsg = "Could not parse questions properly."
		s.rawOutput = msg.Raw
		if msg.Raw == "" {
			s.errMsg = "Question generation failed: " + msg.Err.Error()
		}
		return s, nil

	case streamStartedMsg:
		return s.handleStreamStarted(msg)

	case streamChunkMsg:
		return s.handleStreamChunk(msg)

	case estimateReadyMsg:
		return s.handleEstimateReady(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	if s.phase == phaseChat {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *InterviewScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if s.phase == phaseEnded {
		return s, nil
	}

	switch msg.String() {
	case "enter":
		if s.phase == phaseChat {
			return s.submitMessage()
		}
		return s, nil

	case "ctrl+e":
		if s.phase == phaseChat {
			return s.startEstimate()
		}
		return s, nil

	case "ctrl+l":
		if s.phase == phaseChat {
			s.session.Clear()
			s.warnMsg = ""
			s.errMsg = ""
			s.rawOutput = ""
		}
		return s, nil
	}

	if s.phase == phaseChat {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// submitMessage handles the candidate pressing enter on the chat input.
// Exit keywords short-circuit: both turns are appended locally and no
// model request is made.
func (s *InterviewScreen) submitMessage() (screen.Screen, tea.Cmd) {
	text := strings.TrimSpace(s.input.Value())
	if text == "" {
		return s, nil
	}
	s.input.Reset()
	s.warnMsg = ""

	if session.IsExit(text) {
		s.session.AppendTurn(session.SpeakerCandidate, text)
		s.session.AppendTurn(session.SpeakerAssistant, session.Farewell)
		s.phase = phaseEnded
		return s, nil
	}

	s.session.AppendTurn(session.SpeakerCandidate, text)
	s.pendingUser = text
	s.partial = ""
	s.phase = phaseStreaming

	chat := s.chat
	return s, tea.Batch(
		func() tea.Msg {
			ch, err := chat.Stream(context.Background(), text)
			return streamStartedMsg{Chunks: ch, Err: err}
		},
		s.spin.Tick,
	)
}

func (s *InterviewScreen) handleStreamStarted(msg streamStartedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.phase = phaseChat
		s.errMsg = "Assistant unavailable: " + msg.Err.Error()
		return s, nil
	}
	s.stream = msg.Chunks
	return s, readChunk(s.stream)
}

// readChunk pulls the next chunk off the stream. Each delivered chunk
// schedules the next read, so the UI stays responsive between chunks.
func readChunk(ch <-chan llm.Chunk) tea.Cmd {
	return func() tea.Msg {
		chunk, ok := <-ch
		if !ok {
			return streamChunkMsg{Done: true}
		}
		return streamChunkMsg{Text: chunk.Text, Err: chunk.Err}
	}
}

func (s *InterviewScreen) handleStreamChunk(msg streamChunkMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		// Partial text is dropped: the transcript only ever holds
		// complete answers.
		s.phase = phaseChat
		s.partial = ""
		s.stream = nil
		s.errMsg = "Assistant failed mid-answer: " + msg.Err.Error()
		return s, nil
	}

	if msg.Done {
		s.session.AppendTurn(session.SpeakerAssistant, s.partial)
		s.phase = phaseChat
		s.partial = ""
		s.stream = nil
		s.errMsg = ""
		return s, nil
	}

	s.partial += msg.Text
	return s, readChunk(s.stream)
}

// startEstimate kicks off skill estimation. Preconditions are checked
// here as well so the user gets an immediate warning instead of an
// async error.
func (s *InterviewScreen) startEstimate() (screen.Screen, tea.Cmd) {
	if s.session.TranscriptLen() == 0 || len(itv.SplitTechStack(s.session.TechStack())) == 0 {
		s.warnMsg = "Please complete candidate details and provide some answers first."
		return s, nil
	}

	s.phase = phaseEstimating
	s.warnMsg = ""

	estimator := s.estimator
	stack := s.session.TechStack()
	pairs := s.session.QAPairs()

	return s, tea.Batch(
		func() tea.Msg {
			est, err := estimator.Estimate(context.Background(), stack, pairs)
			msg := estimateReadyMsg{Estimate: est, Err: err}
			var malformed *parse.MalformedOutputError
			if errors.As(err, &malformed) {
				msg.Raw = malformed.Raw
			}
			return msg
		},
		s.spin.Tick,
	)
}

func (s *InterviewScreen) handleEstimateReady(msg estimateReadyMsg) (screen.Screen, tea.Cmd) {
	s.phase = phaseChat

	if msg.Err != nil {
		if errors.Is(msg.Err, itv.ErrPreconditionNotMet) {
			s.warnMsg = "Please complete candidate details and provide some answers first."
			return s, nil
		}
		s.errMsg = "Could not estimate skill levels."
		s.rawOutput = msg.Raw
		if msg.Raw == "" {
			s.errMsg = "Skill estimation failed: " + msg.Err.Error()
		}
		return s, nil
	}

	s.session.SetSkillEstimate(msg.Estimate)
	s.errMsg = ""
	s.rawOutput = ""
	return s, nil
}

func (s *InterviewScreen) generateQuestions() tea.Cmd {
	questions := s.questions
	stack := s.session.TechStack()

	return func() tea.Msg {
		qs, err := questions.Generate(context.Background(), stack)
		if err != nil {
			msg := questionsFailedMsg{Err: err}
			var malformed *parse.MalformedOutputError
			if errors.As(err, &malformed) {
				msg.Raw = malformed.Raw
			}
			return msg
		}
		return questionsReadyMsg{Questions: qs}
	}
}
