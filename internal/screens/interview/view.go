package interview

import (
	"fmt"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/rsharan/talentscout/internal/session"
	"github.com/rsharan/talentscout/internal/ui/theme"
)

func (s *InterviewScreen) View(width, height int) string {
	if s.phase == phaseGenerating {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			s.spin.View()+" Generating questions...")
	}

	var sections []string

	if qs := s.renderQuestions(width); qs != "" {
		sections = append(sections, qs)
	}
	if est := s.renderEstimate(); est != "" {
		sections = append(sections, est)
	}
	if errs := s.renderProblems(width); errs != "" {
		sections = append(sections, errs)
	}
	sections = append(sections, s.renderTranscript())
	sections = append(sections, s.renderPrompt())

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		Render(strings.Join(sections, "\n\n"))
}

func (s *InterviewScreen) renderQuestions(width int) string {
	if len(s.questionSet) == 0 {
		return ""
	}

	techs := make([]string, 0, len(s.questionSet))
	for tech := range s.questionSet {
		techs = append(techs, tech)
	}
	sort.Strings(techs)

	var b strings.Builder
	b.WriteString(theme.Title.Align(lipgloss.Left).Render("Technical Questions"))
	b.WriteString("\n")
	for _, tech := range techs {
		b.WriteString("\n")
		b.WriteString(theme.Body.Bold(true).Render(tech))
		b.WriteString("\n")
		for i, q := range s.questionSet[tech] {
			b.WriteString(theme.Body.Render(fmt.Sprintf("  %d. %s", i+1, q)))
			b.WriteString("\n")
		}
	}

	return theme.Card.Width(min(width-4, 100)).Render(strings.TrimRight(b.String(), "\n"))
}

func (s *InterviewScreen) renderEstimate() string {
	est := s.session.SkillEstimate()
	if len(est) == 0 {
		return ""
	}

	techs := make([]string, 0, len(est))
	for tech := range est {
		techs = append(techs, tech)
	}
	sort.Strings(techs)

	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render("Skill Level Estimation"))
	b.WriteString("\n")
	for _, tech := range techs {
		b.WriteString(theme.Body.Render("  "+tech+": "))
		b.WriteString(theme.AssistantLabel.Render(string(est[tech])))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderProblems shows the current failure, including raw model output
// verbatim when a response could not be parsed.
func (s *InterviewScreen) renderProblems(width int) string {
	var parts []string

	if s.warnMsg != "" {
		parts = append(parts, theme.Warning.Render("⚠ "+s.warnMsg))
	}
	if s.errMsg != "" {
		parts = append(parts, theme.Failure.Render("⚠ "+s.errMsg))
	}
	if s.rawOutput != "" {
		raw := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Border(lipgloss.NormalBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1).
			Width(min(width-8, 96)).
			Render(s.rawOutput)
		parts = append(parts, "Raw output:\n"+raw)
	}

	return strings.Join(parts, "\n")
}

func (s *InterviewScreen) renderTranscript() string {
	turns := s.session.Transcript()
	if len(turns) == 0 && s.partial == "" {
		return theme.Hint.Render("Ask a question or answer one of the questions above.")
	}

	var b strings.Builder
	for _, t := range turns {
		label := theme.CandidateLabel.Render("🧑 " + string(t.Speaker) + ":")
		if t.Speaker == session.SpeakerAssistant {
			label = theme.AssistantLabel.Render("🤖 " + string(t.Speaker) + ":")
		}
		b.WriteString(label + " " + theme.Body.Render(t.Text))
		b.WriteString("\n")
	}

	if s.phase == phaseStreaming {
		label := theme.AssistantLabel.Render("🤖 " + string(session.SpeakerAssistant) + ":")
		if s.partial == "" {
			b.WriteString(label + " " + s.spin.View() + theme.Hint.Render(" typing..."))
		} else {
			b.WriteString(label + " " + theme.Body.Render(s.partial))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (s *InterviewScreen) renderPrompt() string {
	switch s.phase {
	case phaseEnded:
		return theme.Hint.Render("Interview finished. Press Ctrl+C to quit.")
	case phaseEstimating:
		return s.spin.View() + theme.Hint.Render(" Analyzing candidate answers...")
	case phaseStreaming:
		return ""
	default:
		return "› " + s.input.View()
	}
}
