package profile

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rsharan/talentscout/internal/candidate"
	"github.com/rsharan/talentscout/internal/router"
	"github.com/rsharan/talentscout/internal/screen"
	"github.com/rsharan/talentscout/internal/session"
	"github.com/rsharan/talentscout/internal/ui/components"
	"github.com/rsharan/talentscout/internal/ui/layout"
	"github.com/rsharan/talentscout/internal/ui/theme"
)

// Form field indices, in display order.
const (
	fieldName = iota
	fieldEmail
	fieldPhone
	fieldExperience
	fieldPosition
	fieldLocation
	fieldTechStack
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Full Name",
	"Email Address",
	"Phone Number",
	"Years of Experience",
	"Desired Position(s)",
	"Current Location",
	"Tech Stack (e.g., Python, Django, MySQL)",
}

// profileSavedMsg is sent when the profile has been written to the store.
type profileSavedMsg struct {
	Err error
}

// ProfileScreen collects the candidate information form.
type ProfileScreen struct {
	store   *candidate.FileStore
	session *session.Session
	next    func() screen.Screen

	inputs  [fieldCount]components.TextInput
	focused int
	errMsg  string
	saving  bool
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates a ProfileScreen. The screen produced by next is pushed
// once the form is submitted.
func New(store *candidate.FileStore, sess *session.Session, next func() screen.Screen) *ProfileScreen {
	s := &ProfileScreen{
		store:   store,
		session: sess,
		next:    next,
	}

	for i := range s.inputs {
		numeric := i == fieldExperience
		s.inputs[i] = components.NewTextInput(fieldLabels[i], numeric, 120)
	}

	return s
}

func (s *ProfileScreen) Title() string {
	return "Candidate Information"
}

func (s *ProfileScreen) Init() tea.Cmd {
	return s.inputs[s.focused].Focus()
}

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab/↓", Description: "Next field"},
		{Key: "Shift+Tab/↑", Description: "Previous field"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case profileSavedMsg:
		return s.handleSaved(msg)

	case tea.KeyPressMsg:
		if s.saving {
			return s, nil
		}
		switch msg.String() {
		case "tab", "down":
			return s, s.focusField(s.focused + 1)
		case "shift+tab", "up":
			return s, s.focusField(s.focused - 1)
		case "enter":
			if s.focused < fieldCount-1 {
				return s, s.focusField(s.focused + 1)
			}
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	s.inputs[s.focused], cmd = s.inputs[s.focused].Update(msg)
	return s, cmd
}

func (s *ProfileScreen) focusField(i int) tea.Cmd {
	if i < 0 {
		i = fieldCount - 1
	}
	if i >= fieldCount {
		i = 0
	}
	s.inputs[s.focused].Blur()
	s.focused = i
	return s.inputs[s.focused].Focus()
}

// submit validates the form and persists the profile. Name and tech
// stack are required; everything else is accepted as typed.
func (s *ProfileScreen) submit() tea.Cmd {
	name := strings.TrimSpace(s.inputs[fieldName].Value())
	stack := strings.TrimSpace(s.inputs[fieldTechStack].Value())

	if name == "" {
		s.errMsg = "Full name is required."
		return s.focusField(fieldName)
	}
	if stack == "" {
		s.errMsg = "Tech stack is required, questions are generated from it."
		return s.focusField(fieldTechStack)
	}

	exp, err := s.inputs[fieldExperience].NumericValue()
	if err != nil {
		exp = 0
	}

	p := candidate.Profile{
		Name:       name,
		Email:      strings.TrimSpace(s.inputs[fieldEmail].Value()),
		Phone:      strings.TrimSpace(s.inputs[fieldPhone].Value()),
		Experience: exp,
		Position:   strings.TrimSpace(s.inputs[fieldPosition].Value()),
		Location:   strings.TrimSpace(s.inputs[fieldLocation].Value()),
		TechStack:  stack,
	}

	s.session.SetProfile(p)
	s.errMsg = ""
	s.saving = true

	return func() tea.Msg {
		return profileSavedMsg{Err: s.store.Append(p)}
	}
}

// handleSaved moves on to the interview. A persistence failure is
// surfaced but never blocks the session: the profile is already in
// memory and the interview can proceed.
func (s *ProfileScreen) handleSaved(msg profileSavedMsg) (screen.Screen, tea.Cmd) {
	s.saving = false

	if msg.Err != nil {
		s.errMsg = "Could not save your details: " + msg.Err.Error()
	}

	interviewScreen := s.next()
	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: interviewScreen}
	}
}

func (s *ProfileScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Candidate Information"))
	b.WriteString("\n\n")

	for i := range s.inputs {
		label := fieldLabels[i]
		style := theme.FieldInactive
		marker := "  "
		if i == s.focused {
			style = theme.FieldActive
			marker = "▸ "
		}
		b.WriteString(style.Render(marker + label))
		b.WriteString("\n")
		b.WriteString("  " + s.inputs[i].View())
		b.WriteString("\n\n")
	}

	if s.errMsg != "" {
		b.WriteString(theme.Warning.Render("⚠ " + s.errMsg))
		b.WriteString("\n")
	}
	if s.saving {
		b.WriteString(theme.Hint.Render("Saving..."))
		b.WriteString("\n")
	}

	card := theme.Card.Width(min(width-4, 76)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
