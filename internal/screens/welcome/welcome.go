package welcome

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rsharan/talentscout/internal/router"
	"github.com/rsharan/talentscout/internal/screen"
	"github.com/rsharan/talentscout/internal/ui/layout"
	"github.com/rsharan/talentscout/internal/ui/theme"
)

const banner = ` _____     _            _   ____                  _
|_   _|_ _| | ___ _ __ | |_/ ___|  ___ ___  _   _| |_
  | |/ _' | |/ _ \ '_ \| __\___ \ / __/ _ \| | | | __|
  | | (_| | |  __/ | | | |_ ___) | (_| (_) | |_| | |_
  |_|\__,_|_|\___|_| |_|\__|____/ \___\___/ \__,_|\__|`

var introLines = []string{
	"I will:",
	"  • Collect your professional details (experience, skills, and career interests)",
	"  • Generate tailored technical interview questions based on your tech stack",
	"  • Conduct a structured Q&A session where you can respond or ask clarifications",
	"  • Provide a skill-level estimation (Beginner / Intermediate / Expert) per technology",
	"",
	"At any time, type exit, quit, or end to finish the interview.",
}

// WelcomeScreen introduces the assistant before the candidate form.
type WelcomeScreen struct {
	next func() screen.Screen
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that transitions to the screen produced by next.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return nil
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Begin"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		if kmsg.String() == "enter" {
			form := w.next()
			return w, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: form}
			}
		}
	}
	return w, nil
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections,
		lipgloss.NewStyle().Foreground(theme.Primary).Render(banner),
		"",
		theme.Body.Bold(true).Render("Welcome to the TalentScout Hiring Assistant."),
		"",
	)

	for _, line := range introLines {
		sections = append(sections, theme.Body.Render(line))
	}

	sections = append(sections,
		"",
		theme.Hint.Render("press enter to begin"),
	)

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
