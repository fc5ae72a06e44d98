package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rsharan/talentscout/internal/candidate"
	itv "github.com/rsharan/talentscout/internal/interview"
	"github.com/rsharan/talentscout/internal/router"
	"github.com/rsharan/talentscout/internal/screen"
	"github.com/rsharan/talentscout/internal/screens/interview"
	"github.com/rsharan/talentscout/internal/screens/profile"
	"github.com/rsharan/talentscout/internal/screens/welcome"
	"github.com/rsharan/talentscout/internal/session"
	"github.com/rsharan/talentscout/internal/ui/layout"
)

// Deps carries everything the screens need, wired up by the command layer.
type Deps struct {
	Questions  *itv.QuestionService
	Chat       *itv.ChatService
	Estimator  *itv.Estimator
	Session    *session.Session
	Candidates *candidate.FileStore

	// ModelID is shown in the header so the interviewer knows which
	// backend is answering.
	ModelID string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	modelID string
	width   int
	height  int
}

// newAppModel creates the root model with the welcome screen on top of
// the stack. Screen factories are chained so each screen constructs its
// successor lazily.
func newAppModel(deps Deps) AppModel {
	interviewFactory := func() screen.Screen {
		return interview.New(deps.Questions, deps.Chat, deps.Estimator, deps.Session)
	}
	profileFactory := func() screen.Screen {
		return profile.New(deps.Candidates, deps.Session, interviewFactory)
	}

	return AppModel{
		router:  router.New(welcome.New(profileFactory)),
		modelID: deps.ModelID,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.modelID, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(deps Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
