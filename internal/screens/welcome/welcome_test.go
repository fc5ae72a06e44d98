package welcome

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/rsharan/talentscout/internal/router"
	"github.com/rsharan/talentscout/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "form" }
func (s *stubScreen) Title() string                           { return "Candidate Information" }

func TestEnterTransitionsToForm(t *testing.T) {
	called := 0
	w := New(func() screen.Screen {
		called++
		return &stubScreen{}
	})

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a transition command")
	}
	if called != 1 {
		t.Fatalf("expected factory called once, got %d", called)
	}

	msg := cmd()
	replace, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if replace.Screen.Title() != "Candidate Information" {
		t.Errorf("unexpected target screen: %q", replace.Screen.Title())
	}
}

func TestOtherKeysIgnored(t *testing.T) {
	w := New(func() screen.Screen { return &stubScreen{} })

	_, cmd := w.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if cmd != nil {
		t.Fatal("expected no command for non-enter key")
	}
}

func TestViewNamesExitKeywords(t *testing.T) {
	w := New(func() screen.Screen { return &stubScreen{} })

	view := w.View(100, 40)
	for _, want := range []string{"TalentScout", "exit", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
