package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"simterm/internal/credstore"
	"simterm/internal/session"
	"simterm/internal/style"
)

func newModel(t *testing.T) Model {
	t.Helper()
	m := New("simterm", session.New(), credstore.New(t.TempDir()))
	// Simulate the initial window size message
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model)
}

func TestNew_SeedsWelcomeEntry(t *testing.T) {
	m := New("simterm", session.New(), credstore.New(t.TempDir()))

	entries := m.trans.Entries()
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if entries[0].Command != "" {
		t.Errorf("welcome Command = %q, want empty", entries[0].Command)
	}
	if !strings.Contains(entries[0].Output, "Welcome to simterm!") {
		t.Errorf("welcome Output = %q", entries[0].Output)
	}
}

func TestSubmit_BlankLineProducesNoEntry(t *testing.T) {
	m := newModel(t)
	before := m.trans.Len()

	m = m.submit("")
	m = m.submit("   ")

	if m.trans.Len() != before {
		t.Errorf("transcript len = %d, want %d", m.trans.Len(), before)
	}
}

func TestSubmit_AppendsEntry(t *testing.T) {
	m := newModel(t)

	m = m.submit("help")

	entries := m.trans.Entries()
	last := entries[len(entries)-1]
	if last.Command != "help" {
		t.Errorf("Command = %q, want %q", last.Command, "help")
	}
	if !strings.Contains(last.Output, "Available commands:") {
		t.Errorf("Output = %q", last.Output)
	}
}

func TestSubmit_ResetsInput(t *testing.T) {
	m := newModel(t)
	m.input.SetValue("help")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if m.input.Value() != "" {
		t.Errorf("input = %q, want empty", m.input.Value())
	}
}

func TestSubmit_ThemeSwitchRestyles(t *testing.T) {
	m := newModel(t)
	m.sess.User = "alice" // theme is gated behind login

	m = m.submit("theme light")

	if m.sess.Theme != session.ThemeLight {
		t.Errorf("Theme = %q, want light", m.sess.Theme)
	}
	if m.styles.Theme.Name != session.ThemeLight {
		t.Errorf("styles theme = %q, want light", m.styles.Theme.Name)
	}
	if m.styles.Theme.Background != style.Light().Background {
		t.Error("view should carry the light background")
	}
}

func TestSubmit_ClearEmptiesTranscript(t *testing.T) {
	m := newModel(t)
	m.sess.User = "alice"

	m = m.submit("echo hi")
	if m.trans.Len() == 0 {
		t.Fatal("transcript should have entries")
	}

	m = m.submit("clear")
	if m.trans.Len() != 0 {
		t.Errorf("transcript len = %d, want 0", m.trans.Len())
	}
	if m.sess.User != "alice" {
		t.Errorf("clear changed User to %q", m.sess.User)
	}
}

func TestPromptLabel(t *testing.T) {
	m := newModel(t)

	if got := m.promptLabel(); got != "user@simterm:" {
		t.Errorf("promptLabel = %q, want %q", got, "user@simterm:")
	}

	m.sess.User = "alice"
	if got := m.promptLabel(); got != "alice@simterm:" {
		t.Errorf("promptLabel = %q, want %q", got, "alice@simterm:")
	}
}

func TestUpdate_QuitKeys(t *testing.T) {
	m := newModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should produce a command")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Errorf("ctrl+c msg = %#v, want tea.QuitMsg", msg)
	}
}

func TestView_BeforeReady(t *testing.T) {
	m := New("simterm", session.New(), credstore.New(t.TempDir()))

	if got := m.View(); got != "Initializing..." {
		t.Errorf("View = %q before first window size", got)
	}
}
