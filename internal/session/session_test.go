package session

import "testing"

func TestNew(t *testing.T) {
	s := New()

	if s.ID == "" {
		t.Error("session ID should be set")
	}
	if s.User != "" {
		t.Errorf("User = %q, want empty", s.User)
	}
	if s.Theme != ThemeDark {
		t.Errorf("Theme = %q, want %q", s.Theme, ThemeDark)
	}
	if s.LoggedIn() {
		t.Error("new session should not be logged in")
	}
}

func TestSession_LoggedIn(t *testing.T) {
	s := New()
	s.User = "alice"

	if !s.LoggedIn() {
		t.Error("session with user set should be logged in")
	}
}

func TestTranscript_Append(t *testing.T) {
	var tr Transcript

	tr.Append("echo hi", "hi")
	tr.Append("clear", "")

	if tr.Len() != 2 {
		t.Fatalf("Len = %d, want 2", tr.Len())
	}

	entries := tr.Entries()
	if entries[0].Command != "echo hi" || entries[0].Output != "hi" {
		t.Errorf("entry 0 = %+v", entries[0])
	}
	if entries[1].Command != "clear" || entries[1].Output != "" {
		t.Errorf("entry 1 = %+v", entries[1])
	}
}

func TestTranscript_Clear(t *testing.T) {
	var tr Transcript

	// Clear on an empty transcript is a no-op
	tr.Clear()
	if tr.Len() != 0 {
		t.Errorf("Len = %d, want 0", tr.Len())
	}

	tr.Append("ls", "File1.txt")
	tr.Clear()
	if tr.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", tr.Len())
	}
}
