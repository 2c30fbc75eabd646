package style

import (
	"testing"

	"simterm/internal/session"
)

func TestFor(t *testing.T) {
	if got := For(session.ThemeDark); got.Name != session.ThemeDark {
		t.Errorf("For(dark).Name = %q, want dark", got.Name)
	}
	if got := For(session.ThemeLight); got.Name != session.ThemeLight {
		t.Errorf("For(light).Name = %q, want light", got.Name)
	}

	// Unrecognized values fall back to dark
	if got := For(session.Theme("purple")); got.Name != session.ThemeDark {
		t.Errorf("For(purple).Name = %q, want dark", got.Name)
	}
}

func TestThemesDiffer(t *testing.T) {
	dark := Dark()
	light := Light()

	if dark.Background == light.Background {
		t.Error("dark and light backgrounds should differ")
	}
	if dark.Foreground == light.Foreground {
		t.Error("dark and light foregrounds should differ")
	}
}

func TestNewStyles(t *testing.T) {
	s := NewStyles(Dark())

	if s.Theme.Name != session.ThemeDark {
		t.Errorf("Theme.Name = %q, want dark", s.Theme.Name)
	}
	if s.App.GetBackground() != Dark().Background {
		t.Error("App style should carry the theme background")
	}
}
