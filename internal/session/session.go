// Package session holds the transient state of one simterm run.
package session

import "github.com/google/uuid"

// Theme identifies one of the two supported color schemes.
type Theme string

const (
	// ThemeDark is the default scheme: dark background, green text.
	ThemeDark Theme = "dark"

	// ThemeLight is the alternate scheme: light background, dark text.
	ThemeLight Theme = "light"
)

// Session is the per-run state: who is logged in and which theme is
// active. User is set once by a successful login and kept until the
// process exits; there is no logout command.
type Session struct {
	// ID uniquely identifies this run, for log correlation.
	ID string

	// User is the authenticated username, or empty before login.
	User string

	// Theme is the active color scheme.
	Theme Theme
}

// New creates a Session with the default theme and no authenticated user.
func New() *Session {
	return &Session{
		ID:    uuid.NewString(),
		Theme: ThemeDark,
	}
}

// LoggedIn reports whether a user has authenticated.
func (s *Session) LoggedIn() bool {
	return s.User != ""
}
