package shell

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"simterm/internal/credstore"
	"simterm/internal/session"
)

// Welcome is the transcript's seed entry at startup.
const Welcome = `Welcome to simterm!
Type 'help' to see the list of available commands.
To start, sign up with: signup <username> <password>.`

// helpText lists cd even though no cd handler exists; cd resolves to
// command-not-found.
const helpText = `Available commands:
  help                          Display this help message
  clear                         Clear terminal history
  ls                            List files in the current directory
  cd [dir]                      Change directory
  pwd                           Show current directory
  echo [message]                Print message or variable
  theme [name]                  Change theme (dark, light)
  login [username] [password]   Log in to the system
  signup [username] [password]  Create a new account
  exit                          Exit the terminal`

const (
	msgGate          = "Please log in or sign up first. Type 'help' for instructions."
	msgInvalidLogin  = "Invalid credentials. Try again."
	msgDuplicateUser = "Username already exists. Please choose a different username."
	msgSignupFailed  = "Signup failed. Please try again."
	msgThemeMenu     = "Available themes: dark, light"
	msgExit          = "Exiting terminal... (just an example, terminal stays open!)"

	usageLogin  = "Usage: login <username> <password>"
	usageSignup = "Usage: signup <username> <password>"

	lsListing  = "File1.txt File2.js Folder1 Folder2"
	workingDir = "/home/user"
)

// Interpreter evaluates input lines against the session, the transcript,
// and the credential store. All three are explicit references, so handler
// behavior is a function of this context and the arguments — there is no
// ambient state. Handlers never fail: every path returns a display string,
// and rejections (bad arity, unknown theme, wrong password) are ordinary
// output rendered like any other.
type Interpreter struct {
	Session    *session.Session
	Transcript *session.Transcript
	Store      *credstore.Store
}

// New creates an Interpreter over the given state.
func New(sess *session.Session, transcript *session.Transcript, store *credstore.Store) *Interpreter {
	return &Interpreter{Session: sess, Transcript: transcript, Store: store}
}

// Eval interprets one input line, records it in the transcript, and
// returns its output. The caller must not pass a blank line.
//
// Before login only login, signup and help are reachable; everything else,
// unknown commands included, short-circuits to the gate advisory without
// dispatching.
func (in *Interpreter) Eval(line string) string {
	cmd := Parse(line)

	if !in.Session.LoggedIn() && !cmd.Kind.preAuth() {
		in.Transcript.Append(line, msgGate)
		return msgGate
	}

	// clear replaces the transcript wholesale; the clear line itself is
	// not recorded.
	if cmd.Kind == KindClear {
		in.Transcript.Clear()
		return ""
	}

	out := in.dispatch(cmd)
	in.Transcript.Append(line, out)
	return out
}

func (in *Interpreter) dispatch(cmd Command) string {
	switch cmd.Kind {
	case KindHelp:
		return helpText
	case KindLs:
		return lsListing
	case KindPwd:
		return workingDir
	case KindEcho:
		return strings.Join(cmd.Args, " ")
	case KindTheme:
		return in.runTheme(cmd.Args)
	case KindExit:
		return msgExit
	case KindSignup:
		return in.runSignup(cmd.Args)
	case KindLogin:
		return in.runLogin(cmd.Args)
	case KindClear:
		// Handled in Eval; unreachable.
		return ""
	default:
		return fmt.Sprintf("Command not found: %s. Type 'help' for a list of commands.", cmd.Name)
	}
}

// runTheme switches the session theme. Any unrecognized or missing name
// returns the menu of valid themes without mutating state.
func (in *Interpreter) runTheme(args []string) string {
	if len(args) == 1 {
		switch session.Theme(args[0]) {
		case session.ThemeLight:
			in.Session.Theme = session.ThemeLight
			return "Theme switched to light mode."
		case session.ThemeDark:
			in.Session.Theme = session.ThemeDark
			return "Theme switched to dark mode."
		}
	}
	return msgThemeMenu
}

func (in *Interpreter) runSignup(args []string) string {
	if len(args) != 2 {
		return usageSignup
	}

	username, password := args[0], args[1]
	if err := in.Store.CreateAccount(username, password); err != nil {
		if errors.Is(err, credstore.ErrUserExists) {
			return msgDuplicateUser
		}
		log.Printf("session %s: signup %s: %v", in.Session.ID, username, err)
		return msgSignupFailed
	}

	return fmt.Sprintf("Signup successful! You can now log in using login %s <password>.", username)
}

func (in *Interpreter) runLogin(args []string) string {
	if len(args) != 2 {
		return usageLogin
	}

	username, password := args[0], args[1]
	if !in.Store.Verify(username, password) {
		return msgInvalidLogin
	}

	in.Session.User = username
	return fmt.Sprintf("Login successful! Welcome, %s.", username)
}
