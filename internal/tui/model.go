// Package tui renders the simulated terminal: a scrolling transcript and
// a single input line wired to the shell interpreter.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"simterm/internal/credstore"
	"simterm/internal/session"
	"simterm/internal/shell"
	"simterm/internal/style"
)

// Model is the bubbletea model for the terminal view. One input line is
// processed to completion per Enter press; there is no background work.
type Model struct {
	host   string
	sess   *session.Session
	trans  *session.Transcript
	interp *shell.Interpreter
	styles style.Styles

	viewport viewport.Model
	input    textinput.Model

	width  int
	height int
	ready  bool
}

// New creates the terminal model and seeds the transcript with the
// welcome banner.
func New(host string, sess *session.Session, store *credstore.Store) Model {
	trans := &session.Transcript{}
	trans.Append("", shell.Welcome)

	styles := style.NewStyles(style.For(sess.Theme))

	ti := textinput.New()
	ti.Prompt = ""
	ti.TextStyle = styles.Input
	ti.Focus()

	return Model{
		host:   host,
		sess:   sess,
		trans:  trans,
		interp: shell.New(sess, trans, store),
		styles: styles,
		input:  ti,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// One line of input below the transcript, inside the app
		// frame's padding.
		vpWidth := msg.Width - 4
		vpHeight := msg.Height - 3
		if vpWidth < 1 {
			vpWidth = 1
		}
		if vpHeight < 1 {
			vpHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(vpWidth, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = vpWidth
			m.viewport.Height = vpHeight
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD:
			return m, tea.Quit
		case tea.KeyEnter:
			m = m.submit(m.input.Value())
			return m, nil
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

		// Everything else edits the input line.
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// submit runs one input line through the interpreter. Blank lines produce
// no transcript entry.
func (m Model) submit(line string) Model {
	m.input.Reset()
	if strings.TrimSpace(line) == "" {
		return m
	}

	m.interp.Eval(line)

	// The theme command takes effect on the very next render.
	if m.styles.Theme.Name != m.sess.Theme {
		m.styles = style.NewStyles(style.For(m.sess.Theme))
		m.input.TextStyle = m.styles.Input
	}

	m.refresh()
	return m
}

// refresh re-renders the transcript into the viewport and pins the view
// to the bottom.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}
