// Package shell interprets simterm input lines against session and
// credential state.
package shell

import "strings"

// Kind enumerates the closed set of commands the terminal understands.
type Kind int

const (
	// KindUnknown is any first token that matches no command.
	KindUnknown Kind = iota
	KindHelp
	KindLs
	KindPwd
	KindEcho
	KindTheme
	KindClear
	KindExit
	KindSignup
	KindLogin
)

// Command is a parsed input line: the resolved kind, the verbatim first
// token, and the remaining tokens.
type Command struct {
	Kind Kind
	Name string
	Args []string
}

// Parse splits a line on whitespace and resolves the first token against
// the known command set. Matching is case-sensitive and exact; no aliases,
// no abbreviations. Arguments pass through verbatim with no quoting
// support, so an argument containing a space cannot be expressed.
func Parse(line string) Command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		// Callers reject blank lines before parsing; guard anyway.
		return Command{}
	}

	cmd := Command{Name: fields[0], Args: fields[1:]}

	switch cmd.Name {
	case "help":
		cmd.Kind = KindHelp
	case "ls":
		cmd.Kind = KindLs
	case "pwd":
		cmd.Kind = KindPwd
	case "echo":
		cmd.Kind = KindEcho
	case "theme":
		cmd.Kind = KindTheme
	case "clear":
		cmd.Kind = KindClear
	case "exit":
		cmd.Kind = KindExit
	case "signup":
		cmd.Kind = KindSignup
	case "login":
		cmd.Kind = KindLogin
	}
	return cmd
}

// preAuth reports whether the command is reachable before login.
func (k Kind) preAuth() bool {
	return k == KindLogin || k == KindSignup || k == KindHelp
}
