package session

// Entry is one command/output pair in the transcript. Command is the
// verbatim input line; an Entry with empty Output renders as a bare
// command line with no response block.
type Entry struct {
	Command string
	Output  string
}

// Transcript is the ordered, append-only log of entries shown to the
// user. The clear command replaces it wholesale.
type Transcript struct {
	entries []Entry
}

// Append adds an entry to the end of the transcript.
func (t *Transcript) Append(command, output string) {
	t.entries = append(t.entries, Entry{Command: command, Output: output})
}

// Clear empties the transcript.
func (t *Transcript) Clear() {
	t.entries = nil
}

// Entries returns the transcript in order.
func (t *Transcript) Entries() []Entry {
	return t.entries
}

// Len returns the number of entries.
func (t *Transcript) Len() int {
	return len(t.entries)
}
