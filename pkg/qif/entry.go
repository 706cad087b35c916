package qif

import "strings"

// Entry is one QIF record: an ordered sequence of single-letter field lines
// terminated by "^". Entries are write-only; they are never parsed back.
type Entry struct {
	lines []string
}

// add appends one field line, e.g. add("D", "2025-07-15") -> "D2025-07-15".
func (e *Entry) add(code, value string) {
	e.lines = append(e.lines, code+value)
}

// Lines returns the field lines of the entry, without the terminator.
func (e *Entry) Lines() []string {
	return e.lines
}

// String renders the entry including the "^" record terminator.
func (e *Entry) String() string {
	return strings.Join(e.lines, "\n") + "\n^"
}
