package core

import "errors"

// ErrNoHistory is returned by Recall before any command has been recorded.
var ErrNoHistory = errors.New("no commands in history")

// History remembers the single most recently submitted command line. Recall
// requests reuse the stored line without replacing it, so repeated recalls
// keep returning the same command.
type History struct {
	line      string
	populated bool
}

// Record stores line as the new history value.
func (h *History) Record(line string) {
	h.line = line
	h.populated = true
}

// Recall returns the stored line, or ErrNoHistory if nothing has been
// recorded yet. It never modifies the store.
func (h *History) Recall() (string, error) {
	if !h.populated {
		return "", ErrNoHistory
	}
	return h.line, nil
}

// Clear empties the store, as if the shell had just started.
func (h *History) Clear() {
	h.line = ""
	h.populated = false
}
