package agent

import (
	"fmt"
	"strings"
)

// History is the append-only conversation transcript. It is owned by the
// Orchestrator, which appends exactly two entries per completed turn (the
// user utterance, then the agent summary); it is never rewritten or pruned.
type History struct {
	entries []Entry
}

type Entry struct {
	Role string // "User" or "Agent"
	Text string
}

func NewHistory() *History { return &History{} }

func (h *History) AddUser(text string)  { h.entries = append(h.entries, Entry{Role: "User", Text: text}) }
func (h *History) AddAgent(text string) { h.entries = append(h.entries, Entry{Role: "Agent", Text: text}) }

func (h *History) Len() int { return len(h.entries) }

func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Render produces the transcript text fed into prompts as context.
func (h *History) Render() string {
	lines := make([]string, 0, len(h.entries))
	for _, e := range h.entries {
		lines = append(lines, fmt.Sprintf("%s: %s", e.Role, e.Text))
	}
	return strings.Join(lines, "\n")
}
