package models

import (
	"fmt"
	"strings"
)

// Result is one ranked search hit. Link is the identifying key within a turn.
type Result struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// FormatResults renders results the way they are shown to the generation
// backend for URL selection and the snippet-only fallback.
func FormatResults(results []Result) string {
	if len(results) == 0 {
		return "No good search results found."
	}
	var b strings.Builder
	b.WriteString("Search Results:\n")
	for _, r := range results {
		b.WriteString(fmt.Sprintf("- Title: %s\n", r.Title))
		b.WriteString(fmt.Sprintf("  Link: %s\n", r.Link))
		b.WriteString(fmt.Sprintf("  Snippet: %s\n\n", r.Snippet))
	}
	return b.String()
}
