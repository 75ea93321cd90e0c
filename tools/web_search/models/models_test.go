package models

import (
	"strings"
	"testing"
)

func TestFormatResults(t *testing.T) {
	got := FormatResults([]Result{
		{Title: "Guide", Link: "https://a.example/guide", Snippet: "best sushi"},
		{Title: "List", Link: "https://b.example/list", Snippet: "top 10"},
	})
	if !strings.HasPrefix(got, "Search Results:\n") {
		t.Fatalf("missing header: %q", got)
	}
	for _, want := range []string{
		"- Title: Guide\n",
		"  Link: https://a.example/guide\n",
		"  Snippet: best sushi\n",
		"- Title: List\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %q", want, got)
		}
	}
}

func TestFormatResultsEmpty(t *testing.T) {
	for _, results := range [][]Result{nil, {}} {
		if got := FormatResults(results); got != "No good search results found." {
			t.Fatalf("got %q", got)
		}
	}
}
