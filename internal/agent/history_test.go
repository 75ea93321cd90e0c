package agent

import "testing"

func TestHistory_AppendsAndRenders(t *testing.T) {
	h := NewHistory()
	h.AddUser("find sushi")
	h.AddAgent("* Shiro's Sushi")
	h.AddUser("what about ramen?")
	h.AddAgent("* Ramen Danbo")

	if h.Len() != 4 {
		t.Fatalf("Len = %d, want 4", h.Len())
	}
	want := "User: find sushi\nAgent: * Shiro's Sushi\nUser: what about ramen?\nAgent: * Ramen Danbo"
	if got := h.Render(); got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestHistory_EmptyRendersEmpty(t *testing.T) {
	if got := NewHistory().Render(); got != "" {
		t.Fatalf("Render = %q, want empty", got)
	}
}

func TestHistory_EntriesIsACopy(t *testing.T) {
	h := NewHistory()
	h.AddUser("hello")

	entries := h.Entries()
	entries[0].Text = "mutated"
	if h.Entries()[0].Text != "hello" {
		t.Fatal("Entries exposed internal state")
	}
}
