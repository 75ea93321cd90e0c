package agent

import (
	"context"
	"testing"
)

func TestResearch_SkipsFailedFetches(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]string{
		"https://a.example/1": "menu and hours",
		"https://a.example/2": "Error browsing website https://a.example/2: blocked",
		"https://a.example/3": "reviews",
	}}
	r := NewResearcher(fetcher, nil, testLogger(), testTelemetry())

	docs := r.Research(context.Background(), []string{"https://a.example/1", "https://a.example/2", "https://a.example/3"})
	if len(docs) != 2 {
		t.Fatalf("got %d docs, want 2", len(docs))
	}
	if docs[0].SourceURL != "https://a.example/1" || docs[1].SourceURL != "https://a.example/3" {
		t.Fatalf("docs out of order: %+v", docs)
	}
}

func TestResearch_AllFailedYieldsEmpty(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]string{}}
	r := NewResearcher(fetcher, nil, testLogger(), testTelemetry())

	docs := r.Research(context.Background(), []string{"https://a.example/1", "https://a.example/2"})
	if len(docs) != 0 {
		t.Fatalf("got %d docs, want 0", len(docs))
	}
	if len(fetcher.fetched) != 2 {
		t.Fatalf("fetched %d URLs, want 2 (every URL is attempted)", len(fetcher.fetched))
	}
}
