package brave

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSearchParsesWebResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Subscription-Token"); got != "key" {
			t.Errorf("X-Subscription-Token = %q", got)
		}
		if got := r.URL.Query().Get("q"); got != "best sushi seattle" {
			t.Errorf("q = %q", got)
		}
		fmt.Fprint(w, `{"web":{"results":[
			{"title":"Guide","url":"https://a.example/guide","description":"best sushi"},
			{"title":"List","url":"https://b.example/list","description":"top 10"}
		]}}`)
	}))
	defer srv.Close()

	s := New("key", time.Second)
	s.endpoint = srv.URL
	got, err := s.Search(context.Background(), "best sushi seattle", 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2", len(got))
	}
	if got[1].Title != "List" || got[1].Link != "https://b.example/list" || got[1].Snippet != "top 10" {
		t.Fatalf("second result = %+v", got[1])
	}
}

func TestSearchTimesOut(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	s := New("key", 20*time.Millisecond)
	s.endpoint = srv.URL
	start := time.Now()
	if _, err := s.Search(context.Background(), "sushi", 2); err == nil {
		t.Fatal("expected timeout error")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("search took %s, timeout not applied", elapsed)
	}
}
