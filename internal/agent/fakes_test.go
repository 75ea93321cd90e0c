package agent

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mohammad-safakhou/concierge/internal/telemetry"
	"github.com/mohammad-safakhou/concierge/tools/web_fetch/models"
	searchmodels "github.com/mohammad-safakhou/concierge/tools/web_search/models"
)

// Prompt fingerprints used to route fake generation responses per stage.
const (
	promptExtractEmail   = "finding email addresses"
	promptLocationNeeded = "location-aware assistant"
	promptHasLocation    = "already contain a location"
	promptPlanQuery      = "effective search query"
	promptSelectURLs     = "smart web navigator"
	promptSnippetSummary = "The web browser is not working"
	promptSynthesize     = "meticulous and trustworthy"
	promptDraftEmail     = "drafting clear and detailed emails"
)

// fakeLLM answers each stage from a canned script and records which stages
// were exercised.
type fakeLLM struct {
	responses map[string]string // prompt fingerprint -> response
	err       error
	calls     []string
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, jsonOutput bool) (string, error) {
	for key, resp := range f.responses {
		if strings.Contains(prompt, key) {
			f.calls = append(f.calls, key)
			return resp, f.err
		}
	}
	f.calls = append(f.calls, "unmatched")
	if f.err != nil {
		return "", f.err
	}
	return "", nil
}

func (f *fakeLLM) called(key string) bool {
	for _, c := range f.calls {
		if c == key {
			return true
		}
	}
	return false
}

type fakeSearcher struct {
	results []searchmodels.Result
	err     error
	queries []string
}

func (f *fakeSearcher) Search(ctx context.Context, q string, k int) ([]searchmodels.Result, error) {
	f.queries = append(f.queries, q)
	return f.results, f.err
}

// fakeFetcher maps URLs to page text; "Error"-prefixed text models a failed
// fetch, exactly as the fetcher contract carries failures.
type fakeFetcher struct {
	pages   map[string]string
	fetched []string
}

func (f *fakeFetcher) Exec(ctx context.Context, url string) (models.Result, error) {
	f.fetched = append(f.fetched, url)
	text, ok := f.pages[url]
	if !ok {
		text = fmt.Sprintf("Error browsing website %s: no such page", url)
	}
	return models.Result{URL: url, Text: text, Status: 200}, nil
}

type fakeLocator struct {
	location string
	err      error
	calls    int
}

func (f *fakeLocator) Locate(ctx context.Context) (string, error) {
	f.calls++
	return f.location, f.err
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

type sentMail struct{ to, subject, body string }

func (f *fakeMailer) Send(to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to, subject, body})
	return nil
}

// scriptedPrompter answers confirmations and text prompts from queues.
type scriptedPrompter struct {
	confirms  []bool
	texts     []string
	questions []string
}

func (p *scriptedPrompter) Confirm(prompt string) bool {
	p.questions = append(p.questions, prompt)
	if len(p.confirms) == 0 {
		return false
	}
	answer := p.confirms[0]
	p.confirms = p.confirms[1:]
	return answer
}

func (p *scriptedPrompter) ReadLine(prompt string) string {
	p.questions = append(p.questions, prompt)
	if len(p.texts) == 0 {
		return ""
	}
	answer := p.texts[0]
	p.texts = p.texts[1:]
	return answer
}

func testLogger() *log.Logger { return log.New(io.Discard, "", 0) }

func testTelemetry() *telemetry.Telemetry { return telemetry.New(nil) }

// llmErrorCount reads the error counter for one generation stage out of a
// test-local registry.
func llmErrorCount(t *testing.T, reg *prometheus.Registry, stage string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatal(err)
	}
	for _, mf := range families {
		if mf.GetName() != "concierge_llm_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["stage"] == stage && labels["status"] == "error" {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}
