package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Telemetry tracks turn, generation, fetch and email activity. One instance
// is shared by the orchestrator and the HTTP surface; /metrics exposes it
// when the server runs, and the counters are harmless in CLI mode.
type Telemetry struct {
	turnsTotal    *prometheus.CounterVec
	turnDuration  prometheus.Histogram
	llmRequests   *prometheus.CounterVec
	searchQueries prometheus.Counter
	pageFetches   *prometheus.CounterVec
	emailsSent    prometheus.Counter
}

// Turn outcome labels.
const (
	OutcomeOK        = "ok"
	OutcomeFallback  = "snippet_fallback"
	OutcomeExhausted = "research_exhausted"
	OutcomeError     = "error"
)

func New(reg prometheus.Registerer) *Telemetry {
	t := &Telemetry{
		turnsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "concierge_turns_total",
			Help: "Completed turns by exit path.",
		}, []string{"outcome"}),
		turnDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "concierge_turn_duration_seconds",
			Help:    "Wall time of a full turn.",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
		}),
		llmRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "concierge_llm_requests_total",
			Help: "Generation calls by stage and status.",
		}, []string{"stage", "status"}),
		searchQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "concierge_search_queries_total",
			Help: "Web search calls.",
		}),
		pageFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "concierge_page_fetches_total",
			Help: "Page fetches by status.",
		}, []string{"status"}),
		emailsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "concierge_emails_sent_total",
			Help: "Emails delivered after user confirmation.",
		}),
	}
	if reg != nil {
		reg.MustRegister(t.turnsTotal, t.turnDuration, t.llmRequests, t.searchQueries, t.pageFetches, t.emailsSent)
	}
	return t
}

func (t *Telemetry) RecordTurn(outcome string, d time.Duration) {
	t.turnsTotal.WithLabelValues(outcome).Inc()
	t.turnDuration.Observe(d.Seconds())
}

func (t *Telemetry) RecordLLM(stage string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	t.llmRequests.WithLabelValues(stage, status).Inc()
}

func (t *Telemetry) RecordSearch() { t.searchQueries.Inc() }

func (t *Telemetry) RecordFetch(failed bool) {
	status := "ok"
	if failed {
		status = "error"
	}
	t.pageFetches.WithLabelValues(status).Inc()
}

func (t *Telemetry) RecordEmailSent() { t.emailsSent.Inc() }
