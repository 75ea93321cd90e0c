package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mohammad-safakhou/concierge/internal/telemetry"
)

func TestExtract_NoAtSignForcesSentinel(t *testing.T) {
	cases := []struct {
		name     string
		response string
		want     string
	}{
		{"address returned", "a@b.com", "a@b.com"},
		{"address with whitespace", "  a@b.com\n", "a@b.com"},
		{"explicit none", "none", "none"},
		{"prose without address", "I could not find an email address", "none"},
		{"empty response", "", "none"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			llm := &fakeLLM{responses: map[string]string{promptExtractEmail: tc.response}}
			e := NewEmailAddressExtractor(llm, testTelemetry())
			got := e.Extract(context.Background(), "find me sushi")
			if got != tc.want {
				t.Fatalf("Extract = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestExtract_TransportFailureYieldsSentinel(t *testing.T) {
	reg := prometheus.NewRegistry()
	llm := &fakeLLM{responses: map[string]string{promptExtractEmail: ""}, err: errors.New("timeout")}
	e := NewEmailAddressExtractor(llm, telemetry.New(reg))
	if got := e.Extract(context.Background(), "find me sushi and email me"); got != "none" {
		t.Fatalf("Extract = %q, want none", got)
	}
	if got := llmErrorCount(t, reg, "extract_email"); got != 1 {
		t.Fatalf("extract_email error count = %v, want 1", got)
	}
}
