package agent

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/mohammad-safakhou/concierge/internal/telemetry"
	"github.com/mohammad-safakhou/concierge/provider"
)

// Synthesizer produces the user-facing summary. The fact-checking policy
// (only include items the sources explicitly confirm) lives in the prompt;
// the implementation conveys it and surfaces whatever the generator says.
type Synthesizer struct {
	llm       provider.Provider
	logger    *log.Logger
	telemetry *telemetry.Telemetry
}

func NewSynthesizer(llm provider.Provider, logger *log.Logger, tele *telemetry.Telemetry) *Synthesizer {
	return &Synthesizer{llm: llm, logger: logger, telemetry: tele}
}

// AggregateDocs joins fetched sources with a visible separator for the
// synthesis and email-drafting prompts.
func AggregateDocs(docs []ResearchDoc) string {
	parts := make([]string, 0, len(docs))
	for _, d := range docs {
		parts = append(parts, fmt.Sprintf("Content from %s:\n%s", d.SourceURL, d.Text))
	}
	return strings.Join(parts, "\n\n---\n\n")
}

// Synthesize summarizes the aggregated source text against the goal's
// criteria. A generation failure becomes an "Error"-prefixed summary rather
// than an aborted turn.
func (s *Synthesizer) Synthesize(ctx context.Context, goal string, docs []ResearchDoc) string {
	out, err := s.llm.Generate(ctx, synthesizePrompt(goal, AggregateDocs(docs)), false)
	s.telemetry.RecordLLM("synthesize", err)
	if err != nil {
		s.logger.Printf("synthesis failed: %v", err)
		return fmt.Sprintf("Error: %v", err)
	}
	return strings.TrimSpace(out)
}

// SummarizeSnippets is the degraded path when no URLs were selected: one
// generation call over the search-result snippets alone, no browsing.
func (s *Synthesizer) SummarizeSnippets(ctx context.Context, goal, searchResults string) string {
	out, err := s.llm.Generate(ctx, snippetSummaryPrompt(goal, searchResults), false)
	s.telemetry.RecordLLM("snippet_summary", err)
	if err != nil {
		s.logger.Printf("snippet summary failed: %v", err)
		return fmt.Sprintf("Error: %v", err)
	}
	return strings.TrimSpace(out)
}
