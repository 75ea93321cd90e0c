package agent

import (
	"context"
	"log"
	"strings"

	"github.com/mohammad-safakhou/concierge/internal/helpers"
	"github.com/mohammad-safakhou/concierge/internal/telemetry"
	"github.com/mohammad-safakhou/concierge/provider"
)

// URLSelector picks the pages worth reading out of formatted search
// results. An empty selection is a valid outcome and routes the turn onto
// the snippet-only fallback path.
type URLSelector struct {
	llm       provider.Provider
	logger    *log.Logger
	telemetry *telemetry.Telemetry
}

func NewURLSelector(llm provider.Provider, logger *log.Logger, tele *telemetry.Telemetry) *URLSelector {
	return &URLSelector{llm: llm, logger: logger, telemetry: tele}
}

// Select returns the generator's chosen URLs, one per line, keeping only
// lines that are absolute http(s) URLs after trimming.
func (s *URLSelector) Select(ctx context.Context, goal, searchResults string) []string {
	out, err := s.llm.Generate(ctx, selectURLsPrompt(goal, searchResults), false)
	s.telemetry.RecordLLM("select_urls", err)
	if err != nil {
		s.logger.Printf("URL selection failed, falling back to snippets: %v", err)
		return nil
	}

	var urls []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "http") {
			continue
		}
		if !helpers.IsAbsoluteHTTP(line) {
			continue
		}
		urls = append(urls, line)
	}
	return urls
}
