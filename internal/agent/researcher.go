package agent

import (
	"context"
	"log"

	"github.com/mohammad-safakhou/concierge/internal/cache"
	"github.com/mohammad-safakhou/concierge/internal/telemetry"
	"github.com/mohammad-safakhou/concierge/tools/web_fetch"
)

// Researcher fetches the selected pages in order and aggregates their text,
// tolerating partial failure. Sources are fetched one at a time; a failed
// fetch skips that source, never the turn.
type Researcher struct {
	fetcher   web_fetch.WebFetcher
	cache     cache.PageCache
	logger    *log.Logger
	telemetry *telemetry.Telemetry
}

func NewResearcher(fetcher web_fetch.WebFetcher, pageCache cache.PageCache, logger *log.Logger, tele *telemetry.Telemetry) *Researcher {
	if pageCache == nil {
		pageCache = cache.Noop{}
	}
	return &Researcher{fetcher: fetcher, cache: pageCache, logger: logger, telemetry: tele}
}

// Research returns one doc per URL whose fetch produced usable text, in the
// input order. An empty result with non-empty input means every source
// failed; the orchestrator treats that as the turn's terminal failure.
func (r *Researcher) Research(ctx context.Context, urls []string) []ResearchDoc {
	var docs []ResearchDoc
	for _, url := range urls {
		if text, ok := r.cache.Get(ctx, url); ok {
			r.logger.Printf("cache hit for %s", url)
			docs = append(docs, ResearchDoc{SourceURL: url, Text: text})
			continue
		}

		result, err := r.fetcher.Exec(ctx, url)
		if err != nil || result.Failed() {
			r.telemetry.RecordFetch(true)
			if err != nil {
				r.logger.Printf("skipping %s: %v", url, err)
			} else {
				r.logger.Printf("skipping %s: %s", url, result.Text)
			}
			continue
		}
		r.telemetry.RecordFetch(false)
		r.cache.Set(ctx, url, result.Text)
		docs = append(docs, ResearchDoc{SourceURL: url, Text: result.Text})
	}
	return docs
}
