package agent

import (
	"context"
	"log"
	"strings"

	"github.com/mohammad-safakhou/concierge/internal/telemetry"
	"github.com/mohammad-safakhou/concierge/provider"
)

// QueryPlanner turns the goal plus conversation history into a short search
// query. The generator is trusted on length; only quoting is cleaned up.
type QueryPlanner struct {
	llm       provider.Provider
	logger    *log.Logger
	telemetry *telemetry.Telemetry
}

func NewQueryPlanner(llm provider.Provider, logger *log.Logger, tele *telemetry.Telemetry) *QueryPlanner {
	return &QueryPlanner{llm: llm, logger: logger, telemetry: tele}
}

func (p *QueryPlanner) Plan(ctx context.Context, goal, history string) string {
	out, err := p.llm.Generate(ctx, planQueryPrompt(goal, history), false)
	p.telemetry.RecordLLM("plan_query", err)
	if err != nil {
		p.logger.Printf("query planning failed, searching with the raw goal: %v", err)
		return strings.TrimSpace(goal)
	}
	query := strings.ReplaceAll(strings.TrimSpace(out), `"`, "")
	if query == "" {
		return strings.TrimSpace(goal)
	}
	return query
}
