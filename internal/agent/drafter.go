package agent

import (
	"context"
	"encoding/json"
	"log"

	"github.com/mohammad-safakhou/concierge/internal/helpers"
	"github.com/mohammad-safakhou/concierge/internal/telemetry"
	"github.com/mohammad-safakhou/concierge/provider"
)

// EmailDrafter decides whether the summary warrants an email and drafts the
// subject and body. Anything that fails to parse, or parses but violates
// the subject/body invariant, collapses to the safe default: no email.
type EmailDrafter struct {
	llm       provider.Provider
	logger    *log.Logger
	telemetry *telemetry.Telemetry
}

func NewEmailDrafter(llm provider.Provider, logger *log.Logger, tele *telemetry.Telemetry) *EmailDrafter {
	return &EmailDrafter{llm: llm, logger: logger, telemetry: tele}
}

func (d *EmailDrafter) Decide(ctx context.Context, goal, summary, aggregated string) EmailDecision {
	out, err := d.llm.Generate(ctx, draftEmailPrompt(goal, summary, aggregated), true)
	d.telemetry.RecordLLM("draft_email", err)
	if err != nil {
		d.logger.Printf("email drafting failed, not sending: %v", err)
		return EmailDecision{}
	}

	raw, err := helpers.ExtractJSON(out)
	if err != nil {
		d.logger.Printf("email decision is not JSON, not sending: %v", err)
		return EmailDecision{}
	}
	var decision EmailDecision
	if err := json.Unmarshal([]byte(raw), &decision); err != nil {
		d.logger.Printf("email decision failed to parse, not sending: %v", err)
		return EmailDecision{}
	}
	if !decision.Valid() {
		d.logger.Printf("email decision missing subject or body, not sending")
		return EmailDecision{}
	}
	return decision
}
