package agent

import (
	"context"
	"strings"

	"github.com/mohammad-safakhou/concierge/internal/telemetry"
	"github.com/mohammad-safakhou/concierge/provider"
)

// EmailAddressExtractor detects an explicit recipient address inside the
// goal text. The sentinel "none" stands for "no address found" and drives
// the recipient-confirmation flow at the end of the turn.
type EmailAddressExtractor struct {
	llm       provider.Provider
	telemetry *telemetry.Telemetry
}

func NewEmailAddressExtractor(llm provider.Provider, tele *telemetry.Telemetry) *EmailAddressExtractor {
	return &EmailAddressExtractor{llm: llm, telemetry: tele}
}

// Extract returns the address found in the goal, or "none". Whatever the
// generator says, an answer without "@" is forced to the sentinel.
func (e *EmailAddressExtractor) Extract(ctx context.Context, goal string) string {
	answer, err := classify(ctx, e.llm, extractEmailPrompt(goal))
	e.telemetry.RecordLLM("extract_email", err)
	if err != nil || !strings.Contains(answer, "@") {
		return noRecipient
	}
	return answer
}
