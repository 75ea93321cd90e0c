package agent

import (
	"context"
	"fmt"
	"log"

	"github.com/mohammad-safakhou/concierge/internal/telemetry"
	"github.com/mohammad-safakhou/concierge/provider"
	"github.com/mohammad-safakhou/concierge/tools/geoip"
)

// GoalAugmenter rewrites a goal to inject an inferred location when the
// request needs one and does not already state one. Location resolution
// failures are soft: the goal passes through unchanged.
type GoalAugmenter struct {
	llm       provider.Provider
	locator   geoip.Locator
	logger    *log.Logger
	telemetry *telemetry.Telemetry
}

func NewGoalAugmenter(llm provider.Provider, locator geoip.Locator, logger *log.Logger, tele *telemetry.Telemetry) *GoalAugmenter {
	return &GoalAugmenter{llm: llm, locator: locator, logger: logger, telemetry: tele}
}

// Augment returns the effective goal for the turn. Two sequential
// classifications gate the rewrite: the "yes" token selects the
// needs-location branch, then the "no" token selects the missing-location
// branch; ambiguous answers leave the goal untouched.
func (g *GoalAugmenter) Augment(ctx context.Context, goal string) string {
	needed, err := classify(ctx, g.llm, locationNeededPrompt(goal))
	g.telemetry.RecordLLM("location_needed", err)
	if err != nil {
		g.logger.Printf("location classification failed, continuing without augmentation: %v", err)
		return goal
	}
	if !hasToken(needed, "yes") {
		return goal
	}

	present, err := classify(ctx, g.llm, hasLocationPrompt(goal))
	g.telemetry.RecordLLM("has_location", err)
	if err != nil {
		g.logger.Printf("location classification failed, continuing without augmentation: %v", err)
		return goal
	}
	if !hasToken(present, "no") {
		return goal
	}

	g.logger.Printf("goal needs a location and is missing one; resolving current location")
	location, err := g.locator.Locate(ctx)
	if err != nil {
		g.logger.Printf("location lookup failed, continuing without augmentation: %v", err)
		return goal
	}
	augmented := fmt.Sprintf("%s in %s", goal, location)
	g.logger.Printf("updated goal with location: %s", augmented)
	return augmented
}
