package agent

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/mohammad-safakhou/concierge/config"
	"github.com/mohammad-safakhou/concierge/internal/cache"
	"github.com/mohammad-safakhou/concierge/internal/console"
	"github.com/mohammad-safakhou/concierge/internal/telemetry"
	"github.com/mohammad-safakhou/concierge/provider"
	"github.com/mohammad-safakhou/concierge/tools/geoip"
	"github.com/mohammad-safakhou/concierge/tools/mailer"
	"github.com/mohammad-safakhou/concierge/tools/web_fetch"
	"github.com/mohammad-safakhou/concierge/tools/web_search"
	searchmodels "github.com/mohammad-safakhou/concierge/tools/web_search/models"
)

// Orchestrator sequences the pipeline stages for one turn, owns the
// conversation history, and performs the confirmation gate before any mail
// leaves the process. Execution within a turn is strictly sequential.
type Orchestrator struct {
	cfg       *config.Config
	logger    *log.Logger
	telemetry *telemetry.Telemetry

	extractor   *EmailAddressExtractor
	augmenter   *GoalAugmenter
	planner     *QueryPlanner
	selector    *URLSelector
	researcher  *Researcher
	synthesizer *Synthesizer
	drafter     *EmailDrafter

	searcher web_search.WebSearcher
	mail     mailer.Mailer
	prompter console.Prompter
	out      io.Writer

	history *History
}

// NewOrchestrator wires the pipeline from configuration. prompter decides
// how confirmation gates behave: interactive entrypoints pass a terminal
// prompter, non-interactive ones pass console.Nop so nothing is ever sent.
func NewOrchestrator(cfg *config.Config, logger *log.Logger, tele *telemetry.Telemetry, prompter console.Prompter, out io.Writer) (*Orchestrator, error) {
	llm, err := provider.NewProvider(cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM provider: %w", err)
	}

	apiKey := cfg.Search.SerperAPIKey
	if cfg.Search.Provider == "brave" {
		apiKey = cfg.Search.BraveAPIKey
	}
	searcher, err := web_search.NewWebSearcher(web_search.Provider(cfg.Search.Provider), apiKey, cfg.Search.Timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to create web searcher: %w", err)
	}

	fetcher, err := web_fetch.NewWebFetcher(web_fetch.FetcherType(cfg.Fetch.Fetcher), cfg.Fetch.Timeout, cfg.Fetch.MaxChars)
	if err != nil {
		return nil, fmt.Errorf("failed to create web fetcher: %w", err)
	}

	pageCache, err := cache.New(cfg.Cache)
	if err != nil {
		return nil, fmt.Errorf("failed to create page cache: %w", err)
	}

	locator := geoip.NewIPAPI(cfg.Location.Endpoint, cfg.Location.Timeout)

	o := &Orchestrator{
		cfg:         cfg,
		logger:      logger,
		telemetry:   tele,
		extractor:   NewEmailAddressExtractor(llm, tele),
		augmenter:   NewGoalAugmenter(llm, locator, logger, tele),
		planner:     NewQueryPlanner(llm, logger, tele),
		selector:    NewURLSelector(llm, logger, tele),
		researcher:  NewResearcher(fetcher, pageCache, logger, tele),
		synthesizer: NewSynthesizer(llm, logger, tele),
		drafter:     NewEmailDrafter(llm, logger, tele),
		searcher:    searcher,
		mail:        mailer.NewSMTPMailer(cfg.SMTP),
		prompter:    prompter,
		out:         out,
		history:     NewHistory(),
	}
	return o, nil
}

// History exposes the conversation transcript (read-only copy).
func (o *Orchestrator) History() []Entry { return o.history.Entries() }

// RunTurn executes one full cycle from user goal to agent summary. The
// summary is always appended to history as the agent's turn, including on
// the two degraded exits; no failure inside a turn crashes the session.
func (o *Orchestrator) RunTurn(ctx context.Context, goal string) (string, error) {
	start := time.Now()
	turnID := uuid.NewString()[:8]
	o.logger.Printf("[%s] goal: %s", turnID, goal)

	summary, outcome := o.runPipeline(ctx, turnID, goal)

	o.history.AddUser(goal)
	o.history.AddAgent(summary)
	o.telemetry.RecordTurn(outcome, time.Since(start))
	o.logger.Printf("[%s] turn finished (%s) in %s", turnID, outcome, time.Since(start).Round(time.Millisecond))
	return summary, ctx.Err()
}

func (o *Orchestrator) runPipeline(ctx context.Context, turnID, goal string) (summary, outcome string) {
	// Both of these may alter the effective goal/context and must precede
	// query planning.
	recipient := o.extractor.Extract(ctx, goal)
	goal = o.augmenter.Augment(ctx, goal)

	query := o.planner.Plan(ctx, goal, o.history.Render())
	o.logger.Printf("[%s] searching web for %q", turnID, query)

	o.telemetry.RecordSearch()
	results, err := o.searcher.Search(ctx, query, o.cfg.Search.MaxResults)
	if err != nil {
		// Absence of results is valid; the selector will route the turn
		// onto the snippet fallback, which degrades to "nothing found".
		o.logger.Printf("[%s] web search failed: %v", turnID, err)
		results = nil
	}
	formatted := searchmodels.FormatResults(results)

	urls := o.selector.Select(ctx, goal, formatted)
	if len(urls) == 0 {
		o.logger.Printf("[%s] no promising URLs, summarizing from snippets", turnID)
		return o.synthesizer.SummarizeSnippets(ctx, goal, formatted), telemetry.OutcomeFallback
	}

	docs := o.researcher.Research(ctx, urls)
	if len(docs) == 0 {
		o.logger.Printf("[%s] every selected URL failed to fetch", turnID)
		return researchFailureMessage, telemetry.OutcomeExhausted
	}

	summary = o.synthesizer.Synthesize(ctx, goal, docs)

	decision := o.drafter.Decide(ctx, goal, summary, AggregateDocs(docs))
	if decision.SendEmail {
		o.confirmAndSend(decision, recipient)
	}
	return summary, telemetry.OutcomeOK
}

// confirmAndSend resolves the recipient and delivers the drafted email.
// Sending is always an explicit human-confirmed action; any non-affirmative
// answer, or an empty entered address, suppresses the send.
func (o *Orchestrator) confirmAndSend(decision EmailDecision, extracted string) {
	fmt.Fprintf(o.out, "\n--- I have drafted the following email summary for you ---\n\n")
	fmt.Fprintf(o.out, "Subject: %s\n\nBody:\n%s\n\n", decision.Subject, decision.Body)
	fmt.Fprintf(o.out, "----------------------------------------------------------\n")

	recipient := noRecipient
	if extracted != noRecipient {
		if o.prompter.Confirm(fmt.Sprintf("Should I send this to the address you provided (%s)?", extracted)) {
			recipient = extracted
		}
	} else if o.prompter.Confirm("Would you like me to email this summary to you?") {
		recipient = o.prompter.ReadLine("Please enter your email address: ")
	}

	if recipient == "" || recipient == noRecipient {
		fmt.Fprintln(o.out, "Okay, I will not send the email.")
		return
	}

	if err := o.mail.Send(recipient, decision.Subject, decision.Body); err != nil {
		o.logger.Printf("email delivery failed: %v", err)
		fmt.Fprintf(o.out, "I could not send the email: %v\n", err)
		return
	}
	o.telemetry.RecordEmailSent()
	fmt.Fprintf(o.out, "Email sent successfully to %s.\n", recipient)
}
