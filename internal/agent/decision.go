package agent

import (
	"context"
	"strings"

	"github.com/mohammad-safakhou/concierge/provider"
)

// hasToken reports whether a free-text classification answer contains the
// given token, case-insensitive. Generation backends are asked to answer
// "yes" or "no" but are not trusted to comply; each call site states which
// token selects its branch and everything else takes the default path.
func hasToken(answer, token string) bool {
	return strings.Contains(strings.ToLower(answer), token)
}

// classify runs one free-text classification call and returns the trimmed
// answer. The error is surfaced so call sites can record it; on failure
// they fall back to their default branch.
func classify(ctx context.Context, llm provider.Provider, prompt string) (string, error) {
	out, err := llm.Generate(ctx, prompt, false)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
