package web_search

import (
	"context"
	"time"

	"github.com/mohammad-safakhou/concierge/tools/web_search/brave"
	"github.com/mohammad-safakhou/concierge/tools/web_search/models"
	"github.com/mohammad-safakhou/concierge/tools/web_search/serper"
)

// WebSearcher runs one query and returns up to k ranked results. An empty
// result list is a valid response, not an error.
type WebSearcher interface {
	Search(ctx context.Context, q string, k int) ([]models.Result, error)
}

type Provider string

const (
	SerperProvider Provider = "serper"
	BraveProvider  Provider = "brave"
)

var ErrUnsupportedProvider = &Error{"unsupported provider"}

type Error struct{ msg string }

func (e *Error) Error() string { return e.msg }

func NewWebSearcher(provider Provider, apiKey string, timeout time.Duration) (WebSearcher, error) {
	switch provider {
	case SerperProvider:
		return serper.New(apiKey, timeout), nil
	case BraveProvider:
		return brave.New(apiKey, timeout), nil
	default:
		return nil, ErrUnsupportedProvider
	}
}
