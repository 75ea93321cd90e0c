package web_fetch

import (
	"context"
	"time"

	"github.com/mohammad-safakhou/concierge/tools/web_fetch/chromedp"
	"github.com/mohammad-safakhou/concierge/tools/web_fetch/httpfetch"
	"github.com/mohammad-safakhou/concierge/tools/web_fetch/models"
)

const (
	DefaultTimeout  = 15 * time.Second
	MaxCharsDefault = 8000
)

// WebFetcher retrieves a URL and returns its extracted plain text, bounded
// in length. Failures come back inside the Result, "Error"-prefixed.
type WebFetcher interface {
	Exec(ctx context.Context, url string) (models.Result, error)
}

type FetcherType string

const (
	HTTPFetcherType     FetcherType = "http"
	ChromedpFetcherType FetcherType = "chromedp"
)

type Error struct{ msg string }

func (e *Error) Error() string { return e.msg }

func NewWebFetcher(fetcherType FetcherType, timeout time.Duration, maxChars int) (WebFetcher, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if maxChars <= 0 {
		maxChars = MaxCharsDefault
	}

	switch fetcherType {
	case HTTPFetcherType:
		return &httpfetch.Fetch{Timeout: timeout, MaxChars: maxChars}, nil
	case ChromedpFetcherType:
		return &chromedp.Fetch{Timeout: timeout, MaxChars: maxChars}, nil
	default:
		return nil, &Error{"unsupported fetcher type"}
	}
}
