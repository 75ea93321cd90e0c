package httpfetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
	"github.com/microcosm-cc/bluemonday"

	"github.com/mohammad-safakhou/concierge/tools/web_fetch/models"
	"github.com/mohammad-safakhou/concierge/utils"
)

// Fetch retrieves pages over plain HTTP with conventional browser headers,
// extracts readable text and strips scripts/styles.
type Fetch struct {
	Timeout  time.Duration
	MaxChars int
}

var browserHeaders = map[string]string{
	"User-Agent":                "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/108.0.0.0 Safari/537.36",
	"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8",
	"Accept-Language":           "en-US,en;q=0.9",
	"Referer":                   "https://www.google.com/",
	"Connection":                "keep-alive",
	"Upgrade-Insecure-Requests": "1",
	"DNT":                       "1",
}

func (f Fetch) Exec(ctx context.Context, rawURL string) (models.Result, error) {
	if strings.TrimSpace(rawURL) == "" {
		return models.Result{}, errors.New("invalid url")
	}

	ctx, cancel := context.WithTimeout(ctx, f.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return failure(rawURL, 0, err), nil
	}
	for k, v := range browserHeaders {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return failure(rawURL, 0, err), nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return failure(rawURL, resp.StatusCode, fmt.Errorf("status %d", resp.StatusCode)), nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return failure(rawURL, resp.StatusCode, err), nil
	}

	title, text := extractText(string(body), rawURL)
	text = utils.Truncate(text, f.MaxChars)
	if strings.TrimSpace(text) == "" {
		return models.Result{
			URL:    rawURL,
			Status: resp.StatusCode,
			Text:   fmt.Sprintf("Error: No text content found at %s", rawURL),
		}, nil
	}

	return models.Result{
		URL:    rawURL,
		Title:  title,
		Text:   text,
		Status: resp.StatusCode,
	}, nil
}

// extractText prefers readability's article extraction and falls back to a
// strict tag strip when the page has no article structure.
func extractText(html, rawURL string) (title, text string) {
	if article, err := readability.FromReader(strings.NewReader(html), mustParseURL(rawURL)); err == nil {
		title = strings.TrimSpace(article.Title)
		text = utils.CollapseWhitespace(article.TextContent)
		if text != "" {
			return title, text
		}
	}
	stripped := bluemonday.StrictPolicy().Sanitize(html)
	return title, utils.CollapseWhitespace(stripped)
}

func failure(rawURL string, status int, err error) models.Result {
	return models.Result{
		URL:    rawURL,
		Status: status,
		Text:   fmt.Sprintf("Error browsing website %s: %v", rawURL, err),
	}
}

func mustParseURL(raw string) *url.URL {
	u, err := url.Parse(raw)
	if err != nil {
		return &url.URL{}
	}
	return u
}
