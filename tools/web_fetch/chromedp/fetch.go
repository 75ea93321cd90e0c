package chromedp

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	readability "github.com/go-shiori/go-readability"

	"github.com/mohammad-safakhou/concierge/tools/web_fetch/models"
	"github.com/mohammad-safakhou/concierge/utils"
)

// Fetch renders pages in headless Chrome before extraction; useful for
// JS-heavy sites the plain HTTP fetcher cannot read.
type Fetch struct {
	Timeout  time.Duration
	MaxChars int
}

func (f Fetch) Exec(ctx context.Context, rawURL string) (models.Result, error) {
	if strings.TrimSpace(rawURL) == "" {
		return models.Result{}, errors.New("invalid url")
	}

	ctx, cancel := context.WithTimeout(ctx, f.Timeout)
	defer cancel()

	html, err := fetchHTML(ctx, rawURL)
	if err != nil {
		return models.Result{
			URL:    rawURL,
			Status: 599,
			Text:   fmt.Sprintf("Error browsing website %s: %v", rawURL, err),
		}, nil
	}

	article, err := readability.FromReader(strings.NewReader(html), mustParseURL(rawURL))
	if err != nil {
		return models.Result{
			URL:    rawURL,
			Status: 200,
			Text:   fmt.Sprintf("Error: No text content found at %s", rawURL),
		}, nil
	}
	text := utils.Truncate(utils.CollapseWhitespace(article.TextContent), f.MaxChars)
	if strings.TrimSpace(text) == "" {
		return models.Result{
			URL:    rawURL,
			Status: 200,
			Text:   fmt.Sprintf("Error: No text content found at %s", rawURL),
		}, nil
	}

	return models.Result{
		URL:    rawURL,
		Title:  strings.TrimSpace(article.Title),
		Text:   text,
		Status: 200,
	}, nil
}

func fetchHTML(ctx context.Context, rawURL string) (string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.UserAgent("Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/108.0.0.0 Safari/537.36"),
	)
	actx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()
	bctx, cancelBrowser := chromedp.NewContext(actx)
	defer cancelBrowser()

	var html string
	err := chromedp.Run(bctx,
		chromedp.Navigate(rawURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	return html, err
}

func mustParseURL(raw string) *url.URL {
	u, err := url.Parse(raw)
	if err != nil {
		return &url.URL{}
	}
	return u
}
