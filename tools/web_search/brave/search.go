package brave

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mohammad-safakhou/concierge/tools/web_search/models"
	"github.com/mohammad-safakhou/concierge/utils"
)

type Search struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

func New(apiKey string, timeout time.Duration) Search {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return Search{
		apiKey:     apiKey,
		endpoint:   "https://api.search.brave.com/res/v1/web/search",
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (s Search) Search(ctx context.Context, q string, k int) ([]models.Result, error) {
	// https://api.search.brave.com/app/documentation/web-search
	url := fmt.Sprintf("%s?q=%s&count=%d", s.endpoint, utils.UrlQuery(q), k)
	req, _ := http.NewRequestWithContext(ctx, "GET", url, nil)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", s.apiKey)
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("brave returned status: %d", resp.StatusCode)
	}
	var raw struct {
		Web struct {
			Results []struct {
				Title   string `json:"title"`
				URL     string `json:"url"`
				Snippet string `json:"description"`
			} `json:"results"`
		} `json:"web"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}
	var out []models.Result
	for i, r := range raw.Web.Results {
		if i >= k {
			break
		}
		out = append(out, models.Result{Title: r.Title, Link: r.URL, Snippet: r.Snippet})
	}
	return out, nil
}
