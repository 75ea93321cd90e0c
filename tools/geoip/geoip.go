package geoip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Locator resolves the caller's approximate location from network origin.
type Locator interface {
	Locate(ctx context.Context) (string, error)
}

// IPAPI queries ip-api.com, which geolocates the requesting IP.
type IPAPI struct {
	Endpoint   string
	httpClient *http.Client
}

func NewIPAPI(endpoint string, timeout time.Duration) *IPAPI {
	if endpoint == "" {
		endpoint = "http://ip-api.com/json/"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &IPAPI{Endpoint: endpoint, httpClient: &http.Client{Timeout: timeout}}
}

// Locate returns "City, Country" for the caller's public IP.
func (l *IPAPI) Locate(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", l.Endpoint, nil)
	if err != nil {
		return "", err
	}
	resp, err := l.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geolocation returned status: %d", resp.StatusCode)
	}

	var raw struct {
		City    string `json:"city"`
		Country string `json:"country"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return "", err
	}
	if raw.City == "" || raw.Country == "" {
		return "", errors.New("could not determine location")
	}
	return fmt.Sprintf("%s, %s", raw.City, raw.Country), nil
}
