package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"SymbolWatch/internal/model"
)

// RestFetcher implements Fetcher against a generic bar REST API.
type RestFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewRestFetcher creates a new fetcher with optional proxy support.
func NewRestFetcher(baseURL, apiKey, proxyURL string) *RestFetcher {
	return &RestFetcher{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		Client:  newHTTPClient(proxyURL),
	}
}

func (f *RestFetcher) Name() string { return "rest" }

// restBar is the expected JSON shape of one bar.
type restBar struct {
	Timestamp int64   `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    float64 `json:"volume"`
}

type restSeries struct {
	Currency string    `json:"currency"`
	Bars     []restBar `json:"bars"`
}

func (f *RestFetcher) FetchSeries(ctx context.Context, symbol, period, interval string) (*model.PriceSeries, error) {
	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("period", period)
	q.Set("interval", interval)
	endpoint := f.BaseURL + "/api/v1/bars?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch bars: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNoContent {
		return &model.PriceSeries{Symbol: symbol, FetchedAt: time.Now()}, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch bars: status %d, body: %s", resp.StatusCode, string(body))
	}

	var rs restSeries
	if err := json.NewDecoder(resp.Body).Decode(&rs); err != nil {
		return nil, fmt.Errorf("decode bars: %w", err)
	}
	bars := make([]model.OHLCV, len(rs.Bars))
	for i, rb := range rs.Bars {
		bars[i] = model.OHLCV{
			Time:   time.Unix(rb.Timestamp, 0),
			Open:   rb.Open,
			High:   rb.High,
			Low:    rb.Low,
			Close:  rb.Close,
			Volume: rb.Volume,
		}
	}
	// Ensure chronological order
	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return &model.PriceSeries{
		Symbol:    symbol,
		Currency:  rs.Currency,
		Samples:   bars,
		FetchedAt: time.Now(),
	}, nil
}
