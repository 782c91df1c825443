package collector

import (
	"context"
	"fmt"

	"SymbolWatch/internal/model"
)

// Fetcher defines the interface for fetching market data.
//
// FetchSeries returns the samples of symbol over period at the given sample
// interval (for example "1d" and "1m"). A series without samples is a valid
// result; an error means the provider could not be reached or refused the request.
type Fetcher interface {
	FetchSeries(ctx context.Context, symbol, period, interval string) (*model.PriceSeries, error)
	Name() string
}

// NewFetcher returns the fetcher for a configured data source provider.
func NewFetcher(provider, baseURL, apiKey, proxyURL string) (Fetcher, error) {
	switch provider {
	case "", "yahoo":
		return NewYahooFetcher(proxyURL), nil
	case "rest":
		if baseURL == "" {
			return nil, fmt.Errorf("provider %q requires a base url", provider)
		}
		return NewRestFetcher(baseURL, apiKey, proxyURL), nil
	case "mock":
		return &MockFetcher{}, nil
	default:
		return nil, fmt.Errorf("unknown provider %q", provider)
	}
}
