package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// WatchlistEntry is the display state of one tracked symbol.
type WatchlistEntry struct {
	Symbol         string
	Quantity       int
	ReferenceValue decimal.Decimal

	// Samples is shared with the store and must be treated as read-only.
	Samples   []OHLCV
	Currency  string
	Refreshed bool

	// UpdatedAt is the time of the last write by the store. It is the only
	// field that differs after two refreshes fed identical data.
	UpdatedAt time.Time
}

// Available reports whether the entry holds price data.
func (e WatchlistEntry) Available() bool {
	return len(e.Samples) > 0
}

// LatestClose returns the close of the most recent sample.
func (e WatchlistEntry) LatestClose() (float64, bool) {
	if len(e.Samples) == 0 {
		return 0, false
	}
	return e.Samples[len(e.Samples)-1].Close, true
}

// ChartData is handed to a chart consumer when a symbol is selected.
type ChartData struct {
	Symbol   string
	Currency string
	Samples  []OHLCV
}
