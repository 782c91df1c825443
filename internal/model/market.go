package model

import "time"

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries is the result of one fetch for one symbol.
// An empty Samples slice is a valid result meaning the provider had no data.
type PriceSeries struct {
	Symbol    string
	Currency  string
	Samples   []OHLCV
	FetchedAt time.Time
}

// Empty reports whether the series carries no samples.
func (s *PriceSeries) Empty() bool {
	return s == nil || len(s.Samples) == 0
}
