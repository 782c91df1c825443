package collector

import (
	"context"
	"hash/fnv"
	"sync"
	"time"

	"SymbolWatch/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
// Symbols with neither canned series nor error get a generated session.
type MockFetcher struct {
	Series map[string]*model.PriceSeries
	Errors map[string]error
	// Delay is applied to every fetch, honoring ctx.
	Delay time.Duration

	mu    sync.Mutex
	calls []string
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchSeries(ctx context.Context, symbol, _, _ string) (*model.PriceSeries, error) {
	m.mu.Lock()
	m.calls = append(m.calls, symbol)
	m.mu.Unlock()

	if m.Delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(m.Delay):
		}
	}
	if err, ok := m.Errors[symbol]; ok {
		return nil, err
	}
	if s, ok := m.Series[symbol]; ok {
		out := *s
		out.Symbol = symbol
		out.Samples = append([]model.OHLCV(nil), s.Samples...)
		return &out, nil
	}
	return &model.PriceSeries{
		Symbol:    symbol,
		Currency:  "USD",
		Samples:   generateMockBars(symbol, 390),
		FetchedAt: time.Now(),
	}, nil
}

// Calls returns the symbols fetched so far, in call order.
func (m *MockFetcher) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// generateMockBars builds one trading session of minute bars. The base price
// is derived from the symbol so repeated runs show the same figures.
func generateMockBars(symbol string, count int) []model.OHLCV {
	h := fnv.New32a()
	h.Write([]byte(symbol))
	basePrice := 50 + float64(h.Sum32()%450)

	now := time.Now().Truncate(time.Minute)
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.0001)
		bars[i] = model.OHLCV{
			Time:   now.Add(-time.Duration(count-i) * time.Minute),
			Open:   p * 0.999,
			High:   p * 1.001,
			Low:    p * 0.998,
			Close:  p,
			Volume: 1000,
		}
	}
	return bars
}
