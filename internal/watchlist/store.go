package watchlist

import (
	"fmt"
	"sync"
	"time"

	"SymbolWatch/internal/config"
	"SymbolWatch/internal/model"
)

// NotFoundError is returned when a symbol was not part of the configuration.
type NotFoundError struct {
	Symbol string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("symbol %q is not in the watchlist", e.Symbol)
}

// Store owns the watchlist entries with concurrency safety.
// Entries are fixed at construction; only their price data changes.
type Store struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]*model.WatchlistEntry
	now     func() time.Time
}

// New creates a Store holding one entry per holding, in declaration order.
func New(holdings config.Holdings) (*Store, error) {
	if err := holdings.Validate(); err != nil {
		return nil, err
	}
	s := &Store{
		order:   make([]string, 0, len(holdings)),
		entries: make(map[string]*model.WatchlistEntry, len(holdings)),
		now:     time.Now,
	}
	for _, h := range holdings {
		s.order = append(s.order, h.Symbol)
		s.entries[h.Symbol] = &model.WatchlistEntry{
			Symbol:         h.Symbol,
			Quantity:       h.Quantity,
			ReferenceValue: h.ReferenceValue,
		}
	}
	return s, nil
}

// Get returns a copy of the entry for symbol.
func (s *Store) Get(symbol string) (model.WatchlistEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[symbol]
	if !ok {
		return model.WatchlistEntry{}, &NotFoundError{Symbol: symbol}
	}
	return *e, nil
}

// All returns copies of every entry in configuration order.
func (s *Store) All() []model.WatchlistEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.WatchlistEntry, 0, len(s.order))
	for _, sym := range s.order {
		out = append(out, *s.entries[sym])
	}
	return out
}

// Symbols returns the configured symbols in order.
func (s *Store) Symbols() []string {
	return append([]string(nil), s.order...)
}

// Len returns the number of entries.
func (s *Store) Len() int { return len(s.order) }

// Replace swaps the samples and currency of one entry in a single step.
// The store keeps samples as given; callers must not modify the slice afterwards.
func (s *Store) Replace(symbol string, samples []model.OHLCV, currency string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[symbol]
	if !ok {
		return &NotFoundError{Symbol: symbol}
	}
	e.Samples = samples
	e.Currency = currency
	e.Refreshed = true
	e.UpdatedAt = s.now()
	return nil
}

// MarkUnavailable empties the samples of one entry. The last known currency is kept.
func (s *Store) MarkUnavailable(symbol string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[symbol]
	if !ok {
		return &NotFoundError{Symbol: symbol}
	}
	e.Samples = nil
	e.Refreshed = true
	e.UpdatedAt = s.now()
	return nil
}

// Chart answers a symbol selection with a private copy of its samples.
func (s *Store) Chart(symbol string) (model.ChartData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[symbol]
	if !ok {
		return model.ChartData{}, &NotFoundError{Symbol: symbol}
	}
	return model.ChartData{
		Symbol:   e.Symbol,
		Currency: e.Currency,
		Samples:  append([]model.OHLCV(nil), e.Samples...),
	}, nil
}
