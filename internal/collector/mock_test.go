package collector

import (
	"context"
	"errors"
	"testing"
	"time"

	"SymbolWatch/internal/model"
)

func TestMockFetcher(t *testing.T) {
	boom := errors.New("boom")
	m := &MockFetcher{
		Series: map[string]*model.PriceSeries{
			"ABC": {Currency: "USD", Samples: []model.OHLCV{{Close: 42.5}}},
		},
		Errors: map[string]error{"DEF": boom},
	}
	ctx := context.Background()

	s, err := m.FetchSeries(ctx, "ABC", "1d", "1m")
	if err != nil || s.Symbol != "ABC" || s.Samples[0].Close != 42.5 {
		t.Fatalf("ABC: %+v %v", s, err)
	}
	s.Samples[0].Close = 0
	again, _ := m.FetchSeries(ctx, "ABC", "1d", "1m")
	if again.Samples[0].Close != 42.5 {
		t.Error("canned samples must not be shared with callers")
	}

	if _, err := m.FetchSeries(ctx, "DEF", "1d", "1m"); !errors.Is(err, boom) {
		t.Errorf("DEF: expected boom, got %v", err)
	}

	gen1, _ := m.FetchSeries(ctx, "GEN", "1d", "1m")
	gen2, _ := m.FetchSeries(ctx, "GEN", "1d", "1m")
	if gen1.Empty() || gen1.Samples[0].Close != gen2.Samples[0].Close {
		t.Error("generated sessions should be non-empty and deterministic per symbol")
	}

	want := []string{"ABC", "ABC", "DEF", "GEN", "GEN"}
	got := m.Calls()
	if len(got) != len(want) {
		t.Fatalf("calls = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestMockFetcher_DelayHonorsContext(t *testing.T) {
	m := &MockFetcher{Delay: time.Minute}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := m.FetchSeries(ctx, "SLOW", "1d", "1m"); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
}

func TestNewFetcher(t *testing.T) {
	tests := []struct {
		provider, baseURL, name string
		wantErr                 bool
	}{
		{"", "", "yahoo", false},
		{"yahoo", "", "yahoo", false},
		{"rest", "http://bars", "rest", false},
		{"rest", "", "", true},
		{"mock", "", "mock", false},
		{"carrier-pigeon", "", "", true},
	}
	for _, tt := range tests {
		f, err := NewFetcher(tt.provider, tt.baseURL, "", "")
		if (err != nil) != tt.wantErr {
			t.Errorf("%q: err = %v, wantErr %v", tt.provider, err, tt.wantErr)
			continue
		}
		if err == nil && f.Name() != tt.name {
			t.Errorf("%q: name = %q, want %q", tt.provider, f.Name(), tt.name)
		}
	}
}
