package notifier

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"SymbolWatch/internal/model"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{42.5, "42.50"},
		{0, "0.00"},
		{1234.567, "1234.57"},
		{99.994, "99.99"},
		{-3.1, "-3.10"},
		{0.125, "0.12"},
		{2.675, "2.67"},
		{1.005, "1.00"},
		{42.345, "42.34"},
		{math.NaN(), model.NotAvailable},
		{math.Inf(1), model.NotAvailable},
	}
	for _, tt := range tests {
		if got := FormatPrice(tt.in); got != tt.want {
			t.Errorf("FormatPrice(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatEntry(t *testing.T) {
	fresh := model.WatchlistEntry{Symbol: "MSFT"}
	if got := FormatEntry(fresh); got != Loading {
		t.Errorf("fresh entry = %q, want %q", got, Loading)
	}
	empty := model.WatchlistEntry{Symbol: "MSFT", Refreshed: true}
	if got := FormatEntry(empty); got != model.NotAvailable {
		t.Errorf("empty entry = %q, want N/A", got)
	}
	full := model.WatchlistEntry{Symbol: "MSFT", Refreshed: true, Samples: []model.OHLCV{{Close: 1}, {Close: 412.3}}}
	if got := FormatEntry(full); got != "412.30" {
		t.Errorf("entry = %q, want 412.30", got)
	}
}

func TestFormatMoney(t *testing.T) {
	if got := FormatMoney(85, "USD"); got != "$85.00" {
		t.Errorf("USD = %q, want $85.00", got)
	}
	if got := FormatMoney(12, "XYZ"); got != "12.00 XYZ" {
		t.Errorf("unknown currency = %q", got)
	}
	if got := FormatMoney(12, ""); got != "12.00" {
		t.Errorf("no currency = %q", got)
	}
}

func TestFormatQuoteTable(t *testing.T) {
	entries := []model.WatchlistEntry{
		{Symbol: "ABC", Quantity: 2, Currency: "USD", Refreshed: true, Samples: []model.OHLCV{{Close: 42.5}}},
		{Symbol: "XYZ", Quantity: 1, Refreshed: true},
		{Symbol: "^OMX"},
	}
	out := FormatQuoteTable(entries)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows, got:\n%s", out)
	}
	for i, want := range []string{"SYMBOL", "ABC", "XYZ", "^OMX"} {
		if !strings.HasPrefix(lines[i], want) {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i], want)
		}
	}
	if !strings.Contains(lines[1], "42.50") || !strings.Contains(lines[1], "$85.00") {
		t.Errorf("ABC row = %q", lines[1])
	}
	if !strings.Contains(lines[2], model.NotAvailable) {
		t.Errorf("XYZ row = %q", lines[2])
	}
	if !strings.Contains(lines[3], Loading) {
		t.Errorf("^OMX row = %q", lines[3])
	}
}

func TestFormatChart(t *testing.T) {
	if got := FormatChart(model.ChartData{Symbol: "XYZ"}); !strings.Contains(got, "no price data") {
		t.Errorf("empty chart = %q", got)
	}

	start := time.Date(2025, 3, 3, 9, 30, 0, 0, time.UTC)
	var samples []model.OHLCV
	for i := 0; i < 25; i++ {
		p := 100 + float64(i)
		samples = append(samples, model.OHLCV{Time: start.Add(time.Duration(i) * time.Minute), Open: p, High: p + 1, Low: p - 1, Close: p})
	}
	got := FormatChart(model.ChartData{Symbol: "MSFT", Currency: "USD", Samples: samples})
	for _, want := range []string{"MSFT close prices (USD)", "points: 25", "open 100.00", "high 125.00", "low 99.00", "last 124.00", "(+24.00%)", "sma(20): 114.50", "rsi(14): 100.0"} {
		if !strings.Contains(got, want) {
			t.Errorf("chart missing %q:\n%s", want, got)
		}
	}
}

func TestFormatEvent(t *testing.T) {
	tests := []struct {
		evt  model.UpdateEvent
		want string
	}{
		{model.UpdateEvent{Symbol: "ABC", Status: model.StatusUpdated, DisplayText: "42.50", Currency: "USD"}, "ABC 42.50 USD"},
		{model.UpdateEvent{Symbol: "XYZ", Status: model.StatusUnavailable}, "XYZ N/A"},
		{model.UpdateEvent{Symbol: "DEF", Status: model.StatusFailed, Err: errors.New("timeout")}, "DEF N/A (timeout)"},
	}
	for _, tt := range tests {
		if got := FormatEvent(tt.evt); got != tt.want {
			t.Errorf("FormatEvent = %q, want %q", got, tt.want)
		}
	}
}
