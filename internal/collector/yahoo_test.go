package collector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const yahooSession = `{"chart":{"result":[{
  "meta":{"currency":"SEK","symbol":"SAAB-B.ST"},
  "timestamp":[1700000120,1700000000,1700000060,1700000180],
  "indicators":{"quote":[{
    "open":[101.0,100.0,null,102.0],
    "high":[101.5,100.5,null,102.5],
    "low":[100.5,99.5,null,101.5],
    "close":[101.2,100.2,null,102.4],
    "volume":[300,100,null,400]
  }]}
}],"error":null}}`

func newYahooTestServer(t *testing.T, status int, body string) (*YahooFetcher, *string) {
	t.Helper()
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.RequestURI()
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	f := NewYahooFetcher("")
	f.BaseURL = srv.URL
	return f, &gotPath
}

func TestYahooFetchSeries(t *testing.T) {
	f, gotPath := newYahooTestServer(t, http.StatusOK, yahooSession)

	s, err := f.FetchSeries(context.Background(), "SAAB-B.ST", "1d", "1m")
	if err != nil {
		t.Fatalf("FetchSeries: %v", err)
	}
	if !strings.Contains(*gotPath, "/v8/finance/chart/SAAB-B.ST?interval=1m&range=1d") {
		t.Errorf("unexpected request %q", *gotPath)
	}
	if s.Currency != "SEK" {
		t.Errorf("currency = %q, want SEK", s.Currency)
	}
	if len(s.Samples) != 3 {
		t.Fatalf("expected null bar to be skipped, got %d samples", len(s.Samples))
	}
	for i := 1; i < len(s.Samples); i++ {
		if !s.Samples[i-1].Time.Before(s.Samples[i].Time) {
			t.Fatal("samples are not in chronological order")
		}
	}
	if last := s.Samples[len(s.Samples)-1]; last.Close != 102.4 || last.Volume != 400 {
		t.Errorf("last sample = %+v", last)
	}
}

func TestYahooFetchSeries_SkipsBarsWithoutClose(t *testing.T) {
	const body = `{"chart":{"result":[{
  "meta":{"currency":"USD"},
  "timestamp":[1700000000,1700000060,1700000120],
  "indicators":{"quote":[{
    "open":[410.0,411.0,412.0],
    "high":[411.0,null,412.5],
    "low":[409.5,410.5,411.5],
    "close":[410.8,411.2,null],
    "volume":[100,200,0]
  }]}
}],"error":null}}`
	f, _ := newYahooTestServer(t, http.StatusOK, body)

	s, err := f.FetchSeries(context.Background(), "MSFT", "1d", "1m")
	if err != nil {
		t.Fatalf("FetchSeries: %v", err)
	}
	if len(s.Samples) != 2 {
		t.Fatalf("expected the live minute without close to be skipped, got %d samples", len(s.Samples))
	}
	last := s.Samples[len(s.Samples)-1]
	if last.Close != 411.2 {
		t.Errorf("last close = %v, want 411.2", last.Close)
	}
	if last.High != 411.2 {
		t.Errorf("missing high = %v, want the close 411.2", last.High)
	}
}

func TestYahooFetchSeries_EscapesSymbol(t *testing.T) {
	f, gotPath := newYahooTestServer(t, http.StatusOK, yahooSession)
	if _, err := f.FetchSeries(context.Background(), "OMXS30", "1d", "1m"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(*gotPath, "/chart/%5EOMX?") {
		t.Errorf("expected mapped and escaped symbol, got %q", *gotPath)
	}
}

func TestYahooFetchSeries_EmptyIsNotAnError(t *testing.T) {
	tests := []struct {
		name string
		body string
		cur  string
	}{
		{"no result", `{"chart":{"result":[],"error":null}}`, ""},
		{"no timestamps", `{"chart":{"result":[{"meta":{"currency":"USD"},"indicators":{"quote":[{}]}}],"error":null}}`, "USD"},
		{"all null", `{"chart":{"result":[{"meta":{"currency":"USD"},"timestamp":[1],"indicators":{"quote":[{"open":[null],"high":[null],"low":[null],"close":[null]}]}}],"error":null}}`, "USD"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, _ := newYahooTestServer(t, http.StatusOK, tt.body)
			s, err := f.FetchSeries(context.Background(), "XYZ", "1d", "1m")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !s.Empty() {
				t.Errorf("expected empty series, got %d samples", len(s.Samples))
			}
			if s.Currency != tt.cur {
				t.Errorf("currency = %q, want %q", s.Currency, tt.cur)
			}
		})
	}
}

func TestYahooFetchSeries_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"http status", http.StatusInternalServerError, "boom"},
		{"not found", http.StatusNotFound, `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`},
		{"api error", http.StatusOK, `{"chart":{"result":null,"error":{"code":"Bad Request","description":"Invalid interval"}}}`},
		{"bad json", http.StatusOK, `{"chart":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, _ := newYahooTestServer(t, tt.status, tt.body)
			if _, err := f.FetchSeries(context.Background(), "DEF", "1d", "1m"); err == nil {
				t.Error("expected error")
			}
		})
	}
}
