package privfolio

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// newTestYahoo serves canned payloads per URL path prefix.
func newTestYahoo(t *testing.T, handler http.HandlerFunc) *YahooClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return &YahooClient{baseURL: server.URL, client: server.Client()}
}

func TestFastPrice(t *testing.T) {
	y := newTestYahoo(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/v8/finance/chart/VTI") {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `{"chart":{"result":[{"meta":{"regularMarketPrice":251.37}}],"error":null}}`)
	})

	got, err := y.FastPrice("VTI")
	if err != nil {
		t.Fatalf("FastPrice: %v", err)
	}
	if got != 251.37 {
		t.Errorf("FastPrice = %v, want 251.37", got)
	}
}

func TestFastPriceProviderError(t *testing.T) {
	y := newTestYahoo(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart":{"result":[],"error":{"code":"Not Found"}}}`)
	})
	if _, err := y.FastPrice("NOPE"); err == nil {
		t.Error("expected an error on a provider error payload")
	}
}

func TestLastClose(t *testing.T) {
	y := newTestYahoo(t, func(w http.ResponseWriter, r *http.Request) {
		// trailing zero close must be skipped
		fmt.Fprint(w, `{"chart":{"result":[{"timestamp":[1,2,3],"indicators":{"quote":[{"close":[250.1,250.9,0]}]}}],"error":null}}`)
	})

	got, err := y.LastClose("VTI")
	if err != nil {
		t.Fatalf("LastClose: %v", err)
	}
	if got != 250.9 {
		t.Errorf("LastClose = %v, want 250.9", got)
	}
}

func TestSummaryPrice(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    float64
	}{
		{
			"regular market price",
			`{"quoteSummary":{"result":[{"price":{"regularMarketPrice":{"raw":251.4}}}],"error":null}}`,
			251.4,
		},
		{
			"falls back to previous close",
			`{"quoteSummary":{"result":[{"price":{},"summaryDetail":{"previousClose":{"raw":249.9}}}],"error":null}}`,
			249.9,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y := newTestYahoo(t, func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, tt.payload)
			})
			got, err := y.SummaryPrice("VTI")
			if err != nil {
				t.Fatalf("SummaryPrice: %v", err)
			}
			if got != tt.want {
				t.Errorf("SummaryPrice = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSummaryPriceNoPrice(t *testing.T) {
	y := newTestYahoo(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"quoteSummary":{"result":[{}],"error":null}}`)
	})
	if _, err := y.SummaryPrice("VTI"); err == nil {
		t.Error("expected an error when no path yields a price")
	}
}

func TestDividends(t *testing.T) {
	y := newTestYahoo(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("events"); got != "div" {
			t.Errorf("events query = %q, want %q", got, "div")
		}
		fmt.Fprint(w, `{"chart":{"result":[{"events":{"dividends":{
			"1709251200":{"amount":0.85,"date":1709251200},
			"1717200000":{"amount":0.88,"date":1717200000},
			"1700000000":{"amount":0,"date":1700000000}
		}}}],"error":null}}`)
	})

	got, err := y.Dividends("VTI")
	if err != nil {
		t.Fatalf("Dividends: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d payments, want 2 (zero amounts skipped)", len(got))
	}
	for _, p := range got {
		if !p.Amount.IsPositive() {
			t.Errorf("non-positive amount survived: %+v", p)
		}
	}
}

func TestStatusErrorSurfaces(t *testing.T) {
	y := newTestYahoo(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})
	if _, err := y.FastPrice("VTI"); err == nil {
		t.Error("expected an error on a non-200 status")
	}
}
