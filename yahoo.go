package privfolio

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// This file implements PriceSource on top of Yahoo Finance's public JSON
// endpoints. No API key is required, but the endpoints are unofficial and
// change shape without notice, hence the defensive decoding below.

const yahooBaseURL = "https://query1.finance.yahoo.com"

// YahooClient queries Yahoo Finance. It implements PriceSource.
type YahooClient struct {
	baseURL string
	client  *http.Client
}

// NewYahooClient returns a client against the public Yahoo Finance API.
func NewYahooClient() *YahooClient {
	return &YahooClient{baseURL: yahooBaseURL, client: newQuoteClient()}
}

// chartResponse is the part of the v8 chart payload we care about. The same
// shape serves price, history and dividend queries.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				RegularMarketPrice float64 `json:"regularMarketPrice"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
			Events struct {
				Dividends map[string]struct {
					Amount float64 `json:"amount"`
					Date   int64   `json:"date"`
				} `json:"dividends"`
			} `json:"events"`
		} `json:"result"`
		Error any `json:"error"`
	} `json:"chart"`
}

func (y *YahooClient) chart(ticker, query string) (*chartResponse, error) {
	addr := fmt.Sprintf("%s/v8/finance/chart/%s", y.baseURL, url.PathEscape(ticker))
	if query != "" {
		addr += "?" + query
	}
	var payload chartResponse
	if err := jwget(y.client, addr, &payload); err != nil {
		return nil, err
	}
	if payload.Chart.Error != nil {
		return nil, fmt.Errorf("provider error for %q: %v", ticker, payload.Chart.Error)
	}
	if len(payload.Chart.Result) == 0 {
		return nil, fmt.Errorf("empty chart result for %q", ticker)
	}
	return &payload, nil
}

// FastPrice returns the regular market price from the chart metadata.
func (y *YahooClient) FastPrice(ticker string) (float64, error) {
	payload, err := y.chart(ticker, "")
	if err != nil {
		return 0, err
	}
	price := payload.Chart.Result[0].Meta.RegularMarketPrice
	if price == 0 {
		return 0, fmt.Errorf("no market price for %q", ticker)
	}
	return price, nil
}

// LastClose returns the latest daily closing price.
func (y *YahooClient) LastClose(ticker string) (float64, error) {
	payload, err := y.chart(ticker, "interval=1d&range=1d")
	if err != nil {
		return 0, err
	}
	quotes := payload.Chart.Result[0].Indicators.Quote
	if len(quotes) == 0 {
		return 0, fmt.Errorf("no quote series for %q", ticker)
	}
	closes := quotes[0].Close
	for i := len(closes) - 1; i >= 0; i-- {
		if closes[i] != 0 {
			return closes[i], nil
		}
	}
	return 0, fmt.Errorf("no closing price for %q", ticker)
}

// summaryPricePaths are the places a price may hide in the quoteSummary
// payload, in preference order.
var summaryPricePaths = []string{
	"$.quoteSummary.result[0].price.regularMarketPrice.raw",
	"$.quoteSummary.result[0].price.postMarketPrice.raw",
	"$.quoteSummary.result[0].summaryDetail.previousClose.raw",
}

// SummaryPrice probes the v10 quoteSummary endpoint for any usable price.
func (y *YahooClient) SummaryPrice(ticker string) (float64, error) {
	addr := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=price,summaryDetail",
		y.baseURL, url.PathEscape(ticker))
	var payload any
	if err := jwget(y.client, addr, &payload); err != nil {
		return 0, err
	}
	for _, path := range summaryPricePaths {
		value, err := jsonpath.Get(path, payload)
		if err != nil {
			continue
		}
		// some engines wrap scalar results in a one-element list
		if list, ok := value.([]any); ok && len(list) == 1 {
			value = list[0]
		}
		if price, ok := value.(float64); ok && price > 0 {
			return price, nil
		}
	}
	return 0, fmt.Errorf("no usable price in summary for %q", ticker)
}

// dividendLookback bounds the dividend history query.
const dividendLookback = 10 * 365 * 24 * time.Hour

// Dividends returns the per-share dividend payments of the last ten years,
// unordered.
func (y *YahooClient) Dividends(ticker string) ([]DividendPayment, error) {
	now := time.Now()
	query := fmt.Sprintf("interval=1d&events=div&period1=%d&period2=%d",
		now.Add(-dividendLookback).Unix(), now.Unix())
	payload, err := y.chart(ticker, query)
	if err != nil {
		return nil, err
	}
	var payments []DividendPayment
	for _, d := range payload.Chart.Result[0].Events.Dividends {
		if d.Amount <= 0 {
			continue
		}
		payments = append(payments, DividendPayment{
			Date:   time.Unix(d.Date, 0).UTC(),
			Amount: USD(d.Amount),
		})
	}
	return payments, nil
}
