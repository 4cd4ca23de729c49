package privfolio

import (
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/patrickmn/go-cache"
)

// A PriceSource answers market-data questions for one ticker at a time. The
// three price methods are alternative ways to get at the same number; the
// resolver tries them in order and keeps the first usable one.
type PriceSource interface {
	// FastPrice returns the latest traded price.
	FastPrice(ticker string) (float64, error)
	// LastClose returns the most recent daily closing price.
	LastClose(ticker string) (float64, error)
	// SummaryPrice returns a price from the provider's summary endpoint.
	SummaryPrice(ticker string) (float64, error)
	// Dividends returns the per-share dividend history.
	Dividends(ticker string) ([]DividendPayment, error)
}

// DividendPayment is a single per-share dividend.
type DividendPayment struct {
	Date   time.Time
	Amount Money
}

// Cache lifetimes. Prices move fast, dividend histories do not.
const (
	priceCacheTTL    = 5 * time.Minute
	dividendCacheTTL = 30 * time.Minute
)

// quote is a cached price lookup result. Unavailable prices are cached too,
// so a dead ticker does not hammer the provider on every view.
type quote struct {
	price float64
	ok    bool
}

// QuoteResolver answers price and dividend queries over a PriceSource,
// caching results in memory. It never fails: when every source errors out it
// reports the price as unavailable and the dividend history as empty.
type QuoteResolver struct {
	source    PriceSource
	prices    *cache.Cache
	dividends *cache.Cache
}

// NewQuoteResolver creates a resolver over the given source.
func NewQuoteResolver(source PriceSource) *QuoteResolver {
	return &QuoteResolver{
		source:    source,
		prices:    cache.New(priceCacheTTL, 2*priceCacheTTL),
		dividends: cache.New(dividendCacheTTL, 2*dividendCacheTTL),
	}
}

// Price returns the current per-share price of a ticker, and whether a price
// could be resolved at all. A zero or negative price from a source counts as
// no price.
func (q *QuoteResolver) Price(ticker string) (float64, bool) {
	ticker = NormalizeTicker(ticker)
	if ticker == "" {
		return 0, false
	}
	if cached, found := q.prices.Get(ticker); found {
		r := cached.(quote)
		return r.price, r.ok
	}
	r := q.resolve(ticker)
	q.prices.Set(ticker, r, cache.DefaultExpiration)
	return r.price, r.ok
}

// resolve walks the fallback chain and keeps the first positive price.
func (q *QuoteResolver) resolve(ticker string) quote {
	steps := []struct {
		name  string
		fetch func(string) (float64, error)
	}{
		{"fast", q.source.FastPrice},
		{"history", q.source.LastClose},
		{"summary", q.source.SummaryPrice},
	}
	for _, step := range steps {
		price, err := fetchQuietly(step.fetch, ticker)
		if err != nil {
			log.Printf("quote %s: %s source failed: %v", ticker, step.name, err)
			continue
		}
		if price > 0 {
			return quote{price: price, ok: true}
		}
	}
	log.Printf("quote %s: price unavailable from all sources", ticker)
	return quote{}
}

// Dividends returns the dividend history of a ticker in date order, or nil
// when the source cannot answer.
func (q *QuoteResolver) Dividends(ticker string) []DividendPayment {
	ticker = NormalizeTicker(ticker)
	if ticker == "" {
		return nil
	}
	if cached, found := q.dividends.Get(ticker); found {
		return cached.([]DividendPayment)
	}
	payments, err := fetchQuietly(q.source.Dividends, ticker)
	if err != nil {
		log.Printf("dividends %s: source failed: %v", ticker, err)
		payments = nil
	}
	sort.Slice(payments, func(i, j int) bool {
		return payments[i].Date.Before(payments[j].Date)
	})
	q.dividends.Set(ticker, payments, cache.DefaultExpiration)
	return payments
}

// fetchQuietly calls a source method and converts any panic into a plain
// error, so a misbehaving source can never take the resolver down.
func fetchQuietly[T any](fetch func(string) (T, error), ticker string) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("source panicked: %v", r)
		}
	}()
	return fetch(ticker)
}
