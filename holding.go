package privfolio

import (
	"iter"
	"slices"
	"sort"
	"strings"
)

// HoldingRecord is a position in a single equity.
type HoldingRecord struct {
	Ticker    string // unique key, always uppercase
	Shares    Quantity
	CostBasis Money // per-share purchase price
	Note      string
}

// NormalizeTicker returns the canonical form of a ticker symbol.
func NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// HoldingBook holds the equity positions, at most one per ticker, sorted by
// ticker.
type HoldingBook struct {
	records []HoldingRecord
	index   map[string]int // index records by ticker
}

// NewHoldingBook creates an empty holding book.
func NewHoldingBook() *HoldingBook {
	return &HoldingBook{
		records: make([]HoldingRecord, 0),
		index:   make(map[string]int),
	}
}

// Len returns the number of holdings.
func (h *HoldingBook) Len() int { return len(h.records) }

// Has returns true if a holding exists for that ticker.
func (h *HoldingBook) Has(ticker string) bool {
	_, ok := h.index[NormalizeTicker(ticker)]
	return ok
}

// Get returns the holding for the given ticker.
func (h *HoldingBook) Get(ticker string) (HoldingRecord, bool) {
	i, ok := h.index[NormalizeTicker(ticker)]
	if !ok {
		return HoldingRecord{}, false
	}
	return h.records[i], true
}

// Upsert records r, overwriting in place any existing holding for the same
// ticker, so that at most one record per ticker ever exists. An empty ticker
// is ignored.
func (h *HoldingBook) Upsert(r HoldingRecord) {
	r.Ticker = NormalizeTicker(r.Ticker)
	if r.Ticker == "" {
		return
	}
	if i, ok := h.index[r.Ticker]; ok {
		h.records[i] = r
		return
	}
	h.records = append(h.records, r)
	h.sort()
}

// Delete removes the holding for the given ticker. Deleting an unknown
// ticker is a no-op.
func (h *HoldingBook) Delete(ticker string) {
	i, ok := h.index[NormalizeTicker(ticker)]
	if !ok {
		return
	}
	h.records = slices.Delete(h.records, i, i+1)
	h.sort()
}

// Records returns an iterator over the holdings in ticker order.
func (h *HoldingBook) Records() iter.Seq[HoldingRecord] {
	return func(yield func(HoldingRecord) bool) {
		for _, r := range h.records {
			if !yield(r) {
				return
			}
		}
	}
}

// Tickers returns all tickers in order.
func (h *HoldingBook) Tickers() []string {
	tickers := make([]string, 0, len(h.records))
	for _, r := range h.records {
		tickers = append(tickers, r.Ticker)
	}
	return tickers
}

// sort restores ticker order and rebuilds the ticker index.
func (h *HoldingBook) sort() {
	sort.SliceStable(h.records, func(i, j int) bool {
		return h.records[i].Ticker < h.records[j].Ticker
	})
	h.index = make(map[string]int, len(h.records))
	for i, r := range h.records {
		h.index[r.Ticker] = i
	}
}
