package privfolio

import (
	"iter"
	"sort"
)

// BalanceRecord is the ending balance of a single month.
type BalanceRecord struct {
	Month        Month // unique key
	Balance      Money
	Contribution Money
	Note         string
}

// BalanceBook holds the balance records, at most one per month, in
// chronological order.
type BalanceBook struct {
	records []BalanceRecord
	index   map[Month]int // index records by month
}

// NewBalanceBook creates an empty balance book.
func NewBalanceBook() *BalanceBook {
	return &BalanceBook{
		records: make([]BalanceRecord, 0),
		index:   make(map[Month]int),
	}
}

// Len returns the number of months recorded.
func (b *BalanceBook) Len() int { return len(b.records) }

// Has returns true if a record exists for that month.
func (b *BalanceBook) Has(m Month) bool {
	_, ok := b.index[m]
	return ok
}

// Get returns the record for the given month.
func (b *BalanceBook) Get(m Month) (BalanceRecord, bool) {
	i, ok := b.index[m]
	if !ok {
		return BalanceRecord{}, false
	}
	return b.records[i], true
}

// Upsert records r, overwriting in place any existing record for the same
// month, so that at most one record per month ever exists. A zero month is
// ignored.
func (b *BalanceBook) Upsert(r BalanceRecord) {
	if r.Month.IsZero() {
		return
	}
	if i, ok := b.index[r.Month]; ok {
		b.records[i] = r
		return
	}
	b.records = append(b.records, r)
	b.sort()
}

// Last returns the most recent record.
func (b *BalanceBook) Last() (BalanceRecord, bool) {
	if len(b.records) == 0 {
		return BalanceRecord{}, false
	}
	return b.records[len(b.records)-1], true
}

// Records returns an iterator over the records in chronological order.
func (b *BalanceBook) Records() iter.Seq[BalanceRecord] {
	return func(yield func(BalanceRecord) bool) {
		for _, r := range b.records {
			if !yield(r) {
				return
			}
		}
	}
}

// NetContributions returns the sum of contributions across all months.
func (b *BalanceBook) NetContributions() Money {
	total := USD(0)
	for _, r := range b.records {
		total = total.Add(r.Contribution)
	}
	return total
}

// sort restores chronological order and rebuilds the month index.
func (b *BalanceBook) sort() {
	sort.SliceStable(b.records, func(i, j int) bool {
		return b.records[i].Month.Before(b.records[j].Month)
	})
	b.index = make(map[Month]int, len(b.records))
	for i, r := range b.records {
		b.index[r.Month] = i
	}
}
