package privfolio

// SyncFromHoldings values the holding book at current prices and writes the
// total as the current month's balance. Holdings with no ticker, no positive
// share count or no available price contribute zero. An existing record for
// the month keeps its contribution and note; a new record carries a marker
// note so a synced balance is distinguishable from a typed one.
//
// The updated month and the total are returned; the caller persists the
// book.
func SyncFromHoldings(balances *BalanceBook, holdings *HoldingBook, quotes *QuoteResolver) (Month, Money) {
	total := USD(0)
	for r := range holdings.Records() {
		if r.Ticker == "" || !r.Shares.IsPositive() {
			continue
		}
		price, ok := quotes.Price(r.Ticker)
		if !ok {
			continue
		}
		total = total.Add(USD(price).Mul(r.Shares))
	}
	total = total.Round()

	m := ThisMonth()
	record, ok := balances.Get(m)
	if ok {
		record.Balance = total
	} else {
		record = BalanceRecord{
			Month:        m,
			Balance:      total,
			Contribution: USD(0),
			Note:         "synced from holdings",
		}
	}
	balances.Upsert(record)
	return m, total
}
