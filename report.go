package privfolio

// This file computes the read-only views over the books. Reports are plain
// values; rendering them is the renderer package's job.

// HoldingValuation is one holding priced at the current market.
type HoldingValuation struct {
	HoldingRecord
	LastPrice     Money
	PriceKnown    bool // false when no source could price the ticker
	MarketValue   Money
	UnrealizedPnL Money
}

// HoldingsReport values every holding and totals them up. Holdings whose
// price is unavailable contribute zero to both totals.
type HoldingsReport struct {
	Holdings           []HoldingValuation
	TotalMarketValue   Money
	TotalUnrealizedPnL Money
}

// NewHoldingsReport prices the book with the given resolver.
func NewHoldingsReport(holdings *HoldingBook, quotes *QuoteResolver) *HoldingsReport {
	report := &HoldingsReport{
		Holdings:           make([]HoldingValuation, 0, holdings.Len()),
		TotalMarketValue:   USD(0),
		TotalUnrealizedPnL: USD(0),
	}
	for r := range holdings.Records() {
		price, ok := quotes.Price(r.Ticker)
		last := USD(0)
		if ok {
			last = USD(price)
		}
		// an unavailable price enters the formulas as zero, so the
		// position shows no market value and its full cost as a loss
		v := HoldingValuation{
			HoldingRecord: r,
			LastPrice:     last,
			PriceKnown:    ok,
			MarketValue:   last.Mul(r.Shares).Round(),
			UnrealizedPnL: last.Sub(r.CostBasis).Mul(r.Shares).Round(),
		}
		report.Holdings = append(report.Holdings, v)
		report.TotalMarketValue = report.TotalMarketValue.Add(v.MarketValue)
		report.TotalUnrealizedPnL = report.TotalUnrealizedPnL.Add(v.UnrealizedPnL)
	}
	return report
}

// TrendPoint is one month of the balance history.
type TrendPoint struct {
	Month   Month
	Balance Money
}

// BalanceTrend returns the balance history in chronological order.
func BalanceTrend(balances *BalanceBook) []TrendPoint {
	trend := make([]TrendPoint, 0, balances.Len())
	for r := range balances.Records() {
		trend = append(trend, TrendPoint{Month: r.Month, Balance: r.Balance})
	}
	return trend
}

// Dashboard is the top-level summary view.
type Dashboard struct {
	CurrentBalance   Money
	HoldingsValue    Money
	NetContributions Money
	Months           int
}

// NewDashboard assembles the summary. When no month was ever recorded the
// current balance falls back to the live holdings value.
func NewDashboard(balances *BalanceBook, holdings *HoldingBook, quotes *QuoteResolver) *Dashboard {
	report := NewHoldingsReport(holdings, quotes)
	d := &Dashboard{
		CurrentBalance:   report.TotalMarketValue,
		HoldingsValue:    report.TotalMarketValue,
		NetContributions: balances.NetContributions(),
		Months:           balances.Len(),
	}
	if last, ok := balances.Last(); ok {
		d.CurrentBalance = last.Balance
	}
	return d
}
