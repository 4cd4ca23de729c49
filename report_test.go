package privfolio

import (
	"testing"
	"time"
)

// priceTable is a PriceSource backed by a fixed map. Absent tickers fail
// every lookup.
type priceTable map[string]float64

func (p priceTable) lookup(ticker string) (float64, error) {
	price, ok := p[ticker]
	if !ok {
		return 0, errDown
	}
	return price, nil
}

func (p priceTable) FastPrice(ticker string) (float64, error)    { return p.lookup(ticker) }
func (p priceTable) LastClose(ticker string) (float64, error)    { return p.lookup(ticker) }
func (p priceTable) SummaryPrice(ticker string) (float64, error) { return p.lookup(ticker) }
func (p priceTable) Dividends(string) ([]DividendPayment, error) { return nil, errDown }

func TestHoldingsReport(t *testing.T) {
	holdings := NewHoldingBook()
	holdings.Upsert(HoldingRecord{Ticker: "VTI", Shares: Q(10), CostBasis: USD(100)})
	quotes := NewQuoteResolver(priceTable{"VTI": 120})

	report := NewHoldingsReport(holdings, quotes)

	if len(report.Holdings) != 1 {
		t.Fatalf("got %d valuations, want 1", len(report.Holdings))
	}
	v := report.Holdings[0]
	if !v.PriceKnown {
		t.Error("price should be known")
	}
	if !v.MarketValue.Equal(USD(1200)) {
		t.Errorf("MarketValue = %s, want 1200", v.MarketValue.Plain())
	}
	if !v.UnrealizedPnL.Equal(USD(200)) {
		t.Errorf("UnrealizedPnL = %s, want 200", v.UnrealizedPnL.Plain())
	}
	if !report.TotalMarketValue.Equal(USD(1200)) {
		t.Errorf("TotalMarketValue = %s, want 1200", report.TotalMarketValue.Plain())
	}
}

func TestHoldingsReportUnpriceable(t *testing.T) {
	holdings := NewHoldingBook()
	holdings.Upsert(HoldingRecord{Ticker: "VTI", Shares: Q(5), CostBasis: USD(100)})
	holdings.Upsert(HoldingRecord{Ticker: "DEAD", Shares: Q(100), CostBasis: USD(10)})
	quotes := NewQuoteResolver(priceTable{"VTI": 50})

	report := NewHoldingsReport(holdings, quotes)

	// an unpriceable ticker is valued at a zero price: no market value,
	// the whole cost basis counted as an unrealized loss
	if !report.TotalMarketValue.Equal(USD(250)) {
		t.Errorf("TotalMarketValue = %s, want 250", report.TotalMarketValue.Plain())
	}
	if !report.TotalUnrealizedPnL.Equal(USD(-1250)) {
		t.Errorf("TotalUnrealizedPnL = %s, want -1250", report.TotalUnrealizedPnL.Plain())
	}
	for _, v := range report.Holdings {
		if v.Ticker != "DEAD" {
			continue
		}
		if v.PriceKnown {
			t.Error("DEAD should be unpriceable")
		}
		if !v.MarketValue.IsZero() {
			t.Errorf("DEAD market value = %s, want 0", v.MarketValue.Plain())
		}
		if !v.UnrealizedPnL.Equal(USD(-1000)) {
			t.Errorf("DEAD unrealized P&L = %s, want -1000", v.UnrealizedPnL.Plain())
		}
	}
}

func TestSyncFromHoldings(t *testing.T) {
	balances := NewBalanceBook()
	holdings := NewHoldingBook()
	holdings.Upsert(HoldingRecord{Ticker: "VTI", Shares: Q(5), CostBasis: USD(100)})
	holdings.Upsert(HoldingRecord{Ticker: "DEAD", Shares: Q(2), CostBasis: USD(10)})
	holdings.Upsert(HoldingRecord{Ticker: "NONE", Shares: Q(0), CostBasis: USD(10)})
	quotes := NewQuoteResolver(priceTable{"VTI": 50, "NONE": 1000})

	month, total := SyncFromHoldings(balances, holdings, quotes)

	if month != ThisMonth() {
		t.Errorf("synced month = %v, want %v", month, ThisMonth())
	}
	if !total.Equal(USD(250)) {
		t.Errorf("total = %s, want 250", total.Plain())
	}
	r, ok := balances.Get(ThisMonth())
	if !ok {
		t.Fatal("current month was not recorded")
	}
	if !r.Balance.Equal(USD(250)) {
		t.Errorf("recorded balance = %s, want 250", r.Balance.Plain())
	}
	if r.Note != "synced from holdings" {
		t.Errorf("new record note = %q", r.Note)
	}
}

func TestSyncKeepsExistingFields(t *testing.T) {
	balances := NewBalanceBook()
	balances.Upsert(BalanceRecord{
		Month:        ThisMonth(),
		Balance:      USD(1),
		Contribution: USD(300),
		Note:         "typed by hand",
	})
	holdings := NewHoldingBook()
	holdings.Upsert(HoldingRecord{Ticker: "VTI", Shares: Q(2), CostBasis: USD(10)})
	quotes := NewQuoteResolver(priceTable{"VTI": 100})

	SyncFromHoldings(balances, holdings, quotes)

	r, _ := balances.Get(ThisMonth())
	if !r.Balance.Equal(USD(200)) {
		t.Errorf("balance = %s, want 200", r.Balance.Plain())
	}
	if !r.Contribution.Equal(USD(300)) {
		t.Errorf("contribution was clobbered: %s", r.Contribution.Plain())
	}
	if r.Note != "typed by hand" {
		t.Errorf("note was clobbered: %q", r.Note)
	}
}

func TestDashboard(t *testing.T) {
	balances := NewBalanceBook()
	balances.Upsert(BalanceRecord{Month: NewMonth(2024, time.January), Balance: USD(5000), Contribution: USD(200)})
	balances.Upsert(BalanceRecord{Month: NewMonth(2024, time.February), Balance: USD(5200), Contribution: USD(100)})
	holdings := NewHoldingBook()
	holdings.Upsert(HoldingRecord{Ticker: "VTI", Shares: Q(10), CostBasis: USD(100)})
	quotes := NewQuoteResolver(priceTable{"VTI": 120})

	d := NewDashboard(balances, holdings, quotes)

	if !d.CurrentBalance.Equal(USD(5200)) {
		t.Errorf("CurrentBalance = %s, want 5200", d.CurrentBalance.Plain())
	}
	if !d.HoldingsValue.Equal(USD(1200)) {
		t.Errorf("HoldingsValue = %s, want 1200", d.HoldingsValue.Plain())
	}
	if !d.NetContributions.Equal(USD(300)) {
		t.Errorf("NetContributions = %s, want 300", d.NetContributions.Plain())
	}
	if d.Months != 2 {
		t.Errorf("Months = %d, want 2", d.Months)
	}
}

func TestDashboardNoBalancesFallsBackToHoldings(t *testing.T) {
	holdings := NewHoldingBook()
	holdings.Upsert(HoldingRecord{Ticker: "VTI", Shares: Q(10), CostBasis: USD(100)})
	quotes := NewQuoteResolver(priceTable{"VTI": 120})

	d := NewDashboard(NewBalanceBook(), holdings, quotes)

	if !d.CurrentBalance.Equal(USD(1200)) {
		t.Errorf("CurrentBalance = %s, want holdings value 1200", d.CurrentBalance.Plain())
	}
}

func TestBalanceTrend(t *testing.T) {
	balances := NewBalanceBook()
	balances.Upsert(BalanceRecord{Month: NewMonth(2024, time.February), Balance: USD(2)})
	balances.Upsert(BalanceRecord{Month: NewMonth(2024, time.January), Balance: USD(1)})

	trend := BalanceTrend(balances)
	if len(trend) != 2 {
		t.Fatalf("got %d points, want 2", len(trend))
	}
	if trend[0].Month != NewMonth(2024, time.January) {
		t.Error("trend is not chronological")
	}
}
