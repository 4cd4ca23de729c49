package privfolio

import (
	"path/filepath"
	"testing"
	"time"
)

func TestStoreMissingFiles(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "does-not-exist"))

	balances, err := store.LoadBalances()
	if err != nil {
		t.Fatalf("LoadBalances: %v", err)
	}
	if balances.Len() != 0 {
		t.Error("missing balances file should yield an empty book")
	}

	holdings, err := store.LoadHoldings()
	if err != nil {
		t.Fatalf("LoadHoldings: %v", err)
	}
	if holdings.Len() != 0 {
		t.Error("missing holdings file should yield an empty book")
	}
}

func TestStoreRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "data"))

	balances := NewBalanceBook()
	balances.Upsert(BalanceRecord{Month: NewMonth(2024, time.March), Balance: USD(5200)})
	if err := store.SaveBalances(balances); err != nil {
		t.Fatalf("SaveBalances: %v", err)
	}

	holdings := NewHoldingBook()
	holdings.Upsert(HoldingRecord{Ticker: "VTI", Shares: Q(10), CostBasis: USD(220)})
	if err := store.SaveHoldings(holdings); err != nil {
		t.Fatalf("SaveHoldings: %v", err)
	}

	gotBalances, err := store.LoadBalances()
	if err != nil {
		t.Fatalf("LoadBalances: %v", err)
	}
	r, ok := gotBalances.Get(NewMonth(2024, time.March))
	if !ok || !r.Balance.Equal(USD(5200)) {
		t.Errorf("balance round trip failed: %+v", r)
	}

	gotHoldings, err := store.LoadHoldings()
	if err != nil {
		t.Fatalf("LoadHoldings: %v", err)
	}
	h, ok := gotHoldings.Get("VTI")
	if !ok || !h.Shares.Equal(Q(10)) {
		t.Errorf("holding round trip failed: %+v", h)
	}
}
