package privfolio

import (
	"testing"
	"time"
)

func TestBalanceBookUpsert(t *testing.T) {
	book := NewBalanceBook()
	march := NewMonth(2024, time.March)

	book.Upsert(BalanceRecord{Month: march, Balance: USD(5000)})
	book.Upsert(BalanceRecord{Month: march, Balance: USD(5200), Note: "corrected"})

	if got, want := book.Len(), 1; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	r, ok := book.Get(march)
	if !ok {
		t.Fatal("Get(march) not found")
	}
	if !r.Balance.Equal(USD(5200)) {
		t.Errorf("Balance = %s, want %s", r.Balance, USD(5200))
	}
	if r.Note != "corrected" {
		t.Errorf("Note = %q, want %q", r.Note, "corrected")
	}
}

func TestBalanceBookIgnoresZeroMonth(t *testing.T) {
	book := NewBalanceBook()
	book.Upsert(BalanceRecord{Balance: USD(100)})
	if book.Len() != 0 {
		t.Error("zero month record was not ignored")
	}
}

func TestBalanceBookChronologicalOrder(t *testing.T) {
	book := NewBalanceBook()
	book.Upsert(BalanceRecord{Month: NewMonth(2024, time.May), Balance: USD(3)})
	book.Upsert(BalanceRecord{Month: NewMonth(2023, time.December), Balance: USD(1)})
	book.Upsert(BalanceRecord{Month: NewMonth(2024, time.January), Balance: USD(2)})

	var got []Month
	for r := range book.Records() {
		got = append(got, r.Month)
	}
	want := []Month{
		NewMonth(2023, time.December),
		NewMonth(2024, time.January),
		NewMonth(2024, time.May),
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("record %d is %v, want %v", i, got[i], want[i])
		}
	}

	last, ok := book.Last()
	if !ok || last.Month != NewMonth(2024, time.May) {
		t.Errorf("Last() = %v, want 2024-05", last.Month)
	}
}

func TestNetContributions(t *testing.T) {
	book := NewBalanceBook()
	book.Upsert(BalanceRecord{Month: NewMonth(2024, time.January), Contribution: USD(200)})
	book.Upsert(BalanceRecord{Month: NewMonth(2024, time.February), Contribution: USD(-50)})
	book.Upsert(BalanceRecord{Month: NewMonth(2024, time.March), Contribution: USD(100)})

	if got, want := book.NetContributions(), USD(250); !got.Equal(want) {
		t.Errorf("NetContributions() = %s, want %s", got, want)
	}
}

func TestNetContributionsEmpty(t *testing.T) {
	if got := NewBalanceBook().NetContributions(); !got.IsZero() {
		t.Errorf("NetContributions() on empty book = %s, want zero", got)
	}
}
