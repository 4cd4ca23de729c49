package privfolio

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

const (
	balancesFilename = "balances.csv"
	holdingsFilename = "holdings.csv"
)

// Store owns the two persisted tables and their location on disk. All
// mutations go through the books it loads; Save rewrites a whole table.
// There is no locking: concurrent writers are not a supported scenario and
// the last writer wins.
type Store struct {
	dir string
}

// NewStore returns a store rooted at the given data directory.
func NewStore(dir string) *Store { return &Store{dir: dir} }

// BalancesPath returns the location of the balance table.
func (s *Store) BalancesPath() string { return filepath.Join(s.dir, balancesFilename) }

// HoldingsPath returns the location of the holding table.
func (s *Store) HoldingsPath() string { return filepath.Join(s.dir, holdingsFilename) }

// LoadBalances reads the balance table. A missing file yields an empty
// book, not an error.
func (s *Store) LoadBalances() (*BalanceBook, error) {
	f, err := os.Open(s.BalancesPath())
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, %q does not exist, starting with an empty balance table", s.BalancesPath())
		return NewBalanceBook(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load error: cannot open %q: %w", s.BalancesPath(), err)
	}
	defer f.Close()
	return DecodeBalances(f)
}

// SaveBalances rewrites the balance table.
func (s *Store) SaveBalances(book *BalanceBook) error {
	return s.save(s.BalancesPath(), func(f *os.File) error { return EncodeBalances(f, book) })
}

// LoadHoldings reads the holding table. A missing file yields an empty
// book, not an error.
func (s *Store) LoadHoldings() (*HoldingBook, error) {
	f, err := os.Open(s.HoldingsPath())
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, %q does not exist, starting with an empty holding table", s.HoldingsPath())
		return NewHoldingBook(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load error: cannot open %q: %w", s.HoldingsPath(), err)
	}
	defer f.Close()
	return DecodeHoldings(f)
}

// SaveHoldings rewrites the holding table.
func (s *Store) SaveHoldings(book *HoldingBook) error {
	return s.save(s.HoldingsPath(), func(f *os.File) error { return EncodeHoldings(f, book) })
}

func (s *Store) save(path string, encode func(*os.File) error) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("persist error: cannot create data folder %q: %w", s.dir, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("persist error: cannot create file %q: %w", path, err)
	}
	defer f.Close()
	return encode(f)
}
