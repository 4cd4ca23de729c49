package privfolio

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/shopspring/decimal"
)

// This file contains code to persist the two tables as CSV, in a way that is
// human-readable and directly editable.
//
// Decoding is deliberately forgiving: the header decides which column holds
// what, missing columns fall back to their documented default (0 for
// numbers, "" for notes), and malformed numeric cells are silently
// normalized to zero. Only a row whose key cannot be read (bad month, empty
// ticker) is dropped. Encoding regenerates the whole file from the book;
// partial writes do not exist.

// Column names of the balance table. Unknown columns are ignored on read
// and not written back.
const (
	colMonth        = "month"
	colBalance      = "balance"
	colContribution = "contribution"
	colNote         = "note"
)

// Column names of the holding table.
const (
	colTicker    = "ticker"
	colShares    = "shares"
	colCostBasis = "cost_basis"
)

// newTableReader returns a csv.Reader configured to accept ragged,
// hand-edited files.
func newTableReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	return cr
}

// columnIndex maps lowercased header names to their position.
func columnIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return index
}

// cell returns the named column of a row, or "" when the column is missing
// from the file or the row is too short.
func cell(row []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// coerceDecimal normalizes a numeric cell, mapping anything unparseable to
// zero.
func coerceDecimal(s string) decimal.Decimal {
	s = strings.TrimPrefix(strings.TrimSpace(s), "$")
	s = strings.ReplaceAll(s, ",", "")
	value, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return value
}

// DecodeBalances reads the balance table from r. Malformed rows never make
// the decode fail; they are normalized or dropped.
func DecodeBalances(r io.Reader) (*BalanceBook, error) {
	rows, err := newTableReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("load error: cannot read balance table: %w", err)
	}

	book := NewBalanceBook()
	if len(rows) == 0 {
		return book, nil
	}
	index := columnIndex(rows[0])
	for i, row := range rows[1:] {
		month, err := ParseMonth(cell(row, index, colMonth))
		if err != nil {
			log.Printf("load warning: dropping balance row %d: %v", i+2, err)
			continue
		}
		book.Upsert(BalanceRecord{
			Month:        month,
			Balance:      USD(coerceDecimal(cell(row, index, colBalance))),
			Contribution: USD(coerceDecimal(cell(row, index, colContribution))),
			Note:         cell(row, index, colNote),
		})
	}
	return book, nil
}

// EncodeBalances writes the whole balance table to w, replacing any prior
// content.
func EncodeBalances(w io.Writer, book *BalanceBook) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{colMonth, colBalance, colContribution, colNote}); err != nil {
		return fmt.Errorf("persist error: cannot write balance table: %w", err)
	}
	for r := range book.Records() {
		row := []string{r.Month.String(), r.Balance.Plain(), r.Contribution.Plain(), r.Note}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("persist error: cannot write balance table: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("persist error: cannot write balance table: %w", err)
	}
	return nil
}

// DecodeHoldings reads the holding table from r. Malformed rows never make
// the decode fail; they are normalized or dropped.
func DecodeHoldings(r io.Reader) (*HoldingBook, error) {
	rows, err := newTableReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("load error: cannot read holding table: %w", err)
	}

	book := NewHoldingBook()
	if len(rows) == 0 {
		return book, nil
	}
	index := columnIndex(rows[0])
	for i, row := range rows[1:] {
		ticker := NormalizeTicker(cell(row, index, colTicker))
		if ticker == "" {
			log.Printf("load warning: dropping holding row %d: empty ticker", i+2)
			continue
		}
		book.Upsert(HoldingRecord{
			Ticker:    ticker,
			Shares:    Q(coerceDecimal(cell(row, index, colShares))),
			CostBasis: USD(coerceDecimal(cell(row, index, colCostBasis))),
			Note:      cell(row, index, colNote),
		})
	}
	return book, nil
}

// EncodeHoldings writes the whole holding table to w, replacing any prior
// content.
func EncodeHoldings(w io.Writer, book *HoldingBook) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{colTicker, colShares, colCostBasis, colNote}); err != nil {
		return fmt.Errorf("persist error: cannot write holding table: %w", err)
	}
	for r := range book.Records() {
		row := []string{r.Ticker, r.Shares.String(), r.CostBasis.Plain(), r.Note}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("persist error: cannot write holding table: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("persist error: cannot write holding table: %w", err)
	}
	return nil
}
