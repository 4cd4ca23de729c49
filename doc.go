// Package privfolio provides the types and functions behind a small,
// single-user personal finance tracker. It is designed to be local-first:
// all state lives in two human-readable CSV tables that the user can edit
// directly.
//
// The core functionalities include:
//   - Record Store: monthly account balances keyed by month and equity
//     holdings keyed by ticker, mutated only through upsert and delete
//     operations that keep at most one record per key.
//   - Quote Resolution: best-effort current prices and dividend history
//     from a market data provider, with an ordered fallback chain and a
//     time-bounded cache. The provider is treated as fully unreliable;
//     failures surface as "unavailable", never as errors.
//   - Valuation Reports: market value, unrealized profit and loss, balance
//     trend and dashboard metrics derived from the two tables and live
//     quotes.
//   - Data Persistence: encoding and decoding of both tables to and from
//     CSV, normalizing malformed cells instead of failing.
//
// This package serves as the foundational logic for the `pft` command-line
// tool.
package privfolio
