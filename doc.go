// Package patrimoine reconstructs the value of a personal net worth over
// time from discrete, irregularly dated observations. It is designed to be
// local-first and auditable: all inputs are plain data files the user owns.
//
// Two kinds of observations feed the engine:
//   - manual valuations: an amount directly entered for an asset, like the
//     balance of a savings account or an estimate of a property value.
//   - positions: the number of shares held of a quoted asset, valued by
//     multiplying with externally supplied daily closing prices.
//
// The core functionalities include:
//   - Ledgers: append-only stores of dated observations, one value per
//     (asset, day), with "as of" queries that forward-fill the last known
//     value.
//   - Quote table: per-ticker daily closing prices, possibly gapped on
//     non-trading days, filled by an external provider.
//   - Reconstruction: a pure function combining the asset registry, both
//     ledgers and the quote table into aligned total, per-category and
//     per-asset value series suitable for charting.
//   - Data Persistence: encoding and decoding of all stores to and from
//     human-readable, version-controllable JSONL files.
//
// This package serves as the foundational logic for the `pat` command-line
// tool.
package patrimoine
