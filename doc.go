// Package capgains computes realized capital gains and losses from a
// chronological securities ledger and renders them as Form 8949 style
// CSV reports.
//
// The core functionalities include:
//   - Ledger Parsing: Reading raw comma-separated transaction lines into
//     validated entries, split into buy-side and sell-side lists.
//   - Lot Matching: Realizing gains by matching each sale against the
//     earliest still-open buy lot of the same security (strict FIFO),
//     splitting lots as needed and tracking the unconsumed remainder.
//   - Term Classification: Labelling each realized gain as short-term or
//     long-term using an anniversary-date holding-period rule.
//   - Report Formatting: Rendering classified entries and remaining lots
//     into fixed-layout CSV rows with an exact totals-consistency contract.
//
// All arithmetic is exact decimal arithmetic; rounding is
// half-away-from-zero throughout. Quantities and unit prices are normalized
// to 4 fractional digits on parse, currency amounts to 2 fractional digits
// when an entry is realized.
//
// This package is the foundational logic for the `cgs` command-line tool.
// It performs no file I/O itself: input is an io.Reader of ledger lines and
// output is a set of named reports handed to a ReportSink.
package capgains
