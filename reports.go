package capgains

import (
	"errors"
	"fmt"
	"io"
)

// GainsHeader is the fixed column header of a Form 8949 gains report.
const GainsHeader = "DESCRIPTION OF PROPERTY,DATE ACQUIRED,DATE SOLD OR DISPOSED,PROCEEDS,COST OR OTHER BASIS,CODE(S) FROM INSTRUCTIONS,AMOUNT OF ADJUSTMENT,GAIN OR (LOSS)"

// RemainderHeader is the fixed column header of the remainder report.
const RemainderHeader = "DESCRIPTION OF PROPERTY,DATE ACQUIRED,QUANTITY,UNIT PRICE"

// separatorRow is the blank row between the last entry and the totals row.
const separatorRow = ",,,,,,,,"

// ErrTotalsInconsistent signals that the stored proceeds, cost basis and
// gain of a report bucket do not satisfy the exact identity
// sum(proceeds) - sum(cost basis) == sum(gain). It indicates a bug in
// rounding or matching, never bad input, and is not recoverable.
var ErrTotalsInconsistent = errors.New("sum(proceeds) - sum(cost basis) != sum(gain)")

// Report is a named ordered sequence of CSV text rows, ready to be handed
// to a ReportSink.
type Report struct {
	Name string
	Rows []string
}

// ReportSink receives named row sequences for persistence. Implementations
// live outside this package; the core never touches files.
type ReportSink interface {
	Write(Report) error
}

// Totals aggregates the monetary amounts of a report bucket.
type Totals struct {
	Proceeds  Money
	CostBasis Money
	Gain      Money
}

// SumEntries adds up the stored amounts of a bucket and verifies the totals
// identity, returning ErrTotalsInconsistent on violation.
func SumEntries(entries []CapitalGainEntry) (Totals, error) {
	var t Totals
	for _, e := range entries {
		t.Proceeds = t.Proceeds.Add(e.Proceeds)
		t.CostBasis = t.CostBasis.Add(e.CostBasis)
		t.Gain = t.Gain.Add(e.Gain)
	}
	if !t.Proceeds.Sub(t.CostBasis).Equal(t.Gain) {
		return Totals{}, fmt.Errorf("internal error in capital gains report: %w", ErrTotalsInconsistent)
	}
	return t, nil
}

// GainsReport renders one classified bucket into CSV rows: the fixed
// header, one row per entry, a blank separator row, and a validated totals
// row.
func GainsReport(name string, entries []CapitalGainEntry) (Report, error) {
	totals, err := SumEntries(entries)
	if err != nil {
		return Report{}, err
	}

	rows := make([]string, 0, len(entries)+3)
	rows = append(rows, GainsHeader)
	for _, e := range entries {
		rows = append(rows, gainRow(e))
	}
	rows = append(rows, separatorRow)
	rows = append(rows, fmt.Sprintf("TOTALS,,,%s,%s,,,%s",
		totals.Proceeds.StringFixed(),
		totals.CostBasis.StringFixed(),
		totals.Gain.StringFixed(),
	))

	return Report{Name: name, Rows: rows}, nil
}

// gainRow renders one realized entry. The description is
// "{quantity} {security}"; the gain is shown as a plain number when
// non-negative, or as a parenthesized absolute value when negative
// (accounting convention for losses).
func gainRow(e CapitalGainEntry) string {
	gain := e.Gain.StringFixed()
	if e.Gain.IsNegative() {
		gain = "(" + e.Gain.Abs().StringFixed() + ")"
	}
	return fmt.Sprintf("%s %s,%s,%s,%s,%s,,,%s",
		e.Quantity, e.Security,
		e.AcquisitionDate, e.SaleDate,
		e.Proceeds.StringFixed(), e.CostBasis.StringFixed(),
		gain,
	)
}

// RemainderReport renders the buy lots that still hold quantity after
// matching. There is no totals row: no gain is computed here.
func RemainderReport(name string, remainder []*LedgerEntry) Report {
	rows := make([]string, 0, len(remainder)+1)
	rows = append(rows, RemainderHeader)
	for _, lot := range remainder {
		rows = append(rows, fmt.Sprintf("%s,%s,%s,%s",
			lot.Security, lot.Date, lot.Quantity, lot.UnitPrice.Plain()))
	}
	return Report{Name: name, Rows: rows}
}

// Run is the complete result of one report generation: the classified
// buckets, their totals, the remainder holdings, and the rendered reports.
type Run struct {
	Base      string // base name the report file names derive from
	Currency  string
	Skipped   int // malformed input rows dropped by the parser
	LongTerm  []CapitalGainEntry
	ShortTerm []CapitalGainEntry
	Remainder []*LedgerEntry

	LongTotals  Totals
	ShortTotals Totals

	Reports []Report
}

// GenerateReports runs the whole pipeline on the raw ledger lines read from
// r: parse, FIFO-match, classify, and format. The base name gives the
// report names `f8949_<base>_longterm.csv`, `f8949_<base>_shortterm.csv`
// and `<base>_remainder.csv`; a gains report is only produced for a
// non-empty bucket, the remainder report always.
//
// The run is a pure function of its input: no files are read or written.
// On any fatal error (shortfall, totals inconsistency) no reports are
// returned at all.
func GenerateReports(r io.Reader, base, currency string) (*Run, error) {
	ledger, err := DecodeLedger(r, currency)
	if err != nil {
		return nil, err
	}

	entries, remainder, err := Match(ledger.Buys(), ledger.Sells())
	if err != nil {
		return nil, err
	}

	run := &Run{
		Base:      base,
		Currency:  currency,
		Skipped:   ledger.Skipped(),
		Remainder: remainder,
	}
	run.LongTerm, run.ShortTerm = Classify(entries)

	if len(run.LongTerm) > 0 {
		if run.LongTotals, err = SumEntries(run.LongTerm); err != nil {
			return nil, err
		}
		report, err := GainsReport(fmt.Sprintf("f8949_%s_longterm.csv", base), run.LongTerm)
		if err != nil {
			return nil, err
		}
		run.Reports = append(run.Reports, report)
	}
	if len(run.ShortTerm) > 0 {
		if run.ShortTotals, err = SumEntries(run.ShortTerm); err != nil {
			return nil, err
		}
		report, err := GainsReport(fmt.Sprintf("f8949_%s_shortterm.csv", base), run.ShortTerm)
		if err != nil {
			return nil, err
		}
		run.Reports = append(run.Reports, report)
	}
	run.Reports = append(run.Reports, RemainderReport(fmt.Sprintf("%s_remainder.csv", base), remainder))

	return run, nil
}
