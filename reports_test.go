package capgains

import (
	"errors"
	"strings"
	"testing"
)

func realized(acq, sale string, qty, buyPrice, sellPrice float64) CapitalGainEntry {
	return newCapitalGainEntry(
		entry("AAPL", acq, qty, buyPrice),
		entry("AAPL", sale, qty, sellPrice),
		Q(qty),
	)
}

func TestGainsReport_Layout(t *testing.T) {
	entries := []CapitalGainEntry{
		realized("2020-01-01", "2020-02-01", 40, 10, 15),
		realized("2020-01-01", "2020-03-01", 10, 10, 8), // a loss
	}

	report, err := GainsReport("f8949_test_shortterm.csv", entries)
	if err != nil {
		t.Fatalf("GainsReport() error = %v", err)
	}

	want := []string{
		GainsHeader,
		"40 AAPL,2020-01-01,2020-02-01,600.00,400.00,,,200.00",
		"10 AAPL,2020-01-01,2020-03-01,80.00,100.00,,,(20.00)",
		",,,,,,,,",
		"TOTALS,,,680.00,500.00,,,180.00",
	}
	if len(report.Rows) != len(want) {
		t.Fatalf("got %d rows, want %d:\n%s", len(report.Rows), len(want), strings.Join(report.Rows, "\n"))
	}
	for i, row := range report.Rows {
		if row != want[i] {
			t.Errorf("row %d = %q, want %q", i, row, want[i])
		}
	}
}

func TestGainsReport_CorruptedGainIsFatal(t *testing.T) {
	entries := []CapitalGainEntry{realized("2020-01-01", "2020-02-01", 40, 10, 15)}
	entries[0].Gain = entries[0].Gain.Add(M(1, "USD"))

	_, err := GainsReport("f8949_test_shortterm.csv", entries)
	if !errors.Is(err, ErrTotalsInconsistent) {
		t.Fatalf("error = %v, want ErrTotalsInconsistent", err)
	}
}

func TestRemainderReport(t *testing.T) {
	remainder := []*LedgerEntry{
		entry("AAPL", "2020-01-01", 60, 10.5),
		entry("MSFT", "2021-05-01", 3.5, 200),
	}

	report := RemainderReport("test_remainder.csv", remainder)
	want := []string{
		RemainderHeader,
		"AAPL,2020-01-01,60,10.5",
		"MSFT,2021-05-01,3.5,200",
	}
	if len(report.Rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(report.Rows), len(want))
	}
	for i, row := range report.Rows {
		if row != want[i] {
			t.Errorf("row %d = %q, want %q", i, row, want[i])
		}
	}
}

func TestGenerateReports_EndToEnd(t *testing.T) {
	input := strings.Join([]string{
		"AAPL,2020-01-01,100,10",
		"AAPL,2020-02-01,-40,15",  // short-term: held one month
		"AAPL,2021-02-01,-30,20",  // long-term: held past the anniversary
		"not a valid row at all",  // skipped
	}, "\n")

	run, err := GenerateReports(strings.NewReader(input), "trades", "USD")
	if err != nil {
		t.Fatalf("GenerateReports() error = %v", err)
	}

	if run.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", run.Skipped)
	}
	if len(run.ShortTerm) != 1 || len(run.LongTerm) != 1 {
		t.Fatalf("buckets = %d short, %d long, want 1 and 1", len(run.ShortTerm), len(run.LongTerm))
	}
	if len(run.Remainder) != 1 {
		t.Fatalf("expected 1 remainder lot, got %d", len(run.Remainder))
	}
	if !run.Remainder[0].Quantity.Equal(Q(30)) {
		t.Errorf("remainder quantity = %s, want 30", run.Remainder[0].Quantity)
	}

	var names []string
	for _, rep := range run.Reports {
		names = append(names, rep.Name)
	}
	want := "f8949_trades_longterm.csv,f8949_trades_shortterm.csv,trades_remainder.csv"
	if got := strings.Join(names, ","); got != want {
		t.Errorf("report names = %s, want %s", got, want)
	}

	if got, want := run.ShortTotals.Gain.StringFixed(), "200.00"; got != want {
		t.Errorf("short-term total gain = %s, want %s", got, want)
	}
	if got, want := run.LongTotals.Gain.StringFixed(), "300.00"; got != want {
		t.Errorf("long-term total gain = %s, want %s", got, want)
	}
}

func TestGenerateReports_EmptyBucketOmitsReport(t *testing.T) {
	input := strings.Join([]string{
		"AAPL,2020-01-01,100,10",
		"AAPL,2020-02-01,-40,15", // short-term only
	}, "\n")

	run, err := GenerateReports(strings.NewReader(input), "trades", "USD")
	if err != nil {
		t.Fatalf("GenerateReports() error = %v", err)
	}
	if len(run.Reports) != 2 {
		t.Fatalf("expected short-term and remainder reports only, got %d reports", len(run.Reports))
	}
	for _, rep := range run.Reports {
		if strings.Contains(rep.Name, "longterm") {
			t.Errorf("long-term report %q must not be produced for an empty bucket", rep.Name)
		}
	}
}

func TestGenerateReports_ShortfallProducesNoReports(t *testing.T) {
	input := strings.Join([]string{
		"AAPL,2020-01-01,100,10",
		"AAPL,2020-02-01,-40,15",
		"AAPL,2021-02-01,-70,20", // only 60 left: shortfall of 10
	}, "\n")

	run, err := GenerateReports(strings.NewReader(input), "trades", "USD")
	if err == nil {
		t.Fatalf("GenerateReports() expected an error, got %v", run)
	}
	if run != nil {
		t.Errorf("no partial run may be returned on failure")
	}

	var shortfall *ShortfallError
	if !errors.As(err, &shortfall) {
		t.Fatalf("error = %v, want *ShortfallError", err)
	}
	if !shortfall.Quantity.Equal(Q(10)) {
		t.Errorf("shortfall quantity = %s, want 10", shortfall.Quantity)
	}
}

func TestGenerateReports_Idempotent(t *testing.T) {
	input := strings.Join([]string{
		"AAPL,2020-01-01,100,10",
		"MSFT,2020-01-15,50,100",
		"AAPL,2020-02-01,-40,15",
		"MSFT,2021-03-01,-50,120",
	}, "\n")

	first, err := GenerateReports(strings.NewReader(input), "trades", "USD")
	if err != nil {
		t.Fatalf("GenerateReports() error = %v", err)
	}
	second, err := GenerateReports(strings.NewReader(input), "trades", "USD")
	if err != nil {
		t.Fatalf("GenerateReports() error = %v", err)
	}

	if len(first.Reports) != len(second.Reports) {
		t.Fatalf("runs produced %d and %d reports", len(first.Reports), len(second.Reports))
	}
	for i := range first.Reports {
		a, b := first.Reports[i], second.Reports[i]
		if a.Name != b.Name || strings.Join(a.Rows, "\n") != strings.Join(b.Rows, "\n") {
			t.Errorf("report %d differs between identical runs", i)
		}
	}
}

func TestEncodeReport(t *testing.T) {
	var b strings.Builder
	rep := Report{Name: "x.csv", Rows: []string{"a,b", "c,d"}}
	if err := EncodeReport(&b, rep); err != nil {
		t.Fatalf("EncodeReport() error = %v", err)
	}
	if got, want := b.String(), "a,b\nc,d\n"; got != want {
		t.Errorf("encoded = %q, want %q", got, want)
	}
}
