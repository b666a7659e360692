// Package renderer turns capgains run results into markdown summaries for
// terminal display.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/capgains"
)

// RunMarkdown renders a summary of one report generation run: the bucket
// totals, the remaining holdings, and the reports produced.
func RunMarkdown(run *capgains.Run) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Capital Gains Report %q\n\n", run.Base)

	if run.Skipped > 0 {
		fmt.Fprintf(&b, "%d malformed input row(s) skipped.\n\n", run.Skipped)
	}

	fmt.Fprint(&b, "## Realized Gains\n\n")
	fmt.Fprintln(&b, "| Term | Entries | Proceeds | Cost Basis | Gain |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|")
	writeBucket(&b, "Long-term", run.LongTerm, run.LongTotals)
	writeBucket(&b, "Short-term", run.ShortTerm, run.ShortTotals)

	fmt.Fprint(&b, "\n## Remaining Holdings\n\n")
	if len(run.Remainder) == 0 {
		fmt.Fprintln(&b, "All buy lots fully consumed.")
	} else {
		fmt.Fprintln(&b, "| Security | Acquired | Quantity | Unit Price |")
		fmt.Fprintln(&b, "|:---|:---|---:|---:|")
		for _, lot := range run.Remainder {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
				lot.Security, lot.Date, lot.Quantity, lot.UnitPrice)
		}
	}

	fmt.Fprint(&b, "\n## Reports\n\n")
	for _, rep := range run.Reports {
		fmt.Fprintf(&b, "* %s (%d rows)\n", rep.Name, len(rep.Rows))
	}

	return b.String()
}

func writeBucket(b *strings.Builder, label string, entries []capgains.CapitalGainEntry, totals capgains.Totals) {
	if len(entries) == 0 {
		fmt.Fprintf(b, "| %s | 0 | - | - | - |\n", label)
		return
	}
	fmt.Fprintf(b, "| %s | %d | %s | %s | %s |\n",
		label, len(entries),
		totals.Proceeds.String(),
		totals.CostBasis.String(),
		totals.Gain.SignedString(),
	)
}
