package capgains

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// LedgerEntry is one parsed transaction from the input ledger.
//
// Quantity is always a positive magnitude: the sign of the raw input decides
// whether the entry is a buy or a sell, and sells are stored negated. During
// matching a buy lot's Quantity decrements down to zero as it is consumed.
type LedgerEntry struct {
	Security  string
	Date      Date
	Quantity  Quantity
	UnitPrice Money
}

// Ledger represents a parsed transaction ledger, split into buy-side and
// sell-side lists.
//
// Both lists are in chronological order; entries on the same day keep their
// original input order.
type Ledger struct {
	buys    []*LedgerEntry
	sells   []*LedgerEntry
	skipped int
}

// Buys returns the buy-side entries, oldest first.
func (l *Ledger) Buys() []*LedgerEntry { return l.buys }

// Sells returns the sell-side entries, oldest first.
func (l *Ledger) Sells() []*LedgerEntry { return l.sells }

// Skipped returns the number of input rows that were dropped because they
// were malformed. Skipping is the deliberate tolerance policy for bad rows,
// not an error.
func (l *Ledger) Skipped() int { return l.skipped }

// DecodeLedger reads raw ledger lines from r and returns the parsed Ledger.
//
// Each line holds comma-separated fields `security,date,quantity,unitPrice`
// with the date in YYYY-MM-DD form and quantity/price as locale-invariant
// decimal numbers (exponent notation allowed). There is no header row and
// no quoting support. A row with fewer than 4 fields, an unparseable date,
// or an unparseable number is skipped. Extra fields are ignored.
//
// Quantities are rounded to QuantityPlaces and prices to PricePlaces, half
// away from zero. A negative quantity makes the entry a sell, stored with
// its quantity negated to a positive magnitude.
//
// All monetary values are denominated in the given reporting currency.
func DecodeLedger(r io.Reader, currency string) (*Ledger, error) {
	ledger := &Ledger{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		entry, sell, err := parseEntry(line, currency)
		if err != nil {
			ledger.skipped++
			continue
		}
		if sell {
			ledger.sells = append(ledger.sells, entry)
		} else {
			ledger.buys = append(ledger.buys, entry)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	// Stable sort keeps input order for entries on the same day.
	sort.SliceStable(ledger.buys, func(i, j int) bool {
		return ledger.buys[i].Date.Before(ledger.buys[j].Date)
	})
	sort.SliceStable(ledger.sells, func(i, j int) bool {
		return ledger.sells[i].Date.Before(ledger.sells[j].Date)
	})

	return ledger, nil
}

// parseEntry parses a single raw ledger line. The returned sell flag
// reports whether the raw quantity was negative.
func parseEntry(line, currency string) (entry *LedgerEntry, sell bool, err error) {
	cells := strings.Split(line, ",")
	if len(cells) < 4 {
		return nil, false, fmt.Errorf("want at least 4 fields, got %d", len(cells))
	}

	day, err := ParseDate(cells[1])
	if err != nil {
		return nil, false, err
	}
	qty, err := decimal.NewFromString(cells[2])
	if err != nil {
		return nil, false, fmt.Errorf("invalid quantity %q: %w", cells[2], err)
	}
	price, err := decimal.NewFromString(cells[3])
	if err != nil {
		return nil, false, fmt.Errorf("invalid unit price %q: %w", cells[3], err)
	}

	quantity := Q(qty).Round(QuantityPlaces)
	if quantity.IsNegative() {
		quantity = quantity.Neg()
		sell = true
	}

	return &LedgerEntry{
		Security:  cells[0],
		Date:      day,
		Quantity:  quantity,
		UnitPrice: M(price, currency).Round(PricePlaces),
	}, sell, nil
}
