package capgains

import "fmt"

// ShortfallError reports a sale that could not be fully covered by buy lots
// acquired on or before the sale date. It is a data-consistency failure:
// the ledger holds more sell quantity than available buy quantity, and the
// whole run must abort rather than produce an incorrect report.
type ShortfallError struct {
	Security string
	Date     Date     // sale date
	Quantity Quantity // unmatched sell quantity
}

func (e *ShortfallError) Error() string {
	return fmt.Sprintf("a sale of %s units of %s on %s has no buy quantity left from before the sale date",
		e.Quantity, e.Security, e.Date)
}

// Match realizes capital gains by matching each sell, oldest first, against
// the earliest still-open buy lot of the same security (strict FIFO per
// security). Both slices must be in chronological order, as produced by
// DecodeLedger.
//
// Matching consumes quantity from the buy entries in place: a lot's
// Quantity decrements to zero as it is matched and a closed lot is never
// reused. A lot acquired strictly after the sale date is never eligible;
// if a sell retains unmatched quantity once eligible lots are exhausted,
// Match aborts with a *ShortfallError and no entries are returned.
//
// The returned remainder holds the buy entries that still have quantity
// open after all sells are processed.
func Match(buys, sells []*LedgerEntry) (entries []CapitalGainEntry, remainder []*LedgerEntry, err error) {
	for _, sell := range sells {
		for sell.Quantity.IsPositive() {
			lot := nextOpenLot(buys, sell)
			if lot == nil {
				return nil, nil, &ShortfallError{
					Security: sell.Security,
					Date:     sell.Date,
					Quantity: sell.Quantity,
				}
			}

			matched := sell.Quantity.Min(lot.Quantity)
			entries = append(entries, newCapitalGainEntry(lot, sell, matched))
			lot.Quantity = lot.Quantity.Sub(matched)
			sell.Quantity = sell.Quantity.Sub(matched)
		}
	}

	for _, buy := range buys {
		if buy.Quantity.IsPositive() {
			remainder = append(remainder, buy)
		}
	}
	return entries, remainder, nil
}

// nextOpenLot returns the earliest buy lot eligible to cover the sell: same
// security, quantity still open, and acquired on or before the sale date.
func nextOpenLot(buys []*LedgerEntry, sell *LedgerEntry) *LedgerEntry {
	for _, buy := range buys {
		if buy.Security != sell.Security || !buy.Quantity.IsPositive() {
			continue
		}
		if buy.Date.After(sell.Date) {
			// Lots are sorted by date: every remaining lot is also too late.
			return nil
		}
		return buy
	}
	return nil
}
