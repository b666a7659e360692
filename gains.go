package capgains

// CapitalGainEntry is one realized matching event between a sale and a
// portion (or all) of a buy lot. Entries are created by Match and are
// immutable thereafter.
//
// CostBasis and Proceeds are computed from the unrounded matched quantity
// and unit prices, then rounded to CashPlaces half away from zero. Gain is
// the exact difference Proceeds - CostBasis of the rounded amounts, so for
// any group of entries the totals identity
// sum(Proceeds) - sum(CostBasis) == sum(Gain) holds exactly.
type CapitalGainEntry struct {
	Security        string
	AcquisitionDate Date
	SaleDate        Date
	Quantity        Quantity
	UnitBuyPrice    Money
	UnitSellPrice   Money
	CostBasis       Money
	Proceeds        Money
	Gain            Money
}

// newCapitalGainEntry realizes the matched quantity between a buy lot and a
// sell, capturing prices and dates from both sides.
func newCapitalGainEntry(buy, sell *LedgerEntry, matched Quantity) CapitalGainEntry {
	costBasis := buy.UnitPrice.Mul(matched).Round(CashPlaces)
	proceeds := sell.UnitPrice.Mul(matched).Round(CashPlaces)
	return CapitalGainEntry{
		Security:        sell.Security,
		AcquisitionDate: buy.Date,
		SaleDate:        sell.Date,
		Quantity:        matched,
		UnitBuyPrice:    buy.UnitPrice,
		UnitSellPrice:   sell.UnitPrice,
		CostBasis:       costBasis,
		Proceeds:        proceeds,
		Gain:            proceeds.Sub(costBasis),
	}
}

// LongTerm reports whether the entry qualifies as a long-term gain.
//
// The rule is an anniversary-date approximation of the "held more than one
// year" test, not an exact day count: an entry is long-term if the sale
// year is at least two years after the acquisition year, or if the sale is
// in a later year with month and day on or past the acquisition month and
// day. Selling exactly on the first anniversary is long-term. This is a
// known limitation kept for compatibility, not a bug.
func (e CapitalGainEntry) LongTerm() bool {
	acq, sale := e.AcquisitionDate, e.SaleDate
	if sale.Year() > acq.Year()+1 {
		return true
	}
	return sale.Year() > acq.Year() && sale.Month() >= acq.Month() && sale.Day() >= acq.Day()
}

// Classify splits entries into long-term and short-term buckets using the
// anniversary holding-period rule. Entries with a zero matched quantity are
// excluded from both buckets.
func Classify(entries []CapitalGainEntry) (longTerm, shortTerm []CapitalGainEntry) {
	for _, e := range entries {
		if !e.Quantity.IsPositive() {
			continue
		}
		if e.LongTerm() {
			longTerm = append(longTerm, e)
		} else {
			shortTerm = append(shortTerm, e)
		}
	}
	return longTerm, shortTerm
}
