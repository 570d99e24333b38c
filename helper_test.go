package fundtrack

import "github.com/shopspring/decimal"

// mustQuarter parses a quarter label for tests.
func mustQuarter(label string) Quarter {
	q, err := ParseQuarter(label)
	if err != nil {
		panic(err.Error())
	}
	return q
}

// num is a helper for tests to create a valid nullable decimal from a const.
func num(v float64) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.NewFromFloat(v), Valid: true}
}

// null is a helper for tests to create a null decimal.
func null() decimal.NullDecimal { return decimal.NullDecimal{} }

// holding builds a minimal disclosed record for tests.
func holding(label, ticker string, pct float64) HoldingRecord {
	q := mustQuarter(label)
	return HoldingRecord{
		Quarter:    q,
		QuarterEnd: q.End(),
		Filed:      q.End().Add(45),
		Ticker:     ticker,
		Company:    ticker + " Inc",
		Class:      "COM",
		CUSIP:      "037833100",
		Value:      num(1000 * pct),
		Percentage: Percent(pct),
		Shares:     num(100 * pct),
	}
}

// asOption returns a copy of the record marked as an option position.
func asOption(r HoldingRecord, o OptionType) HoldingRecord {
	r.Option = o
	return r
}
