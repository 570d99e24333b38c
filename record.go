package fundtrack

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// OptionType qualifies a disclosed position as equity or an option on it.
type OptionType int

const (
	NoOption OptionType = iota
	Put
	Call
)

// ParseOptionType parses the option type column of a filing row.
// The column is empty for plain equity positions.
func ParseOptionType(s string) (OptionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return NoOption, nil
	case "put":
		return Put, nil
	case "call":
		return Call, nil
	default:
		return NoOption, fmt.Errorf("unknown option type %q", s)
	}
}

func (o OptionType) String() string {
	switch o {
	case NoOption:
		return ""
	case Put:
		return "put"
	case Call:
		return "call"
	default:
		panic(fmt.Sprintf("unknown option type %d", int(o)))
	}
}

// IsOption returns true for put and call positions.
func (o OptionType) IsOption() bool { return o == Put || o == Call }

// HoldingRecord is one disclosed position of a fund at one reporting period.
//
// Numeric fields that the filing leaves blank stay null (decimal.NullDecimal
// with Valid=false), never zero: a blank share count is unknown, a zero share
// count is a closed position. Percentage is guaranteed present, rows without
// it are dropped at parse time.
type HoldingRecord struct {
	Quarter    Quarter // reporting period, e.g. "Q1 2023"
	QuarterEnd Date    // calendar end of Quarter
	Filed      Date    // date the disclosure was filed
	Ticker     string  // raw identifier as disclosed
	Company    string
	Class      string // share class, e.g. "COM", "CL A"
	CUSIP      string // 9-character security identifier
	Value      decimal.NullDecimal // reported value in raw currency units
	Percentage Percent             // percent of portfolio in [0..100]
	Shares     decimal.NullDecimal
	Principal  decimal.NullDecimal
	Option     OptionType
}

// SeriesID is the true identity of the record's time series: the raw ticker,
// suffixed when the position is an option. An equity position and a put on
// the same ticker are distinct series.
func (r HoldingRecord) SeriesID() string {
	switch r.Option {
	case Put:
		return r.Ticker + " (put)"
	case Call:
		return r.Ticker + " (call)"
	default:
		return r.Ticker
	}
}

// ValueMoney returns the reported value as displayable Money, zero when null.
func (r HoldingRecord) ValueMoney() Money {
	if !r.Value.Valid {
		return USD(decimal.Zero)
	}
	return USD(r.Value.Decimal)
}

// SharesQuantity returns the share count as a Quantity, zero when null.
func (r HoldingRecord) SharesQuantity() Quantity {
	if !r.Shares.Valid {
		return NewQuantity(decimal.Zero)
	}
	return NewQuantity(r.Shares.Decimal)
}
