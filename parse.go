package fundtrack

import (
	"fmt"
	"log"
	"strings"

	"github.com/shopspring/decimal"
)

// Filing describes one disclosure in a fund's filing index.
type Filing struct {
	Quarter Quarter
	Filed   Date
	ID      string
}

// FilingRows couples a filing descriptor with its raw holdings payload.
// Each row is the loosely-typed cell list decoded from the source JSON, in
// column order: ticker, company name, class, CUSIP, value ($000), percentage,
// shares, principal, option type.
type FilingRows struct {
	Filing Filing
	Rows   [][]any
}

// number of columns a payload row must carry
const payloadColumns = 9

// MalformedPayloadError reports a filing row that is structurally
// incompatible with the expected payload layout. Such rows are skipped,
// they do not abort the parse.
type MalformedPayloadError struct {
	FilingID string
	Row      int
	Reason   string
}

func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("malformed payload row %d in filing %s: %s", e.Row, e.FilingID, e.Reason)
}

// ParseHoldings converts raw filing payloads into typed holding records.
//
// Policy: numeric cells that are absent or non-numeric stay null, not zero;
// the reported value is scaled from $000 to raw currency units; rows without
// a percentage are dropped, the rest of the pipeline relies on percentage
// being always present. Structurally broken rows are reported in the
// returned diagnostics and logged, never fatal.
func ParseHoldings(filings []FilingRows) ([]HoldingRecord, []*MalformedPayloadError) {
	var records []HoldingRecord
	var diags []*MalformedPayloadError

	for _, f := range filings {
		for i, row := range f.Rows {
			rec, err := parseRow(f.Filing, i, row)
			if err != nil {
				log.Printf("skipping %v", err)
				diags = append(diags, err)
				continue
			}
			if rec == nil {
				continue // no percentage, silently dropped
			}
			records = append(records, *rec)
		}
	}
	return records, diags
}

var thousand = decimal.NewFromInt(1000)

// parseRow converts a single payload row. It returns (nil, nil) for rows
// dropped by the percentage policy.
func parseRow(f Filing, i int, row []any) (*HoldingRecord, *MalformedPayloadError) {
	if len(row) < payloadColumns {
		return nil, &MalformedPayloadError{
			FilingID: f.ID,
			Row:      i,
			Reason:   fmt.Sprintf("got %d columns, want %d", len(row), payloadColumns),
		}
	}

	ticker := cellString(row[0])
	if ticker == "" {
		return nil, &MalformedPayloadError{FilingID: f.ID, Row: i, Reason: "empty ticker"}
	}

	option, err := ParseOptionType(cellString(row[8]))
	if err != nil {
		return nil, &MalformedPayloadError{FilingID: f.ID, Row: i, Reason: err.Error()}
	}

	percentage := cellNumber(row[5])
	if !percentage.Valid {
		return nil, nil
	}

	value := cellNumber(row[4])
	if value.Valid {
		// reported in thousands of dollars
		value.Decimal = value.Decimal.Mul(thousand)
	}

	return &HoldingRecord{
		Quarter:    f.Quarter,
		QuarterEnd: f.Quarter.End(),
		Filed:      f.Filed,
		Ticker:     ticker,
		Company:    cellString(row[1]),
		Class:      cellString(row[2]),
		CUSIP:      cellString(row[3]),
		Value:      value,
		Percentage: Percent(percentage.Decimal.InexactFloat64()),
		Shares:     cellNumber(row[6]),
		Principal:  cellNumber(row[7]),
		Option:     option,
	}, nil
}

// cellString reads a cell as a trimmed string; non-strings become "".
func cellString(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// cellNumber reads a cell as a number. Absent or non-numeric cells yield a
// null decimal, not zero.
func cellNumber(v any) decimal.NullDecimal {
	switch n := v.(type) {
	case nil:
		return decimal.NullDecimal{}
	case float64:
		return decimal.NullDecimal{Decimal: decimal.NewFromFloat(n), Valid: true}
	case int:
		return decimal.NullDecimal{Decimal: decimal.NewFromInt(int64(n)), Valid: true}
	case int64:
		return decimal.NullDecimal{Decimal: decimal.NewFromInt(n), Valid: true}
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(n), ",", "")
		if s == "" {
			return decimal.NullDecimal{}
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.NullDecimal{}
		}
		return decimal.NullDecimal{Decimal: d, Valid: true}
	default:
		return decimal.NullDecimal{}
	}
}
