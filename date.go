package fundtrack

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02"

const readDateFormat = "2006-1-2" // permissive read format (allows single-digit month/day)

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// String formats the date in ISO-8601.
func (d Date) String() string { return d.time().Format(DateFormat) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Format returns a textual representation of the date value formatted
// according to the layout defined by the argument. See [time.Format].
func (d Date) Format(format string) string { return d.time().Format(format) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// Compare returns -1, 0 or 1 depending on whether d is before, equal to, or after x.
func (d Date) Compare(x Date) int { return d.time().Compare(x.time()) }

// ParseDate parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
func ParseDate(str string) (Date, error) {
	str = strings.TrimSpace(str)
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		// filing indexes sometimes carry a full timestamp
		on, err = time.Parse(time.RFC3339, str)
	}
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return NewDate(on.Date()), nil
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return fmt.Errorf("invalid date %q, want format %q: %w", str, DateFormat, err)
	}
	*j = NewDate(on.Date())
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)

// Quarter identifies a reporting period, e.g. "Q1 2023".
type Quarter struct {
	y int // year
	q int // quarter number in [1..4]
}

// NewQuarter returns the quarter for the given year and quarter number.
func NewQuarter(year, num int) (Quarter, error) {
	if num < 1 || num > 4 {
		return Quarter{}, fmt.Errorf("invalid quarter number %d, want 1..4", num)
	}
	return Quarter{y: year, q: num}, nil
}

// ParseQuarter parses a reporting period label like "Q1 2023".
func ParseQuarter(label string) (Quarter, error) {
	fields := strings.Fields(strings.TrimSpace(label))
	if len(fields) != 2 {
		return Quarter{}, fmt.Errorf("invalid quarter label %q, want e.g. %q", label, "Q1 2023")
	}
	qs := strings.ToUpper(fields[0])
	if len(qs) != 2 || qs[0] != 'Q' {
		return Quarter{}, fmt.Errorf("invalid quarter %q in label %q", fields[0], label)
	}
	num, err := strconv.Atoi(qs[1:])
	if err != nil || num < 1 || num > 4 {
		return Quarter{}, fmt.Errorf("invalid quarter number %q in label %q", fields[0], label)
	}
	year, err := strconv.Atoi(fields[1])
	if err != nil {
		return Quarter{}, fmt.Errorf("invalid year %q in label %q: %w", fields[1], label, err)
	}
	return Quarter{y: year, q: num}, nil
}

// Year returns the quarter's year.
func (q Quarter) Year() int { return q.y }

// Num returns the quarter number in [1..4].
func (q Quarter) Num() int { return q.q }

// IsZero returns true if the quarter is the zero value.
func (q Quarter) IsZero() bool { return q.y == 0 && q.q == 0 }

// String formats the quarter as a reporting period label, e.g. "Q3 2024".
func (q Quarter) String() string { return fmt.Sprintf("Q%d %d", q.q, q.y) }

// End returns the calendar end of the quarter: Q1->Mar 31, Q2->Jun 30,
// Q3->Sep 30, Q4->Dec 31. All records of a reporting period map to this
// single date, which makes quarters uniformly spaced on the time axis
// (filing dates are not).
func (q Quarter) End() Date {
	// last day of month 3*q is day 0 of month 3*q+1
	return NewDate(q.y, time.Month(3*q.q+1), 0)
}

// QuarterOf returns the quarter containing the given date.
func QuarterOf(d Date) Quarter {
	return Quarter{y: d.Year(), q: (int(d.Month())-1)/3 + 1}
}

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains returns true if date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }
