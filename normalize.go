package fundtrack

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Normalize reconciles sparse, irregularly-reported holding records onto the
// shared quarter axis and returns the resulting table.
//
// The axis is the sorted set of distinct quarter ends observed across all
// input records. Within each series' observed lifespan [first, last], a
// quarter with no disclosure gets a synthesized zero row: a holding that was
// sold and later repurchased shows up as explicit zeros in between instead
// of silently vanishing from the chart. Quarters outside the lifespan stay
// absent, a series is not assumed to exist before its first sighting or
// after its last.
//
// Zero input records yield an empty table, not an error.
func Normalize(records []HoldingRecord) *Table {
	// Re-derive the computed fields so that normalization is total on any
	// well-formed record source, including re-running on its own output.
	axisSet := make(map[Date]struct{})
	// representative period label and filed date per axis quarter,
	// first encountered wins
	periods := make(map[Date]Quarter)
	filed := make(map[Date]Date)

	bySeries := make(map[string][]HoldingRecord)
	var order []string // series in first-encountered order

	for _, r := range records {
		r.QuarterEnd = r.Quarter.End()
		id := r.SeriesID()

		if _, ok := axisSet[r.QuarterEnd]; !ok {
			axisSet[r.QuarterEnd] = struct{}{}
			periods[r.QuarterEnd] = r.Quarter
			filed[r.QuarterEnd] = r.Filed
		}
		if _, ok := bySeries[id]; !ok {
			order = append(order, id)
		}
		bySeries[id] = append(bySeries[id], r)
	}

	axis := make([]Date, 0, len(axisSet))
	for d := range axisSet {
		axis = append(axis, d)
	}
	slices.SortFunc(axis, Date.Compare)

	// Single-pass accumulation into a fresh slice, one series at a time.
	out := make([]HoldingRecord, 0, len(records))
	for _, id := range order {
		out = appendSeries(out, bySeries[id], axis, periods, filed)
	}
	return newTable(out)
}

// appendSeries appends the gap-filled rows of one series to dst.
func appendSeries(dst, group []HoldingRecord, axis []Date, periods map[Date]Quarter, filed map[Date]Date) []HoldingRecord {
	at := make(map[Date]HoldingRecord, len(group))
	var minQ, maxQ Date
	for _, r := range group {
		if _, dup := at[r.QuarterEnd]; !dup {
			// duplicate disclosures for one quarter are not expected;
			// keep the first encountered
			at[r.QuarterEnd] = r
		}
		if minQ.IsZero() || r.QuarterEnd.Before(minQ) {
			minQ = r.QuarterEnd
		}
		if r.QuarterEnd.After(maxQ) {
			maxQ = r.QuarterEnd
		}
	}

	// Metadata for synthesized rows comes from the series' first-observed
	// record. It is assumed time-invariant for a given series; a mid-lifespan
	// name or CUSIP change is a known limitation.
	ref := at[minQ]

	for _, q := range axis {
		if q.Before(minQ) || q.After(maxQ) {
			continue
		}
		if r, ok := at[q]; ok {
			dst = append(dst, r)
			continue
		}
		zero := decimal.NullDecimal{Decimal: decimal.Zero, Valid: true}
		dst = append(dst, HoldingRecord{
			Quarter:    periods[q],
			QuarterEnd: q,
			Filed:      filed[q],
			Ticker:     ref.Ticker,
			Company:    ref.Company,
			Class:      ref.Class,
			CUSIP:      ref.CUSIP,
			Value:      zero,
			Percentage: 0,
			Shares:     zero,
			Principal:  ref.Principal,
			Option:     ref.Option,
		})
	}
	return dst
}
