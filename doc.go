// Package fundtrack turns point-in-time 13F ownership disclosures into
// regularized, chart-ready holding time series.
//
// Disclosures are reported irregularly: a fund files once per quarter, a
// holding may disappear for a few quarters and come back, and option
// positions share their ticker with the underlying equity. The pipeline
// reconciles all of this onto a shared quarterly axis:
//   - Record Parsing: typed holding records from loosely-typed filing
//     payloads, with a strict null-not-zero policy for missing numerics.
//   - Timeline Normalization: the canonical quarter axis, explicit zero rows
//     for quarters a holding was temporarily absent, and put/call series
//     disambiguation.
//   - Filtering: date windows (named presets or explicit ranges) and top-K
//     selection by portfolio weight at the most recent reporting date.
//   - Projection: flat (x, y, series, style) points for a display surface,
//     which renders them; this package never draws anything itself.
//
// Every stage is a pure function from an immutable table to a fresh one, so
// independent pipeline runs can proceed in parallel without coordination.
// Data retrieval is confined to the Provider boundary, implemented here for
// 13f.info.
//
// This package serves as the foundational logic for the `ftrack`
// command-line tool.
package fundtrack
