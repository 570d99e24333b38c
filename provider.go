package fundtrack

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Fund identifies an investment entity in the source directory.
type Fund struct {
	Name string
	ID   string // source-specific identifier
}

// Provider supplies raw disclosure data for the pipeline. Implementations
// own all transport concerns; the pipeline treats the three results as
// already-fetched, in-memory data.
type Provider interface {
	// Funds returns the directory of known investment entities.
	Funds(ctx context.Context) ([]Fund, error)
	// Filings returns the ordered filing descriptors for a fund.
	Filings(ctx context.Context, fundID string) ([]Filing, error)
	// Holdings returns the raw, loosely-typed holdings rows of a filing.
	Holdings(ctx context.Context, filingID string) ([][]any, error)
}

// fetchConcurrency bounds the per-fund filing payload fan-out.
const fetchConcurrency = 4

// FetchFilings gathers every filing payload of a fund through the provider,
// fetching concurrently but returning payloads in filing-index order.
func FetchFilings(ctx context.Context, p Provider, fundID string) ([]FilingRows, error) {
	filings, err := p.Filings(ctx, fundID)
	if err != nil {
		return nil, fmt.Errorf("cannot list filings for %s: %w", fundID, err)
	}

	out := make([]FilingRows, len(filings))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)
	for i, f := range filings {
		g.Go(func() error {
			rows, err := p.Holdings(gctx, f.ID)
			if err != nil {
				return fmt.Errorf("cannot fetch holdings of filing %s: %w", f.ID, err)
			}
			out[i] = FilingRows{Filing: f, Rows: rows}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// FindFund resolves a fund by exact id, exact name, or unique substring of
// the name (case-insensitive).
func FindFund(funds []Fund, query string) (Fund, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	var matches []Fund
	for _, f := range funds {
		if f.ID == query || strings.EqualFold(f.Name, query) {
			return f, nil
		}
		if strings.Contains(strings.ToLower(f.Name), q) {
			matches = append(matches, f)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return Fund{}, fmt.Errorf("no fund matching %q", query)
	default:
		return Fund{}, fmt.Errorf("%d funds matching %q, be more specific", len(matches), query)
	}
}
