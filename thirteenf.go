package fundtrack

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/PuerkitoBio/goquery"
)

const thirteenfURL = "https://13f.info"

const thirteenfURLEnv = "THIRTEENF_URL" // override for the 13f.info base URL

// managerIndexKeys are the directory pages: one per letter, plus "0" for
// managers whose name starts with a digit.
const managerIndexKeys = "abcdefghijklmnopqrstuvwxyz0"

// ThirteenF is a Provider backed by 13f.info, which republishes SEC 13F
// filings as HTML indexes and JSON holdings payloads.
type ThirteenF struct {
	base   string
	client *http.Client
}

// NewThirteenF returns a 13f.info provider with a daily-expiring response
// cache. The base URL can be overridden with the THIRTEENF_URL environment
// variable.
func NewThirteenF() *ThirteenF {
	base := thirteenfURL
	if v := os.Getenv(thirteenfURLEnv); v != "" {
		base = v
	}
	return NewThirteenFURL(base, daily())
}

// NewThirteenFURL returns a provider against an explicit base URL. A nil
// client falls back to the daily-cached one.
func NewThirteenFURL(base string, client *http.Client) *ThirteenF {
	if client == nil {
		client = daily()
	}
	return &ThirteenF{base: strings.TrimSuffix(base, "/"), client: client}
}

// Funds scrapes the manager directory. A fund's ID is its manager page path.
func (t *ThirteenF) Funds(ctx context.Context) ([]Fund, error) {
	var funds []Fund
	for _, key := range strings.Split(managerIndexKeys, "") {
		page, err := t.document(ctx, t.base+"/managers/"+key)
		if err != nil {
			return nil, fmt.Errorf("cannot fetch manager index %q: %w", key, err)
		}
		page.Find("table tr").Each(func(_ int, row *goquery.Selection) {
			link := row.Find("td").First().Find("a")
			href, ok := link.Attr("href")
			if !ok {
				return // header or decorative row
			}
			funds = append(funds, Fund{
				Name: strings.TrimSpace(link.Text()),
				ID:   href,
			})
		})
	}
	return funds, nil
}

// Filings scrapes a fund's filing index, in page order (most recent first).
func (t *ThirteenF) Filings(ctx context.Context, fundID string) ([]Filing, error) {
	page, err := t.document(ctx, t.base+fundID)
	if err != nil {
		return nil, fmt.Errorf("cannot fetch filing index for %s: %w", fundID, err)
	}

	// locate columns by header text, the page carries more than we need
	col := map[string]int{}
	page.Find("table th").Each(func(i int, th *goquery.Selection) {
		col[strings.ToLower(strings.TrimSpace(th.Text()))] = i
	})
	qi, ok1 := col["quarter"]
	di, ok2 := col["date filed"]
	fi, ok3 := col["filing id"]
	if !ok1 || !ok2 || !ok3 {
		return nil, fmt.Errorf("filing index for %s is missing expected columns", fundID)
	}

	var filings []Filing
	var rowErr error
	page.Find("table tbody tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		cells := row.Find("td")
		if cells.Length() <= fi {
			return true // skip short rows
		}
		quarter, err := ParseQuarter(cells.Eq(qi).Text())
		if err != nil {
			rowErr = err
			return false
		}
		filed, err := ParseDate(cells.Eq(di).Text())
		if err != nil {
			rowErr = err
			return false
		}
		filings = append(filings, Filing{
			Quarter: quarter,
			Filed:   filed,
			ID:      strings.TrimSpace(cells.Eq(fi).Text()),
		})
		return true
	})
	if rowErr != nil {
		return nil, fmt.Errorf("cannot parse filing index for %s: %w", fundID, rowErr)
	}
	return filings, nil
}

// Holdings fetches the JSON payload of one filing and extracts its rows.
func (t *ThirteenF) Holdings(ctx context.Context, filingID string) ([][]any, error) {
	var jobj any
	if err := jwget(ctx, t.client, t.base+"/data/13f/"+filingID, &jobj); err != nil {
		return nil, err
	}
	path := "$.data"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error parsing filing %q: %q %w", filingID, path, err)
	}
	jrows, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("error parsing filing %q: %q is not a list", filingID, path)
	}
	rows := make([][]any, 0, len(jrows))
	for i, jrow := range jrows {
		cells, ok := jrow.([]any)
		if !ok {
			return nil, fmt.Errorf("error parsing filing %q: row %d is not a list", filingID, i)
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

// document GETs an HTML page and parses it.
func (t *ThirteenF) document(ctx context.Context, addr string) (*goquery.Document, error) {
	body, err := wget(ctx, t.client, addr)
	if err != nil {
		return nil, err
	}
	return goquery.NewDocumentFromReader(bytes.NewReader(body))
}

var _ Provider = (*ThirteenF)(nil)
