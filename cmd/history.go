package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"fundtrack"
	"fundtrack/renderer"

	"github.com/google/subcommands"
)

type historyCmd struct {
	fund   string
	window string
	metric string
	top    int
	add    string
	pretty bool
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display a fund's holdings over time" }
func (*historyCmd) Usage() string {
	return `history -f <fund> [-r 1Y|3Y|5Y|Max|<start>,<end>] [-m percentage|shares|value] [-top <k>] [-add T1,T2] [-pretty]

  Fetches a fund's filings, normalizes them onto the quarterly axis, and
  renders each holding's evolution. -top restricts to the k largest holdings
  at the latest quarter (0 means all); -add forces extra series in by id,
  e.g. "TSLA (put)". Above ` + fmt.Sprint(fundtrack.MaxDisplaySeries) + ` series, "all" degrades to the top cut
  plus the -add series.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.fund, "f", "", "fund to report on")
	f.StringVar(&c.window, "r", "Max", "date range preset, or explicit start,end pair")
	f.StringVar(&c.metric, "m", "percentage", "figure to display: percentage, shares or value")
	f.IntVar(&c.top, "top", 0, "restrict to the k largest holdings, 0 for all")
	f.StringVar(&c.add, "add", "", "comma-separated series ids to display in addition to the top cut")
	f.BoolVar(&c.pretty, "pretty", false, "render the report for the terminal")
}

func (c *historyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.fund == "" {
		fmt.Fprintln(os.Stderr, "-f is required")
		return subcommands.ExitUsageError
	}
	metric, err := fundtrack.ParseMetric(c.metric)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.top < 0 {
		c.top = 0 // treat a negative k as all
	}

	provider := newProvider()
	funds, err := provider.Funds(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing funds: %v\n", err)
		return subcommands.ExitFailure
	}
	fund, err := fundtrack.FindFund(funds, c.fund)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	table, err := memo.Table(fund.ID, func() (*fundtrack.Table, error) {
		payloads, err := fundtrack.FetchFilings(ctx, provider, fund.ID)
		if err != nil {
			return nil, err
		}
		records, diags := fundtrack.ParseHoldings(payloads)
		if len(diags) > 0 {
			fmt.Fprintf(os.Stderr, "warning, %d malformed rows skipped\n", len(diags))
		}
		return fundtrack.Normalize(records), nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building holdings table: %v\n", err)
		return subcommands.ExitFailure
	}

	table, err = c.applyWindow(table)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	table = c.applySelection(table)

	points := fundtrack.Project(table, metric)
	doc := renderer.SeriesMarkdown(points, metric.Label(), "13f.info, "+fund.Name)
	fmt.Print(render(doc, c.pretty))
	return subcommands.ExitSuccess
}

// applyWindow restricts the table to the -r selection.
func (c *historyCmd) applyWindow(table *fundtrack.Table) (*fundtrack.Table, error) {
	if from, to, ok := strings.Cut(c.window, ","); ok {
		start, err := fundtrack.ParseDate(from)
		if err != nil {
			return nil, err
		}
		end, err := fundtrack.ParseDate(to)
		if err != nil {
			return nil, err
		}
		return fundtrack.FilterWindow(table, start, end)
	}
	preset, err := fundtrack.ParseWindowPreset(c.window)
	if err != nil {
		return nil, err
	}
	return fundtrack.FilterPreset(table, preset)
}

// applySelection restricts the table to the -top / -add selection.
func (c *historyCmd) applySelection(table *fundtrack.Table) *fundtrack.Table {
	var extras []string
	if c.add != "" {
		for _, id := range strings.Split(c.add, ",") {
			extras = append(extras, strings.TrimSpace(id))
		}
	}

	selected := table
	switch {
	case c.top > 0:
		selected = fundtrack.SelectTopK(table, c.top)
	case len(table.Series()) > fundtrack.MaxDisplaySeries:
		fmt.Fprintf(os.Stderr, "warning, %d holdings exceed the display cap, showing the top %d\n",
			len(table.Series()), fundtrack.MaxDisplaySeries)
		selected = fundtrack.SelectTopK(table, fundtrack.MaxDisplaySeries)
	}
	if len(extras) > 0 {
		selected = fundtrack.Union(selected, fundtrack.FilterSeries(table, extras))
	}
	return selected
}
