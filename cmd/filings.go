package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"fundtrack"

	"github.com/google/subcommands"
)

type filingsCmd struct {
	fund string
}

func (*filingsCmd) Name() string     { return "filings" }
func (*filingsCmd) Synopsis() string { return "list the quarterly filings of a fund" }
func (*filingsCmd) Usage() string {
	return `filings -f <fund>

  Lists the filing index of a fund: reporting period, date filed, filing id.
  The fund can be given by id, exact name, or a unique name substring.
`
}

func (c *filingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.fund, "f", "", "fund to report on")
}

func (c *filingsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.fund == "" {
		fmt.Fprintln(os.Stderr, "-f is required")
		return subcommands.ExitUsageError
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

	filings, err := provider.Filings(ctx, fund.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing filings: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Quarter\t\tDate Filed\tFiling ID\n")
	for _, filing := range filings {
		fmt.Printf("%s\t\t%s\t%s\n", filing.Quarter, filing.Filed, filing.ID)
	}
	return subcommands.ExitSuccess
}
