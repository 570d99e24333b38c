package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type fundsCmd struct {
	query string
}

func (*fundsCmd) Name() string     { return "funds" }
func (*fundsCmd) Synopsis() string { return "list investment funds known to the source" }
func (*fundsCmd) Usage() string {
	return `funds [-q <substring>]

  Lists the funds in the source directory, optionally filtered by a
  case-insensitive name substring.
`
}

func (c *fundsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "only list funds whose name contains this substring")
}

func (c *fundsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	funds, err := newProvider().Funds(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing funds: %v\n", err)
		return subcommands.ExitFailure
	}

	q := strings.ToLower(c.query)
	n := 0
	for _, fund := range funds {
		if q != "" && !strings.Contains(strings.ToLower(fund.Name), q) {
			continue
		}
		fmt.Printf("%s\t%s\n", fund.Name, fund.ID)
		n++
	}
	if n == 0 {
		fmt.Fprintf(os.Stderr, "no fund matching %q\n", c.query)
	}
	return subcommands.ExitSuccess
}
