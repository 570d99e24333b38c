// Package cmd implements the CLI application to browse fund disclosures.
package cmd

import (
	"flag"
	"log"

	"fundtrack"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Commands lists the subcommands of the ftrack tool.
// A main package registers them all and executes the user-selected one.
func Commands() []subcommands.Command {
	return []subcommands.Command{
		&fundsCmd{},
		&filingsCmd{},
		&historyCmd{},
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var sourceURL = flag.String("source-url", "", "Base URL of the 13f.info instance to fetch from. Defaults to https://13f.info (or the THIRTEENF_URL environment variable).")

// memo caches normalized tables across subcommand work within one run.
var memo = fundtrack.NewMemo()

// newProvider is the central function to open the disclosure source.
func newProvider() fundtrack.Provider {
	if *sourceURL != "" {
		return fundtrack.NewThirteenFURL(*sourceURL, nil)
	}
	return fundtrack.NewThirteenF()
}

// render returns the markdown document, converted to ANSI when pretty is set.
func render(doc string, pretty bool) string {
	if !pretty {
		return doc
	}
	out, err := glamour.Render(doc, "auto")
	if err != nil {
		log.Printf("warning, cannot render markdown (falling back to raw): %v", err)
		return doc
	}
	return out
}
