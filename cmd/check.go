package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/capgains/renderer"
	"github.com/google/subcommands"
)

// checkCmd holds the flags for the 'check' subcommand.
type checkCmd struct {
	currency string
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "validate a ledger and preview the gains without writing files" }
func (*checkCmd) Usage() string {
	return `cgs check [-c <currency>] <ledger.csv>

  Parses and FIFO-matches the ledger exactly like 'report' but writes
  nothing: it only prints the run summary. Use it to spot skipped rows or
  data-consistency failures before filing.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "", "Reporting currency code. Defaults to the configured currency.")
}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one ledger file argument")
		return subcommands.ExitUsageError
	}

	cfg, err := LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.currency == "" {
		c.currency = cfg.Currency
	}

	run, status := generate(f.Arg(0), c.currency)
	if run == nil {
		return status
	}

	printMarkdown(renderer.RunMarkdown(run))
	return subcommands.ExitSuccess
}
