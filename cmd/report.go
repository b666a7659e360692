package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/capgains"
	"github.com/etnz/capgains/renderer"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	outputDir string
	currency  string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "compute realized gains and write the Form 8949 CSV reports" }
func (*reportCmd) Usage() string {
	return `cgs report [-o <dir>] [-c <currency>] <ledger.csv>

  Reads a securities ledger (one 'security,date,quantity,unitPrice' row per
  line), matches sales against buy lots FIFO, and writes up to three CSV
  files next to each other: the long-term gains, the short-term gains, and
  the remaining holdings. A summary is printed to the terminal.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputDir, "o", "", "Directory to write the report files to. Defaults to the configured output directory.")
	f.StringVar(&c.currency, "c", "", "Reporting currency code. Defaults to the configured currency.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one ledger file argument")
		return subcommands.ExitUsageError
	}

	cfg, err := LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.outputDir == "" {
		c.outputDir = cfg.OutputDir
	}
	if c.currency == "" {
		c.currency = cfg.Currency
	}

	run, status := generate(f.Arg(0), c.currency)
	if run == nil {
		return status
	}

	sink := capgains.DirSink{Dir: c.outputDir}
	for _, rep := range run.Reports {
		if err := sink.Write(rep); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.RunMarkdown(run))
	return subcommands.ExitSuccess
}

// generate runs the pipeline on the named ledger file. On failure it prints
// a user-facing message and returns a nil run with the exit status.
func generate(path, currency string) (*capgains.Run, subcommands.ExitStatus) {
	file, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open input data file: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	defer file.Close()

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	run, err := capgains.GenerateReports(file, base, currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid transaction data: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	return run, subcommands.ExitSuccess
}
