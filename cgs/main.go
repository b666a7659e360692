package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/capgains/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command line for shell completion. It must stay
// in sync with the registered subcommands.
var completion = &complete.Command{
	Sub: map[string]*complete.Command{
		"report": {
			Flags: map[string]complete.Predictor{
				"o": predict.Dirs("*"),
				"c": predict.Nothing,
			},
			Args: predict.Files("*.csv"),
		},
		"check": {
			Flags: map[string]complete.Predictor{
				"c": predict.Nothing,
			},
			Args: predict.Files("*.csv"),
		},
		"topic": {},
	},
	Flags: map[string]complete.Predictor{
		"config": predict.Files("*.toml"),
	},
}

func main() {
	completion.Complete(path.Base(os.Args[0]))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
