// Package cmd implements the subcommands of the cgs command-line tool.
package cmd

import (
	"flag"

	"github.com/google/subcommands"
)

// Register registers all cgs subcommands.
func Register(c *subcommands.Commander) {
	c.Register(&reportCmd{}, "reports")
	c.Register(&checkCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

var configFile = flag.String("config", "", "Path to a TOML configuration file (defaults to .cgs.toml if present)")
