// Command projection prints Mudarabah profit projections without a running
// server.
//
//	projection project -amount 100000 -min 0.30 -max 0.40 -share 0.60
//	projection units -amount 100000
//	projection pools -amount 50000
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&projectCmd{out: os.Stdout}, "")
	subcommands.Register(&unitsCmd{out: os.Stdout}, "")
	subcommands.Register(&poolsCmd{out: os.Stdout}, "")

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}
