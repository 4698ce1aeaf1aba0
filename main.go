// Command flut is a lexer/parser/evaluator/VM pipeline for a small
// Dutch-keyword toy language.
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
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&tokensCmd{}, "")
	subcommands.Register(&parseCmd{}, "")
	subcommands.Register(&runCmd{}, "")
	subcommands.Register(&vmCmd{}, "")
	subcommands.Register(&replCmd{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
