package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"flut/lexer"
	"flut/token"
)

// tokensCmd implements the tokens subcommand.
type tokensCmd struct{}

func (*tokensCmd) Name() string     { return "tokens" }
func (*tokensCmd) Synopsis() string { return "Print the token dump for a flut source file" }
func (*tokensCmd) Usage() string {
	return `tokens <file>:
  Lex FILE and print its per-line token dump.
`
}
func (*tokensCmd) SetFlags(f *flag.FlagSet) {}

func (*tokensCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "fout: geen bestand opgegeven")
		return subcommands.ExitUsageError
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "fout: kan bestand niet openen: %v\n", err)
		return subcommands.ExitFailure
	}

	tokens := lexer.New(string(data)).Scan()
	if err := token.Dump(os.Stdout, tokens); err != nil {
		fmt.Fprintf(os.Stderr, "fout: kan tokens niet schrijven: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
