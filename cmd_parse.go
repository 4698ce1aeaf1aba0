package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"flut/ast"
	"flut/grammar"
	"flut/lexer"
)

// parseCmd implements the parse subcommand.
type parseCmd struct{}

func (*parseCmd) Name() string     { return "parse" }
func (*parseCmd) Synopsis() string { return "Print the AST dump for a flut source file" }
func (*parseCmd) Usage() string {
	return `parse <file>:
  Lex and parse FILE, then print its AST as indented JSON.
`
}
func (*parseCmd) SetFlags(f *flag.FlagSet) {}

func (*parseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	root := grammar.Program(tokens)
	if root == nil {
		root = &ast.Node{Kind: ast.BODY}
	}
	if err := ast.Dump(os.Stdout, root); err != nil {
		fmt.Fprintf(os.Stderr, "fout: kan AST niet schrijven: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
