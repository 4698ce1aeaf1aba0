package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/google/subcommands"

	"flut/ast"
	"flut/grammar"
	"flut/interpreter"
	"flut/lexer"
	"flut/token"
)

// runCmd implements the run subcommand: the tree-walking front end
// described in spec §6 — a token dump, an AST dump, then the evaluated
// variable store.
type runCmd struct {
	quiet bool
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "Lex, parse and tree-walk a flut source file" }
func (*runCmd) Usage() string {
	return `run <file>:
  Run FILE with the tree-walking evaluator, printing a token dump, an
  AST dump, and the final variable store.
`
}

func (r *runCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&r.quiet, "quiet", false, "Skip the token and AST dumps, print only the variable store")
}

func (r *runCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if !r.quiet {
		if err := token.Dump(os.Stdout, tokens); err != nil {
			fmt.Fprintf(os.Stderr, "fout: kan tokens niet schrijven: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	root := grammar.Program(tokens)
	if root == nil {
		root = &ast.Node{Kind: ast.BODY}
	}
	if !r.quiet {
		if err := ast.Dump(os.Stdout, root); err != nil {
			fmt.Fprintf(os.Stderr, "fout: kan AST niet schrijven: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	in := interpreter.New()
	in.Run(root)
	printStore(os.Stdout, in.Store)
	return subcommands.ExitSuccess
}

func printStore(w io.Writer, store *interpreter.Store) {
	names := store.Names()
	sort.Strings(names)
	for _, name := range names {
		v, ok := store.Get(name)
		if !ok {
			continue
		}
		switch v.Kind {
		case interpreter.StringValue:
			fmt.Fprintf(w, "%s = %q\n", name, v.Text)
		default:
			fmt.Fprintf(w, "%s = %d\n", name, v.Number)
		}
	}
}
