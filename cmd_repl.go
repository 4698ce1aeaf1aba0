package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/google/subcommands"

	"flut/ast"
	"flut/grammar"
	"flut/interpreter"
	"flut/lexer"
)

// replCmd implements the repl subcommand: an interactive tree-walking
// session, one statement per line.
type replCmd struct{}

func (*replCmd) Name() string     { return "repl" }
func (*replCmd) Synopsis() string { return "Start an interactive flut session" }
func (*replCmd) Usage() string {
	return `repl:
  Start an interactive tree-walking session. Type "exit" or Ctrl-D to
  leave.
`
}
func (*replCmd) SetFlags(f *flag.FlagSet) {}

func (*replCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fmt.Println("\nWelkom bij flut!")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ">>> ",
		HistoryFile:     "",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "fout: kan readline niet starten: %v\n", err)
		return subcommands.ExitFailure
	}
	defer rl.Close()

	in := interpreter.New()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return subcommands.ExitSuccess
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "fout: %v\n", err)
			return subcommands.ExitFailure
		}
		if line == "exit" {
			return subcommands.ExitSuccess
		}

		tokens := lexer.New(line).Scan()
		root := grammar.Program(tokens)
		if root == nil {
			fmt.Println("syntaxfout")
			continue
		}
		ast.Dump(os.Stdout, root)
		in.Run(root)
	}
}
