package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"flut/vm"
)

// vmCmd implements the vm subcommand: runs a hand-written bytecode
// program directly against the register VM, per spec §4.5. There is no
// compiler from flut source to this bytecode — programs are assembled
// by hand or by another tool and read as a flat byte file.
type vmCmd struct {
	disassemble bool
}

func (*vmCmd) Name() string     { return "vm" }
func (*vmCmd) Synopsis() string { return "Run a flat bytecode file on the register VM" }
func (*vmCmd) Usage() string {
	return `vm <file>:
  Load FILE as a flat byte array and execute it on the register VM
  starting at address 0.
`
}

func (cmd *vmCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&cmd.disassemble, "disassemble", false, "Print a disassembly of the program before running it")
}

func (cmd *vmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "fout: geen bestand opgegeven")
		return subcommands.ExitUsageError
	}

	mem, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "fout: kan bestand niet openen: %v\n", err)
		return subcommands.ExitFailure
	}

	if cmd.disassemble {
		fmt.Fprint(os.Stdout, vm.Disassemble(mem))
	}

	s := vm.NewState(mem)
	for {
		switch err := s.Step(); err {
		case vm.ErrNone:
			continue
		case vm.ErrExit:
			fmt.Fprintf(os.Stdout, "afsluitcode: %d\n", s.ExitCode)
			return subcommands.ExitSuccess
		default:
			fmt.Fprintf(os.Stderr, "vm fout: %s bij pc=%d\n", err, s.PC)
			return subcommands.ExitFailure
		}
	}
}
