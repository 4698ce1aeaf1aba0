package vm

import (
	"fmt"
	"strings"
)

// Disassemble renders mem as a sequence of mnemonic lines, one per
// instruction, prefixed with the instruction's address. A byte that does
// not resolve to a known opcode is printed as ??? and skipped; decoding
// stops at the first instruction whose operands run past the end of mem.
func Disassemble(mem []byte) string {
	var b strings.Builder
	pc := uint32(0)
	for pc < uint32(len(mem)) {
		def, ok := defs[Op(mem[pc])]
		if !ok {
			fmt.Fprintf(&b, "%04x    ??? (0x%02x)\n", pc, mem[pc])
			pc++
			continue
		}
		length := def.pattern.instructionLength()
		if pc+length > uint32(len(mem)) {
			fmt.Fprintf(&b, "%04x    %s <truncated>\n", pc, def.name)
			break
		}
		fmt.Fprintf(&b, "%04x    %s\n", pc, formatOperands(def, mem[pc+1:pc+length]))
		pc += length
	}
	return b.String()
}

func formatOperands(def opDef, operands []byte) string {
	switch def.pattern {
	case patternNone:
		return def.name
	case patternR1R2:
		return fmt.Sprintf("%s R%d,R%d", def.name, hiNibble(operands[0]), loNibble(operands[0]))
	case patternR:
		return fmt.Sprintf("%s R%d", def.name, loNibble(operands[0]))
	case patternRImm8:
		return fmt.Sprintf("%s R%d,%d", def.name, operands[0], operands[1])
	case patternROff8:
		return fmt.Sprintf("%s R%d,%d", def.name, operands[0], operands[1])
	case patternRImm16:
		imm := uint32(operands[1]) | uint32(operands[2])<<8
		return fmt.Sprintf("%s R%d,%d", def.name, operands[0], imm)
	case patternRImm32:
		imm := uint32(operands[1]) | uint32(operands[2])<<8 | uint32(operands[3])<<16 | uint32(operands[4])<<24
		return fmt.Sprintf("%s R%d,%d", def.name, operands[0], imm)
	case patternAddr32:
		addr := uint32(operands[0]) | uint32(operands[1])<<8 | uint32(operands[2])<<16 | uint32(operands[3])<<24
		return fmt.Sprintf("%s 0x%04x", def.name, addr)
	default:
		return def.name
	}
}
