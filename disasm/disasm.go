// Package disasm implements a disassembler for the 2A03's 256 opcodes,
// including the undocumented ones, built on top of cpu.OpcodeInfo so the
// mnemonic/addressing-mode table lives in exactly one place.
package disasm

import (
	"fmt"

	"github.com/nesgo/nes2a03/cpu"
	"github.com/nesgo/nes2a03/memory"
)

// Step disassembles the instruction at pc and returns its text along with
// the number of bytes (1-3) the PC should advance to reach the next
// instruction. It does not interpret the instruction, so a JMP target is
// never followed. This always reads at least one byte past pc, so pc+2
// must be a valid address in r.
func Step(pc uint16, r memory.Bank) (string, int) {
	opcode := r.Read(pc)
	mnemonic, mode, length := cpu.OpcodeInfo(opcode)

	b1 := r.Read(pc + 1)
	b2 := r.Read(pc + 2)

	out := fmt.Sprintf("%04X %02X ", pc, opcode)
	count := int(length) + 1

	switch mode {
	case "immediate":
		out += fmt.Sprintf("%02X      %s #%02X", b1, mnemonic, b1)
	case "zp":
		out += fmt.Sprintf("%02X      %s %02X", b1, mnemonic, b1)
	case "zpx":
		out += fmt.Sprintf("%02X      %s %02X,X", b1, mnemonic, b1)
	case "zpy":
		out += fmt.Sprintf("%02X      %s %02X,Y", b1, mnemonic, b1)
	case "indirectx":
		out += fmt.Sprintf("%02X      %s (%02X,X)", b1, mnemonic, b1)
	case "indirecty":
		out += fmt.Sprintf("%02X      %s (%02X),Y", b1, mnemonic, b1)
	case "absolute":
		out += fmt.Sprintf("%02X %02X   %s %02X%02X", b1, b2, mnemonic, b2, b1)
	case "absolutex":
		out += fmt.Sprintf("%02X %02X   %s %02X%02X,X", b1, b2, mnemonic, b2, b1)
	case "absolutey":
		out += fmt.Sprintf("%02X %02X   %s %02X%02X,Y", b1, b2, mnemonic, b2, b1)
	case "indirect":
		out += fmt.Sprintf("%02X %02X   %s (%02X%02X)", b1, b2, mnemonic, b2, b1)
	case "accumulator":
		out += fmt.Sprintf("        %s A", mnemonic)
	case "implied":
		out += fmt.Sprintf("        %s", mnemonic)
	case "relative":
		target := pc + 2 + uint16(int16(int8(b1)))
		out += fmt.Sprintf("%02X      %s %02X (%04X)", b1, mnemonic, b1, target)
	default:
		out += fmt.Sprintf("        %s", mnemonic)
	}
	return out, count
}
