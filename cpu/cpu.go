// Package cpu implements the Ricoh 2A03 CPU core: a MOS 6502 variant with
// decimal mode disabled in hardware. It knows nothing about the concrete
// NES address-space layout; it only depends on memory.Bank and irq.Sender,
// the same separation the teacher's 6502 core keeps from its consoles.
package cpu

import (
	"fmt"

	"github.com/nesgo/nes2a03/irq"
	"github.com/nesgo/nes2a03/memory"
)

const (
	vecNMI   = 0xFFFA
	vecReset = 0xFFFC
	vecIRQ   = 0xFFFE
)

// InvalidCPUState reports an internal precondition violation: an
// addressing-mode/opcode pairing that the static table should never
// produce. It never surfaces from normal (even undocumented) execution.
type InvalidCPUState struct {
	PC     uint16
	Opcode uint8
	Detail string
}

func (e *InvalidCPUState) Error() string {
	return fmt.Sprintf("invalid CPU state at PC=%#04x opcode=%#02x: %s", e.PC, e.Opcode, e.Detail)
}

// ChipDef configures a Chip at construction time.
type ChipDef struct {
	Bus memory.Bank
	IRQ irq.Sender // level-triggered (APU frame/DMC IRQ, mapper IRQ)
	NMI irq.Sender // edge-triggered (PPU vblank), usually an *irq.Latch
}

// Chip is the 2A03 CPU: registers, a reference to the bus it executes
// against, and the running cycle counter used for OAM DMA parity and
// scheduler interleaving.
type Chip struct {
	A, X, Y uint8
	S       uint8
	P       uint8
	PC      uint16

	bus memory.Bank
	irq irq.Sender
	nmi irq.Sender

	cycles uint64 // total cycles executed since power-on
	halted bool   // set by a JAM/HLT opcode; Step becomes a no-op
	stall  uint16 // extra cycles owed to the next Steps (OAM DMA), paid up to 255 per Step
}

// Init constructs and power-cycles a Chip per def.
func Init(def *ChipDef) (*Chip, error) {
	if def.Bus == nil {
		return nil, fmt.Errorf("cpu: ChipDef.Bus must not be nil")
	}
	c := &Chip{
		bus: def.Bus,
		irq: def.IRQ,
		nmi: def.NMI,
	}
	c.PowerOn()
	return c, nil
}

// PowerOn zeroes the registers (real hardware leaves them undefined; this
// core picks a deterministic state) and then performs a Reset.
func (c *Chip) PowerOn() {
	c.A, c.X, c.Y = 0, 0, 0
	c.P = flagU | flagI
	c.S = 0x00 // Reset below charges its conventional -3, landing on 0xFD
	c.halted = false
	c.stall = 0
	c.cycles = 0
	c.Reset()
}

// Reset loads PC from the reset vector and sets the flags/stack pointer a
// real reset leaves behind. Modeled as instantaneous plus a flat 7-cycle
// charge, rather than the 6 individual ticks real hardware spreads this
// over — consistent with this core's whole-instruction cycle accounting.
func (c *Chip) Reset() {
	c.S -= 3
	c.setFlag(flagI, true)
	c.PC = c.read16(vecReset)
	c.cycles += 7
}

// StallDMA adds extra cycles the following Steps must account for (at most
// 255 per Step, with no instruction executed until they are paid), owed to
// an in-flight OAM DMA transfer issued via a write to $4014. The bus calls
// this, not the scheduler, since only the bus knows the transfer happened.
func (c *Chip) StallDMA(extra uint16) {
	c.stall += extra
}

// Cycles returns the total cycle count since the last PowerOn.
func (c *Chip) Cycles() uint64 {
	return c.cycles
}

// Halted reports whether a JAM/HLT opcode has stopped the CPU.
func (c *Chip) Halted() bool {
	return c.halted
}

// Step performs one unit of work and returns the number of cycles it
// consumed: a chunk of at most 255 owed OAM DMA stall cycles if any are
// owed, else the service of a pending interrupt if one is raised, else
// exactly one instruction.
// Interrupts are only polled at instruction boundaries; mid-instruction
// interrupt delivery is an explicit non-goal of this core.
func (c *Chip) Step() uint8 {
	if c.halted {
		return 0
	}

	if c.stall > 0 {
		n := c.stall
		if n > 255 {
			n = 255
		}
		c.stall -= n
		c.cycles += uint64(n)
		return uint8(n)
	}

	if c.nmi != nil && c.nmi.Raised() {
		c.serviceInterrupt(vecNMI, false)
		c.cycles += 7
		return 7
	}
	if !c.flag(flagI) && c.irq != nil && c.irq.Raised() {
		c.serviceInterrupt(vecIRQ, false)
		c.cycles += 7
		return 7
	}

	instrPC := c.PC
	opcode := c.bus.Read(instrPC)
	op := opcodeTable[opcode]

	operandPC := instrPC + 1
	r := c.resolveOperand(op.mode, op.class, operandPC)

	nextPC := instrPC + 1 + uint16(op.length)
	c.PC = nextPC

	extra := c.execute(op, r, instrPC, nextPC)

	total := op.cycles + extra
	if op.pageCross && r.pageCrossed {
		total++
	}
	c.cycles += uint64(total)
	return total
}

// StepUntil runs Step repeatedly until at least minCycles have elapsed,
// returning the actual cycle count consumed (always >= minCycles unless
// the CPU is halted). Used by the scheduler to interleave with the PPU's
// finer clock.
func (c *Chip) StepUntil(minCycles uint64) uint64 {
	var ran uint64
	for ran < minCycles {
		if c.halted {
			break
		}
		ran += uint64(c.Step())
	}
	return ran
}

// serviceInterrupt pushes PC and P (with B clear, unlike BRK) and jumps to
// the vector at addr.
func (c *Chip) serviceInterrupt(vector uint16, brk bool) {
	c.push16(c.PC)
	b := uint8(0)
	if brk {
		b = flagB
	}
	c.push(c.P&^flagB | b | flagU)
	c.setFlag(flagI, true)
	c.PC = c.read16(vector)
}

// Snapshot captures the architectural state needed for a save state. Work
// RAM itself is persisted separately via memory.RawBytes against the bus.
type Snapshot struct {
	A, X, Y, S, P uint8
	PC            uint16
	Cycles        uint64
	Stall         uint16
	Halted        bool
}

// Snapshot returns the CPU's current architectural state.
func (c *Chip) Snapshot() Snapshot {
	return Snapshot{
		A: c.A, X: c.X, Y: c.Y, S: c.S, P: c.P,
		PC:     c.PC,
		Cycles: c.cycles,
		Stall:  c.stall,
		Halted: c.halted,
	}
}

// Restore reinstates a previously captured Snapshot.
func (c *Chip) Restore(s Snapshot) {
	c.A, c.X, c.Y, c.S, c.P = s.A, s.X, s.Y, s.S, s.P
	c.PC = s.PC
	c.cycles = s.Cycles
	c.stall = s.Stall
	c.halted = s.Halted
}

// Debug returns a human readable register dump, in the spirit of the
// teacher's chip Debug() accessors used by disassembler/test tooling.
func (c *Chip) Debug() string {
	return fmt.Sprintf("PC=%04X A=%02X X=%02X Y=%02X S=%02X P=%02X cyc=%d",
		c.PC, c.A, c.X, c.Y, c.S, c.P, c.cycles)
}
