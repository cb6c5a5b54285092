package bus

import (
	"testing"

	"github.com/nesgo/nes2a03/controller"
	"github.com/nesgo/nes2a03/cpu"
	"github.com/nesgo/nes2a03/irq"
	"github.com/nesgo/nes2a03/mapper"
	"github.com/nesgo/nes2a03/ppu"
)

// buildMachine wires a minimal NROM cartridge (prog loaded at the reset
// vector) behind a real Bus and CPU, the same four-way wiring cmd/nes
// performs.
func buildMachine(t *testing.T, prog []uint8) (*cpu.Chip, *Bus) {
	t.Helper()

	prg := make([]uint8, 16*1024)
	copy(prg, prog)
	prg[0x3FFC] = 0x00 // reset vector -> $8000
	prg[0x3FFD] = 0x80

	var nmi irq.Latch
	p := ppu.Init(&ppu.ChipDef{NMI: &nmi})
	pad1 := controller.Init(&controller.ChipDef{})
	pad2 := controller.Init(&controller.ChipDef{})

	b, err := New(mapper.NewNROM(prg, nil), p, pad1, pad2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c, err := cpu.Init(&cpu.ChipDef{Bus: b, NMI: &nmi})
	if err != nil {
		t.Fatalf("cpu.Init: %v", err)
	}
	b.AttachCPU(c)
	return c, b
}

// drainStall sums exactly the cycles the next three Step calls consume,
// which fully drains both possible stall lengths (513 = 255+255+3,
// 514 = 255+255+4) without spilling into real instruction execution.
func drainStall(c *cpu.Chip) uint64 {
	var total uint64
	for i := 0; i < 3; i++ {
		total += uint64(c.Step())
	}
	return total
}

func TestOAMDMAStallOddCycleIs513(t *testing.T) {
	// Power-on/Reset leaves the CPU at 7 cycles (odd) before any
	// instruction executes.
	c, b := buildMachine(t, []uint8{0xEA})
	if c.Cycles()%2 != 1 {
		t.Fatalf("test precondition failed: cycles = %d, want odd", c.Cycles())
	}
	b.Write(0x4014, 0x02)
	if total := drainStall(c); total != 513 {
		t.Errorf("stall on odd starting cycle = %d, want 513", total)
	}
}

func TestOAMDMAStallEvenCycleIs514(t *testing.T) {
	// STA $10 (3 cycles) after the 7-cycle reset lands on cycle 10, even.
	c, b := buildMachine(t, []uint8{0x85, 0x10})
	c.Step()
	if c.Cycles()%2 != 0 {
		t.Fatalf("test precondition failed: cycles = %d, want even", c.Cycles())
	}
	b.Write(0x4014, 0x02)
	if total := drainStall(c); total != 514 {
		t.Errorf("stall on even starting cycle = %d, want 514", total)
	}
}

func TestOAMDMACopiesThroughBusRead(t *testing.T) {
	c, b := buildMachine(t, []uint8{0xEA})
	_ = c
	b.Write(0x0000, 0x11) // work RAM at the start of the $0000 DMA source page
	b.Write(0x0001, 0x22)
	b.Write(0x4014, 0x00) // page 0 -> source $0000-$00FF, mirrored work RAM

	b.Write(0x2003, 0x00) // OAMADDR = 0
	if got := b.Read(0x2004); got != 0x11 {
		t.Errorf("OAM[0] = %02X, want 11 (copied through bus Read, honoring WRAM mirroring)", got)
	}
	b.Write(0x2003, 0x01) // OAMADDR = 1
	if got := b.Read(0x2004); got != 0x22 {
		t.Errorf("OAM[1] = %02X, want 22", got)
	}
}
