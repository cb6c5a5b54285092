// Package bus implements the NES CPU address space: 2KiB work RAM
// mirrored through $1FFF, PPU registers mirrored through $3FFF, OAM DMA,
// controller ports, and the cartridge mapper beyond $4020. It is the
// memory.Bank the cpu.Chip is constructed against; the CPU never knows
// about any of this structure directly.
package bus

import (
	"github.com/nesgo/nes2a03/controller"
	"github.com/nesgo/nes2a03/cpu"
	"github.com/nesgo/nes2a03/mapper"
	"github.com/nesgo/nes2a03/memory"
	"github.com/nesgo/nes2a03/ppu"
)

var _ = memory.Bank(&Bus{})

const (
	ramMask    = uint16(0x07FF)
	ppuRegMask = uint16(0x0007)
)

// Bus ties the CPU-visible address space together. Construct with New,
// then attach the CPU with AttachCPU once it's built against this Bus
// (the same circular-wiring pattern the teacher uses between its console
// controller and its CPU).
type Bus struct {
	wram    memory.Bank
	ppu     *ppu.Chip
	pad1    *controller.Chip
	pad2    *controller.Chip
	mapper  mapper.Mapper
	cpu     *cpu.Chip
	padStrobe bool

	databusVal uint8
}

// New constructs a Bus. The mapper and PPU must already exist; the CPU is
// attached afterward via AttachCPU since it depends on this Bus to build.
func New(m mapper.Mapper, p *ppu.Chip, pad1, pad2 *controller.Chip) (*Bus, error) {
	wram, err := memory.NewRAMBank(2048, nil)
	if err != nil {
		return nil, err
	}
	b := &Bus{
		wram:   wram,
		ppu:    p,
		pad1:   pad1,
		pad2:   pad2,
		mapper: m,
	}
	return b, nil
}

// AttachCPU records the CPU built against this Bus, so $4014 writes can
// charge it for the OAM DMA stall.
func (b *Bus) AttachCPU(c *cpu.Chip) {
	b.cpu = c
}

// Read implements memory.Bank.
func (b *Bus) Read(addr uint16) uint8 {
	var v uint8
	switch {
	case addr <= 0x1FFF:
		v = b.wram.Read(addr & ramMask)
	case addr <= 0x3FFF:
		v = b.ppu.ReadRegister(uint8(addr & ppuRegMask))
	case addr == 0x4016:
		v = b.pad1.Read()
	case addr == 0x4017:
		v = b.pad2.Read()
	case addr >= 0x4000 && addr <= 0x4015:
		// APU registers: out of scope, reads back open bus.
		v = b.databusVal
	case addr == 0x4014:
		// Write-only trigger; reading it is open bus.
		v = b.databusVal
	case addr < 0x6000:
		// $4018-$5FFF: NROM, the only mapper implemented, maps nothing
		// here, so reads return open bus.
		v = b.databusVal
	default:
		v = b.mapper.CPURead(addr)
	}
	b.databusVal = v
	return v
}

// Write implements memory.Bank.
func (b *Bus) Write(addr uint16, val uint8) {
	b.databusVal = val
	switch {
	case addr <= 0x1FFF:
		b.wram.Write(addr&ramMask, val)
	case addr <= 0x3FFF:
		b.ppu.WriteRegister(uint8(addr&ppuRegMask), val)
	case addr == 0x4014:
		b.doOAMDMA(val)
	case addr == 0x4016:
		// Bit 0 strobes both controller shift registers simultaneously.
		high := val&0x01 != 0
		b.pad1.Strobe(high)
		b.pad2.Strobe(high)
	case addr == 0x4017:
		// APU frame counter register: out of scope, no-op.
	case addr >= 0x4000 && addr <= 0x4015:
		// APU registers: out of scope, no-op.
	default:
		b.mapper.CPUWrite(addr, val)
	}
}

// doOAMDMA copies a 256-byte page into the PPU's OAM through the bus's own
// Read path (never straight from work RAM) so mapper-backed or mirrored
// source pages are honored, then charges the CPU the stall.
func (b *Bus) doOAMDMA(page uint8) {
	base := uint16(page) << 8
	var buf [256]uint8
	for i := 0; i < 256; i++ {
		buf[i] = b.Read(base + uint16(i))
	}
	b.ppu.WriteOAMDMA(buf)

	// 514 cycles when the DMA starts on an even CPU cycle, 513 on an odd
	// one (one extra "get in sync" cycle on the even case); this is the
	// one place cycle parity at the moment of the bus write matters for
	// this core.
	extra := uint16(513)
	if b.cpu != nil {
		if b.cpu.Cycles()%2 == 0 {
			extra = 514
		}
		b.cpu.StallDMA(extra)
	}
}

// PowerOn implements memory.Bank.
func (b *Bus) PowerOn() {
	b.wram.PowerOn()
	b.ppu.PowerOn()
}

// Parent implements memory.Bank. The bus is always the outermost memory
// controller in this core.
func (b *Bus) Parent() memory.Bank {
	return nil
}

// DatabusVal implements memory.Bank.
func (b *Bus) DatabusVal() uint8 {
	return b.databusVal
}

// WorkRAM exposes the backing work-RAM bank for save-state persistence.
func (b *Bus) WorkRAM() memory.Bank {
	return b.wram
}

// MapperIRQ adapts a mapper.Mapper's IRQLine to irq.Sender, for wiring into
// cpu.ChipDef.IRQ. NROM never raises it, but a mapper with a scanline
// counter would.
type MapperIRQ struct {
	Mapper mapper.Mapper
}

// Raised implements irq.Sender.
func (m MapperIRQ) Raised() bool {
	return m.Mapper.IRQLine()
}
