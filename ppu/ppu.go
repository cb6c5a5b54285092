// Package ppu implements the CPU-visible register shell of the 2C02
// picture processing unit: the 8 registers at $2000-$2007, OAM DMA
// landing, and the vblank/NMI timing contract the bus and CPU depend on.
// The pixel rendering pipeline itself is out of scope; Tick only drives
// the dot/scanline counter far enough to produce correct vblank timing.
package ppu

import (
	"fmt"

	"github.com/nesgo/nes2a03/irq"
)

const (
	dotsPerScanline    = 341
	scanlinesPerFrame  = 262
	vblankStartScanline = 241
)

// ChipDef configures a PPU register shell.
type ChipDef struct {
	// NMI is raised (via Set) when vblank begins and NMI-enable (ctrl bit
	// 7) is set. Callers typically pass an *irq.Latch shared with cpu.ChipDef.NMI.
	NMI *irq.Latch
}

// Chip is the PPU register shell.
type Chip struct {
	ctrl    uint8
	mask    uint8
	status  uint8
	oamAddr uint8
	oam     [256]uint8

	writeLatch bool // the 'w' toggle shared by $2005/$2006

	dot      int
	scanline int
	frames   uint64

	nmi *irq.Latch
}

// Init constructs and power-cycles a PPU register shell.
func Init(def *ChipDef) *Chip {
	c := &Chip{nmi: def.NMI}
	c.PowerOn()
	return c
}

// PowerOn resets register state. Real hardware's power-on register values
// are partially undefined; zeroing is the common, deterministic choice
// emulators use.
func (c *Chip) PowerOn() {
	c.ctrl, c.mask, c.status, c.oamAddr = 0, 0, 0, 0
	c.writeLatch = false
	c.dot, c.scanline = 0, 0
}

// ReadRegister implements the CPU-visible register read contract. reg is
// 0-7 ($2000+reg).
func (c *Chip) ReadRegister(reg uint8) uint8 {
	switch reg & 0x07 {
	case 2: // PPUSTATUS
		v := c.status
		c.status &^= 0x80
		c.writeLatch = false
		return v
	case 4: // OAMDATA
		return c.oam[c.oamAddr]
	case 7: // PPUDATA: VRAM pipeline out of scope; stubbed to always read 0 (no open-bus value).
		return 0
	}
	return 0
}

// WriteRegister implements the CPU-visible register write contract.
func (c *Chip) WriteRegister(reg uint8, v uint8) {
	switch reg & 0x07 {
	case 0: // PPUCTRL
		c.ctrl = v
	case 1: // PPUMASK
		c.mask = v
	case 3: // OAMADDR
		c.oamAddr = v
	case 4: // OAMDATA
		c.oam[c.oamAddr] = v
		c.oamAddr++
	case 5, 6: // PPUSCROLL, PPUADDR: no background pipeline behind these,
		// kept only so the $2002 latch-clearing contract is real.
		c.writeLatch = !c.writeLatch
	case 7: // PPUDATA: VRAM pipeline out of scope.
	}
}

// WriteOAMDMA copies a full 256-byte page into OAM, as issued by a CPU
// write to $4014. The bus is responsible for reading the source page
// through its own Read path (so mapper/mirroring is honored) and for
// charging the CPU the DMA stall; this just lands the bytes.
func (c *Chip) WriteOAMDMA(page [256]uint8) {
	c.oam = page
}

// NMILine reports whether PPUCTRL's NMI-enable bit is currently set.
func (c *Chip) NMILine() bool {
	return c.ctrl&0x80 != 0
}

// Tick advances the dot/scanline counter by one PPU cycle. At the start
// of vblank (scanline 241, dot 1) it sets the status vblank bit and, if
// NMI-enable is set, raises the shared NMI latch.
func (c *Chip) Tick() {
	c.dot++
	if c.dot >= dotsPerScanline {
		c.dot = 0
		c.scanline++
		if c.scanline >= scanlinesPerFrame {
			c.scanline = 0
			c.frames++
		}
	}
	if c.scanline == vblankStartScanline && c.dot == 1 {
		c.status |= 0x80
		if c.NMILine() && c.nmi != nil {
			c.nmi.Set()
		}
	}
	if c.scanline == 261 && c.dot == 1 {
		c.status &^= 0x80
	}
}

// Frames returns the number of full frames (vblank-to-vblank) completed.
func (c *Chip) Frames() uint64 {
	return c.frames
}

// Debug returns a short register dump in the teacher chip packages' style.
func (c *Chip) Debug() string {
	return fmt.Sprintf("ctrl=%02X mask=%02X status=%02X oamaddr=%02X scanline=%d dot=%d",
		c.ctrl, c.mask, c.status, c.oamAddr, c.scanline, c.dot)
}
