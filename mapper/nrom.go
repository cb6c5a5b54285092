package mapper

// NROM implements iNES mapper 0: PRG-ROM mapped directly into $8000-$FFFF
// with no bank switching, and a fixed 8KiB of PRG-RAM at $6000-$7FFF.
type NROM struct {
	prg     []uint8 // 16KiB or 32KiB
	chr     []uint8 // CHR-ROM/RAM, unused by the CPU core but kept for PPU consumers
	prgRAM  [0x2000]uint8
	prgMask uint16 // prg length - 1, prg length is always a power of two (16K or 32K)
}

// NewNROM constructs an NROM mapper over prg/chr as parsed from an iNES
// image. prg must be 16KiB or 32KiB.
func NewNROM(prg, chr []uint8) *NROM {
	return &NROM{
		prg:     prg,
		chr:     chr,
		prgMask: uint16(len(prg) - 1),
	}
}

// CPURead implements Mapper.
func (n *NROM) CPURead(addr uint16) uint8 {
	switch {
	case addr >= 0x6000 && addr <= 0x7FFF:
		return n.prgRAM[addr-0x6000]
	case addr >= 0x8000:
		// 16KiB images mirror into the upper half; prgMask handles both
		// the 16K (mirrored) and 32K (not mirrored) cases identically.
		return n.prg[(addr-0x8000)&n.prgMask]
	}
	// $4020-$5FFF: nothing mapped here for NROM; caller supplies open bus.
	return 0
}

// CPUWrite implements Mapper. PRG-ROM is read-only; only PRG-RAM accepts writes.
func (n *NROM) CPUWrite(addr uint16, v uint8) {
	if addr >= 0x6000 && addr <= 0x7FFF {
		n.prgRAM[addr-0x6000] = v
	}
}

// IRQLine implements Mapper. NROM has no scanline counter.
func (n *NROM) IRQLine() bool {
	return false
}

// CHR returns the cartridge's CHR-ROM/RAM, for a PPU consumer to read.
func (n *NROM) CHR() []uint8 {
	return n.chr
}
