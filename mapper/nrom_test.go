package mapper

import "testing"

func TestNROMMirroring16K(t *testing.T) {
	prg := make([]uint8, 16*1024)
	prg[0] = 0xAB
	prg[len(prg)-1] = 0xCD
	n := NewNROM(prg, nil)

	if got := n.CPURead(0x8000); got != 0xAB {
		t.Errorf("CPURead($8000) = %02X, want AB", got)
	}
	if got := n.CPURead(0xC000); got != 0xAB {
		t.Errorf("CPURead($C000) = %02X, want AB (16K mirror)", got)
	}
	if got := n.CPURead(0xFFFF); got != 0xCD {
		t.Errorf("CPURead($FFFF) = %02X, want CD", got)
	}
}

func TestNROM32KNotMirrored(t *testing.T) {
	prg := make([]uint8, 32*1024)
	prg[0] = 0x11
	prg[0x4000] = 0x22
	n := NewNROM(prg, nil)
	if got := n.CPURead(0x8000); got != 0x11 {
		t.Errorf("CPURead($8000) = %02X, want 11", got)
	}
	if got := n.CPURead(0xC000); got != 0x22 {
		t.Errorf("CPURead($C000) = %02X, want 22 (not mirrored for 32K)", got)
	}
}

func TestNROMPRGRAM(t *testing.T) {
	n := NewNROM(make([]uint8, 16*1024), nil)
	n.CPUWrite(0x6000, 0x42)
	if got := n.CPURead(0x6000); got != 0x42 {
		t.Errorf("PRG-RAM read = %02X, want 42", got)
	}
	n.CPUWrite(0x8000, 0xFF) // ROM write must be ignored.
	if got := n.CPURead(0x8000); got == 0xFF {
		t.Error("write to PRG-ROM was not ignored")
	}
}

func TestNROMNeverRaisesIRQ(t *testing.T) {
	n := NewNROM(make([]uint8, 16*1024), nil)
	if n.IRQLine() {
		t.Error("NROM must never raise IRQ")
	}
}
