package cartridge

import (
	"bytes"
	"testing"
)

func buildImage(prgUnits, chrUnits int, flags6, flags7 uint8, trainer bool) []byte {
	var buf bytes.Buffer
	buf.WriteString("NES")
	buf.WriteByte(0x1A)
	buf.WriteByte(uint8(prgUnits))
	buf.WriteByte(uint8(chrUnits))
	buf.WriteByte(flags6)
	buf.WriteByte(flags7)
	buf.Write(make([]byte, 8)) // flags 8-15, unused here

	if trainer {
		buf.Write(make([]byte, trainerSize))
	}
	prg := make([]byte, prgUnits*prgUnitSize)
	if len(prg) > 0 {
		prg[0] = 0xEA
	}
	buf.Write(prg)
	if chrUnits > 0 {
		buf.Write(make([]byte, chrUnits*chrUnitSize))
	}
	return buf.Bytes()
}

func TestLoadNROM16K(t *testing.T) {
	img, err := Load(bytes.NewReader(buildImage(1, 1, 0x00, 0x00, false)))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if img.Mapper != 0 {
		t.Errorf("Mapper = %d, want 0", img.Mapper)
	}
	if len(img.PRG) != prgUnitSize {
		t.Errorf("len(PRG) = %d, want %d", len(img.PRG), prgUnitSize)
	}
	if len(img.CHR) != chrUnitSize {
		t.Errorf("len(CHR) = %d, want %d", len(img.CHR), chrUnitSize)
	}
	if img.Mirroring != MirrorHorizontal {
		t.Errorf("Mirroring = %v, want horizontal", img.Mirroring)
	}
}

func TestLoadVerticalMirroringAndBattery(t *testing.T) {
	img, err := Load(bytes.NewReader(buildImage(2, 0, 0x03, 0x00, false)))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if img.Mirroring != MirrorVertical {
		t.Errorf("Mirroring = %v, want vertical", img.Mirroring)
	}
	if !img.Battery {
		t.Error("Battery flag not parsed")
	}
	if len(img.PRG) != 2*prgUnitSize {
		t.Errorf("len(PRG) = %d, want %d", len(img.PRG), 2*prgUnitSize)
	}
}

func TestLoadSkipsTrainer(t *testing.T) {
	img, err := Load(bytes.NewReader(buildImage(1, 0, 0x04, 0x00, true)))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if img.PRG[0] != 0xEA {
		t.Errorf("first PRG byte = %02X, want EA (trainer bytes not skipped correctly)", img.PRG[0])
	}
}

func TestLoadRejectsUnsupportedMapper(t *testing.T) {
	_, err := Load(bytes.NewReader(buildImage(1, 1, 0x10, 0x00, false)))
	if err == nil {
		t.Fatal("Load accepted mapper 1, which this core does not implement")
	}
}

func TestLoadRejectsBadMagic(t *testing.T) {
	data := buildImage(1, 1, 0, 0, false)
	data[0] = 'X'
	if _, err := Load(bytes.NewReader(data)); err == nil {
		t.Error("Load accepted a non-iNES file")
	}
}

func TestLoadTruncatedHeaderErrors(t *testing.T) {
	if _, err := Load(bytes.NewReader([]byte{'N', 'E', 'S'})); err == nil {
		t.Error("Load accepted a truncated header")
	}
}
