package savestate

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/nesgo/nes2a03/bus"
	"github.com/nesgo/nes2a03/controller"
	"github.com/nesgo/nes2a03/cpu"
	"github.com/nesgo/nes2a03/irq"
	"github.com/nesgo/nes2a03/mapper"
	"github.com/nesgo/nes2a03/memory"
	"github.com/nesgo/nes2a03/ppu"
)

// memoryWorkRAM returns a snapshot copy of b's work RAM contents, suitable
// for comparing across two independently built machines.
func memoryWorkRAM(b *bus.Bus) ([2048]uint8, bool) {
	raw, ok := memory.RawBytes(b.WorkRAM())
	var out [2048]uint8
	if !ok || len(raw) != len(out) {
		return out, false
	}
	copy(out[:], raw)
	return out, true
}

// buildMachine wires a minimal but real CPU+bus+mapper+PPU shell, the
// same four-way wiring cmd/nes performs, around a tiny program that loops
// touching work RAM so a save/restore has state worth comparing.
func buildMachine(t *testing.T) (*cpu.Chip, *bus.Bus) {
	t.Helper()

	prg := make([]uint8, 16*1024)
	// LDX #$00; loop: INC $10,X; INX; CPX #$20; BNE loop
	prog := []uint8{0xA2, 0x00, 0xF6, 0x10, 0xE8, 0xE0, 0x20, 0xD0, 0xF9}
	copy(prg, prog)
	prg[0x3FFC] = 0x00 // reset vector low ($8000)
	prg[0x3FFD] = 0x80 // reset vector high

	m := mapper.NewNROM(prg, nil)
	var nmi irq.Latch
	p := ppu.Init(&ppu.ChipDef{NMI: &nmi})
	pad1 := controller.Init(&controller.ChipDef{})
	pad2 := controller.Init(&controller.ChipDef{})

	b, err := bus.New(m, p, pad1, pad2)
	if err != nil {
		t.Fatalf("bus.New: %v", err)
	}
	c, err := cpu.Init(&cpu.ChipDef{Bus: b, NMI: &nmi})
	if err != nil {
		t.Fatalf("cpu.Init: %v", err)
	}
	b.AttachCPU(c)
	return c, b
}

// TestSaveLoadRunEquivalence checks the round-trip law from the CPU core's
// testable properties: save -> load -> run N steps produces the same
// architectural state as run N steps -> save, for the same N.
func TestSaveLoadRunEquivalence(t *testing.T) {
	const stepsBeforeSnapshot = 5
	const stepsAfterSnapshot = 7

	direct, directBus := buildMachine(t)
	for i := 0; i < stepsBeforeSnapshot; i++ {
		direct.Step()
	}
	data, err := Save(direct, directBus)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	for i := 0; i < stepsAfterSnapshot; i++ {
		direct.Step()
	}
	wantSnap := direct.Snapshot()
	wantRAM, _ := memoryWorkRAM(directBus)

	restored, restoredBus := buildMachine(t)
	if err := Load(data, restored, restoredBus); err != nil {
		t.Fatalf("Load: %v", err)
	}
	for i := 0; i < stepsAfterSnapshot; i++ {
		restored.Step()
	}
	gotSnap := restored.Snapshot()
	gotRAM, _ := memoryWorkRAM(restoredBus)

	if diff := deep.Equal(wantSnap, gotSnap); diff != nil {
		t.Errorf("CPU snapshot diverged after save/load/run vs run/save: %v", diff)
	}
	if diff := deep.Equal(wantRAM, gotRAM); diff != nil {
		t.Errorf("work RAM diverged after save/load/run vs run/save: %v", diff)
	}
}

func TestLoadRejectsBadMagic(t *testing.T) {
	c, b := buildMachine(t)
	data, err := Save(c, b)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	data[0] = 'X'
	if err := Load(data, c, b); err == nil {
		t.Error("Load accepted a save with a corrupted magic")
	}
}

func TestLoadRejectsFutureVersion(t *testing.T) {
	c, b := buildMachine(t)
	data, err := Save(c, b)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	data[4] = uint8(version + 1) // low byte of the little-endian u16 version
	if err := Load(data, c, b); err == nil {
		t.Error("Load accepted a save with an unknown version")
	}
}
