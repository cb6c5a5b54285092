// Package savestate implements the binary save-state layout: CPU
// registers, cycle count, owed OAM DMA stall cycles, the halt flag, and
// the 2KiB of work RAM, versioned so an incompatible file is rejected
// cleanly rather than silently misread. Pending NMI/IRQ latch state is
// not saved.
package savestate

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/nesgo/nes2a03/bus"
	"github.com/nesgo/nes2a03/cpu"
	"github.com/nesgo/nes2a03/memory"
)

var magic = [4]byte{'N', 'E', 'S', 'S'}

const version = uint16(1)

// ErrIncompatibleVersion is returned when a save file's magic or version
// doesn't match what this build understands.
var ErrIncompatibleVersion = errors.New("savestate: incompatible magic or version")

// Save serializes c's architectural state and b's work RAM into a single
// byte slice.
func Save(c *cpu.Chip, b *bus.Bus) ([]byte, error) {
	ram, ok := memory.RawBytes(b.WorkRAM())
	if !ok {
		return nil, fmt.Errorf("savestate: bus work RAM is not a raw-backed bank")
	}

	var buf bytes.Buffer
	buf.Write(magic[:])
	binary.Write(&buf, binary.LittleEndian, version)

	snap := c.Snapshot()
	binary.Write(&buf, binary.LittleEndian, snap.A)
	binary.Write(&buf, binary.LittleEndian, snap.X)
	binary.Write(&buf, binary.LittleEndian, snap.Y)
	binary.Write(&buf, binary.LittleEndian, snap.S)
	binary.Write(&buf, binary.LittleEndian, snap.P)
	binary.Write(&buf, binary.LittleEndian, snap.PC)
	binary.Write(&buf, binary.LittleEndian, snap.Cycles)
	binary.Write(&buf, binary.LittleEndian, snap.Stall)

	halted := uint8(0)
	if snap.Halted {
		halted = 1
	}
	buf.WriteByte(halted)

	if len(ram) != 2048 {
		return nil, fmt.Errorf("savestate: work RAM is %d bytes, want 2048", len(ram))
	}
	buf.Write(ram)

	return buf.Bytes(), nil
}

// Load parses data produced by Save and restores it into c and b.
func Load(data []byte, c *cpu.Chip, b *bus.Bus) error {
	r := bytes.NewReader(data)

	var m [4]byte
	if _, err := r.Read(m[:]); err != nil {
		return fmt.Errorf("savestate: reading magic: %w", err)
	}
	if m != magic {
		return fmt.Errorf("%w: bad magic", ErrIncompatibleVersion)
	}
	var v uint16
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return fmt.Errorf("savestate: reading version: %w", err)
	}
	if v != version {
		return fmt.Errorf("%w: file version %d, want %d", ErrIncompatibleVersion, v, version)
	}

	var snap cpu.Snapshot
	var halted uint8
	for _, field := range []interface{}{
		&snap.A, &snap.X, &snap.Y, &snap.S, &snap.P, &snap.PC, &snap.Cycles, &snap.Stall, &halted,
	} {
		if err := binary.Read(r, binary.LittleEndian, field); err != nil {
			return fmt.Errorf("savestate: reading CPU state: %w", err)
		}
	}
	snap.Halted = halted != 0
	c.Restore(snap)

	ram, ok := memory.RawBytes(b.WorkRAM())
	if !ok {
		return fmt.Errorf("savestate: bus work RAM is not a raw-backed bank")
	}
	if n, err := r.Read(ram); err != nil || n != len(ram) {
		return fmt.Errorf("savestate: reading work RAM: got %d bytes: %w", n, err)
	}

	return nil
}
