// Package scheduler interleaves the CPU and PPU shell at their real NTSC
// clock ratio: the CPU runs at master-clock/12, the PPU shell at
// master-clock/4 (3 PPU dots per CPU cycle).
package scheduler

import (
	"context"

	"github.com/nesgo/nes2a03/cpu"
)

const (
	cpuDivisor = 12
	ppuDivisor = 4
	ppuPerCPU  = cpuDivisor / ppuDivisor // 3 PPU ticks per CPU cycle
)

// PPU is the subset of ppu.Chip the scheduler drives.
type PPU interface {
	Tick()
	Frames() uint64
}

// Scheduler drives a cpu.Chip and a PPU together at the NTSC clock ratio.
type Scheduler struct {
	cpu *cpu.Chip
	ppu PPU
}

// New constructs a Scheduler over an already-wired CPU and PPU.
func New(c *cpu.Chip, p PPU) *Scheduler {
	return &Scheduler{cpu: c, ppu: p}
}

// Run executes until frames full PPU frames have completed (vblank to
// vblank). It returns the total CPU cycles executed.
func (s *Scheduler) Run(frames int) uint64 {
	target := s.ppu.Frames() + uint64(frames)
	var cpuCycles uint64
	for s.ppu.Frames() < target {
		if s.cpu.Halted() {
			return cpuCycles
		}
		cpuCycles += uint64(s.step())
	}
	return cpuCycles
}

// RunContext runs indefinitely, one CPU instruction at a time, until ctx
// is cancelled or the CPU halts. The caller owns the context's lifetime.
func (s *Scheduler) RunContext(ctx context.Context) uint64 {
	var cpuCycles uint64
	for {
		select {
		case <-ctx.Done():
			return cpuCycles
		default:
		}
		if s.cpu.Halted() {
			return cpuCycles
		}
		cpuCycles += uint64(s.step())
	}
}

func (s *Scheduler) step() uint8 {
	n := s.cpu.Step()
	for i := 0; i < int(n)*ppuPerCPU; i++ {
		s.ppu.Tick()
	}
	return n
}
