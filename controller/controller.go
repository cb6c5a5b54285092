// Package controller implements the NES standard controller's shift
// register, the 4021-style 8-bit parallel-in/serial-out chip that
// serializes 8 button states onto $4016/$4017's bit 0 one read at a time.
package controller

import (
	"fmt"

	"github.com/nesgo/nes2a03/io"
)

// ButtonSource supplies the live state of the 8 controller buttons, bit
// order A,B,Select,Start,Up,Down,Left,Right (the NES standard order), as
// an io.Port8: the whole pad is one 8-bit input port the shift register
// samples on strobe.
type ButtonSource = io.Port8

// Chip is one controller port's shift register.
type Chip struct {
	source ButtonSource
	strobe bool
	shift  uint8
	read   uint8 // number of bits already shifted out since the last latch
}

// ChipDef configures a controller Chip.
type ChipDef struct {
	Source ButtonSource
}

// Init constructs a controller Chip. A nil Source reads back as all
// buttons released (0x00), matching an empty controller port.
func Init(def *ChipDef) *Chip {
	return &Chip{source: def.Source}
}

// Strobe sets the strobe line. While high the shift register continuously
// reloads from the button source, so every read returns button A's state;
// the high-to-low transition freezes the snapshot that Read() then shifts
// out one bit at a time.
func (c *Chip) Strobe(high bool) {
	wasHigh := c.strobe
	c.strobe = high
	if wasHigh && !high {
		c.latch()
	}
	if high {
		c.latch()
	}
}

func (c *Chip) latch() {
	b := uint8(0)
	if c.source != nil {
		b = c.source.Input()
	}
	c.shift = b
	c.read = 0
}

// Read returns the next bit (in bit 0) of the shift register, LSB (button
// A) first. After 8 reads it returns 1 in bit 0, the real hardware's
// open-bus convention many games rely on to detect a second controller's
// absence.
func (c *Chip) Read() uint8 {
	if c.strobe {
		c.latch()
	}
	if c.read >= 8 {
		return 1
	}
	bit := c.shift & 0x01
	c.shift >>= 1
	c.read++
	return bit
}

// Debug returns a short register dump in the teacher chip packages' style.
func (c *Chip) Debug() string {
	return fmt.Sprintf("strobe=%v shift=%02X read=%d", c.strobe, c.shift, c.read)
}
