// Package io defines the basic interfaces for working with a 6502 family
// based I/O port (generally bi-directional). It's intended that
// implementors of I/O call the input callback (if provided) on every
// access and properly account for the fact that output won't mirror
// input for a cycle (to account for latches being loaded).
package io

// Port8 defines an 8 bit I/O port.
type Port8 interface {
	// Input returns the current value being set on the given input port.
	Input() uint8
}

// PortIn1 defines a single bit I/O port, such as one joystick direction or
// a console switch. True means asserted (pressed/on).
type PortIn1 interface {
	Input() bool
}
