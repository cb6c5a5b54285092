package cpu

// resolved is what addressing-mode decoding hands back to execute(). It
// never pre-reads a Store-class target (that would wrongly trigger read
// side effects on registers like $2002) and it separately reports
// whether the operand lives in A so RMW ops can share one code path
// between memory targets and the accumulator.
type resolved struct {
	addr         uint16
	hasAddr      bool
	pageCrossed  bool
	value        uint8 // immediate value, or the loaded value for Load/RMW
	isAccumulator bool
}

// resolveOperand decodes the operand for the opcode at pc (pc points at
// the byte after the opcode) according to mode, advancing no state other
// than reading through c.bus. It never reads a Store target's memory cell.
func (c *Chip) resolveOperand(mode addrMode, class opClass, pc uint16) resolved {
	switch mode {
	case modeImplied:
		return resolved{}

	case modeAccumulator:
		return resolved{value: c.A, isAccumulator: true}

	case modeImmediate:
		return resolved{value: c.bus.Read(pc), hasAddr: false}

	case modeZeroPage:
		addr := uint16(c.bus.Read(pc))
		return c.finishMemoryOperand(addr, false, class)

	case modeZeroPageX:
		addr := uint16(uint8(c.bus.Read(pc)) + c.X)
		return c.finishMemoryOperand(addr, false, class)

	case modeZeroPageY:
		addr := uint16(uint8(c.bus.Read(pc)) + c.Y)
		return c.finishMemoryOperand(addr, false, class)

	case modeAbsolute:
		addr := c.read16(pc)
		return c.finishMemoryOperand(addr, false, class)

	case modeAbsoluteX:
		base := c.read16(pc)
		addr := base + uint16(c.X)
		crossed := (base & 0xFF00) != (addr & 0xFF00)
		return c.finishMemoryOperand(addr, crossed, class)

	case modeAbsoluteY:
		base := c.read16(pc)
		addr := base + uint16(c.Y)
		crossed := (base & 0xFF00) != (addr & 0xFF00)
		return c.finishMemoryOperand(addr, crossed, class)

	case modeIndirectX:
		zp := uint8(c.bus.Read(pc)) + c.X
		addr := c.readZPWord(zp)
		return c.finishMemoryOperand(addr, false, class)

	case modeIndirectY:
		zp := uint8(c.bus.Read(pc))
		base := c.readZPWord(zp)
		addr := base + uint16(c.Y)
		crossed := (base & 0xFF00) != (addr & 0xFF00)
		return c.finishMemoryOperand(addr, crossed, class)

	case modeIndirect:
		// JMP ($xxFF) never crosses into the next page for the high byte
		// fetch; it wraps within the same page. This is the well known
		// hardware bug, reproduced intentionally, not fixed.
		ptr := c.read16(pc)
		lo := c.bus.Read(ptr)
		hiAddr := (ptr & 0xFF00) | uint16(uint8(ptr)+1)
		hi := c.bus.Read(hiAddr)
		return resolved{addr: uint16(hi)<<8 | uint16(lo), hasAddr: true}

	case modeRelative:
		// Caller (branch instructions) computes the target; just hand
		// back the signed offset byte as value.
		return resolved{value: c.bus.Read(pc)}
	}
	return resolved{}
}

// finishMemoryOperand fills in addr/hasAddr/pageCrossed, and for
// Load/RMW classes also performs the read. Store never reads its target.
func (c *Chip) finishMemoryOperand(addr uint16, crossed bool, class opClass) resolved {
	r := resolved{addr: addr, hasAddr: true, pageCrossed: crossed}
	if class == classLoad || class == classRMW {
		r.value = c.bus.Read(addr)
	}
	return r
}

// read16 reads a little-endian word from two consecutive bus addresses.
func (c *Chip) read16(addr uint16) uint16 {
	lo := c.bus.Read(addr)
	hi := c.bus.Read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// readZPWord reads a little-endian word entirely within the zero page,
// wrapping the high-byte fetch at $FF->$00 rather than crossing into page 1.
func (c *Chip) readZPWord(zp uint8) uint16 {
	lo := c.bus.Read(uint16(zp))
	hi := c.bus.Read(uint16(zp + 1))
	return uint16(hi)<<8 | uint16(lo)
}
