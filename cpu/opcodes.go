package cpu

// Mnemonic identifies the operation an opcode performs, independent of its
// addressing mode. Undocumented opcodes get their commonly published names
// (http://nesdev.com/6502_cpu.txt, http://www.ffd2.com/fridge/docs/6502-NMOS.extra.opcodes).
type Mnemonic int

const (
	mnoInvalid Mnemonic = iota
	mnoADC
	mnoAHX
	mnoALR
	mnoAND
	mnoANC
	mnoARR
	mnoASL
	mnoAXS
	mnoBCC
	mnoBCS
	mnoBEQ
	mnoBIT
	mnoBMI
	mnoBNE
	mnoBPL
	mnoBRK
	mnoBVC
	mnoBVS
	mnoCLC
	mnoCLD
	mnoCLI
	mnoCLV
	mnoCMP
	mnoCPX
	mnoCPY
	mnoDCP
	mnoDEC
	mnoDEX
	mnoDEY
	mnoEOR
	mnoHLT
	mnoINC
	mnoINX
	mnoINY
	mnoISC
	mnoJMP
	mnoJSR
	mnoLAS
	mnoLAX
	mnoLDA
	mnoLDX
	mnoLDY
	mnoLSR
	mnoNOP
	mnoOAL
	mnoORA
	mnoPHA
	mnoPHP
	mnoPLA
	mnoPLP
	mnoRLA
	mnoROL
	mnoROR
	mnoRRA
	mnoRTI
	mnoRTS
	mnoSAX
	mnoSBC
	mnoSEC
	mnoSED
	mnoSEI
	mnoSHX
	mnoSHY
	mnoSLO
	mnoSRE
	mnoSTA
	mnoSTX
	mnoSTY
	mnoTAS
	mnoTAX
	mnoTAY
	mnoTSX
	mnoTXA
	mnoTXS
	mnoTYA
	mnoXAA
)

// addrMode identifies the addressing mode an opcode decodes its operand
// with. See spec section 4.2; this is the tag the dense jump table in
// resolveOperand switches on.
type addrMode int

const (
	modeImplied addrMode = iota
	modeAccumulator
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirectX
	modeIndirectY
	modeIndirect // JMP only, reproduces the page-wrap bug
	modeRelative
)

// opClass distinguishes how an instruction's addressing resolves memory:
// a load only reads, a store only writes, and a read-modify-write does
// both as two distinct bus transactions (never an aliased reference).
type opClass int

const (
	classOther opClass = iota // branches, jumps, stack ops, flag ops, register transfers, BRK
	classLoad
	classStore
	classRMW
)

// opcodeInfo is the static per-opcode descriptor: everything needed to
// decode and account cycles without touching any instruction-specific
// logic. execute() dispatches on mnemonic once the operand's resolved.
type opcodeInfo struct {
	mnemonic  Mnemonic
	mode      addrMode
	class     opClass
	length    uint8 // operand bytes, not counting the opcode itself
	cycles    uint8 // base cycles, before branch/page-cross adjustments
	pageCross bool  // true if crossing a page adds a cycle (load-only; stores/RMW always pay it up front)
}

// opcodeTable is the 256-entry dispatch table, index by opcode byte.
// Undocumented opcodes are filled in from the widely published tables
// referenced above; HLT (JAM) opcodes halt the CPU as real silicon does.
var opcodeTable = [256]opcodeInfo{
	0x00: {mnoBRK, modeImplied, classOther, 1, 7, false},
	0x01: {mnoORA, modeIndirectX, classLoad, 1, 6, false},
	0x02: {mnoHLT, modeImplied, classOther, 0, 2, false},
	0x03: {mnoSLO, modeIndirectX, classRMW, 1, 8, false},
	0x04: {mnoNOP, modeZeroPage, classLoad, 1, 3, false},
	0x05: {mnoORA, modeZeroPage, classLoad, 1, 3, false},
	0x06: {mnoASL, modeZeroPage, classRMW, 1, 5, false},
	0x07: {mnoSLO, modeZeroPage, classRMW, 1, 5, false},
	0x08: {mnoPHP, modeImplied, classOther, 0, 3, false},
	0x09: {mnoORA, modeImmediate, classLoad, 1, 2, false},
	0x0A: {mnoASL, modeAccumulator, classRMW, 0, 2, false},
	0x0B: {mnoANC, modeImmediate, classLoad, 1, 2, false},
	0x0C: {mnoNOP, modeAbsolute, classLoad, 2, 4, false},
	0x0D: {mnoORA, modeAbsolute, classLoad, 2, 4, false},
	0x0E: {mnoASL, modeAbsolute, classRMW, 2, 6, false},
	0x0F: {mnoSLO, modeAbsolute, classRMW, 2, 6, false},
	0x10: {mnoBPL, modeRelative, classOther, 1, 2, false},
	0x11: {mnoORA, modeIndirectY, classLoad, 1, 5, true},
	0x12: {mnoHLT, modeImplied, classOther, 0, 2, false},
	0x13: {mnoSLO, modeIndirectY, classRMW, 1, 8, false},
	0x14: {mnoNOP, modeZeroPageX, classLoad, 1, 4, false},
	0x15: {mnoORA, modeZeroPageX, classLoad, 1, 4, false},
	0x16: {mnoASL, modeZeroPageX, classRMW, 1, 6, false},
	0x17: {mnoSLO, modeZeroPageX, classRMW, 1, 6, false},
	0x18: {mnoCLC, modeImplied, classOther, 0, 2, false},
	0x19: {mnoORA, modeAbsoluteY, classLoad, 2, 4, true},
	0x1A: {mnoNOP, modeImplied, classOther, 0, 2, false},
	0x1B: {mnoSLO, modeAbsoluteY, classRMW, 2, 7, false},
	0x1C: {mnoNOP, modeAbsoluteX, classLoad, 2, 4, true},
	0x1D: {mnoORA, modeAbsoluteX, classLoad, 2, 4, true},
	0x1E: {mnoASL, modeAbsoluteX, classRMW, 2, 7, false},
	0x1F: {mnoSLO, modeAbsoluteX, classRMW, 2, 7, false},
	0x20: {mnoJSR, modeAbsolute, classOther, 2, 6, false},
	0x21: {mnoAND, modeIndirectX, classLoad, 1, 6, false},
	0x22: {mnoHLT, modeImplied, classOther, 0, 2, false},
	0x23: {mnoRLA, modeIndirectX, classRMW, 1, 8, false},
	0x24: {mnoBIT, modeZeroPage, classLoad, 1, 3, false},
	0x25: {mnoAND, modeZeroPage, classLoad, 1, 3, false},
	0x26: {mnoROL, modeZeroPage, classRMW, 1, 5, false},
	0x27: {mnoRLA, modeZeroPage, classRMW, 1, 5, false},
	0x28: {mnoPLP, modeImplied, classOther, 0, 4, false},
	0x29: {mnoAND, modeImmediate, classLoad, 1, 2, false},
	0x2A: {mnoROL, modeAccumulator, classRMW, 0, 2, false},
	0x2B: {mnoANC, modeImmediate, classLoad, 1, 2, false},
	0x2C: {mnoBIT, modeAbsolute, classLoad, 2, 4, false},
	0x2D: {mnoAND, modeAbsolute, classLoad, 2, 4, false},
	0x2E: {mnoROL, modeAbsolute, classRMW, 2, 6, false},
	0x2F: {mnoRLA, modeAbsolute, classRMW, 2, 6, false},
	0x30: {mnoBMI, modeRelative, classOther, 1, 2, false},
	0x31: {mnoAND, modeIndirectY, classLoad, 1, 5, true},
	0x32: {mnoHLT, modeImplied, classOther, 0, 2, false},
	0x33: {mnoRLA, modeIndirectY, classRMW, 1, 8, false},
	0x34: {mnoNOP, modeZeroPageX, classLoad, 1, 4, false},
	0x35: {mnoAND, modeZeroPageX, classLoad, 1, 4, false},
	0x36: {mnoROL, modeZeroPageX, classRMW, 1, 6, false},
	0x37: {mnoRLA, modeZeroPageX, classRMW, 1, 6, false},
	0x38: {mnoSEC, modeImplied, classOther, 0, 2, false},
	0x39: {mnoAND, modeAbsoluteY, classLoad, 2, 4, true},
	0x3A: {mnoNOP, modeImplied, classOther, 0, 2, false},
	0x3B: {mnoRLA, modeAbsoluteY, classRMW, 2, 7, false},
	0x3C: {mnoNOP, modeAbsoluteX, classLoad, 2, 4, true},
	0x3D: {mnoAND, modeAbsoluteX, classLoad, 2, 4, true},
	0x3E: {mnoROL, modeAbsoluteX, classRMW, 2, 7, false},
	0x3F: {mnoRLA, modeAbsoluteX, classRMW, 2, 7, false},
	0x40: {mnoRTI, modeImplied, classOther, 0, 6, false},
	0x41: {mnoEOR, modeIndirectX, classLoad, 1, 6, false},
	0x42: {mnoHLT, modeImplied, classOther, 0, 2, false},
	0x43: {mnoSRE, modeIndirectX, classRMW, 1, 8, false},
	0x44: {mnoNOP, modeZeroPage, classLoad, 1, 3, false},
	0x45: {mnoEOR, modeZeroPage, classLoad, 1, 3, false},
	0x46: {mnoLSR, modeZeroPage, classRMW, 1, 5, false},
	0x47: {mnoSRE, modeZeroPage, classRMW, 1, 5, false},
	0x48: {mnoPHA, modeImplied, classOther, 0, 3, false},
	0x49: {mnoEOR, modeImmediate, classLoad, 1, 2, false},
	0x4A: {mnoLSR, modeAccumulator, classRMW, 0, 2, false},
	0x4B: {mnoALR, modeImmediate, classLoad, 1, 2, false},
	0x4C: {mnoJMP, modeAbsolute, classOther, 2, 3, false},
	0x4D: {mnoEOR, modeAbsolute, classLoad, 2, 4, false},
	0x4E: {mnoLSR, modeAbsolute, classRMW, 2, 6, false},
	0x4F: {mnoSRE, modeAbsolute, classRMW, 2, 6, false},
	0x50: {mnoBVC, modeRelative, classOther, 1, 2, false},
	0x51: {mnoEOR, modeIndirectY, classLoad, 1, 5, true},
	0x52: {mnoHLT, modeImplied, classOther, 0, 2, false},
	0x53: {mnoSRE, modeIndirectY, classRMW, 1, 8, false},
	0x54: {mnoNOP, modeZeroPageX, classLoad, 1, 4, false},
	0x55: {mnoEOR, modeZeroPageX, classLoad, 1, 4, false},
	0x56: {mnoLSR, modeZeroPageX, classRMW, 1, 6, false},
	0x57: {mnoSRE, modeZeroPageX, classRMW, 1, 6, false},
	0x58: {mnoCLI, modeImplied, classOther, 0, 2, false},
	0x59: {mnoEOR, modeAbsoluteY, classLoad, 2, 4, true},
	0x5A: {mnoNOP, modeImplied, classOther, 0, 2, false},
	0x5B: {mnoSRE, modeAbsoluteY, classRMW, 2, 7, false},
	0x5C: {mnoNOP, modeAbsoluteX, classLoad, 2, 4, true},
	0x5D: {mnoEOR, modeAbsoluteX, classLoad, 2, 4, true},
	0x5E: {mnoLSR, modeAbsoluteX, classRMW, 2, 7, false},
	0x5F: {mnoSRE, modeAbsoluteX, classRMW, 2, 7, false},
	0x60: {mnoRTS, modeImplied, classOther, 0, 6, false},
	0x61: {mnoADC, modeIndirectX, classLoad, 1, 6, false},
	0x62: {mnoHLT, modeImplied, classOther, 0, 2, false},
	0x63: {mnoRRA, modeIndirectX, classRMW, 1, 8, false},
	0x64: {mnoNOP, modeZeroPage, classLoad, 1, 3, false},
	0x65: {mnoADC, modeZeroPage, classLoad, 1, 3, false},
	0x66: {mnoROR, modeZeroPage, classRMW, 1, 5, false},
	0x67: {mnoRRA, modeZeroPage, classRMW, 1, 5, false},
	0x68: {mnoPLA, modeImplied, classOther, 0, 4, false},
	0x69: {mnoADC, modeImmediate, classLoad, 1, 2, false},
	0x6A: {mnoROR, modeAccumulator, classRMW, 0, 2, false},
	0x6B: {mnoARR, modeImmediate, classLoad, 1, 2, false},
	0x6C: {mnoJMP, modeIndirect, classOther, 2, 5, false},
	0x6D: {mnoADC, modeAbsolute, classLoad, 2, 4, false},
	0x6E: {mnoROR, modeAbsolute, classRMW, 2, 6, false},
	0x6F: {mnoRRA, modeAbsolute, classRMW, 2, 6, false},
	0x70: {mnoBVS, modeRelative, classOther, 1, 2, false},
	0x71: {mnoADC, modeIndirectY, classLoad, 1, 5, true},
	0x72: {mnoHLT, modeImplied, classOther, 0, 2, false},
	0x73: {mnoRRA, modeIndirectY, classRMW, 1, 8, false},
	0x74: {mnoNOP, modeZeroPageX, classLoad, 1, 4, false},
	0x75: {mnoADC, modeZeroPageX, classLoad, 1, 4, false},
	0x76: {mnoROR, modeZeroPageX, classRMW, 1, 6, false},
	0x77: {mnoRRA, modeZeroPageX, classRMW, 1, 6, false},
	0x78: {mnoSEI, modeImplied, classOther, 0, 2, false},
	0x79: {mnoADC, modeAbsoluteY, classLoad, 2, 4, true},
	0x7A: {mnoNOP, modeImplied, classOther, 0, 2, false},
	0x7B: {mnoRRA, modeAbsoluteY, classRMW, 2, 7, false},
	0x7C: {mnoNOP, modeAbsoluteX, classLoad, 2, 4, true},
	0x7D: {mnoADC, modeAbsoluteX, classLoad, 2, 4, true},
	0x7E: {mnoROR, modeAbsoluteX, classRMW, 2, 7, false},
	0x7F: {mnoRRA, modeAbsoluteX, classRMW, 2, 7, false},
	0x80: {mnoNOP, modeImmediate, classLoad, 1, 2, false},
	0x81: {mnoSTA, modeIndirectX, classStore, 1, 6, false},
	0x82: {mnoNOP, modeImmediate, classLoad, 1, 2, false},
	0x83: {mnoSAX, modeIndirectX, classStore, 1, 6, false},
	0x84: {mnoSTY, modeZeroPage, classStore, 1, 3, false},
	0x85: {mnoSTA, modeZeroPage, classStore, 1, 3, false},
	0x86: {mnoSTX, modeZeroPage, classStore, 1, 3, false},
	0x87: {mnoSAX, modeZeroPage, classStore, 1, 3, false},
	0x88: {mnoDEY, modeImplied, classOther, 0, 2, false},
	0x89: {mnoNOP, modeImmediate, classLoad, 1, 2, false},
	0x8A: {mnoTXA, modeImplied, classOther, 0, 2, false},
	0x8B: {mnoXAA, modeImmediate, classLoad, 1, 2, false},
	0x8C: {mnoSTY, modeAbsolute, classStore, 2, 4, false},
	0x8D: {mnoSTA, modeAbsolute, classStore, 2, 4, false},
	0x8E: {mnoSTX, modeAbsolute, classStore, 2, 4, false},
	0x8F: {mnoSAX, modeAbsolute, classStore, 2, 4, false},
	0x90: {mnoBCC, modeRelative, classOther, 1, 2, false},
	0x91: {mnoSTA, modeIndirectY, classStore, 1, 6, false},
	0x92: {mnoHLT, modeImplied, classOther, 0, 2, false},
	0x93: {mnoAHX, modeIndirectY, classStore, 1, 6, false},
	0x94: {mnoSTY, modeZeroPageX, classStore, 1, 4, false},
	0x95: {mnoSTA, modeZeroPageX, classStore, 1, 4, false},
	0x96: {mnoSTX, modeZeroPageY, classStore, 1, 4, false},
	0x97: {mnoSAX, modeZeroPageY, classStore, 1, 4, false},
	0x98: {mnoTYA, modeImplied, classOther, 0, 2, false},
	0x99: {mnoSTA, modeAbsoluteY, classStore, 2, 5, false},
	0x9A: {mnoTXS, modeImplied, classOther, 0, 2, false},
	0x9B: {mnoTAS, modeAbsoluteY, classStore, 2, 5, false},
	0x9C: {mnoSHY, modeAbsoluteX, classStore, 2, 5, false},
	0x9D: {mnoSTA, modeAbsoluteX, classStore, 2, 5, false},
	0x9E: {mnoSHX, modeAbsoluteY, classStore, 2, 5, false},
	0x9F: {mnoAHX, modeAbsoluteY, classStore, 2, 5, false},
	0xA0: {mnoLDY, modeImmediate, classLoad, 1, 2, false},
	0xA1: {mnoLDA, modeIndirectX, classLoad, 1, 6, false},
	0xA2: {mnoLDX, modeImmediate, classLoad, 1, 2, false},
	0xA3: {mnoLAX, modeIndirectX, classLoad, 1, 6, false},
	0xA4: {mnoLDY, modeZeroPage, classLoad, 1, 3, false},
	0xA5: {mnoLDA, modeZeroPage, classLoad, 1, 3, false},
	0xA6: {mnoLDX, modeZeroPage, classLoad, 1, 3, false},
	0xA7: {mnoLAX, modeZeroPage, classLoad, 1, 3, false},
	0xA8: {mnoTAY, modeImplied, classOther, 0, 2, false},
	0xA9: {mnoLDA, modeImmediate, classLoad, 1, 2, false},
	0xAA: {mnoTAX, modeImplied, classOther, 0, 2, false},
	0xAB: {mnoOAL, modeImmediate, classLoad, 1, 2, false},
	0xAC: {mnoLDY, modeAbsolute, classLoad, 2, 4, false},
	0xAD: {mnoLDA, modeAbsolute, classLoad, 2, 4, false},
	0xAE: {mnoLDX, modeAbsolute, classLoad, 2, 4, false},
	0xAF: {mnoLAX, modeAbsolute, classLoad, 2, 4, false},
	0xB0: {mnoBCS, modeRelative, classOther, 1, 2, false},
	0xB1: {mnoLDA, modeIndirectY, classLoad, 1, 5, true},
	0xB2: {mnoHLT, modeImplied, classOther, 0, 2, false},
	0xB3: {mnoLAX, modeIndirectY, classLoad, 1, 5, true},
	0xB4: {mnoLDY, modeZeroPageX, classLoad, 1, 4, false},
	0xB5: {mnoLDA, modeZeroPageX, classLoad, 1, 4, false},
	0xB6: {mnoLDX, modeZeroPageY, classLoad, 1, 4, false},
	0xB7: {mnoLAX, modeZeroPageY, classLoad, 1, 4, false},
	0xB8: {mnoCLV, modeImplied, classOther, 0, 2, false},
	0xB9: {mnoLDA, modeAbsoluteY, classLoad, 2, 4, true},
	0xBA: {mnoTSX, modeImplied, classOther, 0, 2, false},
	0xBB: {mnoLAS, modeAbsoluteY, classLoad, 2, 4, true},
	0xBC: {mnoLDY, modeAbsoluteX, classLoad, 2, 4, true},
	0xBD: {mnoLDA, modeAbsoluteX, classLoad, 2, 4, true},
	0xBE: {mnoLDX, modeAbsoluteY, classLoad, 2, 4, true},
	0xBF: {mnoLAX, modeAbsoluteY, classLoad, 2, 4, true},
	0xC0: {mnoCPY, modeImmediate, classLoad, 1, 2, false},
	0xC1: {mnoCMP, modeIndirectX, classLoad, 1, 6, false},
	0xC2: {mnoNOP, modeImmediate, classLoad, 1, 2, false},
	0xC3: {mnoDCP, modeIndirectX, classRMW, 1, 8, false},
	0xC4: {mnoCPY, modeZeroPage, classLoad, 1, 3, false},
	0xC5: {mnoCMP, modeZeroPage, classLoad, 1, 3, false},
	0xC6: {mnoDEC, modeZeroPage, classRMW, 1, 5, false},
	0xC7: {mnoDCP, modeZeroPage, classRMW, 1, 5, false},
	0xC8: {mnoINY, modeImplied, classOther, 0, 2, false},
	0xC9: {mnoCMP, modeImmediate, classLoad, 1, 2, false},
	0xCA: {mnoDEX, modeImplied, classOther, 0, 2, false},
	0xCB: {mnoAXS, modeImmediate, classLoad, 1, 2, false},
	0xCC: {mnoCPY, modeAbsolute, classLoad, 2, 4, false},
	0xCD: {mnoCMP, modeAbsolute, classLoad, 2, 4, false},
	0xCE: {mnoDEC, modeAbsolute, classRMW, 2, 6, false},
	0xCF: {mnoDCP, modeAbsolute, classRMW, 2, 6, false},
	0xD0: {mnoBNE, modeRelative, classOther, 1, 2, false},
	0xD1: {mnoCMP, modeIndirectY, classLoad, 1, 5, true},
	0xD2: {mnoHLT, modeImplied, classOther, 0, 2, false},
	0xD3: {mnoDCP, modeIndirectY, classRMW, 1, 8, false},
	0xD4: {mnoNOP, modeZeroPageX, classLoad, 1, 4, false},
	0xD5: {mnoCMP, modeZeroPageX, classLoad, 1, 4, false},
	0xD6: {mnoDEC, modeZeroPageX, classRMW, 1, 6, false},
	0xD7: {mnoDCP, modeZeroPageX, classRMW, 1, 6, false},
	0xD8: {mnoCLD, modeImplied, classOther, 0, 2, false},
	0xD9: {mnoCMP, modeAbsoluteY, classLoad, 2, 4, true},
	0xDA: {mnoNOP, modeImplied, classOther, 0, 2, false},
	0xDB: {mnoDCP, modeAbsoluteY, classRMW, 2, 7, false},
	0xDC: {mnoNOP, modeAbsoluteX, classLoad, 2, 4, true},
	0xDD: {mnoCMP, modeAbsoluteX, classLoad, 2, 4, true},
	0xDE: {mnoDEC, modeAbsoluteX, classRMW, 2, 7, false},
	0xDF: {mnoDCP, modeAbsoluteX, classRMW, 2, 7, false},
	0xE0: {mnoCPX, modeImmediate, classLoad, 1, 2, false},
	0xE1: {mnoSBC, modeIndirectX, classLoad, 1, 6, false},
	0xE2: {mnoNOP, modeImmediate, classLoad, 1, 2, false},
	0xE3: {mnoISC, modeIndirectX, classRMW, 1, 8, false},
	0xE4: {mnoCPX, modeZeroPage, classLoad, 1, 3, false},
	0xE5: {mnoSBC, modeZeroPage, classLoad, 1, 3, false},
	0xE6: {mnoINC, modeZeroPage, classRMW, 1, 5, false},
	0xE7: {mnoISC, modeZeroPage, classRMW, 1, 5, false},
	0xE8: {mnoINX, modeImplied, classOther, 0, 2, false},
	0xE9: {mnoSBC, modeImmediate, classLoad, 1, 2, false},
	0xEA: {mnoNOP, modeImplied, classOther, 0, 2, false},
	0xEB: {mnoSBC, modeImmediate, classLoad, 1, 2, false},
	0xEC: {mnoCPX, modeAbsolute, classLoad, 2, 4, false},
	0xED: {mnoSBC, modeAbsolute, classLoad, 2, 4, false},
	0xEE: {mnoINC, modeAbsolute, classRMW, 2, 6, false},
	0xEF: {mnoISC, modeAbsolute, classRMW, 2, 6, false},
	0xF0: {mnoBEQ, modeRelative, classOther, 1, 2, false},
	0xF1: {mnoSBC, modeIndirectY, classLoad, 1, 5, true},
	0xF2: {mnoHLT, modeImplied, classOther, 0, 2, false},
	0xF3: {mnoISC, modeIndirectY, classRMW, 1, 8, false},
	0xF4: {mnoNOP, modeZeroPageX, classLoad, 1, 4, false},
	0xF5: {mnoSBC, modeZeroPageX, classLoad, 1, 4, false},
	0xF6: {mnoINC, modeZeroPageX, classRMW, 1, 6, false},
	0xF7: {mnoISC, modeZeroPageX, classRMW, 1, 6, false},
	0xF8: {mnoSED, modeImplied, classOther, 0, 2, false},
	0xF9: {mnoSBC, modeAbsoluteY, classLoad, 2, 4, true},
	0xFA: {mnoNOP, modeImplied, classOther, 0, 2, false},
	0xFB: {mnoISC, modeAbsoluteY, classRMW, 2, 7, false},
	0xFC: {mnoNOP, modeAbsoluteX, classLoad, 2, 4, true},
	0xFD: {mnoSBC, modeAbsoluteX, classLoad, 2, 4, true},
	0xFE: {mnoINC, modeAbsoluteX, classRMW, 2, 7, false},
	0xFF: {mnoISC, modeAbsoluteX, classRMW, 2, 7, false},
}
