package cpu

// mnemonicNames maps each Mnemonic to its text form, for the disasm
// package. Index must stay in sync with the Mnemonic const block.
var mnemonicNames = map[Mnemonic]string{
	mnoInvalid: "???",
	mnoADC:     "ADC", mnoAHX: "AHX", mnoALR: "ALR", mnoAND: "AND", mnoANC: "ANC",
	mnoARR: "ARR", mnoASL: "ASL", mnoAXS: "AXS", mnoBCC: "BCC", mnoBCS: "BCS",
	mnoBEQ: "BEQ", mnoBIT: "BIT", mnoBMI: "BMI", mnoBNE: "BNE", mnoBPL: "BPL",
	mnoBRK: "BRK", mnoBVC: "BVC", mnoBVS: "BVS", mnoCLC: "CLC", mnoCLD: "CLD",
	mnoCLI: "CLI", mnoCLV: "CLV", mnoCMP: "CMP", mnoCPX: "CPX", mnoCPY: "CPY",
	mnoDCP: "DCP", mnoDEC: "DEC", mnoDEX: "DEX", mnoDEY: "DEY", mnoEOR: "EOR",
	mnoHLT: "HLT", mnoINC: "INC", mnoINX: "INX", mnoINY: "INY", mnoISC: "ISC",
	mnoJMP: "JMP", mnoJSR: "JSR", mnoLAS: "LAS", mnoLAX: "LAX", mnoLDA: "LDA",
	mnoLDX: "LDX", mnoLDY: "LDY", mnoLSR: "LSR", mnoNOP: "NOP", mnoOAL: "OAL",
	mnoORA: "ORA", mnoPHA: "PHA", mnoPHP: "PHP", mnoPLA: "PLA", mnoPLP: "PLP",
	mnoRLA: "RLA", mnoROL: "ROL", mnoROR: "ROR", mnoRRA: "RRA", mnoRTI: "RTI",
	mnoRTS: "RTS", mnoSAX: "SAX", mnoSBC: "SBC", mnoSEC: "SEC", mnoSED: "SED",
	mnoSEI: "SEI", mnoSHX: "SHX", mnoSHY: "SHY", mnoSLO: "SLO", mnoSRE: "SRE",
	mnoSTA: "STA", mnoSTX: "STX", mnoSTY: "STY", mnoTAS: "TAS", mnoTAX: "TAX",
	mnoTAY: "TAY", mnoTSX: "TSX", mnoTXA: "TXA", mnoTXS: "TXS", mnoTYA: "TYA",
	mnoXAA: "XAA",
}

// modeNames maps each addrMode to a short tag the disasm package uses to
// pick its operand formatting.
var modeNames = map[addrMode]string{
	modeImplied:     "implied",
	modeAccumulator: "accumulator",
	modeImmediate:   "immediate",
	modeZeroPage:    "zp",
	modeZeroPageX:   "zpx",
	modeZeroPageY:   "zpy",
	modeAbsolute:    "absolute",
	modeAbsoluteX:   "absolutex",
	modeAbsoluteY:   "absolutey",
	modeIndirectX:   "indirectx",
	modeIndirectY:   "indirecty",
	modeIndirect:    "indirect",
	modeRelative:    "relative",
}

// OpcodeInfo exposes the static decode of opcode, for the disassembler:
// its mnemonic text, addressing-mode tag (see modeNames above), and the
// number of operand bytes following the opcode.
func OpcodeInfo(opcode uint8) (mnemonic string, mode string, length uint8) {
	op := opcodeTable[opcode]
	return mnemonicNames[op.mnemonic], modeNames[op.mode], op.length
}
