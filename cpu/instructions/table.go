package instructions

// byte lengths and cycle counts per addressing mode, used while building
// the table below.
func bytesFor(mode AddressingMode) int {
	switch mode {
	case Implied, Accumulator:
		return 1
	case Immediate, Relative, ZeroPage, IndexedIndirect, IndirectIndexed, ZeroPageIndexedX, ZeroPageIndexedY:
		return 2
	default: // Absolute, Indirect, AbsoluteIndexedX, AbsoluteIndexedY
		return 3
	}
}

func def(opcode uint8, mnemonic string, mode AddressingMode, cycles int, pageSensitive bool, effect EffectCategory) Definition {
	return Definition{
		OpCode:         opcode,
		Mnemonic:       mnemonic,
		Bytes:          bytesFor(mode),
		Cycles:         cycles,
		AddressingMode: mode,
		PageSensitive:  pageSensitive,
		Effect:         effect,
	}
}

// definitions is the complete table of the 151 legal 6502 opcodes. Any
// opcode not present here is illegal.
var definitions = buildDefinitions()

func buildDefinitions() map[uint8]Definition {
	t := make(map[uint8]Definition, 151)

	add := func(d Definition) {
		t[d.OpCode] = d
	}

	// ADC
	add(def(0x69, "ADC", Immediate, 2, false, Read))
	add(def(0x65, "ADC", ZeroPage, 3, false, Read))
	add(def(0x75, "ADC", ZeroPageIndexedX, 4, false, Read))
	add(def(0x6D, "ADC", Absolute, 4, false, Read))
	add(def(0x7D, "ADC", AbsoluteIndexedX, 4, true, Read))
	add(def(0x79, "ADC", AbsoluteIndexedY, 4, true, Read))
	add(def(0x61, "ADC", IndexedIndirect, 6, false, Read))
	add(def(0x71, "ADC", IndirectIndexed, 5, true, Read))

	// AND
	add(def(0x29, "AND", Immediate, 2, false, Read))
	add(def(0x25, "AND", ZeroPage, 3, false, Read))
	add(def(0x35, "AND", ZeroPageIndexedX, 4, false, Read))
	add(def(0x2D, "AND", Absolute, 4, false, Read))
	add(def(0x3D, "AND", AbsoluteIndexedX, 4, true, Read))
	add(def(0x39, "AND", AbsoluteIndexedY, 4, true, Read))
	add(def(0x21, "AND", IndexedIndirect, 6, false, Read))
	add(def(0x31, "AND", IndirectIndexed, 5, true, Read))

	// ASL
	add(def(0x0A, "ASL", Accumulator, 2, false, RMW))
	add(def(0x06, "ASL", ZeroPage, 5, false, RMW))
	add(def(0x16, "ASL", ZeroPageIndexedX, 6, false, RMW))
	add(def(0x0E, "ASL", Absolute, 6, false, RMW))
	add(def(0x1E, "ASL", AbsoluteIndexedX, 7, false, RMW))

	// branches
	add(def(0x90, "BCC", Relative, 2, true, Flow))
	add(def(0xB0, "BCS", Relative, 2, true, Flow))
	add(def(0xF0, "BEQ", Relative, 2, true, Flow))
	add(def(0x30, "BMI", Relative, 2, true, Flow))
	add(def(0xD0, "BNE", Relative, 2, true, Flow))
	add(def(0x10, "BPL", Relative, 2, true, Flow))
	add(def(0x50, "BVC", Relative, 2, true, Flow))
	add(def(0x70, "BVS", Relative, 2, true, Flow))

	// BIT
	add(def(0x24, "BIT", ZeroPage, 3, false, Read))
	add(def(0x2C, "BIT", Absolute, 4, false, Read))

	// BRK
	add(def(0x00, "BRK", Implied, 7, false, Interrupt))

	// flag clears
	add(def(0x18, "CLC", Implied, 2, false, Read))
	add(def(0xD8, "CLD", Implied, 2, false, Read))
	add(def(0x58, "CLI", Implied, 2, false, Read))
	add(def(0xB8, "CLV", Implied, 2, false, Read))

	// CMP
	add(def(0xC9, "CMP", Immediate, 2, false, Read))
	add(def(0xC5, "CMP", ZeroPage, 3, false, Read))
	add(def(0xD5, "CMP", ZeroPageIndexedX, 4, false, Read))
	add(def(0xCD, "CMP", Absolute, 4, false, Read))
	add(def(0xDD, "CMP", AbsoluteIndexedX, 4, true, Read))
	add(def(0xD9, "CMP", AbsoluteIndexedY, 4, true, Read))
	add(def(0xC1, "CMP", IndexedIndirect, 6, false, Read))
	add(def(0xD1, "CMP", IndirectIndexed, 5, true, Read))

	// CPX / CPY
	add(def(0xE0, "CPX", Immediate, 2, false, Read))
	add(def(0xE4, "CPX", ZeroPage, 3, false, Read))
	add(def(0xEC, "CPX", Absolute, 4, false, Read))
	add(def(0xC0, "CPY", Immediate, 2, false, Read))
	add(def(0xC4, "CPY", ZeroPage, 3, false, Read))
	add(def(0xCC, "CPY", Absolute, 4, false, Read))

	// DEC
	add(def(0xC6, "DEC", ZeroPage, 5, false, RMW))
	add(def(0xD6, "DEC", ZeroPageIndexedX, 6, false, RMW))
	add(def(0xCE, "DEC", Absolute, 6, false, RMW))
	add(def(0xDE, "DEC", AbsoluteIndexedX, 7, false, RMW))

	add(def(0xCA, "DEX", Implied, 2, false, Read))
	add(def(0x88, "DEY", Implied, 2, false, Read))

	// EOR
	add(def(0x49, "EOR", Immediate, 2, false, Read))
	add(def(0x45, "EOR", ZeroPage, 3, false, Read))
	add(def(0x55, "EOR", ZeroPageIndexedX, 4, false, Read))
	add(def(0x4D, "EOR", Absolute, 4, false, Read))
	add(def(0x5D, "EOR", AbsoluteIndexedX, 4, true, Read))
	add(def(0x59, "EOR", AbsoluteIndexedY, 4, true, Read))
	add(def(0x41, "EOR", IndexedIndirect, 6, false, Read))
	add(def(0x51, "EOR", IndirectIndexed, 5, true, Read))

	// INC
	add(def(0xE6, "INC", ZeroPage, 5, false, RMW))
	add(def(0xF6, "INC", ZeroPageIndexedX, 6, false, RMW))
	add(def(0xEE, "INC", Absolute, 6, false, RMW))
	add(def(0xFE, "INC", AbsoluteIndexedX, 7, false, RMW))

	add(def(0xE8, "INX", Implied, 2, false, Read))
	add(def(0xC8, "INY", Implied, 2, false, Read))

	// JMP / JSR
	add(def(0x4C, "JMP", Absolute, 3, false, Flow))
	add(def(0x6C, "JMP", Indirect, 5, false, Flow))
	add(def(0x20, "JSR", Absolute, 6, false, Subroutine))

	// LDA
	add(def(0xA9, "LDA", Immediate, 2, false, Read))
	add(def(0xA5, "LDA", ZeroPage, 3, false, Read))
	add(def(0xB5, "LDA", ZeroPageIndexedX, 4, false, Read))
	add(def(0xAD, "LDA", Absolute, 4, false, Read))
	add(def(0xBD, "LDA", AbsoluteIndexedX, 4, true, Read))
	add(def(0xB9, "LDA", AbsoluteIndexedY, 4, true, Read))
	add(def(0xA1, "LDA", IndexedIndirect, 6, false, Read))
	add(def(0xB1, "LDA", IndirectIndexed, 5, true, Read))

	// LDX
	add(def(0xA2, "LDX", Immediate, 2, false, Read))
	add(def(0xA6, "LDX", ZeroPage, 3, false, Read))
	add(def(0xB6, "LDX", ZeroPageIndexedY, 4, false, Read))
	add(def(0xAE, "LDX", Absolute, 4, false, Read))
	add(def(0xBE, "LDX", AbsoluteIndexedY, 4, true, Read))

	// LDY
	add(def(0xA0, "LDY", Immediate, 2, false, Read))
	add(def(0xA4, "LDY", ZeroPage, 3, false, Read))
	add(def(0xB4, "LDY", ZeroPageIndexedX, 4, false, Read))
	add(def(0xAC, "LDY", Absolute, 4, false, Read))
	add(def(0xBC, "LDY", AbsoluteIndexedX, 4, true, Read))

	// LSR
	add(def(0x4A, "LSR", Accumulator, 2, false, RMW))
	add(def(0x46, "LSR", ZeroPage, 5, false, RMW))
	add(def(0x56, "LSR", ZeroPageIndexedX, 6, false, RMW))
	add(def(0x4E, "LSR", Absolute, 6, false, RMW))
	add(def(0x5E, "LSR", AbsoluteIndexedX, 7, false, RMW))

	add(def(0xEA, "NOP", Implied, 2, false, Read))

	// ORA
	add(def(0x09, "ORA", Immediate, 2, false, Read))
	add(def(0x05, "ORA", ZeroPage, 3, false, Read))
	add(def(0x15, "ORA", ZeroPageIndexedX, 4, false, Read))
	add(def(0x0D, "ORA", Absolute, 4, false, Read))
	add(def(0x1D, "ORA", AbsoluteIndexedX, 4, true, Read))
	add(def(0x19, "ORA", AbsoluteIndexedY, 4, true, Read))
	add(def(0x01, "ORA", IndexedIndirect, 6, false, Read))
	add(def(0x11, "ORA", IndirectIndexed, 5, true, Read))

	// stack instructions
	add(def(0x48, "PHA", Implied, 3, false, Write))
	add(def(0x08, "PHP", Implied, 3, false, Write))
	add(def(0x68, "PLA", Implied, 4, false, Read))
	add(def(0x28, "PLP", Implied, 4, false, Read))

	// ROL
	add(def(0x2A, "ROL", Accumulator, 2, false, RMW))
	add(def(0x26, "ROL", ZeroPage, 5, false, RMW))
	add(def(0x36, "ROL", ZeroPageIndexedX, 6, false, RMW))
	add(def(0x2E, "ROL", Absolute, 6, false, RMW))
	add(def(0x3E, "ROL", AbsoluteIndexedX, 7, false, RMW))

	// ROR
	add(def(0x6A, "ROR", Accumulator, 2, false, RMW))
	add(def(0x66, "ROR", ZeroPage, 5, false, RMW))
	add(def(0x76, "ROR", ZeroPageIndexedX, 6, false, RMW))
	add(def(0x6E, "ROR", Absolute, 6, false, RMW))
	add(def(0x7E, "ROR", AbsoluteIndexedX, 7, false, RMW))

	add(def(0x40, "RTI", Implied, 6, false, Interrupt))
	add(def(0x60, "RTS", Implied, 6, false, Subroutine))

	// SBC
	add(def(0xE9, "SBC", Immediate, 2, false, Read))
	add(def(0xE5, "SBC", ZeroPage, 3, false, Read))
	add(def(0xF5, "SBC", ZeroPageIndexedX, 4, false, Read))
	add(def(0xED, "SBC", Absolute, 4, false, Read))
	add(def(0xFD, "SBC", AbsoluteIndexedX, 4, true, Read))
	add(def(0xF9, "SBC", AbsoluteIndexedY, 4, true, Read))
	add(def(0xE1, "SBC", IndexedIndirect, 6, false, Read))
	add(def(0xF1, "SBC", IndirectIndexed, 5, true, Read))

	// flag sets
	add(def(0x38, "SEC", Implied, 2, false, Read))
	add(def(0xF8, "SED", Implied, 2, false, Read))
	add(def(0x78, "SEI", Implied, 2, false, Read))

	// STA
	add(def(0x85, "STA", ZeroPage, 3, false, Write))
	add(def(0x95, "STA", ZeroPageIndexedX, 4, false, Write))
	add(def(0x8D, "STA", Absolute, 4, false, Write))
	add(def(0x9D, "STA", AbsoluteIndexedX, 5, false, Write))
	add(def(0x99, "STA", AbsoluteIndexedY, 5, false, Write))
	add(def(0x81, "STA", IndexedIndirect, 6, false, Write))
	add(def(0x91, "STA", IndirectIndexed, 6, false, Write))

	// STX / STY
	add(def(0x86, "STX", ZeroPage, 3, false, Write))
	add(def(0x96, "STX", ZeroPageIndexedY, 4, false, Write))
	add(def(0x8E, "STX", Absolute, 4, false, Write))
	add(def(0x84, "STY", ZeroPage, 3, false, Write))
	add(def(0x94, "STY", ZeroPageIndexedX, 4, false, Write))
	add(def(0x8C, "STY", Absolute, 4, false, Write))

	// register transfers
	add(def(0xAA, "TAX", Implied, 2, false, Read))
	add(def(0xA8, "TAY", Implied, 2, false, Read))
	add(def(0xBA, "TSX", Implied, 2, false, Read))
	add(def(0x8A, "TXA", Implied, 2, false, Read))
	add(def(0x9A, "TXS", Implied, 2, false, Read))
	add(def(0x98, "TYA", Implied, 2, false, Read))

	return t
}
