package bus

// ReadSymbols and WriteSymbols give the canonical register name for every
// addressable TIA/RIOT register, for use by disassembly (see Describe).
// Indices are chip-local addresses as returned by
// mapAddress, not raw bus addresses.
//
// Grounded on hardware/memory/addresses/addresses.go's
// CanonicalReadSymbols/CanonicalWriteSymbols tables.
var ReadSymbols = map[uint16]string{
	// TIA
	0x00: "CXM0P",
	0x01: "CXM1P",
	0x02: "CXP0FB",
	0x03: "CXP1FB",
	0x04: "CXM0FB",
	0x05: "CXM1FB",
	0x06: "CXBLPF",
	0x07: "CXPPMM",
	0x08: "INPT0",
	0x09: "INPT1",
	0x0a: "INPT2",
	0x0b: "INPT3",
	0x0c: "INPT4",
	0x0d: "INPT5",

	// RIOT
	0x0280: "SWCHA",
	0x0281: "SWACNT",
	0x0282: "SWCHB",
	0x0283: "SWBCNT",
	0x0284: "INTIM",
	0x0285: "TIMINT",
}

var WriteSymbols = map[uint16]string{
	// TIA
	0x00: "VSYNC",
	0x01: "VBLANK",
	0x02: "WSYNC",
	0x03: "RSYNC",
	0x04: "NUSIZ0",
	0x05: "NUSIZ1",
	0x06: "COLUP0",
	0x07: "COLUP1",
	0x08: "COLUPF",
	0x09: "COLUBK",
	0x0a: "CTRLPF",
	0x0b: "REFP0",
	0x0c: "REFP1",
	0x0d: "PF0",
	0x0e: "PF1",
	0x0f: "PF2",
	0x10: "RESP0",
	0x11: "RESP1",
	0x12: "RESM0",
	0x13: "RESM1",
	0x14: "RESBL",
	0x15: "AUDC0",
	0x16: "AUDC1",
	0x17: "AUDF0",
	0x18: "AUDF1",
	0x19: "AUDV0",
	0x1a: "AUDV1",
	0x1b: "GRP0",
	0x1c: "GRP1",
	0x1d: "ENAM0",
	0x1e: "ENAM1",
	0x1f: "ENABL",
	0x20: "HMP0",
	0x21: "HMP1",
	0x22: "HMM0",
	0x23: "HMM1",
	0x24: "HMBL",
	0x25: "VDELP0",
	0x26: "VDELP1",
	0x27: "VDELBL",
	0x28: "RESMP0",
	0x29: "RESMP1",
	0x2a: "HMOVE",
	0x2b: "HMCLR",
	0x2c: "CXCLR",

	// RIOT
	0x0280: "SWCHA",
	0x0281: "SWACNT",
	0x0294: "TIM1T",
	0x0295: "TIM8T",
	0x0296: "TIM64T",
	0x0297: "TIM1024",
}

// SymbolFor returns the canonical register name for a chip-local address,
// or "" if the address names nothing.
func SymbolFor(addr uint16, read bool) string {
	if read {
		return ReadSymbols[addr]
	}
	return WriteSymbols[addr]
}

// Describe returns the canonical register name for addr as the CPU sees
// it - a full, possibly-mirrored bus address, not a chip-local one - or ""
// if addr falls in RAM or cartridge space, neither of which has symbolic
// register names. This is what a disassembler annotates CPU operands with
// (see cpu.CPU.Disassemble).
func (b *Bus) Describe(addr uint16, read bool) string {
	local, a := mapAddress(addr, read)
	switch a {
	case areaTIA, areaRIOT:
		return SymbolFor(local, read)
	}
	return ""
}
