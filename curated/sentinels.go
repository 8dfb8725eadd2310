package curated

// Sentinel patterns for the handful of error conditions this module can
// raise. Each is a curated.Errorf() pattern; use curated.Is()/curated.Has()
// against these constants rather than comparing error strings directly.
const (
	// UnsupportedRomSize is raised when a ROM image handed to
	// console.NewFromROM is not one of the cartridge sizes the Atari 2600
	// bus can decode.
	UnsupportedRomSize = "unsupported ROM size: %d bytes"

	// IllegalOpcode is raised when the CPU fetches an opcode outside the
	// 151 defined by the official 6502 instruction set.
	IllegalOpcode = "illegal opcode %#02x at %#04x"

	// BusError is reserved for addresses that fall outside of the 13 bit
	// address space the bus decodes. It is never raised in practice
	// because every address the CPU can generate is in range by
	// construction.
	BusError = "bus error at %#04x"
)
