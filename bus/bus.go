// Package bus implements the Atari 2600's 13-bit address decode: the
// single flat 8KB space that the CPU, RIOT and TIA chips share, with
// cartridge ROM, RIOT and TIA all mirrored many times over within it.
//
// Grounded on hardware/memory/memorymap/memorymap.go's MapAddress decode
// order (cartridge, then RIOT, then RAM, then TIA fallthrough) and
// hardware/memory/addresses/addresses.go's canonical register-name
// tables.
package bus

import "github.com/bl-nero/vcscore/curated"

// Chip is satisfied by any peripheral mapped into the address space: the
// TIA and the RIOT both implement it.
type Chip interface {
	Read(addr uint16) uint8
	Write(addr uint16, data uint8)
}

// ReadyFlagger is implemented by the chip responsible for halting the CPU
// between WSYNC and the next scanline - the TIA.
type ReadyFlagger interface {
	RdyFlg() bool
}

const (
	originTIA  = uint16(0x0000)
	memtopTIA  = uint16(0x003f)
	originRAM  = uint16(0x0080)
	memtopRAM  = uint16(0x00ff)
	originRIOT = uint16(0x0280)
	memtopRIOT = uint16(0x0297)
	originCart = uint16(0x1000)
	memtopCart = uint16(0x1fff)

	maskRIOT = uint16(0x02f7)
	maskTIA  = uint16(0x000f)
)

// area identifies which chip or memory an address, once decoded, belongs
// to.
type area int

const (
	areaTIA area = iota
	areaRAM
	areaRIOT
	areaCartridge
)

// mapAddress translates a mirrored address into chip-local space. The
// order of these checks is significant: cartridge space claims the
// top bit pattern first, then RIOT, then RAM, with everything else
// falling through to TIA. Reads additionally mask down to the chip's
// true register count, since the real hardware decodes fewer address
// lines on read than on write.
func mapAddress(address uint16, read bool) (uint16, area) {
	if address&originCart == originCart {
		return address & memtopCart, areaCartridge
	}

	if address&originRIOT == originRIOT {
		if read {
			return address & memtopRIOT & maskRIOT, areaRIOT
		}
		return address & memtopRIOT, areaRIOT
	}

	if address&originRAM == originRAM {
		return address & memtopRAM, areaRAM
	}

	if read {
		return address & memtopTIA & maskTIA, areaTIA
	}
	return address & memtopTIA, areaTIA
}

// Bus is the Atari 2600's shared address space. It owns the 128 bytes of
// RIOT RAM directly and holds the cartridge ROM image and handles to the
// TIA and RIOT chips, which own their own registers.
type Bus struct {
	ram  [128]uint8
	cart []uint8

	tia  Chip
	riot Chip

	ready ReadyFlagger
}

// NewBus wires a Bus to the chips and cartridge image that make up one
// console. cart may be nil until a ROM is attached with AttachCartridge.
func NewBus(tia Chip, riot Chip, ready ReadyFlagger) *Bus {
	return &Bus{tia: tia, riot: riot, ready: ready}
}

// AttachCartridge installs a ROM image. Supported sizes are 2KB and 4KB,
// the only two cartridge sizes spec.md's scope covers; anything else is
// a curated.UnsupportedRomSize error.
func (b *Bus) AttachCartridge(rom []uint8) error {
	switch len(rom) {
	case 2048, 4096:
		b.cart = rom
		return nil
	default:
		return curated.Errorf(curated.UnsupportedRomSize, len(rom))
	}
}

// Read returns the byte at address, resolving mirrors and routing to
// whichever chip or memory owns the decoded address.
func (b *Bus) Read(address uint16) uint8 {
	addr, a := mapAddress(address, true)

	switch a {
	case areaCartridge:
		return b.readCartridge(addr)
	case areaRIOT:
		return b.riot.Read(addr)
	case areaRAM:
		return b.ram[addr&0x7f]
	default:
		return b.tia.Read(addr)
	}
}

// Write stores data at address. Writes to cartridge space are silently
// dropped: ROM is read-only, and spec.md's invariant 5 requires that
// this be tolerated rather than treated as an error.
func (b *Bus) Write(address uint16, data uint8) {
	addr, a := mapAddress(address, false)

	switch a {
	case areaCartridge:
		// ROM; writes have no effect.
	case areaRIOT:
		b.riot.Write(addr, data)
	case areaRAM:
		b.ram[addr&0x7f] = data
	default:
		b.tia.Write(addr, data)
	}
}

// RdyFlg reports whether the CPU may proceed to its next bus cycle. The
// TIA withholds this during a WSYNC halt.
func (b *Bus) RdyFlg() bool {
	if b.ready == nil {
		return true
	}
	return b.ready.RdyFlg()
}

// readCartridge mirrors the ROM image across the full 4KB cartridge
// window, reducing the address into the image's own range with a modulo
// of the image length, so a 2KB image appears twice.
func (b *Bus) readCartridge(addr uint16) uint8 {
	if len(b.cart) == 0 {
		return 0
	}
	return b.cart[int(addr)%len(b.cart)]
}
