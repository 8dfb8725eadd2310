package bus_test

import (
	"testing"

	"github.com/bl-nero/vcscore/bus"
	"github.com/bl-nero/vcscore/curated"
	"github.com/bl-nero/vcscore/test"
)

type stubChip struct {
	reads  map[uint16]uint8
	writes map[uint16]uint8
	rdy    bool
}

func newStubChip() *stubChip {
	return &stubChip{reads: map[uint16]uint8{}, writes: map[uint16]uint8{}, rdy: true}
}

func (c *stubChip) Read(addr uint16) uint8        { return c.reads[addr] }
func (c *stubChip) Write(addr uint16, data uint8) { c.writes[addr] = data }
func (c *stubChip) RdyFlg() bool                  { return c.rdy }

func TestBus_CartridgeMirroring(t *testing.T) {
	b := bus.NewBus(newStubChip(), newStubChip(), nil)
	rom := make([]uint8, 4096)
	rom[0] = 0xea
	test.DemandSuccess(t, b.AttachCartridge(rom))

	test.DemandEquality(t, b.Read(0x1000), uint8(0xea))
	test.DemandEquality(t, b.Read(0xf000&0x1fff|0x1000), uint8(0xea))
}

func TestBus_UnsupportedRomSize(t *testing.T) {
	b := bus.NewBus(newStubChip(), newStubChip(), nil)
	err := b.AttachCartridge(make([]uint8, 100))
	test.DemandFailure(t, err)
	test.DemandEquality(t, curated.Is(err, curated.UnsupportedRomSize), true)
}

func TestBus_CartridgeWritesAreDropped(t *testing.T) {
	b := bus.NewBus(newStubChip(), newStubChip(), nil)
	rom := make([]uint8, 2048)
	rom[0] = 0x11
	test.DemandSuccess(t, b.AttachCartridge(rom))

	b.Write(0x1000, 0x99)
	test.DemandEquality(t, b.Read(0x1000), uint8(0x11))
}

func TestBus_RAMIsMirroredAndIndependentOfCartridge(t *testing.T) {
	b := bus.NewBus(newStubChip(), newStubChip(), nil)
	b.Write(0x0080, 0x42)
	test.DemandEquality(t, b.Read(0x0080), uint8(0x42))
	test.DemandEquality(t, b.Read(0x0180), uint8(0x42)) // RAM mirror
}

func TestBus_RIOTAddressesRouteToRIOTChip(t *testing.T) {
	riot := newStubChip()
	b := bus.NewBus(newStubChip(), riot, nil)
	b.Write(0x0280, 0x55)
	test.DemandEquality(t, riot.writes[0x0280], uint8(0x55))
}

func TestBus_TIAReadMaskDropsUpperBits(t *testing.T) {
	tia := newStubChip()
	tia.reads[0x0c] = 0x80 // INPT4
	b := bus.NewBus(tia, newStubChip(), nil)

	// 0x1c has the same low nibble as 0x0c and isn't claimed by cartridge,
	// RIOT, or RAM, so it should decode to the same TIA register.
	test.DemandEquality(t, b.Read(0x1c&0x0fff), uint8(0x80))
}

func TestBus_RdyFlgDelegatesToReadyFlagger(t *testing.T) {
	tia := newStubChip()
	b := bus.NewBus(tia, newStubChip(), tia)
	test.DemandEquality(t, b.RdyFlg(), true)
	tia.rdy = false
	test.DemandEquality(t, b.RdyFlg(), false)
}

func TestBus_RdyFlgDefaultsTrueWithoutFlagger(t *testing.T) {
	b := bus.NewBus(newStubChip(), newStubChip(), nil)
	test.DemandEquality(t, b.RdyFlg(), true)
}

func TestBus_DescribeNamesTIAAndRIOTRegisters(t *testing.T) {
	b := bus.NewBus(newStubChip(), newStubChip(), nil)
	test.DemandEquality(t, b.Describe(0x10, false), "RESP0")
	test.DemandEquality(t, b.Describe(0x0284, true), "INTIM")
}

func TestBus_DescribeIsEmptyForRAMAndCartridge(t *testing.T) {
	b := bus.NewBus(newStubChip(), newStubChip(), nil)
	rom := make([]uint8, 2048)
	test.DemandSuccess(t, b.AttachCartridge(rom))

	test.DemandEquality(t, b.Describe(0x0080, false), "")
	test.DemandEquality(t, b.Describe(0x1000, true), "")
}
