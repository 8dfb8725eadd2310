package tia_test

import (
	"testing"

	"github.com/bl-nero/vcscore/test"
	"github.com/bl-nero/vcscore/tia"
)

func tick(t *tia.TIA, n int) tia.ClockResult {
	var r tia.ClockResult
	for i := 0; i < n; i++ {
		r = t.Tick()
	}
	return r
}

func TestTIA_WSYNCHaltsUntilScanlineEnd(t *testing.T) {
	c := tia.NewTIA()
	tick(c, 10) // move clock off 0 so the halt doesn't self-clear immediately
	c.Write(0x02, 0x00) // WSYNC, strobed at clock 10
	test.DemandEquality(t, c.RdyFlg(), false)

	tick(c, 218) // clock wraps back to 0 but the halt hasn't been re-checked yet
	test.DemandEquality(t, c.RdyFlg(), false)

	tick(c, 1) // this call observes clock==0 and releases RDY
	test.DemandEquality(t, c.RdyFlg(), true)
}

func TestTIA_HBlankProducesNoVisiblePixel(t *testing.T) {
	c := tia.NewTIA()
	r := tick(c, 1)
	test.DemandEquality(t, r.Visible, false)
}

func TestTIA_FirstVisibleColumnIsClock68(t *testing.T) {
	c := tia.NewTIA()
	r := tick(c, 69) // the 69th tick's entry clock is 68, column 0
	test.DemandEquality(t, r.Visible, true)
}

func TestTIA_VBLANKSuppressesPixels(t *testing.T) {
	c := tia.NewTIA()
	c.Write(0x01, 0x02) // VBLANK on
	r := tick(c, 69)
	test.DemandEquality(t, r.Visible, false)
}

func TestTIA_BackgroundColorFillsEmptyScanline(t *testing.T) {
	c := tia.NewTIA()
	c.Write(0x09, 0x1a) // COLUBK
	r := tick(c, 69)
	test.DemandEquality(t, r.Pixel, uint8(0x1a))
}

func TestTIA_PlayfieldLeftHalfUsesPF0(t *testing.T) {
	c := tia.NewTIA()
	c.Write(0x08, 0x46) // COLUPF
	c.Write(0x09, 0x00) // COLUBK
	c.Write(0x0d, 0x10) // PF0: bit4 set -> playfield column 0 lit

	r := tick(c, 69) // column 0
	test.DemandEquality(t, r.Pixel, uint8(0x46))
}

func TestTIA_VSYNCLatchReflectsBit1(t *testing.T) {
	c := tia.NewTIA()
	r := tick(c, 1)
	test.DemandEquality(t, r.VSync, false)
	c.Write(0x00, 0x02) // VSYNC on
	r = tick(c, 1)
	test.DemandEquality(t, r.VSync, true)
}

func TestTIA_PlayerDrawsAtResetPosition(t *testing.T) {
	c := tia.NewTIA()
	c.Write(0x06, 0x44) // COLUP0
	c.Write(0x1b, 0x80) // GRP0: leftmost bit set
	c.Write(0x10, 0x00) // RESP0, strobed during HBLANK -> column 0

	r := tick(c, 69) // column 0
	test.DemandEquality(t, r.Pixel, uint8(0x44))
}

func TestTIA_CollisionLatchesPlayerAndPlayfield(t *testing.T) {
	c := tia.NewTIA()
	c.Write(0x1b, 0x80) // GRP0
	c.Write(0x10, 0x00) // RESP0 -> column 0
	c.Write(0x0d, 0x10) // PF0 bit4 -> playfield column 0 lit

	tick(c, 69) // render column 0, latching the collision

	test.DemandEquality(t, c.Read(0x02)&0x40, uint8(0x40)) // CXP0FB bit 6 (P0 & PF)
}

func TestTIA_CXCLRClearsCollisions(t *testing.T) {
	c := tia.NewTIA()
	c.Write(0x1b, 0x80)
	c.Write(0x10, 0x00)
	c.Write(0x0d, 0x10)
	tick(c, 69)

	c.Write(0x2c, 0x00) // CXCLR
	test.DemandEquality(t, c.Read(0x02), uint8(0x00))
}
