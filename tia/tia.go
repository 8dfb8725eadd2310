// Package tia implements the Television Interface Adapter: the
// color-clock pixel pipeline, the movable-object and playfield
// generators in the video subpackage, the collision matrix, and the
// WSYNC/HMOVE/VSYNC/VBLANK side effects that couple the chip to the
// CPU and the Console.
//
// Grounded on hardware/tia/tia.go's register dispatch and
// hardware/tia/video/{playfield,player,missile,ball,collisions}.go's
// object model, redesigned around spec's phase-counter movable-object
// model (see video/sprite.go) instead of the teacher's polycounter and
// scancounter machinery.
//
// Supplemented from original_source/src/tia.rs: a per-clock Output
// value - here ClockResult - is returned from every Tick so the
// Console can detect the VSYNC rising edge and classify each clock as
// HBLANK, VBLANK or a visible pixel.
package tia

import "github.com/bl-nero/vcscore/tia/video"

const (
	clocksPerScanline = 228
	hblankClocks      = 68
	visibleColumns    = 160
	hmoveWindow       = 8
)

// ClockResult is what one color clock of TIA operation produces.
type ClockResult struct {
	HSync   bool // true on the clock that begins a new scanline
	VSync   bool // current state of the VSYNC latch
	Visible bool // true when this clock falls in the visible 160 columns and VBLANK is not asserted
	Pixel   uint8
}

// TIA is the Television Interface Adapter.
type TIA struct {
	clock int

	vsyncOn  bool
	vblankOn bool
	rdyLow   bool // WSYNC halt in effect

	pf         video.Playfield
	p0, p1     video.Player
	m0, m1     video.Missile
	bl         video.Ball
	collisions video.Collisions

	colup0, colup1, colupf, colubk uint8

	hmp0, hmp1, hmm0, hmm1, hmbl uint8
	hmoveRemaining               int

	audc0, audc1, audf0, audf1, audv0, audv1 uint8

	// paddle ramps and fire buttons, pushed by the host via the input
	// package; INPT0-3 model capacitor discharge, INPT4-5 are digital
	// fire buttons.
	paddleRamp [4]uint8
	fireButton [2]uint8
}

// NewTIA returns a TIA in its power-on state.
func NewTIA() *TIA {
	return &TIA{}
}

// PushPaddles and PushFireButtons let the host drive the analog/digital
// input ports sampled by INPT0-5.
func (t *TIA) PushPaddles(p0, p1, p2, p3 uint8) { t.paddleRamp = [4]uint8{p0, p1, p2, p3} }
func (t *TIA) PushFireButtons(inpt4, inpt5 uint8) {
	t.fireButton[0] = inpt4
	t.fireButton[1] = inpt5
}

// RdyFlg reports whether the CPU may proceed; false while a WSYNC halt
// is in effect. Satisfies bus.ReadyFlagger.
func (t *TIA) RdyFlg() bool { return !t.rdyLow }

// visibleColumn returns the current clock's position within the 160
// visible columns, clamped to 0 during HBLANK - the convention this
// module picks for RESPx/RESMx/RESBL strobes issued early in a
// scanline (spec.md's flagged open question on HBLANK-edge resets).
func (t *TIA) visibleColumn() int {
	c := t.clock - hblankClocks
	if c < 0 {
		return 0
	}
	return c
}

// Tick advances the TIA by one color clock: 3 calls per CPU cycle.
func (t *TIA) Tick() ClockResult {
	var result ClockResult

	if t.clock == 0 {
		result.HSync = true
		t.rdyLow = false
	}

	column := t.clock - hblankClocks
	if column >= 0 && column < visibleColumns && !t.vblankOn {
		result.Visible = true
		result.Pixel = t.computePixel(column)
	}
	result.VSync = t.vsyncOn

	visible := t.visibleColumn()
	t.p0.AdvanceReset(visible)
	t.p1.AdvanceReset(visible)
	t.m0.AdvanceReset(visible)
	t.m1.AdvanceReset(visible)
	t.bl.AdvanceReset(visible)

	if t.hmoveRemaining > 0 {
		t.p0.ApplyMotionTick()
		t.p1.ApplyMotionTick()
		t.m0.ApplyMotionTick()
		t.m1.ApplyMotionTick()
		t.bl.ApplyMotionTick()
		t.hmoveRemaining--
	}

	t.m0.LockToPlayer(t.p0.Position())
	t.m1.LockToPlayer(t.p1.Position())

	t.clock++
	if t.clock >= clocksPerScanline {
		t.clock = 0
	}

	return result
}

// computePixel resolves one visible column's color, latching any
// collisions implied by the objects lit there.
func (t *TIA) computePixel(column int) uint8 {
	p0 := t.p0.Pixel(column)
	p1 := t.p1.Pixel(column)
	m0 := t.m0.Pixel(column)
	m1 := t.m1.Pixel(column)
	bl := t.bl.Pixel(column)
	pf := t.pf.Pixel(column)

	t.collisions.Sample(p0, p1, m0, m1, bl, pf)

	playfieldOn := pf || bl
	playfieldColor := t.colubk
	if pf {
		if t.pf.ScoreMode {
			if column < visibleColumns/2 {
				playfieldColor = t.colup0
			} else {
				playfieldColor = t.colup1
			}
		} else {
			playfieldColor = t.colupf
		}
	} else if bl {
		playfieldColor = t.colupf
	}

	if t.pf.Priority && playfieldOn {
		return playfieldColor
	}

	switch {
	case p0, m0:
		return t.colup0
	case p1, m1:
		return t.colup1
	case playfieldOn:
		return playfieldColor
	default:
		return t.colubk
	}
}
