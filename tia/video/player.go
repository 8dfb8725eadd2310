package video

// Player is one of the two 8-bit player graphics generators. Grp is the
// live graphics byte; grpShadow holds the pending copy when VDEL is
// set, taking effect only when the *other* player's GRP register is
// written (wired by the tia package, not here).
type Player struct {
	position int
	motion   int8

	pendingReset   bool
	resetRemaining int

	grp       uint8
	grpShadow uint8
	vdel      bool
	reflected bool
	nusiz     uint8
}

// WriteGRP stores the live (or, if VDEL is set, shadow) graphics value.
func (p *Player) WriteGRP(v uint8) {
	if p.vdel {
		p.grpShadow = v
		return
	}
	p.grp = v
}

// CopyShadow is called when the *other* player's GRP register is
// written, latching this player's shadow copy into its live value if
// VDEL is enabled - the GRP0/GRP1 coupling spec.md §4.3 describes.
func (p *Player) CopyShadow() {
	if p.vdel {
		p.grp = p.grpShadow
	}
}

func (p *Player) WriteVDELP(v uint8) { p.vdel = v&VDELPxMask != 0 }
func (p *Player) WriteREFP(v uint8)  { p.reflected = v&REFPxMask != 0 }
func (p *Player) WriteNUSIZ(v uint8) { p.nusiz = v }

// ResetPosition arms the delayed position latch that strobing RESP0/RESP1
// triggers; the new phase doesn't take effect until AdvanceReset has been
// ticked ResetDelay times.
func (p *Player) ResetPosition() {
	p.pendingReset = true
	p.resetRemaining = ResetDelay
}

// AdvanceReset ticks the countdown armed by ResetPosition, called once per
// color clock regardless of whether a reset is pending. column is the
// *current* visible column, not the column RESP0/RESP1 was strobed at - on
// real hardware the latched position is wherever the beam has moved to by
// the time the internal reset finally fires.
func (p *Player) AdvanceReset(column int) {
	if !p.pendingReset {
		return
	}
	p.resetRemaining--
	if p.resetRemaining <= 0 {
		p.position = wrapPhase(column)
		p.pendingReset = false
	}
}

// ScheduleMotion arms the per-HMOVE-tick phase nudges from HMP0/HMP1.
func (p *Player) ScheduleMotion(hm uint8) { p.motion = motionFromHM(hm) }

// ApplyMotionTick consumes one tick of a scheduled HMOVE motion.
func (p *Player) ApplyMotionTick() { p.position, p.motion = applyMotion(p.position, p.motion) }

// Pixel reports whether this player is lit at visible column x.
func (p *Player) Pixel(x int) bool {
	copies, spacing, sizeMul := nusizShape(p.nusiz)
	width := 8 * sizeMul

	for i := 0; i < copies; i++ {
		start := wrapPhase(p.position + i*spacing)
		rel := x - start
		if rel < 0 {
			rel += 160
		}
		if rel >= width {
			continue
		}
		bit := rel / sizeMul
		if !p.reflected {
			bit = 7 - bit
		}
		if p.grp&(0x01<<bit) != 0 {
			return true
		}
	}
	return false
}
