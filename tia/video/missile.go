package video

// Missile is one of the two single-bit missile graphics generators.
type Missile struct {
	position int
	motion   int8

	pendingReset   bool
	resetRemaining int

	enabled bool
	nusiz   uint8
	locked  bool // RESMPx: force-positioned to the parent player's position
}

func (m *Missile) WriteENAM(v uint8) { m.enabled = v&ENAxxMask != 0 }
func (m *Missile) WriteNUSIZ(v uint8) { m.nusiz = v }
func (m *Missile) WriteRESMP(v uint8) { m.locked = v&RESMPxMask != 0 }

// ResetPosition arms the delayed position latch that strobing RESM0/RESM1
// triggers; see Player.ResetPosition for the delay this reproduces.
func (m *Missile) ResetPosition() {
	m.pendingReset = true
	m.resetRemaining = ResetDelay
}

// AdvanceReset ticks the countdown armed by ResetPosition; see
// Player.AdvanceReset.
func (m *Missile) AdvanceReset(column int) {
	if !m.pendingReset {
		return
	}
	m.resetRemaining--
	if m.resetRemaining <= 0 {
		m.position = wrapPhase(column)
		m.pendingReset = false
	}
}

func (m *Missile) ScheduleMotion(hm uint8) { m.motion = motionFromHM(hm) }
func (m *Missile) ApplyMotionTick()        { m.position, m.motion = applyMotion(m.position, m.motion) }

// LockToPlayer forces the missile's position to its parent player's
// position (the phase the player's graphics start at), the effect of
// RESMPx being set. The player's width is not taken into account, so the
// missile sits at the player's left edge, not its center. Called by the
// tia package on every color clock.
func (m *Missile) LockToPlayer(playerPosition int) {
	if m.locked {
		m.position = playerPosition
	}
}

// width is how many color clocks wide this missile's single copy is,
// from NUSIZx bits 4-5.
func (m *Missile) width() int {
	return 1 << ((m.nusiz >> nusizSizeShift) & NUSIZxSizeMask)
}

// Pixel reports whether this missile is lit at visible column x. A
// locked (RESMPx) missile never draws, matching real hardware.
func (m *Missile) Pixel(x int) bool {
	if !m.enabled || m.locked {
		return false
	}

	copies, spacing, _ := nusizShape(m.nusiz)
	width := m.width()

	for i := 0; i < copies; i++ {
		start := wrapPhase(m.position + i*spacing)
		rel := x - start
		if rel < 0 {
			rel += 160
		}
		if rel < width {
			return true
		}
	}
	return false
}
