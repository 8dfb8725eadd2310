package video

// Position exposes a movable object's current phase, used by the tia
// package to lock a missile to its parent player's position (RESMPx).
func (p *Player) Position() int  { return p.position }
func (m *Missile) Position() int { return m.position }
func (b *Ball) Position() int    { return b.position }
