// Package video implements the TIA's movable-object and playfield pixel
// generators: the 20-bit playfield pattern, two players, two missiles,
// and one ball, plus the 15-bit collision matrix their outputs feed.
//
// Grounded on hardware/tia/video/{playfield,player,missile,ball,
// collisions,masks}.go's register layout and bit masks, redesigned per
// spec's phase-counter model (a movable object's "position" is a phase
// in [0,160) that increments once per visible color clock) rather than
// the teacher's polycounter/scancounter machinery.
package video

// Playfield is the 20-bit pattern (PF0's upper nybble, reversed; PF1;
// PF2) that forms the left half of the screen. The right half repeats
// or mirrors it depending on CTRLPF's reflect bit.
type Playfield struct {
	pf0, pf1, pf2 uint8
	data          [20]bool

	Reflected bool
	ScoreMode bool
	Priority  bool
	BallSize  int // color clocks wide: 1, 2, 4 or 8
}

// WritePF0 decodes PF0's 4 used bits (4-7) into playfield columns 0-3,
// bit 4 mapping to column 0 - the "reversed nybble" spec.md describes.
func (pf *Playfield) WritePF0(v uint8) {
	pf.pf0 = v & 0xf0
	pf.data[0] = pf.pf0&0x10 != 0
	pf.data[1] = pf.pf0&0x20 != 0
	pf.data[2] = pf.pf0&0x40 != 0
	pf.data[3] = pf.pf0&0x80 != 0
}

// WritePF1 decodes PF1's 8 bits into columns 4-11, in bit-reversed order
// (bit 7 is the leftmost of this segment).
func (pf *Playfield) WritePF1(v uint8) {
	pf.pf1 = v
	for i := 0; i < 8; i++ {
		pf.data[4+i] = v&(0x80>>i) != 0
	}
}

// WritePF2 decodes PF2's 8 bits into columns 12-19, in natural bit order
// (bit 0 is the leftmost of this segment).
func (pf *Playfield) WritePF2(v uint8) {
	pf.pf2 = v
	for i := 0; i < 8; i++ {
		pf.data[12+i] = v&(0x01<<i) != 0
	}
}

// WriteCTRLPF decodes the shared CTRLPF register: playfield reflect,
// score mode and priority, and the ball's width.
func (pf *Playfield) WriteCTRLPF(v uint8) {
	pf.Reflected = v&CTRLPFReflectedMask != 0
	pf.ScoreMode = v&CTRLPFScoremodeMask != 0
	pf.Priority = v&CTRLPFPriorityMask != 0
	pf.BallSize = 1 << ((v >> ctrlPFBallSizeShift) & 0x03)
}

// Pixel reports whether the playfield is lit at visible column c, in
// [0,160). Each of the 40 playfield columns (20 data bits × 2 halves)
// spans 4 color clocks.
func (pf *Playfield) Pixel(c int) bool {
	col := c / 4
	if col < 20 {
		return pf.data[col]
	}
	col -= 20
	if pf.Reflected {
		return pf.data[19-col]
	}
	return pf.data[col]
}
