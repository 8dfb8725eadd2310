package video

// ResetDelay is how many color clocks after a RESPx/RESMx/RESBL strobe the
// object's position actually latches. Real TIA hardware doesn't move the
// counter on the strobe itself - Atari's TIA_HW_Notes.txt: "there are 5 CLK
// worth of clocking/latching to take into account" - so the new position is
// whatever column the beam is at ResetDelay clocks later, not the column at
// strobe time. Exported so tests can drive a reset to completion without
// hard-coding the delay twice.
const ResetDelay = 5

// nusizShape decodes the copies/spacing encoded in a NUSIZx register's
// low 3 bits, shared by players and missiles. The player-only
// double/quad size codes (5 and 7) report a single copy at the
// corresponding size multiplier; missiles never use those codes but
// decoding them uniformly is harmless since missile code only reads
// copies and spacing.
func nusizShape(nusiz uint8) (copies int, spacing int, sizeMul int) {
	switch nusiz & NUSIZxCopiesMask {
	case 0:
		return 1, 0, 1
	case 1:
		return 2, 16, 1
	case 2:
		return 2, 32, 1
	case 3:
		return 3, 16, 1
	case 4:
		return 2, 64, 1
	case 5:
		return 1, 0, 2
	case 6:
		return 3, 32, 1
	case 7:
		return 1, 0, 4
	}
	panic("unreachable")
}

// wrapPhase folds a phase back into [0,160).
func wrapPhase(p int) int {
	p %= 160
	if p < 0 {
		p += 160
	}
	return p
}

// applyMotion advances position by one phase step per remaining tick of
// a scheduled HMOVE delta, decrementing the delta as it goes. Returns
// the new position and remaining delta.
func applyMotion(position int, remaining int8) (int, int8) {
	if remaining == 0 {
		return position, 0
	}
	if remaining > 0 {
		return wrapPhase(position + 1), remaining - 1
	}
	return wrapPhase(position - 1), remaining + 1
}

// motionFromHM decodes a 4-bit signed HMxx value (held in the top
// nybble of the register, per hardware/tia/video/masks.go's HMxxMask)
// into the signed per-HMOVE step count: the nybble is two's complement,
// so 0x70 is +7, 0x00 means no motion and 0xf0/0x80 are -1/-8.
func motionFromHM(hm uint8) int8 {
	return int8(hm) >> 4
}
