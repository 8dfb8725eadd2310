// Package input packs joystick and console-switch state into the bit
// patterns the RIOT's SWCHA/SWCHB registers and the TIA's INPT4/INPT5
// ports expect. It is push-based: the host calls PackSWCHA/PackSWCHB/
// PackINPT4/PackINPT5 once per input sample and the Console threads the results
// into the RIOT and TIA on its next tick.
//
// Grounded on hardware/peripherals/{panel.go,ports.go}'s bit-packing for
// SWCHA (player0 in the high nibble, player1 in the low nibble, both
// active-low), SWCHB (difficulty switches and TV type in the fixed
// bits, select/reset active-low), and INPT4/INPT5 (fire button in bit
// 7, active-low).
package input

// Joystick is the digital joystick's instantaneous state. All four
// directions may be set simultaneously; the hardware does not prevent it.
type Joystick struct {
	Up, Down, Left, Right, Fire bool
}

// PackSWCHA packs both players' joysticks into one SWCHA byte: player 0
// occupies bits 4-7, player 1 bits 0-3, both active-low (0 = pressed).
func PackSWCHA(p0, p1 Joystick) uint8 {
	var v uint8 = 0xff

	if p0.Up {
		v &^= 0x10
	}
	if p0.Down {
		v &^= 0x20
	}
	if p0.Left {
		v &^= 0x40
	}
	if p0.Right {
		v &^= 0x80
	}

	if p1.Up {
		v &^= 0x01
	}
	if p1.Down {
		v &^= 0x02
	}
	if p1.Left {
		v &^= 0x04
	}
	if p1.Right {
		v &^= 0x08
	}

	return v
}

// PackINPT4 and PackINPT5 report a player's fire button on the TIA's
// dedicated input ports: bit 7 clear means pressed, set means released.
func PackINPT4(p0 Joystick) uint8 {
	if p0.Fire {
		return 0x00
	}
	return 0x80
}

func PackINPT5(p1 Joystick) uint8 {
	if p1.Fire {
		return 0x00
	}
	return 0x80
}

// Switches is the console's front panel: the two difficulty switches,
// the TV type (color/B&W) switch, and the momentary Select and Reset
// buttons.
type Switches struct {
	P0Difficulty bool // true = Pro (A), false = Amateur (B)
	P1Difficulty bool
	Color        bool // true = Color, false = Black & White
	Select       bool // true while held down
	Reset        bool // true while held down
}

// PackSWCHB packs the panel switches into one SWCHB byte. Bits 2, 4 and
// 5 are unused on real hardware and always read back as 1.
func PackSWCHB(s Switches) uint8 {
	v := uint8(0x20 | 0x10 | 0x04)

	if s.P0Difficulty {
		v |= 0x80
	}
	if s.P1Difficulty {
		v |= 0x40
	}
	if s.Color {
		v |= 0x08
	}
	if !s.Select {
		v |= 0x02
	}
	if !s.Reset {
		v |= 0x01
	}

	return v
}
