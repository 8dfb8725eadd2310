package riot_test

import (
	"testing"

	"github.com/bl-nero/vcscore/riot"
	"github.com/bl-nero/vcscore/riot/timer"
	"github.com/bl-nero/vcscore/test"
)

func TestRIOT_SWCHAInputBitsReflectPushedPins(t *testing.T) {
	r := riot.NewRIOT()
	r.PushInput(0xbf, 0xff) // player 0 holding left
	test.DemandEquality(t, r.Read(0x0280), uint8(0xbf))
}

func TestRIOT_SWCHAOutputBitsIgnorePins(t *testing.T) {
	r := riot.NewRIOT()
	r.Write(0x0281, 0xff) // SWACNT: configure all of port A as output
	r.Write(0x0280, 0x3c) // SWCHA latch
	r.PushInput(0x00, 0xff)
	test.DemandEquality(t, r.Read(0x0280), uint8(0x3c))
}

func TestRIOT_TimerProgrammingAndUnderflow(t *testing.T) {
	r := riot.NewRIOT()
	r.Write(0x0294, 0x02) // TIM1T, INTIM = 2

	test.DemandEquality(t, r.Read(0x0284), uint8(0x02))

	r.Step() // ticksRemaining 0->-1, INTIM decrements to 1
	test.DemandEquality(t, r.Read(0x0284), uint8(0x01))

	r.Step()
	test.DemandEquality(t, r.Read(0x0284), uint8(0x00))

	r.Step()
	test.DemandEquality(t, r.Read(0x0284), uint8(0xff))
	test.DemandEquality(t, r.Read(0x0285), uint8(0x80))
}

func TestRIOT_IRQRequestedFollowsUnderflowUnconditionally(t *testing.T) {
	r := riot.NewRIOT()
	r.Write(0x0294, 0x01) // TIM1T, INTIM = 1

	test.DemandEquality(t, r.IRQRequested(), false)
	r.Step() // 1 -> 0
	test.DemandEquality(t, r.IRQRequested(), false)
	r.Step() // 0 -> 0xff, underflow latches TIMINT - no arming write needed
	test.DemandEquality(t, r.Read(0x0285), uint8(0x80))
	test.DemandEquality(t, r.IRQRequested(), true)

	r.Write(0x0294, 0x01) // reprogramming clears the flag again
	test.DemandEquality(t, r.IRQRequested(), false)
}

func TestTimer_FastModeAfterUnderflow(t *testing.T) {
	tm := timer.NewTimer()
	tm.SetInterval(timer.TIM8T, 0x01)

	// two full TIM8T intervals: 1 -> 0 (8 steps), then 0 -> 0xff (8 more),
	// the second of which sets TIMINT and switches to once-per-cycle mode.
	for i := 0; i < 16; i++ {
		tm.Step()
	}
	test.DemandEquality(t, tm.Value(), uint8(0xff))

	before := tm.Value()
	tm.Step() // fast mode: decrements every cycle now, not every 8
	test.DemandEquality(t, tm.Value(), before-1)
}

func TestTimer_IRQRequestedTracksUnderflow(t *testing.T) {
	tm := timer.NewTimer()
	tm.SetInterval(timer.TIM1T, 0x01)

	tm.Step() // 1 -> 0
	test.DemandEquality(t, tm.IRQRequested(), false)
	tm.Step() // 0 -> 0xff, underflow
	test.DemandEquality(t, tm.IRQRequested(), true)

	tm.SetInterval(timer.TIM1T, 0x01) // reprogramming clears it again
	test.DemandEquality(t, tm.IRQRequested(), false)
}
