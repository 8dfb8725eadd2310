// Package riot implements the active half of the PIA 6532: the
// programmable timer (see the timer subpackage) and the I/O ports
// SWCHA/SWCHB, each with its own data-direction register. The 128 bytes
// of RIOT RAM are not modelled here - they are mapped directly by the
// bus package, since the RIOT chip itself has no special behaviour for
// them.
//
// Grounded on hardware/riot/riot.go's RIOT type (address dispatch over
// the RIOT's register window) and hardware/memory/addresses/
// addresses.go's RIOT register offsets, with hardware/peripherals/
// panel.go's and ports.go's SWCHA/SWCHB bit conventions supplying the
// DDR-aware read/write semantics. The timer interrupt flag itself
// follows original_source/atari2600/src/riot.rs's Riot::tick, which
// sets it unconditionally on underflow with no enable register.
package riot

import "github.com/bl-nero/vcscore/riot/timer"

// RIOT register addresses. bus.mapAddress masks mirrors down to this
// absolute 0x0280-0x0297 window but does not subtract its origin, to
// match the teacher's canonical symbol tables.
const (
	regSWCHA  = 0x0280
	regSWACNT = 0x0281
	regSWCHB  = 0x0282
	regSWBCNT = 0x0283
	regINTIM  = 0x0284
	regTIMINT = 0x0285

	regTIM1T   = 0x0294
	regTIM8T   = 0x0295
	regTIM64T  = 0x0296
	regTIM1024 = 0x0297
)

// RIOT is the PIA 6532's timer and I/O side.
type RIOT struct {
	Timer *timer.Timer

	swcha, swacnt uint8 // port A: joysticks, all bits input by default
	swchb, swbcnt uint8 // port B: console switches, all bits input by default

	pinsA, pinsB uint8 // externally driven pin state, set by PushInput
}

// NewRIOT starts with both ports configured entirely as inputs, the
// power-on state of a 6532.
func NewRIOT() *RIOT {
	return &RIOT{
		Timer: timer.NewTimer(),
		pinsA: 0xff,
		pinsB: 0xff,
	}
}

// PushInput drives new external pin state onto ports A and B - SWCHA
// from the joysticks, SWCHB from the console switches. Bits configured
// as outputs by SWACNT/SWBCNT are unaffected by the pins and keep
// reading back whatever the CPU last wrote there.
func (r *RIOT) PushInput(portA, portB uint8) {
	r.pinsA = portA
	r.pinsB = portB
}

// readPort combines the driven output bits (from ddr/latch) with the
// externally pushed input bits (from pins), the standard DDR read rule:
// an output bit reads back the latch, an input bit reads back the pin.
func readPort(ddr, latch, pins uint8) uint8 {
	return (latch & ddr) | (pins &^ ddr)
}

// Read services a CPU read from RIOT address space.
func (r *RIOT) Read(addr uint16) uint8 {
	switch addr {
	case regSWCHA:
		return readPort(r.swacnt, r.swcha, r.pinsA)
	case regSWACNT:
		return r.swacnt
	case regSWCHB:
		return readPort(r.swbcnt, r.swchb, r.pinsB)
	case regSWBCNT:
		return r.swbcnt
	case regINTIM:
		return r.Timer.ReadINTIM()
	case regTIMINT:
		return r.Timer.TIMINTValue()
	}
	return 0
}

// Write services a CPU write into RIOT address space.
func (r *RIOT) Write(addr uint16, data uint8) {
	switch addr {
	case regSWCHA:
		r.swcha = data
	case regSWACNT:
		r.swacnt = data
	case regSWCHB:
		r.swchb = data
	case regSWBCNT:
		r.swbcnt = data
	case regTIM1T:
		r.Timer.SetInterval(timer.TIM1T, data)
	case regTIM8T:
		r.Timer.SetInterval(timer.TIM8T, data)
	case regTIM64T:
		r.Timer.SetInterval(timer.TIM64T, data)
	case regTIM1024:
		r.Timer.SetInterval(timer.TIM1024, data)
	}
}

// IRQRequested reports whether the timer has underflowed since its
// interval was last programmed; a read of INTIM also clears it (see
// timer.Timer.IRQRequested). Real 6532 hardware has no separate
// interrupt-enable register for the timer; it is the 6507's own
// interrupt-disable flag, not anything here, that decides whether this
// ever reaches the CPU.
func (r *RIOT) IRQRequested() bool {
	return r.Timer.IRQRequested()
}

// Step advances the timer by one CPU cycle. It is called once per CPU
// cycle by the Console, independent of Read/Write.
func (r *RIOT) Step() {
	r.Timer.Step()
}
