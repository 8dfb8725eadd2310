// Package console composes a CPU, a TIA, a RIOT and a Bus into a
// complete Atari 2600, and owns the single piece of scheduling state
// that ties them together: the fixed per-cycle order in which they are
// clocked.
//
// Grounded on cpu.CPU's CycleCallback design (itself grounded on
// hardware/cpu/cpu.go's ExecuteInstruction) generalized to the full
// machine: each CPU cycle's CycleCallback clocks the RIOT once and the
// TIA three times, collecting pixels into the current frame and
// surfacing a WSYNC halt as the TIA withholding RDY - exactly the
// "Bus back-references" design note this module follows (Console owns
// CPU, Bus, TIA and RIOT; no cyclic ownership graph).
package console

import (
	"github.com/bl-nero/vcscore/bus"
	"github.com/bl-nero/vcscore/cpu"
	"github.com/bl-nero/vcscore/input"
	"github.com/bl-nero/vcscore/instance"
	"github.com/bl-nero/vcscore/logger"
	"github.com/bl-nero/vcscore/random"
	"github.com/bl-nero/vcscore/riot"
	"github.com/bl-nero/vcscore/tia"
)

// expectedScanlines is an NTSC frame's nominal scanline count. A ROM
// that strobes VSYNC well outside this range is still honored - the
// Console never second-guesses a cartridge's timing - but it is worth
// a line in the event log.
const expectedScanlines = 262
const scanlineTolerance = 40

// Frame is one delivered NTSC frame: one row per scanline completed since
// the previous VSYNC rising edge. Each row holds the color register value
// of each visible color clock on that scanline, in order, so at most 160
// entries; clocks in HBLANK or under VBLANK are not recorded, and rows are
// not padded to a fixed width.
type Frame struct {
	Pixels    [][]uint8
	Scanlines int
}

const resetVector = 0xfffc

// Console is a complete Atari 2600: CPU, TIA, RIOT and the bus that
// joins them.
type Console struct {
	CPU  *cpu.CPU
	TIA  *tia.TIA
	RIOT *riot.RIOT
	Bus  *bus.Bus

	Instance *instance.Instance

	scanline   []uint8
	frame      [][]uint8
	priorVSync bool
	sawRising  bool
	pendingROM []uint8
}

// NewFromROM builds a Console around a cartridge image and resets it to
// its power-on state. rom must be a size the bus accepts (2KB or 4KB).
func NewFromROM(rom []uint8, coords random.CoordsProvider) (*Console, error) {
	t := tia.NewTIA()
	r := riot.NewRIOT()
	b := bus.NewBus(t, r, t)

	if err := b.AttachCartridge(rom); err != nil {
		return nil, err
	}

	ins := instance.NewInstance(instance.Main, coords)
	c := &Console{
		CPU:        cpu.NewCPU(b, ins.Random),
		TIA:        t,
		RIOT:       r,
		Bus:        b,
		Instance:   ins,
		pendingROM: rom,
	}
	c.CPU.RandomState = ins.RandomState

	if err := c.Reset(); err != nil {
		return nil, err
	}
	return c, nil
}

// Reset resets the CPU and zeroes the TIA and RIOT by replacing them
// with fresh chips wired to the same bus, matching spec.md §4.5's
// "TIA and RIOT registers are zeroed" reset contract.
func (c *Console) Reset() error {
	c.TIA = tia.NewTIA()
	c.RIOT = riot.NewRIOT()
	c.Bus = bus.NewBus(c.TIA, c.RIOT, c.TIA)
	if rom := c.pendingROM; rom != nil {
		if err := c.Bus.AttachCartridge(rom); err != nil {
			return err
		}
	}
	c.CPU = cpu.NewCPU(c.Bus, c.Instance.Random)
	c.CPU.RandomState = c.Instance.RandomState

	c.scanline = nil
	c.frame = nil
	c.priorVSync = false

	return c.CPU.Reset(resetVector, c.tickCycle)
}

// Disassemble renders the instruction the CPU most recently executed,
// annotating any TIA/RIOT register operand with its canonical name (e.g.
// "STA RESP0" rather than "STA $0010") via the Bus's symbol tables.
func (c *Console) Disassemble() string {
	return c.CPU.Disassemble(c.Bus.Describe)
}

// PushInput threads the host's joystick and switch state into the RIOT
// and TIA read ports that the CPU samples on its next ticks.
func (c *Console) PushInput(p0, p1 input.Joystick, sw input.Switches) {
	c.RIOT.PushInput(input.PackSWCHA(p0, p1), input.PackSWCHB(sw))
	c.TIA.PushFireButtons(input.PackINPT4(p0), input.PackINPT5(p1))
}

// tickCycle is the CycleCallback handed to the CPU: one CPU cycle is
// one RIOT tick and three TIA ticks, clocked before the CPU samples bus
// state on its next cycle, per spec.md §4.5's ordering guarantee.
func (c *Console) tickCycle() error {
	c.RIOT.Step()
	c.CPU.IRQ(c.RIOT.IRQRequested())

	for i := 0; i < 3; i++ {
		result := c.TIA.Tick()

		if result.HSync {
			c.endScanline()
		}
		if result.Visible {
			c.scanline = append(c.scanline, result.Pixel)
		}

		if result.VSync && !c.priorVSync {
			c.sawRising = true
		}
		c.priorVSync = result.VSync
	}

	return nil
}

func (c *Console) endScanline() {
	if c.scanline != nil {
		c.frame = append(c.frame, c.scanline)
	}
	c.scanline = make([]uint8, 0, 160)
}

// TickOne runs the CPU to the end of its next instruction. Every bus
// cycle along the way - including the idle cycles a WSYNC halt forces -
// is clocked through tickCycle, so the RIOT and TIA advance in lockstep
// with the CPU one cycle at a time even though TickOne's own return
// granularity is one instruction, not one cycle.
func (c *Console) TickOne() error {
	return c.CPU.ExecuteInstruction(c.tickCycle)
}

// RunFrame ticks the console until a VSYNC rising edge delimits a
// complete frame, then returns the pixel grid collected since the
// previous rising edge.
func (c *Console) RunFrame() (Frame, error) {
	c.sawRising = false
	for !c.sawRising {
		if err := c.TickOne(); err != nil {
			return Frame{}, err
		}
	}

	f := Frame{Pixels: c.frame, Scanlines: len(c.frame)}
	c.frame = nil

	if d := f.Scanlines - expectedScanlines; d > scanlineTolerance || d < -scanlineTolerance {
		logger.Logf("console", "unusual frame geometry: %d scanlines (expected ~%d)", f.Scanlines, expectedScanlines)
	}

	return f, nil
}
