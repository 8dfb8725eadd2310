// Package cpu implements a cycle-accurate MOS 6502, as used (in its 6507
// variant) by the Atari 2600. Execution is driven one machine cycle at a
// time: every bus access invokes a CycleCallback, handing control back to
// whatever owns the rest of the machine before the CPU proceeds to its next
// cycle. The CPU itself never decides what "one cycle of the rest of the
// machine" means - that's the Console's job.
package cpu

import (
	"github.com/bl-nero/vcscore/cpu/instructions"
	"github.com/bl-nero/vcscore/cpu/registers"
	"github.com/bl-nero/vcscore/curated"
	"github.com/bl-nero/vcscore/random"
)

// Bus is the minimal interface the CPU needs of the rest of the machine.
// RdyFlg reports whether the CPU may proceed to its next bus cycle; when
// false (during TIA's WSYNC halt) the CPU idles, still invoking
// CycleCallback once per idle cycle, until it becomes true again.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, data uint8)
	RdyFlg() bool
}

// CycleCallback is invoked once after every machine cycle the CPU
// generates, including idle cycles spent waiting on RdyFlg. Returning a
// non-nil error aborts the in-progress instruction.
type CycleCallback func() error

// CPU is a MOS 6502 / 6507. Reset() must be called once before the first
// call to ExecuteInstruction.
type CPU struct {
	bus Bus

	A, X, Y *registers.Register
	SP      *registers.StackPointer
	PC      *registers.ProgramCounter
	Status  registers.StatusRegister

	// RandomState controls what Reset() loads into the general purpose
	// registers and the stack pointer. Real hardware powers on with
	// unpredictable register contents; ROMs that rely on a particular
	// power-on state are, by definition, buggy, and exercising that bug
	// is sometimes exactly what a test wants to do.
	RandomState bool
	rng         *random.Random

	// LastOpcode and LastBug record detail about the most recently
	// executed instruction, useful for tests and for the logger.
	LastOpcode uint8
	LastBug    Bug

	// lastAddr and lastHasAddr record the effective address the most
	// recently executed instruction resolved, if any (Immediate,
	// Accumulator and Implied instructions have none). Feeds
	// Disassemble.
	lastAddr    uint16
	lastHasAddr bool

	// irqLine is level-sensitive: IRQ() just records the pin's current
	// state, and ExecuteInstruction re-samples it at every instruction
	// boundary for as long as it's held true.
	irqLine bool

	// nmiLine and nmiPending implement NMI's edge-triggered latch: NMI()
	// records the pin's current state, and a false-to-true transition
	// sets nmiPending regardless of how long the pin then stays high -
	// even a pulse shorter than one instruction still triggers exactly
	// one NMI sequence.
	nmiLine    bool
	nmiPending bool
}

// NewCPU is the preferred method of initialisation for CPU.
func NewCPU(bus Bus, rng *random.Random) *CPU {
	cpu := &CPU{
		bus: bus,
		A:   registers.NewRegister(0, "A"),
		X:   registers.NewRegister(0, "X"),
		Y:   registers.NewRegister(0, "Y"),
		SP:  registers.NewStackPointer(0xff),
		PC:  registers.NewProgramCounter(0),
		rng: rng,
	}
	return cpu
}

// Bug names a documented hardware quirk that affected the most recently
// decoded instruction.
type Bug string

// The bugs this CPU faithfully reproduces.
const (
	NoBug               Bug = ""
	JmpIndirectPageWrap Bug = "JMP indirect operand wrapped within its page"
	IndexedIndirectWrap Bug = "(zp,X) addressing wrapped within the zero page"
	ZeroPageIndexWrap   Bug = "zero page indexed addressing wrapped within the zero page"
)

// Reset puts the CPU into its post-reset state: interrupts disabled, stack
// pointer and registers either zeroed or randomized depending on
// RandomState, and the program counter loaded from the reset vector.
//
// This takes the documented 7 cycles: 2 discarded fetches, 3 discarded
// stack pushes with writes suppressed, then 2 cycles reading the reset
// vector.
func (cpu *CPU) Reset(resetVector uint16, cycleCallback CycleCallback) error {
	if cpu.RandomState && cpu.rng != nil {
		cpu.A.Load(uint8(cpu.rng.NoRewind(256)))
		cpu.X.Load(uint8(cpu.rng.NoRewind(256)))
		cpu.Y.Load(uint8(cpu.rng.NoRewind(256)))
		cpu.SP.Load(uint8(cpu.rng.NoRewind(256)))
	} else {
		cpu.A.Load(0)
		cpu.X.Load(0)
		cpu.Y.Load(0)
		cpu.SP.Load(0)
	}

	cpu.Status.Reset()
	cpu.Status.InterruptDisable = true

	// two discarded opcode/operand fetches
	for i := 0; i < 2; i++ {
		if err := cycleCallback(); err != nil {
			return err
		}
	}

	// three discarded stack "pushes" (SP decrements, nothing is written)
	for i := 0; i < 3; i++ {
		cpu.SP.Pushed()
		if err := cycleCallback(); err != nil {
			return err
		}
	}

	lo, err := cpu.read(resetVector, cycleCallback)
	if err != nil {
		return err
	}
	hi, err := cpu.read(resetVector+1, cycleCallback)
	if err != nil {
		return err
	}
	cpu.PC.Load(uint16(hi)<<8 | uint16(lo))

	return nil
}

func (cpu *CPU) read(addr uint16, cycleCallback CycleCallback) (uint8, error) {
	v := cpu.bus.Read(addr)
	if err := cycleCallback(); err != nil {
		return 0, err
	}
	return v, nil
}

func (cpu *CPU) write(addr uint16, data uint8, cycleCallback CycleCallback) error {
	cpu.bus.Write(addr, data)
	return cycleCallback()
}

func (cpu *CPU) idle(cycleCallback CycleCallback) error {
	return cycleCallback()
}

func (cpu *CPU) push(data uint8, cycleCallback CycleCallback) error {
	if err := cpu.write(cpu.SP.Address(), data, cycleCallback); err != nil {
		return err
	}
	cpu.SP.Pushed()
	return nil
}

func (cpu *CPU) pop(cycleCallback CycleCallback) (uint8, error) {
	cpu.SP.Popped()
	return cpu.read(cpu.SP.Address(), cycleCallback)
}

// samePage reports whether two addresses share the same high byte.
func samePage(a, b uint16) bool {
	return a&0xff00 == b&0xff00
}

// waitForReady idles the CPU, one cycle at a time, for as long as the bus
// withholds RDY. This is how WSYNC halts the CPU until the start of the
// next scanline.
func (cpu *CPU) waitForReady(cycleCallback CycleCallback) error {
	for !cpu.bus.RdyFlg() {
		if err := cycleCallback(); err != nil {
			return err
		}
	}
	return nil
}

// IRQ sets the level-sensitive maskable interrupt pin. Real hardware holds
// this line however long the interrupting device wants service; the CPU
// samples it at every instruction boundary and, for as long as it reads
// true and Status.InterruptDisable is clear, services it before fetching
// the next opcode. The Console drives this pin every cycle from the RIOT
// timer's underflow flag; a test harness can drive it directly.
func (cpu *CPU) IRQ(asserted bool) {
	cpu.irqLine = asserted
}

// NMI sets the edge-sensitive non-maskable interrupt pin. Unlike IRQ, a
// false-to-true transition latches a pending interrupt that fires at the
// next instruction boundary regardless of Status.InterruptDisable, even if
// the pin has already gone low again by then.
func (cpu *CPU) NMI(asserted bool) {
	if asserted && !cpu.nmiLine {
		cpu.nmiPending = true
	}
	cpu.nmiLine = asserted
}

// ExecuteInstruction decodes and runs a single instruction starting at PC,
// invoking cycleCallback once after every machine cycle. Before fetching
// the next opcode it samples the interrupt pins: a latched NMI takes
// priority, then a held IRQ if interrupts aren't disabled. Either one
// instead runs the CPU's 7-cycle interrupt sequence and vectors through
// nmiVector or irqVector; BRK (a software interrupt, vectoring through
// irqVector) remains available either way. An interrupt signaled mid
// instruction never aborts the instruction in progress - it is only
// recognized once execution reaches the next boundary.
func (cpu *CPU) ExecuteInstruction(cycleCallback CycleCallback) error {
	if err := cpu.waitForReady(cycleCallback); err != nil {
		return err
	}

	if cpu.nmiPending {
		cpu.nmiPending = false
		return cpu.serviceInterrupt(nmiVector, cycleCallback)
	}
	if cpu.irqLine && !cpu.Status.InterruptDisable {
		return cpu.serviceInterrupt(irqVector, cycleCallback)
	}

	pc := cpu.PC.Address()
	opcode, err := cpu.read(pc, cycleCallback)
	if err != nil {
		return err
	}
	cpu.PC.Add(1)
	cpu.LastOpcode = opcode
	cpu.LastBug = NoBug
	cpu.lastHasAddr = false

	defn, ok := instructions.GetDefinition(opcode)
	if !ok {
		return curated.Errorf(curated.IllegalOpcode, opcode, pc)
	}

	return cpu.execute(defn, cycleCallback)
}
