package cpu

import "github.com/bl-nero/vcscore/cpu/instructions"

// fetchOperandByte reads the byte at PC and advances PC. Used for every
// addressing mode that consumes at least one operand byte.
func (cpu *CPU) fetchOperandByte(cycleCallback CycleCallback) (uint8, error) {
	v, err := cpu.read(cpu.PC.Address(), cycleCallback)
	if err != nil {
		return 0, err
	}
	cpu.PC.Add(1)
	return v, nil
}

// resolveAddress computes the effective address for every addressing mode
// except Implied, Accumulator, Immediate and Relative (which execute(),
// execGeneric() and execBranch() handle without an effective address). It also performs whatever dummy bus cycles the addressing
// mode requires, so that by the time it returns the only cycles left to
// spend are the ones belonging to the instruction's actual effect.
func (cpu *CPU) resolveAddress(defn instructions.Definition, cycleCallback CycleCallback) (addr uint16, err error) {
	defer func() {
		if err == nil {
			cpu.lastAddr = addr
			cpu.lastHasAddr = true
		}
	}()

	switch defn.AddressingMode {
	case instructions.ZeroPage:
		zp, err := cpu.fetchOperandByte(cycleCallback)
		if err != nil {
			return 0, err
		}
		return uint16(zp), nil

	case instructions.ZeroPageIndexedX:
		return cpu.resolveZeroPageIndexed(cpu.X.Value(), cycleCallback)

	case instructions.ZeroPageIndexedY:
		return cpu.resolveZeroPageIndexed(cpu.Y.Value(), cycleCallback)

	case instructions.Absolute:
		lo, err := cpu.fetchOperandByte(cycleCallback)
		if err != nil {
			return 0, err
		}
		hi, err := cpu.fetchOperandByte(cycleCallback)
		if err != nil {
			return 0, err
		}
		return uint16(hi)<<8 | uint16(lo), nil

	case instructions.AbsoluteIndexedX:
		return cpu.resolveAbsoluteIndexed(cpu.X.Value(), defn, cycleCallback)

	case instructions.AbsoluteIndexedY:
		return cpu.resolveAbsoluteIndexed(cpu.Y.Value(), defn, cycleCallback)

	case instructions.IndexedIndirect:
		zp, err := cpu.fetchOperandByte(cycleCallback)
		if err != nil {
			return 0, err
		}
		// dummy read at the unindexed zero page address
		if _, err := cpu.read(uint16(zp), cycleCallback); err != nil {
			return 0, err
		}
		if uint16(zp)+uint16(cpu.X.Value()) > 0xff {
			cpu.LastBug = IndexedIndirectWrap
		}
		lo, err := cpu.read(uint16(uint8(zp+cpu.X.Value())), cycleCallback)
		if err != nil {
			return 0, err
		}
		hi, err := cpu.read(uint16(uint8(zp+cpu.X.Value()+1)), cycleCallback)
		if err != nil {
			return 0, err
		}
		return uint16(hi)<<8 | uint16(lo), nil

	case instructions.IndirectIndexed:
		zp, err := cpu.fetchOperandByte(cycleCallback)
		if err != nil {
			return 0, err
		}
		lo, err := cpu.read(uint16(zp), cycleCallback)
		if err != nil {
			return 0, err
		}
		hi, err := cpu.read(uint16(uint8(zp+1)), cycleCallback)
		if err != nil {
			return 0, err
		}
		base := uint16(hi)<<8 | uint16(lo)
		addr := base + uint16(cpu.Y.Value())
		if err := cpu.resolveIndexedDummyCycle(base, addr, defn, cycleCallback); err != nil {
			return 0, err
		}
		return addr, nil

	case instructions.Indirect:
		// only ever used by JMP, which loads the result straight into PC;
		// resolveIndirect reproduces the page-wrap bug.
		return cpu.resolveIndirect(cycleCallback)
	}

	panic("resolveAddress: unexpected addressing mode")
}

func (cpu *CPU) resolveZeroPageIndexed(index uint8, cycleCallback CycleCallback) (uint16, error) {
	zp, err := cpu.fetchOperandByte(cycleCallback)
	if err != nil {
		return 0, err
	}
	// dummy read at the unindexed zero page address
	if _, err := cpu.read(uint16(zp), cycleCallback); err != nil {
		return 0, err
	}
	if uint16(zp)+uint16(index) > 0xff {
		cpu.LastBug = ZeroPageIndexWrap
	}
	return uint16(uint8(zp + index)), nil
}

func (cpu *CPU) resolveAbsoluteIndexed(index uint8, defn instructions.Definition, cycleCallback CycleCallback) (uint16, error) {
	lo, err := cpu.fetchOperandByte(cycleCallback)
	if err != nil {
		return 0, err
	}
	hi, err := cpu.fetchOperandByte(cycleCallback)
	if err != nil {
		return 0, err
	}
	base := uint16(hi)<<8 | uint16(lo)
	addr := base + uint16(index)
	if err := cpu.resolveIndexedDummyCycle(base, addr, defn, cycleCallback); err != nil {
		return 0, err
	}
	return addr, nil
}

// resolveIndexedDummyCycle performs the extra bus read that indexed
// addressing costs. Read-category instructions only pay for it when
// indexing actually crosses a page boundary; every other effect category
// pays for it unconditionally, because the CPU can't undo a write/RMW's
// bus cycles once it has committed to them.
func (cpu *CPU) resolveIndexedDummyCycle(base, addr uint16, defn instructions.Definition, cycleCallback CycleCallback) error {
	crossed := !samePage(base, addr)

	if defn.Effect == instructions.Read {
		if !crossed {
			return nil
		}
	}

	wrong := (base & 0xff00) | (addr & 0x00ff)
	_, err := cpu.read(wrong, cycleCallback)
	return err
}

func (cpu *CPU) resolveIndirect(cycleCallback CycleCallback) (uint16, error) {
	lo, err := cpu.fetchOperandByte(cycleCallback)
	if err != nil {
		return 0, err
	}
	hi, err := cpu.fetchOperandByte(cycleCallback)
	if err != nil {
		return 0, err
	}
	ptr := uint16(hi)<<8 | uint16(lo)

	targetLo, err := cpu.read(ptr, cycleCallback)
	if err != nil {
		return 0, err
	}

	// the documented page-wrap bug: if the pointer's low byte is 0xff,
	// the high byte of the target is read from the start of the same
	// page rather than the start of the next one.
	hiAddr := ptr + 1
	if lo == 0xff {
		hiAddr = ptr & 0xff00
		cpu.LastBug = JmpIndirectPageWrap
	}
	targetHi, err := cpu.read(hiAddr, cycleCallback)
	if err != nil {
		return 0, err
	}

	return uint16(targetHi)<<8 | uint16(targetLo), nil
}
