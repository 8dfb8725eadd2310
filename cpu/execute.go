package cpu

import "github.com/bl-nero/vcscore/cpu/instructions"

// execute dispatches a decoded instruction. The opcode fetch cycle has
// already happened and PC already points past the opcode byte.
func (cpu *CPU) execute(defn instructions.Definition, cb CycleCallback) error {
	switch defn.Mnemonic {
	case "BRK":
		return cpu.execBRK(cb)
	case "RTI":
		return cpu.execRTI(cb)
	case "RTS":
		return cpu.execRTS(cb)
	case "JSR":
		return cpu.execJSR(cb)
	case "JMP":
		return cpu.execJMP(defn, cb)
	case "BCC", "BCS", "BEQ", "BMI", "BNE", "BPL", "BVC", "BVS":
		return cpu.execBranch(defn, cb)
	case "PHA":
		if err := cpu.idle(cb); err != nil {
			return err
		}
		return cpu.push(cpu.A.Value(), cb)
	case "PHP":
		if err := cpu.idle(cb); err != nil {
			return err
		}
		sr := cpu.Status
		sr.Break = true
		return cpu.push(sr.Value(), cb)
	case "PLA":
		for i := 0; i < 2; i++ {
			if err := cpu.idle(cb); err != nil {
				return err
			}
		}
		v, err := cpu.pop(cb)
		if err != nil {
			return err
		}
		cpu.A.Load(v)
		cpu.setZN(v)
		return nil
	case "PLP":
		for i := 0; i < 2; i++ {
			if err := cpu.idle(cb); err != nil {
				return err
			}
		}
		v, err := cpu.pop(cb)
		if err != nil {
			return err
		}
		cpu.Status.FromValue(v)
		return nil
	}

	if defn.AddressingMode == instructions.Implied {
		return cpu.execImplied(defn.Mnemonic, cb)
	}

	return cpu.execGeneric(defn, cb)
}

// execImplied handles every two-cycle, no-operand instruction: flag
// clears/sets, register transfers, increments/decrements and NOP.
func (cpu *CPU) execImplied(mnemonic string, cb CycleCallback) error {
	if err := cpu.idle(cb); err != nil {
		return err
	}

	switch mnemonic {
	case "CLC":
		cpu.Status.Carry = false
	case "CLD":
		cpu.Status.DecimalMode = false
	case "CLI":
		cpu.Status.InterruptDisable = false
	case "CLV":
		cpu.Status.Overflow = false
	case "SEC":
		cpu.Status.Carry = true
	case "SED":
		cpu.Status.DecimalMode = true
	case "SEI":
		cpu.Status.InterruptDisable = true
	case "DEX":
		cpu.X.Subtract(1, true)
		cpu.setZN(cpu.X.Value())
	case "DEY":
		cpu.Y.Subtract(1, true)
		cpu.setZN(cpu.Y.Value())
	case "INX":
		cpu.X.Add(1, false)
		cpu.setZN(cpu.X.Value())
	case "INY":
		cpu.Y.Add(1, false)
		cpu.setZN(cpu.Y.Value())
	case "TAX":
		cpu.X.Load(cpu.A.Value())
		cpu.setZN(cpu.X.Value())
	case "TAY":
		cpu.Y.Load(cpu.A.Value())
		cpu.setZN(cpu.Y.Value())
	case "TSX":
		cpu.X.Load(cpu.SP.Value())
		cpu.setZN(cpu.X.Value())
	case "TXA":
		cpu.A.Load(cpu.X.Value())
		cpu.setZN(cpu.A.Value())
	case "TXS":
		cpu.SP.Load(cpu.X.Value())
	case "TYA":
		cpu.A.Load(cpu.Y.Value())
		cpu.setZN(cpu.A.Value())
	case "NOP":
		// nothing to do
	default:
		panic("execImplied: unexpected mnemonic " + mnemonic)
	}

	return nil
}

// execGeneric handles the Read/Write/RMW instructions whose addressing
// mode is Accumulator, Immediate, or one of the memory addressing modes.
func (cpu *CPU) execGeneric(defn instructions.Definition, cb CycleCallback) error {
	if defn.AddressingMode == instructions.Accumulator {
		return cpu.execAccumulatorRMW(defn.Mnemonic, cb)
	}

	if defn.AddressingMode == instructions.Immediate {
		val, err := cpu.fetchOperandByte(cb)
		if err != nil {
			return err
		}
		cpu.applyRead(defn.Mnemonic, val)
		return nil
	}

	addr, err := cpu.resolveAddress(defn, cb)
	if err != nil {
		return err
	}

	switch defn.Effect {
	case instructions.Read:
		val, err := cpu.read(addr, cb)
		if err != nil {
			return err
		}
		cpu.applyRead(defn.Mnemonic, val)
		return nil
	case instructions.Write:
		return cpu.write(addr, cpu.registerValue(defn.Mnemonic), cb)
	case instructions.RMW:
		return cpu.execMemoryRMW(defn.Mnemonic, addr, cb)
	}

	panic("execGeneric: unexpected effect category")
}

func (cpu *CPU) execAccumulatorRMW(mnemonic string, cb CycleCallback) error {
	if err := cpu.idle(cb); err != nil {
		return err
	}
	v := cpu.rmwOperate(mnemonic, cpu.A.Value())
	cpu.A.Load(v)
	cpu.setZN(v)
	return nil
}

func (cpu *CPU) execMemoryRMW(mnemonic string, addr uint16, cb CycleCallback) error {
	old, err := cpu.read(addr, cb)
	if err != nil {
		return err
	}
	// real 6502s write the unmodified value back before writing the
	// modified one; observable on hardware that latches bus writes.
	if err := cpu.write(addr, old, cb); err != nil {
		return err
	}
	v := cpu.rmwOperate(mnemonic, old)
	if err := cpu.write(addr, v, cb); err != nil {
		return err
	}
	cpu.setZN(v)
	return nil
}

func (cpu *CPU) execJMP(defn instructions.Definition, cb CycleCallback) error {
	addr, err := cpu.resolveAddress(defn, cb)
	if err != nil {
		return err
	}
	cpu.PC.Load(addr)
	return nil
}

func (cpu *CPU) execBranch(defn instructions.Definition, cb CycleCallback) error {
	offset, err := cpu.fetchOperandByte(cb)
	if err != nil {
		return err
	}

	if !cpu.branchTaken(defn.Mnemonic) {
		return nil
	}

	if err := cpu.idle(cb); err != nil {
		return err
	}

	oldPC := cpu.PC.Address()
	newPC := uint16(int32(oldPC) + int32(int8(offset)))

	if !samePage(oldPC, newPC) {
		if err := cpu.idle(cb); err != nil {
			return err
		}
	}

	cpu.PC.Load(newPC)
	return nil
}

func (cpu *CPU) branchTaken(mnemonic string) bool {
	switch mnemonic {
	case "BCC":
		return !cpu.Status.Carry
	case "BCS":
		return cpu.Status.Carry
	case "BEQ":
		return cpu.Status.Zero
	case "BNE":
		return !cpu.Status.Zero
	case "BMI":
		return cpu.Status.Sign
	case "BPL":
		return !cpu.Status.Sign
	case "BVC":
		return !cpu.Status.Overflow
	case "BVS":
		return cpu.Status.Overflow
	}
	panic("branchTaken: unexpected mnemonic " + mnemonic)
}

func (cpu *CPU) execJSR(cb CycleCallback) error {
	lo, err := cpu.fetchOperandByte(cb)
	if err != nil {
		return err
	}

	if err := cpu.idle(cb); err != nil {
		return err
	}

	// PC now points at the high byte of the operand - the last byte of
	// this instruction, which is the return address RTS expects.
	retAddr := cpu.PC.Address()
	if err := cpu.push(uint8(retAddr>>8), cb); err != nil {
		return err
	}
	if err := cpu.push(uint8(retAddr), cb); err != nil {
		return err
	}

	hi, err := cpu.fetchOperandByte(cb)
	if err != nil {
		return err
	}

	cpu.PC.Load(uint16(hi)<<8 | uint16(lo))
	return nil
}

func (cpu *CPU) execRTS(cb CycleCallback) error {
	if err := cpu.idle(cb); err != nil {
		return err
	}
	if err := cpu.idle(cb); err != nil {
		return err
	}
	lo, err := cpu.pop(cb)
	if err != nil {
		return err
	}
	hi, err := cpu.pop(cb)
	if err != nil {
		return err
	}
	if err := cpu.idle(cb); err != nil {
		return err
	}
	cpu.PC.Load((uint16(hi)<<8 | uint16(lo)) + 1)
	return nil
}

func (cpu *CPU) execRTI(cb CycleCallback) error {
	if err := cpu.idle(cb); err != nil {
		return err
	}
	sr, err := cpu.pop(cb)
	if err != nil {
		return err
	}
	lo, err := cpu.pop(cb)
	if err != nil {
		return err
	}
	hi, err := cpu.pop(cb)
	if err != nil {
		return err
	}
	if err := cpu.idle(cb); err != nil {
		return err
	}
	cpu.Status.FromValue(sr)
	cpu.PC.Load(uint16(hi)<<8 | uint16(lo))
	return nil
}

// irqVector and nmiVector are where BRK, IRQ and NMI read the new program
// counter from.
const (
	irqVector = 0xfffe
	nmiVector = 0xfffa
)

// serviceInterrupt runs the CPU's hardware-interrupt entry sequence: two
// idle cycles standing in for the discarded opcode fetch a software BRK
// would have done, then the same push-return-address/push-status/read
// vector sequence as execBRK - except the pushed status has Break forced
// false, the one documented difference between a hardware interrupt and a
// BRK a 6502 programmer can observe from inside the handler.
func (cpu *CPU) serviceInterrupt(vector uint16, cb CycleCallback) error {
	if err := cpu.idle(cb); err != nil {
		return err
	}
	if err := cpu.idle(cb); err != nil {
		return err
	}

	retAddr := cpu.PC.Address()
	if err := cpu.push(uint8(retAddr>>8), cb); err != nil {
		return err
	}
	if err := cpu.push(uint8(retAddr), cb); err != nil {
		return err
	}

	sr := cpu.Status
	sr.Break = false
	if err := cpu.push(sr.Value(), cb); err != nil {
		return err
	}

	cpu.Status.InterruptDisable = true

	lo, err := cpu.read(vector, cb)
	if err != nil {
		return err
	}
	hi, err := cpu.read(vector+1, cb)
	if err != nil {
		return err
	}

	cpu.PC.Load(uint16(hi)<<8 | uint16(lo))
	return nil
}

func (cpu *CPU) execBRK(cb CycleCallback) error {
	// the byte after the BRK opcode is conventionally a padding/signature
	// byte; it is still fetched and discarded.
	if _, err := cpu.fetchOperandByte(cb); err != nil {
		return err
	}

	retAddr := cpu.PC.Address()
	if err := cpu.push(uint8(retAddr>>8), cb); err != nil {
		return err
	}
	if err := cpu.push(uint8(retAddr), cb); err != nil {
		return err
	}

	sr := cpu.Status
	sr.Break = true
	if err := cpu.push(sr.Value(), cb); err != nil {
		return err
	}

	cpu.Status.InterruptDisable = true

	lo, err := cpu.read(irqVector, cb)
	if err != nil {
		return err
	}
	hi, err := cpu.read(irqVector+1, cb)
	if err != nil {
		return err
	}

	cpu.PC.Load(uint16(hi)<<8 | uint16(lo))
	return nil
}
