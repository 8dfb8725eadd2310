package cpu

import (
	"fmt"

	"github.com/bl-nero/vcscore/cpu/instructions"
)

// Disassemble renders the most recently executed instruction in
// conventional "MNEMONIC OPERAND" form. For an instruction that resolved a
// memory address, symbolFor is consulted for a canonical register name
// (typically (*bus.Bus).Describe); a nil symbolFor, or one that returns "",
// falls back to a raw hex address. The CPU package stays bus-agnostic -
// symbolFor is the caller's choice of how addresses map to names.
func (cpu *CPU) Disassemble(symbolFor func(addr uint16, read bool) string) string {
	defn, ok := instructions.GetDefinition(cpu.LastOpcode)
	if !ok {
		return fmt.Sprintf("$%02x ???", cpu.LastOpcode)
	}
	if !cpu.lastHasAddr {
		return defn.Mnemonic
	}

	read := defn.Effect != instructions.Write
	if symbolFor != nil {
		if name := symbolFor(cpu.lastAddr, read); name != "" {
			return defn.Mnemonic + " " + name
		}
	}
	return fmt.Sprintf("%s $%04x", defn.Mnemonic, cpu.lastAddr)
}
