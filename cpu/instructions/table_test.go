package instructions_test

import (
	"testing"

	"github.com/bl-nero/vcscore/cpu/instructions"
	"github.com/bl-nero/vcscore/test"
)

func TestTable_HasExactlyOfficialOpcodeCount(t *testing.T) {
	count := 0
	for op := 0; op < 256; op++ {
		if _, ok := instructions.GetDefinition(uint8(op)); ok {
			count++
		}
	}
	test.DemandEquality(t, count, 151)
}

func TestTable_BRKIsSevenCycleInterrupt(t *testing.T) {
	defn, ok := instructions.GetDefinition(0x00)
	test.DemandSuccess(t, ok)
	test.DemandEquality(t, defn.Mnemonic, "BRK")
	test.DemandEquality(t, defn.Cycles, 7)
	test.DemandEquality(t, defn.Effect, instructions.Interrupt)
}

func TestTable_BranchesAreFlowRelative(t *testing.T) {
	for _, op := range []uint8{0x90, 0xB0, 0xF0, 0x30, 0xD0, 0x10, 0x50, 0x70} {
		defn, ok := instructions.GetDefinition(op)
		test.DemandSuccess(t, ok)
		test.DemandEquality(t, defn.IsBranch(), true)
	}
}

func TestTable_IllegalOpcodeNotPresent(t *testing.T) {
	_, ok := instructions.GetDefinition(0x02)
	test.DemandEquality(t, ok, false)
}
