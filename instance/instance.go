// Package instance carries the settings that vary between runs of the
// emulation but are not part of the machine itself: whether power-on
// state is randomized, and the random number generator that decision
// draws from.
//
// Grounded on hardware/instance/instance.go's Instance type, trimmed of
// the ARM/PlusROM/PAL60 preference surface that package also carries -
// none of that applies here, since bank switching and non-6502
// coprocessors are out of scope.
package instance

import "github.com/bl-nero/vcscore/random"

// Label identifies why an Instance exists, for contexts that run more
// than one emulation side by side (e.g. a regression harness comparing
// two ROMs).
type Label string

const (
	Main       Label = ""
	Comparison Label = "comparison"
)

// Instance holds the run-varying settings a Console is built from.
type Instance struct {
	Label Label

	Random *random.Random

	// RandomState controls what CPU.Reset loads into the general
	// purpose registers and the stack pointer on power-on.
	RandomState bool
}

// NewInstance builds an Instance around a fresh Random seeded by coords.
func NewInstance(label Label, coords random.CoordsProvider) *Instance {
	return &Instance{
		Label:  label,
		Random: random.NewRandom(coords),
	}
}

// Normalise forces a known default state, useful for regression tests
// that must start every run identically.
func (ins *Instance) Normalise() {
	ins.Random.ZeroSeed = true
	ins.RandomState = false
}
