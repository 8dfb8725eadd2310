// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// CoordsProvider supplies the console's current position in the frame so
// that Rewindable() can return a number that is reproducible for a given
// point in time, regardless of when it is called.
type CoordsProvider interface {
	GetCoords() (frame, scanline, clock int)
}

// Random is a random number generator that is sensitive to the console's
// position within the frame. Required so that two runs of the same ROM up
// to the same point in time produce the same "random" power-on state.
type Random struct {
	coords CoordsProvider

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be
	// predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(coords CoordsProvider) *Random {
	return &Random{
		coords: coords,
	}
}

// translate console coordinates into a single value
func coordsSum(frame, scanline, clock int) int64 {
	return int64(frame)*1000000 + int64(scanline)*1000 + int64(clock)
}

// new RNG from the standard library
func (rnd *Random) rand() *rand.Rand {
	frame, scanline, clock := rnd.coords.GetCoords()
	if rnd.ZeroSeed {
		return rand.New(rand.NewSource(coordsSum(frame, scanline, clock)))
	}
	return rand.New(rand.NewSource(baseSeed + coordsSum(frame, scanline, clock)))
}

// Rewindable returns a random number in the range [0, n) that depends only
// on the console's current coordinates, not on wall-clock time. Two
// emulation runs that reach the same coordinates draw the same number.
func (rnd *Random) Rewindable(n int) int {
	return rnd.rand().Intn(n)
}

// NoRewind returns a random number in the range [0, n) that is not tied to
// the console's coordinates at all.
func (rnd *Random) NoRewind(n int) int {
	if rnd.ZeroSeed {
		return rand.New(rand.NewSource(0)).Intn(n)
	}
	return rand.Intn(n)
}
