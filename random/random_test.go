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

package random_test

import (
	"testing"

	"github.com/bl-nero/vcscore/random"
	"github.com/bl-nero/vcscore/test"
)

type tv struct {
}

func (m *tv) GetCoords() (frame, scanline, clock int) {
	return 100, 32, 10
}

func TestRandomIsRewindable(t *testing.T) {
	a := random.NewRandom(&tv{})
	b := random.NewRandom(&tv{})
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.DemandEquality(t, a.Rewindable(i), b.Rewindable(i))
	}
}

type movingTV struct {
	frame, scanline, clock int
}

func (m *movingTV) GetCoords() (frame, scanline, clock int) {
	return m.frame, m.scanline, m.clock
}

func TestRandomDiffersByCoords(t *testing.T) {
	tv := &movingTV{frame: 1, scanline: 1, clock: 1}
	r := random.NewRandom(tv)
	r.ZeroSeed = true

	first := r.Rewindable(1000000)

	tv.clock++
	second := r.Rewindable(1000000)

	if first == second {
		t.Fatalf("expected different outputs for different coordinates, got %d twice", first)
	}
}
