// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

package registers_test

import (
	"testing"

	"github.com/mawbry/gophernes/hardware/cpu/registers"
	"github.com/mawbry/gophernes/test"
)

func TestRegister(t *testing.T) {
	r := registers.NewRegister(0, "A")
	test.Equate(t, r.IsZero(), true)
	test.Equate(t, r.IsNegative(), false)

	r.Load(0x80)
	test.Equate(t, r.IsZero(), false)
	test.Equate(t, r.IsNegative(), true)

	// wraparound
	r.Load(0xff)
	carry, overflow := r.Add(1, false)
	test.Equate(t, r.Value(), 0x00)
	test.Equate(t, carry, true)
	test.Equate(t, overflow, false)

	// signed overflow without carry
	r.Load(0x7f)
	carry, overflow = r.Add(1, false)
	test.Equate(t, r.Value(), 0x80)
	test.Equate(t, carry, false)
	test.Equate(t, overflow, true)

	// address context is just zero extension
	r.Load(0xc0)
	test.Equate(t, r.Address(), 0x00c0)
}

func TestRegisterShiftsAndRotates(t *testing.T) {
	r := registers.NewRegister(0x81, "A")

	carry := r.ASL()
	test.Equate(t, r.Value(), 0x02)
	test.Equate(t, carry, true)

	carry = r.LSR()
	test.Equate(t, r.Value(), 0x01)
	test.Equate(t, carry, false)

	carry = r.LSR()
	test.Equate(t, r.Value(), 0x00)
	test.Equate(t, carry, true)

	// rotates feed the previous carry into the vacated bit
	carry = r.ROL(true)
	test.Equate(t, r.Value(), 0x01)
	test.Equate(t, carry, false)

	carry = r.ROR(true)
	test.Equate(t, r.Value(), 0x80)
	test.Equate(t, carry, true)
}

func TestStackPointer(t *testing.T) {
	sp := registers.NewStackPointer(0xff)
	test.Equate(t, sp.Address(), 0x01ff)

	// descending
	sp.Add(0xff)
	test.Equate(t, sp.Value(), 0xfe)
	test.Equate(t, sp.Address(), 0x01fe)

	// wraps modulo 256. the address never leaves page one
	sp.Load(0x00)
	sp.Add(0xff)
	test.Equate(t, sp.Value(), 0xff)
	test.Equate(t, sp.Address(), 0x01ff)
}

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister()
	test.Equate(t, sr.Value(), 0x00)
	test.Equate(t, sr.String(), "sv-bdizc")

	sr.Carry = true
	sr.Sign = true
	test.Equate(t, sr.Value(), 0x81)
	test.Equate(t, sr.String(), "Sv-bdizC")

	// every bit position, including the unused bit, survives a round trip
	for _, v := range []uint8{0x00, 0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0xff} {
		sr.FromValue(v)
		test.Equate(t, sr.Value(), v)
	}

	sr.Reset()
	test.Equate(t, sr.Value(), 0x00)
}
