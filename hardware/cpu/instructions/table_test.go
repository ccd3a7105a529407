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

package instructions_test

import (
	"testing"

	"github.com/mawbry/gophernes/hardware/cpu/instructions"
	"github.com/mawbry/gophernes/test"
)

func TestTableTotality(t *testing.T) {
	for i := 0; i < 256; i++ {
		defn := instructions.Definitions[i]
		test.Equate(t, defn.OpCode, i)

		if !defn.Decoded() {
			// undecoded opcodes occupy exactly one byte and keep the invalid
			// addressing mode sentinel
			test.Equate(t, defn.Bytes(), 1)
			test.Equate(t, defn.AddressingMode == instructions.Invalid, true)
			continue
		}

		// decoded opcodes never carry the sentinel
		test.Equate(t, defn.AddressingMode == instructions.Invalid, false)

		if defn.Bytes() < 1 || defn.Bytes() > 3 {
			t.Errorf("opcode %02x has silly byte count %d", i, defn.Bytes())
		}
	}
}

func TestTableShape(t *testing.T) {
	numDecoded := 0
	for _, defn := range instructions.Definitions {
		if !defn.Decoded() {
			continue
		}
		numDecoded++

		switch defn.Operator {
		case instructions.Bcc, instructions.Bcs, instructions.Beq, instructions.Bne,
			instructions.Bmi, instructions.Bpl, instructions.Bvc, instructions.Bvs:
			test.Equate(t, defn.IsBranch(), true)

		case instructions.Jmp:
			test.Equate(t, defn.Effect == instructions.Flow, true)

		case instructions.Sta, instructions.Stx, instructions.Sty:
			test.Equate(t, defn.Effect == instructions.Write, true)

		case instructions.Inc, instructions.Dec:
			test.Equate(t, defn.Effect == instructions.RMW, true)

		case instructions.Asl, instructions.Lsr, instructions.Rol, instructions.Ror:
			// accumulator variants touch no memory. every other variant is a
			// read-modify-write
			if defn.AddressingMode == instructions.Accumulator {
				test.Equate(t, defn.Effect == instructions.Read, true)
			} else {
				test.Equate(t, defn.Effect == instructions.RMW, true)
			}
		}
	}

	// the documented opcodes of the implemented instruction families
	test.Equate(t, numDecoded, 119)
}
