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

package disassembly_test

import (
	"testing"

	"github.com/mawbry/gophernes/disassembly"
	"github.com/mawbry/gophernes/programloader"
	"github.com/mawbry/gophernes/test"
)

func TestFromProgram(t *testing.T) {
	prog, err := programloader.NewLoaderFromData(
		[]uint8{0xa9, 0x01, 0xa0, 0x04, 0x11, 0x03, 0x4c, 0x00, 0x80}, 0)
	test.ExpectedSuccess(t, err)

	entries := disassembly.FromProgram(prog)
	test.Equate(t, len(entries), 4)

	test.Equate(t, entries[0].String(), "$8000\tLDA\t#$01")
	test.Equate(t, entries[1].String(), "$8002\tLDY\t#$04")
	test.Equate(t, entries[2].String(), "$8004\tORA\t($03),Y")
	test.Equate(t, entries[3].String(), "$8006\tJMP\t$8000")
}

func TestUndecodedBytes(t *testing.T) {
	prog, err := programloader.NewLoaderFromData([]uint8{0x02, 0xea}, 0x0200)
	test.ExpectedSuccess(t, err)

	entries := disassembly.FromProgram(prog)
	test.Equate(t, len(entries), 2)
	test.Equate(t, entries[0].String(), "$0200\t.byte $02")
	test.Equate(t, entries[1].String(), "$0201\tNOP")
}

func TestTruncatedOperand(t *testing.T) {
	// the program ends in the middle of the JMP operand
	prog, err := programloader.NewLoaderFromData([]uint8{0x4c, 0x00}, 0x0200)
	test.ExpectedSuccess(t, err)

	entries := disassembly.FromProgram(prog)
	test.Equate(t, len(entries), 1)
	test.Equate(t, entries[0].Truncated, true)
}
