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

package memory_test

import (
	"testing"

	"github.com/mawbry/gophernes/hardware/memory"
	"github.com/mawbry/gophernes/test"
)

func TestInternalRAMMirroring(t *testing.T) {
	mem := memory.NewMemory()

	// a write to the canonical address is visible through every mirror
	mem.Write(0x0102, 0xab)
	test.Equate(t, mem.Read(0x0102), 0xab)
	test.Equate(t, mem.Read(0x0902), 0xab)
	test.Equate(t, mem.Read(0x1102), 0xab)
	test.Equate(t, mem.Read(0x1902), 0xab)

	// and a write through a mirror is visible at the canonical address
	mem.Write(0x1f00, 0xcd)
	test.Equate(t, mem.Read(0x0700), 0xcd)
}

func TestWorkArea(t *testing.T) {
	mem := memory.NewMemory()

	// the work area is not mirrored
	mem.Write(0x2000, 0x11)
	test.Equate(t, mem.Read(0x2000), 0x11)
	test.Equate(t, mem.Read(0x2800), 0x00)

	// the reset vector is plain mapped memory
	mem.Write(0xfffc, 0x00)
	mem.Write(0xfffd, 0x80)
	test.Equate(t, mem.Read(0xfffc), 0x00)
	test.Equate(t, mem.Read(0xfffd), 0x80)

	// the very top of the address space is addressable
	mem.Write(0xffff, 0xee)
	test.Equate(t, mem.Read(0xffff), 0xee)
}

func TestClear(t *testing.T) {
	mem := memory.NewMemory()
	mem.Write(0x0000, 0x01)
	mem.Write(0x8000, 0x02)
	mem.Clear()
	test.Equate(t, mem.Read(0x0000), 0x00)
	test.Equate(t, mem.Read(0x8000), 0x00)
}
