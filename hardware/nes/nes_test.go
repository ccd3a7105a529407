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

package nes_test

import (
	"testing"

	"github.com/mawbry/gophernes/hardware/nes"
	"github.com/mawbry/gophernes/programloader"
	"github.com/mawbry/gophernes/test"
)

func TestAttachProgram(t *testing.T) {
	con := nes.NewConsole()

	// LDA #$01; LDY #$04; ORA ($03),Y
	prog, err := programloader.NewLoaderFromData(
		[]uint8{0xa9, 0x01, 0xa0, 0x04, 0x11, 0x03}, 0)
	test.ExpectedSuccess(t, err)

	err = con.AttachProgram(prog)
	test.ExpectedSuccess(t, err)

	// the reset vector has been planted and the CPU starts at the origin
	test.Equate(t, con.CPU.PC.Address(), programloader.DefaultOrigin)

	// place the zero page pointer and the value it leads to
	con.Mem.Write(0x0003, 0x00)
	con.Mem.Write(0x0004, 0x05)
	con.Mem.Write(0x0504, 0x80)

	for i := 0; i < 3; i++ {
		err = con.Step()
		test.ExpectedSuccess(t, err)
	}

	test.Equate(t, con.CPU.A.Value(), 0x81)
	test.Equate(t, con.CPU.Status.Sign, true)
	test.Equate(t, con.CPU.Status.Zero, false)
}

func TestResetLeavesMemoryAlone(t *testing.T) {
	con := nes.NewConsole()

	prog, err := programloader.NewLoaderFromData([]uint8{0xe8, 0xe8}, 0)
	test.ExpectedSuccess(t, err)
	err = con.AttachProgram(prog)
	test.ExpectedSuccess(t, err)

	err = con.Step()
	test.ExpectedSuccess(t, err)
	test.Equate(t, con.CPU.X.Value(), 1)

	con.Reset()
	test.Equate(t, con.CPU.X.Value(), 0)
	test.Equate(t, con.CPU.PC.Address(), programloader.DefaultOrigin)

	// the program is still in memory after the reset
	test.Equate(t, con.Mem.Read(programloader.DefaultOrigin), 0xe8)
}
