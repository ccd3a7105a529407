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

// Package nes is the container for the emulated components of the console:
// the CPU and the memory it is connected to.
package nes

import (
	"fmt"

	"github.com/mawbry/gophernes/hardware/cpu"
	"github.com/mawbry/gophernes/hardware/memory"
	"github.com/mawbry/gophernes/hardware/memory/cpubus"
	"github.com/mawbry/gophernes/programloader"
)

// Console is the main container for the emulated components of the NES.
type Console struct {
	CPU *cpu.CPU
	Mem *memory.Memory
}

// NewConsole creates a new console and everything associated with the
// hardware. It is used for all aspects of emulation: running, disassembly
// and monitoring.
func NewConsole() *Console {
	con := &Console{}
	con.Mem = memory.NewMemory()
	con.CPU = cpu.NewCPU(con.Mem)
	return con
}

func (con *Console) String() string {
	return con.CPU.String()
}

// Reset emulates the reset signal of the console. Memory is left alone; the
// CPU restarts from whatever the reset vector points at.
func (con *Console) Reset() {
	con.CPU.Reset()
}

// Step executes the instruction at the current PC.
func (con *Console) Step() error {
	return con.CPU.Step()
}

// AttachProgram clears console memory, copies the program to its origin
// address, points the reset vector at the origin and resets the console.
func (con *Console) AttachProgram(prog programloader.Program) error {
	if int(prog.Origin)+len(prog.Data) > 0x10000 {
		return fmt.Errorf("nes: program does not fit in console memory (%s)", prog)
	}

	con.Mem.Clear()

	for i, b := range prog.Data {
		con.Mem.Write(prog.Origin+uint16(i), b)
	}

	// reset vector points at the start of the program
	con.Mem.Write(cpubus.Reset, uint8(prog.Origin&0x00ff))
	con.Mem.Write(cpubus.Reset+1, uint8(prog.Origin>>8))

	con.Reset()

	return nil
}
