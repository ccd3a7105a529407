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

// Package memory implements the address space of the NES console as seen
// from the CPU. The console has 2KiB of internal RAM which is mirrored
// throughout the bottom 8KiB of the address space.
//
// Until the cartridge mapper subsystem exists the rest of the address space
// is a flat work area. Programs are loaded there and the reset vector is
// ordinary mapped memory.
package memory

// The internal RAM and its mirrored extent.
const (
	InternalRAMSize   = 2048
	InternalRAMMirror = uint16(0x1fff)
)

// WorkAreaOrigin is the bottom of the flat work/program area.
const WorkAreaOrigin = uint16(0x2000)

// Memory is the concrete console memory. It implements cpubus.Memory.
type Memory struct {
	ram  [InternalRAMSize]uint8
	work [0x10000 - int(WorkAreaOrigin)]uint8
}

// NewMemory is the preferred method of initialisation for console memory.
func NewMemory() *Memory {
	return &Memory{}
}

// Read a byte from the specified address. Total: every address returns a
// stable value.
func (mem *Memory) Read(address uint16) uint8 {
	if address <= InternalRAMMirror {
		return mem.ram[address&(InternalRAMSize-1)]
	}
	return mem.work[address-WorkAreaOrigin]
}

// Write a byte to the specified address. Total: writes are never an error.
func (mem *Memory) Write(address uint16, data uint8) {
	if address <= InternalRAMMirror {
		mem.ram[address&(InternalRAMSize-1)] = data
		return
	}
	mem.work[address-WorkAreaOrigin] = data
}

// Clear sets every byte of memory to zero.
func (mem *Memory) Clear() {
	mem.ram = [InternalRAMSize]uint8{}
	mem.work = [0x10000 - int(WorkAreaOrigin)]uint8{}
}
