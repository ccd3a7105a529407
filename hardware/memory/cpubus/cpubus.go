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

// Package cpubus defines the memory operations available to the CPU. It is
// the only channel through which the CPU observes or mutates the rest of the
// console.
package cpubus

// Memory defines the operations of the main data bus when accessed from the
// CPU.
//
// Both operations are total. Read returns a stable value (zero for unmapped
// regions) for all 65536 addresses and Write to a read-only or unmapped
// region is silently dropped. Address mirroring is the implementation's
// responsibility and invisible to the CPU.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// The interrupt vectors of the 6502. Only Reset is used at the moment but
// the others are reserved for the interrupt instructions when they arrive.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
)
