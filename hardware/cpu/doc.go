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

// Package cpu emulates the 6502 as fitted to the NES. It is an
// instruction-level emulation: Step() executes one whole instruction at a
// time and the bus sees reads and writes in instruction order, not in true
// cycle order.
//
// The CPU is driven through the Step() function. Reset() puts the registers
// into their documented power-on state and loads the PC from the reset
// vector. The result of the most recent instruction is kept in the
// LastResult field, which the monitor and the disassembler use for tracing.
//
// Flag behaviour follows the conventions of the machine with one quirk kept
// on purpose: the shift and rotate family never updates the zero flag.
package cpu
