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

// Package registers implements the register file of the 6502. The Register
// type is used for the accumulator and the two index registers, while the
// program counter, stack pointer and status register get types of their own.
//
// All arithmetic wraps: 8 bit values modulo 256 and 16 bit values modulo
// 65536. Nothing in this package can trap or overflow.
package registers
