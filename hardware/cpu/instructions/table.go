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

package instructions

// Definitions is the dispatch table: a total mapping from every possible
// opcode value to its Definition. Built once at package initialisation and
// never mutated. Entries not listed in the decoded table below keep their
// zero Operator (Undecoded) and zero AddressingMode (Invalid).
var Definitions [256]Definition

// the decoded portion of the opcode space. entries are positional:
// opcode, operator, addressing mode, effect.
var decoded = [...]Definition{
	// load
	{0xa9, Lda, Immediate, Read},
	{0xa5, Lda, ZeroPage, Read},
	{0xb5, Lda, ZeroPageIndexedX, Read},
	{0xad, Lda, Absolute, Read},
	{0xbd, Lda, AbsoluteIndexedX, Read},
	{0xb9, Lda, AbsoluteIndexedY, Read},
	{0xa1, Lda, IndexedIndirect, Read},
	{0xb1, Lda, IndirectIndexed, Read},
	{0xa2, Ldx, Immediate, Read},
	{0xa6, Ldx, ZeroPage, Read},
	{0xb6, Ldx, ZeroPageIndexedY, Read},
	{0xae, Ldx, Absolute, Read},
	{0xbe, Ldx, AbsoluteIndexedY, Read},
	{0xa0, Ldy, Immediate, Read},
	{0xa4, Ldy, ZeroPage, Read},
	{0xb4, Ldy, ZeroPageIndexedX, Read},
	{0xac, Ldy, Absolute, Read},
	{0xbc, Ldy, AbsoluteIndexedX, Read},

	// store
	{0x85, Sta, ZeroPage, Write},
	{0x95, Sta, ZeroPageIndexedX, Write},
	{0x8d, Sta, Absolute, Write},
	{0x9d, Sta, AbsoluteIndexedX, Write},
	{0x99, Sta, AbsoluteIndexedY, Write},
	{0x81, Sta, IndexedIndirect, Write},
	{0x91, Sta, IndirectIndexed, Write},
	{0x86, Stx, ZeroPage, Write},
	{0x96, Stx, ZeroPageIndexedY, Write},
	{0x8e, Stx, Absolute, Write},
	{0x84, Sty, ZeroPage, Write},
	{0x94, Sty, ZeroPageIndexedX, Write},
	{0x8c, Sty, Absolute, Write},

	// register transfer
	{0xaa, Tax, Implied, Read},
	{0xa8, Tay, Implied, Read},
	{0x8a, Txa, Implied, Read},
	{0x98, Tya, Implied, Read},

	// stack
	{0xba, Tsx, Implied, Read},
	{0x9a, Txs, Implied, Read},
	{0x48, Pha, Implied, Read},
	{0x08, Php, Implied, Read},
	{0x68, Pla, Implied, Read},
	{0x28, Plp, Implied, Read},

	// logic
	{0x29, And, Immediate, Read},
	{0x25, And, ZeroPage, Read},
	{0x35, And, ZeroPageIndexedX, Read},
	{0x2d, And, Absolute, Read},
	{0x3d, And, AbsoluteIndexedX, Read},
	{0x39, And, AbsoluteIndexedY, Read},
	{0x21, And, IndexedIndirect, Read},
	{0x31, And, IndirectIndexed, Read},
	{0x49, Eor, Immediate, Read},
	{0x45, Eor, ZeroPage, Read},
	{0x55, Eor, ZeroPageIndexedX, Read},
	{0x4d, Eor, Absolute, Read},
	{0x5d, Eor, AbsoluteIndexedX, Read},
	{0x59, Eor, AbsoluteIndexedY, Read},
	{0x41, Eor, IndexedIndirect, Read},
	{0x51, Eor, IndirectIndexed, Read},
	{0x09, Ora, Immediate, Read},
	{0x05, Ora, ZeroPage, Read},
	{0x15, Ora, ZeroPageIndexedX, Read},
	{0x0d, Ora, Absolute, Read},
	{0x1d, Ora, AbsoluteIndexedX, Read},
	{0x19, Ora, AbsoluteIndexedY, Read},
	{0x01, Ora, IndexedIndirect, Read},
	{0x11, Ora, IndirectIndexed, Read},
	{0x24, Bit, ZeroPage, Read},
	{0x2c, Bit, Absolute, Read},

	// increment and decrement
	{0xe6, Inc, ZeroPage, RMW},
	{0xf6, Inc, ZeroPageIndexedX, RMW},
	{0xee, Inc, Absolute, RMW},
	{0xfe, Inc, AbsoluteIndexedX, RMW},
	{0xe8, Inx, Implied, Read},
	{0xc8, Iny, Implied, Read},
	{0xc6, Dec, ZeroPage, RMW},
	{0xd6, Dec, ZeroPageIndexedX, RMW},
	{0xce, Dec, Absolute, RMW},
	{0xde, Dec, AbsoluteIndexedX, RMW},
	{0xca, Dex, Implied, Read},
	{0x88, Dey, Implied, Read},

	// shift and rotate
	{0x0a, Asl, Accumulator, Read},
	{0x06, Asl, ZeroPage, RMW},
	{0x16, Asl, ZeroPageIndexedX, RMW},
	{0x0e, Asl, Absolute, RMW},
	{0x1e, Asl, AbsoluteIndexedX, RMW},
	{0x4a, Lsr, Accumulator, Read},
	{0x46, Lsr, ZeroPage, RMW},
	{0x56, Lsr, ZeroPageIndexedX, RMW},
	{0x4e, Lsr, Absolute, RMW},
	{0x5e, Lsr, AbsoluteIndexedX, RMW},
	{0x2a, Rol, Accumulator, Read},
	{0x26, Rol, ZeroPage, RMW},
	{0x36, Rol, ZeroPageIndexedX, RMW},
	{0x2e, Rol, Absolute, RMW},
	{0x3e, Rol, AbsoluteIndexedX, RMW},
	{0x6a, Ror, Accumulator, Read},
	{0x66, Ror, ZeroPage, RMW},
	{0x76, Ror, ZeroPageIndexedX, RMW},
	{0x6e, Ror, Absolute, RMW},
	{0x7e, Ror, AbsoluteIndexedX, RMW},

	// jump
	{0x4c, Jmp, Absolute, Flow},
	{0x6c, Jmp, Indirect, Flow},
	{0x20, Jsr, Absolute, Subroutine},
	{0x60, Rts, Implied, Subroutine},

	// branch
	{0x90, Bcc, Relative, Flow},
	{0xb0, Bcs, Relative, Flow},
	{0xf0, Beq, Relative, Flow},
	{0xd0, Bne, Relative, Flow},
	{0x30, Bmi, Relative, Flow},
	{0x10, Bpl, Relative, Flow},
	{0x50, Bvc, Relative, Flow},
	{0x70, Bvs, Relative, Flow},

	// flag set and clear
	{0x38, Sec, Implied, Read},
	{0x78, Sei, Implied, Read},
	{0xf8, Sed, Implied, Read},
	{0x18, Clc, Implied, Read},
	{0x58, Cli, Implied, Read},
	{0xd8, Cld, Implied, Read},
	{0xb8, Clv, Implied, Read},

	// the real NOP, as opposed to the undecoded kind
	{0xea, Nop, Implied, Read},
}

func init() {
	for i := range Definitions {
		Definitions[i].OpCode = uint8(i)
	}
	for _, defn := range decoded {
		if Definitions[defn.OpCode].Decoded() {
			panic("instructions: duplicate opcode in decoded table")
		}
		Definitions[defn.OpCode] = defn
	}
}
