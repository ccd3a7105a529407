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

// Package instructions defines every opcode of the 6502 that GopherNES
// implements. The Definitions table is total: all 256 opcode values map to a
// Definition, with opcodes outside the implemented set marked as undecoded.
// The CPU package treats undecoded opcodes as a no-op.
package instructions

import "fmt"

// AddressingMode describes the method by which an instruction locates the
// data it operates on.
//
// The zero value is Invalid. It is the sentinel the CPU resets its
// addressing context to before every fetch; a resolver call that sees it is
// a programming error, not an emulation state.
type AddressingMode int

// List of supported addressing modes.
const (
	Invalid AddressingMode = iota
	Implied
	Accumulator
	Immediate
	ZeroPage
	ZeroPageIndexedX
	ZeroPageIndexedY // only used by LDX and STX
	Relative         // only used by branch instructions
	Absolute
	AbsoluteIndexedX
	AbsoluteIndexedY
	Indirect        // only used by JMP
	IndexedIndirect // (ind,X)
	IndirectIndexed // (ind),Y
)

func (m AddressingMode) String() string {
	switch m {
	case Invalid:
		return "Invalid"
	case Implied:
		return "Implied"
	case Accumulator:
		return "Accumulator"
	case Immediate:
		return "Immediate"
	case ZeroPage:
		return "ZeroPage"
	case ZeroPageIndexedX:
		return "ZeroPage,X"
	case ZeroPageIndexedY:
		return "ZeroPage,Y"
	case Relative:
		return "Relative"
	case Absolute:
		return "Absolute"
	case AbsoluteIndexedX:
		return "Absolute,X"
	case AbsoluteIndexedY:
		return "Absolute,Y"
	case Indirect:
		return "Indirect"
	case IndexedIndirect:
		return "(Indirect,X)"
	case IndirectIndexed:
		return "(Indirect),Y"
	}
	return "unknown addressing mode"
}

// Bytes returns the number of instruction-stream bytes the mode consumes,
// not counting the opcode itself.
func (m AddressingMode) Bytes() int {
	switch m {
	case Implied, Accumulator:
		return 0
	case Immediate, ZeroPage, ZeroPageIndexedX, ZeroPageIndexedY,
		Relative, IndexedIndirect, IndirectIndexed:
		return 1
	case Absolute, AbsoluteIndexedX, AbsoluteIndexedY, Indirect:
		return 2
	}
	return 0
}

// Operator identifies the operation an instruction performs, independently
// of its addressing mode.
//
// The zero value is Undecoded, meaning the opcode has no assigned operation.
type Operator int

// List of operators, grouped by instruction family.
const (
	Undecoded Operator = iota

	Nop

	// load and store
	Lda
	Ldx
	Ldy
	Sta
	Stx
	Sty

	// register transfer
	Tax
	Tay
	Txa
	Tya

	// stack
	Tsx
	Txs
	Pha
	Php
	Pla
	Plp

	// logic
	And
	Eor
	Ora
	Bit

	// increment and decrement
	Inc
	Inx
	Iny
	Dec
	Dex
	Dey

	// shift and rotate
	Asl
	Lsr
	Rol
	Ror

	// jump
	Jmp
	Jsr
	Rts

	// branch
	Bcc
	Bcs
	Beq
	Bne
	Bmi
	Bpl
	Bvc
	Bvs

	// flag set and clear
	Sec
	Sei
	Sed
	Clc
	Cli
	Cld
	Clv
)

// mnemonics for the String() function. must be kept in step with the
// Operator constants.
var mnemonics = []string{
	"???",
	"NOP",
	"LDA", "LDX", "LDY", "STA", "STX", "STY",
	"TAX", "TAY", "TXA", "TYA",
	"TSX", "TXS", "PHA", "PHP", "PLA", "PLP",
	"AND", "EOR", "ORA", "BIT",
	"INC", "INX", "INY", "DEC", "DEX", "DEY",
	"ASL", "LSR", "ROL", "ROR",
	"JMP", "JSR", "RTS",
	"BCC", "BCS", "BEQ", "BNE", "BMI", "BPL", "BVC", "BVS",
	"SEC", "SEI", "SED", "CLC", "CLI", "CLD", "CLV",
}

func (op Operator) String() string {
	if int(op) >= len(mnemonics) {
		return "???"
	}
	return mnemonics[op]
}

// EffectCategory categorises an instruction by the effect it has.
type EffectCategory int

// List of effect categories.
const (
	Read EffectCategory = iota
	Write
	RMW
	Flow
	Subroutine
)

// Definition describes one opcode of the instruction set.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	AddressingMode AddressingMode
	Effect         EffectCategory
}

// Decoded returns false if the opcode has no assigned operation.
func (defn Definition) Decoded() bool {
	return defn.Operator != Undecoded
}

// Bytes returns the total number of bytes the instruction occupies,
// including the opcode.
func (defn Definition) Bytes() int {
	if !defn.Decoded() {
		return 1
	}
	return 1 + defn.AddressingMode.Bytes()
}

// IsBranch returns true if the instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if !defn.Decoded() {
		return fmt.Sprintf("%02x undecoded", defn.OpCode)
	}
	return fmt.Sprintf("%02x %s %s +%dbytes", defn.OpCode, defn.Operator, defn.AddressingMode, defn.Bytes())
}
