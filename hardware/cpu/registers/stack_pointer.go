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

package registers

import "fmt"

// StackBase is the top of the address page the stack lives in. The absolute
// address of the next free stack slot is the stack pointer ORed with this
// value. It is never added - a carry out of the low byte must not happen.
const StackBase = uint16(0x0100)

// StackPointer is the 8 bit stack pointer of the 6502. It holds the low byte
// of the address of the next free slot of the descending hardware stack.
type StackPointer struct {
	value uint8
}

// NewStackPointer creates a new stack pointer with an initial value.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{value: val}
}

// Label returns the canonical name of the stack pointer.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("SP=%#02x", sp.value)
}

// Value returns the current value of the stack pointer.
func (sp StackPointer) Value() uint8 {
	return sp.value
}

// Address returns the absolute address the stack pointer currently refers
// to. Always somewhere in page one.
func (sp StackPointer) Address() uint16 {
	return StackBase | uint16(sp.value)
}

// IsNegative checks the sign bit of the stack pointer. Required by the TSX
// instruction.
func (sp StackPointer) IsNegative() bool {
	return sp.value&0x80 == 0x80
}

// IsZero checks if the stack pointer is zero. Required by the TSX
// instruction.
func (sp StackPointer) IsZero() bool {
	return sp.value == 0
}

// Load value into the stack pointer.
func (sp *StackPointer) Load(val uint8) {
	sp.value = val
}

// Add a value to the stack pointer. Wraps modulo 256 with no underflow or
// overflow detection, exactly like the hardware. Pushing uses Add(0xff) and
// pulling uses Add(1).
func (sp *StackPointer) Add(val uint8) {
	sp.value += val
}
