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

// Register is an 8 bit register. Used for the accumulator and the X and Y
// index registers.
type Register struct {
	label string
	value uint8
}

// NewRegister creates a new 8 bit register with an initial value and a label.
func NewRegister(val uint8, label string) Register {
	return Register{value: val, label: label}
}

// Label returns the canonical name of the register.
func (r Register) Label() string {
	return r.label
}

func (r Register) String() string {
	return fmt.Sprintf("%s=%#02x", r.label, r.value)
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// Address returns the current value of the register as a uint16. Useful when
// the register value is being used in an address context, as in zero page
// addressing.
func (r Register) Address() uint16 {
	return uint16(r.value)
}

// IsNegative checks the sign bit of the register.
func (r Register) IsNegative() bool {
	return r.value&0x80 == 0x80
}

// IsZero checks if the register is zero.
func (r Register) IsZero() bool {
	return r.value == 0
}

// IsBitV returns the state of bit 6. The BIT instruction moves this bit of
// its operand into the overflow flag.
func (r Register) IsBitV() bool {
	return r.value&0x40 == 0x40
}

// Load value into register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// Add value to register. The carry argument and the returned carry and
// overflow states are not needed by any of the instructions currently in the
// instruction set but the full adder means the arithmetic family can be
// slotted in without changing this type.
func (r *Register) Add(val uint8, carry bool) (rcarry bool, overflow bool) {
	v := r.value

	r.value += val
	if carry {
		r.value++
	}

	// overflow detection from Ken Shirriff's blog: "The 6502 overflow flag
	// explained mathematically"
	overflow = ((v ^ r.value) & (val ^ r.value) & 0x80) != 0

	// carry detection
	if v == r.value {
		rcarry = carry
	} else {
		rcarry = r.value < v
	}

	return rcarry, overflow
}

// Subtract value from register. Returns carry and overflow states.
func (r *Register) Subtract(val uint8, carry bool) (bool, bool) {
	return r.Add(^val, carry)
}

// AND value with register.
func (r *Register) AND(val uint8) {
	r.value &= val
}

// ORA (non-exclusive or) value with register.
func (r *Register) ORA(val uint8) {
	r.value |= val
}

// EOR (exclusive or) value with register.
func (r *Register) EOR(val uint8) {
	r.value ^= val
}

// ASL (arithmetic shift left) shifts the register one bit to the left.
// Returns the most significant bit as it was before the shift.
func (r *Register) ASL() bool {
	carry := r.IsNegative()
	r.value <<= 1
	return carry
}

// LSR (logical shift right) shifts the register one bit to the right.
// Returns the least significant bit as it was before the shift.
func (r *Register) LSR() bool {
	carry := r.value&1 == 1
	r.value >>= 1
	return carry
}

// ROL rotates the register one bit to the left, feeding the carry argument
// into the vacated bit. Returns the new carry state.
func (r *Register) ROL(carry bool) bool {
	rcarry := r.IsNegative()
	r.value <<= 1
	if carry {
		r.value |= 0x01
	}
	return rcarry
}

// ROR rotates the register one bit to the right, feeding the carry argument
// into the vacated bit. Returns the new carry state.
func (r *Register) ROR(carry bool) bool {
	rcarry := r.value&1 == 1
	r.value >>= 1
	if carry {
		r.value |= 0x80
	}
	return rcarry
}
