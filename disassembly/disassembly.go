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

// Package disassembly turns a machine-code program into instruction entries
// without executing it. The pass is linear: every byte is assumed to be
// reachable as an opcode, so data bytes embedded in the program will show up
// as (possibly undecoded) instructions.
package disassembly

import (
	"fmt"
	"io"

	"github.com/mawbry/gophernes/hardware/cpu/instructions"
	"github.com/mawbry/gophernes/programloader"
)

// Entry is one disassembled instruction.
type Entry struct {
	Address uint16
	Defn    instructions.Definition

	// the operand bytes assembled little-endian. zero when the instruction
	// has no operand or when the program ended before the operand
	Operand uint16

	// whether the program ended before the full operand could be read
	Truncated bool
}

func (e Entry) String() string {
	if !e.Defn.Decoded() {
		return fmt.Sprintf("$%04x\t.byte $%02x", e.Address, e.Defn.OpCode)
	}

	var operand string
	switch e.Defn.AddressingMode.Bytes() {
	case 1:
		operand = fmt.Sprintf("$%02x", e.Operand)
	case 2:
		operand = fmt.Sprintf("$%04x", e.Operand)
	}

	switch e.Defn.AddressingMode {
	case instructions.Implied:
		// no operand
	case instructions.Accumulator:
		operand = "A"
	case instructions.Immediate:
		operand = fmt.Sprintf("#%s", operand)
	case instructions.ZeroPageIndexedX, instructions.AbsoluteIndexedX:
		operand = fmt.Sprintf("%s,X", operand)
	case instructions.ZeroPageIndexedY, instructions.AbsoluteIndexedY:
		operand = fmt.Sprintf("%s,Y", operand)
	case instructions.Indirect:
		operand = fmt.Sprintf("(%s)", operand)
	case instructions.IndexedIndirect:
		operand = fmt.Sprintf("(%s,X)", operand)
	case instructions.IndirectIndexed:
		operand = fmt.Sprintf("(%s),Y", operand)
	}

	if e.Truncated {
		operand = "???"
	}

	if operand == "" {
		return fmt.Sprintf("$%04x\t%s", e.Address, e.Defn.Operator)
	}

	return fmt.Sprintf("$%04x\t%s\t%s", e.Address, e.Defn.Operator, operand)
}

// FromProgram disassembles a program linearly from its origin.
func FromProgram(prog programloader.Program) []Entry {
	entries := make([]Entry, 0, len(prog.Data))

	i := 0
	for i < len(prog.Data) {
		e := Entry{
			Address: prog.Origin + uint16(i),
			Defn:    instructions.Definitions[prog.Data[i]],
		}
		i++

		n := e.Defn.Bytes() - 1
		for o := 0; o < n; o++ {
			if i >= len(prog.Data) {
				e.Truncated = true
				break
			}
			e.Operand |= uint16(prog.Data[i]) << (8 * o)
			i++
		}

		entries = append(entries, e)
	}

	return entries
}

// Write the disassembly of a program, one entry per line.
func Write(w io.Writer, prog programloader.Program) error {
	for _, e := range FromProgram(prog) {
		if _, err := fmt.Fprintln(w, e.String()); err != nil {
			return fmt.Errorf("disassembly: %w", err)
		}
	}
	return nil
}
