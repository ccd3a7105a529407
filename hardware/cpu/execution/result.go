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

// Package execution tracks the result of the most recent instruction. The
// Result type is filled in by the cpu package as an instruction is decoded
// and is the basis of all tracing and disassembly output.
package execution

import (
	"fmt"
	"strings"

	"github.com/mawbry/gophernes/hardware/cpu/instructions"
)

// Result records the state of an executed instruction.
type Result struct {
	// the address the opcode was read from
	Address uint16

	// a copy of the dispatch table entry for the opcode
	Defn instructions.Definition

	// the operand bytes, assembled little-endian. meaningless when the
	// definition says the instruction has no operand
	InstructionData uint16

	// number of bytes read during decoding, including the opcode
	ByteCount int

	// whether a branch instruction took its branch
	BranchSuccess bool

	// a note of any buggy hardware path triggered by the instruction
	Bug string

	// whether the instruction has completed. a Result with Final unset
	// describes an instruction that errored part way through decoding
	Final bool
}

// Reset the Result in preparation for a new instruction.
func (r *Result) Reset() {
	*r = Result{}
}

// String returns a one line disassembly of the result, suitable for tracing
// output.
func (r Result) String() string {
	s := strings.Builder{}

	s.WriteString(fmt.Sprintf("$%04x", r.Address))
	s.WriteString("\t")
	s.WriteString(r.Defn.Operator.String())

	var data string
	switch r.Defn.AddressingMode.Bytes() {
	case 1:
		data = fmt.Sprintf("$%02x", r.InstructionData)
	case 2:
		data = fmt.Sprintf("$%04x", r.InstructionData)
	}

	switch r.Defn.AddressingMode {
	case instructions.Invalid, instructions.Implied:
		data = ""
	case instructions.Accumulator:
		data = "A"
	case instructions.Immediate:
		data = fmt.Sprintf("#%s", data)
	case instructions.ZeroPage, instructions.Relative, instructions.Absolute:
		// data as-is
	case instructions.ZeroPageIndexedX, instructions.AbsoluteIndexedX:
		data = fmt.Sprintf("%s,X", data)
	case instructions.ZeroPageIndexedY, instructions.AbsoluteIndexedY:
		data = fmt.Sprintf("%s,Y", data)
	case instructions.Indirect:
		data = fmt.Sprintf("(%s)", data)
	case instructions.IndexedIndirect:
		data = fmt.Sprintf("(%s,X)", data)
	case instructions.IndirectIndexed:
		data = fmt.Sprintf("(%s),Y", data)
	}

	if data != "" {
		s.WriteString("\t")
		s.WriteString(data)
	}

	if r.Defn.IsBranch() && r.Final {
		if r.BranchSuccess {
			s.WriteString("\t[taken]")
		} else {
			s.WriteString("\t[not taken]")
		}
	}

	if r.Bug != "" {
		s.WriteString(fmt.Sprintf("\t* %s *", r.Bug))
	}

	return s.String()
}

// IsValid checks whether the Result contains consistent data. Used by tests
// to make sure the CPU implementation hasn't gone off the rails.
func (r Result) IsValid() error {
	if !r.Final {
		return fmt.Errorf("execution: not checking an unfinalised result")
	}

	if r.ByteCount != r.Defn.Bytes() {
		return fmt.Errorf("execution: byte count (%d) disagrees with definition (%s)", r.ByteCount, r.Defn)
	}

	if r.BranchSuccess && !r.Defn.IsBranch() {
		return fmt.Errorf("execution: branch success noted for a non-branch instruction (%s)", r.Defn)
	}

	return nil
}
