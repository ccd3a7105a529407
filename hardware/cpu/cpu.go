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

package cpu

import (
	"fmt"

	"github.com/mawbry/gophernes/hardware/cpu/execution"
	"github.com/mawbry/gophernes/hardware/cpu/instructions"
	"github.com/mawbry/gophernes/hardware/cpu/registers"
	"github.com/mawbry/gophernes/hardware/memory/cpubus"
	"github.com/mawbry/gophernes/logger"
)

// CPU implements the 6502 found in the NES. Register logic is implemented by
// the types in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// read-modify-write instructions work on memory through this scratch
	// register
	acc8 registers.Register

	mem cpubus.Memory

	// last result. reset at the start of every Step()
	LastResult execution.Result

	// undecoded opcodes that have already been logged. each opcode value is
	// logged at most once per CPU
	reported [256]bool
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// The CPU is in an undefined state until Reset() is called.
func NewCPU(mem cpubus.Memory) *CPU {
	return &CPU{
		mem:    mem,
		PC:     registers.NewProgramCounter(0),
		A:      registers.NewRegister(0, "A"),
		X:      registers.NewRegister(0, "X"),
		Y:      registers.NewRegister(0, "Y"),
		SP:     registers.NewStackPointer(0),
		Status: registers.NewStatusRegister(),
		acc8:   registers.NewRegister(0, "accumulator"),
	}
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb a new memory bus into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s %s %s %s %s %s=%s",
		mc.PC, mc.A, mc.X, mc.Y, mc.SP,
		mc.Status.Label(), mc.Status)
}

// Reset puts the registers into their power-on state: accumulator, index
// registers and status flags all zero, stack pointer at the bottom of the
// descending stack, and the PC loaded from the reset vector.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xff)
	mc.Status.Reset()
	mc.LoadPCIndirect(cpubus.Reset)
}

// LoadPCIndirect loads the PC with the 16 bit value stored little-endian at
// indirectAddress.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) {
	lo := mc.mem.Read(indirectAddress)
	hi := mc.mem.Read(indirectAddress + 1)
	mc.PC.Load((uint16(hi) << 8) | uint16(lo))
}

// LoadPC loads the PC with directAddress.
func (mc *CPU) LoadPC(directAddress uint16) {
	mc.PC.Load(directAddress)
}

// next8Bit reads the next byte of the instruction stream, advancing the PC
// and noting the byte in LastResult.
func (mc *CPU) next8Bit() uint8 {
	v := mc.mem.Read(mc.PC.Address())
	mc.PC.Add(1)
	mc.LastResult.InstructionData = uint16(v)
	mc.LastResult.ByteCount++
	return v
}

// next16Bit reads the next two bytes of the instruction stream as a
// little-endian word, advancing the PC and noting the word in LastResult.
func (mc *CPU) next16Bit() uint16 {
	lo := mc.mem.Read(mc.PC.Address())
	mc.PC.Add(1)
	hi := mc.mem.Read(mc.PC.Address())
	mc.PC.Add(1)
	v := (uint16(hi) << 8) | uint16(lo)
	mc.LastResult.InstructionData = v
	mc.LastResult.ByteCount += 2
	return v
}

// read16Bit reads a little-endian word from ptr, reproducing the indirect
// addressing bug of the hardware: when ptr sits at the very end of a page
// the high byte is read from the start of that same page, not from the next
// page.
func (mc *CPU) read16Bit(ptr uint16) uint16 {
	lo := mc.mem.Read(ptr)

	var hi uint8
	if ptr&0x00ff == 0x00ff {
		hi = mc.mem.Read(ptr & 0xff00)
		mc.LastResult.Bug = fmt.Sprintf("indirect addressing bug (%#04x)", ptr)
	} else {
		hi = mc.mem.Read(ptr + 1)
	}

	return (uint16(hi) << 8) | uint16(lo)
}

// read16BitZeroPage reads a little-endian word from the zero page. the
// address of the high byte wraps around inside the zero page.
func (mc *CPU) read16BitZeroPage(ptr uint8) uint16 {
	lo := mc.mem.Read(uint16(ptr))
	hi := mc.mem.Read(uint16(ptr + 1))
	return (uint16(hi) << 8) | uint16(lo)
}

// push8Bit pushes a value onto the stack and moves the stack pointer down.
func (mc *CPU) push8Bit(v uint8) {
	mc.mem.Write(mc.SP.Address(), v)
	mc.SP.Add(0xff)
}

// pull8Bit moves the stack pointer up and returns the value it then points
// at.
func (mc *CPU) pull8Bit() uint8 {
	mc.SP.Add(1)
	return mc.mem.Read(mc.SP.Address())
}

// resolved is the output of the addressing resolver for one instruction.
// every instruction handler receives its operand through a value of this
// type rather than replaying the addressing mode itself, so an instruction
// can never consume operand bytes twice.
type resolved struct {
	// the effective address of the operand. only meaningful when hasAddress
	// is true; immediate, accumulator and implied operands have no address
	address    uint16
	hasAddress bool

	// the operand value. filled in for instructions that read their operand
	value uint8
}

// resolve consumes the operand bytes of the instruction described by defn
// and produces the effective address and, for reading instructions, the
// operand value.
func (mc *CPU) resolve(defn instructions.Definition) resolved {
	var res resolved

	switch defn.AddressingMode {
	case instructions.Implied:
		// no operand

	case instructions.Accumulator:
		res.value = mc.A.Value()

	case instructions.Immediate:
		res.value = mc.next8Bit()

	case instructions.ZeroPage:
		res.address = uint16(mc.next8Bit())
		res.hasAddress = true

	case instructions.ZeroPageIndexedX:
		// index addition wraps around inside the zero page
		res.address = uint16(mc.next8Bit() + mc.X.Value())
		res.hasAddress = true

	case instructions.ZeroPageIndexedY:
		res.address = uint16(mc.next8Bit() + mc.Y.Value())
		res.hasAddress = true

	case instructions.Relative:
		// the branch target is relative to the PC as it stands after the
		// offset byte has been consumed
		offset := mc.next8Bit()
		res.address = mc.PC.Address() + uint16(offset)
		if offset&0x80 == 0x80 {
			res.address -= 0x0100
		}
		res.hasAddress = true

	case instructions.Absolute:
		res.address = mc.next16Bit()
		res.hasAddress = true

	case instructions.AbsoluteIndexedX:
		res.address = mc.next16Bit() + mc.X.Address()
		res.hasAddress = true

	case instructions.AbsoluteIndexedY:
		res.address = mc.next16Bit() + mc.Y.Address()
		res.hasAddress = true

	case instructions.Indirect:
		res.address = mc.read16Bit(mc.next16Bit())
		res.hasAddress = true

	case instructions.IndexedIndirect:
		res.address = mc.read16BitZeroPage(mc.next8Bit() + mc.X.Value())
		res.hasAddress = true

	case instructions.IndirectIndexed:
		res.address = mc.read16BitZeroPage(mc.next8Bit()) + mc.Y.Address()
		res.hasAddress = true

	default:
		// the dispatch table is total and undecoded opcodes return before
		// the resolver, so this is a programming error. report it and
		// answer with a zero result
		logger.Logf("cpu", "resolver called with addressing mode %s (opcode %#02x)", defn.AddressingMode, defn.OpCode)
		return resolved{}
	}

	// reading instructions receive the operand value up front. writing
	// instructions only need the address and flow instructions load the
	// address into the PC
	if res.hasAddress && (defn.Effect == instructions.Read || defn.Effect == instructions.RMW) {
		res.value = mc.mem.Read(res.address)
	}

	return res
}

// branch loads the resolved branch target into the PC and notes the taken
// branch in LastResult.
func (mc *CPU) branch(res resolved) {
	mc.PC.Load(res.address)
	mc.LastResult.BranchSuccess = true
}

// Step executes the instruction at the current PC. The PC always advances by
// at least one byte, even for opcodes with no assigned operation, which are
// executed as a one byte no-op.
//
// An error indicates an internal inconsistency in the emulation, never a
// condition of the emulated machine.
func (mc *CPU) Step() error {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	opcode := mc.mem.Read(mc.PC.Address())
	mc.PC.Add(1)

	defn := instructions.Definitions[opcode]
	mc.LastResult.Defn = defn
	mc.LastResult.ByteCount = 1

	if !defn.Decoded() {
		if !mc.reported[opcode] {
			mc.reported[opcode] = true
			logger.Logf("cpu", "undecoded opcode %#02x at %#04x executed as a no-op", opcode, mc.LastResult.Address)
		}
		mc.LastResult.Final = true
		return nil
	}

	res := mc.resolve(defn)

	switch defn.Operator {
	case instructions.Nop:
		// does nothing

	case instructions.Lda:
		mc.A.Load(res.value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Ldx:
		mc.X.Load(res.value)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Ldy:
		mc.Y.Load(res.value)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Sta:
		mc.mem.Write(res.address, mc.A.Value())

	case instructions.Stx:
		mc.mem.Write(res.address, mc.X.Value())

	case instructions.Sty:
		mc.mem.Write(res.address, mc.Y.Value())

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Txs:
		// does not affect the status register
		mc.SP.Load(mc.X.Value())

	case instructions.Pha:
		mc.push8Bit(mc.A.Value())

	case instructions.Php:
		mc.push8Bit(mc.Status.Value())

	case instructions.Pla:
		mc.A.Load(mc.pull8Bit())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Plp:
		// every flag is overwritten, including the unused bit
		mc.Status.FromValue(mc.pull8Bit())

	case instructions.And:
		mc.A.AND(res.value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Eor:
		mc.A.EOR(res.value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Ora:
		mc.A.ORA(res.value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Bit:
		mc.acc8.Load(res.value)
		mc.Status.Sign = mc.acc8.IsNegative()
		mc.Status.Overflow = mc.acc8.IsBitV()
		mc.acc8.AND(mc.A.Value())
		mc.Status.Zero = mc.acc8.IsZero()

	case instructions.Inc:
		mc.acc8.Load(res.value)
		mc.acc8.Add(1, false)
		mc.Status.Zero = mc.acc8.IsZero()
		mc.Status.Sign = mc.acc8.IsNegative()
		mc.mem.Write(res.address, mc.acc8.Value())

	case instructions.Inx:
		mc.X.Add(1, false)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Iny:
		mc.Y.Add(1, false)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Dec:
		mc.acc8.Load(res.value)
		mc.acc8.Add(0xff, false)
		mc.Status.Zero = mc.acc8.IsZero()
		mc.Status.Sign = mc.acc8.IsNegative()
		mc.mem.Write(res.address, mc.acc8.Value())

	case instructions.Dex:
		mc.X.Add(0xff, false)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Dey:
		mc.Y.Add(0xff, false)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	// the shift and rotate family does not update the zero flag

	case instructions.Asl:
		if res.hasAddress {
			mc.acc8.Load(res.value)
			mc.Status.Carry = mc.acc8.ASL()
			mc.Status.Sign = mc.acc8.IsNegative()
			mc.mem.Write(res.address, mc.acc8.Value())
		} else {
			mc.Status.Carry = mc.A.ASL()
			mc.Status.Sign = mc.A.IsNegative()
		}

	case instructions.Lsr:
		if res.hasAddress {
			mc.acc8.Load(res.value)
			mc.Status.Carry = mc.acc8.LSR()
			mc.Status.Sign = mc.acc8.IsNegative()
			mc.mem.Write(res.address, mc.acc8.Value())
		} else {
			mc.Status.Carry = mc.A.LSR()
			mc.Status.Sign = mc.A.IsNegative()
		}

	case instructions.Rol:
		if res.hasAddress {
			mc.acc8.Load(res.value)
			mc.Status.Carry = mc.acc8.ROL(mc.Status.Carry)
			mc.Status.Sign = mc.acc8.IsNegative()
			mc.mem.Write(res.address, mc.acc8.Value())
		} else {
			mc.Status.Carry = mc.A.ROL(mc.Status.Carry)
			mc.Status.Sign = mc.A.IsNegative()
		}

	case instructions.Ror:
		if res.hasAddress {
			mc.acc8.Load(res.value)
			mc.Status.Carry = mc.acc8.ROR(mc.Status.Carry)
			mc.Status.Sign = mc.acc8.IsNegative()
			mc.mem.Write(res.address, mc.acc8.Value())
		} else {
			mc.Status.Carry = mc.A.ROR(mc.Status.Carry)
			mc.Status.Sign = mc.A.IsNegative()
		}

	case instructions.Jmp:
		mc.PC.Load(res.address)

	case instructions.Jsr:
		// the return address is the address of the instruction that
		// follows the JSR. high byte is pushed first so that the address
		// is stored little-endian in the descending stack
		ret := mc.PC.Address()
		mc.push8Bit(uint8(ret >> 8))
		mc.push8Bit(uint8(ret & 0x00ff))
		mc.PC.Load(res.address)

	case instructions.Rts:
		lo := mc.pull8Bit()
		hi := mc.pull8Bit()
		mc.PC.Load((uint16(hi) << 8) | uint16(lo))

	case instructions.Bcc:
		if !mc.Status.Carry {
			mc.branch(res)
		}

	case instructions.Bcs:
		if mc.Status.Carry {
			mc.branch(res)
		}

	case instructions.Beq:
		if mc.Status.Zero {
			mc.branch(res)
		}

	case instructions.Bne:
		if !mc.Status.Zero {
			mc.branch(res)
		}

	case instructions.Bmi:
		if mc.Status.Sign {
			mc.branch(res)
		}

	case instructions.Bpl:
		if !mc.Status.Sign {
			mc.branch(res)
		}

	case instructions.Bvc:
		if !mc.Status.Overflow {
			mc.branch(res)
		}

	case instructions.Bvs:
		if mc.Status.Overflow {
			mc.branch(res)
		}

	case instructions.Sec:
		mc.Status.Carry = true

	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Sed:
		mc.Status.DecimalMode = true

	case instructions.Clc:
		mc.Status.Carry = false

	case instructions.Cli:
		mc.Status.InterruptDisable = false

	case instructions.Cld:
		mc.Status.DecimalMode = false

	case instructions.Clv:
		mc.Status.Overflow = false

	default:
		return fmt.Errorf("cpu: unimplemented operator (%s)", defn.Operator)
	}

	mc.LastResult.Final = true

	return nil
}
