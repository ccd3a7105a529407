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

// Package monitor is an interactive, single-key console for inspecting a
// running emulation. The terminal is put into cbreak mode so that commands
// take effect without waiting for a return key.
package monitor

import (
	"fmt"
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/mawbry/gophernes/disassembly"
	"github.com/mawbry/gophernes/hardware/cpu/registers"
	"github.com/mawbry/gophernes/hardware/nes"
	"github.com/mawbry/gophernes/programloader"
)

// the file the object graph dump is written to.
const memvizFile = "monitor.dot"

// Monitor is an interactive inspector attached to a console.
type Monitor struct {
	con  *nes.Console
	term terminal

	input  *os.File
	output *os.File
}

// NewMonitor attaches a monitor to a console. The monitor takes over stdin
// and stdout until Run() returns.
func NewMonitor(con *nes.Console) (*Monitor, error) {
	mon := &Monitor{
		con:    con,
		input:  os.Stdin,
		output: os.Stdout,
	}

	if err := mon.term.initialise(mon.input, mon.output); err != nil {
		return nil, fmt.Errorf("monitor: %w", err)
	}

	return mon, nil
}

// Run the monitor command loop until the quit command or an input error.
func (mon *Monitor) Run() error {
	mon.term.cbreakMode()
	defer mon.term.canonicalMode()

	mon.printHelp()

	buf := make([]byte, 1)
	for {
		mon.term.print("%s(monitor)%s ", pens[cyan], ansiOff)

		if _, err := mon.input.Read(buf); err != nil {
			return fmt.Errorf("monitor: %w", err)
		}

		// echo the command. cbreak mode has turned echo off
		mon.term.print("%c\n", buf[0])

		switch buf[0] {
		case 's':
			if err := mon.con.Step(); err != nil {
				return fmt.Errorf("monitor: %w", err)
			}
			mon.term.print("%s\n", mon.con.CPU.LastResult.String())

		case 'r':
			mon.writeRegisters(mon.output)

		case 'k':
			mon.writeStack(mon.output)

		case 'p':
			if err := mon.peek(); err != nil {
				mon.term.print("%s%v%s\n", pens[red], err, ansiOff)
			}

		case 'd':
			mon.term.print("%s\n", mon.nextInstruction().String())

		case 'g':
			if err := mon.dumpObjectGraph(); err != nil {
				mon.term.print("%s%v%s\n", pens[red], err, ansiOff)
			} else {
				mon.term.print("object graph written to %s\n", memvizFile)
			}

		case 'q':
			return nil

		case 'h', '?':
			mon.printHelp()

		case '\n', '\r', ' ':
			// ignore

		default:
			mon.term.print("unknown command '%c' ('h' for help)\n", buf[0])
		}
	}
}

func (mon *Monitor) printHelp() {
	mon.term.print("s step   r registers   k stack   p peek   d disasm   g object graph   q quit\n")
}

// writeRegisters prints every CPU register, one per line.
func (mon *Monitor) writeRegisters(w io.Writer) {
	mc := mon.con.CPU
	fmt.Fprintf(w, "%s%s%s\n", pens[green], mc.PC, ansiOff)
	fmt.Fprintf(w, "%s%s%s\n", pens[green], mc.A, ansiOff)
	fmt.Fprintf(w, "%s%s%s\n", pens[green], mc.X, ansiOff)
	fmt.Fprintf(w, "%s%s%s\n", pens[green], mc.Y, ansiOff)
	fmt.Fprintf(w, "%s%s%s\n", pens[green], mc.SP, ansiOff)
	fmt.Fprintf(w, "%s%s=%s%s\n", pens[green], mc.Status.Label(), mc.Status, ansiOff)
}

// writeStack prints the in-use part of the stack, top of stack first.
func (mon *Monitor) writeStack(w io.Writer) {
	top := registers.StackBase | 0x00ff
	sp := mon.con.CPU.SP.Address()

	if sp >= top {
		fmt.Fprintf(w, "stack is empty\n")
		return
	}

	for addr := sp + 1; addr <= top; addr++ {
		fmt.Fprintf(w, "$%04x: $%02x\n", addr, mon.con.Mem.Read(addr))
	}
}

// peek asks for an address and prints the byte stored there. input happens
// in canonical mode so that the address can be line edited.
func (mon *Monitor) peek() error {
	mon.term.canonicalMode()
	defer mon.term.cbreakMode()

	mon.term.print("address: $")

	var address uint16
	if _, err := fmt.Fscanf(mon.input, "%x\n", &address); err != nil {
		return fmt.Errorf("peek: %w", err)
	}

	mon.term.print("$%04x: $%02x\n", address, mon.con.Mem.Read(address))

	return nil
}

// nextInstruction disassembles the instruction at the current PC without
// executing it.
func (mon *Monitor) nextInstruction() disassembly.Entry {
	pc := mon.con.CPU.PC.Address()

	// three bytes is enough for any instruction
	data := make([]uint8, 3)
	for i := range data {
		data[i] = mon.con.Mem.Read(pc + uint16(i))
	}

	return disassembly.FromProgram(programloader.Program{Origin: pc, Data: data})[0]
}

// dumpObjectGraph writes a graphviz description of the CPU object graph.
// the console's memory arrays are left out, they would swamp the graph.
func (mon *Monitor) dumpObjectGraph() error {
	f, err := os.Create(memvizFile)
	if err != nil {
		return fmt.Errorf("object graph: %w", err)
	}
	defer f.Close()

	memviz.Map(f, mon.con.CPU)

	return nil
}
