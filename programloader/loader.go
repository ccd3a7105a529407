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

// Package programloader is used to load raw 6502 machine-code programs in
// preparation for attachment to the console. A program is nothing more than
// the bytes of the file placed into memory at the origin address, with the
// reset vector pointed at the origin.
package programloader

import (
	"fmt"
	"os"
)

// DefaultOrigin is the address a program is placed at when the caller
// doesn't specify one.
const DefaultOrigin = uint16(0x8000)

// vectorBase is the lowest address of the interrupt vector area. a program
// must not reach into it.
const vectorBase = 0xfffa

// Program is a raw machine-code program and the address it expects to be
// placed at.
type Program struct {
	Filename string
	Origin   uint16
	Data     []uint8
}

// NewLoader reads a program from a file. An origin of 0 selects
// DefaultOrigin.
func NewLoader(filename string, origin uint16) (Program, error) {
	if origin == 0 {
		origin = DefaultOrigin
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return Program{}, fmt.Errorf("loader: %w", err)
	}

	prog := Program{
		Filename: filename,
		Origin:   origin,
		Data:     data,
	}

	if err := prog.check(); err != nil {
		return Program{}, err
	}

	return prog, nil
}

// NewLoaderFromData creates a program from a byte slice. An origin of 0
// selects DefaultOrigin.
func NewLoaderFromData(data []uint8, origin uint16) (Program, error) {
	if origin == 0 {
		origin = DefaultOrigin
	}

	prog := Program{
		Origin: origin,
		Data:   data,
	}

	if err := prog.check(); err != nil {
		return Program{}, err
	}

	return prog, nil
}

func (prog Program) check() error {
	if len(prog.Data) == 0 {
		return fmt.Errorf("loader: program is empty")
	}
	if int(prog.Origin)+len(prog.Data) > vectorBase {
		return fmt.Errorf("loader: program of %d bytes does not fit at origin %#04x", len(prog.Data), prog.Origin)
	}
	return nil
}

func (prog Program) String() string {
	if prog.Filename == "" {
		return fmt.Sprintf("%d bytes at %#04x", len(prog.Data), prog.Origin)
	}
	return fmt.Sprintf("%s (%d bytes at %#04x)", prog.Filename, len(prog.Data), prog.Origin)
}
