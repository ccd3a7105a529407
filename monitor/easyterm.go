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

package monitor

import (
	"fmt"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// terminal is a thin wrapper for "github.com/pkg/term/termios". it wraps
// the termios methods in functions with friendlier names and keeps hold of
// the attribute sets for the terminal modes the monitor switches between.
type terminal struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios
}

// initialise the fields in the terminal struct.
func (pt *terminal) initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return fmt.Errorf("terminal requires an input file")
	}
	if outputFile == nil {
		return fmt.Errorf("terminal requires an output file")
	}

	pt.input = inputFile
	pt.output = outputFile

	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)

	return nil
}

// canonicalMode puts terminal into normal, everyday canonical mode.
func (pt *terminal) canonicalMode() {
	termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.canAttr)
}

// cbreakMode puts terminal into cbreak mode. input is available byte by
// byte and echo is off.
func (pt *terminal) cbreakMode() {
	termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.cbreakAttr)
}

// print writes the formatted string to the output file.
func (pt *terminal) print(s string, a ...interface{}) {
	pt.output.WriteString(fmt.Sprintf(s, a...))
	pt.output.Sync()
}
