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

// Package logger is the central log for the GopherNES application. There is
// only one log and it can be written to from anywhere with the package level
// Log() and Logf() functions.
//
// The hardware packages use it for diagnostics that are not errors in the
// sense of the Go error type: conditions that are worth recording but which
// must never halt emulation.
package logger

import (
	"fmt"
	"io"
)

// only allowing one central log for the entire application. there's no need
// to allow more than one.
var central *logger

// maximum number of entries in the central logger.
const maxCentral = 256

func init() {
	central = newLogger(maxCentral)
}

// Log adds an entry to the central logger.
func Log(tag, detail string) {
	central.log(tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(tag, detail string, args ...interface{}) {
	central.log(tag, fmt.Sprintf(detail, args...))
}

// Clear all entries from the central logger.
func Clear() {
	central.clear()
}

// Write contents of central logger to output.
func Write(output io.Writer) {
	central.write(output)
}

// Tail writes the last number of entries in the central logger to output.
func Tail(output io.Writer, number int) {
	central.tail(output, number)
}

// SetEcho to echo new entries to output as they arrive. A nil writer turns
// echoing off.
func SetEcho(output io.Writer) {
	central.echo = output
}
