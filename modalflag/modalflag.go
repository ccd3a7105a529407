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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes). A program mode is a special command line argument that
// switches the program into a different mode of operation, each mode with
// its own set of flags.
//
// The basic pattern is: NewArgs() with the command line arguments, flag
// definitions and AddSubModes() for the top level, Parse(), then NewMode()
// and another Parse() for every sub-mode descended into.
package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"
)

const modeSeparator = "/"

// Modes provides a modal reading of command line arguments. The Output
// field should be specified before calling Parse() or help messages will go
// nowhere.
type Modes struct {
	// where to print help messages. defaults to no output at all
	Output io.Writer

	// the underlying flagset. recreated on every call to NewArgs() and
	// NewMode()
	flags *flag.FlagSet

	// the argument list given to NewArgs() and how far into it successive
	// calls to Parse() have travelled
	args    []string
	argsIdx int

	// sub-modes valid for the next call to Parse(). the first entry is the
	// default
	subModes []string

	// the series of modes encountered over every call to Parse()
	path []string

	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the last mode encountered during parsing.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every mode encountered during parsing, separated by slashes.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs initialises the Modes struct with a list of arguments, usually
// the command line.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.NewMode()
}

// NewMode indicates that further arguments belong to a new mode, with a
// fresh set of flags and sub-modes.
func (md *Modes) NewMode() {
	md.subModes = []string{}
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.additionalHelp = ""
}

// AdditionalHelp adds text to be displayed after the flag summary.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// continue with command line processing. if sub-modes were specified
	// then the Mode() function says which one was selected
	ParseContinue ParseResult = iota

	// help was requested and has been printed
	ParseHelp

	// an error occurred and is returned as the second return value
	ParseError
)

// Parse the next layer of arguments.
func (md *Modes) Parse() (ParseResult, error) {
	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if err == flag.ErrHelp {
			hw.help(md.Output, md.Path(), md.subModes, md.additionalHelp)
			return ParseHelp, nil
		}
		return ParseError, err
	}

	if len(md.subModes) > 0 {
		arg := strings.ToUpper(md.flags.Arg(0))

		// assume the default sub-mode until the argument matches a listed
		// one
		mode := md.subModes[0]
		for i := range md.subModes {
			if md.subModes[i] == arg {
				mode = arg
				md.argsIdx++
				break // for loop
			}
		}

		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

// RemainingArgs returns the arguments left over after a call to Parse() ie.
// arguments that aren't flags or a listed sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the numbered argument that isn't a flag or listed
// sub-mode.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// AddSubModes for the next call to Parse(). The first sub-mode in the list
// is the default. Sub-mode comparison is case insensitive.
func (md *Modes) AddSubModes(submodes ...string) {
	md.subModes = append(md.subModes, submodes...)
	for i := range md.subModes {
		md.subModes[i] = strings.ToUpper(md.subModes[i])
	}
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddDuration flag for next call to Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddUint flag for next call to Parse().
func (md *Modes) AddUint(name string, value uint, usage string) *uint {
	return md.flags.Uint(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// helpWriter buffers the output of the flag package so that it can be
// reshaped into a modal help message.
type helpWriter struct {
	buffer []byte
}

func (hw *helpWriter) Write(p []byte) (n int, err error) {
	hw.buffer = append(hw.buffer, p...)
	return len(p), nil
}

func (hw *helpWriter) help(output io.Writer, banner string, subModes []string, additionalHelp string) {
	if output == nil {
		return
	}

	s := string(hw.buffer)
	helpLines := strings.Split(s, "\n")

	if s == "Usage:\n" && len(subModes) == 0 {
		if banner != "" {
			fmt.Fprintf(output, "No help available for %s\n", banner)
		} else {
			fmt.Fprintf(output, "No help available\n")
		}
		return
	}

	if banner != "" {
		fmt.Fprintf(output, "%s for %s mode\n", helpLines[0], banner)
	} else {
		fmt.Fprintf(output, "%s\n", helpLines[0])
	}

	if len(helpLines) > 1 {
		output.Write([]byte(strings.Join(helpLines[1:], "\n")))
	}

	if len(subModes) > 0 {
		if len(helpLines) > 2 {
			output.Write([]byte("\n"))
		}
		fmt.Fprintf(output, "  available sub-modes: %s\n", strings.Join(subModes, ", "))
		fmt.Fprintf(output, "    default: %s\n", subModes[0])
	}

	if additionalHelp != "" {
		fmt.Fprintf(output, "\n%s\n", additionalHelp)
	}
}
