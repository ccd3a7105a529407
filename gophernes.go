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

package main

import (
	"fmt"
	"os"

	"github.com/mawbry/gophernes/disassembly"
	"github.com/mawbry/gophernes/hardware/nes"
	"github.com/mawbry/gophernes/logger"
	"github.com/mawbry/gophernes/modalflag"
	"github.com/mawbry/gophernes/monitor"
	"github.com/mawbry/gophernes/performance"
	"github.com/mawbry/gophernes/programloader"
	"github.com/mawbry/gophernes/statsview"
	"github.com/mawbry/gophernes/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "DISASM", "MONITOR", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "DISASM":
		err = disasm(md)
	case "MONITOR":
		err = monitorProgram(md)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		fmt.Printf("%s %s\n", version.ApplicationName, version.Version)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md.String(), err)
		os.Exit(20)
	}
}

// loadProgram loads the single program file left in the arguments after
// flag parsing.
func loadProgram(md *modalflag.Modes, origin uint) (programloader.Program, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return programloader.Program{}, fmt.Errorf("no program file specified")
	case 1:
		return programloader.NewLoader(md.GetArg(0), uint16(origin))
	default:
		return programloader.Program{}, fmt.Errorf("too many arguments for %s mode", md)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	steps := md.AddInt("steps", -1, "number of instructions to execute (-1 means no limit)")
	trace := md.AddBool("trace", false, "print every instruction as it executes")
	origin := md.AddUint("origin", uint(programloader.DefaultOrigin), "address to load the program at")
	log := md.AddBool("log", false, "echo the log to stderr")
	stats := md.AddBool("statsview", false, "run the stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("* statsview not available in this build")
		}
	}

	prog, err := loadProgram(md, *origin)
	if err != nil {
		return err
	}

	con := nes.NewConsole()
	if err := con.AttachProgram(prog); err != nil {
		return err
	}

	for i := 0; *steps < 0 || i < *steps; i++ {
		if err := con.Step(); err != nil {
			return err
		}
		if *trace {
			fmt.Println(con.CPU.LastResult.String())
		}
	}

	fmt.Println(con.String())

	return nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	origin := md.AddUint("origin", uint(programloader.DefaultOrigin), "address to load the program at")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prog, err := loadProgram(md, *origin)
	if err != nil {
		return err
	}

	return disassembly.Write(os.Stdout, prog)
}

func monitorProgram(md *modalflag.Modes) error {
	md.NewMode()

	origin := md.AddUint("origin", uint(programloader.DefaultOrigin), "address to load the program at")
	log := md.AddBool("log", false, "echo the log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	prog, err := loadProgram(md, *origin)
	if err != nil {
		return err
	}

	con := nes.NewConsole()
	if err := con.AttachProgram(prog); err != nil {
		return err
	}

	mon, err := monitor.NewMonitor(con)
	if err != nil {
		return err
	}

	return mon.Run()
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	origin := md.AddUint("origin", uint(programloader.DefaultOrigin), "address to load the program at")
	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "", "write a CPU profile to the named file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prog, err := loadProgram(md, *origin)
	if err != nil {
		return err
	}

	return performance.Check(os.Stdout, prog, *duration, *profile)
}
