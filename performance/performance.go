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

// Package performance measures how quickly the emulation runs a program.
// The console is stepped flat out for a wall-clock duration and the
// instruction rate is reported. An optional CPU profile of the run can be
// written for further study.
package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/mawbry/gophernes/hardware/nes"
	"github.com/mawbry/gophernes/programloader"
)

// sentinel error returned by the measurement loop.
var timedOut = errors.New("performance: timed out")

// number of instructions between checks of the timer channel. checking the
// channel is expensive relative to an instruction step
const performanceBrake = 10000

// Check the performance of the emulation using the supplied program.
//
// The program runs for the specified duration. A CPU profile is written to
// profileFile when it is not empty.
func Check(output io.Writer, prog programloader.Program, duration string, profileFile string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	con := nes.NewConsole()
	if err := con.AttachProgram(prog); err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	numInstructions := 0

	runner := func() error {
		timerChan := make(chan bool)
		time.AfterFunc(dur, func() {
			timerChan <- true
		})

		brake := 0
		for {
			if err := con.Step(); err != nil {
				return err
			}
			numInstructions++

			brake++
			if brake >= performanceBrake {
				brake = 0
				select {
				case <-timerChan:
					return timedOut
				default:
				}
			}
		}
	}

	err = cpuProfile(profileFile, runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	ips := float64(numInstructions) / dur.Seconds()
	fmt.Fprintf(output, "%.0f instructions per second (%d instructions in %s)\n", ips, numInstructions, dur)

	return nil
}
