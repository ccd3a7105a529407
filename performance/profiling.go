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

package performance

import (
	"fmt"
	"os"
	"runtime/pprof"
)

// cpuProfile runs the run function, writing a CPU profile of the run to
// outFile. An empty outFile runs the function without profiling.
func cpuProfile(outFile string, run func() error) error {
	if outFile == "" {
		return run()
	}

	f, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("profiling: %w", err)
	}
	defer f.Close()

	err = pprof.StartCPUProfile(f)
	if err != nil {
		return fmt.Errorf("profiling: %w", err)
	}
	defer pprof.StopCPUProfile()

	return run()
}
