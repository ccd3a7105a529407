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

import "fmt"

// ansi colour numbers.
const (
	red     = 1
	green   = 2
	yellow  = 3
	cyan    = 6
	white   = 7
)

const ansiOff = "\033[0m"

var pens map[int]string

func init() {
	pens = make(map[int]string)
	for _, c := range []int{red, green, yellow, cyan, white} {
		pens[c] = fmt.Sprintf("\033[3%d;1m", c)
	}
}
