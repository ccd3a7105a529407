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

package programloader_test

import (
	"testing"

	"github.com/mawbry/gophernes/programloader"
	"github.com/mawbry/gophernes/test"
)

func TestLoaderFromData(t *testing.T) {
	prog, err := programloader.NewLoaderFromData([]uint8{0xa9, 0x01}, 0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, prog.Origin, programloader.DefaultOrigin)
	test.Equate(t, len(prog.Data), 2)

	prog, err = programloader.NewLoaderFromData([]uint8{0xea}, 0x0200)
	test.ExpectedSuccess(t, err)
	test.Equate(t, prog.Origin, 0x0200)
}

func TestLoaderRejectsBadPrograms(t *testing.T) {
	// an empty program
	_, err := programloader.NewLoaderFromData(nil, 0)
	test.ExpectedFailure(t, err)

	// a program that runs into the vector area
	_, err = programloader.NewLoaderFromData(make([]uint8, 16), 0xfff0)
	test.ExpectedFailure(t, err)

	// a file that doesn't exist
	_, err = programloader.NewLoader("no-such-program.bin", 0)
	test.ExpectedFailure(t, err)
}
