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

package logger_test

import (
	"strings"
	"testing"

	"github.com/mawbry/gophernes/logger"
	"github.com/mawbry/gophernes/test"
)

func TestLog(t *testing.T) {
	logger.Clear()

	logger.Log("test", "this is a test")
	logger.Logf("test", "this is test %d", 2)

	s := &strings.Builder{}
	logger.Write(s)
	test.Equate(t, s.String(), "test: this is a test\ntest: this is test 2\n")
}

func TestRepeatFolding(t *testing.T) {
	logger.Clear()

	// the same entry logged many times folds into one line with a repeat
	// count
	for i := 0; i < 3; i++ {
		logger.Log("cpu", "same detail")
	}

	s := &strings.Builder{}
	logger.Write(s)
	test.Equate(t, s.String(), "cpu: same detail (repeat x3)\n")
}

func TestTail(t *testing.T) {
	logger.Clear()

	logger.Log("test", "one")
	logger.Log("test", "two")
	logger.Log("test", "three")

	s := &strings.Builder{}
	logger.Tail(s, 2)
	test.Equate(t, s.String(), "test: two\ntest: three\n")
}

func TestEcho(t *testing.T) {
	logger.Clear()

	s := &strings.Builder{}
	logger.SetEcho(s)
	defer logger.SetEcho(nil)

	logger.Log("test", "echoed")
	test.Equate(t, s.String(), "test: echoed\n")
}
