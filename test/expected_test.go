// This file is part of Armv2.
//
// Armv2 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Armv2 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Armv2.  If not, see <https://www.gnu.org/licenses/>.

package test_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/armv2/test"
)

func TestExpectFailure(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
}

func TestExpectSuccess(t *testing.T) {
	test.ExpectSuccess(t, true)
	var err error
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
}

func TestExpectEquality(t *testing.T) {
	test.ExpectEquality(t, 10, 5+5)
	test.ExpectEquality(t, true, true)
	test.ExpectEquality(t, uint32(0xef000000), 0xef000000)
}

func TestExpectInequality(t *testing.T) {
	test.ExpectInequality(t, 11, 5+5)
	test.ExpectInequality(t, true, false)
}

func TestCappedWriter(t *testing.T) {
	w, err := test.NewCappedWriter(8)
	test.DemandSuccess(t, err)

	n, _ := w.Write([]byte("mov r0"))
	test.ExpectEquality(t, n, 6)
	n, _ = w.Write([]byte(", r1"))
	test.ExpectEquality(t, n, 2)
	test.ExpectEquality(t, w.String(), "mov r0, ")

	n, _ = w.Write([]byte("r2"))
	test.ExpectEquality(t, n, 0)

	w.Reset()
	test.ExpectEquality(t, w.String(), "")

	_, err = test.NewCappedWriter(0)
	test.ExpectFailure(t, err)
}

func TestCompareWriter(t *testing.T) {
	w := &test.CompareWriter{}
	w.Write([]byte("swi"))
	test.ExpectSuccess(t, w.Compare("swi"))
	w.Clear()
	test.ExpectSuccess(t, w.Compare(""))
}
