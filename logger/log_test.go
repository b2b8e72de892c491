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

package logger_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/armv2/logger"
	"github.com/jetsetilly/armv2/test"
)

func TestTail(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "ARM", "reset")
	log.Logf(logger.Allow, "memory", "%d pages", 4)
	log.Log(logger.Allow, "keyboard", "irq")

	log.Write(w)
	test.ExpectEquality(t, w.String(), "ARM: reset\nmemory: 4 pages\nkeyboard: irq\n")

	for _, c := range []struct {
		n        int
		expected string
	}{
		{n: 10, expected: "ARM: reset\nmemory: 4 pages\nkeyboard: irq\n"},
		{n: 3, expected: "ARM: reset\nmemory: 4 pages\nkeyboard: irq\n"},
		{n: 2, expected: "memory: 4 pages\nkeyboard: irq\n"},
		{n: 0, expected: ""},
	} {
		w.Reset()
		log.Tail(w, c.n)
		test.ExpectEquality(t, w.String(), c.expected, c.n)
	}
}

func TestRepeatsAndMaximum(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Log(logger.Allow, "ARM", "data abort")
	log.Log(logger.Allow, "ARM", "data abort")
	log.Log(logger.Allow, "ARM", "data abort")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "ARM: data abort (repeat x3)\n")
	test.ExpectEquality(t, log.Len(), 1)

	log.Log(logger.Allow, "ARM", "prefetch abort")
	log.Log(logger.Allow, "memory", "mapped")
	test.ExpectEquality(t, log.Len(), 2)

	w.Reset()
	log.Write(w)
	test.ExpectEquality(t, w.String(), "ARM: prefetch abort\nmemory: mapped\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.SetEcho(w)
	log.Log(logger.Allow, "tag", "echoed")
	test.ExpectEquality(t, w.String(), "tag: echoed\n")

	log.SetEcho(nil)
	log.Log(logger.Allow, "tag", "not echoed")
	test.ExpectEquality(t, w.String(), "tag: echoed\n")
}

type permission bool

func (p permission) AllowLogging() bool {
	return bool(p)
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(permission(false), "ARM", "denied")
	log.Log(permission(true), "ARM", "allowed")
	log.Log(logger.Deny, "ARM", "denied")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "ARM: allowed\n")

	log.Clear()
	test.ExpectEquality(t, log.Len(), 0)
}

func TestErrorLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	err := errors.New("test error")

	log.Log(logger.Allow, "tag", err)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: test error\n")

	log.Clear()
	w.Reset()

	log.Logf(logger.Allow, "tag", "wrapped: %v", err)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: wrapped: test error\n")
}

type mode struct{}

func (mode) String() string {
	return "SVC"
}

func TestStringerLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", mode{})
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: SVC\n")

	w.Reset()
	log.Clear()
	log.Log(logger.Allow, "tag", 100)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: 100\n")
}
