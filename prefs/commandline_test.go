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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/armv2/prefs"
	"github.com/jetsetilly/armv2/test"
)

func TestCommandLinePairs(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack(" arm.memorySize ::  0x8000 ")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "arm.memorySize::0x8000")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	// unused pairs are returned in key order
	prefs.PushCommandLineStack("debugger.echoLog::true;arm.memorySize::0x8000")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "arm.memorySize::0x8000; debugger.echoLog::true")

	// malformed pairs are dropped
	prefs.PushCommandLineStack("arm.memorySize;debugger.echoLog::a::b;arm.logSize::50")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "arm.logSize::50")
}

func TestCommandLineUse(t *testing.T) {
	prefs.PushCommandLineStack("arm.logSize::50;debugger.colorTerminal::false")

	ok, v := prefs.GetCommandLinePref("arm.logSize")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, prefs.Value("50"))

	// a value can only be taken once
	ok, _ = prefs.GetCommandLinePref("arm.logSize")
	test.ExpectFailure(t, ok)

	ok, _ = prefs.GetCommandLinePref("arm.memorySize")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "debugger.colorTerminal::false")
}

func TestCommandLineGroups(t *testing.T) {
	prefs.PushCommandLineStack("arm.logSize::50")
	prefs.PushCommandLineStack("arm.memorySize::0x8000")

	// only the top group is visible
	ok, _ := prefs.GetCommandLinePref("arm.logSize")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "arm.memorySize::0x8000")

	ok, _ = prefs.GetCommandLinePref("arm.logSize")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}
