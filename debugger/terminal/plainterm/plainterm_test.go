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

package plainterm_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/jetsetilly/armv2/debugger/terminal"
	"github.com/jetsetilly/armv2/debugger/terminal/plainterm"
	"github.com/jetsetilly/armv2/test"
)

func TestPlainTerminal(t *testing.T) {
	w := &test.CompareWriter{}
	pt := plainterm.NewPlainTerminal(strings.NewReader("step\nregs 10\n"), w)
	test.DemandSuccess(t, pt.Initialise())
	defer pt.CleanUp()

	test.ExpectFailure(t, pt.IsInteractive())

	s, err := pt.TermRead(terminal.Prompt{Content: "0x000100"})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "step")

	s, err = pt.TermRead(terminal.Prompt{})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "regs 10")

	_, err = pt.TermRead(terminal.Prompt{})
	test.ExpectSuccess(t, errors.Is(err, io.EOF))

	// the prompt is not printed because the input is not a real terminal
	test.ExpectEquality(t, w.String(), "")

	pt.TermPrintLine(terminal.StyleEcho, "echo")
	pt.TermPrintLine(terminal.StyleFeedback, "feedback")
	pt.TermPrintLine(terminal.StyleError, "error")
	test.ExpectEquality(t, w.String(), "feedback\n* error\n")

	w.Clear()
	pt.Silence(true)
	pt.TermPrintLine(terminal.StyleFeedback, "feedback")
	pt.TermPrintLine(terminal.StyleError, "error")
	test.ExpectEquality(t, w.String(), "* error\n")
}
