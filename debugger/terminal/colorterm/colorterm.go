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

// Package colorterm is the interactive terminal for the debugger. Output is
// colored by style and input is edited in place with history and tab
// completion.
package colorterm

import (
	"bufio"
	"os"

	"github.com/jetsetilly/armv2/debugger/terminal"
	"github.com/jetsetilly/armv2/debugger/terminal/colorterm/easyterm"
)

// ColorTerminal drives an ANSI capable terminal through easyterm.
type ColorTerminal struct {
	easyterm.EasyTerm

	reader         *bufio.Reader
	commandHistory []command
	tabCompletion  terminal.TabCompletion

	silenced bool
}

// history entry
type command struct {
	input []byte
}

// Initialise takes control of stdin and stdout.
func (ct *ColorTerminal) Initialise() error {
	err := ct.EasyTerm.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	ct.commandHistory = ct.commandHistory[:0]
	ct.reader = bufio.NewReader(os.Stdin)

	return nil
}

// CleanUp returns stdin and stdout to the state they were found in.
func (ct *ColorTerminal) CleanUp() {
	ct.EasyTerm.TermPrint("\r")
	_ = ct.Flush()
	ct.EasyTerm.CleanUp()
}

func (ct *ColorTerminal) RegisterTabCompletion(tc terminal.TabCompletion) {
	ct.tabCompletion = tc
}

func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

func (ct *ColorTerminal) Silence(silenced bool) {
	ct.silenced = silenced
}
