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

package terminal

// Input is the source of debugger commands.
type Input interface {
	// TermRead returns the next line of input, without the newline. An io.EOF
	// error indicates that there will be no more input.
	TermRead(prompt Prompt) (string, error)

	// IsInteractive is false when input is read from a file or a pipe.
	IsInteractive() bool
}

// Curated error patterns that TermRead() may return.
const (
	UserInterrupt = "user interrupt"
	UserAbort     = "user abort"
)

// Output receives debugger output one line at a time.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal is the complete interface used by the debugger.
type Terminal interface {
	Input
	Output

	// Initialise and CleanUp bracket a debugging session.
	Initialise() error
	CleanUp()

	// Implementations without line editing can ignore the tab completion.
	RegisterTabCompletion(TabCompletion)

	// A silenced terminal still prints StyleError lines.
	Silence(silenced bool)
}

// TabCompletion is implemented by commandline.TabCompletion.
type TabCompletion interface {
	Complete(input string) string
	Reset()
}
