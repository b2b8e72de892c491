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

package colorterm

import (
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/jetsetilly/armv2/curated"
	"github.com/jetsetilly/armv2/debugger/terminal"
	"github.com/jetsetilly/armv2/debugger/terminal/colorterm/ansi"
	"github.com/jetsetilly/armv2/debugger/terminal/colorterm/easyterm"
)

const maxInputLength = 256

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	if ct.silenced {
		return "", nil
	}

	ct.EasyTerm.CBreakMode()
	defer ct.EasyTerm.CanonicalMode()

	// the input buffer and the cursor position within it
	input := make([]byte, 0, maxInputLength)
	cursor := 0

	// index into the command history. a value equal to the length of the
	// history means that the history is not being browsed
	history := len(ct.commandHistory)

	// the input line as it was before history browsing began
	var liveInput []byte

	redraw := func() {
		ct.EasyTerm.TermPrint(ansi.ClearLine)
		ct.EasyTerm.TermPrint("\r")
		if prompt.Breakpoint {
			ct.EasyTerm.TermPrint(ansi.Pens["red"])
		} else {
			ct.EasyTerm.TermPrint(ansi.PenStyles["bold"])
		}
		ct.EasyTerm.TermPrint(prompt.String())
		ct.EasyTerm.TermPrint(ansi.NormalPen)
		ct.EasyTerm.TermPrint(string(input))
		ct.EasyTerm.TermPrint(ansi.CursorMove(cursor - len(input)))
	}

	replace := func(s []byte) {
		input = append(input[:0], s...)
		cursor = len(input)
	}

	redraw()

	for {
		r, _, err := ct.reader.ReadRune()
		if err != nil {
			if err == io.EOF {
				return "", io.EOF
			}
			return "", curated.Errorf("colorterm: %v", err)
		}

		if r != easyterm.KeyTab && ct.tabCompletion != nil {
			ct.tabCompletion.Reset()
		}

		switch r {
		case easyterm.KeyInterrupt:
			ct.EasyTerm.TermPrint("\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyEndOfFile:
			if len(input) == 0 {
				ct.EasyTerm.TermPrint("\n")
				return "", curated.Errorf(terminal.UserAbort)
			}

		case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			ct.EasyTerm.TermPrint("\n")
			s := string(input)
			if len(input) > 0 {
				l := len(ct.commandHistory)
				if l == 0 || string(ct.commandHistory[l-1].input) != s {
					ct.commandHistory = append(ct.commandHistory, command{input: append([]byte{}, input...)})
				}
			}
			return s, nil

		case easyterm.KeyTab:
			if ct.tabCompletion != nil {
				replace([]byte(ct.tabCompletion.Complete(string(input[:cursor]))))
				redraw()
			}

		case easyterm.KeyBackspace, easyterm.KeyDelete:
			if cursor > 0 {
				copy(input[cursor-1:], input[cursor:])
				input = input[:len(input)-1]
				cursor--
				redraw()
			}

		case easyterm.KeyEsc:
			err := ct.escape(&input, &cursor, &history, &liveInput)
			if err != nil {
				return "", err
			}
			redraw()

		default:
			if !unicode.IsPrint(r) || len(input) >= maxInputLength {
				continue
			}
			b := make([]byte, utf8.RuneLen(r))
			utf8.EncodeRune(b, r)
			input = append(input[:cursor], append(b, input[cursor:]...)...)
			cursor += len(b)
			redraw()
		}
	}
}

// escape handles the sequence following the escape key.
func (ct *ColorTerminal) escape(input *[]byte, cursor *int, history *int, liveInput *[]byte) error {
	r, _, err := ct.reader.ReadRune()
	if err != nil {
		return curated.Errorf("colorterm: %v", err)
	}

	switch r {
	case easyterm.EscCursor:
		r, _, err = ct.reader.ReadRune()
		if err != nil {
			return curated.Errorf("colorterm: %v", err)
		}

		switch r {
		case easyterm.CursorUp:
			if *history > 0 {
				if *history == len(ct.commandHistory) {
					*liveInput = append([]byte{}, *input...)
				}
				*history--
				*input = append((*input)[:0], ct.commandHistory[*history].input...)
				*cursor = len(*input)
			}

		case easyterm.CursorDown:
			if *history < len(ct.commandHistory) {
				*history++
				if *history == len(ct.commandHistory) {
					*input = append((*input)[:0], *liveInput...)
				} else {
					*input = append((*input)[:0], ct.commandHistory[*history].input...)
				}
				*cursor = len(*input)
			}

		case easyterm.CursorForward:
			if *cursor < len(*input) {
				*cursor++
			}

		case easyterm.CursorBackward:
			if *cursor > 0 {
				*cursor--
			}

		case easyterm.EscHome:
			*cursor = 0

		case easyterm.EscEnd:
			*cursor = len(*input)

		case easyterm.EscDelete:
			// delete key sends a trailing tilde
			_, _, _ = ct.reader.ReadRune()
			if *cursor < len(*input) {
				*input = append((*input)[:*cursor], (*input)[*cursor+1:]...)
			}

		default:
			return nil
		}

	default:
		// unrecognised sequences are dropped
		ct.EasyTerm.TermPrint("\a")
	}

	return nil
}
