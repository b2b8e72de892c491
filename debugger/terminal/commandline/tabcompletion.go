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

package commandline

import (
	"strings"
)

// TabCompletion keeps track of the most recent tab completion attempt.
type TabCompletion struct {
	cmds *Commands

	matches []string
	match   int

	// the input that precedes the word being completed
	base string

	// the input string used to create the list of matches. the list is only
	// rebuilt when the input changes
	lastGuess string
}

// NewTabCompletion initialises a new TabCompletion instance. Completion
// works best when Commands has been sorted.
func NewTabCompletion(cmds *Commands) *TabCompletion {
	tc := &TabCompletion{cmds: cmds}
	tc.Reset()
	return tc
}

// Complete transforms the input such that the last word in the input is
// expanded to meet the closest match allowed by the template. Subsequent calls
// to Complete() without an intervening call to Reset() will cycle through the
// original available options.
func (tc *TabCompletion) Complete(input string) string {
	// cycle through the existing matches if the input is the same as the
	// previous completion
	if len(tc.matches) > 0 && input == tc.lastGuess {
		tc.match++
		if tc.match >= len(tc.matches) {
			tc.match = 0
		}
		tc.lastGuess = tc.base + tc.matches[tc.match] + " "
		return tc.lastGuess
	}

	tc.Reset()

	tokens := strings.Fields(input)
	partial := ""
	if len(tokens) > 0 && !strings.HasSuffix(input, " ") {
		partial = tokens[len(tokens)-1]
		tokens = tokens[:len(tokens)-1]
	}

	var candidates []string
	if len(tokens) == 0 {
		for _, c := range tc.cmds.cmds {
			candidates = append(candidates, c.Keyword)
		}
	} else {
		cmd, ok := tc.cmds.Index[strings.ToUpper(tokens[0])]
		if !ok {
			return input
		}
		arg := len(tokens) - 1
		if arg >= len(cmd.Options) || cmd.Options[arg] == nil {
			return input
		}
		candidates = cmd.Options[arg]
	}

	partial = strings.ToUpper(partial)
	for _, c := range candidates {
		if strings.HasPrefix(strings.ToUpper(c), partial) {
			tc.matches = append(tc.matches, c)
		}
	}

	if len(tc.matches) == 0 {
		return input
	}

	tc.base = prefix(input)
	tc.lastGuess = tc.base + tc.matches[0] + " "
	return tc.lastGuess
}

// the input without the word being completed
func prefix(input string) string {
	if strings.HasSuffix(input, " ") {
		return input
	}
	if i := strings.LastIndex(input, " "); i >= 0 {
		return input[:i+1]
	}
	return ""
}

// Reset is used to clear an outstanding completion session.
func (tc *TabCompletion) Reset() {
	tc.matches = tc.matches[:0]
	tc.match = 0
	tc.base = ""
	tc.lastGuess = ""
}
