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

	"github.com/jetsetilly/armv2/curated"
)

// Validate input string against command template.
func (cmds Commands) Validate(input string) error {
	return cmds.ValidateTokens(TokeniseInput(input))
}

// ValidateTokens like Validate, but works on tokens rather than an input
// string. The tokens are reset before and after validation.
func (cmds Commands) ValidateTokens(tokens *Tokens) error {
	tokens.Reset()
	defer tokens.Reset()

	kw, ok := tokens.Get()
	if !ok {
		return nil
	}

	cmd, ok := cmds.Index[strings.ToUpper(kw)]
	if !ok {
		return curated.Errorf("%s is not a debugging command", kw)
	}

	n := tokens.Remaining()
	if n < cmd.Min {
		return curated.Errorf("%s: not enough arguments (usage: %s)", cmd.Keyword, cmd.usage())
	}
	if cmd.Max >= 0 && n > cmd.Max {
		return curated.Errorf("%s: too many arguments (usage: %s)", cmd.Keyword, cmd.usage())
	}

	for i := 0; i < len(cmd.Options); i++ {
		arg, ok := tokens.Get()
		if !ok {
			break
		}
		if cmd.Options[i] == nil {
			continue
		}
		if !matchOption(cmd.Options[i], arg) {
			return curated.Errorf("%s: unrecognised argument (%s)", cmd.Keyword, arg)
		}
	}

	return nil
}

func matchOption(options []string, arg string) bool {
	for _, o := range options {
		if strings.EqualFold(o, arg) {
			return true
		}
	}
	return false
}
