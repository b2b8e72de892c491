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

// Package commandline tokenises and validates debugger input against a
// command template. The same template drives tab completion through the
// TabCompletion type, which satisfies terminal.TabCompletion.
//
// A template lists the keywords, the argument description and the permitted
// number of arguments. Restricted arguments list their options:
//
//	template := []commandline.Command{
//		{Keyword: "REGS"},
//		{Keyword: "STEP", Args: "[n]", Max: 1},
//		{Keyword: "PIN", Args: "FIQ|IRQ ON|OFF", Min: 2, Max: 2,
//			Options: [][]string{{"FIQ", "IRQ"}, {"ON", "OFF"}}},
//	}
//
//	cmds, _ := commandline.ParseCommandTemplate(template)
//	err := cmds.ValidateTokens(commandline.TokeniseInput("pin irq on"))
//
// Validation ignores case. After validation the caller can read the tokens
// knowing the argument count is within range and restricted arguments hold
// a permitted value.
//
// Complete() extends partial input towards a valid command. Calling it again
// with the same input cycles through the remaining candidates. Reset() ends
// the completion session.
//
//	tbc := commandline.NewTabCompletion(cmds)
//	tbc.Complete("RE") // "REGS "
package commandline
