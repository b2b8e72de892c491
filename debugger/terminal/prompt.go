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

import (
	"fmt"
	"strings"
)

// Prompt is shown by TermRead() while waiting for input.
type Prompt struct {
	// usually the PC and processor mode
	Content string

	// the processor is stopped at a breakpoint
	Breakpoint bool
}

// String is the undecorated form of the prompt, suitable for terminals that
// can't draw in color.
func (p Prompt) String() string {
	c := strings.TrimSpace(p.Content)
	if p.Breakpoint {
		c = fmt.Sprintf("%s *", c)
	}
	return fmt.Sprintf("%s > ", c)
}
