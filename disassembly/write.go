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

package disassembly

import (
	"fmt"
	"io"
	"strings"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	// include the instruction word
	ByteCode bool

	// include the entry notes
	Notes bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	for _, e := range dsm.entries {
		dsm.writeLine(output, attr, e)
	}
}

// WriteRange writes the entries from the start address up to but not including
// the end address to io.Writer.
func (dsm *Disassembly) WriteRange(output io.Writer, attr WriteAttr, start uint32, end uint32) {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	for _, e := range dsm.entries {
		if e.Address >= start && e.Address < end {
			dsm.writeLine(output, attr, e)
		}
	}
}

// WriteEntry writes a single entry to io.Writer.
func (dsm *Disassembly) WriteEntry(output io.Writer, attr WriteAttr, e *Entry) {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()
	dsm.writeLine(output, attr, e)
}

func (dsm *Disassembly) writeLine(output io.Writer, attr WriteAttr, e *Entry) {
	if e == nil {
		return
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%#08x ", e.Address))
	if attr.ByteCode {
		s.WriteString(fmt.Sprintf("%08x ", e.Word))
	}
	s.WriteString(fmt.Sprintf("%-7s %s", e.Operator, e.Operand))
	if attr.Notes && e.Notes != "" {
		s.WriteString(fmt.Sprintf(" ; %s", e.Notes))
	}

	io.WriteString(output, strings.TrimRight(s.String(), " "))
	io.WriteString(output, "\n")
}
