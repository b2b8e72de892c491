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
	"strings"

	"github.com/jetsetilly/armv2/hardware/arm"
	"github.com/jetsetilly/armv2/hardware/arm/instructions"
)

// Entry is a single disassembled instruction word.
type Entry struct {
	// address of the instruction word
	Address uint32

	// the instruction word as found in memory
	Word uint32

	// the decoded instruction
	Instruction instructions.Instruction

	// the disassembly split into the operator and the operands
	Operator string
	Operand  string

	// annotation for the entry. for example, whether the word is a
	// breakpoint or an exception vector
	Notes string
}

func newEntry(address uint32, word uint32) *Entry {
	e := &Entry{
		Address:     address,
		Word:        word,
		Instruction: instructions.Decode(word),
	}

	s := e.Instruction.Disassemble(address)
	e.Operator, e.Operand, _ = strings.Cut(s, " ")

	var notes []string
	if address < vectorTableSize && address&0x03 == 0 {
		notes = append(notes, vectorNames[address>>2])
	}
	if swi, ok := e.Instruction.(instructions.SoftwareInterrupt); ok && swi.Comment == arm.SWIBreakpoint {
		notes = append(notes, "breakpoint")
	}
	e.Notes = strings.Join(notes, ", ")

	return e
}

func (e *Entry) String() string {
	s := fmt.Sprintf("%#08x %08x %-7s %s", e.Address, e.Word, e.Operator, e.Operand)
	if e.Notes != "" {
		s = fmt.Sprintf("%s ; %s", strings.TrimRight(s, " "), e.Notes)
	}
	return strings.TrimRight(s, " ")
}

const vectorTableSize = 0x20

var vectorNames = [vectorTableSize >> 2]string{
	"reset",
	"undefined instruction",
	"software interrupt",
	"prefetch abort",
	"data abort",
	"address exception",
	"irq",
	"fiq",
}
