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

package instructions

import (
	"github.com/jetsetilly/armv2/hardware/arm/alu"
)

// Instruction is a decoded instruction. The set of types implementing the
// interface is closed. Every type is listed in the Decode() function.
type Instruction interface {
	// the condition under which the instruction executes
	Cond() Condition

	// the encoded instruction word
	Opcode() uint32

	// disassembly of the instruction. the address is used for instructions
	// that refer to memory relative to the program counter
	Disassemble(addr uint32) string

	sealed()
}

type base struct {
	Word uint32
}

func (b base) Cond() Condition {
	return Condition(b.Word >> 28)
}

func (b base) Opcode() uint32 {
	return b.Word
}

func (b base) sealed() {}

// DataProcessing is one of the sixteen ALU operations.
type DataProcessing struct {
	base
	Operation alu.Opcode
	SetFlags  bool
	Rn        int
	Rd        int

	// operand 2 is an eight bit value rotated right by twice Rotate
	Immediate bool
	Value     uint32
	Rotate    uint32

	// operand 2 is Rm shifted by either an immediate amount or by the value
	// in Rs
	Rm              int
	Shift           alu.ShiftType
	ShiftByRegister bool
	ShiftAmount     uint32
	Rs              int
}

// Multiply is the MUL and MLA instruction.
type Multiply struct {
	base
	Accumulate bool
	SetFlags   bool
	Rd         int
	Rn         int
	Rs         int
	Rm         int
}

// Swap is the SWP instruction.
type Swap struct {
	base
	Byte bool
	Rn   int
	Rd   int
	Rm   int
}

// SingleTransfer is the LDR and STR instruction.
type SingleTransfer struct {
	base
	Pre       bool
	Up        bool
	Byte      bool
	Writeback bool
	Load      bool
	Rn        int
	Rd        int

	// offset is either a twelve bit immediate value or Rm shifted by an
	// immediate amount
	RegisterOffset bool
	Offset         uint32
	Rm             int
	Shift          alu.ShiftType
	ShiftAmount    uint32
}

// BlockTransfer is the LDM and STM instruction.
type BlockTransfer struct {
	base
	Pre       bool
	Up        bool
	PSR       bool
	Writeback bool
	Load      bool
	Rn        int
	List      uint16
}

// Count returns the number of registers in the register list.
func (ins BlockTransfer) Count() uint32 {
	var n uint32
	for l := ins.List; l != 0; l &= l - 1 {
		n++
	}
	return n
}

// Branch is the B and BL instruction.
type Branch struct {
	base
	Link bool

	// sign extended offset in bytes. the offset is relative to the address
	// of the branch instruction plus eight
	Offset int32
}

// Target returns the destination of the branch for a branch instruction at
// the address.
func (ins Branch) Target(addr uint32) uint32 {
	return uint32(int64(addr) + 8 + int64(ins.Offset))
}

// SoftwareInterrupt is the SWI instruction.
type SoftwareInterrupt struct {
	base
	Comment uint32
}

// CoprocessorDataTransfer is the LDC and STC instruction.
type CoprocessorDataTransfer struct {
	base
	Pre       bool
	Up        bool
	Long      bool
	Writeback bool
	Load      bool
	Rn        int
	CRd       int
	CPNum     int
	Offset    uint32
}

// CoprocessorDataOperation is the CDP instruction.
type CoprocessorDataOperation struct {
	base
	Operation uint32
	CRn       int
	CRd       int
	CPNum     int
	Aux       uint32
	CRm       int
}

// CoprocessorRegisterTransfer is the MRC and MCR instruction. A Load is a
// transfer from the coprocessor to the processor register (MRC).
type CoprocessorRegisterTransfer struct {
	base
	Operation uint32
	Load      bool
	CRn       int
	Rd        int
	CPNum     int
	Aux       uint32
	CRm       int
}

// Undefined is an instruction word that doesn't correspond to a valid
// instruction.
type Undefined struct {
	base
}
