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

package alu

// Opcode of a data processing instruction.
type Opcode int

// List of valid Opcode values. The values are the same as the encoding in
// bits 21 to 24 of a data processing instruction.
const (
	AND Opcode = iota
	EOR
	SUB
	RSB
	ADD
	ADC
	SBC
	RSC
	TST
	TEQ
	CMP
	CMN
	ORR
	MOV
	BIC
	MVN
)

var opcodeMnemonics = [...]string{
	"and", "eor", "sub", "rsb", "add", "adc", "sbc", "rsc",
	"tst", "teq", "cmp", "cmn", "orr", "mov", "bic", "mvn",
}

func (op Opcode) String() string {
	if op < 0 || int(op) >= len(opcodeMnemonics) {
		return "???"
	}
	return opcodeMnemonics[op]
}

// Comparison returns true for the opcodes that only set flags.
func (op Opcode) Comparison() bool {
	return op >= TST && op <= CMN
}

// Logical returns true for the opcodes that take the carry flag from the
// barrel shifter.
func (op Opcode) Logical() bool {
	switch op {
	case AND, EOR, TST, TEQ, ORR, MOV, BIC, MVN:
		return true
	}
	return false
}

// Unary returns true for the opcodes that do not use the first operand.
func (op Opcode) Unary() bool {
	return op == MOV || op == MVN
}

// Result of a data processing operation. The Carry and Overflow fields are
// the values the flags should take if the instruction sets flags.
type Result struct {
	Value    uint32
	Carry    bool
	Overflow bool
}

// Negative returns the state of the N flag for the result.
func (r Result) Negative() bool {
	return r.Value&0x80000000 == 0x80000000
}

// Zero returns the state of the Z flag for the result.
func (r Result) Zero() bool {
	return r.Value == 0
}

// AddWithCarry returns the 32bit result of a 33bit addition, along with the
// carry out and the signed overflow.
func AddWithCarry(a uint32, b uint32, carry bool) (uint32, bool, bool) {
	var c uint64
	if carry {
		c = 1
	}
	r := uint64(a) + uint64(b) + c
	result := uint32(r)

	// overflow happens when both operands have the same sign and the result
	// has a different sign
	overflow := (^(a ^ b) & (a ^ result) & 0x80000000) != 0

	return result, r > 0xffffffff, overflow
}

// Operate performs the data processing operation. The first operand is the
// value of Rn and the second operand is the output of the barrel shifter.
//
// The carry and overflow arguments are the current values of the C and V
// flags. The shifterCarry argument is the carry out of the barrel shifter.
func Operate(op Opcode, rn uint32, op2 uint32, shifterCarry bool, carry bool, overflow bool) Result {
	r := Result{Carry: shifterCarry, Overflow: overflow}

	switch op {
	case AND, TST:
		r.Value = rn & op2
	case EOR, TEQ:
		r.Value = rn ^ op2
	case ORR:
		r.Value = rn | op2
	case MOV:
		r.Value = op2
	case BIC:
		r.Value = rn &^ op2
	case MVN:
		r.Value = ^op2

	// subtraction is addition of the inverted operand with the carry set. a
	// carry out means there was no borrow
	case SUB, CMP:
		r.Value, r.Carry, r.Overflow = AddWithCarry(rn, ^op2, true)
	case RSB:
		r.Value, r.Carry, r.Overflow = AddWithCarry(op2, ^rn, true)
	case ADD, CMN:
		r.Value, r.Carry, r.Overflow = AddWithCarry(rn, op2, false)
	case ADC:
		r.Value, r.Carry, r.Overflow = AddWithCarry(rn, op2, carry)
	case SBC:
		r.Value, r.Carry, r.Overflow = AddWithCarry(rn, ^op2, carry)
	case RSC:
		r.Value, r.Carry, r.Overflow = AddWithCarry(op2, ^rn, carry)
	}

	return r
}
