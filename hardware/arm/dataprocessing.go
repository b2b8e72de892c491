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

package arm

import (
	"github.com/jetsetilly/armv2/hardware/arm/alu"
	"github.com/jetsetilly/armv2/hardware/arm/exceptions"
	"github.com/jetsetilly/armv2/hardware/arm/instructions"
	"github.com/jetsetilly/armv2/hardware/arm/registers"
)

// operand2 returns the output of the barrel shifter for a data processing
// instruction, along with the shifter's carry out.
func (arm *ARM) operand2(ins instructions.DataProcessing) (uint32, bool) {
	carry := arm.regs.Flag(registers.FlagC)

	if ins.Immediate {
		return alu.Immediate(ins.Value, ins.Rotate, carry)
	}

	// the entire R15 is used when the PC is the register being shifted
	rm := arm.regs.Get(ins.Rm)

	if !ins.ShiftByRegister {
		return alu.Shift(ins.Shift, rm, ins.ShiftAmount, carry, true)
	}

	// only the bottom byte of the shift register is used. the PC is read
	// with an additional offset of eight
	var amount uint32
	if ins.Rs == registers.PC {
		amount = arm.regs.PC() + 8
	} else {
		amount = arm.regs.Get(ins.Rs)
	}

	return alu.Shift(ins.Shift, rm, amount&0xff, carry, false)
}

func (arm *ARM) dataProcessing(ins instructions.DataProcessing) exceptions.Exception {
	op2, shifterCarry := arm.operand2(ins)

	// the PSR bits are not included when the PC is the first operand
	var rn uint32
	if ins.Rn == registers.PC {
		rn = arm.regs.PC()
	} else {
		rn = arm.regs.Get(ins.Rn)
	}

	res := alu.Operate(ins.Operation, rn, op2, shifterCarry,
		arm.regs.Flag(registers.FlagC), arm.regs.Flag(registers.FlagV))

	if ins.Operation.Comparison() {
		if !ins.SetFlags {
			return exceptions.None
		}

		// TSTP, TEQP, CMPP and CMNP write the result into the PSR
		if ins.Rd == registers.PC {
			arm.writePSR(res.Value)
			return exceptions.None
		}

		arm.regs.SetNZCV(res.Negative(), res.Zero(), res.Carry, res.Overflow)
		return exceptions.None
	}

	if ins.Rd == registers.PC {
		arm.writeR15(res.Value, ins.SetFlags)
		return exceptions.None
	}

	arm.regs.Set(ins.Rd, res.Value)
	if ins.SetFlags {
		arm.regs.SetNZCV(res.Negative(), res.Zero(), res.Carry, res.Overflow)
	}

	return exceptions.None
}
