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
	"github.com/jetsetilly/armv2/curated"
	"github.com/jetsetilly/armv2/hardware/arm/coprocessor"
	"github.com/jetsetilly/armv2/hardware/arm/exceptions"
	"github.com/jetsetilly/armv2/hardware/arm/instructions"
	"github.com/jetsetilly/armv2/hardware/status"
	"github.com/jetsetilly/armv2/logger"
)

// coprocessor instructions never cause an exception. problems are reported
// through the log and execution continues with the next instruction

// returns the coprocessor for the number. a nil return value means that an
// error has been logged
func (arm *ARM) attached(number int, word uint32) coprocessor.Coprocessor {
	cp := arm.coprocessors[number]
	if cp == nil {
		arm.log.Log(logger.Allow, "ARM", curated.Errorf("arm: %v: no coprocessor %d (%08x at %#08x)",
			status.UnknownOpcode, number, word, arm.pc))
	}
	return cp
}

// bounds checks the register fields of an instruction for coprocessors that
// have a fixed number of registers
func (arm *ARM) bounds(cp coprocessor.Coprocessor, number int, fields ...int) bool {
	b, ok := cp.(coprocessor.Bounded)
	if !ok {
		return true
	}
	for _, f := range fields {
		if f >= b.NumRegisters() {
			arm.log.Log(logger.Allow, arm.coprocessorTag(number), curated.Errorf("arm: %v: register %d", status.InvalidArguments, f))
			return false
		}
	}
	return true
}

// LDC and STC are not supported by any coprocessor
func (arm *ARM) coprocessorDataTransfer(ins instructions.CoprocessorDataTransfer) exceptions.Exception {
	arm.log.Log(logger.Allow, "ARM", curated.Errorf("arm: %v: coprocessor data transfer (%08x at %#08x)",
		status.UnknownOpcode, ins.Opcode(), arm.pc))
	return exceptions.None
}

func (arm *ARM) coprocessorDataOperation(ins instructions.CoprocessorDataOperation) exceptions.Exception {
	cp := arm.attached(ins.CPNum, ins.Opcode())
	if cp == nil {
		return exceptions.None
	}

	if !arm.bounds(cp, ins.CPNum, ins.CRd, ins.CRm, ins.CRn, int(ins.Aux)) {
		return exceptions.None
	}

	err := cp.DataOperation(arm, uint32(ins.CRm), ins.Aux, uint32(ins.CRd), uint32(ins.CRn), ins.Operation)
	if err != nil {
		arm.log.Log(logger.Allow, arm.coprocessorTag(ins.CPNum), err)
	}

	return exceptions.None
}

func (arm *ARM) coprocessorRegisterTransfer(ins instructions.CoprocessorRegisterTransfer) exceptions.Exception {
	cp := arm.attached(ins.CPNum, ins.Opcode())
	if cp == nil {
		return exceptions.None
	}

	if !arm.bounds(cp, ins.CPNum, ins.CRn) {
		return exceptions.None
	}

	err := cp.RegisterTransfer(arm, uint32(ins.CRm), ins.Aux, uint32(ins.Rd), uint32(ins.CRn), ins.Operation, ins.Load)
	if err != nil {
		arm.log.Log(logger.Allow, arm.coprocessorTag(ins.CPNum), err)
	}

	return exceptions.None
}
