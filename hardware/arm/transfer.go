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
	"github.com/jetsetilly/armv2/hardware/memory"
)

// the value of a register for a store instruction. storing the PC stores the
// address of the instruction plus twelve, along with the flags and mode
func (arm *ARM) storeValue(reg int) uint32 {
	if reg == registers.PC {
		return ((arm.regs.PC() + 4) & registers.PCMask) | arm.regs.PSR()
	}
	return arm.regs.Get(reg)
}

// the value of a base register for an address calculation. the PSR bits are
// not included when the base is the PC
func (arm *ARM) baseValue(reg int) uint32 {
	if reg == registers.PC {
		return arm.regs.PC()
	}
	return arm.regs.Get(reg)
}

// writeback into a base register. writing back to the PC changes the address
// of the next instruction
func (arm *ARM) writeBase(reg int, value uint32) {
	if reg == registers.PC {
		arm.writeR15(value, false)
		return
	}
	arm.regs.Set(reg, value)
}

func (arm *ARM) singleTransfer(ins instructions.SingleTransfer) exceptions.Exception {
	base := arm.baseValue(ins.Rn)

	var offset uint32
	if ins.RegisterOffset {
		offset, _ = alu.Shift(ins.Shift, arm.regs.Get(ins.Rm), ins.ShiftAmount, arm.regs.Flag(registers.FlagC), true)
	} else {
		offset = ins.Offset
	}

	adjusted := base - offset
	if ins.Up {
		adjusted = base + offset
	}

	addr := base
	if ins.Pre {
		addr = adjusted
	}

	width := memory.Word
	if ins.Byte {
		width = memory.Byte
	}

	perm := memory.PermWrite
	if ins.Load {
		perm = memory.PermRead
	}

	// post-indexed transfers with the writeback bit set are the "T" form of
	// the instruction. the access is made as though the processor is in user
	// mode
	user := !arm.regs.Mode().Privileged() || (!ins.Pre && ins.Writeback)

	// nothing is changed if the transfer is going to fail
	if e := faultException(arm.mem.Check(addr, width, perm, user)); e != exceptions.None {
		return e
	}

	writeback := !ins.Pre || ins.Writeback

	if ins.Load {
		v, _ := arm.mem.Read(addr, width, user)

		// the loaded value takes precedence if the base is also the
		// destination
		if writeback {
			arm.writeBase(ins.Rn, adjusted)
		}

		if ins.Rd == registers.PC {
			arm.writeR15(v, false)
		} else {
			arm.regs.Set(ins.Rd, v)
		}

		return exceptions.None
	}

	arm.mem.Write(addr, arm.storeValue(ins.Rd), width, user)
	if writeback {
		arm.writeBase(ins.Rn, adjusted)
	}

	return exceptions.None
}
