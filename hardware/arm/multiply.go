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
	"github.com/jetsetilly/armv2/hardware/arm/exceptions"
	"github.com/jetsetilly/armv2/hardware/arm/instructions"
	"github.com/jetsetilly/armv2/hardware/arm/registers"
)

func (arm *ARM) multiply(ins instructions.Multiply) exceptions.Exception {
	var rm, rs uint32

	if ins.Rm == registers.PC {
		rm = (arm.regs.PC() + 4) & registers.PCMask
	} else {
		rm = arm.regs.Get(ins.Rm)
	}

	if ins.Rs == registers.PC {
		rs = arm.regs.PC()
	} else {
		rs = arm.regs.Get(ins.Rs)
	}

	result := rm * rs
	if ins.Accumulate {
		result += arm.regs.Get(ins.Rn)
	}

	// the result is discarded if the destination is the PC
	if ins.Rd != registers.PC {
		arm.regs.Set(ins.Rd, result)
	}

	// the carry flag is meaningless after a multiply. it is left unchanged as
	// is the overflow flag
	if ins.SetFlags {
		arm.regs.SetFlag(registers.FlagN, result&0x80000000 == 0x80000000)
		arm.regs.SetFlag(registers.FlagZ, result == 0)
	}

	return exceptions.None
}
