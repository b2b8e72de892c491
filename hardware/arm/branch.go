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

// the link register receives the address of the branch instruction
func (arm *ARM) branch(ins instructions.Branch) exceptions.Exception {
	if ins.Link {
		arm.regs.Set(registers.LR, arm.pc)
	}
	arm.writeR15(ins.Target(arm.pc), false)
	return exceptions.None
}

func (arm *ARM) softwareInterrupt(ins instructions.SoftwareInterrupt) exceptions.Exception {
	if ins.Comment == SWIBreakpoint {
		return exceptions.Breakpoint
	}
	return exceptions.SoftwareInterrupt
}
