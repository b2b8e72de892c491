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
	"github.com/jetsetilly/armv2/hardware/memory"
)

// swap reads from and then writes to the same address. both accesses are
// checked before either is made
func (arm *ARM) swap(ins instructions.Swap) exceptions.Exception {
	addr := arm.baseValue(ins.Rn)

	width := memory.Word
	if ins.Byte {
		width = memory.Byte
	}

	user := !arm.regs.Mode().Privileged()

	if e := faultException(arm.mem.Check(addr, width, memory.PermRead, user)); e != exceptions.None {
		return e
	}
	if e := faultException(arm.mem.Check(addr, width, memory.PermWrite, user)); e != exceptions.None {
		return e
	}

	v, _ := arm.mem.Read(addr, width, user)
	arm.mem.Write(addr, arm.storeValue(ins.Rm), width, user)

	if ins.Rd == registers.PC {
		arm.writeR15(v, false)
	} else {
		arm.regs.Set(ins.Rd, v)
	}

	return exceptions.None
}
