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

// blockTransfer is the LDM and STM instruction. the four addressing modes
// start at:
//
//	IA: base
//	IB: base + 4
//	DA: base - 4n + 4
//	DB: base - 4n
//
// and registers are always transferred lowest first to the lowest address.
func (arm *ARM) blockTransfer(ins instructions.BlockTransfer) exceptions.Exception {
	n := ins.Count()
	if n == 0 {
		return exceptions.None
	}

	baseIsPC := ins.Rn == registers.PC

	// the entire R15 is used when the base is the PC
	var base uint32
	if baseIsPC {
		base = arm.regs.R15()
	} else {
		base = arm.regs.Get(ins.Rn)
	}

	var start, wb uint32
	if ins.Up {
		wb = base + 4*n
		start = base
		if ins.Pre {
			start += 4
		}
	} else {
		wb = base - 4*n
		start = wb
		if !ins.Pre {
			start += 4
		}
	}

	// an out of range base address is reported but the transfer continues
	// with the address reduced to the address space
	result := exceptions.None
	if start&^memory.AddressMask != 0 {
		result = exceptions.Address
	}

	addr := start & memory.AddressMask
	if baseIsPC {
		addr = start & registers.PCMask
	}

	// writeback happens before any transfer. there is never any writeback
	// when the base is the PC
	writeback := ins.Writeback && !baseIsPC
	if writeback {
		arm.regs.Set(ins.Rn, wb)
	}

	loadsPC := ins.Load && ins.List&(1<<registers.PC) != 0

	// with the S bit set, privileged modes transfer the user mode registers.
	// except for an LDM that includes the PC, in which case the S bit means
	// that the PSR is loaded along with the PC
	userBank := ins.PSR && arm.regs.Mode().Privileged() && !loadsPC

	user := !arm.regs.Mode().Privileged()
	first := true

	for r := 0; r < registers.NumEffective; r++ {
		if ins.List&(1<<r) == 0 {
			continue
		}

		if ins.Load {
			v, f := arm.mem.Read(addr, memory.Word, user)
			if f != memory.NoFault {
				result = outrank(result, faultException(f))
			} else {
				switch {
				case r == registers.PC:
					arm.writeR15(v, ins.PSR)
				case userBank:
					arm.regs.SetUser(r, v)
				default:
					arm.regs.Set(r, v)
				}
			}
		} else {
			var v uint32
			switch {
			case r == registers.PC:
				v = arm.storeValue(r)
			case first && r == ins.Rn && writeback:
				v = wb
			case userBank:
				v = arm.regs.GetUser(r)
			default:
				v = arm.regs.Get(r)
			}
			if f := arm.mem.Write(addr, v, memory.Word, user); f != memory.NoFault {
				result = outrank(result, faultException(f))
			}
		}

		first = false
		addr = (addr + 4) & memory.AddressMask
	}

	return result
}
