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
	"github.com/jetsetilly/armv2/hardware/arm/exceptions"
	"github.com/jetsetilly/armv2/hardware/arm/registers"
	"github.com/jetsetilly/armv2/hardware/memory"
	"github.com/jetsetilly/armv2/hardware/status"
	"github.com/jetsetilly/armv2/logger"
)

// deliver the exception through the vector table. the entire R15 is saved in
// the link register of the handler's mode, the mode is changed and the
// handler's flags are set. execution continues at the vector.
//
// the saved R15 is the address of the instruction that caused the exception
// (or the instruction that was interrupted) plus eight.
func (arm *ARM) deliver(e exceptions.Exception) {
	h, ok := arm.vectors.Handler(e)
	if !ok {
		arm.log.Log(logger.Allow, "ARM", curated.Errorf("arm: %v: no vector for %s", status.UniverseBroken, e))
		return
	}

	if arm.logExceptions {
		arm.log.Logf(logger.Allow, "ARM", "%s at %#08x", e, arm.pc)
	}

	r15 := arm.regs.R15()
	arm.regs.SetSlot(h.LinkSlot, r15)
	arm.regs.SetR15((r15 &^ registers.ModeMask) | uint32(h.Mode) | h.Flags)
	arm.pc = h.Vector - 4
	arm.lastException = e
}

// the exception that a memory fault causes
func faultException(f memory.Fault) exceptions.Exception {
	switch f {
	case memory.NoFault:
		return exceptions.None
	case memory.AddressRange:
		return exceptions.Address
	}
	return exceptions.DataAbort
}

// combine the exceptions raised by the individual transfers of a block
// transfer. a data abort outranks an address exception
func outrank(current exceptions.Exception, e exceptions.Exception) exceptions.Exception {
	if e == exceptions.None || current == exceptions.DataAbort {
		return current
	}
	return e
}
