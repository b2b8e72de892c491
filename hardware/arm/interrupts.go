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
	"github.com/jetsetilly/armv2/hardware/arm/registers"
)

// Pin is an interrupt line into the processor.
type Pin uint32

// List of valid Pin values.
const (
	PinFIQ Pin = 1 << iota
	PinIRQ
)

func (p Pin) String() string {
	switch p {
	case PinFIQ:
		return "fiq"
	case PinIRQ:
		return "irq"
	}
	return "unknown pin"
}

// SetPin raises or lowers the interrupt line. The pins are sampled once per
// instruction by Run(). A pin stays active until it is lowered.
func (arm *ARM) SetPin(pin Pin, active bool) {
	if active {
		arm.pins |= pin
	} else {
		arm.pins &^= pin
	}
}

// Pins returns the active interrupt lines.
func (arm *ARM) Pins() Pin {
	return arm.pins
}

// sample the interrupt pins. FIQ has priority over IRQ. returns true if an
// interrupt has been taken, in which case the instruction at the current PC is
// not executed.
func (arm *ARM) interrupt() bool {
	if arm.pins&PinFIQ == PinFIQ && !arm.regs.Flag(registers.FlagF) {
		arm.deliver(exceptions.FIQ)
		return true
	}
	if arm.pins&PinIRQ == PinIRQ && !arm.regs.Flag(registers.FlagI) {
		arm.deliver(exceptions.IRQ)
		return true
	}
	return false
}
