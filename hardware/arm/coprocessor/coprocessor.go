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

package coprocessor

import (
	"github.com/jetsetilly/armv2/hardware/memory"
)

// MaxCoprocessors is the number of coprocessor slots. The coprocessor number
// is a four bit field in the instruction.
const MaxCoprocessors = 16

// Host is the view of the processor given to a coprocessor when it handles
// an instruction.
type Host interface {
	// processor registers for the current mode
	Register(reg int) uint32
	SetRegister(reg int, value uint32)

	// set the N, Z, C and V flags from the top four bits of value
	SetConditionFlags(value uint32)

	// registered devices
	NumDevices() int
	Device(number int) (memory.Device, error)
	MapMemory(number int, start uint32, end uint32) error
}

// Coprocessor handles the coprocessor instructions addressed to it. The
// arguments are the raw fields of the instruction.
//
// A returned error is reported to the host. It does not cause an exception in
// the emulated processor.
type Coprocessor interface {
	// the CDP instruction
	DataOperation(host Host, crm uint32, aux uint32, crd uint32, crn uint32, opcode uint32) error

	// the MRC (load is true) and MCR (load is false) instructions
	RegisterTransfer(host Host, crm uint32, aux uint32, rd uint32, crn uint32, opcode uint32, load bool) error
}

// Bounded is implemented by coprocessors with a fixed number of registers.
// The processor checks the register fields of an instruction before passing
// it to a Bounded coprocessor.
type Bounded interface {
	NumRegisters() int
}
