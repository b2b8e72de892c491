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

package exceptions

import (
	"github.com/jetsetilly/armv2/hardware/arm/registers"
)

// Exception is an architectural exception. Exceptions are raised by the
// execution units and by the interrupt pins and are delivered to the emulated
// program through the vector table.
type Exception int

// List of valid Exception values. The first eight values are in vector table
// order.
const (
	Reset Exception = iota
	Undefined
	SoftwareInterrupt
	PrefetchAbort
	DataAbort
	Address
	IRQ
	FIQ

	// None is the result of an instruction that completed normally
	None

	// Breakpoint is raised by the breakpoint form of the SWI instruction. It
	// has no entry in the vector table and is converted by the processor into
	// either a host visible stop or a SoftwareInterrupt
	Breakpoint
)

func (e Exception) String() string {
	switch e {
	case Reset:
		return "reset"
	case Undefined:
		return "undefined instruction"
	case SoftwareInterrupt:
		return "software interrupt"
	case PrefetchAbort:
		return "prefetch abort"
	case DataAbort:
		return "data abort"
	case Address:
		return "address exception"
	case IRQ:
		return "irq"
	case FIQ:
		return "fiq"
	case None:
		return "none"
	case Breakpoint:
		return "breakpoint"
	}
	return "unknown exception"
}

// Handler describes how an exception is entered.
type Handler struct {
	// mode the processor switches to
	Mode registers.Mode

	// address execution continues from
	Vector uint32

	// flags that are forced on. any combination of the I and F flags
	Flags uint32

	// the slot in the actual register array that receives the contents of
	// R15 at the time of the exception
	LinkSlot int
}

// Table is the exception vector table. It is read-only once created.
type Table struct {
	handlers [None]Handler
}

// NewTable is the preferred method of initialisation for the Table type.
func NewTable() *Table {
	tbl := &Table{}

	for i := range tbl.handlers {
		tbl.handlers[i] = Handler{
			Mode:     registers.SVC,
			Vector:   uint32(i) * 4,
			Flags:    registers.FlagI,
			LinkSlot: registers.R14svc,
		}
	}

	tbl.handlers[IRQ].Mode = registers.IRQ
	tbl.handlers[IRQ].LinkSlot = registers.R14irq

	tbl.handlers[FIQ].Mode = registers.FIQ
	tbl.handlers[FIQ].LinkSlot = registers.R14fiq
	tbl.handlers[FIQ].Flags |= registers.FlagF

	tbl.handlers[Reset].Flags |= registers.FlagF

	return tbl
}

// Handler returns the vector table entry for the exception. Returns false if
// there is no entry for the exception.
func (tbl *Table) Handler(e Exception) (Handler, bool) {
	if e < 0 || e >= None {
		return Handler{}, false
	}
	return tbl.handlers[e], true
}
