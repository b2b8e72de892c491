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

package exceptions_test

import (
	"testing"

	"github.com/jetsetilly/armv2/hardware/arm/exceptions"
	"github.com/jetsetilly/armv2/hardware/arm/registers"
	"github.com/jetsetilly/armv2/test"
)

func TestVectorTable(t *testing.T) {
	tbl := exceptions.NewTable()

	h, ok := tbl.Handler(exceptions.SoftwareInterrupt)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, h.Vector, 0x08)
	test.ExpectEquality(t, h.Mode, registers.SVC)
	test.ExpectEquality(t, h.Flags, registers.FlagI)
	test.ExpectEquality(t, h.LinkSlot, registers.R14svc)

	h, _ = tbl.Handler(exceptions.Address)
	test.ExpectEquality(t, h.Vector, 0x14)

	h, _ = tbl.Handler(exceptions.IRQ)
	test.ExpectEquality(t, h.Vector, 0x18)
	test.ExpectEquality(t, h.Mode, registers.IRQ)
	test.ExpectEquality(t, h.LinkSlot, registers.R14irq)
	test.ExpectEquality(t, h.Flags, registers.FlagI)

	h, _ = tbl.Handler(exceptions.FIQ)
	test.ExpectEquality(t, h.Vector, 0x1c)
	test.ExpectEquality(t, h.Mode, registers.FIQ)
	test.ExpectEquality(t, h.LinkSlot, registers.R14fiq)
	test.ExpectEquality(t, h.Flags, registers.FlagI|registers.FlagF)

	h, _ = tbl.Handler(exceptions.Reset)
	test.ExpectEquality(t, h.Flags, registers.FlagI|registers.FlagF)

	_, ok = tbl.Handler(exceptions.None)
	test.ExpectFailure(t, ok)
	_, ok = tbl.Handler(exceptions.Breakpoint)
	test.ExpectFailure(t, ok)
}
