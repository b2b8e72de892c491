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
	"github.com/jetsetilly/armv2/hardware/arm/instructions"
	"github.com/jetsetilly/armv2/hardware/arm/registers"
	"github.com/jetsetilly/armv2/hardware/memory"
	"github.com/jetsetilly/armv2/hardware/status"
	"github.com/jetsetilly/armv2/logger"
)

// Run executes instructions until the budget is exhausted. A negative budget
// means that execution continues indefinitely. Instructions that fail their
// condition and iterations where an interrupt is taken count towards the
// budget.
//
// The breakpoint instruction (see SWIBreakpoint) stops execution when the
// budget is not negative. In that case the returned error wraps the
// status.Breakpoint value and the PC is left so that the next call to Run()
// executes the breakpoint again. When running indefinitely the breakpoint
// instruction is a normal software interrupt.
//
// Architectural exceptions are not reported by Run(). They are delivered to
// the emulated program through the vector table.
func (arm *ARM) Run(budget int) error {
	if !arm.initialised {
		return curated.Errorf("arm: %v", status.InvalidState)
	}

	arm.updatePrefs()

	for budget != 0 {
		if budget > 0 {
			budget--
		}

		err := arm.cycle(budget < 0)
		if err != nil {
			return err
		}
	}

	return nil
}

// cycle performs one step and delivers any exception it raises. a breakpoint
// halts the processor unless it is running indefinitely.
func (arm *ARM) cycle(indefinite bool) error {
	e := arm.step()

	switch e {
	case exceptions.None:
	case exceptions.Breakpoint:
		if !indefinite {
			arm.pc -= 4
			return curated.Errorf("arm: %v (%#08x)", status.Breakpoint, arm.PC())
		}
		arm.deliver(exceptions.SoftwareInterrupt)
	default:
		arm.deliver(e)
	}

	return nil
}

// step performs one iteration of the fetch/execute loop. the returned
// exception has not yet been delivered.
func (arm *ARM) step() exceptions.Exception {
	arm.pc = (arm.pc + 4) & registers.PCMask
	arm.regs.SetPC(arm.pc + 8)

	if arm.interrupt() {
		return exceptions.None
	}

	arm.instructions++

	w, f := arm.mem.Fetch(arm.pc, !arm.regs.Mode().Privileged())
	if f != memory.NoFault {
		return exceptions.PrefetchAbort
	}

	ins := instructions.Decode(w)

	if arm.trace {
		arm.log.Logf(arm, "ARM", "%#08x %08x %s %s", arm.pc, w, arm.regs.FlagsString(), ins.Disassemble(arm.pc))
	}

	if !ins.Cond().Test(arm.regs.Flag(registers.FlagN), arm.regs.Flag(registers.FlagZ),
		arm.regs.Flag(registers.FlagC), arm.regs.Flag(registers.FlagV)) {
		return exceptions.None
	}

	return arm.execute(ins)
}

// execute dispatches the decoded instruction to the execution unit.
func (arm *ARM) execute(ins instructions.Instruction) exceptions.Exception {
	switch ins := ins.(type) {
	case instructions.DataProcessing:
		return arm.dataProcessing(ins)
	case instructions.Multiply:
		return arm.multiply(ins)
	case instructions.Swap:
		return arm.swap(ins)
	case instructions.SingleTransfer:
		return arm.singleTransfer(ins)
	case instructions.BlockTransfer:
		return arm.blockTransfer(ins)
	case instructions.Branch:
		return arm.branch(ins)
	case instructions.SoftwareInterrupt:
		return arm.softwareInterrupt(ins)
	case instructions.CoprocessorDataTransfer:
		return arm.coprocessorDataTransfer(ins)
	case instructions.CoprocessorDataOperation:
		return arm.coprocessorDataOperation(ins)
	case instructions.CoprocessorRegisterTransfer:
		return arm.coprocessorRegisterTransfer(ins)
	case instructions.Undefined:
		return exceptions.Undefined
	}

	arm.log.Log(logger.Allow, "ARM", curated.Errorf("arm: %v: unhandled instruction %T", status.UniverseBroken, ins))
	return exceptions.None
}

// writeR15 handles every write to R15 except for those made by exception
// delivery. if psr is false only the PC bits are written. otherwise the flags
// are also written and, in privileged modes, the mode. in user mode the I and
// F flags and the mode can never be changed.
func (arm *ARM) writeR15(value uint32, psr bool) {
	if psr {
		if arm.regs.Mode().Privileged() {
			arm.regs.SetR15(value)
		} else {
			arm.regs.SetR15((arm.regs.R15() & registers.Protected) | (value &^ registers.Protected))
		}
	} else {
		arm.regs.SetPC(value)
	}

	// the next instruction to execute is at the new PC
	arm.pc = (value & registers.PCMask) - 4
}

// writePSR changes the flags and mode bits of R15 without affecting the PC.
// the same protection rules as writeR15() apply.
func (arm *ARM) writePSR(value uint32) {
	if arm.regs.Mode().Privileged() {
		arm.regs.SetPSR(value)
	} else {
		arm.regs.SetPSR((arm.regs.PSR() & registers.Protected) | (value &^ registers.Protected))
	}
}
