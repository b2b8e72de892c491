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

// Package arm implements an ARMv2 processor with a 26-bit address space.
//
// The processor is created with NewARM() and is ready to run immediately. A
// boot image is normally loaded at address zero with LoadImage() before the
// first call to Run().
//
//	cpu, err := arm.NewARM(prefs, nil, 0)
//	if err != nil {
//		return err
//	}
//	defer cpu.Teardown()
//
//	err = cpu.LoadImage("boot.rom")
//	if err != nil {
//		return err
//	}
//
//	err = cpu.Run(-1)
//
// Run() is synchronous and single-threaded. It returns when the instruction
// budget is exhausted or when a breakpoint instruction is executed under a
// limited budget.
//
// Architectural exceptions (data aborts, software interrupts, etc.) are not
// returned to the caller. They are delivered to the emulated program through
// the vector table in the exceptions package, exactly as the hardware would.
// The LastException() function is available for inspection.
//
// The program counter seen by the host with PC() is the address of the next
// instruction to execute. Inside the execution units the PC bits of R15 are
// always eight bytes ahead of the instruction being executed.
//
// Devices are attached with AddHardware() and MapMemory(). Coprocessors are
// attached with RegisterCoprocessor(). The hardware manager coprocessor is
// attached to coprocessor 7 automatically and gives the emulated program
// access to the same device functions.
package arm
