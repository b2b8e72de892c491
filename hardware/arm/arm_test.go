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

package arm_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/armv2/hardware/arm"
	"github.com/jetsetilly/armv2/hardware/arm/exceptions"
	"github.com/jetsetilly/armv2/hardware/arm/registers"
	"github.com/jetsetilly/armv2/hardware/memory"
	"github.com/jetsetilly/armv2/hardware/status"
	"github.com/jetsetilly/armv2/logger"
	"github.com/jetsetilly/armv2/test"
)

const testMemory = 0x10000

// create a processor with the program placed at the origin. the next
// instruction to execute is the first instruction of the program
func newTestARM(t *testing.T, origin uint32, program ...uint32) (*arm.ARM, *logger.Logger) {
	t.Helper()

	log := logger.NewLogger(100)
	cpu, err := arm.NewARM(nil, log, testMemory)
	test.DemandSuccess(t, err)

	for i, w := range program {
		test.DemandSuccess(t, cpu.Memory().Poke(origin+uint32(i*4), w))
	}
	cpu.SetPC(origin)

	return cpu, log
}

func TestNewARM(t *testing.T) {
	cpu, err := arm.NewARM(nil, logger.NewLogger(10), memory.MaxRequest+1)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, status.ValueError))
	test.ExpectSuccess(t, cpu == nil)

	cpu, err = arm.NewARM(nil, logger.NewLogger(10), 100)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cpu.Memory().Size(), memory.PageSize)

	// processor starts in SVC mode with the flags clear
	regs := cpu.Registers()
	test.ExpectEquality(t, regs.Mode(), registers.SVC)
	test.ExpectEquality(t, regs.PSR(), uint32(registers.SVC))
	test.ExpectEquality(t, cpu.PC(), 0)
	test.ExpectEquality(t, regs.Effective(registers.SP), registers.R13svc)

	// hardware manager is attached
	test.ExpectSuccess(t, cpu.Coprocessor(7) != nil)
	test.ExpectSuccess(t, cpu.Coprocessor(15) == nil)

	cpu.Teardown()
	err = cpu.Run(1)
	test.ExpectSuccess(t, errors.Is(err, status.InvalidState))
}

func TestLoadImage(t *testing.T) {
	cpu, _ := newTestARM(t, 0)

	dir := t.TempDir()

	img := make([]byte, 0x41)
	img[0x40] = 0xaa
	fn := filepath.Join(dir, "good.rom")
	test.DemandSuccess(t, os.WriteFile(fn, img, 0o600))
	test.ExpectSuccess(t, cpu.LoadImage(fn))

	w, ok := cpu.Memory().Peek(0x40)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, w, 0xaa)

	fn = filepath.Join(dir, "small.rom")
	test.DemandSuccess(t, os.WriteFile(fn, img[:0x20], 0o600))
	err := cpu.LoadImage(fn)
	test.ExpectSuccess(t, errors.Is(err, status.IOError))

	fn = filepath.Join(dir, "large.rom")
	test.DemandSuccess(t, os.WriteFile(fn, make([]byte, testMemory+4), 0o600))
	err = cpu.LoadImage(fn)
	test.ExpectSuccess(t, errors.Is(err, status.MemoryError))
}

func TestAddWithOverflow(t *testing.T) {
	// adds r0, r1, r2
	cpu, _ := newTestARM(t, 0x100, 0xe0910002)
	regs := cpu.Registers()
	regs.Set(1, 0x7fffffff)
	regs.Set(2, 1)

	test.DemandSuccess(t, cpu.Run(1))
	test.ExpectEquality(t, regs.Get(0), 0x80000000)
	test.ExpectEquality(t, regs.Flag(registers.FlagN), true)
	test.ExpectEquality(t, regs.Flag(registers.FlagZ), false)
	test.ExpectEquality(t, regs.Flag(registers.FlagC), false)
	test.ExpectEquality(t, regs.Flag(registers.FlagV), true)
}

func TestSubtractEqual(t *testing.T) {
	// subs r0, r1, r2
	cpu, _ := newTestARM(t, 0x100, 0xe0510002)
	regs := cpu.Registers()
	regs.Set(1, 1234)
	regs.Set(2, 1234)

	test.DemandSuccess(t, cpu.Run(1))
	test.ExpectEquality(t, regs.Get(0), 0)
	test.ExpectEquality(t, regs.Flag(registers.FlagZ), true)
	test.ExpectEquality(t, regs.Flag(registers.FlagC), true)
	test.ExpectEquality(t, regs.Flag(registers.FlagV), false)
}

func TestCondition(t *testing.T) {
	// moveq r0, #1
	// movne r1, #1
	cpu, _ := newTestARM(t, 0x100, 0x03a00001, 0x13a01001)
	regs := cpu.Registers()

	test.DemandSuccess(t, cpu.Run(2))
	test.ExpectEquality(t, regs.Get(0), 0)
	test.ExpectEquality(t, regs.Get(1), 1)
	test.ExpectEquality(t, cpu.Instructions(), 2)
	test.ExpectEquality(t, cpu.PC(), 0x108)
}

func TestMultiply(t *testing.T) {
	// mul r0, r1, r2
	// mlas r3, r1, r2, r4
	// mul pc, r1, r2
	cpu, _ := newTestARM(t, 0x100, 0xe0000291, 0xe0334291, 0xe00f0291)
	regs := cpu.Registers()
	regs.Set(1, 6)
	regs.Set(2, 7)
	regs.Set(4, 0xffffffd6) // -42
	regs.SetFlag(registers.FlagC, true)

	test.DemandSuccess(t, cpu.Run(1))
	test.ExpectEquality(t, regs.Get(0), 42)

	test.DemandSuccess(t, cpu.Run(1))
	test.ExpectEquality(t, regs.Get(3), 0)
	test.ExpectEquality(t, regs.Flag(registers.FlagZ), true)
	test.ExpectEquality(t, regs.Flag(registers.FlagN), false)
	test.ExpectEquality(t, regs.Flag(registers.FlagC), true)

	// the result of a multiply into the PC is discarded
	test.DemandSuccess(t, cpu.Run(1))
	test.ExpectEquality(t, cpu.PC(), 0x10c)
}

func TestBranchWithLink(t *testing.T) {
	// bl 0x128
	cpu, _ := newTestARM(t, 0x100, 0xeb000008)
	regs := cpu.Registers()

	test.DemandSuccess(t, cpu.Run(1))
	test.ExpectEquality(t, regs.Get(registers.LR), 0x100)
	test.ExpectEquality(t, cpu.PC(), 0x128)
}

func TestBranchBackwards(t *testing.T) {
	// b 0x100 (a branch to itself)
	cpu, _ := newTestARM(t, 0x100, 0xeafffffe)

	test.DemandSuccess(t, cpu.Run(10))
	test.ExpectEquality(t, cpu.PC(), 0x100)
	test.ExpectEquality(t, cpu.Instructions(), 10)
}

func TestBlockTransfer(t *testing.T) {
	// stmia r2!, {r0, r1}
	// ldmia r2, {r3, r4}
	cpu, _ := newTestARM(t, 0x100, 0xe8a20003, 0xe8920018)
	regs := cpu.Registers()
	regs.Set(0, 0x11111111)
	regs.Set(1, 0x22222222)
	regs.Set(2, 0x2000)

	test.DemandSuccess(t, cpu.Run(1))

	w, _ := cpu.Memory().Peek(0x2000)
	test.ExpectEquality(t, w, 0x11111111)
	w, _ = cpu.Memory().Peek(0x2004)
	test.ExpectEquality(t, w, 0x22222222)
	test.ExpectEquality(t, regs.Get(2), 0x2008)

	// load from the updated base, which is beyond the stored values
	test.DemandSuccess(t, cpu.Memory().Poke(0x2008, 0x33333333))
	test.DemandSuccess(t, cpu.Memory().Poke(0x200c, 0x44444444))
	test.DemandSuccess(t, cpu.Run(1))
	test.ExpectEquality(t, regs.Get(3), 0x33333333)
	test.ExpectEquality(t, regs.Get(4), 0x44444444)
	test.ExpectEquality(t, regs.Get(2), 0x2008)
}

func TestBlockTransferDescending(t *testing.T) {
	// stmdb sp!, {r0, r1, lr}
	// ldmia sp!, {r5, r6, pc}
	cpu, _ := newTestARM(t, 0x100, 0xe92d4003, 0xe8bd8060)
	regs := cpu.Registers()
	regs.Set(0, 10)
	regs.Set(1, 20)
	regs.Set(registers.LR, 0x200)
	regs.Set(registers.SP, 0x3000)

	test.DemandSuccess(t, cpu.Run(1))
	test.ExpectEquality(t, regs.Get(registers.SP), 0x2ff4)
	w, _ := cpu.Memory().Peek(0x2ff4)
	test.ExpectEquality(t, w, 10)
	w, _ = cpu.Memory().Peek(0x2ffc)
	test.ExpectEquality(t, w, 0x200)

	test.DemandSuccess(t, cpu.Run(1))
	test.ExpectEquality(t, regs.Get(registers.SP), 0x3000)
	test.ExpectEquality(t, regs.Get(5), 10)
	test.ExpectEquality(t, regs.Get(6), 20)
	test.ExpectEquality(t, cpu.PC(), 0x200)
	test.ExpectEquality(t, regs.Mode(), registers.SVC)
}

func TestBlockTransferUserBank(t *testing.T) {
	// stmia r0, {r13, r14}^
	cpu, _ := newTestARM(t, 0x100, 0xe8c06000)
	regs := cpu.Registers()
	regs.Set(0, 0x2000)
	regs.Set(registers.SP, 0xaaaa)
	regs.SetUser(registers.SP, 0xbbbb)

	test.DemandSuccess(t, cpu.Run(1))
	w, _ := cpu.Memory().Peek(0x2000)
	test.ExpectEquality(t, w, 0xbbbb)
}

func TestBlockTransferBaseInList(t *testing.T) {
	// stmia r0!, {r0, r1}
	// stmia r1!, {r0, r1}
	cpu, _ := newTestARM(t, 0x100, 0xe8a00003, 0xe8a10003)
	regs := cpu.Registers()
	regs.Set(0, 0x2000)
	regs.Set(1, 0x55)

	// the base is the first register in the list so the stored value is the
	// value after writeback
	test.DemandSuccess(t, cpu.Run(1))
	w, _ := cpu.Memory().Peek(0x2000)
	test.ExpectEquality(t, w, 0x2008)
	w, _ = cpu.Memory().Peek(0x2004)
	test.ExpectEquality(t, w, 0x55)
	test.ExpectEquality(t, regs.Get(0), 0x2008)

	// the base is not the first register. writeback has already happened
	// when the base is stored
	regs.Set(0, 0x66)
	regs.Set(1, 0x3000)
	test.DemandSuccess(t, cpu.Run(1))
	w, _ = cpu.Memory().Peek(0x3000)
	test.ExpectEquality(t, w, 0x66)
	w, _ = cpu.Memory().Peek(0x3004)
	test.ExpectEquality(t, w, 0x3008)
	test.ExpectEquality(t, regs.Get(1), 0x3008)
}

func TestBlockTransferBasePC(t *testing.T) {
	// stmia pc!, {r0}
	cpu, _ := newTestARM(t, 0x100, 0xe8af0001)
	regs := cpu.Registers()
	regs.Set(0, 0xabcd)

	// the mode bits of R15 are part of the base but they are not part of a
	// word address. there is no writeback
	test.DemandSuccess(t, cpu.Run(1))
	w, _ := cpu.Memory().Peek(0x108)
	test.ExpectEquality(t, w, 0xabcd)
	test.ExpectEquality(t, cpu.PC(), 0x104)
	test.ExpectEquality(t, cpu.LastException(), exceptions.None)

	// with a flag set the base is outside of the address space
	cpu.SetPC(0x100)
	regs.Set(0, 0x1234)
	regs.SetFlag(registers.FlagV, true)
	test.DemandSuccess(t, cpu.Run(1))
	test.ExpectEquality(t, cpu.LastException(), exceptions.Address)
	test.ExpectEquality(t, cpu.PC(), 0x14)
	w, _ = cpu.Memory().Peek(0x108)
	test.ExpectEquality(t, w, 0x1234)
}

func TestBlockTransferAbort(t *testing.T) {
	// ldmia r0, {r1, r2, r3}
	cpu, _ := newTestARM(t, 0x100, 0xe890000e)
	regs := cpu.Registers()
	test.DemandSuccess(t, cpu.Memory().Poke(testMemory-4, 0x99))
	regs.Set(0, testMemory-4)
	regs.Set(2, 0x22)
	regs.Set(3, 0x33)

	// the second and third words are beyond the end of memory. the first
	// load still happens
	test.DemandSuccess(t, cpu.Run(1))
	test.ExpectEquality(t, cpu.LastException(), exceptions.DataAbort)
	test.ExpectEquality(t, cpu.PC(), 0x10)
	test.ExpectEquality(t, regs.Get(1), 0x99)
	test.ExpectEquality(t, regs.Get(2), 0x22)
	test.ExpectEquality(t, regs.Get(3), 0x33)

	// a base outside of the address space is an address exception but the
	// transfer continues with the reduced address
	cpu.SetPC(0x100)
	test.DemandSuccess(t, cpu.Memory().Poke(0x2000, 0x77))
	regs.Set(0, 0x04002000)
	test.DemandSuccess(t, cpu.Run(1))
	test.ExpectEquality(t, cpu.LastException(), exceptions.Address)
	test.ExpectEquality(t, cpu.PC(), 0x14)
	test.ExpectEquality(t, regs.Get(1), 0x77)

	// data abort outranks the address exception
	cpu.SetPC(0x100)
	regs.Set(0, 0x04000000|(testMemory-4))
	regs.Set(1, 0)
	test.DemandSuccess(t, cpu.Run(1))
	test.ExpectEquality(t, cpu.LastException(), exceptions.DataAbort)
	test.ExpectEquality(t, cpu.PC(), 0x10)
	test.ExpectEquality(t, regs.Get(1), 0x99)
}

func TestBlockTransferLoadPSR(t *testing.T) {
	// ldmia r0, {pc}^
	// ldmia r0, {pc}
	cpu, _ := newTestARM(t, 0x100, 0xe8d08000, 0xe8908000)
	regs := cpu.Registers()
	regs.Set(0, 0x2000)

	v := registers.FlagN | registers.FlagC | registers.FlagI | 0x200 | uint32(registers.IRQ)
	test.DemandSuccess(t, cpu.Memory().Poke(0x2000, v))

	// privileged mode loads the entire word
	test.DemandSuccess(t, cpu.Run(1))
	test.ExpectEquality(t, cpu.PC(), 0x200)
	test.ExpectEquality(t, regs.Mode(), registers.IRQ)
	test.ExpectEquality(t, regs.FlagsString(), "NzCvIf")

	// user mode can change the condition flags but not the mode or the
	// interrupt flags
	cpu.SetPC(0x100)
	regs.SetMode(registers.USR)
	regs.SetFlag(registers.FlagI, false)
	regs.SetNZCV(false, true, false, false)
	regs.Set(0, 0x2000)
	test.DemandSuccess(t, cpu.Run(1))
	test.ExpectEquality(t, cpu.PC(), 0x200)
	test.ExpectEquality(t, regs.Mode(), registers.USR)
	test.ExpectEquality(t, regs.FlagsString(), "NzCvif")

	// without the S bit only the PC is loaded
	cpu.SetPC(0x104)
	regs.SetNZCV(false, true, false, false)
	test.DemandSuccess(t, cpu.Run(1))
	test.ExpectEquality(t, cpu.PC(), 0x200)
	test.ExpectEquality(t, regs.Mode(), registers.USR)
	test.ExpectEquality(t, regs.FlagsString(), "nZcvif")
}

func TestRoundTrip(t *testing.T) {
	// str r0, [r1]
	// ldr r2, [r1]
	// strb r3, [r1, #1]
	// ldrb r4, [r1, #1]
	cpu, _ := newTestARM(t, 0x100, 0xe5810000, 0xe5912000, 0xe5c13001, 0xe5d14001)
	regs := cpu.Registers()
	regs.Set(0, 0xdeadbeef)
	regs.Set(1, 0x2000)
	regs.Set(3, 0x12345678)

	test.DemandSuccess(t, cpu.Run(2))
	test.ExpectEquality(t, regs.Get(2), 0xdeadbeef)

	test.DemandSuccess(t, cpu.Run(2))
	w, _ := cpu.Memory().Peek(0x2000)
	test.ExpectEquality(t, w, 0xdead78ef)
	test.ExpectEquality(t, regs.Get(4), 0x78)
}

func TestTransferWriteback(t *testing.T) {
	// ldr r0, [r1], #4
	// ldr r2, [r1, #4]!
	// str pc, [r1]
	cpu, _ := newTestARM(t, 0x100, 0xe4910004, 0xe5b12004, 0xe581f000)
	regs := cpu.Registers()
	regs.Set(1, 0x2000)
	test.DemandSuccess(t, cpu.Memory().Poke(0x2000, 1))
	test.DemandSuccess(t, cpu.Memory().Poke(0x2008, 2))

	test.DemandSuccess(t, cpu.Run(1))
	test.ExpectEquality(t, regs.Get(0), 1)
	test.ExpectEquality(t, regs.Get(1), 0x2004)

	test.DemandSuccess(t, cpu.Run(1))
	test.ExpectEquality(t, regs.Get(2), 2)
	test.ExpectEquality(t, regs.Get(1), 0x2008)

	// storing the PC stores the address of the instruction plus twelve along
	// with the PSR
	test.DemandSuccess(t, cpu.Run(1))
	w, _ := cpu.Memory().Peek(0x2008)
	test.ExpectEquality(t, w, 0x108+12|uint32(registers.SVC))
}

func TestUnaligned(t *testing.T) {
	// ldr r0, [r1]
	cpu, _ := newTestARM(t, 0x100, 0xe5910000)
	regs := cpu.Registers()
	regs.Set(1, 0x2002)

	test.DemandSuccess(t, cpu.Run(1))
	test.ExpectEquality(t, cpu.LastException(), exceptions.DataAbort)
	test.ExpectEquality(t, regs.Get(0), 0)
	test.ExpectEquality(t, cpu.PC(), 0x10)
}

func TestAddressException(t *testing.T) {
	// ldr r0, [r1]
	cpu, _ := newTestARM(t, 0x100, 0xe5910000)
	regs := cpu.Registers()
	regs.Set(1, 0x04000000)

	test.DemandSuccess(t, cpu.Run(1))
	test.ExpectEquality(t, cpu.LastException(), exceptions.Address)
	test.ExpectEquality(t, cpu.PC(), 0x14)
}

func TestUserPermission(t *testing.T) {
	// str r0, [r1]
	// ldr r0, [r2]
	cpu, _ := newTestARM(t, 0x1000, 0xe5810000, 0xe5920000)
	regs := cpu.Registers()
	regs.SetMode(registers.USR)
	regs.Set(0, 0xcafe)
	regs.Set(1, 0x40)
	regs.Set(2, 0x2000)

	// page zero is never writable
	before, _ := cpu.Memory().Peek(0x40)
	test.DemandSuccess(t, cpu.Run(1))
	test.ExpectEquality(t, cpu.LastException(), exceptions.DataAbort)
	test.ExpectEquality(t, regs.Mode(), registers.SVC)
	test.ExpectEquality(t, cpu.PC(), 0x10)
	test.ExpectEquality(t, regs.Get(0), 0xcafe)
	test.ExpectEquality(t, regs.Get(1), 0x40)
	after, _ := cpu.Memory().Peek(0x40)
	test.ExpectEquality(t, after, before)

	// the link register holds the PC and PSR of the faulting instruction
	test.ExpectEquality(t, regs.Get(registers.LR), 0x1008|uint32(registers.USR))

	// a page without the read permission
	cpu.Memory().Page(0x2000).Perms = memory.PermWrite
	test.DemandSuccess(t, cpu.Memory().Poke(0x2000, 0x1234))
	regs.SetMode(registers.USR)
	cpu.SetPC(0x1004)
	test.DemandSuccess(t, cpu.Run(1))
	test.ExpectEquality(t, cpu.LastException(), exceptions.DataAbort)
	test.ExpectEquality(t, regs.Get(0), 0xcafe)

	// the same load succeeds in a privileged mode
	cpu.SetPC(0x1004)
	test.DemandSuccess(t, cpu.Run(1))
	test.ExpectEquality(t, regs.Get(0), 0x1234)
}

func TestSoftwareInterrupt(t *testing.T) {
	// swi 0x123456
	cpu, _ := newTestARM(t, 0x1000, 0xef123456)
	regs := cpu.Registers()
	regs.SetMode(registers.USR)
	regs.SetFlag(registers.FlagZ, true)

	test.DemandSuccess(t, cpu.Run(1))
	test.ExpectEquality(t, cpu.LastException(), exceptions.SoftwareInterrupt)
	test.ExpectEquality(t, regs.Mode(), registers.SVC)
	test.ExpectEquality(t, regs.Flag(registers.FlagI), true)
	test.ExpectEquality(t, regs.Flag(registers.FlagZ), true)
	test.ExpectEquality(t, cpu.PC(), 0x08)
	test.ExpectEquality(t, regs.Slot(registers.R14svc), 0x1008|registers.FlagZ)
}

func TestUndefined(t *testing.T) {
	cpu, _ := newTestARM(t, 0x100, 0xe00000b0)

	test.DemandSuccess(t, cpu.Run(1))
	test.ExpectEquality(t, cpu.LastException(), exceptions.Undefined)
	test.ExpectEquality(t, cpu.PC(), 0x04)
}

func TestPrefetchAbort(t *testing.T) {
	cpu, _ := newTestARM(t, 0x20000)

	test.DemandSuccess(t, cpu.Run(1))
	test.ExpectEquality(t, cpu.LastException(), exceptions.PrefetchAbort)
	test.ExpectEquality(t, cpu.PC(), 0x0c)

	// user mode requires the execute permission
	cpu.Memory().Page(0x2000).Perms = memory.PermRead | memory.PermWrite
	cpu.Registers().SetMode(registers.USR)
	cpu.SetPC(0x2000)
	test.DemandSuccess(t, cpu.Run(1))
	test.ExpectEquality(t, cpu.LastException(), exceptions.PrefetchAbort)
	test.ExpectEquality(t, cpu.Registers().Mode(), registers.SVC)
}

func TestInterrupts(t *testing.T) {
	// mov r0, #1
	cpu, _ := newTestARM(t, 0x100, 0xe3a00001)
	regs := cpu.Registers()

	cpu.SetPin(arm.PinIRQ, true)
	test.DemandSuccess(t, cpu.Run(1))
	test.ExpectEquality(t, cpu.LastException(), exceptions.IRQ)
	test.ExpectEquality(t, regs.Mode(), registers.IRQ)
	test.ExpectEquality(t, regs.Flag(registers.FlagI), true)
	test.ExpectEquality(t, regs.Flag(registers.FlagF), false)
	test.ExpectEquality(t, cpu.PC(), 0x18)
	test.ExpectEquality(t, regs.Slot(registers.R14irq), 0x108|uint32(registers.SVC))
	test.ExpectEquality(t, regs.Effective(registers.LR), registers.R14irq)

	// the instruction was not executed
	test.ExpectEquality(t, regs.Get(0), 0)

	// FIQ takes priority over IRQ
	cpu.Reset()
	cpu.SetPC(0x100)
	cpu.SetPin(arm.PinIRQ, true)
	cpu.SetPin(arm.PinFIQ, true)
	test.DemandSuccess(t, cpu.Run(1))
	test.ExpectEquality(t, cpu.LastException(), exceptions.FIQ)
	test.ExpectEquality(t, regs.Mode(), registers.FIQ)
	test.ExpectEquality(t, regs.Flag(registers.FlagI), true)
	test.ExpectEquality(t, regs.Flag(registers.FlagF), true)
	test.ExpectEquality(t, cpu.PC(), 0x1c)
	test.ExpectEquality(t, regs.Effective(8), registers.R8fiq)

	// masked interrupts are ignored
	cpu.Reset()
	cpu.SetPC(0x100)
	regs.SetFlag(registers.FlagI, true)
	cpu.SetPin(arm.PinIRQ, true)
	test.DemandSuccess(t, cpu.Run(1))
	test.ExpectEquality(t, cpu.LastException(), exceptions.None)
	test.ExpectEquality(t, regs.Get(0), 1)
	test.ExpectEquality(t, cpu.Pins(), arm.PinIRQ)
}

func TestBreakpoint(t *testing.T) {
	// mov r0, #1
	// breakpoint
	cpu, _ := newTestARM(t, 0x100, 0xe3a00001, arm.BreakpointInstruction)
	regs := cpu.Registers()

	err := cpu.Run(10)
	test.ExpectSuccess(t, errors.Is(err, status.Breakpoint))
	test.ExpectEquality(t, regs.Get(0), 1)
	test.ExpectEquality(t, cpu.PC(), 0x104)
	test.ExpectEquality(t, regs.Mode(), registers.SVC)

	// running again stops at the same breakpoint
	err = cpu.Run(10)
	test.ExpectSuccess(t, errors.Is(err, status.Breakpoint))
	test.ExpectEquality(t, cpu.PC(), 0x104)
	test.ExpectEquality(t, cpu.LastException(), exceptions.None)

	// a zero budget does nothing
	test.ExpectSuccess(t, cpu.Run(0))
	test.ExpectEquality(t, cpu.PC(), 0x104)
}

func TestBreakpointIndefinite(t *testing.T) {
	cpu, _ := newTestARM(t, 0x100, arm.BreakpointInstruction)
	regs := cpu.Registers()

	// when running indefinitely the breakpoint is an ordinary software
	// interrupt
	test.ExpectSuccess(t, cpu.StepIndefinitely(1))
	test.ExpectEquality(t, cpu.LastException(), exceptions.SoftwareInterrupt)
	test.ExpectEquality(t, cpu.PC(), 0x08)
	test.ExpectEquality(t, regs.Mode(), registers.SVC)
	test.ExpectEquality(t, regs.Flag(registers.FlagI), true)
	test.ExpectEquality(t, regs.Slot(registers.R14svc), 0x108|uint32(registers.SVC))

	// the same instruction under a budget halts
	cpu.SetPC(0x100)
	err := cpu.Run(1)
	test.ExpectSuccess(t, errors.Is(err, status.Breakpoint))
	test.ExpectEquality(t, cpu.PC(), 0x100)
}

func TestWritePC(t *testing.T) {
	// movs pc, r0
	cpu, _ := newTestARM(t, 0x1000, 0xe1b0f000)
	regs := cpu.Registers()

	// user mode can change the condition flags but not the mode or the
	// interrupt flags
	regs.SetMode(registers.USR)
	regs.Set(0, 0xf0002000|registers.FlagI|uint32(registers.SVC))
	test.DemandSuccess(t, cpu.Run(1))
	test.ExpectEquality(t, cpu.PC(), 0x2000)
	test.ExpectEquality(t, regs.Mode(), registers.USR)
	test.ExpectEquality(t, regs.Flag(registers.FlagN|registers.FlagZ|registers.FlagC|registers.FlagV), true)
	test.ExpectEquality(t, regs.Flag(registers.FlagI), false)

	// privileged modes can change everything
	cpu.Reset()
	cpu.SetPC(0x1000)
	regs.Set(0, 0x00002000|uint32(registers.IRQ))
	test.DemandSuccess(t, cpu.Run(1))
	test.ExpectEquality(t, cpu.PC(), 0x2000)
	test.ExpectEquality(t, regs.Mode(), registers.IRQ)
	test.ExpectEquality(t, regs.Effective(registers.SP), registers.R13irq)
}

func TestWritePCNoFlags(t *testing.T) {
	// mov pc, r0
	cpu, _ := newTestARM(t, 0x1000, 0xe1a0f000)
	regs := cpu.Registers()

	regs.Set(0, 0xf0002000|uint32(registers.IRQ))
	test.DemandSuccess(t, cpu.Run(1))
	test.ExpectEquality(t, cpu.PC(), 0x2000)
	test.ExpectEquality(t, regs.Mode(), registers.SVC)
	test.ExpectEquality(t, regs.Flag(registers.FlagN), false)
}

func TestTEQP(t *testing.T) {
	// teqp pc, #0
	cpu, _ := newTestARM(t, 0x1000, 0xe33ff000)
	regs := cpu.Registers()
	regs.SetFlag(registers.FlagC, true)

	test.DemandSuccess(t, cpu.Run(1))
	test.ExpectEquality(t, regs.Mode(), registers.USR)
	test.ExpectEquality(t, regs.Flag(registers.FlagC), false)
	test.ExpectEquality(t, cpu.PC(), 0x1004)
}

func TestSwap(t *testing.T) {
	// swp r0, r1, [r2]
	// swpb r3, r1, [r2]
	cpu, _ := newTestARM(t, 0x100, 0xe1020091, 0xe1423091)
	regs := cpu.Registers()
	regs.Set(1, 0xaabbccdd)
	regs.Set(2, 0x2000)
	test.DemandSuccess(t, cpu.Memory().Poke(0x2000, 0x11223344))

	test.DemandSuccess(t, cpu.Run(1))
	test.ExpectEquality(t, regs.Get(0), 0x11223344)
	w, _ := cpu.Memory().Peek(0x2000)
	test.ExpectEquality(t, w, 0xaabbccdd)

	test.DemandSuccess(t, cpu.Run(1))
	test.ExpectEquality(t, regs.Get(3), 0xdd)
	w, _ = cpu.Memory().Peek(0x2000)
	test.ExpectEquality(t, w, 0xaabbccdd)
}

type testDevice struct {
	value  uint32
	writes []uint32
}

func (dev *testDevice) DeviceID() uint32 {
	return 0x54455354
}

func (dev *testDevice) Read(addr uint32, width memory.Width) uint32 {
	return dev.value + addr&memory.PageMask
}

func (dev *testDevice) Write(addr uint32, value uint32, width memory.Width) {
	dev.writes = append(dev.writes, value)
}

func TestDevice(t *testing.T) {
	// ldr r0, [r1]
	// str r2, [r1]
	cpu, _ := newTestARM(t, 0x100, 0xe5910000, 0xe5812000)
	regs := cpu.Registers()

	dev := &testDevice{value: 0x1000}
	test.DemandSuccess(t, cpu.AddHardware(dev))
	test.DemandSuccess(t, cpu.MapMemory(0, 0x3000, 0x4000))

	regs.Set(1, 0x3010)
	regs.Set(2, 99)
	test.DemandSuccess(t, cpu.Run(2))
	test.ExpectEquality(t, regs.Get(0), 0x1010)
	test.ExpectEquality(t, len(dev.writes), 1)
	test.ExpectEquality(t, dev.writes[0], 99)

	err := cpu.MapMemory(0, 0x3800, 0x5000)
	test.ExpectSuccess(t, errors.Is(err, status.AlreadyMapped))
	err = cpu.MapMemory(0, 0x0000, 0x1000)
	test.ExpectSuccess(t, errors.Is(err, status.InvalidArguments))
	err = cpu.MapMemory(1, 0x5000, 0x6000)
	test.ExpectSuccess(t, errors.Is(err, status.NoSuchDevice))
}

func TestHardwareManager(t *testing.T) {
	// cdp p7, 0, c1, c0, c0 (number of devices into cr1)
	// mrc p7, 0, r0, c1, c0
	// cdp p7, 0, c9, c0, c0 (register out of range)
	cpu, log := newTestARM(t, 0x100, 0xee001700, 0xee110710, 0xee009700)
	regs := cpu.Registers()

	test.DemandSuccess(t, cpu.AddHardware(&testDevice{}))
	test.DemandSuccess(t, cpu.AddHardware(&testDevice{}))
	regs.Set(0, 0xffff)

	test.DemandSuccess(t, cpu.Run(2))
	test.ExpectEquality(t, regs.Get(0), 2)

	test.DemandSuccess(t, cpu.Run(1))
	test.ExpectEquality(t, cpu.LastException(), exceptions.None)

	w := &test.CompareWriter{}
	log.Write(w)
	test.ExpectSuccess(t, w.Contains("hwmanager: arm: invalid arguments"))
}

func TestUnknownCoprocessor(t *testing.T) {
	// cdp p3, 0, c0, c0, c0
	// ldc p7, c0, [r0]
	cpu, log := newTestARM(t, 0x100, 0xee000300, 0xed900700)

	test.DemandSuccess(t, cpu.Run(2))
	test.ExpectEquality(t, cpu.LastException(), exceptions.None)
	test.ExpectEquality(t, cpu.PC(), 0x108)

	w := &test.CompareWriter{}
	log.Write(w)
	test.ExpectSuccess(t, w.Contains("no coprocessor 3"))
	test.ExpectSuccess(t, w.Contains("coprocessor data transfer"))
}
