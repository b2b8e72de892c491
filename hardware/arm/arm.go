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
	"fmt"

	"github.com/jetsetilly/armv2/curated"
	"github.com/jetsetilly/armv2/hardware/arm/coprocessor"
	"github.com/jetsetilly/armv2/hardware/arm/coprocessor/hwmanager"
	"github.com/jetsetilly/armv2/hardware/arm/exceptions"
	"github.com/jetsetilly/armv2/hardware/arm/registers"
	"github.com/jetsetilly/armv2/hardware/memory"
	"github.com/jetsetilly/armv2/hardware/preferences"
	"github.com/jetsetilly/armv2/hardware/status"
	"github.com/jetsetilly/armv2/logger"
	"github.com/jetsetilly/armv2/romloader"
)

// SWIBreakpoint is the comment field of the SWI instruction that acts as a
// breakpoint. See Run() for how the breakpoint is handled.
const SWIBreakpoint = 0xfedead

// BreakpointInstruction is the complete instruction word for an
// unconditional breakpoint.
const BreakpointInstruction = 0xef000000 | SWIBreakpoint

// ARM is the ARMv2 processor and the memory attached to it.
type ARM struct {
	prefs *preferences.ARMPreferences
	log   *logger.Logger

	mem     *memory.Memory
	regs    *registers.Bank
	vectors *exceptions.Table

	coprocessors [coprocessor.MaxCoprocessors]coprocessor.Coprocessor

	// address of the instruction being executed. the PC bits of R15 are
	// always eight bytes ahead of this value during execution
	pc uint32

	pins Pin

	// preference values. sampled at the start of every call to Run()
	trace         bool
	logExceptions bool

	// the most recent exception delivered through the vector table
	lastException exceptions.Exception

	// number of instructions executed (including those that failed their
	// condition) since the processor was reset
	instructions uint64

	initialised bool
}

// NewARM is the preferred method of initialisation for the ARM type.
//
// The prefs argument can be nil, in which case execution tracing is off and
// exceptions are logged. A memorySize of zero means that the size should be
// taken from the preferences.
//
// The log argument can be nil, in which case the central logger is used.
func NewARM(prefs *preferences.ARMPreferences, log *logger.Logger, memorySize uint32) (*ARM, error) {
	if log == nil {
		log = logger.Central()
	}

	if memorySize == 0 && prefs != nil {
		memorySize = uint32(prefs.MemorySize.Get().(int))
	}

	mem, err := memory.NewMemory(log, memorySize)
	if err != nil {
		return nil, curated.Errorf("arm: %v", err)
	}

	arm := &ARM{
		prefs:         prefs,
		log:           log,
		mem:           mem,
		regs:          registers.NewBank(),
		vectors:       exceptions.NewTable(),
		logExceptions: true,
	}

	err = arm.RegisterCoprocessor(hwmanager.CoprocessorNumber, hwmanager.NewHwManager())
	if err != nil {
		mem.Release()
		return nil, err
	}

	arm.Reset()
	arm.updatePrefs()
	arm.initialised = true

	return arm, nil
}

// Reset the processor. Memory, devices and coprocessors are not affected.
//
// The processor starts in SVC mode with all flags clear and the first
// instruction executed is at address zero.
func (arm *ARM) Reset() {
	arm.regs.Reset()
	arm.pc = 0xfffffffc
	arm.pins = 0
	arm.lastException = exceptions.None
	arm.instructions = 0
}

// Teardown releases all memory and forgets all devices and coprocessors. The
// ARM instance cannot be used after Teardown().
func (arm *ARM) Teardown() {
	if !arm.initialised {
		return
	}
	arm.mem.Release()
	for i := range arm.coprocessors {
		arm.coprocessors[i] = nil
	}
	arm.initialised = false
}

func (arm *ARM) updatePrefs() {
	if arm.prefs == nil {
		return
	}
	arm.trace = arm.prefs.TraceExecution.Get().(bool)
	arm.logExceptions = arm.prefs.LogExceptions.Get().(bool)
}

// AllowLogging implements the logger.Permission interface. Only used for
// logging executed instructions.
func (arm *ARM) AllowLogging() bool {
	return arm.trace
}

func (arm *ARM) String() string {
	return arm.regs.String()
}

// LoadImage loads the boot image from the filename (or URL) into memory at
// address zero.
func (arm *ARM) LoadImage(filename string) error {
	if !arm.initialised {
		return curated.Errorf("arm: %v", status.InvalidState)
	}

	ld := romloader.NewLoader(filename)
	err := ld.Load()
	if err != nil {
		return curated.Errorf("arm: %v", err)
	}

	err = arm.mem.LoadImage(ld.Data)
	if err != nil {
		return curated.Errorf("arm: %v", err)
	}

	arm.log.Logf(logger.Allow, "ARM", "boot image %s (sha1 %s)", ld.ShortName(), ld.Hash)

	return nil
}

// AddHardware registers a device with the processor. The device is given the
// next device number, starting from zero. The device is not accessible until
// it has been mapped with MapMemory().
func (arm *ARM) AddHardware(dev memory.Device) error {
	if !arm.initialised {
		return curated.Errorf("arm: %v", status.InvalidState)
	}
	_, err := arm.mem.AddHardware(dev)
	if err != nil {
		return curated.Errorf("arm: %v", err)
	}
	return nil
}

// RegisterCoprocessor attaches the coprocessor to the coprocessor number. The
// hardware manager is registered automatically by NewARM().
func (arm *ARM) RegisterCoprocessor(number int, cp coprocessor.Coprocessor) error {
	if number < 0 || number >= coprocessor.MaxCoprocessors || cp == nil {
		return curated.Errorf("arm: %v: coprocessor %d", status.InvalidArguments, number)
	}
	if arm.coprocessors[number] != nil {
		return curated.Errorf("arm: %v: coprocessor %d already registered", status.InvalidState, number)
	}
	arm.coprocessors[number] = cp
	return nil
}

// Coprocessor returns the coprocessor attached to the coprocessor number.
// Returns nil if there is no coprocessor with that number.
func (arm *ARM) Coprocessor(number int) coprocessor.Coprocessor {
	if number < 0 || number >= coprocessor.MaxCoprocessors {
		return nil
	}
	return arm.coprocessors[number]
}

// Memory returns the processor's memory.
func (arm *ARM) Memory() *memory.Memory {
	return arm.mem
}

// Registers returns the processor's register bank.
func (arm *ARM) Registers() *registers.Bank {
	return arm.regs
}

// PC returns the address of the next instruction to be executed.
func (arm *ARM) PC() uint32 {
	return (arm.pc + 4) & registers.PCMask
}

// SetPC changes the address of the next instruction to be executed. The
// flags and mode are not affected.
func (arm *ARM) SetPC(addr uint32) {
	addr &= registers.PCMask
	arm.pc = addr - 4
	arm.regs.SetPC(addr + 8)
}

// LastException returns the most recent exception to be delivered through
// the vector table. Returns exceptions.None if there has been no exception
// since the last reset.
func (arm *ARM) LastException() exceptions.Exception {
	return arm.lastException
}

// Instructions returns the number of instructions executed since the last
// reset.
func (arm *ARM) Instructions() uint64 {
	return arm.instructions
}

// Register implements the coprocessor.Host interface.
func (arm *ARM) Register(reg int) uint32 {
	return arm.regs.Get(reg)
}

// SetRegister implements the coprocessor.Host interface. Setting register 15
// changes the program counter only.
func (arm *ARM) SetRegister(reg int, value uint32) {
	if reg == registers.PC {
		arm.writeR15(value, false)
		return
	}
	arm.regs.Set(reg, value)
}

// SetConditionFlags implements the coprocessor.Host interface.
func (arm *ARM) SetConditionFlags(value uint32) {
	arm.regs.SetConditionFlags(value)
}

// NumDevices implements the coprocessor.Host interface.
func (arm *ARM) NumDevices() int {
	return arm.mem.NumDevices()
}

// Device implements the coprocessor.Host interface.
func (arm *ARM) Device(number int) (memory.Device, error) {
	return arm.mem.Device(number)
}

// MapMemory implements the coprocessor.Host interface. It maps the device to
// the memory range from start up to but not including end.
func (arm *ARM) MapMemory(number int, start uint32, end uint32) error {
	if !arm.initialised {
		return curated.Errorf("arm: %v", status.InvalidState)
	}
	return arm.mem.MapMemory(number, start, end)
}

// coprocessor errors are logged with a tag naming the coprocessor if possible
func (arm *ARM) coprocessorTag(number int) string {
	if s, ok := arm.coprocessors[number].(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("CP%d", number)
}
