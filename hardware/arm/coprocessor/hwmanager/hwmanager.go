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

package hwmanager

import (
	"github.com/jetsetilly/armv2/curated"
	"github.com/jetsetilly/armv2/hardware/arm/coprocessor"
	"github.com/jetsetilly/armv2/hardware/arm/registers"
	"github.com/jetsetilly/armv2/hardware/status"
)

// CoprocessorNumber is the coprocessor slot the hardware manager is normally
// attached to.
const CoprocessorNumber = 7

// NumRegisters is the number of hardware manager registers.
const NumRegisters = 4

// Data operation opcodes.
const (
	// crd = number of registered devices
	NumDevices uint32 = iota

	// map device crd to the memory from crm to crn. the status code of the
	// operation is stored in aux
	MapMemory

	// cr0 = id of device crd
	GetDeviceID
)

// Register transfer opcodes.
const (
	// move between the processor register and register crn
	MovRegister uint32 = iota
)

// HwManager is the hardware manager coprocessor.
type HwManager struct {
	Regs [NumRegisters]uint32
}

// NewHwManager is the preferred method of initialisation for the HwManager
// type.
func NewHwManager() *HwManager {
	return &HwManager{}
}

func (hw *HwManager) String() string {
	return "hwmanager"
}

// NumRegisters implements the coprocessor.Bounded interface.
func (hw *HwManager) NumRegisters() int {
	return NumRegisters
}

// DataOperation implements the coprocessor.Coprocessor interface.
func (hw *HwManager) DataOperation(host coprocessor.Host, crm uint32, aux uint32, crd uint32, crn uint32, opcode uint32) error {
	if crd >= NumRegisters || crm >= NumRegisters || crn >= NumRegisters || aux >= NumRegisters {
		return curated.Errorf("hwmanager: %v", status.InvalidArguments)
	}

	switch opcode {
	case NumDevices:
		hw.Regs[crd] = uint32(host.NumDevices())
		return nil

	case MapMemory:
		err := host.MapMemory(int(hw.Regs[crd]), hw.Regs[crm], hw.Regs[crn])
		hw.Regs[aux] = status.Of(err)
		if err != nil {
			return curated.Errorf("hwmanager: %v", err)
		}
		return nil

	case GetDeviceID:
		dev, err := host.Device(int(hw.Regs[crd]))
		if err != nil {
			hw.Regs[0] = status.NoSuchDevice.Code()
			return curated.Errorf("hwmanager: %v", err)
		}
		hw.Regs[0] = dev.DeviceID()
		return nil
	}

	return curated.Errorf("hwmanager: %v: data operation %d", status.UnknownOpcode, opcode)
}

// RegisterTransfer implements the coprocessor.Coprocessor interface.
func (hw *HwManager) RegisterTransfer(host coprocessor.Host, crm uint32, aux uint32, rd uint32, crn uint32, opcode uint32, load bool) error {
	if crn >= NumRegisters || rd > registers.PC {
		return curated.Errorf("hwmanager: %v", status.InvalidArguments)
	}

	switch opcode {
	case MovRegister:
		if load {
			// loading into the program counter sets the flags only
			if rd == registers.PC {
				host.SetConditionFlags(hw.Regs[crn])
			} else {
				host.SetRegister(int(rd), hw.Regs[crn])
			}
		} else {
			hw.Regs[crn] = host.Register(int(rd))
		}
		return nil
	}

	return curated.Errorf("hwmanager: %v: register transfer %d", status.UnknownOpcode, opcode)
}
