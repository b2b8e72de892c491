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

package memory

import (
	"github.com/jetsetilly/armv2/curated"
	"github.com/jetsetilly/armv2/hardware/status"
	"github.com/jetsetilly/armv2/logger"
)

// AddHardware registers a device. The returned value is the device number,
// which is used to identify the device in calls to MapMemory().
func (mem *Memory) AddHardware(dev Device) (int, error) {
	if dev == nil {
		return 0, curated.Errorf("memory: %v: nil device", status.InvalidArguments)
	}
	if len(mem.devices) >= HardwareDevicesMax {
		return 0, curated.Errorf("memory: %v", status.DeviceTableFull)
	}
	mem.devices = append(mem.devices, dev)
	mem.log.Logf(logger.Allow, "memory", "added device %d (id %#08x)", len(mem.devices)-1, dev.DeviceID())
	return len(mem.devices) - 1, nil
}

// NumDevices returns the number of registered devices.
func (mem *Memory) NumDevices() int {
	return len(mem.devices)
}

// Device returns the registered device with the device number.
func (mem *Memory) Device(number int) (Device, error) {
	if number < 0 || number >= len(mem.devices) {
		return nil, curated.Errorf("memory: %v: %d", status.NoSuchDevice, number)
	}
	return mem.devices[number], nil
}

// MapMemory installs the device as the interceptor for every page in the
// half-open range start to end. The range must not be empty and must not
// include page zero or the interrupt page. The pages in the range must exist
// and must not already be intercepted by a device.
//
// No pages are changed unless the entire range can be mapped.
func (mem *Memory) MapMemory(number int, start uint32, end uint32) error {
	if end <= start {
		return curated.Errorf("memory: %v: empty range", status.InvalidArguments)
	}

	dev, err := mem.Device(number)
	if err != nil {
		return err
	}

	pageStart := PageOf(start)
	pageEnd := PageOf(end - 1)

	if pageStart == 0 || pageEnd >= InterruptPage {
		return curated.Errorf("memory: %v: range %#08x to %#08x includes a reserved page", status.InvalidArguments, start, end)
	}

	for p := pageStart; p <= pageEnd; p++ {
		pg := mem.pages[p]
		if pg == nil {
			return curated.Errorf("memory: %v: page %#x does not exist", status.MemoryError, p)
		}
		if pg.device != nil {
			return curated.Errorf("memory: %v: page %#x", status.AlreadyMapped, p)
		}
	}

	for p := pageStart; p <= pageEnd; p++ {
		mem.pages[p].device = dev
	}

	mem.mappings = append([]Mapping{{
		Device: dev,
		Number: number,
		Start:  start,
		End:    end,
	}}, mem.mappings...)

	mem.log.Logf(logger.Allow, "memory", "mapped device %d to %#08x-%#08x", number, start, end)

	return nil
}

// Mappings returns a copy of the list of active mappings. The most recent
// mapping is first in the list.
func (mem *Memory) Mappings() []Mapping {
	m := make([]Mapping, len(mem.mappings))
	copy(m, mem.mappings)
	return m
}
