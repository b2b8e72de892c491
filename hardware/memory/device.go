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

// Width of a memory access.
type Width int

// List of valid Width values.
const (
	Word Width = iota
	Byte
)

func (w Width) String() string {
	if w == Byte {
		return "byte"
	}
	return "word"
}

// Device is the callback contract for hardware attached to the memory. Once
// mapped, every access to the device's pages is handed to the device instead
// of to the page storage.
//
// The address passed to Read() and Write() is the full physical address of
// the access. For word accesses the address is always word aligned. For byte
// accesses only the low eight bits of a Write() value are meaningful and a
// Read() should return the byte in the low eight bits.
//
// Device implementations must not call back into the processor's Run()
// function.
type Device interface {
	DeviceID() uint32
	Read(addr uint32, width Width) uint32
	Write(addr uint32, value uint32, width Width)
}

// Mapping records the range of physical memory claimed by a device. The range
// is half-open, End is the first address after the mapping.
type Mapping struct {
	Device Device
	Number int
	Start  uint32
	End    uint32
}
