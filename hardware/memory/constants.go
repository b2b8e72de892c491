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

// Layout of the physical address space.
const (
	PageSizeBits  = 12
	PageSize      = 1 << PageSizeBits
	PageMask      = PageSize - 1
	WordsPerPage  = PageSize >> 2
	AddressBits   = 26
	MaxMemory     = 1 << AddressBits
	AddressMask   = MaxMemory - 1
	NumPageTables = 1 << (AddressBits - PageSizeBits)

	// the highest page is reserved for the interrupt status page
	InterruptPage = NumPageTables - 1

	// the largest amount of memory that can be requested. the reserved page
	// is not included
	MaxRequest = MaxMemory - PageSize

	// maximum number of devices that can be registered with AddHardware()
	HardwareDevicesMax = 32
)

// PageOf returns the page index for an address.
func PageOf(addr uint32) uint32 {
	return addr >> PageSizeBits
}
