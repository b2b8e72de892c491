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

// Page is a single entry in the page table.
type Page struct {
	Perms Permission

	// the page's backing storage. for pages that are intercepted by a device
	// the storage remains allocated but is not accessible
	words []uint32

	// if device is not nil then all accesses are intercepted
	device Device
}

// Device returns the device that intercepts accesses to the page. Returns nil
// if the page is not intercepted.
func (pg *Page) Device() Device {
	return pg.device
}

func (pg *Page) allows(perm Permission) bool {
	return pg.Perms&perm == perm
}

func (pg *Page) read(addr uint32, width Width) uint32 {
	if pg.device != nil {
		return pg.device.Read(addr, width)
	}
	w := pg.words[(addr&PageMask)>>2]
	if width == Byte {
		return (w >> ((addr & 0x03) << 3)) & 0xff
	}
	return w
}

func (pg *Page) write(addr uint32, value uint32, width Width) {
	if pg.device != nil {
		if width == Byte {
			value &= 0xff
		}
		pg.device.Write(addr, value, width)
		return
	}
	idx := (addr & PageMask) >> 2
	if width == Byte {
		shift := (addr & 0x03) << 3
		pg.words[idx] = (pg.words[idx] &^ (0xff << shift)) | ((value & 0xff) << shift)
		return
	}
	pg.words[idx] = value
}
