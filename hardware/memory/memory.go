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

// Memory is the page table and the devices registered with it.
type Memory struct {
	log *logger.Logger

	// size of allocated memory, not including the interrupt page
	size uint32

	pages [NumPageTables]*Page

	// registered devices. the index into the array is the device number
	devices []Device

	// active device mappings. the most recent mapping is at the head of the
	// list
	mappings []Mapping
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The requested size is rounded up to a whole number of pages. All allocated
// memory is zero filled.
//
// The log argument can be nil, in which case the central logger is used.
func NewMemory(log *logger.Logger, size uint32) (*Memory, error) {
	// the test is made before rounding so that the rounding can never
	// overflow
	if size > MaxRequest {
		return nil, curated.Errorf("memory: %v: requested size (%#x) too big", status.ValueError, size)
	}

	size = align(size, PageSize)
	if size == 0 {
		return nil, curated.Errorf("memory: %v: requested size is zero", status.ValueError)
	}

	if log == nil {
		log = logger.Central()
	}

	mem := &Memory{
		log:  log,
		size: size,
	}

	numPages := size >> PageSizeBits
	physical := make([]uint32, (size+PageSize)>>2)

	for i := uint32(0); i < numPages; i++ {
		mem.pages[i] = &Page{
			Perms: PermRead | PermWrite | PermExecute,
			words: physical[i*WordsPerPage : (i+1)*WordsPerPage],
		}
	}

	// the first page is never writable. the boot image goes here
	mem.pages[0].Perms &^= PermWrite

	// the interrupt page is placed at the end of physical memory but mapped
	// to the highest page of the address space
	mem.pages[InterruptPage] = &Page{
		Perms: PermRead,
		words: physical[numPages*WordsPerPage:],
	}

	mem.log.Logf(logger.Allow, "memory", "%d pages (%#x bytes)", numPages, size)

	return mem, nil
}

// Size returns the amount of allocated memory, not including the interrupt
// page.
func (mem *Memory) Size() uint32 {
	return mem.size
}

// Page returns the page containing the address. Returns nil if there is no
// page at that address.
func (mem *Memory) Page(addr uint32) *Page {
	if addr&^AddressMask != 0 {
		return nil
	}
	return mem.pages[PageOf(addr)]
}

// check the address and find the page for an access. the user argument says
// whether permissions should be checked
func (mem *Memory) access(addr uint32, width Width, perm Permission, user bool) (*Page, Fault) {
	if addr&^AddressMask != 0 {
		return nil, AddressRange
	}
	pg := mem.pages[PageOf(addr)]
	if pg == nil {
		return nil, Unmapped
	}
	if user && !pg.allows(perm) {
		return nil, PermissionDenied
	}
	if width == Word && addr&0x03 != 0 {
		return nil, Unaligned
	}
	return pg, NoFault
}

// Check returns the Fault that an access would cause without making the
// access. Useful for instructions that must not change any state if any part
// of the instruction is going to fail.
func (mem *Memory) Check(addr uint32, width Width, perm Permission, user bool) Fault {
	_, f := mem.access(addr, width, perm, user)
	return f
}

// Read a byte or word from memory. If user is true then the page must have
// the read permission.
//
// Byte reads are returned in the low eight bits of the result.
func (mem *Memory) Read(addr uint32, width Width, user bool) (uint32, Fault) {
	pg, f := mem.access(addr, width, PermRead, user)
	if f != NoFault {
		return 0, f
	}
	return pg.read(addr, width), NoFault
}

// Write a byte or word to memory. If user is true then the page must have the
// write permission.
func (mem *Memory) Write(addr uint32, value uint32, width Width, user bool) Fault {
	pg, f := mem.access(addr, width, PermWrite, user)
	if f != NoFault {
		return f
	}
	pg.write(addr, value, width)
	return NoFault
}

// Fetch an instruction word from memory. If user is true then the page must
// have the execute permission.
func (mem *Memory) Fetch(addr uint32, user bool) (uint32, Fault) {
	pg, f := mem.access(addr, Word, PermExecute, user)
	if f != NoFault {
		return 0, f
	}
	return pg.read(addr, Word), NoFault
}

// Peek returns the word at the address without regard to permissions. Device
// pages are not consulted and the function returns false for them, the same
// as for unmapped pages.
//
// The address is forced to word alignment.
func (mem *Memory) Peek(addr uint32) (uint32, bool) {
	addr &^= 0x03
	pg := mem.Page(addr)
	if pg == nil || pg.device != nil {
		return 0, false
	}
	return pg.words[(addr&PageMask)>>2], true
}

// Poke writes the word at the address without regard to permissions. Returns
// false if the address is unmapped or intercepted by a device.
//
// The address is forced to word alignment.
func (mem *Memory) Poke(addr uint32, value uint32) bool {
	addr &^= 0x03
	pg := mem.Page(addr)
	if pg == nil || pg.device != nil {
		return false
	}
	pg.words[(addr&PageMask)>>2] = value
	return true
}

// Release all memory and forget all devices and mappings. The Memory instance
// should not be used after calling Release().
func (mem *Memory) Release() {
	for i := range mem.pages {
		mem.pages[i] = nil
	}
	mem.devices = nil
	mem.mappings = nil
	mem.size = 0
}
