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

package disassembly

import (
	"encoding/binary"
	"sync"

	"github.com/jetsetilly/armv2/curated"
	"github.com/jetsetilly/armv2/hardware/status"
	"github.com/jetsetilly/armv2/romloader"
)

// Peeker is the memory interface required by the disassembler. The
// memory.Memory type satisfies the interface.
type Peeker interface {
	Peek(addr uint32) (uint32, bool)
}

// Disassembly is a linear disassembly of a region of memory or of a boot
// image. Every word is disassembled as though it were an instruction.
type Disassembly struct {
	crit sync.Mutex

	// entries in address order. words that could not be read are not
	// included
	entries []*Entry
}

// FromMemory disassembles the memory from the start address up to but not
// including the end address. Words that cannot be peeked (unmapped or device
// pages) are skipped.
func FromMemory(mem Peeker, start uint32, end uint32) (*Disassembly, error) {
	if end <= start {
		return nil, curated.Errorf("disassembly: %v: empty range", status.InvalidArguments)
	}

	dsm := &Disassembly{}
	for addr := start &^ 0x03; addr < end; addr += 4 {
		w, ok := mem.Peek(addr)
		if !ok {
			continue
		}
		dsm.entries = append(dsm.entries, newEntry(addr, w))

		// prevent wrap around at the top of the address space
		if addr+4 < addr {
			break
		}
	}

	return dsm, nil
}

// FromImage disassembles the boot image specified by the loader. The origin
// is the address the image would be loaded at. Images are always loaded at
// address zero by the processor but a different origin is useful for
// examining code fragments.
func FromImage(ld romloader.Loader, origin uint32) (*Disassembly, error) {
	err := ld.Load()
	if err != nil {
		return nil, curated.Errorf("disassembly: %v", err)
	}

	data := ld.Data
	if len(data)%4 != 0 {
		padded := make([]byte, len(data)+4-len(data)%4)
		copy(padded, data)
		data = padded
	}

	dsm := &Disassembly{}
	for i := 0; i < len(data); i += 4 {
		dsm.entries = append(dsm.entries, newEntry(origin+uint32(i), binary.LittleEndian.Uint32(data[i:])))
	}

	return dsm, nil
}

// Len returns the number of entries in the disassembly.
func (dsm *Disassembly) Len() int {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()
	return len(dsm.entries)
}

// GetEntryByAddress returns the entry at the address. The address is forced
// to word alignment.
func (dsm *Disassembly) GetEntryByAddress(address uint32) (*Entry, bool) {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	address &^= 0x03

	// entries are in address order but may have gaps
	lo, hi := 0, len(dsm.entries)
	for lo < hi {
		m := (lo + hi) / 2
		if dsm.entries[m].Address < address {
			lo = m + 1
		} else {
			hi = m
		}
	}
	if lo < len(dsm.entries) && dsm.entries[lo].Address == address {
		return dsm.entries[lo], true
	}
	return nil, false
}

// UpdateEntry replaces the entry at the address with a new disassembly of
// the word. Used when memory has been changed since the disassembly was made.
// Returns false if there is no entry for the address.
func (dsm *Disassembly) UpdateEntry(address uint32, word uint32) bool {
	e, ok := dsm.GetEntryByAddress(address)
	if !ok {
		return false
	}

	dsm.crit.Lock()
	defer dsm.crit.Unlock()
	*e = *newEntry(e.Address, word)

	return true
}
