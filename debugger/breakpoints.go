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

package debugger

import (
	"maps"
	"slices"

	"github.com/jetsetilly/armv2/curated"
	"github.com/jetsetilly/armv2/hardware/arm"
	"github.com/jetsetilly/armv2/hardware/memory"
)

// breakpoints are implemented by replacing the instruction at the address with
// the breakpoint instruction. the original word is kept so that it can be
// restored or executed in its place.
type breakpoints struct {
	mem *memory.Memory

	// original instruction word indexed by address
	patched map[uint32]uint32
}

func newBreakpoints(mem *memory.Memory) *breakpoints {
	return &breakpoints{
		mem:     mem,
		patched: make(map[uint32]uint32),
	}
}

func (bp *breakpoints) add(addr uint32) error {
	if addr&0x03 != 0 {
		return curated.Errorf("break: address is not word aligned (%#08x)", addr)
	}
	if _, ok := bp.patched[addr]; ok {
		return curated.Errorf("break: already exists (%#08x)", addr)
	}

	w, ok := bp.mem.Peek(addr)
	if !ok {
		return curated.Errorf("break: address is not in RAM (%#08x)", addr)
	}
	if w == arm.BreakpointInstruction {
		return curated.Errorf("break: address already contains a breakpoint instruction (%#08x)", addr)
	}

	bp.patched[addr] = w
	bp.mem.Poke(addr, arm.BreakpointInstruction)

	return nil
}

func (bp *breakpoints) remove(addr uint32) error {
	w, ok := bp.patched[addr]
	if !ok {
		return curated.Errorf("clear: no breakpoint at %#08x", addr)
	}
	bp.mem.Poke(addr, w)
	delete(bp.patched, addr)
	return nil
}

func (bp *breakpoints) clear() {
	for addr, w := range bp.patched {
		bp.mem.Poke(addr, w)
	}
	clear(bp.patched)
}

// list returns the breakpoint addresses in order.
func (bp *breakpoints) list() []uint32 {
	return slices.Sorted(maps.Keys(bp.patched))
}

// original returns the word that was replaced by the breakpoint at the address.
func (bp *breakpoints) original(addr uint32) (uint32, bool) {
	w, ok := bp.patched[addr]
	return w, ok
}

// Peek implements the disassembly.Peeker interface. Breakpoints are hidden
// from the disassembler.
func (bp *breakpoints) Peek(addr uint32) (uint32, bool) {
	if w, ok := bp.patched[addr&^0x03]; ok {
		return w, true
	}
	return bp.mem.Peek(addr)
}
