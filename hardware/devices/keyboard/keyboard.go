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

package keyboard

import (
	"fmt"
	"sync"

	"github.com/jetsetilly/armv2/curated"
	"github.com/jetsetilly/armv2/hardware/memory"
)

// DeviceID is the value returned by the DeviceID() function.
const DeviceID = 0x41414141

// BufferSize is the number of key codes that can be pending at once.
const BufferSize = 16

// Register offsets from the start of the mapped range.
const (
	// reading returns the oldest pending key code or zero if no key is
	// pending. writing any value removes the oldest key code
	RegKey = 0x00

	// reading returns the number of pending key codes. writes are ignored
	RegCount = 0x04
)

// BufferFull is returned by KeyDown() when there is no space for the key code.
const BufferFull = "keyboard: buffer full (key %#02x dropped)"

// Keyboard is a simple memory mapped keyboard. Key codes are queued by the host
// with KeyDown() and are read by the emulated program.
//
// The interrupt function is called with true when a key code is pending and
// with false when the buffer becomes empty. It is normally connected to the
// IRQ pin of the processor.
type Keyboard struct {
	crit sync.Mutex

	buffer [BufferSize]uint8
	head   int
	count  int

	irq func(active bool)
}

// NewKeyboard is the preferred method of initialisation for the Keyboard type.
// The irq argument can be nil.
func NewKeyboard(irq func(active bool)) *Keyboard {
	return &Keyboard{
		irq: irq,
	}
}

func (kb *Keyboard) String() string {
	kb.crit.Lock()
	defer kb.crit.Unlock()
	return fmt.Sprintf("keyboard: %d pending", kb.count)
}

// DeviceID implements the memory.Device interface.
func (kb *Keyboard) DeviceID() uint32 {
	return DeviceID
}

// KeyDown adds the key code to the end of the buffer.
func (kb *Keyboard) KeyDown(key uint8) error {
	kb.crit.Lock()
	defer kb.crit.Unlock()

	if kb.count == BufferSize {
		return curated.Errorf(BufferFull, key)
	}

	kb.buffer[(kb.head+kb.count)%BufferSize] = key
	kb.count++

	if kb.count == 1 && kb.irq != nil {
		kb.irq(true)
	}

	return nil
}

// Pending returns the number of key codes in the buffer.
func (kb *Keyboard) Pending() int {
	kb.crit.Lock()
	defer kb.crit.Unlock()
	return kb.count
}

func (kb *Keyboard) register(addr uint32) uint32 {
	switch addr & memory.PageMask &^ 0x03 {
	case RegKey:
		if kb.count == 0 {
			return 0
		}
		return uint32(kb.buffer[kb.head])
	case RegCount:
		return uint32(kb.count)
	}
	return 0
}

// Read implements the memory.Device interface.
func (kb *Keyboard) Read(addr uint32, width memory.Width) uint32 {
	kb.crit.Lock()
	defer kb.crit.Unlock()

	v := kb.register(addr)
	if width == memory.Byte {
		return (v >> ((addr & 0x03) << 3)) & 0xff
	}
	return v
}

// Write implements the memory.Device interface.
func (kb *Keyboard) Write(addr uint32, value uint32, width memory.Width) {
	kb.crit.Lock()
	defer kb.crit.Unlock()

	if addr&memory.PageMask&^0x03 != RegKey || kb.count == 0 {
		return
	}

	kb.head = (kb.head + 1) % BufferSize
	kb.count--

	if kb.count == 0 && kb.irq != nil {
		kb.irq(false)
	}
}
