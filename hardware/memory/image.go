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
	"encoding/binary"

	"github.com/jetsetilly/armv2/curated"
	"github.com/jetsetilly/armv2/hardware/status"
	"github.com/jetsetilly/armv2/logger"
)

// MinImageSize is the smallest acceptable boot image. The exception vectors
// occupy the first 0x20 bytes and there must be at least one more
// instruction.
const MinImageSize = 0x24

// LoadImage copies the boot image into memory starting at address zero.
// Permissions are ignored, meaning that the image can be loaded into page
// zero.
//
// An image that does not end on a word boundary is padded with zero bytes.
func (mem *Memory) LoadImage(data []byte) error {
	if len(data) < MinImageSize {
		return curated.Errorf("memory: %v: image too small (%d bytes)", status.IOError, len(data))
	}
	if uint64(len(data)) > uint64(mem.size) {
		return curated.Errorf("memory: %v: image (%d bytes) larger than memory", status.MemoryError, len(data))
	}

	if !aligned(len(data), 4) {
		padded := make([]byte, align(len(data), 4))
		copy(padded, data)
		data = padded
	}

	for i := 0; i < len(data); i += 4 {
		addr := uint32(i)
		pg := mem.pages[PageOf(addr)]
		if pg == nil || pg.device != nil {
			return curated.Errorf("memory: %v: cannot load image at %#08x", status.MemoryError, addr)
		}
		pg.words[(addr&PageMask)>>2] = binary.LittleEndian.Uint32(data[i:])
	}

	mem.log.Logf(logger.Allow, "memory", "loaded image of %d bytes", len(data))

	return nil
}
