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

package instructions

import (
	"github.com/jetsetilly/armv2/hardware/arm/alu"
)

func bit(w uint32, b uint) bool {
	return w&(1<<b) != 0
}

func reg(w uint32, lsb uint) int {
	return int((w >> lsb) & 0x0f)
}

// Decode an instruction word.
func Decode(w uint32) Instruction {
	b := base{Word: w}

	switch (w >> 26) & 0x03 {
	case 0:
		if w&0x0fc000f0 == 0x00000090 {
			return Multiply{
				base:       b,
				Accumulate: bit(w, 21),
				SetFlags:   bit(w, 20),
				Rd:         reg(w, 16),
				Rn:         reg(w, 12),
				Rs:         reg(w, 8),
				Rm:         reg(w, 0),
			}
		}

		if w&0x0fb00ff0 == 0x01000090 {
			return Swap{
				base: b,
				Byte: bit(w, 22),
				Rn:   reg(w, 16),
				Rd:   reg(w, 12),
				Rm:   reg(w, 0),
			}
		}

		// a register shifted by a register never has bit 7 set
		if w&0x02000090 == 0x00000090 {
			return Undefined{base: b}
		}

		ins := DataProcessing{
			base:      b,
			Operation: alu.Opcode((w >> 21) & 0x0f),
			SetFlags:  bit(w, 20),
			Rn:        reg(w, 16),
			Rd:        reg(w, 12),
			Immediate: bit(w, 25),
		}
		if ins.Immediate {
			ins.Value = w & 0xff
			ins.Rotate = (w >> 8) & 0x0f
		} else {
			ins.Rm = reg(w, 0)
			ins.Shift = alu.ShiftType((w >> 5) & 0x03)
			ins.ShiftByRegister = bit(w, 4)
			if ins.ShiftByRegister {
				ins.Rs = reg(w, 8)
			} else {
				ins.ShiftAmount = (w >> 7) & 0x1f
			}
		}
		return ins

	case 1:
		ins := SingleTransfer{
			base:           b,
			RegisterOffset: bit(w, 25),
			Pre:            bit(w, 24),
			Up:             bit(w, 23),
			Byte:           bit(w, 22),
			Writeback:      bit(w, 21),
			Load:           bit(w, 20),
			Rn:             reg(w, 16),
			Rd:             reg(w, 12),
		}
		if ins.RegisterOffset {
			// shifting by a register is not possible for transfers
			if bit(w, 4) {
				return Undefined{base: b}
			}
			ins.Rm = reg(w, 0)
			ins.Shift = alu.ShiftType((w >> 5) & 0x03)
			ins.ShiftAmount = (w >> 7) & 0x1f
		} else {
			ins.Offset = w & 0xfff
		}
		return ins

	case 2:
		if bit(w, 25) {
			// sign extend the 24 bit field and multiply by four
			return Branch{
				base:   b,
				Link:   bit(w, 24),
				Offset: int32(w<<8) >> 6,
			}
		}
		return BlockTransfer{
			base:      b,
			Pre:       bit(w, 24),
			Up:        bit(w, 23),
			PSR:       bit(w, 22),
			Writeback: bit(w, 21),
			Load:      bit(w, 20),
			Rn:        reg(w, 16),
			List:      uint16(w),
		}
	}

	if w&0x0f000000 == 0x0f000000 {
		return SoftwareInterrupt{
			base:    b,
			Comment: w & 0x00ffffff,
		}
	}

	if !bit(w, 25) {
		return CoprocessorDataTransfer{
			base:      b,
			Pre:       bit(w, 24),
			Up:        bit(w, 23),
			Long:      bit(w, 22),
			Writeback: bit(w, 21),
			Load:      bit(w, 20),
			Rn:        reg(w, 16),
			CRd:       reg(w, 12),
			CPNum:     reg(w, 8),
			Offset:    (w & 0xff) << 2,
		}
	}

	if bit(w, 4) {
		return CoprocessorRegisterTransfer{
			base:      b,
			Operation: (w >> 21) & 0x07,
			Load:      bit(w, 20),
			CRn:       reg(w, 16),
			Rd:        reg(w, 12),
			CPNum:     reg(w, 8),
			Aux:       (w >> 5) & 0x07,
			CRm:       reg(w, 0),
		}
	}

	return CoprocessorDataOperation{
		base:      b,
		Operation: (w >> 20) & 0x0f,
		CRn:       reg(w, 16),
		CRd:       reg(w, 12),
		CPNum:     reg(w, 8),
		Aux:       (w >> 5) & 0x07,
		CRm:       reg(w, 0),
	}
}
