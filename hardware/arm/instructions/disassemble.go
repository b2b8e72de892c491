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
	"fmt"
	"strings"

	"github.com/jetsetilly/armv2/hardware/arm/alu"
	"github.com/jetsetilly/armv2/hardware/arm/registers"
)

func regLabel(r int) string {
	return registers.Label(r)
}

func sign(up bool) string {
	if up {
		return ""
	}
	return "-"
}

func shiftedRegister(rm int, typ alu.ShiftType, amount uint32) string {
	if amount == 0 {
		switch typ {
		case alu.LSL:
			return regLabel(rm)
		case alu.ROR:
			return fmt.Sprintf("%s, rrx", regLabel(rm))
		}
		amount = 32
	}
	return fmt.Sprintf("%s, %s #%d", regLabel(rm), typ, amount)
}

func (ins DataProcessing) operand2() string {
	if ins.Immediate {
		v, _ := alu.Immediate(ins.Value, ins.Rotate, false)
		return fmt.Sprintf("#%#x", v)
	}
	if ins.ShiftByRegister {
		return fmt.Sprintf("%s, %s %s", regLabel(ins.Rm), ins.Shift, regLabel(ins.Rs))
	}
	return shiftedRegister(ins.Rm, ins.Shift, ins.ShiftAmount)
}

func (ins DataProcessing) Disassemble(_ uint32) string {
	mnemonic := ins.Operation.String() + ins.Cond().String()

	if ins.Operation.Comparison() {
		// the S bit is implied for comparison operations. a destination of
		// R15 is the "P" form that writes the PSR
		if ins.Rd == registers.PC {
			mnemonic += "p"
		}
		return fmt.Sprintf("%s %s, %s", mnemonic, regLabel(ins.Rn), ins.operand2())
	}

	if ins.SetFlags {
		mnemonic += "s"
	}

	if ins.Operation.Unary() {
		return fmt.Sprintf("%s %s, %s", mnemonic, regLabel(ins.Rd), ins.operand2())
	}
	return fmt.Sprintf("%s %s, %s, %s", mnemonic, regLabel(ins.Rd), regLabel(ins.Rn), ins.operand2())
}

func (ins Multiply) Disassemble(_ uint32) string {
	mnemonic := "mul"
	if ins.Accumulate {
		mnemonic = "mla"
	}
	mnemonic += ins.Cond().String()
	if ins.SetFlags {
		mnemonic += "s"
	}
	if ins.Accumulate {
		return fmt.Sprintf("%s %s, %s, %s, %s", mnemonic, regLabel(ins.Rd), regLabel(ins.Rm), regLabel(ins.Rs), regLabel(ins.Rn))
	}
	return fmt.Sprintf("%s %s, %s, %s", mnemonic, regLabel(ins.Rd), regLabel(ins.Rm), regLabel(ins.Rs))
}

func (ins Swap) Disassemble(_ uint32) string {
	mnemonic := "swp" + ins.Cond().String()
	if ins.Byte {
		mnemonic += "b"
	}
	return fmt.Sprintf("%s %s, %s, [%s]", mnemonic, regLabel(ins.Rd), regLabel(ins.Rm), regLabel(ins.Rn))
}

func (ins SingleTransfer) Disassemble(addr uint32) string {
	mnemonic := "str"
	if ins.Load {
		mnemonic = "ldr"
	}
	mnemonic += ins.Cond().String()
	if ins.Byte {
		mnemonic += "b"
	}
	if !ins.Pre && ins.Writeback {
		mnemonic += "t"
	}

	var offset string
	if ins.RegisterOffset {
		offset = sign(ins.Up) + shiftedRegister(ins.Rm, ins.Shift, ins.ShiftAmount)
	} else {
		if ins.Offset == 0 && ins.Pre {
			// an immediate offset from the program counter is shown as the
			// absolute address
			if ins.Rn == registers.PC {
				return fmt.Sprintf("%s %s, [%#x]", mnemonic, regLabel(ins.Rd), addr+8)
			}
			wb := ""
			if ins.Writeback {
				wb = "!"
			}
			return fmt.Sprintf("%s %s, [%s]%s", mnemonic, regLabel(ins.Rd), regLabel(ins.Rn), wb)
		}
		if ins.Rn == registers.PC && ins.Pre && !ins.Writeback {
			target := addr + 8 + ins.Offset
			if !ins.Up {
				target = addr + 8 - ins.Offset
			}
			return fmt.Sprintf("%s %s, [%#x]", mnemonic, regLabel(ins.Rd), target)
		}
		offset = fmt.Sprintf("#%s%#x", sign(ins.Up), ins.Offset)
	}

	if ins.Pre {
		wb := ""
		if ins.Writeback {
			wb = "!"
		}
		return fmt.Sprintf("%s %s, [%s, %s]%s", mnemonic, regLabel(ins.Rd), regLabel(ins.Rn), offset, wb)
	}
	return fmt.Sprintf("%s %s, [%s], %s", mnemonic, regLabel(ins.Rd), regLabel(ins.Rn), offset)
}

// RegisterList returns the register list of a block transfer in assembler
// syntax. Consecutive registers are shown as a range.
func RegisterList(list uint16) string {
	var s []string
	for r := 0; r < 16; r++ {
		if list&(1<<r) == 0 {
			continue
		}
		end := r
		for end < 15 && list&(1<<(end+1)) != 0 {
			end++
		}
		switch {
		case end == r:
			s = append(s, regLabel(r))
		case end == r+1:
			s = append(s, regLabel(r), regLabel(end))
		default:
			s = append(s, fmt.Sprintf("%s-%s", regLabel(r), regLabel(end)))
		}
		r = end
	}
	return fmt.Sprintf("{%s}", strings.Join(s, ", "))
}

func (ins BlockTransfer) Disassemble(_ uint32) string {
	mnemonic := "stm"
	if ins.Load {
		mnemonic = "ldm"
	}
	mnemonic += ins.Cond().String()
	switch {
	case ins.Up && !ins.Pre:
		mnemonic += "ia"
	case ins.Up && ins.Pre:
		mnemonic += "ib"
	case !ins.Up && !ins.Pre:
		mnemonic += "da"
	default:
		mnemonic += "db"
	}

	wb := ""
	if ins.Writeback {
		wb = "!"
	}
	psr := ""
	if ins.PSR {
		psr = "^"
	}
	return fmt.Sprintf("%s %s%s, %s%s", mnemonic, regLabel(ins.Rn), wb, RegisterList(ins.List), psr)
}

func (ins Branch) Disassemble(addr uint32) string {
	mnemonic := "b"
	if ins.Link {
		mnemonic = "bl"
	}
	return fmt.Sprintf("%s%s %#x", mnemonic, ins.Cond(), ins.Target(addr)&registers.PCMask)
}

func (ins SoftwareInterrupt) Disassemble(_ uint32) string {
	return fmt.Sprintf("swi%s %#x", ins.Cond(), ins.Comment)
}

func (ins CoprocessorDataTransfer) Disassemble(_ uint32) string {
	mnemonic := "stc"
	if ins.Load {
		mnemonic = "ldc"
	}
	mnemonic += ins.Cond().String()
	if ins.Long {
		mnemonic += "l"
	}
	offset := fmt.Sprintf("#%s%#x", sign(ins.Up), ins.Offset)
	if ins.Pre {
		wb := ""
		if ins.Writeback {
			wb = "!"
		}
		return fmt.Sprintf("%s p%d, c%d, [%s, %s]%s", mnemonic, ins.CPNum, ins.CRd, regLabel(ins.Rn), offset, wb)
	}
	return fmt.Sprintf("%s p%d, c%d, [%s], %s", mnemonic, ins.CPNum, ins.CRd, regLabel(ins.Rn), offset)
}

func (ins CoprocessorDataOperation) Disassemble(_ uint32) string {
	return fmt.Sprintf("cdp%s p%d, %d, c%d, c%d, c%d, %d", ins.Cond(), ins.CPNum, ins.Operation, ins.CRd, ins.CRn, ins.CRm, ins.Aux)
}

func (ins CoprocessorRegisterTransfer) Disassemble(_ uint32) string {
	mnemonic := "mcr"
	if ins.Load {
		mnemonic = "mrc"
	}
	return fmt.Sprintf("%s%s p%d, %d, %s, c%d, c%d, %d", mnemonic, ins.Cond(), ins.CPNum, ins.Operation, regLabel(ins.Rd), ins.CRn, ins.CRm, ins.Aux)
}

func (ins Undefined) Disassemble(_ uint32) string {
	return fmt.Sprintf("undefined %#08x", ins.Word)
}
