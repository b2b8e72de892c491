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

package alu

import "math/bits"

// ShiftType is the type of shift performed by the barrel shifter.
type ShiftType int

// List of valid ShiftType values. The values are the same as the encoding in
// bits 5 and 6 of a data processing instruction.
const (
	LSL ShiftType = iota
	LSR
	ASR
	ROR
)

func (t ShiftType) String() string {
	switch t {
	case LSL:
		return "lsl"
	case LSR:
		return "lsr"
	case ASR:
		return "asr"
	case ROR:
		return "ror"
	}
	return "???"
}

// Shift a value with the barrel shifter. The carry argument is the current
// value of the carry flag and the immediate argument indicates whether the
// amount was encoded in the instruction rather than read from a register.
//
// An encoded amount of zero has special meaning for LSR, ASR and ROR. For
// the first two it means a shift of 32. For ROR it means RRX, a 33bit rotate
// through the carry flag. A register amount of zero leaves the value and the
// carry unchanged for all shift types.
//
// Rotate amounts greater than 32 are reduced to the amount modulo 32.
func Shift(typ ShiftType, value uint32, amount uint32, carry bool, immediate bool) (uint32, bool) {
	switch typ {
	case LSL:
		switch {
		case amount == 0:
			return value, carry
		case amount < 32:
			return value << amount, value&(1<<(32-amount)) != 0
		case amount == 32:
			return 0, value&0x01 == 0x01
		}
		return 0, false

	case LSR:
		if amount == 0 {
			if !immediate {
				return value, carry
			}
			amount = 32
		}
		switch {
		case amount < 32:
			return value >> amount, value&(1<<(amount-1)) != 0
		case amount == 32:
			return 0, value&0x80000000 == 0x80000000
		}
		return 0, false

	case ASR:
		if amount == 0 {
			if !immediate {
				return value, carry
			}
			amount = 32
		}
		if amount >= 32 {
			if value&0x80000000 == 0x80000000 {
				return 0xffffffff, true
			}
			return 0, false
		}
		return uint32(int32(value) >> amount), value&(1<<(amount-1)) != 0

	case ROR:
		if amount == 0 {
			if !immediate {
				return value, carry
			}

			// RRX
			r := value >> 1
			if carry {
				r |= 0x80000000
			}
			return r, value&0x01 == 0x01
		}

		// it's not clear what the hardware does with very large rotate
		// amounts. we take the amount modulo 32
		if amount > 32 {
			amount &= 0x1f
			if amount == 0 {
				return value, carry
			}
		}

		if amount == 32 {
			return value, value&0x80000000 == 0x80000000
		}
		return bits.RotateLeft32(value, -int(amount)), value&(1<<(amount-1)) != 0
	}

	return value, carry
}

// Immediate returns the value of an immediate operand. The eight bit value is
// rotated right by twice the rotate field. If there is no rotation the carry
// is unchanged, otherwise the carry is bit 31 of the result.
func Immediate(value uint32, rotate uint32, carry bool) (uint32, bool) {
	r := (rotate & 0x0f) << 1
	if r == 0 {
		return value & 0xff, carry
	}
	v := bits.RotateLeft32(value&0xff, -int(r))
	return v, v&0x80000000 == 0x80000000
}
