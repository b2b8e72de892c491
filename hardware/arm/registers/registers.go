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

package registers

import (
	"fmt"
	"strings"
)

// Mode of the processor. The mode is stored in the low two bits of R15.
type Mode uint32

// List of valid Mode values.
const (
	USR Mode = iota
	FIQ
	IRQ
	SVC
)

func (m Mode) String() string {
	switch m {
	case USR:
		return "USR"
	case FIQ:
		return "FIQ"
	case IRQ:
		return "IRQ"
	case SVC:
		return "SVC"
	}
	return "???"
}

// Privileged returns true for every mode except USR.
func (m Mode) Privileged() bool {
	return m != USR
}

// Named registers in the effective register set.
const (
	FP = 12
	SP = 13
	LR = 14
	PC = 15
)

// Storage slots of the banked registers in the actual register array. Slots
// zero to fifteen are the user mode registers.
const (
	R13svc = 16
	R14svc = 17
	R13irq = 18
	R14irq = 19
	R8fiq  = 20
	R9fiq  = 21
	R10fiq = 22
	R11fiq = 23
	R12fiq = 24
	R13fiq = 25
	R14fiq = 26

	NumActual    = 27
	NumEffective = 16
)

// Bits in R15.
const (
	FlagN uint32 = 0x80000000
	FlagZ uint32 = 0x40000000
	FlagC uint32 = 0x20000000
	FlagV uint32 = 0x10000000
	FlagI uint32 = 0x08000000
	FlagF uint32 = 0x04000000

	FlagsMask     uint32 = 0xfc000000
	ConditionMask uint32 = 0xf0000000
	ModeMask      uint32 = 0x00000003
	PCMask        uint32 = 0x03fffffc

	// the PSR is everything in R15 that isn't the program counter
	PSRMask = FlagsMask | ModeMask

	// the bits of R15 that cannot be changed by user mode software
	Protected = FlagI | FlagF | ModeMask
)

// LinkSlot returns the slot in the actual register array that holds R14 for
// the mode.
func LinkSlot(m Mode) int {
	switch m {
	case FIQ:
		return R14fiq
	case IRQ:
		return R14irq
	case SVC:
		return R14svc
	}
	return LR
}

// Bank is the register file of the processor. The actual array holds every
// register in every mode. The effective table maps the sixteen logical
// registers onto the actual array for the current mode.
//
// Register access should always go through the effective table with Get() and
// Set(). References to the actual array must not be kept across a mode
// change.
type Bank struct {
	actual    [NumActual]uint32
	effective [NumEffective]int
}

// NewBank is the preferred method of initialisation for the Bank type.
func NewBank() *Bank {
	b := &Bank{}
	b.Reset()
	return b
}

// Reset all registers to zero and put the processor into SVC mode.
func (b *Bank) Reset() {
	for i := range b.actual {
		b.actual[i] = 0
	}
	b.actual[PC] = uint32(SVC)
	b.rebank()
}

// the effective table is rebuilt completely on every mode change. slot 15 is
// never redirected
func (b *Bank) rebank() {
	for i := range b.effective {
		b.effective[i] = i
	}
	switch b.Mode() {
	case FIQ:
		for i := 8; i <= 14; i++ {
			b.effective[i] = R8fiq + i - 8
		}
	case IRQ:
		b.effective[SP] = R13irq
		b.effective[LR] = R14irq
	case SVC:
		b.effective[SP] = R13svc
		b.effective[LR] = R14svc
	}
}

// Get the value of register for the current mode. Register 15 returns the
// entire R15 word, including the PSR bits.
func (b *Bank) Get(reg int) uint32 {
	return b.actual[b.effective[reg]]
}

// Set the value of the register for the current mode. Setting register 15
// replaces the entire word, exactly as SetR15().
func (b *Bank) Set(reg int, v uint32) {
	if reg == PC {
		b.SetR15(v)
		return
	}
	b.actual[b.effective[reg]] = v
}

// GetUser returns the user mode value of the register regardless of the
// current mode.
func (b *Bank) GetUser(reg int) uint32 {
	return b.actual[reg]
}

// SetUser sets the user mode value of the register regardless of the current
// mode. Register 15 is treated the same as Set().
func (b *Bank) SetUser(reg int, v uint32) {
	if reg == PC {
		b.SetR15(v)
		return
	}
	b.actual[reg] = v
}

// Slot returns the value in the actual register array.
func (b *Bank) Slot(slot int) uint32 {
	return b.actual[slot]
}

// SetSlot sets the value in the actual register array. Slot 15 should not be
// set with this function.
func (b *Bank) SetSlot(slot int, v uint32) {
	b.actual[slot] = v
}

// Effective returns the slot in the actual register array that the register
// currently maps to.
func (b *Bank) Effective(reg int) int {
	return b.effective[reg]
}

// R15 returns the combined program counter and PSR.
func (b *Bank) R15() uint32 {
	return b.actual[PC]
}

// SetR15 replaces the entire R15 word. The mode is changed if necessary.
func (b *Bank) SetR15(v uint32) {
	m := b.Mode()
	b.actual[PC] = v
	if b.Mode() != m {
		b.rebank()
	}
}

// PC returns the program counter bits of R15.
func (b *Bank) PC() uint32 {
	return b.actual[PC] & PCMask
}

// SetPC changes the program counter bits of R15 only.
func (b *Bank) SetPC(addr uint32) {
	b.actual[PC] = (b.actual[PC] &^ PCMask) | (addr & PCMask)
}

// PSR returns the flag and mode bits of R15.
func (b *Bank) PSR() uint32 {
	return b.actual[PC] & PSRMask
}

// SetPSR changes the flag and mode bits of R15 only. The mode is changed if
// necessary.
func (b *Bank) SetPSR(v uint32) {
	b.SetR15((b.actual[PC] & PCMask) | (v & PSRMask))
}

// Mode returns the current processor mode.
func (b *Bank) Mode() Mode {
	return Mode(b.actual[PC] & ModeMask)
}

// SetMode changes the processor mode.
func (b *Bank) SetMode(m Mode) {
	b.SetR15((b.actual[PC] &^ ModeMask) | uint32(m))
}

// Flag returns true if the flag bit is set.
func (b *Bank) Flag(flag uint32) bool {
	return b.actual[PC]&flag == flag
}

// SetFlag sets or clears the flag bits.
func (b *Bank) SetFlag(flag uint32, set bool) {
	if set {
		b.actual[PC] |= flag
	} else {
		b.actual[PC] &^= flag
	}
}

// SetNZCV sets all four condition flags.
func (b *Bank) SetNZCV(n, z, c, v bool) {
	b.SetFlag(FlagN, n)
	b.SetFlag(FlagZ, z)
	b.SetFlag(FlagC, c)
	b.SetFlag(FlagV, v)
}

// SetConditionFlags replaces N, Z, C and V with the top four bits of v.
// Everything else in R15 is left alone.
func (b *Bank) SetConditionFlags(v uint32) {
	b.actual[PC] = (b.actual[PC] &^ ConditionMask) | (v & ConditionMask)
}

// FlagsString returns the flags of R15 as a string. Upper case letters
// indicate the flag is set.
func (b *Bank) FlagsString() string {
	s := strings.Builder{}
	for _, f := range []struct {
		flag uint32
		r    rune
	}{
		{FlagN, 'n'}, {FlagZ, 'z'}, {FlagC, 'c'}, {FlagV, 'v'}, {FlagI, 'i'}, {FlagF, 'f'},
	} {
		if b.Flag(f.flag) {
			s.WriteRune(f.r - 'a' + 'A')
		} else {
			s.WriteRune(f.r)
		}
	}
	return s.String()
}

// String returns the registers for the current mode in a four column layout.
func (b *Bank) String() string {
	s := strings.Builder{}
	for i := 0; i < NumEffective; i++ {
		if i > 0 {
			if i%4 == 0 {
				s.WriteString("\n")
			} else {
				s.WriteString("  ")
			}
		}
		s.WriteString(fmt.Sprintf("%-3s %08x", Label(i), b.Get(i)))
	}
	s.WriteString(fmt.Sprintf("\n%s %s pc=%08x", b.Mode(), b.FlagsString(), b.PC()))
	return s.String()
}

// Label returns the conventional name of a register.
func Label(reg int) string {
	switch reg {
	case FP:
		return "fp"
	case SP:
		return "sp"
	case LR:
		return "lr"
	case PC:
		return "pc"
	}
	return fmt.Sprintf("r%d", reg)
}
