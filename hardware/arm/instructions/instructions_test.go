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

package instructions_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/armv2/hardware/arm/alu"
	"github.com/jetsetilly/armv2/hardware/arm/instructions"
	"github.com/jetsetilly/armv2/test"
)

func TestConditions(t *testing.T) {
	// each mask has one bit for every combination of the flags. the index of
	// the bit is the flags as a four bit number NZCV
	truth := map[instructions.Condition]uint16{
		instructions.EQ: 0xf0f0,
		instructions.NE: 0x0f0f,
		instructions.CS: 0xcccc,
		instructions.CC: 0x3333,
		instructions.MI: 0xff00,
		instructions.PL: 0x00ff,
		instructions.VS: 0xaaaa,
		instructions.VC: 0x5555,
		instructions.HI: 0x0c0c,
		instructions.LS: 0xf3f3,
		instructions.GE: 0xaa55,
		instructions.LT: 0x55aa,
		instructions.GT: 0x0a05,
		instructions.LE: 0xf5fa,
		instructions.AL: 0xffff,
		instructions.NV: 0x0000,
	}

	for cond, mask := range truth {
		for i := 0; i < 16; i++ {
			n := i&0x08 == 0x08
			z := i&0x04 == 0x04
			c := i&0x02 == 0x02
			v := i&0x01 == 0x01
			expected := mask&(1<<i) != 0
			test.ExpectEquality(t, cond.Test(n, z, c, v), expected, fmt.Sprintf("%s (%04b)", cond, i))
		}
	}
}

func TestDecode(t *testing.T) {
	ins := instructions.Decode(0xe0810002)
	dp, ok := ins.(instructions.DataProcessing)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, dp.Operation, alu.ADD)
	test.ExpectEquality(t, dp.Rd, 0)
	test.ExpectEquality(t, dp.Rn, 1)
	test.ExpectEquality(t, dp.Rm, 2)
	test.ExpectEquality(t, dp.SetFlags, false)
	test.ExpectEquality(t, dp.Cond(), instructions.AL)

	ins = instructions.Decode(0xeb00003e)
	br, ok := ins.(instructions.Branch)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, br.Link, true)
	test.ExpectEquality(t, br.Offset, 0xf8)
	test.ExpectEquality(t, br.Target(0x100), 0x200)

	br = instructions.Decode(0xeafffffe).(instructions.Branch)
	test.ExpectEquality(t, br.Offset, -8)
	test.ExpectEquality(t, br.Target(0x100), 0x100)

	bt, ok := instructions.Decode(0xe92d4010).(instructions.BlockTransfer)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, bt.Count(), 2)
	test.ExpectEquality(t, bt.Pre, true)
	test.ExpectEquality(t, bt.Up, false)
	test.ExpectEquality(t, bt.Writeback, true)
	test.ExpectEquality(t, bt.Rn, 13)

	swi, ok := instructions.Decode(0x1f123456).(instructions.SoftwareInterrupt)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, swi.Comment, 0x123456)
	test.ExpectEquality(t, swi.Cond(), instructions.NE)

	_, ok = instructions.Decode(0xe00000f0).(instructions.Undefined)
	test.ExpectSuccess(t, ok)
	_, ok = instructions.Decode(0xe7910012).(instructions.Undefined)
	test.ExpectSuccess(t, ok)

	_, ok = instructions.Decode(0xed900700).(instructions.CoprocessorDataTransfer)
	test.ExpectSuccess(t, ok)
	_, ok = instructions.Decode(0xee010700).(instructions.CoprocessorDataOperation)
	test.ExpectSuccess(t, ok)
	rt, ok := instructions.Decode(0xee100710).(instructions.CoprocessorRegisterTransfer)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, rt.Load, true)
	test.ExpectEquality(t, rt.CPNum, 7)
}

func TestDisassembly(t *testing.T) {
	tests := []struct {
		word uint32
		addr uint32
		dis  string
	}{
		{0xe0810002, 0, "add r0, r1, r2"},
		{0x00910002, 0, "addeqs r0, r1, r2"},
		{0xe3a0001f, 0, "mov r0, #0x1f"},
		{0xe1a00211, 0, "mov r0, r1, lsl r2"},
		{0xe1a00061, 0, "mov r0, r1, rrx"},
		{0xe1a00121, 0, "mov r0, r1, lsr #2"},
		{0xe33ff003, 0, "teqp pc, #0x3"},
		{0xe1510002, 0, "cmp r1, r2"},
		{0xe0000291, 0, "mul r0, r1, r2"},
		{0xe0203291, 0, "mla r0, r1, r2, r3"},
		{0xe1020091, 0, "swp r0, r1, [r2]"},
		{0xe5910004, 0, "ldr r0, [r1, #0x4]"},
		{0xe4510001, 0, "ldrb r0, [r1], #-0x1"},
		{0xe59f0004, 0x100, "ldr r0, [0x10c]"},
		{0xe8a00003, 0, "stmia r0!, {r0, r1}"},
		{0xe92d4010, 0, "stmdb sp!, {r4, lr}"},
		{0xe8fd800f, 0, "ldmia sp!, {r0-r3, pc}^"},
		{0xeb00003e, 0x100, "bl 0x200"},
		{0x1afffffe, 0x100, "bne 0x100"},
		{0xef000010, 0, "swi 0x10"},
		{0xee010700, 0, "cdp p7, 0, c0, c1, c0, 0"},
		{0xee100710, 0, "mrc p7, 0, r0, c0, c0, 0"},
	}

	for _, tst := range tests {
		ins := instructions.Decode(tst.word)
		test.ExpectEquality(t, ins.Disassemble(tst.addr), tst.dis, fmt.Sprintf("%08x", tst.word))
		test.ExpectEquality(t, ins.Opcode(), tst.word)
	}
}

func TestRegisterList(t *testing.T) {
	test.ExpectEquality(t, instructions.RegisterList(0x0001), "{r0}")
	test.ExpectEquality(t, instructions.RegisterList(0x000f), "{r0-r3}")
	test.ExpectEquality(t, instructions.RegisterList(0x5005), "{r0, r2, fp, lr}")
	test.ExpectEquality(t, instructions.RegisterList(0x0000), "{}")
}
