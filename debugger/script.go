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
	"strings"

	"github.com/jetsetilly/armv2/curated"
	"github.com/jetsetilly/armv2/debugger/terminal"
	"github.com/jetsetilly/armv2/hardware/arm/registers"
	lua "github.com/yuin/gopher-lua"
)

// runScript executes the Lua script in the named file. The script has access
// to the processor through the functions registered by scriptBindings().
// Scripts cannot run other scripts.
func (dbg *Debugger) runScript(filename string) error {
	if dbg.inScript {
		return curated.Errorf("script: scripts cannot be nested")
	}
	dbg.inScript = true
	defer func() {
		dbg.inScript = false
	}()

	L := lua.NewState()
	defer L.Close()

	dbg.scriptBindings(L)

	err := L.DoFile(filename)
	if err != nil {
		return curated.Errorf("script: %v", err)
	}

	return nil
}

func (dbg *Debugger) scriptBindings(L *lua.LState) {
	// print writes to the terminal rather than to stdout
	L.SetGlobal("print", L.NewFunction(func(L *lua.LState) int {
		var s []string
		for i := 1; i <= L.GetTop(); i++ {
			s = append(s, L.Get(i).String())
		}
		dbg.printLine(terminal.StyleFeedback, "%s", strings.Join(s, "\t"))
		return 0
	}))

	// reg(n) returns the value of register n in the current mode
	L.SetGlobal("reg", L.NewFunction(func(L *lua.LState) int {
		r := L.CheckInt(1)
		if r < 0 || r >= registers.NumEffective {
			L.ArgError(1, "no such register")
			return 0
		}
		L.Push(lua.LNumber(dbg.cpu.Register(r)))
		return 1
	}))

	// setreg(n, v) sets register n in the current mode
	L.SetGlobal("setreg", L.NewFunction(func(L *lua.LState) int {
		r := L.CheckInt(1)
		if r < 0 || r >= registers.NumEffective {
			L.ArgError(1, "no such register")
			return 0
		}
		dbg.cpu.SetRegister(r, uint32(L.CheckNumber(2)))
		return 0
	}))

	// pc() returns the address of the next instruction to be executed
	L.SetGlobal("pc", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(dbg.cpu.PC()))
		return 1
	}))

	// peek(addr) returns the word at the address or nil if the address is
	// not in RAM
	L.SetGlobal("peek", L.NewFunction(func(L *lua.LState) int {
		w, ok := dbg.breakpoints.Peek(uint32(L.CheckNumber(1)))
		if !ok {
			L.Push(lua.LNil)
			return 1
		}
		L.Push(lua.LNumber(w))
		return 1
	}))

	// poke(addr, v) writes the word to the address. returns false if the
	// address is not in RAM
	L.SetGlobal("poke", L.NewFunction(func(L *lua.LState) int {
		addr := uint32(L.CheckNumber(1)) &^ 0x03
		v := uint32(L.CheckNumber(2))

		// poking a breakpoint address changes the instruction that will be
		// executed in place of the breakpoint
		if _, ok := dbg.breakpoints.original(addr); ok {
			dbg.breakpoints.patched[addr] = v
			L.Push(lua.LTrue)
			return 1
		}

		L.Push(lua.LBool(dbg.cpu.Memory().Poke(addr, v)))
		return 1
	}))

	// step(n) executes n instructions (default one). returns true if
	// execution stopped at a breakpoint
	L.SetGlobal("step", L.NewFunction(func(L *lua.LState) int {
		n := L.OptInt(1, 1)
		if n <= 0 {
			L.ArgError(1, "instruction count must be greater than zero")
			return 0
		}
		brk, err := dbg.execute(n)
		if err != nil {
			L.RaiseError("%v", err)
			return 0
		}
		L.Push(lua.LBool(brk))
		return 1
	}))

	// command(s) runs a debugger command
	L.SetGlobal("command", L.NewFunction(func(L *lua.LState) int {
		err := dbg.parseInput(L.CheckString(1))
		if err != nil {
			L.RaiseError("%v", err)
		}
		return 0
	}))
}
