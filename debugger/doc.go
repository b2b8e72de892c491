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

// Package debugger implements a line based debugger for the ARM processor.
//
// The debugger is given a processor and a terminal. Commands are read from
// the terminal until the QUIT command is given or until there is no more
// input.
//
//	dbg, err := debugger.NewDebugger(cpu, nil, plainterm.NewPlainTerminal(nil, nil), nil)
//	if err != nil {
//		return err
//	}
//	err = dbg.Start()
//
// Breakpoints replace the instruction in memory with the breakpoint
// instruction defined by the arm package. The original instruction is shown
// by the disassembler and the MEM command and is executed in place of the
// breakpoint when execution resumes. Breakpoints are removed from memory when
// Start() returns.
//
// The SCRIPT command runs a Lua script. The script can inspect and change the
// processor state and can run any debugger command with the command()
// function.
package debugger
