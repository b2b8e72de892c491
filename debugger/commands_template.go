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
	"fmt"

	"github.com/jetsetilly/armv2/debugger/terminal/commandline"
)

// debugger keywords
const (
	cmdHelp = "HELP"
	cmdQuit = "QUIT"

	cmdStep     = "STEP"
	cmdContinue = "CONTINUE"
	cmdPin      = "PIN"
	cmdScript   = "SCRIPT"

	cmdBreak = "BREAK"
	cmdClear = "CLEAR"
	cmdList  = "LIST"

	cmdRegs   = "REGS"
	cmdMem    = "MEM"
	cmdDisasm = "DISASM"
	cmdLog    = "LOG"
	cmdViz    = "VIZ"
)

var commandTemplate = []commandline.Command{
	{Keyword: cmdQuit, Help: "Exits the debugger"},

	{Keyword: cmdStep, Args: "[n]", Max: 1,
		Help: "Execute the next instruction, or the next n instructions"},
	{Keyword: cmdContinue, Help: "Run until a breakpoint is reached or until interrupted with CTRL-C"},
	{Keyword: cmdPin, Args: "FIQ|IRQ ON|OFF", Min: 2, Max: 2,
		Options: [][]string{{"FIQ", "IRQ"}, {"ON", "OFF"}},
		Help:    "Raise or lower an interrupt line"},
	{Keyword: cmdScript, Args: "<file>", Min: 1, Max: 1,
		Help: "Run a Lua script. The script can call reg(), setreg(), peek(), poke(), pc(), step() and command()"},

	{Keyword: cmdBreak, Args: "<address>", Min: 1, Max: 1,
		Help: "Halt execution when the instruction at the address is reached"},
	{Keyword: cmdClear, Args: "<address>|ALL", Min: 1, Max: 1,
		Help: "Remove the breakpoint at the address, or all breakpoints"},
	{Keyword: cmdList, Help: "List breakpoints"},

	{Keyword: cmdRegs, Help: "Display the registers of the current mode"},
	{Keyword: cmdMem, Args: "<address> [words]", Min: 1, Max: 2,
		Help: "Display memory, four words per line"},
	{Keyword: cmdDisasm, Args: "[address] [n]", Max: 2,
		Help: "Disassemble n instructions from the address. Defaults to the current PC"},
	{Keyword: cmdLog, Args: "[n]", Max: 1,
		Help: "Display the most recent log entries"},
	{Keyword: cmdViz, Args: "[file]", Max: 1,
		Help: "Write a graphviz description of the register bank and memory map to file. A timestamped filename is used if none is given"},
}

var debuggerCommands *commandline.Commands

func init() {
	var err error

	debuggerCommands, err = commandline.ParseCommandTemplate(commandTemplate)
	if err != nil {
		panic(fmt.Errorf("error compiling command template: %v", err))
	}

	err = debuggerCommands.AddHelp(cmdHelp, "Lists commands and provides help for individual commands")
	if err != nil {
		panic(fmt.Errorf("error compiling command template: %v", err))
	}
}
