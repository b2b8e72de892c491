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
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/armv2/curated"
	"github.com/jetsetilly/armv2/debugger/terminal"
	"github.com/jetsetilly/armv2/debugger/terminal/commandline"
	"github.com/jetsetilly/armv2/disassembly"
	"github.com/jetsetilly/armv2/hardware/arm"
	"github.com/jetsetilly/armv2/hardware/memory"
	"github.com/jetsetilly/armv2/paths"
)

const (
	defaultMemWords    = 16
	defaultDisasmCount = 8
	defaultLogEntries  = 10
)

// parseCommand tokenises and validates the input before acting on it. Empty
// input is not an error.
func (dbg *Debugger) parseCommand(input string) error {
	tokens := commandline.TokeniseInput(input)

	err := debuggerCommands.ValidateTokens(tokens)
	if err != nil {
		return err
	}

	command, ok := tokens.Get()
	if !ok {
		return nil
	}
	command = strings.ToUpper(command)

	switch command {
	default:
		return curated.Errorf("%s is not yet implemented", command)

	case cmdHelp:
		keyword, ok := tokens.Get()
		if ok {
			dbg.printLine(terminal.StyleHelp, "%s", debuggerCommands.Help(keyword))
		} else {
			dbg.printLine(terminal.StyleHelp, "%s", debuggerCommands.HelpOverview())
		}

	case cmdQuit:
		dbg.running = false

	case cmdStep:
		n := uint32(1)
		if arg, ok := tokens.Get(); ok {
			n, err = parseValue(arg)
			if err != nil {
				return curated.Errorf("step: %v", err)
			}
			if n == 0 {
				return curated.Errorf("step: instruction count must be greater than zero")
			}
		}
		brk, err := dbg.execute(int(n))
		if err != nil {
			return err
		}
		if brk {
			dbg.printLine(terminal.StyleFeedback, "break at %#08x", dbg.cpu.PC())
		}
		dbg.printInstruction()

	case cmdContinue:
		err := dbg.continueExecution()
		if err != nil {
			return err
		}
		dbg.printInstruction()

	case cmdPin:
		arg, _ := tokens.Get()
		pin := arm.PinFIQ
		if strings.EqualFold(arg, "IRQ") {
			pin = arm.PinIRQ
		}
		arg, _ = tokens.Get()
		dbg.cpu.SetPin(pin, strings.EqualFold(arg, "ON"))
		dbg.printLine(terminal.StyleFeedback, "%s %s", pin, strings.ToLower(arg))

	case cmdScript:
		fn, _ := tokens.Get()
		err := dbg.runScript(fn)
		if err != nil {
			return err
		}

	case cmdBreak:
		arg, _ := tokens.Get()
		addr, err := parseValue(arg)
		if err != nil {
			return curated.Errorf("break: %v", err)
		}
		err = dbg.breakpoints.add(addr)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "breakpoint added at %#08x", addr)

	case cmdClear:
		arg, _ := tokens.Get()
		if strings.EqualFold(arg, "ALL") {
			dbg.breakpoints.clear()
			dbg.printLine(terminal.StyleFeedback, "breakpoints cleared")
			return nil
		}
		addr, err := parseValue(arg)
		if err != nil {
			return curated.Errorf("clear: %v", err)
		}
		err = dbg.breakpoints.remove(addr)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "breakpoint at %#08x removed", addr)

	case cmdList:
		l := dbg.breakpoints.list()
		if len(l) == 0 {
			dbg.printLine(terminal.StyleFeedback, "no breakpoints")
			return nil
		}
		for i, addr := range l {
			dbg.printLine(terminal.StyleFeedback, "%2d: %#08x", i, addr)
		}

	case cmdRegs:
		dbg.printLine(terminal.StyleInstrument, "%s", dbg.cpu.Registers().String())
		dbg.printLine(terminal.StyleInstrument, "pins: %s", pinsString(dbg.cpu.Pins()))
		dbg.printLine(terminal.StyleInstrument, "last exception: %s", dbg.cpu.LastException())

	case cmdMem:
		arg, _ := tokens.Get()
		addr, err := parseValue(arg)
		if err != nil {
			return curated.Errorf("mem: %v", err)
		}
		words := uint32(defaultMemWords)
		if arg, ok := tokens.Get(); ok {
			words, err = parseValue(arg)
			if err != nil {
				return curated.Errorf("mem: %v", err)
			}
		}
		dbg.printMemory(addr&^0x03, words)

	case cmdDisasm:
		addr := dbg.cpu.PC()
		if arg, ok := tokens.Get(); ok {
			addr, err = parseValue(arg)
			if err != nil {
				return curated.Errorf("disasm: %v", err)
			}
		}
		n := uint32(defaultDisasmCount)
		if arg, ok := tokens.Get(); ok {
			n, err = parseValue(arg)
			if err != nil {
				return curated.Errorf("disasm: %v", err)
			}
		}
		dsm, err := disassembly.FromMemory(dbg.breakpoints, addr, addr+n*4)
		if err != nil {
			return err
		}
		if dsm.Len() == 0 {
			dbg.printLine(terminal.StyleFeedback, "%#08x is not in RAM", addr)
			return nil
		}
		dsm.Write(&termWriter{term: dbg.term, style: terminal.StyleInstruction},
			disassembly.WriteAttr{ByteCode: true, Notes: true})

	case cmdLog:
		n := uint32(defaultLogEntries)
		if arg, ok := tokens.Get(); ok {
			n, err = parseValue(arg)
			if err != nil {
				return curated.Errorf("log: %v", err)
			}
		}
		if dbg.log.Len() == 0 {
			dbg.printLine(terminal.StyleFeedback, "log is empty")
			return nil
		}
		dbg.log.Tail(&termWriter{term: dbg.term, style: terminal.StyleLog}, int(n))

	case cmdViz:
		fn, ok := tokens.Get()
		if !ok {
			fn = fmt.Sprintf("%s.dot", paths.UniqueFilename("viz", ""))
		}
		f, err := os.Create(fn)
		if err != nil {
			return curated.Errorf("viz: %v", err)
		}
		defer f.Close()
		memviz.Map(f, dbg.cpu.Registers(), dbg.cpu.Memory().Mappings())
		dbg.printLine(terminal.StyleFeedback, "graph written to %s", fn)
	}

	return nil
}

// printMemory prints the words from the address, four words per line. Words
// that are not in RAM are shown as dashes.
func (dbg *Debugger) printMemory(addr uint32, words uint32) {
	s := strings.Builder{}
	for i := uint32(0); i < words; i++ {
		a := addr + i*4
		if i%4 == 0 {
			if i > 0 {
				dbg.printLine(terminal.StyleInstrument, "%s", s.String())
				s.Reset()
			}
			s.WriteString(fmt.Sprintf("%#08x:", a))
		}
		if w, ok := dbg.breakpoints.Peek(a); ok {
			s.WriteString(fmt.Sprintf(" %08x", w))
		} else {
			s.WriteString(" --------")
		}
	}
	if s.Len() > 0 {
		dbg.printLine(terminal.StyleInstrument, "%s", s.String())
	}
}

func pinsString(p arm.Pin) string {
	var s []string
	for _, pin := range []arm.Pin{arm.PinFIQ, arm.PinIRQ} {
		if p&pin == pin {
			s = append(s, pin.String())
		}
	}
	if len(s) == 0 {
		return "none"
	}
	return strings.Join(s, " ")
}

// parseValue accepts decimal, hexadecimal (0x prefix) and octal (0 prefix)
// values. The value must fit in the address space.
func parseValue(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, curated.Errorf("not a valid value (%s)", s)
	}
	if v > memory.AddressMask {
		return 0, curated.Errorf("value out of range (%s)", s)
	}
	return uint32(v), nil
}
