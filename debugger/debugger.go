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
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/armv2/curated"
	"github.com/jetsetilly/armv2/debugger/terminal"
	"github.com/jetsetilly/armv2/debugger/terminal/commandline"
	"github.com/jetsetilly/armv2/disassembly"
	"github.com/jetsetilly/armv2/hardware/arm"
	"github.com/jetsetilly/armv2/hardware/status"
	"github.com/jetsetilly/armv2/logger"
	"github.com/jetsetilly/armv2/prefs"
)

// the number of instructions executed between checks for the interrupt
// signal when continuing
const continueQuantum = 100000

// Debugger is the interactive front end to the processor.
type Debugger struct {
	cpu   *arm.ARM
	log   *logger.Logger
	term  terminal.Terminal
	prefs *Preferences

	breakpoints *breakpoints

	// the most recent call to the processor stopped at a breakpoint
	atBreak bool

	// a script is being run by the SCRIPT command
	inScript bool

	// set to false by the QUIT command
	running bool
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type. The log should be the same log given to the processor. A nil log means
// the central log. A nil prefs argument will use the preferences from the
// default preferences file.
func NewDebugger(cpu *arm.ARM, log *logger.Logger, term terminal.Terminal, p *Preferences) (*Debugger, error) {
	if cpu == nil || term == nil {
		return nil, curated.Errorf("debugger: %v", status.InvalidArguments)
	}

	if log == nil {
		log = logger.Central()
	}

	if p == nil {
		var err error
		p, err = NewPreferences("")
		if err != nil {
			return nil, curated.Errorf("debugger: %v", err)
		}
	}

	dbg := &Debugger{
		cpu:         cpu,
		log:         log,
		term:        term,
		prefs:       p,
		breakpoints: newBreakpoints(cpu.Memory()),
	}

	dbg.prefs.EchoLog.SetHookPost(func(v prefs.Value) error {
		dbg.setEchoLog(v.(bool))
		return nil
	})
	dbg.setEchoLog(dbg.prefs.EchoLog.Get().(bool))

	return dbg, nil
}

func (dbg *Debugger) setEchoLog(echo bool) {
	if echo {
		dbg.log.SetEcho(&termWriter{term: dbg.term, style: terminal.StyleLog})
	} else {
		dbg.log.SetEcho(nil)
	}
}

// Start the input loop. Returns when the QUIT command is given or when the
// terminal has no more input. Breakpoints are removed from memory before
// returning.
func (dbg *Debugger) Start() error {
	err := dbg.term.Initialise()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()
	defer dbg.breakpoints.clear()
	defer dbg.log.SetEcho(nil)

	dbg.term.RegisterTabCompletion(commandline.NewTabCompletion(debuggerCommands))

	dbg.running = true
	dbg.printInstruction()

	for dbg.running {
		input, err := dbg.term.TermRead(dbg.prompt())
		if err != nil {
			if errors.Is(err, io.EOF) || curated.Is(err, terminal.UserAbort) {
				return nil
			}
			if curated.Is(err, terminal.UserInterrupt) {
				dbg.printLine(terminal.StyleFeedback, "use QUIT to exit the debugger")
				continue
			}
			return curated.Errorf("debugger: %v", err)
		}

		dbg.printLine(terminal.StyleEcho, "%s", input)

		err = dbg.parseInput(input)
		if err != nil {
			dbg.printLine(terminal.StyleError, "%v", err)
		}
	}

	return nil
}

// parseInput splits the input into commands separated by semi-colons. Input
// beginning with a hash character is a comment and is ignored.
func (dbg *Debugger) parseInput(input string) error {
	if strings.HasPrefix(strings.TrimSpace(input), "#") {
		return nil
	}

	for _, c := range strings.Split(input, ";") {
		err := dbg.parseCommand(c)
		if err != nil {
			return err
		}
		if !dbg.running {
			break
		}
	}

	return nil
}

func (dbg *Debugger) prompt() terminal.Prompt {
	return terminal.Prompt{
		Content:    fmt.Sprintf("%#08x %s", dbg.cpu.PC(), dbg.cpu.Registers().Mode()),
		Breakpoint: dbg.atBreak,
	}
}

func (dbg *Debugger) printLine(style terminal.Style, format string, args ...any) {
	dbg.term.TermPrintLine(style, fmt.Sprintf(format, args...))
}

// printInstruction shows the next instruction to be executed.
func (dbg *Debugger) printInstruction() {
	pc := dbg.cpu.PC()
	dsm, err := disassembly.FromMemory(dbg.breakpoints, pc, pc+4)
	if err != nil {
		return
	}
	e, ok := dsm.GetEntryByAddress(pc)
	if !ok {
		dbg.printLine(terminal.StyleInstruction, "%#08x (not in RAM)", pc)
		return
	}
	dbg.printLine(terminal.StyleInstruction, "%s", e.String())
}

// execute runs the processor for the number of instructions in the budget. A
// breakpoint at the current PC is stepped over by executing the original
// instruction in its place. Returns true if execution stopped at a
// breakpoint.
func (dbg *Debugger) execute(budget int) (bool, error) {
	dbg.atBreak = false

	pc := dbg.cpu.PC()
	if w, ok := dbg.breakpoints.original(pc); ok {
		mem := dbg.cpu.Memory()
		mem.Poke(pc, w)
		err := dbg.cpu.Run(1)
		mem.Poke(pc, arm.BreakpointInstruction)
		if err != nil {
			return dbg.halted(err)
		}
		budget--
	} else if w, ok := dbg.cpu.Memory().Peek(pc); ok && w == arm.BreakpointInstruction {
		// a breakpoint instruction that is part of the program
		dbg.printLine(terminal.StyleFeedback, "skipping breakpoint instruction at %#08x", pc)
		dbg.cpu.SetPC(pc + 4)
		budget--
	}

	if budget <= 0 {
		return false, nil
	}

	return dbg.halted(dbg.cpu.Run(budget))
}

// halted filters the breakpoint status from the error returned by Run().
func (dbg *Debugger) halted(err error) (bool, error) {
	if err == nil {
		return false, nil
	}
	if errors.Is(err, status.Breakpoint) {
		dbg.atBreak = true
		return true, nil
	}
	return false, err
}

// continueExecution runs the processor until a breakpoint is reached or until
// the user interrupts with CTRL-C.
func (dbg *Debugger) continueExecution() error {
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	for {
		brk, err := dbg.execute(continueQuantum)
		if err != nil {
			return err
		}
		if brk {
			dbg.printLine(terminal.StyleFeedback, "break at %#08x", dbg.cpu.PC())
			return nil
		}

		select {
		case <-intChan:
			dbg.printLine(terminal.StyleFeedback, "interrupted at %#08x", dbg.cpu.PC())
			return nil
		default:
		}
	}
}

// termWriter is an io.Writer that prints each line to the terminal.
type termWriter struct {
	term  terminal.Output
	style terminal.Style
}

func (tw *termWriter) Write(p []byte) (int, error) {
	for _, l := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		tw.term.TermPrintLine(tw.style, l)
	}
	return len(p), nil
}
