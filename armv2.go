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

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jetsetilly/armv2/debugger"
	"github.com/jetsetilly/armv2/debugger/terminal"
	"github.com/jetsetilly/armv2/debugger/terminal/colorterm"
	"github.com/jetsetilly/armv2/debugger/terminal/plainterm"
	"github.com/jetsetilly/armv2/disassembly"
	"github.com/jetsetilly/armv2/hardware/arm"
	"github.com/jetsetilly/armv2/hardware/devices/keyboard"
	"github.com/jetsetilly/armv2/hardware/preferences"
	"github.com/jetsetilly/armv2/hardware/status"
	"github.com/jetsetilly/armv2/logger"
	"github.com/jetsetilly/armv2/modalflag"
	"github.com/jetsetilly/armv2/performance"
	"github.com/jetsetilly/armv2/prefs"
	"github.com/jetsetilly/armv2/romloader"
	"github.com/jetsetilly/armv2/statsview"
	"github.com/jetsetilly/armv2/version"
	"golang.org/x/term"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "DEBUG", "DISASM", "VERSION")
	stats := md.AddBool("statsview", false, "run the runtime statistics server")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "DEBUG":
		err = debug(md)
	case "DISASM":
		err = disasm(md)
	case "VERSION":
		v, r, release := version.Version()
		if release {
			fmt.Printf("%s %s\n", version.ApplicationName, v)
		} else {
			fmt.Printf("%s %s (%s)\n", version.ApplicationName, v, r)
		}
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md, err)
		os.Exit(20)
	}
}

// flags shared by the RUN and DEBUG modes.
type machineFlags struct {
	mem   *uint
	log   *bool
	prefs *string
}

func addMachineFlags(md *modalflag.Modes) machineFlags {
	return machineFlags{
		mem:   md.AddUint("mem", 0, "memory size in bytes (zero to use the preferences value)"),
		log:   md.AddBool("log", false, "echo the log to stdout"),
		prefs: md.AddString("prefs", "", "preference overrides. for example, \"arm.traceExecution::true\""),
	}
}

// createARM creates the processor and loads the boot image. Any preference
// overrides on the command line are applied while the preferences are loaded.
func createARM(flgs machineFlags, image string) (*arm.ARM, error) {
	if *flgs.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	prefs.PushCommandLineStack(*flgs.prefs)
	armPrefs, err := preferences.NewARMPreferences("")
	if err != nil {
		prefs.PopCommandLineStack()
		return nil, err
	}

	cpu, err := arm.NewARM(armPrefs, nil, uint32(*flgs.mem))
	if err != nil {
		prefs.PopCommandLineStack()
		return nil, err
	}

	err = cpu.LoadImage(image)
	if err != nil {
		prefs.PopCommandLineStack()
		cpu.Teardown()
		return nil, err
	}

	return cpu, nil
}

// any preference overrides not used by the time the machine has been
// created are reported
func unusedPrefs() {
	if unused := prefs.PopCommandLineStack(); unused != "" {
		fmt.Printf("! unused preferences: %s\n", unused)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	flgs := addMachineFlags(md)
	budget := md.AddInt("budget", -1, "number of instructions to execute. negative values run forever")
	keys := md.AddString("keys", "", "characters to queue in the keyboard device before running")
	profile := md.AddBool("profile", false, "write cpu and memory profiles to run.cpu.profile and run.mem.profile")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("boot image required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	cpu, err := createARM(flgs, md.GetArg(0))
	if err != nil {
		return err
	}
	defer cpu.Teardown()
	unusedPrefs()

	kb := keyboard.NewKeyboard(func(active bool) {
		cpu.SetPin(arm.PinIRQ, active)
	})
	err = cpu.AddHardware(kb)
	if err != nil {
		return err
	}

	for _, k := range []byte(*keys) {
		err = kb.KeyDown(k)
		if err != nil {
			return err
		}
	}

	execute := func() error {
		err := cpu.Run(*budget)
		if errors.Is(err, status.Breakpoint) {
			fmt.Printf("! %v\n", err)
			return nil
		}
		return err
	}

	if !*profile {
		return execute()
	}

	err = performance.ProfileCPU("run.cpu.profile", execute)
	if err != nil {
		return err
	}
	return performance.ProfileMem("run.mem.profile")
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	flgs := addMachineFlags(md)
	termType := md.AddString("term", "", "terminal type to use in debug mode: COLOR, PLAIN. empty to use the preferences value")
	origin := md.AddUint("origin", 0, "address of the first instruction to execute")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("boot image required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	cpu, err := createARM(flgs, md.GetArg(0))
	if err != nil {
		return err
	}
	defer cpu.Teardown()

	dbgPrefs, err := debugger.NewPreferences("")
	unusedPrefs()
	if err != nil {
		return err
	}

	kb := keyboard.NewKeyboard(func(active bool) {
		cpu.SetPin(arm.PinIRQ, active)
	})
	err = cpu.AddHardware(kb)
	if err != nil {
		return err
	}

	cpu.SetPC(uint32(*origin))

	useColor := dbgPrefs.ColorTerminal.Get().(bool)
	switch strings.ToUpper(*termType) {
	case "":
	case "COLOR":
		useColor = true
	case "PLAIN":
		useColor = false
	default:
		fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", *termType)
		useColor = false
	}

	// the color terminal needs a real terminal for both input and output
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		useColor = false
	}

	var trm terminal.Terminal
	if useColor {
		trm = &colorterm.ColorTerminal{}
	} else {
		trm = plainterm.NewPlainTerminal(nil, nil)
	}

	dbg, err := debugger.NewDebugger(cpu, nil, trm, dbgPrefs)
	if err != nil {
		return err
	}

	return dbg.Start()
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	origin := md.AddUint("origin", 0, "address at which the image would be loaded")
	bytecode := md.AddBool("bytecode", true, "include the instruction word in the listing")
	grep := md.AddString("grep", "", "only list instructions matching the search string")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("boot image required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	dsm, err := disassembly.FromImage(romloader.NewLoader(md.GetArg(0)), uint32(*origin))
	if err != nil {
		return err
	}

	if *grep != "" {
		if dsm.Grep(os.Stdout, disassembly.GrepAll, *grep, false) == 0 {
			fmt.Printf("! no matches for %s\n", *grep)
		}
		return nil
	}

	dsm.Write(os.Stdout, disassembly.WriteAttr{ByteCode: *bytecode, Notes: true})

	return nil
}
