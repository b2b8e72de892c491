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

package commandline

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jetsetilly/armv2/curated"
)

// Command is a single entry in the command template.
type Command struct {
	// the command keyword. matched without regard to case
	Keyword string

	// usage description of the arguments. for example "<address> [words]"
	Args string

	// number of arguments the command accepts. a Max value of -1 means there
	// is no upper limit
	Min int
	Max int

	// permitted values for each argument position. a nil entry allows any
	// value in that position. matched without regard to case
	Options [][]string

	// help text for the command
	Help string
}

func (cmd Command) usage() string {
	if cmd.Args == "" {
		return cmd.Keyword
	}
	return fmt.Sprintf("%s %s", cmd.Keyword, cmd.Args)
}

// Commands is a validated command template.
type Commands struct {
	Index map[string]*Command

	cmds []*Command

	helpCommand string
	helpCols    int
	helpColFmt  string
}

// Len implements Sort package interface.
func (cmds Commands) Len() int {
	return len(cmds.cmds)
}

// Less implements Sort package interface.
func (cmds Commands) Less(i int, j int) bool {
	return cmds.cmds[i].Keyword < cmds.cmds[j].Keyword
}

// Swap implements Sort package interface.
func (cmds Commands) Swap(i int, j int) {
	cmds.cmds[i], cmds.cmds[j] = cmds.cmds[j], cmds.cmds[i]
}

// String returns the usage of every command, one per line.
func (cmds Commands) String() string {
	s := strings.Builder{}
	for _, c := range cmds.cmds {
		s.WriteString(c.usage())
		s.WriteString("\n")
	}
	return strings.TrimRight(s.String(), "\n")
}

// ParseCommandTemplate checks the template for consistency and returns a
// Commands instance. Keywords are normalised to upper case.
func ParseCommandTemplate(template []Command) (*Commands, error) {
	cmds := &Commands{
		Index: make(map[string]*Command),
	}

	for i := range template {
		c := template[i]
		c.Keyword = strings.ToUpper(strings.TrimSpace(c.Keyword))

		if c.Keyword == "" || strings.ContainsAny(c.Keyword, " \t") {
			return nil, curated.Errorf("commandline: illegal keyword (%s)", c.Keyword)
		}
		if _, ok := cmds.Index[c.Keyword]; ok {
			return nil, curated.Errorf("commandline: %s: already defined", c.Keyword)
		}
		if c.Min < 0 || (c.Max >= 0 && c.Max < c.Min) {
			return nil, curated.Errorf("commandline: %s: illegal argument count", c.Keyword)
		}
		if c.Max >= 0 && len(c.Options) > c.Max {
			return nil, curated.Errorf("commandline: %s: more options than arguments", c.Keyword)
		}

		cmds.cmds = append(cmds.cmds, &c)
		cmds.Index[c.Keyword] = &c
	}

	sort.Stable(cmds)

	return cmds, nil
}

// AddHelp adds a "help" command to an already prepared Commands type. The
// help command takes an optional argument, which can be any of the keywords
// in the template.
func (cmds *Commands) AddHelp(helpCommand string, help string) error {
	helpCommand = strings.ToUpper(helpCommand)

	// if help command exists then there is nothing to do
	if _, ok := cmds.Index[helpCommand]; ok {
		return curated.Errorf("commandline: %s: already defined", helpCommand)
	}

	var keywords []string
	longest := len(helpCommand)
	for _, c := range cmds.cmds {
		keywords = append(keywords, c.Keyword)
		if len(c.Keyword) > longest {
			longest = len(c.Keyword)
		}
	}
	keywords = append(keywords, helpCommand)

	c := &Command{
		Keyword: helpCommand,
		Args:    "[command]",
		Min:     0,
		Max:     1,
		Options: [][]string{keywords},
		Help:    help,
	}

	cmds.cmds = append(cmds.cmds, c)
	cmds.Index[helpCommand] = c
	sort.Stable(cmds)

	// record sizing information for help subsystem
	cmds.helpCommand = helpCommand
	cmds.helpCols = 80 / (longest + 3)
	cmds.helpColFmt = fmt.Sprintf("%%%ds", longest+3)

	return nil
}

// HelpOverview returns a columnised list of all help entries.
func (cmds Commands) HelpOverview() string {
	if cmds.helpCols == 0 {
		return cmds.String()
	}

	s := strings.Builder{}
	for i, c := range cmds.cmds {
		s.WriteString(fmt.Sprintf(cmds.helpColFmt, c.Keyword))
		if i%cmds.helpCols == cmds.helpCols-1 {
			s.WriteString("\n")
		}
	}
	return strings.TrimRight(s.String(), "\n")
}

// Help returns the help (and usage for the command).
func (cmds Commands) Help(keyword string) string {
	keyword = strings.ToUpper(keyword)

	cmd, ok := cmds.Index[keyword]
	if !ok || cmd.Help == "" {
		return fmt.Sprintf("no help for %s", keyword)
	}

	s := strings.Builder{}
	s.WriteString(cmd.Help)
	s.WriteString("\n\n  Usage: ")
	s.WriteString(cmd.usage())

	return s.String()
}
