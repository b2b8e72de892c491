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
	"github.com/jetsetilly/armv2/curated"
	"github.com/jetsetilly/armv2/paths"
	"github.com/jetsetilly/armv2/prefs"
)

// Preferences defines and collates all the preference values used by the
// debugger.
type Preferences struct {
	dsk *prefs.Disk

	// use the color terminal for interactive sessions
	ColorTerminal prefs.Bool

	// print new log entries to the terminal as they are made
	EchoLog prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. An empty path will use the default preferences file in the
// resource directory.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	if path == "" {
		path = paths.ResourcePath("", prefs.DefaultPrefsFile)
	}

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("debugger.colorTerminal", &p.ColorTerminal)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("debugger.echoLog", &p.EchoLog)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load(false)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.ColorTerminal.Set(true)
	_ = p.EchoLog.Set(false)
}

// Load debugger preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current debugger preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
