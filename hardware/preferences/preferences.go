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

package preferences

import (
	"github.com/jetsetilly/armv2/curated"
	"github.com/jetsetilly/armv2/hardware/memory"
	"github.com/jetsetilly/armv2/hardware/status"
	"github.com/jetsetilly/armv2/paths"
	"github.com/jetsetilly/armv2/prefs"
)

// DefaultMemorySize is the amount of memory given to the processor when no
// other value has been specified.
const DefaultMemorySize = 1 << 20

// ARMPreferences defines and collates the preference values used by the
// processor.
type ARMPreferences struct {
	dsk *prefs.Disk

	// amount of memory in bytes. rounded up to a whole number of pages by the
	// memory package
	MemorySize prefs.Int

	// log every executed instruction. this is very slow and will quickly
	// fill the log
	TraceExecution prefs.Bool

	// log architectural exceptions as they are delivered through the vector
	// table
	LogExceptions prefs.Bool
}

func (p *ARMPreferences) String() string {
	return p.dsk.String()
}

// NewARMPreferences is the preferred method of initialisation for the
// ARMPreferences type. An empty path will use the default preferences file in
// the resource directory.
func NewARMPreferences(path string) (*ARMPreferences, error) {
	p := &ARMPreferences{}
	p.SetDefaults()

	p.MemorySize.SetHookPre(func(v prefs.Value) error {
		sz := v.(int)
		if sz <= 0 || sz > memory.MaxRequest {
			return curated.Errorf("preferences: memory size: %v", status.ValueError)
		}
		return nil
	})

	if path == "" {
		path = paths.ResourcePath("", prefs.DefaultPrefsFile)
	}

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("arm.memorySize", &p.MemorySize)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("arm.traceExecution", &p.TraceExecution)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("arm.logExceptions", &p.LogExceptions)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load(false)
	if err != nil {
		// a missing prefs file is not a problem. the defaults are used
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *ARMPreferences) SetDefaults() {
	_ = p.MemorySize.Set(DefaultMemorySize)
	_ = p.TraceExecution.Set(false)
	_ = p.LogExceptions.Set(true)
}

// Load current arm preferences from disk.
func (p *ARMPreferences) Load() error {
	return p.dsk.Load(false)
}

// Save current arm preferences to disk.
func (p *ARMPreferences) Save() error {
	return p.dsk.Save()
}
