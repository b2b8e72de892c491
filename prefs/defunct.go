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

package prefs

// preference keys that are no longer used. they are dropped from the prefs
// file the next time it is saved.
var defunct = []string{
	"arm.immediateExceptions",
	"debugger.echo",
}

func isDefunct(key string) bool {
	for _, d := range defunct {
		if key == d {
			return true
		}
	}
	return false
}
