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

// Package paths contains functions to prepare paths to armv2 resources.
//
// The ResourcePath() function prepends the supplied resource elements with
// the appropriate config directory. For example, the following will return
// the path to the preferences file.
//
//	p := paths.ResourcePath("", prefs.DefaultPrefsFile)
//
// If the base resource path, ".armv2", is present in the program's current
// directory then that is the base path that will be used. Otherwise the
// user's config directory is used, as reported by os.UserConfigDir().
//
// On a modern Linux system the example above will return:
//
//	/home/user/.config/armv2/preferences
package paths
