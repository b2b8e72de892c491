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

// Package modalflag is a wrapper for the flag package in the standard library.
// It adds program modes, each with its own set of flags.
//
// Arguments are given to NewArgs() and then parsed one layer at a time. A
// layer that adds sub-modes selects a mode from the first argument that isn't
// a flag, or uses the default sub-mode if there is no match.
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.NewMode()
//	md.AddSubModes("RUN", "DEBUG")
//
//	p, err := md.Parse()
//	if p != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "DEBUG":
//		md.NewMode()
//		term := md.AddString("term", "COLOR", "terminal type")
//		p, err = md.Parse()
//		...
//	}
//
// Help is requested with the -help flag at any layer and is written to the
// Output field of the Modes type.
package modalflag
