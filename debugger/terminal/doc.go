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

// Package terminal defines the interface between the debugger and the user.
//
// The debugger reads commands and prints output through the Terminal
// interface. The plainterm sub-package works with any io.Reader and
// io.Writer. The colorterm sub-package needs a real terminal and adds line
// editing, command history and tab completion.
//
// Output is categorised with the Style type. How a style is presented is up
// to the Terminal implementation.
package terminal
