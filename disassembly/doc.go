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

// Package disassembly produces listings of ARMv2 code. The disassembly is
// linear, every word in the range is decoded as though it were an instruction.
// There is no attempt to follow the flow of the program.
//
// A disassembly can be made from a boot image before it is loaded with
// FromImage(), or from live memory with FromMemory().
//
// Once created, the disassembly can be written to an io.Writer with the
// Write*() functions or searched with Grep(). Individual entries are accessed
// with GetEntryByAddress().
package disassembly
