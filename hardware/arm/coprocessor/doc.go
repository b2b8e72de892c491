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

// Package coprocessor defines the interface between the processor and the
// coprocessors attached to it. A coprocessor receives the data operation
// (CDP) and register transfer (MRC/MCR) instructions that carry its
// coprocessor number.
//
// The hwmanager sub-package is the hardware manager coprocessor, through
// which the emulated program discovers devices and maps them into memory.
package coprocessor
