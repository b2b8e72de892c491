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

// Package hwmanager implements the hardware manager coprocessor. The hardware
// manager has four registers and allows the emulated program to find out
// about the devices attached to the machine and to map them into memory.
//
//	cdp p7, 0, cN, c0, c0, 0       ; cN = number of devices
//	cdp p7, 1, cD, cE, cS, A       ; map device cD from cS to cE, status in cA
//	cdp p7, 2, cD, c0, c0, 0       ; c0 = id of device cD
//	mcr p7, 0, rN, cN, c0, 0       ; cN = rN
//	mrc p7, 0, rN, cN, c0, 0       ; rN = cN
//
// The fields of the CDP instruction map onto the arguments of DataOperation()
// as: opcode = bits 20-23, crn = bits 16-19, crd = bits 12-15, aux = bits
// 5-7, crm = bits 0-3.
package hwmanager
