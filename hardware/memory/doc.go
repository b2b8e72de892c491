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

// Package memory implements the paged physical memory of the emulated
// machine. Memory is divided into pages of PageSize bytes. Each page carries
// permission bits and, optionally, a Device that intercepts all accesses to
// the page.
//
// Page zero is always read and execute only. It holds the boot image, which
// is loaded with the LoadImage() function. The highest page in the address
// space is reserved as the interrupt status page. It is never part of normal
// allocation and devices cannot be mapped to it.
//
// Devices are registered with AddHardware() and then mapped to a range of
// pages with MapMemory(). A page can only be claimed by one device.
package memory
