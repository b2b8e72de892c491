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

package memory

import "strings"

// Permission bits for a page.
type Permission uint8

// List of valid Permission bits.
const (
	PermExecute Permission = 1 << iota
	PermWrite
	PermRead
)

func (p Permission) String() string {
	s := strings.Builder{}
	if p&PermRead == PermRead {
		s.WriteRune('r')
	} else {
		s.WriteRune('-')
	}
	if p&PermWrite == PermWrite {
		s.WriteRune('w')
	} else {
		s.WriteRune('-')
	}
	if p&PermExecute == PermExecute {
		s.WriteRune('x')
	} else {
		s.WriteRune('-')
	}
	return s.String()
}

// Fault categorises the reason why a memory access failed.
type Fault int

// List of valid Fault values.
const (
	NoFault Fault = iota

	// address has bits set above the 26bit address space
	AddressRange

	// there is no page at the address
	Unmapped

	// the page doesn't have the required permission
	PermissionDenied

	// word access to an address that is not word aligned
	Unaligned
)

func (f Fault) String() string {
	switch f {
	case NoFault:
		return "no fault"
	case AddressRange:
		return "address out of range"
	case Unmapped:
		return "unmapped"
	case PermissionDenied:
		return "permission denied"
	case Unaligned:
		return "unaligned"
	}
	return "unknown fault"
}
