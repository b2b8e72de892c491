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

package status

// Status is a host facing result code. Functions in the hardware packages
// return Status values as errors (often wrapped with curated.Errorf) so they
// can be identified with errors.Is().
//
// There is no value for "ok". Success is indicated by a nil error.
type Status int

// List of valid Status values.
const (
	InvalidState Status = iota + 1
	MemoryError
	ValueError
	IOError
	InvalidArguments
	NoSuchDevice
	AlreadyMapped
	DeviceTableFull
	UnknownOpcode
	Breakpoint

	// UniverseBroken indicates an internal invariant has been violated. It
	// should never be returned.
	UniverseBroken
)

func (s Status) Error() string {
	switch s {
	case InvalidState:
		return "invalid state"
	case MemoryError:
		return "memory error"
	case ValueError:
		return "value error"
	case IOError:
		return "io error"
	case InvalidArguments:
		return "invalid arguments"
	case NoSuchDevice:
		return "no such device"
	case AlreadyMapped:
		return "already mapped"
	case DeviceTableFull:
		return "device table full"
	case UnknownOpcode:
		return "unknown opcode"
	case Breakpoint:
		return "stopped at breakpoint"
	case UniverseBroken:
		return "universe broken"
	}
	return "unknown status"
}

// Code returns the numeric value of the Status as seen by emulated software.
// Code zero is reserved for success. See Of().
func (s Status) Code() uint32 {
	return uint32(s)
}

// Of returns the status code for an error, for communicating results to
// emulated software. A nil error returns zero. An error with no Status in its
// chain is reported as UniverseBroken.
func Of(err error) uint32 {
	if err == nil {
		return 0
	}
	if s, ok := find(err); ok {
		return s.Code()
	}
	return UniverseBroken.Code()
}
