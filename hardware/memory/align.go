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

import "golang.org/x/exp/constraints"

// align rounds v up to the next multiple of a. The value of a must be a power
// of two.
func align[T constraints.Integer](v T, a T) T {
	return (v + a - 1) &^ (a - 1)
}

// aligned returns true if v is a multiple of a. The value of a must be a power
// of two.
func aligned[T constraints.Integer](v T, a T) bool {
	return v&(a-1) == 0
}
