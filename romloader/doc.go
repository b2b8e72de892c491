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

// Package romloader is used to specify and load the boot image. The image is
// a flat binary that is placed at physical address zero. It must be at least
// large enough to cover the exception vector table and one further
// instruction.
//
//	ld := romloader.NewLoader("boot.rom")
//	err := ld.Load()
//	if err != nil {
//		return err
//	}
//	err = mem.LoadImage(ld.Data)
//
// The filename can also be an http or https URL. The SHA1 hash of the image
// is recorded in the Hash field once the image has loaded. If the Hash field
// is set before loading then the loaded image must match.
package romloader
