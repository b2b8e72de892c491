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

// Package keyboard is an example of a memory mapped device. It implements the
// memory.Device interface and can be attached to the processor with
// AddHardware() and MapMemory().
//
// The device occupies a single page. The emulated program reads the key code
// at offset zero (RegKey) and acknowledges the key by writing to the same
// offset. The number of pending keys is at offset four (RegCount).
//
// Connecting the interrupt function to the processor's IRQ pin means that the
// emulated program is interrupted for as long as there are keys pending:
//
//	kb := keyboard.NewKeyboard(func(active bool) {
//		cpu.SetPin(arm.PinIRQ, active)
//	})
package keyboard
