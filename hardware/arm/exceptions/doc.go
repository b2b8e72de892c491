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

// Package exceptions defines the architectural exceptions of the processor
// and the vector table that describes how each exception is entered.
//
//	exception              vector  mode  flags  link
//	reset                  0x00    SVC   I F    R14_svc
//	undefined instruction  0x04    SVC   I      R14_svc
//	software interrupt     0x08    SVC   I      R14_svc
//	prefetch abort         0x0c    SVC   I      R14_svc
//	data abort             0x10    SVC   I      R14_svc
//	address exception      0x14    SVC   I      R14_svc
//	irq                    0x18    IRQ   I      R14_irq
//	fiq                    0x1c    FIQ   I F    R14_fiq
package exceptions
