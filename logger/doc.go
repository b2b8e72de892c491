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

// Package logger is the central log repository for Armv2. Log entries are
// tagged and repeated entries are collapsed.
//
// Calls to Log() and Logf() take a Permission argument. The Allow value can
// be used where logging is always wanted. Types that want conditional logging
// (for example, the ARM processor tracing each instruction only when the
// preference is set) implement the Permission interface themselves.
//
// The central log is used by the package level functions. Separate Logger
// instances are created with NewLogger() and are useful for injecting into
// types under test.
package logger
