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

// Package curated is a helper package for the error type. Curated errors are
// created with Errorf(), which takes a pattern and the values for the
// placeholders in the pattern, in the same way as fmt.Errorf().
//
// The pattern identifies the error. Is() checks the pattern of the outermost
// error and Has() checks every curated error in the chain:
//
//	e := curated.Errorf("memory: page %#x does not exist", 10)
//	f := curated.Errorf("arm: %v", e)
//
//	curated.Is(f, "arm: %v")                        // true
//	curated.Is(f, "memory: page %#x does not exist") // false
//	curated.Has(f, "memory: page %#x does not exist") // true
//
// IsAny() returns true if the error was created by Errorf(). Errors that are
// not curated are usually errors from the standard library or from a
// third-party package and are unexpected.
//
// Error() removes a duplicated leading part from the message. Parts are the
// sub-strings separated by ": ". This means that a function can add its
// package name to an error without checking whether the package name is
// already there:
//
//	err := curated.Errorf("arm: %v", curated.Errorf("arm: invalid state"))
//	fmt.Println(err) // arm: invalid state
//
// Status values from the hardware/status package (and any other error
// values) can be placed anywhere in a curated error's values. Curated errors
// implement the multi-error Unwrap() method so errors.Is() and errors.As()
// will find them:
//
//	e := curated.Errorf("memory: %v", status.AlreadyMapped)
//	errors.Is(e, status.AlreadyMapped) // true
//
// Sentinel() is a shortcut for errors.As() with comparable sentinel types.
package curated
