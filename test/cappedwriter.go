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

package test

import (
	"fmt"
	"strings"
)

// CappedWriter is an io.Writer that discards everything written after the
// buffer has reached its size limit. Useful for examining the start of
// output that might otherwise be very long.
type CappedWriter struct {
	buffer strings.Builder
	limit  int
}

// NewCappedWriter is the preferred method of initialisation for the
// CappedWriter type.
func NewCappedWriter(limit int) (*CappedWriter, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("capped writer: invalid limit (%d)", limit)
	}
	return &CappedWriter{limit: limit}, nil
}

func (w *CappedWriter) String() string {
	return w.buffer.String()
}

// Reset empties the buffer.
func (w *CappedWriter) Reset() {
	w.buffer.Reset()
}

// Write implements the io.Writer interface. The number of bytes returned is
// the number actually buffered.
func (w *CappedWriter) Write(p []byte) (int, error) {
	n := min(len(p), w.limit-w.buffer.Len())
	w.buffer.Write(p[:n])
	return n, nil
}
