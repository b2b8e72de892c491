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

package performance_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/armv2/performance"
	"github.com/jetsetilly/armv2/test"
)

func TestProfile(t *testing.T) {
	dir := t.TempDir()

	cpu := filepath.Join(dir, "cpu.profile")
	ran := false
	err := performance.ProfileCPU(cpu, func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)
	_, err = os.Stat(cpu)
	test.ExpectSuccess(t, err)

	// errors from the profiled function are passed through
	e := errors.New("test")
	err = performance.ProfileCPU(filepath.Join(dir, "cpu2.profile"), func() error {
		return e
	})
	test.ExpectEquality(t, err, e)

	mem := filepath.Join(dir, "mem.profile")
	test.ExpectSuccess(t, performance.ProfileMem(mem))
	_, err = os.Stat(mem)
	test.ExpectSuccess(t, err)

	test.ExpectFailure(t, performance.ProfileMem(filepath.Join(dir, "missing", "mem.profile")))
}
