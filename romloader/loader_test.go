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

package romloader_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/armv2/hardware/memory"
	"github.com/jetsetilly/armv2/hardware/status"
	"github.com/jetsetilly/armv2/romloader"
	"github.com/jetsetilly/armv2/test"
)

func writeImage(t *testing.T, size int) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "boot.rom")
	test.DemandSuccess(t, os.WriteFile(fn, make([]byte, size), 0o600))
	return fn
}

func TestLoadFile(t *testing.T) {
	fn := writeImage(t, memory.MinImageSize)

	ld := romloader.NewLoader(fn)
	test.ExpectEquality(t, ld.ShortName(), "boot")
	test.ExpectFailure(t, ld.HasLoaded())

	test.DemandSuccess(t, ld.Load())
	test.ExpectSuccess(t, ld.HasLoaded())
	test.ExpectEquality(t, len(ld.Data), memory.MinImageSize)
	test.ExpectEquality(t, len(ld.Hash), 40)

	// a second loader with the correct hash
	ld2 := romloader.NewLoader(fn)
	ld2.Hash = ld.Hash
	test.ExpectSuccess(t, ld2.Load())

	// and one with the wrong hash
	ld3 := romloader.NewLoader(fn)
	ld3.Hash = "0000"
	test.ExpectFailure(t, ld3.Load())
}

func TestTooSmall(t *testing.T) {
	ld := romloader.NewLoader(writeImage(t, memory.MinImageSize-1))
	err := ld.Load()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, status.IOError))
	test.ExpectFailure(t, ld.HasLoaded())
}

func TestMissingFile(t *testing.T) {
	ld := romloader.NewLoader(filepath.Join(t.TempDir(), "missing.rom"))
	err := ld.Load()
	test.ExpectSuccess(t, errors.Is(err, status.IOError))
}

func TestLoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/boot.rom" {
			http.NotFound(w, r)
			return
		}
		w.Write(make([]byte, 0x100))
	}))
	defer srv.Close()

	ld := romloader.NewLoader(srv.URL + "/boot.rom")
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, len(ld.Data), 0x100)

	ld = romloader.NewLoader(srv.URL + "/missing.rom")
	test.ExpectFailure(t, ld.Load())
}
