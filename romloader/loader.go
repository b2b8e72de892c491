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

package romloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/armv2/curated"
	"github.com/jetsetilly/armv2/hardware/memory"
	"github.com/jetsetilly/armv2/hardware/status"
)

// Loader is used to specify the boot image to load into memory. The image is
// read from the filesystem or from an http/https URL.
type Loader struct {
	// filename of the image, or a URL
	Filename string

	// expected hash of the loaded image. the empty string indicates that the
	// hash is unknown and need not be validated. after a successful Load()
	// the field contains the SHA1 of the image
	Hash string

	// copy of the loaded data. subsequent calls to Load() will return this
	// copy
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: strings.TrimSpace(filename),
	}
}

// ShortName returns a shortened version of the filename, without the path
// or the extension.
func (ld Loader) ShortName() string {
	return strings.TrimSuffix(filepath.Base(ld.Filename), filepath.Ext(ld.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the image data. Images smaller than memory.MinImageSize are rejected
// with the IOError status.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	if ld.Filename == "" {
		return curated.Errorf("romloader: %v: no filename", status.IOError)
	}

	scheme := "file"
	if u, err := url.Parse(ld.Filename); err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}

	var data []byte

	switch scheme {
	case "http", "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf("romloader: %v: %v", status.IOError, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf("romloader: %v: %s", status.IOError, resp.Status)
		}

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("romloader: %v: %v", status.IOError, err)
		}

	case "file":
		var err error
		data, err = os.ReadFile(strings.TrimPrefix(ld.Filename, "file://"))
		if err != nil {
			return curated.Errorf("romloader: %v: %v", status.IOError, err)
		}

	default:
		return curated.Errorf("romloader: %v: unsupported URL scheme (%s)", status.IOError, scheme)
	}

	if len(data) < memory.MinImageSize {
		return curated.Errorf("romloader: %v: image too small (%d bytes)", status.IOError, len(data))
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf("romloader: %v: unexpected hash value", status.IOError)
	}

	ld.Hash = hash
	ld.Data = data

	return nil
}
