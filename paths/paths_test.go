// This file is part of emuxsync.
//
// emuxsync is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// emuxsync is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with emuxsync.  If not, see <https://www.gnu.org/licenses/>.

//go:build !release

package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/emuxsync/paths"
	"github.com/jetsetilly/emuxsync/test"
)

func TestPaths(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".emuxsync", "foo", "bar", "baz"))

	// subdirectory has been created
	_, err = os.Stat(filepath.Join(".emuxsync", "foo", "bar"))
	test.ExpectSuccess(t, err)

	pth, err = paths.ResourcePath("foo/bar", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".emuxsync", "foo", "bar"))

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".emuxsync", "baz"))

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".emuxsync")
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("tape", " demo ")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "tape_demo_"))
	test.ExpectEquality(t, len(fn), len("tape_demo_YYYYMMDD_HHMMSS"))

	fn = paths.UniqueFilename("state", "")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "state_"))
	test.ExpectEquality(t, len(fn), len("state_YYYYMMDD_HHMMSS"))
}
