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

package paths

import (
	"path/filepath"

	"github.com/jetsetilly/emuxsync/curated"
)

// Sentinal error pattern.
const ResourceError = "paths: %v"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with the OS and build specific base path. The subPth
// directory is created if necessary. The file itself is not created.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := getBasePath(subPth)
	if err != nil {
		return "", curated.Errorf(ResourceError, err)
	}
	return filepath.Join(base, file), nil
}
