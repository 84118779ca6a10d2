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

// Package paths contains functions to prepare paths to emuxsync resources.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory. For example, the
// following will return the path to the settings file.
//
//	pth, err := paths.ResourcePath("", "settings-plus4emu.txt")
//
// For non-release builds the base path is ".emuxsync" in the current working
// directory. For release builds (compiled with the release build tag) the
// base path is "emuxsync" in the user's config directory, as reported by
// os.UserConfigDir().
//
// In both cases the directory, and any subdirectory named by the first
// argument, is created if it does not exist.
package paths
