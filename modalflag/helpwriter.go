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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter collects the output of the flag package so that it can be
// amended with the mode and sub-mode information.
type helpWriter struct {
	buffer strings.Builder
}

func (hw *helpWriter) Write(p []byte) (n int, err error) {
	return hw.buffer.Write(p)
}

func (hw *helpWriter) help(output io.Writer, banner string, subModes []string, additionalHelp string) {
	if output == nil {
		return
	}

	lines := strings.Split(hw.buffer.String(), "\n")

	// the flag package prints only the usage line when there are no flags
	if len(lines) <= 2 && len(subModes) == 0 && additionalHelp == "" {
		fmt.Fprint(output, "No help available")
		if banner != "" {
			fmt.Fprintf(output, " for %s", banner)
		}
		fmt.Fprintln(output)
		return
	}

	if banner != "" {
		fmt.Fprintf(output, "%s for %s mode\n", lines[0], banner)
	} else {
		fmt.Fprintln(output, lines[0])
	}

	flags := strings.Join(lines[1:], "\n")
	fmt.Fprint(output, flags)

	if len(subModes) > 0 {
		if flags != "" {
			fmt.Fprintln(output)
		}
		fmt.Fprintf(output, "  available sub-modes: %s\n", strings.Join(subModes, ", "))
		fmt.Fprintf(output, "    default: %s\n", subModes[0])
	}

	if additionalHelp != "" {
		fmt.Fprintf(output, "\n%s\n", additionalHelp)
	}
}
