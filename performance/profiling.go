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

package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/jetsetilly/emuxsync/curated"
)

// Profile specifies the profiling reports produced by RunProfiler(). Values
// can be combined.
type Profile int

// List of valid Profile values.
const (
	ProfileNone  Profile = 0
	ProfileCPU   Profile = 0x01
	ProfileMem   Profile = 0x02
	ProfileTrace Profile = 0x04
	ProfileAll           = ProfileCPU | ProfileMem | ProfileTrace
)

// ProfileError is the pattern for all errors returned by this package.
const ProfileError = "performance: %v"

// ParseProfileString converts a comma separated list of profile names into a
// Profile value. Valid names are NONE, CPU, MEM, TRACE and ALL.
func ParseProfileString(s string) (Profile, error) {
	p := ProfileNone
	for _, n := range strings.Split(s, ",") {
		switch strings.ToUpper(strings.TrimSpace(n)) {
		case "", "NONE":
		case "CPU":
			p |= ProfileCPU
		case "MEM":
			p |= ProfileMem
		case "TRACE":
			p |= ProfileTrace
		case "ALL":
			p |= ProfileAll
		default:
			return ProfileNone, curated.Errorf(ProfileError, fmt.Sprintf("unknown profile (%s)", n))
		}
	}
	return p, nil
}

// RunProfiler runs the function and produces the profiling reports requested.
// Reports are written to the current directory and the filenames are prefixed
// with filenameHeader.
func RunProfiler(profile Profile, filenameHeader string, run func() error) (rerr error) {
	if profile&ProfileCPU == ProfileCPU {
		f, err := os.Create(fmt.Sprintf("%s_cpu.profile", filenameHeader))
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer f.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer pprof.StopCPUProfile()
	}

	if profile&ProfileTrace == ProfileTrace {
		f, err := os.Create(fmt.Sprintf("%s_trace.profile", filenameHeader))
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer f.Close()

		if err := trace.Start(f); err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer trace.Stop()
	}

	if profile&ProfileMem == ProfileMem {
		defer func() {
			f, err := os.Create(fmt.Sprintf("%s_mem.profile", filenameHeader))
			if err != nil {
				if rerr == nil {
					rerr = curated.Errorf(ProfileError, err)
				}
				return
			}
			defer f.Close()

			runtime.GC()
			if err := pprof.WriteHeapProfile(f); err != nil && rerr == nil {
				rerr = curated.Errorf(ProfileError, err)
			}
		}()
	}

	return run()
}
