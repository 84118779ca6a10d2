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

package prefs

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// the command line stack holds groups of key/value pairs specified on the
// command line. values are consumed by Disk.Load() and take priority over
// the values in the file.
var commandLineStack []map[string]Value
var commandLineCrit sync.Mutex

// PushCommandLineStack adds a new group of values to the stack. The prefs
// string is a list of key/value pairs separated by semicolons. For example:
//
//	"tape_feedback=5; timing=PAL"
//
// Invalid pairs are ignored.
func PushCommandLineStack(prefs string) {
	commandLineCrit.Lock()
	defer commandLineCrit.Unlock()

	commandLineStack = append(commandLineStack, make(map[string]Value))
	cl := commandLineStack[len(commandLineStack)-1]

	for _, p := range strings.Split(prefs, ";") {
		if k, v, ok := splitLine(p); ok {
			cl[k] = v
		}
	}
}

// PopCommandLineStack removes the top group of values from the stack. Values
// that have not been consumed are returned as a prefs string, sorted by key.
func PopCommandLineStack() string {
	commandLineCrit.Lock()
	defer commandLineCrit.Unlock()

	if len(commandLineStack) == 0 {
		return ""
	}

	popped := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]

	keys := make([]string, 0, len(popped))
	for key := range popped {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, key := range keys {
		s.WriteString(fmt.Sprintf("%s=%v; ", key, popped[key]))
	}

	return strings.TrimSuffix(s.String(), "; ")
}

// GetCommandLinePref consumes the value for the key from the top of the
// stack. Returns false if there is no value for the key.
func GetCommandLinePref(key string) (bool, Value) {
	commandLineCrit.Lock()
	defer commandLineCrit.Unlock()

	if len(commandLineStack) == 0 {
		return false, nil
	}

	cl := commandLineStack[len(commandLineStack)-1]
	if v, ok := cl[key]; ok {
		delete(cl, key)
		return true, v
	}

	return false, nil
}
