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
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/emuxsync/curated"
)

// Sentinal error patterns.
const (
	NoPrefsFile  = "prefs: no prefs file (%s)"
	DuplicateKey = "prefs: duplicate key (%s)"
	InvalidKey   = "prefs: invalid key (%s)"
	DiskError    = "prefs: %v"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// file does not need to exist.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:    path,
		entries: make(map[string]pref),
	}
	return dsk, nil
}

// Path returns the filename of the preferences file.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add preference value to list of values to store/load from Disk.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if key == "" || strings.ContainsAny(key, "=\n") {
		return curated.Errorf(InvalidKey, key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// String returns the registered values in the same format as they would be
// written to disk.
func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s=%s\n", k, dsk.entries[k].String()))
	}
	return s.String()
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// splitLine divides a line into a key and a value. The boolean return value
// is false if the line does not contain a valid key/value pair.
func splitLine(line string) (string, string, bool) {
	k, v, ok := strings.Cut(line, "=")
	if !ok {
		return "", "", false
	}
	k = strings.TrimSpace(k)
	v = strings.TrimSpace(v)
	if k == "" || v == "" {
		return "", "", false
	}
	return k, v, true
}

// read the key/value pairs from the file in the order they appear.
func (dsk *Disk) read() ([][2]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return nil, curated.Errorf(DiskError, err)
	}
	defer f.Close()

	return parse(f)
}

func parse(r io.Reader) ([][2]string, error) {
	var kv [][2]string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if k, v, ok := splitLine(scanner.Text()); ok {
			kv = append(kv, [2]string{k, v})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(DiskError, err)
	}

	return kv, nil
}

// Load preference values from disk. Keys in the file that have not been added
// to the Disk are ignored. Registered values that do not appear in the file
// keep their current value. A curated NoPrefsFile error is returned if the
// file does not exist but command line values are still applied.
func (dsk *Disk) Load() error {
	kv, err := dsk.read()
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return err
	}

	for _, p := range kv {
		if e, ok := dsk.entries[p[0]]; ok {
			if serr := e.Set(p[1]); serr != nil {
				return curated.Errorf(DiskError, serr)
			}
		}
	}

	// command line values override anything from the file
	for _, k := range dsk.keys() {
		if ok, v := GetCommandLinePref(k); ok {
			if serr := dsk.entries[k].Set(v); serr != nil {
				return curated.Errorf(DiskError, serr)
			}
		}
	}

	return err
}

// Save current preference values to disk. Lines in an existing file that do
// not belong to this Disk are preserved.
func (dsk *Disk) Save() (rerr error) {
	kv, err := dsk.read()
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return err
	}

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(DiskError, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			rerr = curated.Errorf(DiskError, err)
		}
	}()

	w := bufio.NewWriter(f)

	// existing entries that we don't know about are written first and in
	// the order they were found
	for _, p := range kv {
		if _, ok := dsk.entries[p[0]]; !ok {
			if _, err := fmt.Fprintf(w, "%s=%s\n", p[0], p[1]); err != nil {
				return curated.Errorf(DiskError, err)
			}
		}
	}

	// empty values are not written because they would be ignored on the
	// next load
	for _, k := range dsk.keys() {
		v := dsk.entries[k].String()
		if v == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s=%s\n", k, v); err != nil {
			return curated.Errorf(DiskError, err)
		}
	}

	if err := w.Flush(); err != nil {
		return curated.Errorf(DiskError, err)
	}

	return nil
}
