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

package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/emuxsync/curated"
	"github.com/jetsetilly/emuxsync/logger"
	"github.com/jetsetilly/emuxsync/prefs"
)

// Sentinal error pattern.
const StateError = "core: state: %v"

// state is the saved state of the Headless core. it is stored in the same
// key=value format as the settings file.
type state struct {
	dsk *prefs.Disk

	frameNum prefs.Int
	ramSize  prefs.Int
	feedback prefs.Int
	keys     prefs.String
	tapePos  prefs.Float
	roms     [NumBanks]struct {
		filename prefs.String
		offset   prefs.Int
	}
}

func newState(filename string) (*state, error) {
	st := &state{}

	var err error
	st.dsk, err = prefs.NewDisk(filename)
	if err != nil {
		return nil, err
	}

	add := func(key string, p interface {
		fmt.Stringer
		Set(prefs.Value) error
		Get() prefs.Value
	}) {
		if err == nil {
			err = st.dsk.Add(key, p)
		}
	}

	add("frame", &st.frameNum)
	add("ram_size", &st.ramSize)
	add("tape_feedback", &st.feedback)
	add("keys", &st.keys)
	add("tape_position", &st.tapePos)
	for i := range st.roms {
		add(fmt.Sprintf("rom_%d", i), &st.roms[i].filename)
		add(fmt.Sprintf("rom_%d_off", i), &st.roms[i].offset)
	}

	if err != nil {
		return nil, err
	}

	return st, nil
}

// SaveState implements the Core interface.
func (hl *Headless) SaveState(filename string) error {
	st, err := newState(filename)
	if err != nil {
		return curated.Errorf(StateError, err)
	}

	var keys []string
	for code, down := range hl.keys {
		if down {
			keys = append(keys, strconv.Itoa(code))
		}
	}

	_ = st.frameNum.Set(hl.frameNum)
	_ = st.ramSize.Set(hl.ramSize)
	_ = st.feedback.Set(hl.feedback)
	_ = st.keys.Set(strings.Join(keys, ","))
	_ = st.tapePos.Set(hl.Position())
	for i, r := range hl.roms {
		_ = st.roms[i].filename.Set(r.filename)
		_ = st.roms[i].offset.Set(r.offset)
	}

	if err := st.dsk.Save(); err != nil {
		return curated.Errorf(StateError, err)
	}

	logger.Logf(hl.env, logTag, "state saved to %s", filename)

	return nil
}

// LoadState implements the Core interface. If a tape is attached it is moved
// to the saved position.
func (hl *Headless) LoadState(filename string) error {
	st, err := newState(filename)
	if err != nil {
		return curated.Errorf(StateError, err)
	}

	if err := st.dsk.Load(); err != nil {
		return curated.Errorf(StateError, err)
	}

	if err := hl.SetRAMConfiguration(st.ramSize.Get().(int)); err != nil {
		return curated.Errorf(StateError, err)
	}

	var keys [NumKeyCodes]bool
	if s := st.keys.String(); s != "" {
		for _, k := range strings.Split(s, ",") {
			code, err := strconv.Atoi(k)
			if err != nil || code < 0 || code >= NumKeyCodes {
				return curated.Errorf(StateError, fmt.Sprintf("invalid key code (%s)", k))
			}
			keys[code] = true
		}
	}
	hl.keys = keys

	hl.frameNum = st.frameNum.Get().(int)
	hl.feedback = st.feedback.Get().(int)
	for i := range hl.roms {
		hl.roms[i] = rom{
			filename: st.roms[i].filename.String(),
			offset:   st.roms[i].offset.Get().(int),
		}
	}

	if hl.mech != nil {
		if err := hl.mech.Seek(st.tapePos.Get().(float64)); err != nil {
			logger.Log(hl.env, logTag, err)
		}
	}

	logger.Logf(hl.env, logTag, "state loaded from %s", filename)

	return nil
}
