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

package pcmtape

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/emuxsync/curated"
	"github.com/jetsetilly/emuxsync/logger"
)

// the bit depth of saved tapes.
const saveBitDepth = 16

// Save the tape to a WAV file. The tape is saved as a single channel of 16 bit
// samples.
func (tp *Tape) Save(filename string) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(EncodeError, err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf(EncodeError, err)
		}
	}()

	// wav format 1 is uncompressed PCM
	enc := wav.NewEncoder(f, tp.sampleRate, saveBitDepth, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  tp.sampleRate,
		},
		SourceBitDepth: saveBitDepth,
		Data:           make([]int, len(tp.data)),
	}
	for i, v := range tp.data {
		buf.Data[i] = int(v * 32767)
	}

	if err := enc.Write(buf); err != nil {
		return curated.Errorf(EncodeError, err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf(EncodeError, err)
	}

	tp.filename = filename
	tp.dirty = false
	logger.Logf(tp.perm, logTag, "saved %s", filename)

	return nil
}
