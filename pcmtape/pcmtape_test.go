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

package pcmtape_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/emuxsync/curated"
	"github.com/jetsetilly/emuxsync/hardware/tape"
	"github.com/jetsetilly/emuxsync/logger"
	"github.com/jetsetilly/emuxsync/pcmtape"
	"github.com/jetsetilly/emuxsync/test"
)

// the tape must satisfy the mechanism interface used by the tape deck.
var _ tape.Mechanism = (*pcmtape.Tape)(nil)

func TestBlank(t *testing.T) {
	tp := pcmtape.NewBlank(logger.Allow, 1000, 10)
	test.ExpectEquality(t, tp.Length(), 10.0)
	test.ExpectEquality(t, tp.Position(), 0.0)

	test.ExpectSuccess(t, tp.Seek(9.5))
	test.ExpectEquality(t, tp.Position(), 9.5)
	test.ExpectSuccess(t, tp.Seek(10))

	err := tp.Seek(10.5)
	test.ExpectSuccess(t, curated.Is(err, pcmtape.SeekOutOfRange))
	err = tp.Seek(-1)
	test.ExpectSuccess(t, curated.Is(err, pcmtape.SeekOutOfRange))

	// failed seek does not move the tape
	test.ExpectEquality(t, tp.Position(), 10.0)
}

func TestPlayback(t *testing.T) {
	tp := pcmtape.NewBlank(logger.Allow, 1000, 2)

	// tape does not move while stopped
	tp.Advance(0.5)
	test.ExpectEquality(t, tp.Position(), 0.0)

	test.ExpectSuccess(t, tp.Play())
	test.ExpectSuccess(t, tp.Running())
	tp.Advance(0.5)
	test.ExpectEquality(t, tp.Position(), 0.5)

	// playback stops at the end of the tape
	tp.Advance(5)
	test.ExpectEquality(t, tp.Position(), 2.0)
	test.ExpectFailure(t, tp.Running())

	empty := pcmtape.NewBlank(logger.Allow, 1000, 0)
	test.ExpectSuccess(t, curated.Is(empty.Play(), pcmtape.EmptyTape))
}

func TestRecordAndSave(t *testing.T) {
	tp := pcmtape.NewBlank(logger.Allow, 8000, 1)
	test.ExpectSuccess(t, tp.Record())

	tp.SetSignal(0.5)
	tp.Advance(0.5)
	tp.SetSignal(-0.5)
	tp.Advance(1)
	test.ExpectSuccess(t, tp.Dirty())

	// the tape has been extended by the recording
	test.ExpectEquality(t, tp.Length(), 1.5)
	test.ExpectSuccess(t, tp.Stop())

	fn := filepath.Join(t.TempDir(), "recording.wav")
	test.DemandSuccess(t, tp.Save(fn))
	test.ExpectFailure(t, tp.Dirty())
	test.ExpectEquality(t, tp.Filename(), fn)

	ld, err := pcmtape.Load(logger.Allow, fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ld.SampleRate(), 8000)
	test.ExpectEquality(t, ld.Length(), 1.5)
	test.ExpectFailure(t, ld.ReadOnly())

	test.ExpectSuccess(t, ld.Seek(0.25))
	test.ExpectApproximate(t, ld.Sample(), 0.5, 0.01)
	test.ExpectSuccess(t, ld.Seek(1.25))
	test.ExpectApproximate(t, ld.Sample(), -0.5, 0.01)
}

func TestUnsupported(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "tape.tap")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("C16 TAPE RAW"), 0o600))

	_, err := pcmtape.Load(logger.Allow, fn)
	test.ExpectSuccess(t, curated.Is(err, pcmtape.UnsupportedFormat))

	// not a wav file despite the extension
	fn = filepath.Join(t.TempDir(), "tape.wav")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("C16 TAPE RAW"), 0o600))
	_, err = pcmtape.Load(logger.Allow, fn)
	test.ExpectSuccess(t, curated.Is(err, pcmtape.DecodeError))

	_, err = pcmtape.Load(logger.Allow, filepath.Join(t.TempDir(), "missing.wav"))
	test.ExpectSuccess(t, curated.Is(err, pcmtape.DecodeError))
}
