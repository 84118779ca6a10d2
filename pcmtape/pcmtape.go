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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/jetsetilly/emuxsync/curated"
	"github.com/jetsetilly/emuxsync/logger"
)

// Sentinal error patterns.
const (
	UnsupportedFormat = "pcmtape: unsupported format (%s)"
	DecodeError       = "pcmtape: %s: %v"
	EncodeError       = "pcmtape: save: %v"
	SeekOutOfRange    = "pcmtape: seek out of range (%.2f of %.2f)"
	ReadOnly          = "pcmtape: tape is read only"
	EmptyTape         = "pcmtape: tape is empty"
)

const logTag = "pcmtape"

// DefaultSampleRate is used for blank tapes.
const DefaultSampleRate = 44100

type state int

const (
	stopped state = iota
	playing
	recording
)

// Tape is a PCM backed tape mechanism.
type Tape struct {
	perm logger.Permission

	filename   string
	sampleRate int
	data       []float32
	readOnly   bool

	state state

	// position in samples
	pos int

	// the level written by Advance() while recording
	signal float32

	// the tape has been recorded onto since it was loaded or saved
	dirty bool
}

// NewBlank creates a tape with the specified length in seconds. All samples
// are zero.
func NewBlank(perm logger.Permission, sampleRate int, seconds float64) *Tape {
	if perm == nil {
		perm = logger.Allow
	}
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	return &Tape{
		perm:       perm,
		sampleRate: sampleRate,
		data:       make([]float32, int(seconds*float64(sampleRate))),
	}
}

// Load a tape from a WAV or MP3 file. The format is decided by the filename
// extension.
func Load(perm logger.Permission, filename string) (*Tape, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(DecodeError, filepath.Base(filename), err)
	}
	defer f.Close()

	tp, err := Decode(perm, f, filepath.Ext(filename))
	if err != nil {
		return nil, err
	}
	tp.filename = filename

	return tp, nil
}

// Decode a tape from the reader. The format argument is the file extension
// for the format, for example ".wav".
func Decode(perm logger.Permission, r io.ReadSeeker, format string) (*Tape, error) {
	if perm == nil {
		perm = logger.Allow
	}
	tp := &Tape{
		perm: perm,
	}

	switch strings.ToLower(format) {
	case ".wav":
		dec := wav.NewDecoder(r)
		if dec == nil || !dec.IsValidFile() {
			return nil, curated.Errorf(DecodeError, "wav", "not a valid wav file")
		}
		if dec.BitDepth == 0 {
			return nil, curated.Errorf(DecodeError, "wav", "invalid bit depth")
		}

		buf, err := dec.FullPCMBuffer()
		if err != nil {
			return nil, curated.Errorf(DecodeError, "wav", err)
		}

		numChans := int(dec.NumChans)
		if numChans < 1 {
			numChans = 1
		}

		// scale samples to the range -1.0 to 1.0
		scale := float32(int(1) << (dec.BitDepth - 1))

		// copy first channel only of data stream
		tp.data = make([]float32, 0, len(buf.Data)/numChans)
		for i := 0; i < len(buf.Data); i += numChans {
			tp.data = append(tp.data, float32(buf.Data[i])/scale)
		}
		tp.sampleRate = int(dec.SampleRate)

	case ".mp3":
		dec, err := mp3.NewDecoder(r)
		if err != nil {
			return nil, curated.Errorf(DecodeError, "mp3", err)
		}

		// the decoded stream is always 16bit little endian with two channels
		// so a sample is always four bytes. we only want the left channel
		chunk := make([]byte, 4096)
		for {
			n, err := io.ReadFull(dec, chunk)
			for i := 0; i+1 < n; i += 4 {
				v := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
				tp.data = append(tp.data, float32(v)/32768)
			}
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				break
			}
			if err != nil {
				return nil, curated.Errorf(DecodeError, "mp3", err)
			}
		}
		tp.sampleRate = dec.SampleRate()
		tp.readOnly = true

	default:
		return nil, curated.Errorf(UnsupportedFormat, format)
	}

	if tp.sampleRate <= 0 {
		return nil, curated.Errorf(DecodeError, format, "invalid sample rate")
	}

	logger.Logf(tp.perm, logTag, "sample rate: %dHz", tp.sampleRate)
	logger.Logf(tp.perm, logTag, "total time: %.02fs", tp.Length())

	return tp, nil
}

func (tp *Tape) String() string {
	name := "blank"
	if tp.filename != "" {
		name = filepath.Base(tp.filename)
	}
	return fmt.Sprintf("%s %.2f/%.2f", name, tp.Position(), tp.Length())
}

// Filename returns the name of the file the tape was loaded from. Empty for
// blank tapes.
func (tp *Tape) Filename() string {
	return tp.filename
}

// SampleRate returns the number of samples per second.
func (tp *Tape) SampleRate() int {
	return tp.sampleRate
}

// ReadOnly returns true if the tape can not be recorded onto.
func (tp *Tape) ReadOnly() bool {
	return tp.readOnly
}

// Dirty returns true if the tape has been recorded onto since it was loaded or
// last saved.
func (tp *Tape) Dirty() bool {
	return tp.dirty
}

// Play implements the tape.Mechanism interface.
func (tp *Tape) Play() error {
	if len(tp.data) == 0 {
		return curated.Errorf(EmptyTape)
	}
	tp.state = playing
	return nil
}

// Stop implements the tape.Mechanism interface.
func (tp *Tape) Stop() error {
	tp.state = stopped
	return nil
}

// Record implements the tape.Mechanism interface.
func (tp *Tape) Record() error {
	if tp.readOnly {
		return curated.Errorf(ReadOnly)
	}
	tp.state = recording
	return nil
}

// Seek implements the tape.Mechanism interface.
func (tp *Tape) Seek(position float64) error {
	if position < 0 || position > tp.Length() {
		return curated.Errorf(SeekOutOfRange, position, tp.Length())
	}
	tp.pos = int(position * float64(tp.sampleRate))
	return nil
}

// Position implements the tape.Mechanism interface.
func (tp *Tape) Position() float64 {
	if tp.sampleRate == 0 {
		return 0
	}
	return float64(tp.pos) / float64(tp.sampleRate)
}

// Length implements the tape.Mechanism interface.
func (tp *Tape) Length() float64 {
	if tp.sampleRate == 0 {
		return 0
	}
	return float64(len(tp.data)) / float64(tp.sampleRate)
}

// Running returns true if the tape is playing or recording.
func (tp *Tape) Running() bool {
	return tp.state != stopped
}

// SetSignal sets the level that is written to the tape while recording.
func (tp *Tape) SetSignal(level float32) {
	tp.signal = min(max(level, -1), 1)
}

// Sample returns the sample under the tape head.
func (tp *Tape) Sample() float32 {
	if tp.pos >= len(tp.data) {
		return 0
	}
	return tp.data[tp.pos]
}

// Advance moves the tape by the number of seconds if it is running. While
// recording the current signal level is written to the tape and the tape is
// extended as required. Playback stops at the end of the tape.
func (tp *Tape) Advance(seconds float64) {
	n := int(seconds * float64(tp.sampleRate))

	switch tp.state {
	case playing:
		tp.pos += n
		if tp.pos >= len(tp.data) {
			tp.pos = len(tp.data)
			tp.state = stopped
			logger.Log(tp.perm, logTag, "end of tape")
		}
	case recording:
		for range n {
			if tp.pos < len(tp.data) {
				tp.data[tp.pos] = tp.signal
			} else {
				tp.data = append(tp.data, tp.signal)
			}
			tp.pos++
		}
		tp.dirty = tp.dirty || n > 0
	}
}
