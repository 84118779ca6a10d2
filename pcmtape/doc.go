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

// Package pcmtape implements a tape mechanism backed by PCM audio. Tapes can
// be loaded from WAV or MP3 files and recordings can be saved as WAV files.
//
// The audio is held as a single channel of samples in the range -1.0 to 1.0.
// For stereo files only the left channel is used. Positions are measured in
// seconds from the start of the tape.
//
// MP3 tapes are read only. A request to record onto an MP3 tape is rejected.
//
// The tape does not move by itself. The emulation advances the tape with
// Advance() while it is running.
package pcmtape
