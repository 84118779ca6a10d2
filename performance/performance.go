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
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/emuxsync/curated"
	"github.com/jetsetilly/emuxsync/environment"
	"github.com/jetsetilly/emuxsync/framesync"
	"github.com/jetsetilly/emuxsync/govern"
	"github.com/jetsetilly/emuxsync/hardware/core"
	"github.com/jetsetilly/emuxsync/hardware/tape"
)

// sentinal error returned by the continue check
var timedOut = errors.New("performance timed out")

// leadtime before the measurement begins. allows the frame rate to settle
const leadtime = 2 * time.Second

// Check the performance of the frame loop by running a headless emulation for
// the specified duration. If tapeFile is not empty then the tape is attached
// and played for the duration of the check. If pace is true then the frame
// limiter is active and the check measures the accuracy of the limiter.
//
// The result is written to output.
func Check(output io.Writer, profile Profile, env *environment.Environment, tapeFile string, pace bool, duration time.Duration) error {
	c, err := core.NewHeadless(env)
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}

	l, err := framesync.NewLoop(env, c, nil, nil, pace)
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}
	defer l.Close()

	if tapeFile != "" {
		if err := l.AttachTape(tapeFile); err != nil {
			return curated.Errorf(ProfileError, err)
		}
		l.TapeCommand(tape.Play)
	}

	// frame number at the start of the measurement period
	var startFrame atomic.Int64

	// true is sent on the channel when the duration has expired. false is
	// sent when the leadtime has elapsed
	timerChan := make(chan bool, 1)
	time.AfterFunc(leadtime, func() {
		timerChan <- false
		time.AfterFunc(duration, func() {
			timerChan <- true
		})
	})

	runner := func() error {
		return core.Run(c, env.Prefs.TimeAdvance(), func() (govern.State, error) {
			select {
			case v := <-timerChan:
				if v {
					return govern.Ending, timedOut
				}
				startFrame.Store(int64(l.FrameNum()))
			default:
			}
			return govern.Running, nil
		})
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf(ProfileError, err)
	}

	numFrames := l.FrameNum() - int(startFrame.Load())
	fps, accuracy := CalcFPS(env.Prefs.FrameRate(), numFrames, duration.Seconds())
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, duration.Seconds(), accuracy)

	return nil
}
