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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/emuxsync/environment"
	"github.com/jetsetilly/emuxsync/framesync"
	"github.com/jetsetilly/emuxsync/govern"
	"github.com/jetsetilly/emuxsync/gui/sdlplay"
	"github.com/jetsetilly/emuxsync/hardware/core"
	"github.com/jetsetilly/emuxsync/hardware/tape"
	"github.com/jetsetilly/emuxsync/logger"
	"github.com/jetsetilly/emuxsync/macro"
	"github.com/jetsetilly/emuxsync/modalflag"
	"github.com/jetsetilly/emuxsync/notifications"
	"github.com/jetsetilly/emuxsync/paths"
	"github.com/jetsetilly/emuxsync/performance"
	"github.com/jetsetilly/emuxsync/statsview"
	"github.com/jetsetilly/emuxsync/userinput"
)

// the amount of time the emulation goroutine sleeps between checks while
// paused
const pausedSleep = 20 * time.Millisecond

// options shared by the RUN and HEADLESS modes.
type options struct {
	tape      *string
	blank     *int
	saveTape  *string
	play      *bool
	loadState *string
	saveState *string
	macro     *string
	lua       *string
	record    *string
	dump      *string
	stats     *bool
	log       *bool
}

func addOptions(md *modalflag.Modes) *options {
	md.AddPrefs()
	return &options{
		tape:      md.AddString("tape", "", "tape file to attach (WAV or MP3)"),
		blank:     md.AddInt("blank", 0, "attach a blank tape of the length in seconds (ignored if -tape is used)"),
		saveTape:  md.AddString("savetape", "", "save the tape as a WAV file on exit"),
		play:      md.AddBool("play", false, "start the tape playing"),
		loadState: md.AddString("loadstate", "", "load emulation state before running"),
		saveState: md.AddString("savestate", "", "save emulation state on exit"),
		macro:     md.AddString("macro", "", "macro file to run"),
		lua:       md.AddString("lua", "", "lua script to run"),
		record:    md.AddString("record", "", "record user input to a macro file"),
		dump:      md.AddString("dump", "", "write a graphviz dump of the frame loop state on exit"),
		stats:     md.AddBool("stats", false, "run stats server ("+statsview.DefaultAddress+")"),
		log:       md.AddBool("log", false, "echo debugging log to stdout"),
	}
}

// session is a single run of the emulation in either the RUN or HEADLESS
// mode.
type session struct {
	opts *options
	env  *environment.Environment
	core *core.Headless
	loop *framesync.Loop

	// set by any goroutine to end the emulation
	quit atomic.Bool

	// only accessed by the emulation goroutine
	paused bool

	// additional quit condition checked by the emulation goroutine
	ended func() bool
}

func newSession(opts *options) (*session, error) {
	if *opts.log {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	if err != nil {
		return nil, err
	}

	c, err := core.NewHeadless(env)
	if err != nil {
		return nil, err
	}

	return &session{
		opts: opts,
		env:  env,
		core: c,
	}, nil
}

func (s *session) end() {
	s.quit.Store(true)
}

// prepare the loop before running. must be called after the loop has been
// created.
func (s *session) prepare() error {
	s.loop.SetPauseHandler(func() {
		s.paused = true
	})

	if *s.opts.loadState != "" {
		if err := s.core.LoadState(*s.opts.loadState); err != nil {
			return err
		}
	}

	if *s.opts.tape != "" {
		if err := s.loop.AttachTape(*s.opts.tape); err != nil {
			return err
		}
	} else if *s.opts.blank > 0 {
		s.loop.CreateTape(float64(*s.opts.blank))
	}

	if *s.opts.play {
		s.loop.TapeCommand(tape.Play)
	}

	return nil
}

// run the emulation until the session has ended. producers that depend on
// the frame loop are started and stopped here.
func (s *session) run() error {
	if *s.opts.stats {
		srv := statsview.Launch(os.Stdout, "")
		defer srv.Stop()
	}

	if *s.opts.record != "" {
		f, err := os.Create(*s.opts.record)
		if err != nil {
			return err
		}
		defer f.Close()

		rec, err := macro.NewRecorder(f)
		if err != nil {
			return err
		}
		s.loop.Queue().AttachRecorder(rec)
		s.loop.AddFrameTrigger(rec)
		defer func() {
			s.loop.RemoveFrameTrigger(rec)
			s.loop.Queue().AttachRecorder(nil)
			if err := rec.Err(); err != nil {
				logger.Log(s.env, "emuxsync", err)
			}
		}()
	}

	if *s.opts.macro != "" {
		mcr, err := macro.NewMacro(s.env, *s.opts.macro, s.loop, s.end)
		if err != nil {
			return err
		}
		mcr.Run()
		defer mcr.Quit()
	}

	if *s.opts.lua != "" {
		lm, err := macro.NewLua(s.env, *s.opts.lua, s.loop, s.end)
		if err != nil {
			return err
		}
		lm.Run()
		defer lm.Quit()
	}

	err := core.Run(s.core, s.env.Prefs.TimeAdvance(), s.continueCheck)
	if err != nil {
		return err
	}

	return s.finish()
}

// called by core.Run() after every run of the core.
func (s *session) continueCheck() (govern.State, error) {
	if s.quit.Load() || (s.ended != nil && s.ended()) {
		return govern.Ending, nil
	}

	if s.paused {
		// the pause trap toggles the paused state. the queue is not drained
		// while paused so the trap is taken here
		if s.loop.Queue().TakeTrap() {
			s.paused = false
			return govern.Running, nil
		}
		time.Sleep(pausedSleep)
		return govern.Paused, nil
	}

	return govern.Running, nil
}

// save the state requested by the options.
func (s *session) finish() error {
	saveTape := *s.opts.saveTape

	// a tape that has been recorded to is never lost
	if tp := s.loop.Tape(); saveTape == "" && tp != nil && tp.Dirty() {
		name := strings.TrimSuffix(filepath.Base(tp.Filename()), filepath.Ext(tp.Filename()))
		saveTape = paths.UniqueFilename("tape", name) + ".wav"
	}

	if saveTape != "" {
		if err := s.loop.SaveTape(saveTape); err != nil {
			return err
		}
		fmt.Printf("* tape saved to %s\n", saveTape)
	}

	if *s.opts.saveState != "" {
		if err := s.core.SaveState(*s.opts.saveState); err != nil {
			return err
		}
	}

	if *s.opts.dump != "" {
		f, err := os.Create(*s.opts.dump)
		if err != nil {
			return err
		}
		defer f.Close()
		s.loop.DumpState(f)
	}

	return nil
}

// stop the session on an interrupt signal. the returned function stops
// listening for the signal.
func (s *session) interrupt(sync *mainSync) func() {
	sync.state <- stateRequest{req: reqNoIntSig}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	done := make(chan struct{})
	go func() {
		select {
		case <-intChan:
			s.end()
		case <-done:
		}
	}()

	return func() {
		signal.Stop(intChan)
		close(done)
	}
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	opts := addOptions(md)
	scale := md.AddInt("scale", 2, "window scaling")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	s, err := newSession(opts)
	if err != nil {
		return err
	}

	sync.creator <- func() (GuiCreator, error) {
		return sdlplay.NewSdlPlay(int32(*scale))
	}

	var scr *sdlplay.SdlPlay
	select {
	case g := <-sync.creation:
		scr = g.(*sdlplay.SdlPlay)
	case err := <-sync.creationError:
		return err
	}

	s.loop, err = framesync.NewLoop(s.env, s.core, scr, scr, true)
	if err != nil {
		return err
	}
	defer s.loop.Close()

	scr.SetEmulation(s.loop, &s.env.Prefs.KeysAsJoystick)
	s.ended = scr.Quit

	stop := s.interrupt(sync)
	defer stop()

	if err := s.prepare(); err != nil {
		return err
	}

	if err := s.run(); err != nil {
		return err
	}

	// save preferences before finishing successfully
	return s.env.Prefs.Save()
}

// headlessNotify prints notifications to stdout.
type headlessNotify struct{}

func (headlessNotify) Notify(notice notifications.Notice) error {
	switch notice {
	case notifications.NotifyIdle:
		fmt.Println("* idle")
	case notifications.NotifyPause:
		fmt.Println("* paused")
	case notifications.NotifyTapeRejected:
		fmt.Println("* tape request rejected")
	}
	return nil
}

func headless(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	opts := addOptions(md)
	frames := md.AddInt("frames", 0, "number of frames to run for (0 is unlimited)")
	terminal := md.AddBool("terminal", true, "read keyboard input from the terminal")
	warp := md.AddBool("warp", false, "run without frame limiting")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	s, err := newSession(opts)
	if err != nil {
		return err
	}

	s.loop, err = framesync.NewLoop(s.env, s.core, nil, headlessNotify{}, true)
	if err != nil {
		return err
	}
	defer s.loop.Close()

	s.loop.SetWarp(*warp)

	if *frames > 0 {
		s.ended = func() bool {
			return s.loop.FrameNum() >= *frames
		}
	}

	stop := s.interrupt(sync)
	defer stop()

	if *terminal {
		t, err := userinput.OpenTerminal(s.env, s.loop, s.end)
		if err != nil {
			return err
		}
		defer t.Close()

		go func() {
			if err := t.Service(); err != nil {
				logger.Log(s.env, "emuxsync", err)
			}
		}()
	}

	if err := s.prepare(); err != nil {
		return err
	}

	return s.run()
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	md.AddPrefs()
	tapeFile := md.AddString("tape", "", "tape file to play during the check")
	pace := md.AddBool("pace", false, "limit the frame rate to the timing preference")
	duration := md.AddDuration("duration", 5*time.Second, "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run through profiler: CPU, MEM, TRACE, ALL (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prf, env, *tapeFile, *pace, *duration)
}
