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

// Package statsview runs a local HTTP server offering runtime statistics of
// the running program. The charts are provided by the go-echarts/statsview
// package.
//
// After launch the statistics are viewable at:
//
//	localhost:12600/debug/statsview
//
// and the standard pprof statistics at:
//
//	localhost:12600/debug/pprof/
//
// The server is useful for watching the memory and goroutine behaviour of
// the frame loop over a long headless run.
package statsview
