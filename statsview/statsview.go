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

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/jetsetilly/emuxsync/logger"
)

// DefaultAddress of the stats server.
const DefaultAddress = "localhost:12600"

const url = "/debug/statsview"

// refresh interval of the charts in milliseconds. the frame loop runs at
// around 50Hz so there is little point in sampling more often than this
const interval = 1000

// Server is a running stats server.
type Server struct {
	mgr  *statsview.ViewManager
	addr string
}

// Launch the stats server at the address. If the address is empty the
// DefaultAddress is used. The address of the stats page is written to the
// output.
func Launch(output io.Writer, addr string) *Server {
	if addr == "" {
		addr = DefaultAddress
	}

	viewer.SetConfiguration(viewer.WithAddr(addr), viewer.WithInterval(interval))

	srv := &Server{
		mgr:  statsview.New(),
		addr: addr,
	}

	go func() {
		if err := srv.mgr.Start(); err != nil {
			logger.Logf(logger.Allow, "statsview", "server stopped: %v", err)
		}
	}()

	if output != nil {
		fmt.Fprintf(output, "stats server available at %s\n", srv.URL())
	}

	return srv
}

// URL of the stats page.
func (srv *Server) URL() string {
	return fmt.Sprintf("http://%s%s", srv.addr, url)
}

// Stop the stats server.
func (srv *Server) Stop() {
	srv.mgr.Stop()
}
