/*
 * Copyright 2019-2020 by Nedim Sabic Sabic
 * https://www.fibratus.io
 * All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package api

import (
	"context"
	"errors"
	"expvar"
	"net"
	"net/http"
	"net/http/pprof"
	"runtime/debug"
	"sync"

	"github.com/heptiolabs/healthcheck"
	"github.com/rabbitstack/seqatomic/pkg/api/handler"
	"github.com/rabbitstack/seqatomic/pkg/atomic"
	"github.com/rabbitstack/seqatomic/pkg/cells"
	"github.com/rabbitstack/seqatomic/pkg/config"
	log "github.com/sirupsen/logrus"
)

// goroutineThreshold flips the liveness probe when exceeded
const goroutineThreshold = 10000

var (
	mu       sync.Mutex
	srv      *http.Server
	listener net.Listener
	// serving is set once the listener is bound and the preset cells exist
	serving = atomic.NewBool(false)
)

// StartServer starts the HTTP server with the specified configuration. The cells
// defined in the configuration are created in the store once the listener is
// opened. If any of them can't be created, the ones created so far are removed
// and the listener is closed.
func StartServer(c *config.Config, store *cells.Store) error {
	mu.Lock()
	defer mu.Unlock()
	if srv != nil {
		return errors.New("API server is already running")
	}

	l, err := makeTCPListener(c.API.Transport)
	if err != nil {
		return err
	}

	created := make([]string, 0, len(c.Cells))
	for _, cell := range c.Cells {
		name, _, err := store.Create(cell.Name, cell.Type, cell.Value)
		if err != nil {
			for _, n := range created {
				_, _ = store.Remove(n)
			}
			_ = l.Close()
			return err
		}
		created = append(created, name)
		log.Infof("created %s cell %s with value %s", cell.Type, name, cell.Value)
	}

	listener = l
	srv = &http.Server{
		Handler:           NewHandler(c, store),
		ReadHeaderTimeout: c.API.Timeout,
		WriteTimeout:      c.API.Timeout,
	}

	go func(srv *http.Server, l net.Listener) {
		if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("unable to bind the API server: %v", err)
		}
	}(srv, l)

	serving.Store(true)
	log.Infof("API server listening on %s", l.Addr())

	return nil
}

// Addr returns the address of the running server listener.
func Addr() net.Addr {
	mu.Lock()
	defer mu.Unlock()
	if listener == nil {
		return nil
	}
	return listener.Addr()
}

// CloseServer gracefully shutdowns the server. In-flight requests are
// given until the context deadline to complete.
func CloseServer(ctx context.Context) error {
	mu.Lock()
	defer mu.Unlock()
	if srv == nil {
		return nil
	}
	serving.Store(false)
	err := srv.Shutdown(ctx)
	srv, listener = nil, nil
	return err
}

// NewHandler builds the routing tree of the API server.
func NewHandler(c *config.Config, store *cells.Store) http.Handler {
	metrics := handler.NewMetrics()
	h := handler.NewCells(store, metrics)

	health := healthcheck.NewHandler()
	health.AddLivenessCheck("goroutine-threshold", healthcheck.GoroutineCountCheck(goroutineThreshold))
	health.AddReadinessCheck("serving", func() error {
		if !serving.Load() {
			return errors.New("API server is not serving")
		}
		return nil
	})

	mux := http.NewServeMux()
	mux.HandleFunc("GET /types", h.Types)
	mux.HandleFunc("GET /cells", h.List)
	mux.HandleFunc("POST /cells", h.Create)
	mux.HandleFunc("GET /cells/{name}", h.Get)
	mux.HandleFunc("DELETE /cells/{name}", h.Delete)
	mux.HandleFunc("POST /cells/{name}/{op}", h.Invoke)

	mux.Handle("GET /config", handler.Config(c))
	mux.Handle("GET /metrics", metrics.Handler())
	mux.HandleFunc("GET /live", health.LiveEndpoint)
	mux.HandleFunc("GET /ready", health.ReadyEndpoint)

	mux.Handle("/debug/vars", expvar.Handler())
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	mux.HandleFunc("/debug/freemem", func(w http.ResponseWriter, r *http.Request) {
		debug.FreeOSMemory()
	})

	return countRequests(limitRequests(c.API.RateLimit, c.API.RateBurst, mux))
}
