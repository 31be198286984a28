/*
 * Copyright 2021-2026 by Nedim Sabic Sabic
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

// Package stress hammers a single integer cell from many workers and checks
// that no increment is lost.
package stress

import (
	"context"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/panjf2000/ants/v2"
	"github.com/pkg/errors"
	"github.com/rabbitstack/seqatomic/pkg/atomic"
	"github.com/rabbitstack/seqatomic/pkg/cells"
	kerrors "github.com/rabbitstack/seqatomic/pkg/errors"
	"github.com/shirou/gopsutil/v3/cpu"
	log "github.com/sirupsen/logrus"
	xcpu "golang.org/x/sys/cpu"
)

const (
	// spinLimit is the number of consecutive weak CAS failures tolerated before backing off
	spinLimit = 64
	// cancelMask controls how often workers poll the context
	cancelMask = 1023
)

// Report summarizes the contention run. Expected is Workers*Iterations
// wrapped at the width of the cell, and Lost is set if the cell doesn't
// hold the expected value once all workers are done.
type Report struct {
	Kind       cells.Kind    `json:"kind"`
	Mode       Mode          `json:"mode"`
	Workers    int           `json:"workers"`
	Iterations int           `json:"iterations"`
	Expected   string        `json:"expected"`
	Actual     string        `json:"actual"`
	Lost       bool          `json:"lost"`
	Ops        uint64        `json:"ops"`
	Retries    uint64        `json:"retries"`
	Backoffs   uint64        `json:"backoffs"`
	Elapsed    time.Duration `json:"elapsed"`
	Throughput float64       `json:"throughput"`
}

// counter is owned by a single worker. The padding keeps neighbouring
// counters off the same cache line.
type counter struct {
	_        xcpu.CacheLinePad
	ops      uint64
	retries  uint64
	backoffs uint64
	_        xcpu.CacheLinePad
}

// Run creates a zeroed cell of the configured kind and lets every worker
// increment it Iterations times through the configured mode. The run stops
// early if the context is canceled, in which case the context error is
// returned.
func Run(ctx context.Context, c Config) (*Report, error) {
	k, err := cells.ParseKind(c.Kind)
	if err != nil {
		return nil, err
	}
	if !k.IsInteger() {
		return nil, errors.Wrapf(kerrors.ErrUnsupportedOp, "increment on %s", k)
	}
	switch c.Mode {
	case FetchAdd, CAS, WeakCAS:
	case "":
		c.Mode = FetchAdd
	default:
		return nil, errors.Errorf("unknown stress mode %q", c.Mode)
	}
	if c.Iterations <= 0 {
		return nil, errors.Errorf("iterations must be positive, got %d", c.Iterations)
	}
	if c.Workers <= 0 {
		c.Workers = defaultWorkers()
	}

	pool, err := ants.NewPool(c.Workers, ants.WithPreAlloc(true))
	if err != nil {
		return nil, errors.Wrap(err, "unable to create worker pool")
	}
	defer pool.Release()

	r := &Report{Kind: k, Mode: c.Mode, Workers: c.Workers, Iterations: c.Iterations}

	log.WithFields(log.Fields{
		"kind":       k.String(),
		"mode":       c.Mode,
		"workers":    c.Workers,
		"iterations": c.Iterations,
	}).Info("starting stress run")

	switch k {
	case cells.I8:
		err = run[int8](ctx, pool, c, r)
	case cells.I16:
		err = run[int16](ctx, pool, c, r)
	case cells.I32:
		err = run[int32](ctx, pool, c, r)
	case cells.I64:
		err = run[int64](ctx, pool, c, r)
	case cells.Isize:
		err = run[int](ctx, pool, c, r)
	case cells.U8:
		err = run[uint8](ctx, pool, c, r)
	case cells.U16:
		err = run[uint16](ctx, pool, c, r)
	case cells.U32:
		err = run[uint32](ctx, pool, c, r)
	case cells.U64:
		err = run[uint64](ctx, pool, c, r)
	case cells.Usize:
		err = run[uintptr](ctx, pool, c, r)
	}
	if err != nil {
		return nil, err
	}

	if r.Lost {
		log.Errorf("stress run lost updates: expected %s, got %s", r.Expected, r.Actual)
	} else {
		log.Infof("stress run finished in %v with %d retries", r.Elapsed, r.Retries)
	}
	return r, nil
}

func run[T atomic.Integral](ctx context.Context, pool *ants.Pool, c Config, r *Report) error {
	cell := atomic.NewInteger[T](0)
	counters := make([]counter, c.Workers)

	var wg sync.WaitGroup
	start := time.Now()
	for i := range counters {
		cnt := &counters[i]
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			increment(ctx, cell, c, cnt)
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return errors.Wrap(err, "unable to submit stress worker")
		}
	}
	wg.Wait()
	r.Elapsed = time.Since(start)

	if err := ctx.Err(); err != nil {
		return err
	}

	for i := range counters {
		r.Ops += counters[i].ops
		r.Retries += counters[i].retries
		r.Backoffs += counters[i].backoffs
	}
	if secs := r.Elapsed.Seconds(); secs > 0 {
		r.Throughput = float64(r.Ops) / secs
	}

	expected := T(uint64(c.Workers) * uint64(c.Iterations))
	actual := cell.Load()
	r.Expected = format(expected)
	r.Actual = format(actual)
	r.Lost = expected != actual

	return nil
}

func increment[T atomic.Integral](ctx context.Context, cell *atomic.Integer[T], c Config, cnt *counter) {
	var b *backoff.ExponentialBackOff
	if c.Mode == WeakCAS {
		b = backoff.NewExponentialBackOff(
			backoff.WithInitialInterval(time.Microsecond),
			backoff.WithMaxInterval(time.Millisecond),
			backoff.WithMaxElapsedTime(0),
		)
	}

	for i := 0; i < c.Iterations; i++ {
		if i&cancelMask == 0 && ctx.Err() != nil {
			return
		}
		switch c.Mode {
		case FetchAdd:
			cell.FetchAdd(1)
		case CAS:
			cur := cell.Load()
			for {
				o, v := cell.CompareExchange(cur, cur+1)
				if o.Ok() {
					break
				}
				cur = v
				cnt.retries++
			}
		case WeakCAS:
			cur := cell.Load()
			streak := 0
			backedOff := false
			for {
				o, v := cell.CompareExchangeWeak(cur, cur+1)
				if o.Ok() {
					break
				}
				cur = v
				cnt.retries++
				streak++
				if streak >= spinLimit {
					time.Sleep(b.NextBackOff())
					cnt.backoffs++
					streak = 0
					backedOff = true
				}
			}
			if backedOff {
				b.Reset()
			}
		}
		cnt.ops++
	}
}

func defaultWorkers() int {
	n, err := cpu.Counts(true)
	if err != nil || n <= 0 {
		return runtime.NumCPU()
	}
	return n
}

func format[T atomic.Integral](v T) string {
	if v < 0 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatUint(uint64(v), 10)
}
