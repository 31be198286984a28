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

package stress

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	kind       = "stress.kind"
	workers    = "stress.workers"
	iterations = "stress.iterations"
	mode       = "stress.mode"
)

// Mode determines the path each worker takes to increment the cell.
type Mode string

const (
	// FetchAdd increments the cell with the wait-free fetch-add.
	FetchAdd Mode = "fetch-add"
	// CAS increments the cell in a strong compare-exchange loop.
	CAS Mode = "cas"
	// WeakCAS increments the cell in a weak compare-exchange loop that backs off
	// after a streak of failed attempts.
	WeakCAS Mode = "weak-cas"
)

// Config contains the settings of the contention run.
type Config struct {
	// Kind is the name of the integer cell type under contention.
	Kind string `json:"stress.kind" yaml:"stress.kind"`
	// Workers is the number of concurrent workers. Zero means one worker per logical CPU.
	Workers int `json:"stress.workers" yaml:"stress.workers"`
	// Iterations is the number of increments each worker performs.
	Iterations int `json:"stress.iterations" yaml:"stress.iterations"`
	// Mode selects the increment path.
	Mode Mode `json:"stress.mode" yaml:"stress.mode"`
}

// AddFlags registers persistent stress flags.
func AddFlags(flags *pflag.FlagSet) {
	flags.String(kind, "AtomicU64", "Specifies the integer cell type under contention")
	flags.Int(workers, 0, "Determines the number of concurrent workers. By default, one worker per logical CPU is started")
	flags.Int(iterations, 100000, "Specifies the number of increments performed by each worker")
	flags.String(mode, string(FetchAdd), "Selects the increment path (fetch-add|cas|weak-cas)")
}

// InitFromViper initializes stress flags from viper.
func (c *Config) InitFromViper(v *viper.Viper) {
	c.Kind = v.GetString(kind)
	c.Workers = v.GetInt(workers)
	c.Iterations = v.GetInt(iterations)
	c.Mode = Mode(v.GetString(mode))
}
