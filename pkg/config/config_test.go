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

package config

import (
	"testing"
	"time"

	"github.com/rabbitstack/seqatomic/pkg/cells"
	"github.com/rabbitstack/seqatomic/pkg/stress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, file string, opts ...Option) (*Config, error) {
	c := NewWithOpts(opts...)

	require.NoError(t, c.flags.Parse([]string{"--config-file=" + file}))
	require.NoError(t, c.viper.BindPFlags(c.flags))
	require.NoError(t, c.TryLoadFile(c.File()))

	return c, c.Init()
}

func TestNewFromYamlFile(t *testing.T) {
	c, err := load(t, "_fixtures/seqatomic.yml", WithServe(), WithStress())
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Equal(t, "localhost:9091", c.API.Transport)
	assert.Equal(t, time.Second*5, c.API.Timeout)
	assert.Equal(t, float64(200), c.API.RateLimit)
	assert.Equal(t, 20, c.API.RateBurst)

	assert.Equal(t, "AtomicI32", c.Stress.Kind)
	assert.Equal(t, 8, c.Stress.Workers)
	assert.Equal(t, 1000, c.Stress.Iterations)
	assert.Equal(t, stress.CAS, c.Stress.Mode)

	require.Len(t, c.Cells, 3)
	assert.Equal(t, CellConfig{Name: "hits", Type: cells.U64, Value: cells.Uint(10)}, c.Cells[0])
	assert.Equal(t, CellConfig{Name: "ready", Type: cells.Bool, Value: cells.Boolean(true)}, c.Cells[1])
	assert.Equal(t, "delta", c.Cells[2].Name)
	assert.Equal(t, cells.I8, c.Cells[2].Type)
	assert.False(t, c.Cells[2].Value.IsSet())

	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "json", c.Log.Formatter)
	assert.Equal(t, 5, c.Log.MaxBackups)
}

func TestMissingConfigFile(t *testing.T) {
	c, err := load(t, "_fixtures/missing.yml", WithServe(), WithStress())
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Equal(t, "localhost:8483", c.API.Transport)
	assert.Equal(t, time.Second*15, c.API.Timeout)
	assert.Equal(t, float64(0), c.API.RateLimit)
	assert.Equal(t, 100, c.API.RateBurst)
	assert.Equal(t, "AtomicU64", c.Stress.Kind)
	assert.Equal(t, 100000, c.Stress.Iterations)
	assert.Equal(t, stress.FetchAdd, c.Stress.Mode)
	assert.Empty(t, c.Cells)
	assert.Equal(t, "info", c.Log.Level)
}

func TestInvalidConfigFile(t *testing.T) {
	c, err := load(t, "_fixtures/invalid.yml", WithStress())
	require.NoError(t, err)
	err = c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestCellsOnlyLoadedForServe(t *testing.T) {
	c, err := load(t, "_fixtures/seqatomic.yml", WithCall())
	require.NoError(t, err)
	assert.Empty(t, c.Cells)
	assert.Equal(t, "localhost:9091", c.API.Transport)
}

func TestInvalidCells(t *testing.T) {
	var tests = []struct {
		cell interface{}
		err  string
	}{
		{map[string]interface{}{"type": "AtomicU8"}, "cells[0] invalid config: cell name is required"},
		{map[string]interface{}{"name": "c", "type": "AtomicU65"}, "unknown cell type AtomicU65"},
		{map[string]interface{}{"name": "c", "type": "AtomicU8", "value": 1.5}, "1.5 is not an integer"},
		{map[string]interface{}{"name": "c", "type": "AtomicU8", "size": 8}, "invalid keys: size"},
	}

	for _, tt := range tests {
		c := NewWithOpts(WithServe())
		c.viper.Set(cellsKey, []interface{}{tt.cell})
		err := c.Init()
		require.Error(t, err)
		assert.Contains(t, err.Error(), tt.err)
	}
}

func TestPrint(t *testing.T) {
	c, err := load(t, "_fixtures/seqatomic.yml", WithServe())
	require.NoError(t, err)

	out := c.Print()
	assert.Contains(t, out, "api.transport")
	assert.Contains(t, out, "localhost:9091")
	assert.Contains(t, out, "name=>hits")
	assert.Contains(t, out, "logging.level")
}
