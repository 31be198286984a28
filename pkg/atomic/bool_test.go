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

package atomic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBool(t *testing.T) {
	b := NewBool(true)
	require.True(t, b.Load())
	b.Store(false)
	require.False(t, b.Load())

	assert.False(t, b.Swap(true))
	assert.True(t, b.Load())
	assert.Equal(t, "true", b.String())

	o, v := b.CompareExchange(true, false)
	assert.Equal(t, Success, o)
	assert.True(t, v)
	assert.False(t, b.Load())

	o, v = b.CompareExchange(true, true)
	assert.Equal(t, Failure, o)
	assert.False(t, v)
	assert.False(t, b.Load())

	o, v = b.CompareExchangeWeak(false, true)
	assert.Equal(t, Success, o)
	assert.False(t, v)
	assert.True(t, b.Load())
}

func TestBoolFetchOps(t *testing.T) {
	type fetchFn func(b *Bool, v bool) bool

	and := func(b *Bool, v bool) bool { return b.FetchAnd(v) }
	or := func(b *Bool, v bool) bool { return b.FetchOr(v) }
	xor := func(b *Bool, v bool) bool { return b.FetchXor(v) }
	nand := func(b *Bool, v bool) bool { return b.FetchNand(v) }

	var tests = []struct {
		name     string
		fn       fetchFn
		init, in bool
		want     bool
	}{
		{"and tt", and, true, true, true},
		{"and tf", and, true, false, false},
		{"and ft", and, false, true, false},
		{"or ff", or, false, false, false},
		{"or ft", or, false, true, true},
		{"or tf", or, true, false, true},
		{"xor tt", xor, true, true, false},
		{"xor tf", xor, true, false, true},
		{"xor ft", xor, false, true, true},
		{"xor ff", xor, false, false, false},
		{"nand tt", nand, true, true, false},
		{"nand tf", nand, true, false, true},
		{"nand ft", nand, false, true, true},
		{"nand ff", nand, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBool(tt.init)
			assert.Equal(t, tt.init, tt.fn(b, tt.in))
			assert.Equal(t, tt.want, b.Load())
		})
	}
}
