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

package cells

import (
	"sync"
	"testing"

	"github.com/rabbitstack/seqatomic/pkg/atomic"
	kerrors "github.com/rabbitstack/seqatomic/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAllKinds(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			c, err := New(k, Value{})
			require.NoError(t, err)
			assert.Equal(t, k, c.Kind())
			if k == Bool {
				assert.Equal(t, Boolean(false), c.Load())
			} else {
				assert.Equal(t, "0", c.Load().String())
			}
		})
	}

	_, err := New(Kind(99), Value{})
	assert.True(t, kerrors.IsUnknownKind(err))

	_, err = New(I8, Int(300))
	assert.True(t, kerrors.IsInvalidValue(err))

	_, err = New(Bool, Int(1))
	assert.True(t, kerrors.IsInvalidValue(err))
}

func TestIntCell(t *testing.T) {
	c, err := New(U8, Uint(250))
	require.NoError(t, err)

	prev, err := c.Fetch(OpFetchAdd, Uint(10))
	require.NoError(t, err)
	assert.Equal(t, Uint(250), prev)
	assert.Equal(t, Uint(4), c.Load())

	prev, err = c.Swap(Uint(9))
	require.NoError(t, err)
	assert.Equal(t, Uint(4), prev)

	o, v, err := c.CompareExchange(Uint(1), Uint(2))
	require.NoError(t, err)
	assert.Equal(t, atomic.Failure, o)
	assert.Equal(t, Uint(9), v)

	o, v, err = c.CompareExchange(Uint(9), Uint(2))
	require.NoError(t, err)
	assert.Equal(t, atomic.Success, o)
	assert.Equal(t, Uint(9), v)
	assert.Equal(t, Uint(2), c.Load())

	_, _, err = c.CompareExchangeWeak(Int(-1), Uint(2))
	assert.True(t, kerrors.IsInvalidValue(err))

	v, err = c.Store(ParseValue("0x07"))
	require.NoError(t, err)
	assert.Equal(t, Uint(7), v)
	o, v, err = c.FetchAddMod(Uint(5), Uint(4))
	require.NoError(t, err)
	assert.Equal(t, atomic.Success, o)
	assert.Equal(t, Uint(0), v)

	_, _, err = c.FetchAddMod(Uint(1), Uint(0))
	assert.True(t, kerrors.IsZeroModulus(err))
	assert.Equal(t, Uint(0), c.Load())

	_, err = c.Store(Uint(256))
	assert.True(t, kerrors.IsInvalidValue(err))
	_, err = c.Fetch(OpLoad, Uint(1))
	assert.True(t, kerrors.IsUnsupportedOp(err))
}

func TestSignedCell(t *testing.T) {
	c, err := New(I16, Int(-5))
	require.NoError(t, err)

	prev, err := c.Fetch(OpFetchMin, Int(-10))
	require.NoError(t, err)
	assert.Equal(t, Int(-5), prev)
	assert.Equal(t, Int(-10), c.Load())

	prev, err = c.Fetch(OpFetchMax, Int(3))
	require.NoError(t, err)
	assert.Equal(t, Int(-10), prev)

	prev, err = c.Fetch(OpFetchSub, Int(4))
	require.NoError(t, err)
	assert.Equal(t, Int(3), prev)
	assert.Equal(t, Int(-1), c.Load())

	prev, err = c.Fetch(OpFetchNand, Int(0))
	require.NoError(t, err)
	assert.Equal(t, Int(-1), prev)
	assert.Equal(t, Int(-1), c.Load())
}

func TestBoolCell(t *testing.T) {
	c, err := New(Bool, Boolean(true))
	require.NoError(t, err)

	prev, err := c.Fetch(OpFetchNand, Boolean(true))
	require.NoError(t, err)
	assert.Equal(t, Boolean(true), prev)
	assert.Equal(t, Boolean(false), c.Load())

	o, v, err := c.CompareExchangeWeak(Boolean(true), Boolean(false))
	require.NoError(t, err)
	assert.Equal(t, atomic.Failure, o)
	assert.Equal(t, Boolean(false), v)

	for _, op := range []Op{OpFetchAdd, OpFetchSub, OpFetchMax, OpFetchMin} {
		_, err = c.Fetch(op, Boolean(true))
		assert.True(t, kerrors.IsUnsupportedOp(err), op)
	}
	_, _, err = c.FetchAddMod(Boolean(true), Boolean(true))
	assert.True(t, kerrors.IsUnsupportedOp(err))

	_, err = c.Store(Int(1))
	assert.True(t, kerrors.IsInvalidValue(err))
}

func TestInvoke(t *testing.T) {
	c, err := New(U32, Uint(1))
	require.NoError(t, err)

	var tests = []struct {
		call   Call
		status string
		value  Value
	}{
		{Call{Op: OpLoad}, "", Uint(1)},
		{Call{Op: OpStore, Value: Uint(5)}, "", Uint(5)},
		{Call{Op: OpSwap, Value: Uint(6)}, "", Uint(5)},
		{Call{Op: OpCompareExchange, Current: Uint(6), New: Uint(8)}, "Success", Uint(6)},
		{Call{Op: OpCompareExchange, Current: Uint(6), New: Uint(9)}, "Failure", Uint(8)},
		{Call{Op: OpFetchOr, Value: Uint(1)}, "", Uint(8)},
		{Call{Op: OpFetchAddMod, Value: Uint(1), Modulus: Uint(5)}, "Success", Uint(0)},
	}

	for _, tt := range tests {
		r, err := Invoke(c, tt.call)
		require.NoError(t, err, tt.call.Op)
		assert.Equal(t, tt.status, r.Status, tt.call.Op)
		assert.Equal(t, tt.value, r.Value, tt.call.Op)
	}

	r, err := Invoke(c, Call{Op: OpCompareExchangeWeak, Current: Uint(0), New: Uint(1)})
	require.NoError(t, err)
	o, ok := r.Outcome()
	require.True(t, ok)
	if o.Ok() {
		assert.Equal(t, Uint(1), c.Load())
	}

	_, err = Invoke(c, Call{})
	assert.True(t, kerrors.IsUnsupportedOp(err))

	r, err = Invoke(c, Call{Op: OpStore, Value: ParseValue("0x10")})
	require.NoError(t, err)
	assert.Equal(t, Uint(16), r.Value)
}

func TestResultOutcome(t *testing.T) {
	var tests = []struct {
		status  string
		outcome atomic.Outcome
		ok      bool
	}{
		{"Success", atomic.Success, true},
		{"Ok", atomic.Success, true},
		{"ok", atomic.Success, true},
		{"Failure", atomic.Failure, true},
		{"Err", atomic.Failure, true},
		{"", atomic.Failure, false},
		{"Maybe", atomic.Failure, false},
	}

	for _, tt := range tests {
		o, ok := Result{Status: tt.status}.Outcome()
		assert.Equal(t, tt.outcome, o, tt.status)
		assert.Equal(t, tt.ok, ok, tt.status)
	}
}

func TestInvokeStoreReturnsInstalledValue(t *testing.T) {
	c, err := New(U64, Uint(0))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 1; i <= 8; i++ {
		wg.Add(1)
		go func(n uint64) {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				r, err := Invoke(c, Call{Op: OpStore, Value: Uint(n)})
				if assert.NoError(t, err) {
					assert.Equal(t, Uint(n), r.Value)
				}
			}
		}(uint64(i))
	}
	wg.Wait()
}

func TestOps(t *testing.T) {
	assert.Len(t, Ops(U8), 14)
	assert.Len(t, Ops(Bool), 9)
	assert.NotContains(t, Ops(Bool), OpFetchAdd)
	assert.Equal(t, []Op{OpLoad, OpStore, OpSwap}, Ops(I64)[:3])
	assert.Equal(t, OpFetchAddMod, Ops(Usize)[13])
	assert.Nil(t, Ops(Kind(99)))

	assert.True(t, Supports(I8, OpFetchMin))
	assert.True(t, Supports(Bool, OpFetchNand))
	assert.False(t, Supports(Bool, OpFetchAdd))
	assert.False(t, Supports(U8, Op("fetch_mul")))

	b, err := New(Bool, Boolean(true))
	require.NoError(t, err)
	_, err = Invoke(b, Call{Op: OpFetchAdd, Value: Boolean(true)})
	require.Error(t, err)
	assert.True(t, kerrors.IsUnsupportedOp(err))
	assert.Equal(t, "fetch_add on AtomicBool: operation not supported", err.Error())

	assert.True(t, OpFetchAddMod.Conditional())
	assert.False(t, OpFetchAdd.Conditional())

	op, err := ParseOp("Fetch-Add-Mod")
	require.NoError(t, err)
	assert.Equal(t, OpFetchAddMod, op)

	_, err = ParseOp("fetch_mul")
	assert.True(t, kerrors.IsUnsupportedOp(err))
}
