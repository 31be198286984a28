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
	"strconv"
	atom "sync/atomic"
)

// Integer is an atomic integer cell of type T.
//
// The value lives in a 64-bit word owned exclusively by the cell. The observable
// value is always the word truncated to the width of T. Bits above that width may
// hold residue left by the native wraparound of add and sub, so every comparison
// is done on the truncated value.
type Integer[T Integral] struct {
	_ noCopy
	w atom.Uint64
}

// NewInteger creates a new integer cell holding v.
func NewInteger[T Integral](v T) *Integer[T] {
	c := &Integer[T]{}
	c.w.Store(uint64(v))
	return c
}

// Load returns the current value.
func (c *Integer[T]) Load() T { return T(c.w.Load()) }

// Store unconditionally replaces the value.
func (c *Integer[T]) Store(v T) { c.w.Store(uint64(v)) }

// Swap replaces the value and returns the previous one.
func (c *Integer[T]) Swap(v T) T { return T(c.w.Swap(uint64(v))) }

// CompareExchange stores new if the cell holds current. On success, it returns
// Success along with the previous value, which is equal to current. Otherwise,
// the cell is left unchanged and Failure is returned with the value that was
// witnessed in the cell.
func (c *Integer[T]) CompareExchange(current, new T) (Outcome, T) {
	for {
		old := c.w.Load()
		if T(old) != current {
			return Failure, T(old)
		}
		// the word may differ from current only in the residue bits,
		// so a failed swap means another operation landed in between
		if c.w.CompareAndSwap(old, uint64(new)) {
			return Success, current
		}
	}
}

// CompareExchangeWeak is like CompareExchange but it makes a single attempt
// and may report Failure even if the cell holds current. It never reports
// Success spuriously. Callers are expected to retry in a loop.
func (c *Integer[T]) CompareExchangeWeak(current, new T) (Outcome, T) {
	old := c.w.Load()
	if T(old) != current {
		return Failure, T(old)
	}
	if c.w.CompareAndSwap(old, uint64(new)) {
		return Success, current
	}
	return Failure, c.Load()
}

// FetchAnd performs the bitwise AND with v and returns the previous value.
func (c *Integer[T]) FetchAnd(v T) T { return T(c.w.And(uint64(v))) }

// FetchOr performs the bitwise OR with v and returns the previous value.
func (c *Integer[T]) FetchOr(v T) T { return T(c.w.Or(uint64(v))) }

// FetchXor performs the bitwise XOR with v and returns the previous value.
func (c *Integer[T]) FetchXor(v T) T {
	return c.update(func(old T) T { return old ^ v })
}

// FetchNand performs the bitwise NAND with v and returns the previous value.
func (c *Integer[T]) FetchNand(v T) T {
	return c.update(func(old T) T { return ^(old & v) })
}

// FetchAdd adds v and returns the previous value. The addition wraps around
// at the width of T.
func (c *Integer[T]) FetchAdd(v T) T {
	return T(c.w.Add(uint64(v)) - uint64(v))
}

// FetchSub subtracts v and returns the previous value. The subtraction wraps
// around at the width of T.
func (c *Integer[T]) FetchSub(v T) T {
	return T(c.w.Add(-uint64(v)) + uint64(v))
}

// FetchMax stores the maximum of the current value and v and returns the
// previous value.
func (c *Integer[T]) FetchMax(v T) T {
	return c.update(func(old T) T { return max(old, v) })
}

// FetchMin stores the minimum of the current value and v and returns the
// previous value.
func (c *Integer[T]) FetchMin(v T) T {
	return c.update(func(old T) T { return min(old, v) })
}

// FetchAddMod atomically sets the cell to (current + v) % m and returns
// Success along with the installed value. The addition wraps around at the
// width of T before the remainder is taken.
//
// The modulus must not be zero. A zero modulus panics with the runtime
// integer divide by zero error, exactly as the % operator does.
func (c *Integer[T]) FetchAddMod(v, m T) (Outcome, T) {
	for {
		old := c.w.Load()
		next := (T(old) + v) % m
		if c.w.CompareAndSwap(old, uint64(next)) {
			return Success, next
		}
	}
}

// String returns the decimal representation of the current value.
func (c *Integer[T]) String() string {
	v := c.Load()
	if v < 0 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatUint(uint64(v), 10)
}

// update applies fn to the current value in a compare-and-swap loop until the
// result is installed and returns the value fn was applied to.
func (c *Integer[T]) update(fn func(T) T) T {
	for {
		old := c.w.Load()
		if c.w.CompareAndSwap(old, uint64(fn(T(old)))) {
			return T(old)
		}
	}
}
