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

// Bool provides an atomic boolean cell. It supports the logical fetch
// operations, but not the arithmetic ones.
type Bool struct {
	_ noCopy
	u atom.Uint32 // always 0 or 1
}

// NewBool creates a new boolean cell holding v.
func NewBool(v bool) *Bool {
	b := &Bool{}
	b.u.Store(btoi(v))
	return b
}

func (b *Bool) Load() bool       { return itob(b.u.Load()) }
func (b *Bool) Store(v bool)     { b.u.Store(btoi(v)) }
func (b *Bool) Swap(v bool) bool { return itob(b.u.Swap(btoi(v))) }

// CompareExchange stores new if the cell holds current. A boolean has only
// two states, so a failed swap witnessed the negation of current.
func (b *Bool) CompareExchange(current, new bool) (Outcome, bool) {
	if b.u.CompareAndSwap(btoi(current), btoi(new)) {
		return Success, current
	}
	return Failure, !current
}

// CompareExchangeWeak has the same contract as CompareExchange. The boolean
// form never fails spuriously.
func (b *Bool) CompareExchangeWeak(current, new bool) (Outcome, bool) {
	return b.CompareExchange(current, new)
}

// FetchAnd performs the logical AND with v and returns the previous value.
func (b *Bool) FetchAnd(v bool) bool { return itob(b.u.And(btoi(v))) }

// FetchOr performs the logical OR with v and returns the previous value.
func (b *Bool) FetchOr(v bool) bool { return itob(b.u.Or(btoi(v))) }

// FetchXor performs the logical XOR with v and returns the previous value.
func (b *Bool) FetchXor(v bool) bool {
	for {
		old := b.u.Load()
		if b.u.CompareAndSwap(old, old^btoi(v)) {
			return itob(old)
		}
	}
}

// FetchNand performs the logical NAND with v and returns the previous value.
func (b *Bool) FetchNand(v bool) bool {
	if v {
		// !(x && true) == !x
		return b.FetchXor(true)
	}
	// !(x && false) == true
	return b.Swap(true)
}

// String returns "true" or "false".
func (b *Bool) String() string { return strconv.FormatBool(b.Load()) }
