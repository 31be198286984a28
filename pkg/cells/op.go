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
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/pkg/errors"
	"github.com/rabbitstack/seqatomic/pkg/atomic"
	kerrors "github.com/rabbitstack/seqatomic/pkg/errors"
)

// Op is the name of the cell operation.
type Op string

const (
	OpLoad                Op = "load"
	OpStore               Op = "store"
	OpSwap                Op = "swap"
	OpCompareExchange     Op = "compare_exchange"
	OpCompareExchangeWeak Op = "compare_exchange_weak"
	OpFetchAnd            Op = "fetch_and"
	OpFetchOr             Op = "fetch_or"
	OpFetchXor            Op = "fetch_xor"
	OpFetchNand           Op = "fetch_nand"
	OpFetchAdd            Op = "fetch_add"
	OpFetchSub            Op = "fetch_sub"
	OpFetchMax            Op = "fetch_max"
	OpFetchMin            Op = "fetch_min"
	OpFetchAddMod         Op = "fetch_add_mod"
)

// ops lists all operations in the export order. The position of the
// operation is its bit in the support table.
var ops = [...]Op{
	OpLoad, OpStore, OpSwap, OpCompareExchange, OpCompareExchangeWeak,
	OpFetchAnd, OpFetchOr, OpFetchXor, OpFetchNand,
	OpFetchAdd, OpFetchSub, OpFetchMax, OpFetchMin, OpFetchAddMod,
}

// arithStart is the index of the first operation reserved for integer kinds.
const arithStart = 9

// support holds the bitset of operations each kind exposes.
var support [len(kinds)]*bitset.BitSet

func init() {
	for k := range kinds {
		bs := bitset.New(uint(len(ops)))
		for i := range ops {
			if i < arithStart || Kind(k).IsInteger() {
				bs.Set(uint(i))
			}
		}
		support[k] = bs
	}
}

func (op Op) index() (uint, bool) {
	for i, o := range ops {
		if o == op {
			return uint(i), true
		}
	}
	return 0, false
}

// Ops returns the operations supported by the kind.
func Ops(kind Kind) []Op {
	if !kind.valid() {
		return nil
	}
	bs := support[kind]
	list := make([]Op, 0, bs.Count())
	for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
		list = append(list, ops[i])
	}
	return list
}

// Supports determines whether the kind exposes the operation.
func Supports(kind Kind, op Op) bool {
	i, ok := op.index()
	return ok && kind.valid() && support[kind].Test(i)
}

// Conditional returns true for the operations that report an outcome.
func (op Op) Conditional() bool {
	return op == OpCompareExchange || op == OpCompareExchangeWeak || op == OpFetchAddMod
}

// ParseOp resolves the operation name. Dashes are accepted in place of
// underscores.
func ParseOp(s string) (Op, error) {
	op := Op(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	if _, ok := op.index(); ok {
		return op, nil
	}
	return "", errors.Wrapf(kerrors.ErrUnsupportedOp, "unknown operation %q", s)
}

// Call carries the operands of the operation. Only the operands relevant
// to the operation are consulted.
type Call struct {
	Op      Op    `json:"-"`
	Value   Value `json:"value"`
	Current Value `json:"current"`
	New     Value `json:"new"`
	Modulus Value `json:"modulus"`
}

// Result is the outcome of the invoked operation. Status is empty for
// operations that can't fail.
type Result struct {
	Status string `json:"status,omitempty"`
	Value  Value  `json:"value"`
}

// Invoke dispatches the call to the cell. The store operation yields the
// stored value.
func Invoke(c Cell, call Call) (Result, error) {
	if call.Op == "" {
		return Result{}, errors.Wrap(kerrors.ErrUnsupportedOp, "missing operation")
	}
	if !Supports(c.Kind(), call.Op) {
		return Result{}, errors.Wrapf(kerrors.ErrUnsupportedOp, "%s on %s", call.Op, c.Kind())
	}
	switch call.Op {
	case OpLoad:
		return Result{Value: c.Load()}, nil
	case OpStore:
		v, err := c.Store(call.Value)
		if err != nil {
			return Result{}, err
		}
		return Result{Value: v}, nil
	case OpSwap:
		v, err := c.Swap(call.Value)
		if err != nil {
			return Result{}, err
		}
		return Result{Value: v}, nil
	case OpCompareExchange, OpCompareExchangeWeak:
		cas := c.CompareExchange
		if call.Op == OpCompareExchangeWeak {
			cas = c.CompareExchangeWeak
		}
		o, v, err := cas(call.Current, call.New)
		if err != nil {
			return Result{}, err
		}
		return Result{Status: o.String(), Value: v}, nil
	case OpFetchAddMod:
		o, v, err := c.FetchAddMod(call.Value, call.Modulus)
		if err != nil {
			return Result{}, err
		}
		return Result{Status: o.String(), Value: v}, nil
	default:
		v, err := c.Fetch(call.Op, call.Value)
		if err != nil {
			return Result{}, err
		}
		return Result{Value: v}, nil
	}
}

// Outcome parses the status returned by the conditional operation. Both the
// outcome names and the Ok/Err aliases are recognized. Failure is returned
// for statuses that can't be parsed.
func (r Result) Outcome() (atomic.Outcome, bool) {
	return atomic.ParseOutcome(r.Status)
}
