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

// Package cells exports the atomic cell family across a runtime boundary.
// Every cell type is registered under a stable name and can be constructed
// and operated on through boxed values, without the caller knowing the
// concrete Go type.
package cells

import (
	"github.com/pkg/errors"
	"github.com/rabbitstack/seqatomic/pkg/atomic"
	kerrors "github.com/rabbitstack/seqatomic/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Cell is the type-erased view of an atomic cell. The methods mirror the
// typed operation set, but accept and return boxed values. Errors are only
// returned for values that don't fit into the cell's type, and for
// operations the cell doesn't support. A failed comparison is still
// reported through the outcome.
type Cell interface {
	// Kind returns the exported type of the cell.
	Kind() Kind
	// Load returns the current value.
	Load() Value
	// Store replaces the value and returns the value that was installed.
	Store(v Value) (Value, error)
	// Swap replaces the value and returns the previous one.
	Swap(v Value) (Value, error)
	// CompareExchange is the strong conditional update.
	CompareExchange(current, new Value) (atomic.Outcome, Value, error)
	// CompareExchangeWeak is the conditional update that may fail spuriously.
	CompareExchangeWeak(current, new Value) (atomic.Outcome, Value, error)
	// Fetch applies one of the fetch operations and returns the previous value.
	Fetch(op Op, v Value) (Value, error)
	// FetchAddMod installs (current + v) % m and returns the installed value.
	// Unlike the typed cell, a zero modulus is reported as ErrZeroModulus.
	FetchAddMod(v, m Value) (atomic.Outcome, Value, error)
}

// New constructs a cell of the given kind. The zero value of the kind is
// used if the initial value is not set.
func New(kind Kind, initial Value) (Cell, error) {
	switch kind {
	case I8:
		return newSigned[int8](kind, initial)
	case I16:
		return newSigned[int16](kind, initial)
	case I32:
		return newSigned[int32](kind, initial)
	case I64:
		return newSigned[int64](kind, initial)
	case Isize:
		return newSigned[int](kind, initial)
	case U8:
		return newUnsigned[uint8](kind, initial)
	case U16:
		return newUnsigned[uint16](kind, initial)
	case U32:
		return newUnsigned[uint32](kind, initial)
	case U64:
		return newUnsigned[uint64](kind, initial)
	case Usize:
		return newUnsigned[uintptr](kind, initial)
	case Bool:
		return newBool(initial)
	default:
		return nil, kerrors.ErrUnknownKind{Name: kind.String()}
	}
}

type signed interface {
	constraints.Signed
	atomic.Integral
}

type unsigned interface {
	constraints.Unsigned
	atomic.Integral
}

func newSigned[T signed](kind Kind, initial Value) (Cell, error) {
	if !initial.IsSet() {
		initial = Int(0)
	}
	v, err := toSigned[T](initial)
	if err != nil {
		return nil, err
	}
	return &intCell[T]{kind: kind, c: atomic.NewInteger(v), unbox: toSigned[T], box: fromSigned[T]}, nil
}

func newUnsigned[T unsigned](kind Kind, initial Value) (Cell, error) {
	if !initial.IsSet() {
		initial = Uint(0)
	}
	v, err := toUnsigned[T](initial)
	if err != nil {
		return nil, err
	}
	return &intCell[T]{kind: kind, c: atomic.NewInteger(v), unbox: toUnsigned[T], box: fromUnsigned[T]}, nil
}

// intCell adapts the typed integer cell. The boxing functions are picked
// by the constructor according to the signedness of T.
type intCell[T atomic.Integral] struct {
	kind  Kind
	c     *atomic.Integer[T]
	unbox func(Value) (T, error)
	box   func(T) Value
}

func (i *intCell[T]) Kind() Kind  { return i.kind }
func (i *intCell[T]) Load() Value { return i.box(i.c.Load()) }

func (i *intCell[T]) Store(v Value) (Value, error) {
	x, err := i.unbox(v)
	if err != nil {
		return Value{}, err
	}
	i.c.Store(x)
	return i.box(x), nil
}

func (i *intCell[T]) Swap(v Value) (Value, error) {
	x, err := i.unbox(v)
	if err != nil {
		return Value{}, err
	}
	return i.box(i.c.Swap(x)), nil
}

func (i *intCell[T]) CompareExchange(current, new Value) (atomic.Outcome, Value, error) {
	return i.cas(current, new, i.c.CompareExchange)
}

func (i *intCell[T]) CompareExchangeWeak(current, new Value) (atomic.Outcome, Value, error) {
	return i.cas(current, new, i.c.CompareExchangeWeak)
}

func (i *intCell[T]) cas(current, new Value, fn func(T, T) (atomic.Outcome, T)) (atomic.Outcome, Value, error) {
	cur, err := i.unbox(current)
	if err != nil {
		return atomic.Failure, Value{}, errors.Wrap(err, "current")
	}
	n, err := i.unbox(new)
	if err != nil {
		return atomic.Failure, Value{}, errors.Wrap(err, "new")
	}
	o, v := fn(cur, n)
	return o, i.box(v), nil
}

func (i *intCell[T]) Fetch(op Op, v Value) (Value, error) {
	var fn func(T) T
	switch op {
	case OpFetchAnd:
		fn = i.c.FetchAnd
	case OpFetchOr:
		fn = i.c.FetchOr
	case OpFetchXor:
		fn = i.c.FetchXor
	case OpFetchNand:
		fn = i.c.FetchNand
	case OpFetchAdd:
		fn = i.c.FetchAdd
	case OpFetchSub:
		fn = i.c.FetchSub
	case OpFetchMax:
		fn = i.c.FetchMax
	case OpFetchMin:
		fn = i.c.FetchMin
	default:
		return Value{}, errors.Wrapf(kerrors.ErrUnsupportedOp, "%s on %s", op, i.kind)
	}
	x, err := i.unbox(v)
	if err != nil {
		return Value{}, err
	}
	return i.box(fn(x)), nil
}

func (i *intCell[T]) FetchAddMod(v, m Value) (atomic.Outcome, Value, error) {
	x, err := i.unbox(v)
	if err != nil {
		return atomic.Failure, Value{}, err
	}
	mod, err := i.unbox(m)
	if err != nil {
		return atomic.Failure, Value{}, errors.Wrap(err, "modulus")
	}
	if mod == 0 {
		return atomic.Failure, Value{}, kerrors.ErrZeroModulus
	}
	o, n := i.c.FetchAddMod(x, mod)
	return o, i.box(n), nil
}

type boolCell struct {
	c *atomic.Bool
}

func newBool(initial Value) (Cell, error) {
	if !initial.IsSet() {
		initial = Boolean(false)
	}
	v, err := initial.Bool()
	if err != nil {
		return nil, err
	}
	return &boolCell{c: atomic.NewBool(v)}, nil
}

func (b *boolCell) Kind() Kind  { return Bool }
func (b *boolCell) Load() Value { return Boolean(b.c.Load()) }

func (b *boolCell) Store(v Value) (Value, error) {
	x, err := v.Bool()
	if err != nil {
		return Value{}, err
	}
	b.c.Store(x)
	return Boolean(x), nil
}

func (b *boolCell) Swap(v Value) (Value, error) {
	x, err := v.Bool()
	if err != nil {
		return Value{}, err
	}
	return Boolean(b.c.Swap(x)), nil
}

func (b *boolCell) CompareExchange(current, new Value) (atomic.Outcome, Value, error) {
	return b.cas(current, new, b.c.CompareExchange)
}

func (b *boolCell) CompareExchangeWeak(current, new Value) (atomic.Outcome, Value, error) {
	return b.cas(current, new, b.c.CompareExchangeWeak)
}

func (b *boolCell) cas(current, new Value, fn func(bool, bool) (atomic.Outcome, bool)) (atomic.Outcome, Value, error) {
	cur, err := current.Bool()
	if err != nil {
		return atomic.Failure, Value{}, errors.Wrap(err, "current")
	}
	n, err := new.Bool()
	if err != nil {
		return atomic.Failure, Value{}, errors.Wrap(err, "new")
	}
	o, v := fn(cur, n)
	return o, Boolean(v), nil
}

func (b *boolCell) Fetch(op Op, v Value) (Value, error) {
	var fn func(bool) bool
	switch op {
	case OpFetchAnd:
		fn = b.c.FetchAnd
	case OpFetchOr:
		fn = b.c.FetchOr
	case OpFetchXor:
		fn = b.c.FetchXor
	case OpFetchNand:
		fn = b.c.FetchNand
	default:
		return Value{}, errors.Wrapf(kerrors.ErrUnsupportedOp, "%s on %s", op, Bool)
	}
	x, err := v.Bool()
	if err != nil {
		return Value{}, err
	}
	return Boolean(fn(x)), nil
}

func (b *boolCell) FetchAddMod(_, _ Value) (atomic.Outcome, Value, error) {
	return atomic.Failure, Value{}, errors.Wrapf(kerrors.ErrUnsupportedOp, "%s on %s", OpFetchAddMod, Bool)
}
