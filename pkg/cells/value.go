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
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"unsafe"

	"github.com/pkg/errors"
	kerrors "github.com/rabbitstack/seqatomic/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Value is the scalar that crosses the boundary. It carries either a
// number in its decimal form or a boolean. The number is converted into
// the cell's scalar type only when it reaches the cell, so that the range
// can be checked against the exact width.
type Value struct {
	num    string
	b      bool
	isBool bool
}

// Int boxes a signed integer.
func Int(v int64) Value { return Value{num: strconv.FormatInt(v, 10)} }

// Uint boxes an unsigned integer.
func Uint(v uint64) Value { return Value{num: strconv.FormatUint(v, 10)} }

// Boolean boxes a boolean.
func Boolean(v bool) Value { return Value{b: v, isBool: true} }

// ParseValue parses the textual form of the value. The true and false
// literals yield a boolean, everything else is taken as a number.
func ParseValue(s string) Value {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "true":
		return Boolean(true)
	case "false":
		return Boolean(false)
	case "", "null":
		return Value{}
	}
	return Value{num: s}
}

// IsSet indicates whether the value was given.
func (v Value) IsSet() bool { return v.isBool || v.num != "" }

// IsBool indicates whether the value is a boolean.
func (v Value) IsBool() bool { return v.isBool }

// Bool returns the boolean value.
func (v Value) Bool() (bool, error) {
	if !v.IsSet() {
		return false, errors.Wrap(kerrors.ErrInvalidValue, "missing value")
	}
	if !v.isBool {
		return false, errors.Wrapf(kerrors.ErrInvalidValue, "%s is not a boolean", v)
	}
	return v.b, nil
}

// String returns the textual form of the value.
func (v Value) String() string {
	switch {
	case v.isBool:
		return strconv.FormatBool(v.b)
	case v.num != "":
		return v.num
	default:
		return "null"
	}
}

// MarshalJSON encodes decimal numbers as JSON numbers and booleans as JSON
// booleans. Numbers in any other notation are encoded as strings.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.num != "" && !isDecimal(v.num) {
		return []byte(strconv.Quote(v.num)), nil
	}
	return []byte(v.String()), nil
}

func isDecimal(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// UnmarshalJSON decodes a JSON number, a JSON boolean, or a string holding
// either of them. Strings let clients pass 64-bit values their JSON number
// type can't represent.
func (v *Value) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = ParseValue(s)
		return nil
	}
	switch string(b) {
	case "null":
		*v = Value{}
		return nil
	case "true", "false":
		*v = Boolean(string(b) == "true")
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errors.Wrapf(kerrors.ErrInvalidValue, "%s", b)
	}
	*v = Value{num: n.String()}
	return nil
}

func bitsOf[T constraints.Integer]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// toSigned converts the value into the signed type T. The value must be an
// integer literal that fits into T.
func toSigned[T constraints.Signed](v Value) (T, error) {
	if v.isBool {
		return 0, errors.Wrapf(kerrors.ErrInvalidValue, "expected %d-bit integer, got boolean", bitsOf[T]())
	}
	if !v.IsSet() {
		return 0, errors.Wrap(kerrors.ErrInvalidValue, "missing value")
	}
	i, err := strconv.ParseInt(v.num, 0, bitsOf[T]())
	if err != nil {
		return 0, errors.Wrapf(kerrors.ErrInvalidValue, "%q doesn't fit into %d-bit signed integer", v.num, bitsOf[T]())
	}
	return T(i), nil
}

// toUnsigned converts the value into the unsigned type T. Negative numbers
// are rejected rather than wrapped.
func toUnsigned[T constraints.Unsigned](v Value) (T, error) {
	if v.isBool {
		return 0, errors.Wrapf(kerrors.ErrInvalidValue, "expected %d-bit unsigned integer, got boolean", bitsOf[T]())
	}
	if !v.IsSet() {
		return 0, errors.Wrap(kerrors.ErrInvalidValue, "missing value")
	}
	u, err := strconv.ParseUint(v.num, 0, bitsOf[T]())
	if err != nil {
		return 0, errors.Wrapf(kerrors.ErrInvalidValue, "%q doesn't fit into %d-bit unsigned integer", v.num, bitsOf[T]())
	}
	return T(u), nil
}

func fromSigned[T constraints.Signed](v T) Value     { return Int(int64(v)) }
func fromUnsigned[T constraints.Unsigned](v T) Value { return Uint(uint64(v)) }
