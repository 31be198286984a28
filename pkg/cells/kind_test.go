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
	"encoding/json"
	"strconv"
	"testing"

	"github.com/rabbitstack/seqatomic/pkg/atomic"
	kerrors "github.com/rabbitstack/seqatomic/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	names := make([]string, 0)
	for _, k := range Kinds() {
		names = append(names, k.String())
	}
	assert.Equal(t, []string{
		"AtomicI8", "AtomicI16", "AtomicI32", "AtomicI64", "AtomicIsize",
		"AtomicU8", "AtomicU16", "AtomicU32", "AtomicU64", "AtomicUsize",
		"AtomicBool",
	}, names)

	assert.Equal(t, 16, I16.Bits())
	assert.Equal(t, strconv.IntSize, Usize.Bits())
	assert.True(t, I64.Signed())
	assert.False(t, U64.Signed())
	assert.False(t, Bool.IsInteger())
	assert.True(t, Isize.IsInteger())
	assert.Equal(t, "uintptr", Usize.GoType())
	assert.Equal(t, "Unknown", Kind(42).String())

	assert.Equal(t, "Status", StatusType)
	assert.Equal(t, []atomic.Outcome{atomic.Success, atomic.Failure}, Statuses())
}

func TestParseKind(t *testing.T) {
	var tests = []struct {
		name string
		kind Kind
	}{
		{"AtomicI8", I8},
		{"atomicu32", U32},
		{"Usize", Usize},
		{"  AtomicBool ", Bool},
		{"int64", I64},
		{"uintptr", Usize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := ParseKind(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, k)
		})
	}
}

func TestParseKindTypoSuggestionsAreCapped(t *testing.T) {
	_, err := ParseKind("AtomicI9")
	var e kerrors.ErrUnknownKind
	require.ErrorAs(t, err, &e)
	assert.Equal(t, []string{"AtomicI8", "AtomicI16"}, e.Suggestions)
	assert.EqualError(t, err, "unknown cell type AtomicI9. Did you mean AtomicI8 or AtomicI16?")
}

func TestParseKindSuggestions(t *testing.T) {
	_, err := ParseKind("AtomicU65")
	require.Error(t, err)
	assert.True(t, kerrors.IsUnknownKind(err))
	var e kerrors.ErrUnknownKind
	require.ErrorAs(t, err, &e)
	assert.Contains(t, e.Suggestions, "AtomicU64")
	assert.Contains(t, err.Error(), "Did you mean")

	cached := e.Suggestions
	_, err = ParseKind("atomicu65")
	require.ErrorAs(t, err, &e)
	assert.Equal(t, cached, e.Suggestions)
	assert.Equal(t, "atomicu65", e.Name)

	_, err = ParseKind("I6")
	require.Error(t, err)
	require.ErrorAs(t, err, &e)
	assert.Contains(t, e.Suggestions, "AtomicI16")

	_, err = ParseKind("")
	require.Error(t, err)
	assert.Equal(t, "unknown cell type ", err.Error())
}

func TestKindText(t *testing.T) {
	b, err := json.Marshal(map[string]Kind{"type": U16})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"AtomicU16"}`, string(b))

	var m map[string]Kind
	require.NoError(t, json.Unmarshal([]byte(`{"type":"AtomicIsize"}`), &m))
	assert.Equal(t, Isize, m["type"])

	require.Error(t, json.Unmarshal([]byte(`{"type":"AtomicF32"}`), &m))
}
