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
	"math"
	"testing"

	kerrors "github.com/rabbitstack/seqatomic/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	assert.True(t, ParseValue("TRUE").IsBool())
	assert.False(t, ParseValue("").IsSet())
	assert.False(t, ParseValue("null").IsSet())
	assert.Equal(t, "-12", ParseValue(" -12 ").String())
	assert.Equal(t, "null", Value{}.String())

	b, err := ParseValue("false").Bool()
	require.NoError(t, err)
	assert.False(t, b)

	_, err = ParseValue("1").Bool()
	assert.True(t, kerrors.IsInvalidValue(err))
	_, err = Value{}.Bool()
	assert.True(t, kerrors.IsInvalidValue(err))
}

func TestValueJSON(t *testing.T) {
	var tests = []struct {
		in   string
		want Value
		out  string
	}{
		{`42`, Int(42), `42`},
		{`-7`, Int(-7), `-7`},
		{`"18446744073709551615"`, Uint(math.MaxUint64), `18446744073709551615`},
		{`true`, Boolean(true), `true`},
		{`"false"`, Boolean(false), `false`},
		{`null`, Value{}, `null`},
		{`"0x10"`, ParseValue("0x10"), `"0x10"`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var v Value
			require.NoError(t, json.Unmarshal([]byte(tt.in), &v))
			assert.Equal(t, tt.want, v)
			b, err := json.Marshal(v)
			require.NoError(t, err)
			assert.Equal(t, tt.out, string(b))
		})
	}

	var v Value
	require.Error(t, json.Unmarshal([]byte(`[1]`), &v))
}

func TestValueConversion(t *testing.T) {
	i8, err := toSigned[int8](Int(-128))
	require.NoError(t, err)
	assert.Equal(t, int8(-128), i8)

	_, err = toSigned[int8](Int(128))
	assert.True(t, kerrors.IsInvalidValue(err))

	_, err = toUnsigned[uint16](Int(-1))
	assert.True(t, kerrors.IsInvalidValue(err))

	u16, err := toUnsigned[uint16](ParseValue("0xFFFF"))
	require.NoError(t, err)
	assert.Equal(t, uint16(math.MaxUint16), u16)

	_, err = toUnsigned[uint64](Boolean(true))
	assert.True(t, kerrors.IsInvalidValue(err))

	_, err = toSigned[int32](Value{})
	assert.True(t, kerrors.IsInvalidValue(err))

	_, err = toSigned[int64](ParseValue("1.5"))
	assert.True(t, kerrors.IsInvalidValue(err))

	assert.Equal(t, Int(-3), fromSigned[int16](-3))
	assert.Equal(t, Uint(200), fromUnsigned[uint8](200))
}
