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

package config

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/mitchellh/mapstructure"
	"github.com/rabbitstack/seqatomic/pkg/cells"
)

func decode(input, output interface{}) error {
	var decoderConfig = &mapstructure.DecoderConfig{
		Metadata:         nil,
		Result:           output,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			valueDecodeHook(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
	}
	decoder, err := mapstructure.NewDecoder(decoderConfig)
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// valueDecodeHook boxes the YAML/JSON scalar into the cell value. Numbers
// decoded as floats must not have the fractional part.
func valueDecodeHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != reflect.TypeOf(cells.Value{}) {
			return data, nil
		}
		switch v := data.(type) {
		case nil:
			return cells.Value{}, nil
		case cells.Value:
			return v, nil
		case bool:
			return cells.Boolean(v), nil
		case string:
			return cells.ParseValue(v), nil
		case float64:
			if v != math.Trunc(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%v is not an integer", v)
			}
			return cells.ParseValue(strconv.FormatFloat(v, 'f', -1, 64)), nil
		default:
			switch reflect.TypeOf(data).Kind() {
			case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
				reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
				return cells.ParseValue(fmt.Sprint(v)), nil
			}
			return nil, fmt.Errorf("expected scalar cell value but found %s", reflect.TypeOf(data))
		}
	}
}
