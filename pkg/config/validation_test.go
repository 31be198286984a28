/*
 * Copyright 2019-2020 by Nedim Sabic Sabic
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
	"testing"

	"gopkg.in/yaml.v3"
)

func TestValidate(t *testing.T) {
	var tests = []struct {
		text  string
		valid bool
		errs  int
	}{
		{text: `api:
                 transport: localhost:8483
                 timeout: 1m30s
                 rate-limit: 2.5
                 rate-burst: 10`, valid: true},
		{text: `api:
                 transport: ""
                 timeout: 1s`, valid: false, errs: 1},
		{text: `api:
                 timeout: 15`, valid: false, errs: 1},
		{text: `api:
                 rate-limit: "fast"`, valid: false, errs: 1},
		{text: `api:
                 rate-limit: -1`, valid: false, errs: 1},
		{text: `stress:
                 kind: AtomicU16
                 workers: 4
                 iterations: 100
                 mode: weak-cas`, valid: true},
		{text: `stress:
                 mode: spin
                 iterations: 0`, valid: false, errs: 2},
		{text: `cells:
                 - name: hits
                   type: AtomicU64
                   value: 18446744073709551615
                 - name: ready
                   type: AtomicBool
                   value: true
                 - name: delta
                   type: AtomicI8`, valid: true},
		{text: `cells:
                 - name: hits
                   value: 1.5`, valid: false, errs: 2},
		{text: `logging:
                 level: verbose
                 color: true`, valid: false, errs: 2},
	}

	for i, tt := range tests {
		var m interface{}
		err := yaml.Unmarshal([]byte(tt.text), &m)
		if err != nil {
			t.Fatal(err)
		}
		valid, errs := validate(m)
		if valid != tt.valid {
			t.Errorf("%d. valid mismatch: text=%q exp=%#v got=%#v errs=%#v", i, tt.text, tt.valid, valid, errs)
		} else if len(errs) != tt.errs {
			t.Errorf("%d. error count mismatch: text=%q exp=%#v got=%#v errs=%#v", i, tt.text, tt.errs, len(errs), errs)
		}
	}
}

func TestStringifyKeys(t *testing.T) {
	m := map[interface{}]interface{}{
		"cells": []interface{}{map[interface{}]interface{}{"name": "hits"}},
	}
	conv, err := stringifyKeys(m, "")
	if err != nil {
		t.Fatal(err)
	}
	cells := conv.(map[string]interface{})["cells"].([]interface{})
	if _, ok := cells[0].(map[string]interface{}); !ok {
		t.Errorf("expected string keyed map but found %T", cells[0])
	}

	_, err = stringifyKeys(map[interface{}]interface{}{"cells": []interface{}{map[interface{}]interface{}{1: "x"}}}, "")
	if err == nil || err.Error() != "non-string key in cells[0]: 1" {
		t.Errorf("unexpected error: %v", err)
	}
}
