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

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

var schemaLoader = gojsonschema.NewStringLoader(schema)

func validate(m interface{}) (bool, []error) {
	converted, err := stringifyKeys(m, "")
	if err != nil {
		return false, []error{fmt.Errorf("fail to convert keys to string: %v", err)}
	}
	r, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(converted))
	if err != nil {
		return false, []error{fmt.Errorf("fail to validate config file through schema: %v", err)}
	}
	errs := make([]error, len(r.Errors()))
	for i, err := range r.Errors() {
		errs[i] = errors.New(err.String())
	}
	return r.Valid(), errs
}

// stringifyKeys rebuilds the decoded document so that all map keys are strings.
// YAML decoders may produce maps keyed by interface{} which the schema loader
// can't walk.
func stringifyKeys(value interface{}, path string) (interface{}, error) {
	switch v := value.(type) {
	case map[string]interface{}:
		m := make(map[string]interface{}, len(v))
		for k, item := range v {
			conv, err := stringifyKeys(item, join(path, k))
			if err != nil {
				return nil, err
			}
			m[k] = conv
		}
		return m, nil
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(v))
		for key, item := range v {
			k, ok := key.(string)
			if !ok {
				if path == "" {
					return nil, errors.Errorf("non-string key at top level: %#v", key)
				}
				return nil, errors.Errorf("non-string key in %s: %#v", path, key)
			}
			conv, err := stringifyKeys(item, join(path, k))
			if err != nil {
				return nil, err
			}
			m[k] = conv
		}
		return m, nil
	case []interface{}:
		l := make([]interface{}, len(v))
		for i, item := range v {
			conv, err := stringifyKeys(item, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			l[i] = conv
		}
		return l, nil
	}
	return value, nil
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
